package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"net/url"
	"petcare/config"
	"petcare/shared/constant"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	driverName      = "postgres"
	maxIdleConns    = 10
	maxOpenConns    = 10
	connMaxIdleTime = 5 * time.Minute
)

// Connection splits traffic between a read replica and the primary.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

func New(cfg *config.Config) *Connection {
	pg := cfg.DB.Postgres

	return &Connection{
		Read:  connect("read", dataSourceName(pg.Read, pg.Prefix), pg.MaxRetry, pg.RetryWaitTime),
		Write: connect("write", dataSourceName(pg.Write, pg.Prefix), pg.MaxRetry, pg.RetryWaitTime),
	}
}

// WithTx commits when fn returns nil and rolls back on error or panic.
func (c *Connection) WithTx(ctx context.Context, fn func(tx *sqlx.Tx) error) (err error) {
	tx, err := c.Write.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	committed := false

	defer func() {
		if committed {
			return
		}

		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			log.Error().Err(rbErr).Msg("failed to rollback transaction")
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	committed = true

	return nil
}

// IsUniqueViolation reports whether a unique index rejected the write.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}

	return string(pqErr.Code) == constant.PqErrorCodeUniqueViolation
}

func dataSourceName(ep config.PostgresEndpoint, prefix string) string {
	query := url.Values{}

	if ep.SSLMode != "" {
		query.Set("sslmode", ep.SSLMode)
	}

	if ep.Timezone != "" {
		query.Set("timezone", ep.Timezone)
	}

	dsn := url.URL{
		Scheme:   driverName,
		User:     url.UserPassword(ep.Username, ep.Password),
		Host:     net.JoinHostPort(ep.Host, ep.Port),
		Path:     "/" + prefix + ep.Name,
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

// connect retries every waitSeconds and exits the process once maxRetry attempts fail.
func connect(role, dsn string, maxRetry, waitSeconds int) *sqlx.DB {
	logger := log.With().Str("role", role).Logger()

	var err error

	for attempt := 1; attempt <= max(maxRetry, 1); attempt++ {
		var db *sqlx.DB

		db, err = sqlx.Connect(driverName, dsn)
		if err == nil {
			db.SetMaxIdleConns(maxIdleConns)
			db.SetMaxOpenConns(maxOpenConns)
			db.SetConnMaxIdleTime(connMaxIdleTime)

			logger.Info().Msg("connected to postgres")

			return db
		}

		logger.Warn().Err(err).Int("attempt", attempt).Msg("postgres not reachable yet")

		time.Sleep(time.Duration(waitSeconds) * time.Second)
	}

	logger.Fatal().Err(err).Msg("giving up connecting to postgres")

	return nil
}
