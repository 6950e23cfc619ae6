package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"petcare/infras/otel"
	"petcare/infras/postgres"
	"petcare/internal/domains/appointment/model"
	"petcare/shared"
	"petcare/shared/constant"
	gDto "petcare/shared/dto"
	"petcare/shared/logger"
	gRepo "petcare/shared/repository"

	"github.com/jmoiron/sqlx"
)

const lockSlotQuery = "SELECT pg_advisory_xact_lock(hashtext($1))"

type Appointment interface {
	Insert(ctx context.Context, model model.Appointment) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Appointment, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Appointment, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	WithTx(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx is the set of writes that must observe each other inside one transaction.
type Tx interface {
	LockSlot(ctx context.Context, date, timeOfDay string) error
	GetForUpdate(ctx context.Context, id string) (model.Appointment, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Insert(ctx context.Context, model model.Appointment) error
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Appointment]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Appointment {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Appointment](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) WithTx(ctx context.Context, fn func(ctx context.Context, tx Tx) error) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".appointment.WithTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return r.db.WithTx(ctx, func(sqltx *sqlx.Tx) error { //nolint:wrapcheck
		return fn(ctx, &txImpl{repo: r, tx: sqltx})
	})
}

type txImpl struct {
	repo *repositoryImpl
	tx   *sqlx.Tx
}

// LockSlot serializes every writer touching the same (date, time) slot until the transaction ends.
func (t *txImpl) LockSlot(ctx context.Context, date, timeOfDay string) error {
	ctx, scope := t.repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".appointment.LockSlot")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, lockSlotQuery)

	if _, err := t.tx.ExecContext(ctx, lockSlotQuery, date+"|"+timeOfDay); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to lock slot %s %s: %w", date, timeOfDay, err)
	}

	return nil
}

func (t *txImpl) GetForUpdate(ctx context.Context, id string) (model.Appointment, error) {
	return t.repo.GetForUpdateTx(ctx, t.tx, shared.FilterByID(id, model.FieldID, model.TableName)) //nolint:wrapcheck
}

func (t *txImpl) Count(ctx context.Context, filter gDto.FilterGroup) (int, error) {
	return t.repo.CountTx(ctx, t.tx, filter) //nolint:wrapcheck
}

func (t *txImpl) Insert(ctx context.Context, appointment model.Appointment) error {
	return t.repo.InsertTx(ctx, t.tx, appointment) //nolint:wrapcheck
}

func (t *txImpl) Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error {
	return t.repo.UpdateTx(ctx, t.tx, req, filter) //nolint:wrapcheck
}
