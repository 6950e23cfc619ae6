package logger_test

import (
	"bytes"
	"errors"
	"petcare/config"
	"petcare/shared/logger"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func restoreLogger(t *testing.T) {
	t.Helper()

	original := log.Logger
	level := zerolog.GlobalLevel()

	t.Cleanup(func() {
		log.Logger = original
		zerolog.SetGlobalLevel(level)
	})
}

func TestInitLogger(t *testing.T) {
	restoreLogger(t)

	logger.InitLogger()

	assert.Equal(t, zerolog.TimeFormatUnix, zerolog.TimeFieldFormat)
	assert.Equal(t, zerolog.TraceLevel, zerolog.GlobalLevel())
}

func TestConfigure(t *testing.T) {
	tests := []struct {
		name          string
		env           string
		logLevel      string
		expectedLevel zerolog.Level
		expectJSON    bool
	}{
		{name: "production debug", env: "production", logLevel: "debug", expectedLevel: zerolog.DebugLevel, expectJSON: true},
		{name: "staging warn", env: "staging", logLevel: "warn", expectedLevel: zerolog.WarnLevel, expectJSON: true},
		{name: "unknown level falls back to info", env: "production", logLevel: "loud", expectedLevel: zerolog.InfoLevel, expectJSON: true},
		{name: "empty level falls back to info", env: "production", logLevel: "", expectedLevel: zerolog.InfoLevel, expectJSON: true},
		{name: "development keeps console writer", env: "development", logLevel: "info", expectedLevel: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			restoreLogger(t)

			var buf bytes.Buffer

			log.Logger = zerolog.New(&buf)

			cfg := &config.Config{}
			cfg.Server.Env = tt.env
			cfg.Server.LogLevel = tt.logLevel
			cfg.App.Name = "petcare"

			logger.ConfigureTo(cfg, &buf)

			assert.Equal(t, tt.expectedLevel, zerolog.GlobalLevel())

			buf.Reset()
			log.Warn().Msg("walker running late")

			if tt.expectJSON {
				assert.Contains(t, buf.String(), `"app":"petcare"`)
			} else {
				assert.NotContains(t, buf.String(), `"app"`)
			}

			assert.Contains(t, buf.String(), "walker running late")
		})
	}
}

func TestErrorWithStack(t *testing.T) {
	restoreLogger(t)

	var buf bytes.Buffer

	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	logger.ErrorWithStack(errors.New("archive upload failed"))

	assert.Contains(t, buf.String(), "archive upload failed")
	assert.Contains(t, buf.String(), `"level":"error"`)
}
