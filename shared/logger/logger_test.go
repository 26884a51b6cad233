package logger_test

import (
	"bytes"
	"errors"
	"rental/config"
	"rental/shared/logger"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func restore(t *testing.T) {
	original := log.Logger
	level := zerolog.GlobalLevel()
	timeFormat := zerolog.TimeFieldFormat

	t.Cleanup(func() {
		log.Logger = original
		zerolog.SetGlobalLevel(level)
		zerolog.TimeFieldFormat = timeFormat
	})
}

func TestInitLogger(t *testing.T) {
	restore(t)

	logger.InitLogger()

	assert.Equal(t, zerolog.TimeFormatUnix, zerolog.TimeFieldFormat)
	assert.Equal(t, zerolog.TraceLevel, zerolog.GlobalLevel())
}

func TestErrorWithStack(t *testing.T) {
	restore(t)

	var buf bytes.Buffer
	log.Logger = log.Output(&buf)

	logger.ErrorWithStack(errors.New("store unavailable"))

	assert.Contains(t, buf.String(), "store unavailable")
}

func TestSetLogLevel(t *testing.T) {
	tests := []struct {
		logLevel string
		expected zerolog.Level
	}{
		{logLevel: "debug", expected: zerolog.DebugLevel},
		{logLevel: "info", expected: zerolog.InfoLevel},
		{logLevel: "error", expected: zerolog.ErrorLevel},
		{logLevel: "disabled", expected: zerolog.Disabled},
		{logLevel: "invalid_level", expected: zerolog.TraceLevel},
		{logLevel: "", expected: zerolog.NoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.logLevel, func(t *testing.T) {
			restore(t)

			cfg := &config.Config{}
			cfg.Server.LogLevel = tt.logLevel

			logger.SetLogLevel(cfg)

			assert.Equal(t, tt.expected, zerolog.GlobalLevel())
		})
	}
}

func TestConfigure(t *testing.T) {
	restore(t)

	cfg := &config.Config{}
	cfg.Server.Env = "production"
	cfg.Server.LogLevel = "warn"
	cfg.App.Name = "rental"

	logger.Configure(cfg)

	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
}
