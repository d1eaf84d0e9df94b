package commands

import (
	"os"

	"github.com/rs/zerolog"
)

// zerologAdapter bridges the client library's logger interface to zerolog so
// --verbose gets structured request/response logging on stderr.
type zerologAdapter struct {
	logger zerolog.Logger
}

func newZerologAdapter() *zerologAdapter {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(zerolog.DebugLevel).
		With().Timestamp().Logger()

	return &zerologAdapter{logger: logger}
}

func (a *zerologAdapter) Debug(msg string, fields map[string]interface{}) {
	a.logger.Debug().Fields(fields).Msg(msg)
}

func (a *zerologAdapter) Info(msg string, fields map[string]interface{}) {
	a.logger.Info().Fields(fields).Msg(msg)
}

func (a *zerologAdapter) Warn(msg string, fields map[string]interface{}) {
	a.logger.Warn().Fields(fields).Msg(msg)
}

func (a *zerologAdapter) Error(msg string, fields map[string]interface{}) {
	a.logger.Error().Fields(fields).Msg(msg)
}
