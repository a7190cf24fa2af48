// Package middleware provides the logger factory and wrappers that run around
// every shell command.
package middleware

import (
	"context"
	"errors"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"

	"github.com/go-petr/pet-ledger/pkg/configpkg"
	"github.com/go-petr/pet-ledger/pkg/errorspkg"
)

// CommandIDKey is the context key of the current command id.
type CommandIDKey struct{}

// Command is a single action of the interactive shell.
type Command func(ctx context.Context) error

// GetLogger returns the application logger configured for the environment.
func GetLogger(config configpkg.Config) zerolog.Logger {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	var (
		output   io.Writer = os.Stderr
		logLevel           = zerolog.InfoLevel // default to INFO
	)

	log := zerolog.New(output).
		Level(logLevel).
		With().
		Timestamp().
		Logger()

	if config.Environment == "development" {
		log = log.
			Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
			Level(zerolog.TraceLevel).
			With().
			Caller().
			Logger()
	}

	return log
}

// CommandIDFromContext returns the id of the running command or "-".
func CommandIDFromContext(ctx context.Context) string {
	commandID, ok := ctx.Value(CommandIDKey{}).(string)
	if !ok {
		return "-"
	}

	return commandID
}

// CommandLogger wraps the command so that it runs with a command scoped
// logger in its context and gets logged once it returns.
func CommandLogger(logger zerolog.Logger, name string, next Command) Command {
	return func(ctx context.Context) (err error) {
		start := time.Now()

		commandID := uuid.NewString()
		l := logger.With().Str("command_id", commandID).Str("command", name).Logger()

		ctx = context.WithValue(ctx, CommandIDKey{}, commandID)
		ctx = l.WithContext(ctx)

		defer func() {
			if panicVal := recover(); panicVal != nil {
				l.Error().Msgf("panic message: %v", panicVal)
				err = errorspkg.ErrInternal
			}

			var logEvent *zerolog.Event
			if errors.Is(err, errorspkg.ErrInternal) {
				logEvent = l.Error()
			} else {
				logEvent = l.Info()
			}

			if err != nil {
				logEvent = logEvent.Err(err)
			}

			logEvent.
				Str("latency", time.Since(start).String()).
				Msg("command finished")
		}()

		return next(ctx)
	}
}
