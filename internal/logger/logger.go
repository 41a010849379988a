// Package logger configures randcred's diagnostic logger.
// Diagnostics go to stderr so they never mix with generated credentials.
package logger

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultLevel only reports failures.
const DefaultLevel = "error"

// ErrAppNameIsEmpty is returned if Config.AppName was not defined.
var ErrAppNameIsEmpty = errors.New("logger: app name can not be empty")

// Config holds the logger settings.
type Config struct {
	AppName string
	Level   string // trace, debug, info, warn, error
	Out     io.Writer
	NoColor bool
}

// Init sets up the global zerolog logger.
func Init(cfg Config) error {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return errors.Wrapf(err, "loglevel %s is not supported", cfg.Level)
	}

	if cfg.AppName == "" {
		return ErrAppNameIsEmpty
	}

	zerolog.SetGlobalLevel(level)
	log.Logger = New(cfg)

	return nil
}

// New returns a console logger writing to cfg.Out, or stderr when unset.
func New(cfg Config) zerolog.Logger {
	out := cfg.Out
	if out == nil {
		out = os.Stderr
	}

	cw := zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    cfg.NoColor,
		TimeFormat: "15:04:05",
	}

	return zerolog.New(cw).With().Timestamp().Str("app", cfg.AppName).Logger()
}
