package logx

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/storefront-support/server/internal/core"
)

// LoggerOpts controls how the global logger is initialised.
type LoggerOpts struct {
	Environment core.Environment
}

var DefaultLoggerOpts = &LoggerOpts{Environment: core.Development}

func safe(opts ...LoggerOpts) *LoggerOpts {
	if len(opts) == 0 {
		return DefaultLoggerOpts
	}
	return &opts[0]
}

// Init configures the global zerolog logger. Production keeps structured
// JSON at info level; all other environments get a console writer with
// caller info at debug level.
func Init(opts ...LoggerOpts) {
	o := safe(opts...)
	if o.Environment.IsProduction() {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
		return
	}

	console := zerolog.New(zerolog.NewConsoleWriter()).
		With().Timestamp().Caller().
		Logger()
	log.Logger = console.Level(zerolog.DebugLevel)
}

// The package exposes thin wrappers so call sites read logx.Info()
// instead of importing zerolog's global log directly.

func Debug() *zerolog.Event { return log.Debug() }
func Info() *zerolog.Event  { return log.Info() }
func Warn() *zerolog.Event  { return log.Warn() }
func Error() *zerolog.Event { return log.Error() }
func Panic() *zerolog.Event { return log.Panic() }
func Fatal() *zerolog.Event { return log.Fatal() }
