package logging

import (
	"github.com/rs/zerolog"
	wailslogger "github.com/wailsapp/wails/v2/pkg/logger"
)

// RuntimeLogger forwards the desktop runtime's own log output into zerolog.
type RuntimeLogger struct {
	logger zerolog.Logger
}

var _ wailslogger.Logger = (*RuntimeLogger)(nil)

// NewRuntimeLogger returns a wails logger backed by logger.
func NewRuntimeLogger(logger zerolog.Logger) *RuntimeLogger {
	return &RuntimeLogger{logger: logger.With().Str("component", "runtime").Logger()}
}

// RuntimeLevel maps a zerolog level onto the closest wails log level.
func RuntimeLevel(level zerolog.Level) wailslogger.LogLevel {
	switch {
	case level <= zerolog.TraceLevel:
		return wailslogger.TRACE
	case level == zerolog.DebugLevel:
		return wailslogger.DEBUG
	case level == zerolog.InfoLevel:
		return wailslogger.INFO
	case level == zerolog.WarnLevel:
		return wailslogger.WARNING
	default:
		return wailslogger.ERROR
	}
}

func (l *RuntimeLogger) Print(message string) { l.logger.Log().Msg(message) }

func (l *RuntimeLogger) Trace(message string) { l.logger.Trace().Msg(message) }

func (l *RuntimeLogger) Debug(message string) { l.logger.Debug().Msg(message) }

func (l *RuntimeLogger) Info(message string) { l.logger.Info().Msg(message) }

func (l *RuntimeLogger) Warning(message string) { l.logger.Warn().Msg(message) }

func (l *RuntimeLogger) Error(message string) { l.logger.Error().Msg(message) }

// Fatal logs message and exits the process, as the runtime expects.
func (l *RuntimeLogger) Fatal(message string) { l.logger.Fatal().Msg(message) }
