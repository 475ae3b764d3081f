package logger

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	usecasecontract "github.com/mikiasgoitom/BazaarHub/internal/usecase/contract"
)

type ctxKey struct{}

// New builds a JSON slog logger for the named level (debug, info, warn, error).
func New(level string) *slog.Logger {
	lvl := new(slog.LevelVar)
	switch strings.ToLower(level) {
	case "debug":
		lvl.Set(slog.LevelDebug)
	case "warn", "warning":
		lvl.Set(slog.LevelWarn)
	case "error":
		lvl.Set(slog.LevelError)
	default:
		lvl.Set(slog.LevelInfo)
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}

func IntoContext(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

func FromContext(ctx context.Context) *slog.Logger {
	if v := ctx.Value(ctxKey{}); v != nil {
		if l, ok := v.(*slog.Logger); ok {
			return l
		}
	}
	return slog.Default()
}

// AppLogger adapts a *slog.Logger to the printf-style use case logger.
type AppLogger struct {
	l *slog.Logger
}

// NewAppLogger creates a new AppLogger.
func NewAppLogger(l *slog.Logger) usecasecontract.IAppLogger {
	return &AppLogger{l: l}
}

var _ usecasecontract.IAppLogger = (*AppLogger)(nil)

func (a *AppLogger) Debugf(format string, args ...interface{}) {
	a.l.Debug(fmt.Sprintf(format, args...))
}

func (a *AppLogger) Infof(format string, args ...interface{}) {
	a.l.Info(fmt.Sprintf(format, args...))
}

func (a *AppLogger) Warnf(format string, args ...interface{}) {
	a.l.Warn(fmt.Sprintf(format, args...))
}

// Warningf is an alias of Warnf.
func (a *AppLogger) Warningf(format string, args ...interface{}) {
	a.Warnf(format, args...)
}

func (a *AppLogger) Errorf(format string, args ...interface{}) {
	a.l.Error(fmt.Sprintf(format, args...))
}

// Fatalf logs at error level and exits.
func (a *AppLogger) Fatalf(format string, args ...interface{}) {
	a.l.Error(fmt.Sprintf(format, args...))
	os.Exit(1)
}
