package util

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LogFromContext returns the request-scoped logger stored in ctx, falling
// back to the global logger.
func LogFromContext(ctx context.Context) *zerolog.Logger {
	l := log.Ctx(ctx)
	if l.GetLevel() == zerolog.Disabled {
		if ShouldDisableLogger(ctx) {
			return l
		}
		l = &log.Logger
	}
	return l
}

// LogFromEchoContext returns the request-scoped logger of c.
func LogFromEchoContext(c echo.Context) *zerolog.Logger {
	return LogFromContext(c.Request().Context())
}

// DisableLogger marks ctx so LogFromContext returns a disabled logger.
func DisableLogger(ctx context.Context, shouldDisable bool) context.Context {
	return context.WithValue(ctx, CTXKeyDisableLogger, shouldDisable)
}

func ShouldDisableLogger(ctx context.Context) bool {
	s, ok := ctx.Value(CTXKeyDisableLogger).(bool)
	if !ok {
		return false
	}
	return s
}
