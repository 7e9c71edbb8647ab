package middleware

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github/chapool/humtoken/internal/util"
)

// LoggerConfig configures the request logger. Request and response bodies
// are never logged: transfer requests carry a private key.
type LoggerConfig struct {
	Skipper middleware.Skipper
	Level   zerolog.Level
}

var DefaultLoggerConfig = LoggerConfig{
	Skipper: middleware.DefaultSkipper,
	Level:   zerolog.InfoLevel,
}

func Logger() echo.MiddlewareFunc {
	return LoggerWithConfig(DefaultLoggerConfig)
}

// LoggerWithConfig attaches a child logger carrying the request id to the
// request context and logs one line per request once it has been handled.
func LoggerWithConfig(config LoggerConfig) echo.MiddlewareFunc {
	if config.Skipper == nil {
		config.Skipper = DefaultLoggerConfig.Skipper
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if config.Skipper(c) {
				return next(c)
			}

			req := c.Request()
			res := c.Response()

			id := res.Header().Get(echo.HeaderXRequestID)
			if id == "" {
				id = req.Header.Get(echo.HeaderXRequestID)
			}

			l := log.With().
				Str("id", id).
				Str("method", req.Method).
				Str("url", req.URL.Path).
				Logger()

			ctx := l.WithContext(req.Context())
			if id != "" {
				ctx = context.WithValue(ctx, util.CTXKeyRequestID, id)
			}
			c.SetRequest(req.WithContext(ctx))

			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			l.WithLevel(config.Level).
				Str("route", c.Path()).
				Int("status", res.Status).
				Int64("bytes_out", res.Size).
				Dur("duration_ms", time.Since(start)).
				Str("remote_ip", c.RealIP()).
				Msg("Handled request")

			return nil
		}
	}
}
