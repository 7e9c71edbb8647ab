package router

import (
	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"

	"github/chapool/humtoken/internal/api"
	"github/chapool/humtoken/internal/api/handlers"
	"github/chapool/humtoken/internal/api/middleware"
	"github/chapool/humtoken/internal/config"
)

// Init builds the echo instance and attaches every route to s.
func Init(s *api.Server) {
	s.Echo = echo.New()

	s.Echo.Debug = s.Config.Echo.Debug
	s.Echo.HideBanner = true
	s.Echo.Logger.SetOutput(&echoLogger{level: s.Config.Logger.RequestLevel, log: log.With().Str("component", "echo").Logger()})

	s.Echo.HTTPErrorHandler = HTTPErrorHandler

	// ---
	// General middleware
	if s.Config.Echo.EnableRecoverMiddleware {
		s.Echo.Use(echoMiddleware.Recover())
	} else {
		log.Warn().Msg("Disabling recover middleware due to environment config")
	}

	if s.Config.Echo.EnableRequestIDMiddleware {
		s.Echo.Use(echoMiddleware.RequestIDWithConfig(echoMiddleware.RequestIDConfig{
			Generator: func() string {
				return uuid.New().String()
			},
		}))
	} else {
		log.Warn().Msg("Disabling request ID middleware due to environment config")
	}

	if s.Config.Echo.EnableLoggerMiddleware {
		s.Echo.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
			Level: s.Config.Logger.RequestLevel,
			Skipper: func(c echo.Context) bool {
				// probes are polled constantly
				return c.Path() == "/-/ready" || c.Path() == "/-/healthy" || c.Path() == "/metrics"
			},
		}))
	} else {
		log.Warn().Msg("Disabling logger middleware due to environment config")
	}

	if s.Config.Echo.EnableCORS {
		s.Echo.Use(echoMiddleware.CORS())
	}

	if s.Config.Echo.BodyLimit != "" {
		s.Echo.Use(echoMiddleware.BodyLimit(s.Config.Echo.BodyLimit))
	}

	if s.Config.Management.EnableMetrics {
		s.Echo.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
			Namespace:  config.ModuleName,
			Registerer: s.Metrics.Registry,
			Skipper: func(c echo.Context) bool {
				return c.Path() == "/metrics"
			},
		}))
		s.Echo.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
			Gatherer: s.Metrics.Registry,
		}))
	}

	s.Router = &api.Router{
		Routes:     nil, // will be populated by handlers.AttachAllRoutes(s)
		Root:       s.Echo.Group(""),
		Management: s.Echo.Group("/-"),
		APIToken:   s.Echo.Group("/api/token"),
	}

	handlers.AttachAllRoutes(s)
}
