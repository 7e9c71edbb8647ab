package common

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github/chapool/humtoken/internal/api"
	"github/chapool/humtoken/internal/token/chain"
	"github/chapool/humtoken/internal/util"
)

func GetReadyRoute(s *api.Server) *echo.Route {
	return s.Router.Management.GET("/ready", getReadyHandler(s))
}

// Readiness check
// This endpoint returns 200 when our Service is ready to serve traffic:
// all components are initialized, the node answers and the token contract is deployed.
func getReadyHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !s.Ready() {
			return c.String(521, "Not ready.")
		}

		ctx, cancel := context.WithTimeout(c.Request().Context(), s.Config.Management.ProbeTimeout)
		defer cancel()

		if err := chain.Readiness(ctx, s.Chain); err != nil {
			util.LogFromEchoContext(c).Warn().Err(err).Msg("Readiness probe failed")
			return c.String(521, "Not ready.")
		}

		return c.String(http.StatusOK, "Ready.")
	}
}
