package common

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github/chapool/humtoken/internal/api"
	"github/chapool/humtoken/internal/token/chain"
)

func GetHealthyRoute(s *api.Server) *echo.Route {
	return s.Router.Management.GET("/healthy", getHealthyHandler(s))
}

// Health check
// Runs the liveness and readiness probes against the node and reports each
// on its own line. Returns 521 if any of them fails.
func getHealthyHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !s.Ready() {
			return c.String(521, "Not ready.")
		}

		ctx, cancel := context.WithTimeout(c.Request().Context(), s.Config.Management.ProbeTimeout)
		defer cancel()

		var b strings.Builder
		healthy := true

		for _, probe := range []struct {
			name string
			fn   func(ctx context.Context, node chain.Node) error
		}{
			{name: "liveness", fn: chain.Liveness},
			{name: "readiness", fn: chain.Readiness},
		} {
			if err := probe.fn(ctx, s.Chain); err != nil {
				healthy = false
				fmt.Fprintf(&b, "%s: failed\n", probe.name)
				continue
			}
			fmt.Fprintf(&b, "%s: ok\n", probe.name)
		}

		if !healthy {
			return c.String(521, b.String())
		}

		return c.String(http.StatusOK, b.String())
	}
}
