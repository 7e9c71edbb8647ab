package router_test

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github/chapool/humtoken/internal/api"
	"github/chapool/humtoken/internal/config"
	"github/chapool/humtoken/internal/test"
)

func TestMetricsEndpoint(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "GET", "/api/token/info", nil, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		// rejected before any chain call
		res = test.PerformRequest(t, s, "POST", "/api/token/transfer", test.GenericPayload{
			"fromAddress": test.Account0,
			"toAddress":   test.Account1,
			"amount":      "1",
			"privateKey":  test.Key1,
		}, nil)
		require.Equal(t, http.StatusBadRequest, res.Result().StatusCode)

		res = test.PerformRequest(t, s, "GET", "/metrics", nil, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		body := res.Body.String()
		assert.Contains(t, body, `humtoken_transfers_total{outcome="rejected"} 1`)
		assert.Contains(t, body, "requests_total")
	})
}

func TestMetricsDisabled(t *testing.T) {
	cfg := config.DefaultServiceConfigFromEnv()
	cfg.Management.EnableMetrics = false

	test.WithTestServerConfigurable(t, cfg, func(s *api.Server) {
		res := test.PerformRequest(t, s, "GET", "/metrics", nil, nil)
		assert.Equal(t, http.StatusNotFound, res.Result().StatusCode)
	})
}

func TestRequestIDAndCORSHeaders(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		headers := http.Header{}
		headers.Set(echo.HeaderOrigin, "http://localhost:3000")

		res := test.PerformRequest(t, s, "GET", "/api/token/info", nil, headers)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		assert.NotEmpty(t, res.Header().Get(echo.HeaderXRequestID))
		assert.Equal(t, "*", res.Header().Get(echo.HeaderAccessControlAllowOrigin))
	})
}

func TestUnknownRouteIsJSONError(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "GET", "/api/token/nope", nil, nil)
		require.Equal(t, http.StatusNotFound, res.Result().StatusCode)
		assert.Equal(t, echo.MIMEApplicationJSON, res.Header().Get(echo.HeaderContentType))
	})
}
