package common_test

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github/chapool/humtoken/internal/api"
	"github/chapool/humtoken/internal/test"
	"github/chapool/humtoken/internal/token/chain"
)

func TestGetHealthy(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "GET", "/-/healthy", nil, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)
		assert.Equal(t, "liveness: ok\nreadiness: ok\n", res.Body.String())
	})
}

func TestGetHealthyLivenessFailed(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		test.MockChain(t, s).Errors[chain.MethodBlockNumber] = errors.New("connection refused")

		res := test.PerformRequest(t, s, "GET", "/-/healthy", nil, nil)
		require.Equal(t, 521, res.Result().StatusCode)
		assert.Equal(t, "liveness: failed\nreadiness: ok\n", res.Body.String())
	})
}

func TestGetHealthyNotReady(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		s.Transfer = nil

		res := test.PerformRequest(t, s, "GET", "/-/healthy", nil, nil)
		require.Equal(t, 521, res.Result().StatusCode)
		assert.Equal(t, "Not ready.", res.Body.String())
	})
}
