package middleware_test

import (
	"bytes"
	"net/http"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github/chapool/humtoken/internal/api"
	"github/chapool/humtoken/internal/test"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf).Level(zerolog.TraceLevel)
	t.Cleanup(func() { log.Logger = prev })

	return &buf
}

func TestLoggerNeverLogsSigningKey(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		logs := captureLogs(t)

		mock := test.MockChain(t, s)
		mock.SetBalance(common.HexToAddress(test.Account0), common.Big1)

		for _, key := range []string{test.Key0, test.Key1} {
			res := test.PerformRequest(t, s, "POST", "/api/token/transfer", test.GenericPayload{
				"fromAddress": test.Account0,
				"toAddress":   test.Account1,
				"amount":      "1",
				"privateKey":  key,
			}, nil)
			require.NotEqual(t, http.StatusOK, res.Result().StatusCode)
		}

		// a key pasted into an address field
		res := test.PerformRequest(t, s, "POST", "/api/token/transfer", test.GenericPayload{
			"fromAddress": test.Key0,
			"toAddress":   test.Account1,
			"amount":      "1",
			"privateKey":  test.Key0,
		}, nil)
		require.Equal(t, http.StatusBadRequest, res.Result().StatusCode)

		out := logs.String()
		assert.Contains(t, out, "Handled request")
		assert.NotContains(t, out, strings.TrimPrefix(test.Key0, "0x"))
		assert.NotContains(t, out, strings.TrimPrefix(test.Key1, "0x"))
	})
}

func TestLoggerCarriesRequestID(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		logs := captureLogs(t)

		headers := http.Header{}
		headers.Set("X-Request-ID", "req-1234")

		res := test.PerformRequest(t, s, "GET", "/api/token/info", nil, headers)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		assert.Contains(t, logs.String(), `"id":"req-1234"`)
		assert.Contains(t, logs.String(), `"route":"/api/token/info"`)
	})
}

func TestLoggerSkipsProbes(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		logs := captureLogs(t)

		res := test.PerformRequest(t, s, "GET", "/-/ready", nil, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		assert.NotContains(t, logs.String(), "Handled request")
	})
}
