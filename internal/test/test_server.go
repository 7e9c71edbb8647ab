package test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github/chapool/humtoken/internal/api"
	"github/chapool/humtoken/internal/api/router"
	"github/chapool/humtoken/internal/config"
	"github/chapool/humtoken/internal/token/chain"
)

// WithTestServer returns a fully configured server wired against a fresh
// chain.Mock (use MockChain to reach it) using the default config.
func WithTestServer(t *testing.T, closure func(s *api.Server)) {
	t.Helper()

	WithTestServerConfigurable(t, config.DefaultServiceConfigFromEnv(), closure)
}

// WithTestServerConfigurable returns a fully configured server wired against
// a fresh chain.Mock, allowing for configuration using the provided config.
func WithTestServerConfigurable(t *testing.T, config config.Server, closure func(s *api.Server)) {
	t.Helper()

	WithTestServerWithChain(t, config, chain.NewMock(), closure)
}

// WithTestServerWithChain returns a fully configured server using the given chain client.
func WithTestServerWithChain(t *testing.T, config config.Server, client chain.Client, closure func(s *api.Server)) {
	t.Helper()

	// https://stackoverflow.com/questions/43424787/how-to-use-next-available-port-in-http-listenandserve
	config.Echo.ListenAddress = ":0"
	config.Logger.RequestLevel = zerolog.DebugLevel

	s, err := api.InitNewServerWithChain(config, client)
	if err != nil {
		t.Fatalf("Failed to init server: %v", err)
	}

	router.Init(s)

	closure(s)

	// echo is managed and should close automatically after running the test
	if errs := s.Shutdown(context.Background()); len(errs) > 0 {
		t.Fatalf("Failed to shutdown server: %v", errs)
	}
}

// MockChain returns the chain.Mock the test server was wired with.
func MockChain(t *testing.T, s *api.Server) *chain.Mock {
	t.Helper()

	mock, ok := s.Chain.(*chain.Mock)
	if !ok {
		t.Fatalf("server chain client is %T, not *chain.Mock", s.Chain)
	}

	return mock
}
