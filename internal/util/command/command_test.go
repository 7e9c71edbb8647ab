package command_test

import (
	"context"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github/chapool/humtoken/internal/api"
	"github/chapool/humtoken/internal/config"
	"github/chapool/humtoken/internal/test"
	"github/chapool/humtoken/internal/token/chain"
	"github/chapool/humtoken/internal/util/command"
)

func TestWithServer(t *testing.T) {
	test.WithFakeNode(t, func(url string, _ *test.FakeNode) {
		cfg := config.DefaultServiceConfigFromEnv()
		cfg.Chain.NetworkURL = url
		cfg.Chain.TokenAddress = chain.MockTokenAddress.Hex()
		cfg.Logger.PrettyPrintConsole = false

		var testError = errors.New("test error")

		resultErr := command.WithServer(t.Context(), cfg, func(ctx context.Context, s *api.Server) error {
			require.True(t, s.Ready())

			name, err := s.Chain.Name(ctx)
			require.NoError(t, err)
			assert.Equal(t, "HUMToken", name)

			return testError
		})

		assert.Equal(t, testError, resultErr)
	})
}

func TestWithServerMissingNetworkURL(t *testing.T) {
	cfg := config.DefaultServiceConfigFromEnv()
	cfg.Chain.NetworkURL = ""

	called := false
	err := command.WithServer(t.Context(), cfg, func(_ context.Context, _ *api.Server) error {
		called = true
		return nil
	})

	require.Error(t, err)
	assert.False(t, called)
}

func TestNewSubcommandGroup(t *testing.T) {
	child := &cobra.Command{Use: "child"}

	group := command.NewSubcommandGroup("group", child)
	assert.Equal(t, "group", group.Use)
	require.Len(t, group.Commands(), 1)
	assert.Equal(t, "child", group.Commands()[0].Use)
}
