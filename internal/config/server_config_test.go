package config_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github/chapool/humtoken/internal/config"
)

func TestPrintServiceEnv(t *testing.T) {
	config := config.DefaultServiceConfigFromEnv()
	_, err := json.MarshalIndent(config, "", "  ")

	if err != nil {
		t.Fatal(err)
	}
}

func TestServiceEnvDoesNotPrintNetworkURL(t *testing.T) {
	t.Setenv("NETWORK_URL", "https://rpc.example.org/v3/secret-project-id")

	cfg := config.DefaultServiceConfigFromEnv()
	require.Equal(t, "https://rpc.example.org/v3/secret-project-id", cfg.Chain.NetworkURL)

	b, err := json.Marshal(cfg)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "secret-project-id")
}

func TestServiceEnvDefaults(t *testing.T) {
	for _, key := range []string{"SERVER_ECHO_LISTEN_ADDRESS", "TOKEN_DECIMALS", "CHAIN_CONFIRMATION_TIMEOUT", "CHAIN_READ_TIMEOUT", "SERVER_LOGGER_LEVEL"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg := config.DefaultServiceConfigFromEnv()

	assert.Equal(t, ":3001", cfg.Echo.ListenAddress)
	assert.True(t, cfg.Echo.EnableCORS)
	assert.Equal(t, uint8(18), cfg.Chain.Decimals)
	assert.Equal(t, 2*time.Minute, cfg.Chain.ConfirmationTimeout)
	assert.Equal(t, 10*time.Second, cfg.Chain.ReadTimeout)
	assert.Equal(t, zerolog.InfoLevel, cfg.Logger.Level)
}

func TestServiceEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_ECHO_LISTEN_ADDRESS", ":8080")
	t.Setenv("HUM_TOKEN_ADDRESS", "0x5FbDB2315678afecb367f032d93F642f64180aa3")
	t.Setenv("TOKEN_DECIMALS", "6")
	t.Setenv("CHAIN_CONFIRMATION_TIMEOUT", "30s")
	t.Setenv("SERVER_LOGGER_LEVEL", "debug")
	t.Setenv("SERVER_ECHO_ENABLE_CORS", "false")

	cfg := config.DefaultServiceConfigFromEnv()

	assert.Equal(t, ":8080", cfg.Echo.ListenAddress)
	assert.Equal(t, "0x5FbDB2315678afecb367f032d93F642f64180aa3", cfg.Chain.TokenAddress)
	assert.Equal(t, uint8(6), cfg.Chain.Decimals)
	assert.Equal(t, 30*time.Second, cfg.Chain.ConfirmationTimeout)
	assert.Equal(t, zerolog.DebugLevel, cfg.Logger.Level)
	assert.False(t, cfg.Echo.EnableCORS)
}

func TestServiceEnvInvalidDecimals(t *testing.T) {
	t.Setenv("TOKEN_DECIMALS", "300")

	cfg := config.DefaultServiceConfigFromEnv()
	assert.Equal(t, uint8(18), cfg.Chain.Decimals)
}

func TestDotEnvLoad(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("HUMTOKEN_TEST_A=from-file\nHUMTOKEN_TEST_B=from-file\n"), 0o600))

	t.Setenv("HUMTOKEN_TEST_A", "from-env")
	t.Setenv("HUMTOKEN_TEST_B", "")
	require.NoError(t, os.Unsetenv("HUMTOKEN_TEST_B"))

	require.NoError(t, config.DotEnvLoad(envFile, config.SetEnvIfUnset))

	assert.Equal(t, "from-env", os.Getenv("HUMTOKEN_TEST_A"))
	assert.Equal(t, "from-file", os.Getenv("HUMTOKEN_TEST_B"))
}

func TestDotEnvTryLoadMissingFile(t *testing.T) {
	assert.NotPanics(t, func() {
		config.DotEnvTryLoad(filepath.Join(t.TempDir(), "does-not-exist.env"), config.SetEnvIfUnset)
	})
}
