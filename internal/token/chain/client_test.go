package chain_test

import (
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github/chapool/humtoken/internal/test"
	"github/chapool/humtoken/internal/token"
	"github/chapool/humtoken/internal/token/chain"
	"github/chapool/humtoken/internal/token/info"
)

func dial(t *testing.T, url string) *chain.RPCClient {
	t.Helper()

	client, err := chain.NewRPCClient(t.Context(), chain.Options{
		NetworkURL:   url,
		TokenAddress: chain.MockTokenAddress.Hex(),
		ReadTimeout:  5 * time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(client.Close)

	return client
}

func TestRPCClientReads(t *testing.T) {
	test.WithFakeNode(t, func(url string, node *test.FakeNode) {
		node.Mock.SetBalance(common.HexToAddress(test.Account0), big.NewInt(1234))

		client := dial(t, url)

		chainID, err := client.ChainID(t.Context())
		require.NoError(t, err)
		assert.Equal(t, chain.MockChainID, chainID)
		assert.Equal(t, chain.MockTokenAddress, client.TokenAddress())

		result, err := info.NewReader(client).FetchAll(t.Context())
		require.NoError(t, err)
		assert.Equal(t, node.Mock.Info, *result)

		balance, err := client.BalanceOf(t.Context(), common.HexToAddress(test.Account0))
		require.NoError(t, err)
		assert.Equal(t, "1234", balance.String())

		allowance, err := client.Allowance(t.Context(), common.HexToAddress(test.Account0), common.HexToAddress(test.Account1))
		require.NoError(t, err)
		assert.Zero(t, allowance.Sign())

		block, err := client.BlockNumber(t.Context())
		require.NoError(t, err)
		assert.Equal(t, uint64(1), block)
	})
}

func TestRPCClientReadRevert(t *testing.T) {
	test.WithFakeNode(t, func(url string, node *test.FakeNode) {
		client := dial(t, url)

		node.Mu.Lock()
		node.Revert = "Paused"
		node.Mu.Unlock()

		_, err := client.Name(t.Context())
		require.Error(t, err)

		reason, ok := chain.RevertReasonFromError(err)
		assert.True(t, ok)
		assert.Equal(t, "Paused", reason)
	})
}

func TestRPCClientSignTransferSimulationRevert(t *testing.T) {
	test.WithFakeNode(t, func(url string, node *test.FakeNode) {
		client := dial(t, url)

		node.Mu.Lock()
		node.Revert = "Exceeds max transaction amount"
		node.Mu.Unlock()

		key, err := crypto.HexToECDSA(test.Key0[2:])
		require.NoError(t, err)

		tx, err := client.SignTransfer(t.Context(), key, common.HexToAddress(test.Account1), big.NewInt(1))
		require.Error(t, err)
		assert.Nil(t, tx)

		var revertErr *chain.RevertError
		require.True(t, errors.As(err, &revertErr))
		assert.Equal(t, "Exceeds max transaction amount", revertErr.Reason)
	})
}

func TestRPCClientProbes(t *testing.T) {
	test.WithFakeNode(t, func(url string, node *test.FakeNode) {
		client := dial(t, url)

		require.NoError(t, chain.Liveness(t.Context(), client))
		require.NoError(t, chain.Readiness(t.Context(), client))

		node.Mu.Lock()
		node.Code = nil
		node.Mu.Unlock()

		err := chain.Readiness(t.Context(), client)
		require.Error(t, err)
		assert.Contains(t, err.Error(), chain.MockTokenAddress.Hex())

		report := info.Verify(t.Context(), client, token.DefaultDecimals)
		assert.False(t, report.OK())
	})
}

func TestNewRPCClientInvalidOptions(t *testing.T) {
	_, err := chain.NewRPCClient(t.Context(), chain.Options{TokenAddress: chain.MockTokenAddress.Hex()})
	require.Error(t, err)

	_, err = chain.NewRPCClient(t.Context(), chain.Options{NetworkURL: "http://127.0.0.1:8545", TokenAddress: "0x1234"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, token.ErrInvalidAddress))
}

func TestNewRPCClientUnreachable(t *testing.T) {
	_, err := chain.NewRPCClient(t.Context(), chain.Options{
		NetworkURL:   "http://127.0.0.1:1",
		TokenAddress: chain.MockTokenAddress.Hex(),
	})
	require.Error(t, err)
}
