package chain_test

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github/chapool/humtoken/internal/test"
	"github/chapool/humtoken/internal/token/chain"
)

func TestMockSignedTransferIsRealTransaction(t *testing.T) {
	mock := chain.NewMock()

	key, err := crypto.HexToECDSA(test.Key0[2:])
	require.NoError(t, err)

	tx, err := mock.SignTransfer(t.Context(), key, common.HexToAddress(test.Account1), big.NewInt(10))
	require.NoError(t, err)

	sender, err := types.Sender(types.LatestSignerForChainID(chain.MockChainID), tx)
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress(test.Account0), sender)
	assert.Equal(t, chain.MockTokenAddress, *tx.To())

	// nonces advance per sender
	next, err := mock.SignTransfer(t.Context(), key, common.HexToAddress(test.Account1), big.NewInt(10))
	require.NoError(t, err)
	assert.Equal(t, tx.Nonce()+1, next.Nonce())
}

func TestMockMiningAppliesFee(t *testing.T) {
	mock := chain.NewMock()
	from := common.HexToAddress(test.Account0)
	to := common.HexToAddress(test.Account1)
	mock.SetBalance(from, big.NewInt(10_000))

	key, err := crypto.HexToECDSA(test.Key0[2:])
	require.NoError(t, err)

	tx, err := mock.SignTransfer(t.Context(), key, to, big.NewInt(1_000))
	require.NoError(t, err)
	require.NoError(t, mock.SendTransaction(t.Context(), tx))

	pending, err := mock.TransactionPending(t.Context(), tx.Hash())
	require.NoError(t, err)
	assert.True(t, pending)

	receipt, err := mock.WaitMined(t.Context(), tx)
	require.NoError(t, err)
	assert.Equal(t, types.ReceiptStatusSuccessful, receipt.Status)

	for addr, want := range map[common.Address]int64{from: 9_000, to: 990, chain.MockTreasury: 10} {
		balance, err := mock.BalanceOf(t.Context(), addr)
		require.NoError(t, err)
		assert.Equal(t, want, balance.Int64(), addr.Hex())
	}

	stored, err := mock.TransactionReceipt(t.Context(), tx.Hash())
	require.NoError(t, err)
	assert.Equal(t, receipt, stored)
}

func TestMockUnknownReceipt(t *testing.T) {
	_, err := chain.NewMock().TransactionReceipt(t.Context(), common.HexToHash("0x01"))
	assert.True(t, errors.Is(err, ethereum.NotFound))
}

func TestMockInjectedErrors(t *testing.T) {
	mock := chain.NewMock()
	injected := errors.New("boom")
	mock.Errors[chain.MethodName] = injected

	_, err := mock.Name(t.Context())
	assert.Equal(t, injected, err)
	assert.Equal(t, 1, mock.Calls(chain.MethodName))

	_, err = mock.Symbol(t.Context())
	assert.NoError(t, err)
}
