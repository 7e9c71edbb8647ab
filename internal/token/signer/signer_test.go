package signer_test

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github/chapool/humtoken/internal/token"
	"github/chapool/humtoken/internal/token/signer"
)

// well-known local development accounts
const (
	key0     = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	account0 = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
	account1 = "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"
)

func TestParseKeyAndAddress(t *testing.T) {
	for _, k := range []token.SigningKey{key0, token.SigningKey(key0[2:]), " " + key0 + "\n"} {
		privateKey, err := signer.ParseKey(k)
		require.NoError(t, err)

		addr, err := signer.Address(privateKey)
		require.NoError(t, err)
		assert.Equal(t, account0, addr.Hex())
	}
}

func TestParseKeyInvalid(t *testing.T) {
	for _, k := range []token.SigningKey{"", "0x", "0x1234", "not-a-key"} {
		_, err := signer.ParseKey(k)
		require.Error(t, err)
		if k != "" {
			assert.NotContains(t, err.Error(), string(k))
		}
	}
}

func TestKeyFor(t *testing.T) {
	privateKey, err := signer.KeyFor(key0, common.HexToAddress(account0))
	require.NoError(t, err)
	require.NotNil(t, privateKey)

	_, err = signer.KeyFor(key0, common.HexToAddress(account1))
	require.Error(t, err)
	assert.True(t, errors.Is(err, token.ErrKeyMismatch))

	var mismatch *token.KeyMismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.False(t, mismatch.Malformed)

	_, err = signer.KeyFor("0xdeadbeef", common.HexToAddress(account0))
	require.True(t, errors.As(err, &mismatch))
	assert.True(t, mismatch.Malformed)
}
