package chain_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github/chapool/humtoken/internal/token/chain"
)

func TestLiveness(t *testing.T) {
	mock := chain.NewMock()
	require.NoError(t, chain.Liveness(t.Context(), mock))

	mock.Errors[chain.MethodBlockNumber] = errors.New("connection refused")
	err := chain.Liveness(t.Context(), mock)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestReadiness(t *testing.T) {
	mock := chain.NewMock()
	require.NoError(t, chain.Readiness(t.Context(), mock))

	mock.Code = []byte{}
	require.Error(t, chain.Readiness(t.Context(), mock))

	mock.Code = []byte{0x60}
	mock.Errors[chain.MethodCode] = errors.New("timeout")
	require.Error(t, chain.Readiness(t.Context(), mock))

	mock.Errors[chain.MethodChainID] = errors.New("connection refused")
	err := chain.Readiness(t.Context(), mock)
	require.Error(t, err)
	// code is not read once the node is unreachable
	assert.Equal(t, 3, mock.Calls(chain.MethodCode))
}
