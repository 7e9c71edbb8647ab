package info_test

import (
	"math/big"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github/chapool/humtoken/internal/token"
	"github/chapool/humtoken/internal/token/chain"
	"github/chapool/humtoken/internal/token/info"
)

func checkNames(report *info.Report) []string {
	names := make([]string, 0, len(report.Checks))
	for _, c := range report.Checks {
		names = append(names, c.Name)
	}
	return names
}

func TestVerify(t *testing.T) {
	report := info.Verify(t.Context(), chain.NewMock(), token.DefaultDecimals)
	require.True(t, report.OK())

	assert.Equal(t, []string{
		chain.MethodChainID, chain.MethodCode, chain.MethodName, chain.MethodSymbol, chain.MethodDecimals,
		chain.MethodTotalSupply, chain.MethodTreasury, chain.MethodFeeBasisPoints, chain.MethodMaxWalletSize, chain.MethodMaxTxAmount,
	}, checkNames(report))

	values := make(map[string]string)
	for _, c := range report.Checks {
		values[c.Name] = c.Value
	}
	assert.Equal(t, "31337", values[chain.MethodChainID])
	assert.Equal(t, "HUMToken", values[chain.MethodName])
	assert.Equal(t, "1000000000", values[chain.MethodTotalSupply])
	assert.Equal(t, "100 (1.00%)", values[chain.MethodFeeBasisPoints])
	assert.Equal(t, chain.MockTreasury.Hex(), values[chain.MethodTreasury])
}

func TestVerifyNoContract(t *testing.T) {
	mock := chain.NewMock()
	mock.Code = nil

	report := info.Verify(t.Context(), mock, token.DefaultDecimals)
	assert.False(t, report.OK())
	assert.Equal(t, []string{chain.MethodChainID, chain.MethodCode}, checkNames(report))
	assert.Zero(t, mock.Calls(chain.MethodName))
}

func TestVerifyChainUnreachable(t *testing.T) {
	mock := chain.NewMock()
	mock.Errors[chain.MethodChainID] = errors.New("connection refused")

	report := info.Verify(t.Context(), mock, token.DefaultDecimals)
	assert.False(t, report.OK())
	assert.Equal(t, []string{chain.MethodChainID}, checkNames(report))
}

func TestVerifyContinuesAfterAttributeFailure(t *testing.T) {
	mock := chain.NewMock()
	mock.Errors[chain.MethodSymbol] = errors.New("execution reverted")
	mock.Info.FeeBasisPoints = big.NewInt(10_001)

	report := info.Verify(t.Context(), mock, token.DefaultDecimals)
	assert.False(t, report.OK())
	assert.Len(t, report.Checks, 10)

	for _, c := range report.Checks {
		switch c.Name {
		case chain.MethodSymbol, chain.MethodFeeBasisPoints:
			assert.False(t, c.OK(), c.Name)
		default:
			assert.True(t, c.OK(), c.Name)
		}
	}
}

func TestVerifyDecimalsMismatch(t *testing.T) {
	report := info.Verify(t.Context(), chain.NewMock(), 6)
	assert.False(t, report.OK())

	for _, c := range report.Checks {
		if c.Name == chain.MethodDecimals {
			require.Error(t, c.Err)
			assert.Contains(t, c.Err.Error(), "configured 6")
		}
	}
}
