package transfer_test

import (
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github/chapool/humtoken/internal/test"
	"github/chapool/humtoken/internal/token"
	"github/chapool/humtoken/internal/token/transfer"
)

func request(amount string) token.TransferRequest {
	return token.TransferRequest{
		From:       test.Account0,
		To:         test.Account1,
		Amount:     amount,
		SigningKey: test.Key0,
	}
}

func TestPrepare(t *testing.T) {
	req := request("1.5")
	req.From = strings.ToLower(req.From)

	validated, err := transfer.Prepare(req, 18)
	require.NoError(t, err)

	assert.Equal(t, common.HexToAddress(test.Account0), validated.From)
	assert.Equal(t, common.HexToAddress(test.Account1), validated.To)
	assert.Equal(t, "1500000000000000000", validated.Amount.String())
	assert.Equal(t, "1.5", validated.AmountText)
	require.NotNil(t, validated.Key)
}

func TestPrepareRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(req *token.TransferRequest)
		target error
	}{
		{name: "empty from", mutate: func(req *token.TransferRequest) { req.From = "" }, target: token.ErrInvalidAddress},
		{name: "short to", mutate: func(req *token.TransferRequest) { req.To = "0x1234" }, target: token.ErrInvalidAddress},
		{name: "key as to", mutate: func(req *token.TransferRequest) { req.To = test.Key1 }, target: token.ErrInvalidAddress},
		{name: "zero amount", mutate: func(req *token.TransferRequest) { req.Amount = "0" }, target: token.ErrInvalidAmount},
		{name: "too precise", mutate: func(req *token.TransferRequest) { req.Amount = "0.0000000000000000001" }, target: token.ErrInvalidAmount},
		{name: "foreign key", mutate: func(req *token.TransferRequest) { req.SigningKey = test.Key1 }, target: token.ErrKeyMismatch},
		{name: "garbage key", mutate: func(req *token.TransferRequest) { req.SigningKey = "0xzz" }, target: token.ErrKeyMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := request("1")
			tt.mutate(&req)

			validated, err := transfer.Prepare(req, 18)
			require.Error(t, err)
			assert.Nil(t, validated)
			assert.True(t, errors.Is(err, tt.target), "got %v", err)

			assert.NotContains(t, err.Error(), strings.TrimPrefix(test.Key0, "0x"))
			assert.NotContains(t, err.Error(), strings.TrimPrefix(test.Key1, "0x"))
		})
	}
}

func TestValidateInsufficientBalance(t *testing.T) {
	// 150 base units against a balance of 100
	_, err := transfer.Validate(request("0.00000000000000015"), big.NewInt(100), 18)
	require.Error(t, err)

	var balanceErr *token.InsufficientBalanceError
	require.True(t, errors.As(err, &balanceErr))
	assert.Equal(t, "100", balanceErr.Available.String())
	assert.Equal(t, "150", balanceErr.Requested.String())
}

func TestValidateExactBalance(t *testing.T) {
	validated, err := transfer.Validate(request("0.0000000000000001"), big.NewInt(100), 18)
	require.NoError(t, err)
	assert.Equal(t, "100", validated.Amount.String())
}

func TestCheckBalanceNil(t *testing.T) {
	validated, err := transfer.Prepare(request("1"), 18)
	require.NoError(t, err)

	err = transfer.CheckBalance(validated, nil)
	assert.True(t, errors.Is(err, token.ErrInsufficientBalance))
}
