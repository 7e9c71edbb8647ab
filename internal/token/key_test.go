package token_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/big"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github/chapool/humtoken/internal/token"
)

const secret = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

func TestSigningKeyRedacted(t *testing.T) {
	key := token.SigningKey("0x" + secret)

	assert.Equal(t, "0x"+secret, key.Reveal())
	assert.False(t, key.IsZero())
	assert.True(t, token.SigningKey("").IsZero())

	for _, formatted := range []string{
		fmt.Sprint(key),
		fmt.Sprintf("%v %s %+v %#v", key, key, key, key),
		fmt.Sprintf("%+v", struct{ Key token.SigningKey }{key}),
	} {
		assert.NotContains(t, formatted, secret)
	}

	b, err := json.Marshal(struct {
		Key token.SigningKey `json:"key"`
	}{key})
	require.NoError(t, err)
	assert.JSONEq(t, `{"key":"[REDACTED]"}`, string(b))

	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	logger.Info().Object("key", key).Interface("raw", key).Msg("test")
	assert.NotContains(t, buf.String(), secret)
}

func TestSigningKeyUnmarshal(t *testing.T) {
	var payload struct {
		Key token.SigningKey `json:"key"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"key":"0x`+secret+`"}`), &payload))
	assert.Equal(t, "0x"+secret, payload.Key.Reveal())
}

func TestErrorsNeverCarryInput(t *testing.T) {
	err := &token.InvalidAddressError{Field: "to", Reason: token.AddressReasonLength, Hint: "looks like a private key"}
	assert.Equal(t, "invalid to address (length)", err.Error())
	assert.ErrorIs(t, err, token.ErrInvalidAddress)

	mismatch := &token.KeyMismatchError{Malformed: true}
	assert.Equal(t, "signing key is malformed", mismatch.Error())
	assert.ErrorIs(t, mismatch, token.ErrKeyMismatch)
}

func TestSubmissionErrorRetryable(t *testing.T) {
	assert.True(t, (&token.SubmissionError{Kind: token.SubmissionNetwork}).Retryable())
	assert.False(t, (&token.SubmissionError{Kind: token.SubmissionTimeout, TxHash: "0xabc"}).Retryable())
	assert.False(t, (&token.SubmissionError{Kind: token.SubmissionReverted}).Retryable())

	timeout := &token.SubmissionError{Kind: token.SubmissionTimeout, TxHash: "0xabc"}
	assert.Contains(t, timeout.Error(), "0xabc")
	assert.Contains(t, timeout.Error(), "unknown outcome")
}

func TestExpectedFee(t *testing.T) {
	tests := []struct {
		amount, bp, fee int64
	}{
		{amount: 10_000, bp: 100, fee: 100},
		{amount: 99, bp: 100, fee: 0}, // integer division
		{amount: 1_000, bp: 0, fee: 0},
		{amount: 1_000, bp: 10_000, fee: 1_000},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.fee, token.ExpectedFee(bigInt(tt.amount), bigInt(tt.bp)).Int64())
	}

	assert.Zero(t, token.ExpectedFee(nil, bigInt(100)).Sign())
}

func bigInt(v int64) *big.Int {
	return big.NewInt(v)
}
