package chain_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github/chapool/humtoken/internal/token/chain"
)

type dataError struct {
	msg  string
	data interface{}
}

func (e *dataError) Error() string          { return e.msg }
func (e *dataError) ErrorData() interface{} { return e.data }

// Error(string) with reason "Exceeds max wallet size"
const encodedRevert = "0x08c379a0" +
	"0000000000000000000000000000000000000000000000000000000000000020" +
	"0000000000000000000000000000000000000000000000000000000000000017" +
	"45786365656473206d61782077616c6c65742073697a65000000000000000000"

func TestRevertReasonFromError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		reason string
		ok     bool
	}{
		{name: "nil", err: nil},
		{name: "unrelated", err: errors.New("nonce too low")},
		{name: "message only", err: errors.New("execution reverted: Exceeds max transaction amount"), reason: "Exceeds max transaction amount", ok: true},
		{name: "no reason", err: errors.New("execution reverted"), ok: true},
		{name: "wrapped message", err: errors.Wrap(errors.New("execution reverted: Paused"), "failed to estimate gas"), reason: "Paused", ok: true},
		{name: "revert data", err: &dataError{msg: "execution reverted", data: encodedRevert}, reason: "Exceeds max wallet size", ok: true},
		{name: "wrapped revert data", err: errors.Wrap(&dataError{msg: "execution reverted", data: encodedRevert}, "failed to call name"), reason: "Exceeds max wallet size", ok: true},
		{name: "undecodable data falls back to message", err: &dataError{msg: "execution reverted: custom", data: "0x1234"}, reason: "custom", ok: true},
		{name: "non string data", err: &dataError{msg: "boom", data: 42}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reason, ok := chain.RevertReasonFromError(tt.err)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.reason, reason)
		})
	}
}

func TestRevertError(t *testing.T) {
	cause := errors.New("rpc error")
	err := &chain.RevertError{Reason: "Exceeds max wallet size", Err: cause}

	assert.Equal(t, "execution reverted: Exceeds max wallet size", err.Error())
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, "execution reverted", (&chain.RevertError{}).Error())
}
