package chain

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/pkg/errors"
)

const revertedMarker = "execution reverted"

// RevertError is returned when the node refuses a transfer during simulation,
// i.e. before anything was broadcast.
type RevertError struct {
	Reason string
	Err    error
}

func (e *RevertError) Error() string {
	if e.Reason == "" {
		return revertedMarker
	}
	return revertedMarker + ": " + e.Reason
}

func (e *RevertError) Unwrap() error {
	return e.Err
}

// RevertReasonFromError extracts a revert reason from a JSON-RPC error.
// ok is false when err does not describe a revert at all.
func RevertReasonFromError(err error) (reason string, ok bool) {
	if err == nil {
		return "", false
	}

	var dataErr rpc.DataError
	if errors.As(err, &dataErr) {
		if reason, ok := decodeRevertData(dataErr.ErrorData()); ok {
			return reason, true
		}
	}

	msg := err.Error()
	idx := strings.Index(msg, revertedMarker)
	if idx < 0 {
		return "", false
	}

	rest := strings.TrimPrefix(msg[idx:], revertedMarker)
	return strings.TrimSpace(strings.TrimPrefix(rest, ":")), true
}

func decodeRevertData(data interface{}) (string, bool) {
	encoded, ok := data.(string)
	if !ok {
		return "", false
	}

	raw, err := hexutil.Decode(encoded)
	if err != nil {
		return "", false
	}

	reason, err := abi.UnpackRevert(raw)
	if err != nil {
		return "", false
	}

	return reason, true
}
