package chain

import (
	"context"

	"github.com/pkg/errors"
)

// Liveness succeeds if the node serves the latest block number.
func Liveness(ctx context.Context, node Node) error {
	if _, err := node.BlockNumber(ctx); err != nil {
		return errors.Wrap(err, "node is not live")
	}
	return nil
}

// Readiness succeeds if the node answers and contract code is deployed at
// the token address.
func Readiness(ctx context.Context, node Node) error {
	if _, err := node.ChainID(ctx); err != nil {
		return errors.Wrap(err, "node is not reachable")
	}

	code, err := node.ContractCode(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to read token contract code")
	}

	if len(code) == 0 {
		return errors.Errorf("no contract deployed at %s", node.TokenAddress().Hex())
	}

	return nil
}
