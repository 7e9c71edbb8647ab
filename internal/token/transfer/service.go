package transfer

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"

	"github/chapool/humtoken/internal/token"
	"github/chapool/humtoken/internal/token/chain"
	"github/chapool/humtoken/internal/util"
)

// Service runs the transfer pipeline:
// validate -> read balance -> check balance -> submit.
type Service struct {
	chain     chain.Client
	decimals  uint8
	submitter *Submitter
}

func NewService(client chain.Client, decimals uint8, confirmationTimeout time.Duration) *Service {
	return &Service{
		chain:     client,
		decimals:  decimals,
		submitter: NewSubmitter(client, confirmationTimeout),
	}
}

// Transfer returns a confirmed result or one of the typed errors of package
// token. Nothing is retried.
func (s *Service) Transfer(ctx context.Context, req token.TransferRequest) (*token.TransferResult, error) {
	validated, err := Prepare(req, s.decimals)
	if err != nil {
		return nil, err
	}

	balance, err := s.chain.BalanceOf(ctx, validated.From)
	if err != nil {
		return nil, &token.ReadError{Field: chain.MethodBalanceOf, Err: err}
	}

	if err := CheckBalance(validated, balance); err != nil {
		return nil, err
	}

	return s.submitter.Submit(ctx, validated)
}

// Status looks up a previously broadcast transaction. Callers use it to
// resolve a timed out submission before deciding to transfer again.
func (s *Service) Status(ctx context.Context, hash string) (*token.TransactionStatus, error) {
	txHash, err := parseHash(hash)
	if err != nil {
		return nil, err
	}

	status := &token.TransactionStatus{TransactionHash: txHash.Hex()}

	receipt, err := s.chain.TransactionReceipt(ctx, txHash)
	if err != nil {
		if !errors.Is(err, ethereum.NotFound) {
			return nil, &token.ReadError{Field: chain.MethodReceipt, Err: err}
		}

		pending, err := s.chain.TransactionPending(ctx, txHash)
		if err != nil {
			return nil, &token.ReadError{Field: chain.MethodReceipt, Err: err}
		}

		status.State = token.TransactionUnknown
		if pending {
			status.State = token.TransactionPending
		}
		return status, nil
	}

	if receipt.BlockNumber != nil {
		status.BlockNumber = receipt.BlockNumber.Uint64()
	}

	if receipt.Status == types.ReceiptStatusSuccessful {
		status.State = token.TransactionConfirmed
		return status, nil
	}

	status.State = token.TransactionReverted
	reason, err := s.chain.RevertReason(ctx, txHash, receipt.BlockNumber)
	if err != nil {
		util.LogFromContext(ctx).Debug().Err(err).Str("tx_hash", status.TransactionHash).Msg("Failed to recover revert reason")
	}
	status.RevertReason = reason

	return status, nil
}

func parseHash(hash string) (common.Hash, error) {
	raw, err := hexutil.Decode(hash)
	if err != nil || len(raw) != common.HashLength {
		return common.Hash{}, token.ErrInvalidTransactionHash
	}
	return common.BytesToHash(raw), nil
}
