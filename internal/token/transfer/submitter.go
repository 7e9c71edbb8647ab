package transfer

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"

	"github/chapool/humtoken/internal/token"
	"github/chapool/humtoken/internal/token/chain"
	"github/chapool/humtoken/internal/util"
)

const (
	DefaultConfirmationTimeout = 2 * time.Minute

	revertReasonTimeout = 10 * time.Second
)

// Submitter signs, broadcasts and waits for one confirmation of a validated
// transfer. Submit is not idempotent: every successful call moves tokens.
type Submitter struct {
	chain               chain.Writer
	confirmationTimeout time.Duration
}

func NewSubmitter(writer chain.Writer, confirmationTimeout time.Duration) *Submitter {
	if confirmationTimeout <= 0 {
		confirmationTimeout = DefaultConfirmationTimeout
	}

	return &Submitter{
		chain:               writer,
		confirmationTimeout: confirmationTimeout,
	}
}

// Submit returns a confirmed result or a *token.SubmissionError.
// Cancelling ctx before broadcast discards the transfer. Once broadcast, the
// confirmation wait ignores ctx cancellation and is bounded by the
// confirmation timeout only.
func (s *Submitter) Submit(ctx context.Context, validated *token.ValidatedTransfer) (*token.TransferResult, error) {
	log := util.LogFromContext(ctx).With().
		Str("from", validated.From.Hex()).
		Str("to", validated.To.Hex()).
		Str("amount", validated.AmountText).
		Logger()

	if err := ctx.Err(); err != nil {
		return nil, &token.SubmissionError{Kind: token.SubmissionNetwork, Err: err}
	}

	tx, err := s.chain.SignTransfer(ctx, validated.Key, validated.To, validated.Amount)
	if err != nil {
		var revertErr *chain.RevertError
		if errors.As(err, &revertErr) {
			log.Info().Str("reason", revertErr.Reason).Msg("Transfer rejected by contract simulation")
			return nil, &token.SubmissionError{Kind: token.SubmissionReverted, Reason: revertErr.Reason, Err: err}
		}

		log.Error().Err(err).Msg("Failed to prepare transfer transaction")
		return nil, &token.SubmissionError{Kind: token.SubmissionNetwork, Err: err}
	}

	txHash := tx.Hash().Hex()
	log = log.With().Str("tx_hash", txHash).Logger()

	if err := s.chain.SendTransaction(ctx, tx); err != nil {
		log.Error().Err(err).Msg("Failed to broadcast transfer transaction")
		return nil, &token.SubmissionError{Kind: token.SubmissionNetwork, TxHash: txHash, Err: err}
	}

	log.Info().Msg("Transfer broadcast, waiting for confirmation")

	waitCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.confirmationTimeout)
	defer cancel()

	receipt, err := s.chain.WaitMined(waitCtx, tx)
	if err != nil {
		log.Warn().Err(err).Dur("timeout", s.confirmationTimeout).Msg("Transfer not confirmed in time, outcome unknown")
		return nil, &token.SubmissionError{Kind: token.SubmissionTimeout, TxHash: txHash, Err: err}
	}

	if receipt.Status != types.ReceiptStatusSuccessful {
		reason := s.revertReason(ctx, tx, receipt)
		log.Warn().Str("reason", reason).Msg("Transfer reverted on chain")
		return nil, &token.SubmissionError{Kind: token.SubmissionReverted, TxHash: txHash, Reason: reason}
	}

	result := &token.TransferResult{
		TransactionHash: txHash,
		From:            validated.From,
		To:              validated.To,
		Amount:          validated.AmountText,
		Confirmed:       true,
		GasUsed:         receipt.GasUsed,
	}
	if receipt.BlockNumber != nil {
		result.BlockNumber = receipt.BlockNumber.Uint64()
	}

	log.Info().Uint64("block_number", result.BlockNumber).Msg("Transfer confirmed")

	return result, nil
}

// revertReason is best effort: a failed lookup yields an empty reason.
func (s *Submitter) revertReason(ctx context.Context, tx *types.Transaction, receipt *types.Receipt) string {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), revertReasonTimeout)
	defer cancel()

	reason, err := s.chain.RevertReason(ctx, tx.Hash(), receipt.BlockNumber)
	if err != nil {
		util.LogFromContext(ctx).Debug().Err(err).Str("tx_hash", tx.Hash().Hex()).Msg("Failed to recover revert reason")
		return ""
	}

	return reason
}
