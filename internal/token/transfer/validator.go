package transfer

import (
	"math/big"

	"github/chapool/humtoken/internal/token"
	"github/chapool/humtoken/internal/token/address"
	"github/chapool/humtoken/internal/token/amount"
	"github/chapool/humtoken/internal/token/signer"
)

// Prepare runs every pre-flight check that needs no chain state: both
// addresses, the amount and the signing key. It never touches the chain, so a
// key mismatch is reported before any call is made.
func Prepare(req token.TransferRequest, decimals uint8) (*token.ValidatedTransfer, error) {
	from, err := address.Validate("from", req.From)
	if err != nil {
		return nil, err
	}

	to, err := address.Validate("to", req.To)
	if err != nil {
		return nil, err
	}

	units, err := amount.ToBaseUnits(req.Amount, decimals)
	if err != nil {
		return nil, err
	}

	key, err := signer.KeyFor(req.SigningKey, from)
	if err != nil {
		return nil, err
	}

	return &token.ValidatedTransfer{
		From:       from,
		To:         to,
		Amount:     units,
		AmountText: amount.ToDecimalString(units, decimals),
		Key:        key,
	}, nil
}

// CheckBalance fails with *token.InsufficientBalanceError when balance does
// not cover the transfer.
func CheckBalance(validated *token.ValidatedTransfer, balance *big.Int) error {
	if balance == nil {
		balance = new(big.Int)
	}

	if balance.Cmp(validated.Amount) < 0 {
		return &token.InsufficientBalanceError{
			Available: new(big.Int).Set(balance),
			Requested: new(big.Int).Set(validated.Amount),
		}
	}

	return nil
}

// Validate is the full precondition check against a balance snapshot the
// caller read immediately before.
func Validate(req token.TransferRequest, currentBalance *big.Int, decimals uint8) (*token.ValidatedTransfer, error) {
	validated, err := Prepare(req, decimals)
	if err != nil {
		return nil, err
	}

	if err := CheckBalance(validated, currentBalance); err != nil {
		return nil, err
	}

	return validated, nil
}
