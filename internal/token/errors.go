package token

import (
	"fmt"
	"math/big"

	"github.com/pkg/errors"
)

// Sentinels for errors.Is checks against the typed errors below.
var (
	ErrInvalidAddress      = errors.New("invalid address")
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrKeyMismatch         = errors.New("signing key does not match from address")
	ErrRead                = errors.New("chain read failed")
	ErrSubmission          = errors.New("transfer submission failed")

	ErrInvalidTransactionHash = errors.New("invalid transaction hash")
)

// AddressReason tells which address rule was violated.
type AddressReason string

const (
	AddressReasonEmpty    AddressReason = "empty"
	AddressReasonLength   AddressReason = "length"
	AddressReasonPrefix   AddressReason = "prefix"
	AddressReasonHex      AddressReason = "hex"
	AddressReasonChecksum AddressReason = "checksum"
)

// InvalidAddressError never carries the rejected input: a private key pasted
// into an address field must not end up in logs or responses.
type InvalidAddressError struct {
	Field  string
	Reason AddressReason
	Hint   string
}

func (e *InvalidAddressError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid address (%s)", e.Reason)
	}
	return fmt.Sprintf("invalid %s address (%s)", e.Field, e.Reason)
}

func (e *InvalidAddressError) Is(target error) bool {
	return target == ErrInvalidAddress
}

// AmountReason tells why a decimal amount was rejected.
type AmountReason string

const (
	AmountReasonNotNumeric  AmountReason = "not_numeric"
	AmountReasonNotPositive AmountReason = "not_positive"
	AmountReasonPrecision   AmountReason = "too_many_fraction_digits"
	AmountReasonOverflow    AmountReason = "overflow"
)

type InvalidAmountError struct {
	Reason   AmountReason
	Decimals uint8
}

func (e *InvalidAmountError) Error() string {
	switch e.Reason {
	case AmountReasonNotPositive:
		return "invalid amount: must be a positive number"
	case AmountReasonPrecision:
		return fmt.Sprintf("invalid amount: at most %d fractional digits allowed", e.Decimals)
	case AmountReasonOverflow:
		return "invalid amount: exceeds uint256"
	case AmountReasonNotNumeric:
		fallthrough
	default:
		return "invalid amount: not a decimal number"
	}
}

func (e *InvalidAmountError) Is(target error) bool {
	return target == ErrInvalidAmount
}

// InsufficientBalanceError reports both sides of the failed comparison in base units.
type InsufficientBalanceError struct {
	Available *big.Int
	Requested *big.Int
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance: available %s, requested %s", e.Available, e.Requested)
}

func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}

// KeyMismatchError is returned when the signing key does not control the
// from address. Malformed is set when the key could not be parsed at all.
type KeyMismatchError struct {
	Malformed bool
}

func (e *KeyMismatchError) Error() string {
	if e.Malformed {
		return "signing key is malformed"
	}
	return ErrKeyMismatch.Error()
}

func (e *KeyMismatchError) Is(target error) bool {
	return target == ErrKeyMismatch
}

// ReadError names the contract attribute that could not be read.
type ReadError struct {
	Field string
	Err   error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Field, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

func (e *ReadError) Is(target error) bool {
	return target == ErrRead
}

// SubmissionKind classifies a failed transfer submission.
type SubmissionKind string

const (
	// SubmissionNetwork: nothing was broadcast, safe to retry.
	SubmissionNetwork SubmissionKind = "network"
	// SubmissionTimeout: broadcast happened but no receipt was seen in time.
	// The outcome is unknown and the transaction may still confirm.
	SubmissionTimeout SubmissionKind = "timeout"
	// SubmissionReverted: the contract rejected the transfer.
	SubmissionReverted SubmissionKind = "reverted"
)

type SubmissionError struct {
	Kind   SubmissionKind
	TxHash string
	Reason string
	Err    error
}

func (e *SubmissionError) Error() string {
	switch e.Kind {
	case SubmissionTimeout:
		return fmt.Sprintf("transfer %s broadcast but not confirmed in time: unknown outcome, check transaction hash", e.TxHash)
	case SubmissionReverted:
		if e.Reason == "" {
			return "transfer reverted"
		}
		return "transfer reverted: " + e.Reason
	case SubmissionNetwork:
		fallthrough
	default:
		if e.Err != nil {
			return fmt.Sprintf("transfer not submitted: %v", e.Err)
		}
		return "transfer not submitted"
	}
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}

func (e *SubmissionError) Is(target error) bool {
	return target == ErrSubmission
}

// Retryable reports whether resubmitting cannot produce a second transfer.
func (e *SubmissionError) Retryable() bool {
	return e.Kind == SubmissionNetwork
}
