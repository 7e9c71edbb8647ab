// Package amount converts between human decimal token amounts and integer
// base units.
package amount

import (
	"math/big"
	"strings"

	"github.com/shopspring/decimal"

	"github/chapool/humtoken/internal/token"
)

// uint256 is the contract's native width.
const maxBits = 256

// ToBaseUnits converts a plain decimal string such as "1.5" into base units.
// The amount must be positive and exactly representable with the given
// decimals; extra fractional digits are rejected rather than truncated.
func ToBaseUnits(value string, decimals uint8) (*big.Int, error) {
	if !isPlainDecimal(value) {
		return nil, invalid(token.AmountReasonNotNumeric, decimals)
	}

	parsed, err := decimal.NewFromString(value)
	if err != nil {
		return nil, invalid(token.AmountReasonNotNumeric, decimals)
	}

	if parsed.Sign() <= 0 {
		return nil, invalid(token.AmountReasonNotPositive, decimals)
	}

	if _, frac, ok := strings.Cut(value, "."); ok && len(frac) > int(decimals) {
		return nil, invalid(token.AmountReasonPrecision, decimals)
	}

	base := parsed.Shift(int32(decimals))
	if !base.IsInteger() {
		return nil, invalid(token.AmountReasonPrecision, decimals)
	}

	units := base.BigInt()
	if units.BitLen() > maxBits {
		return nil, invalid(token.AmountReasonOverflow, decimals)
	}

	return units, nil
}

// ToDecimalString renders base units as a decimal string without grouping.
// Trailing fractional zeros are dropped; no precision is lost.
func ToDecimalString(units *big.Int, decimals uint8) string {
	if units == nil {
		return "0"
	}
	return decimal.NewFromBigInt(units, -int32(decimals)).String()
}

// isPlainDecimal accepts an optional sign, digits and at most one dot with
// digits on both sides. Exponents, grouping and whitespace are refused.
func isPlainDecimal(value string) bool {
	s := strings.TrimPrefix(strings.TrimPrefix(value, "-"), "+")
	if s == "" {
		return false
	}

	intPart, frac, hasDot := strings.Cut(s, ".")
	if !allDigits(intPart) {
		return false
	}
	if hasDot && !allDigits(frac) {
		return false
	}

	return true
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func invalid(reason token.AmountReason, decimals uint8) error {
	return &token.InvalidAmountError{Reason: reason, Decimals: decimals}
}

// FeePercent renders basis points as a percentage with two decimals,
// e.g. 150 -> "1.50".
func FeePercent(basisPoints *big.Int) string {
	if basisPoints == nil {
		return "0.00"
	}
	return decimal.NewFromBigInt(basisPoints, -2).StringFixed(2)
}
