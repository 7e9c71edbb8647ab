package address

import (
	"encoding/hex"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/crypto/sha3"

	"github/chapool/humtoken/internal/token"
)

const (
	// Length is the canonical address length including the 0x prefix.
	Length = 42

	prefix = "0x"

	// private keys are 32 bytes, i.e. 64 hex characters (66 with prefix)
	privateKeyHexLength = 64
)

const (
	hintPrivateKey = "This looks like a private key (64 hex characters), not an address. Provide the 42-character account address starting with 0x."
	hintLength     = "An address is exactly 42 characters: 0x followed by 40 hex characters."
	hintPrefix     = "An address must start with 0x."
	hintHex        = "An address may only contain hexadecimal characters after the 0x prefix."
	hintChecksum   = "The mixed-case checksum does not match; check for typos or use the all-lowercase form."
	hintEmpty      = "An address is required."
)

// Validate checks input against the address rules, in order: non-empty,
// 42 characters, 0x prefix, hex body, checksum casing when mixed-case.
// field names the input in the returned *token.InvalidAddressError.
func Validate(field string, input string) (common.Address, error) {
	if input == "" {
		return common.Address{}, invalid(field, token.AddressReasonEmpty, hintEmpty)
	}

	if len(input) != Length {
		hint := hintLength
		if looksLikePrivateKey(input) {
			hint = hintPrivateKey
		}
		return common.Address{}, invalid(field, token.AddressReasonLength, hint)
	}

	if !strings.HasPrefix(input, prefix) {
		return common.Address{}, invalid(field, token.AddressReasonPrefix, hintPrefix)
	}

	body := input[len(prefix):]
	raw, err := hex.DecodeString(body)
	if err != nil || len(raw) != common.AddressLength {
		return common.Address{}, invalid(field, token.AddressReasonHex, hintHex)
	}

	if isMixedCase(body) && checksumBody(strings.ToLower(body)) != body {
		return common.Address{}, invalid(field, token.AddressReasonChecksum, hintChecksum)
	}

	return common.BytesToAddress(raw), nil
}

// Normalize validates input and returns its checksummed form. A valid
// checksummed input is returned unchanged.
func Normalize(field string, input string) (string, error) {
	addr, err := Validate(field, input)
	if err != nil {
		return "", err
	}
	return Checksum(addr), nil
}

// Checksum renders addr with checksum casing: a hex letter is upper-cased
// when the matching nibble of keccak256(lowercase hex) is >= 8.
func Checksum(addr common.Address) string {
	return prefix + checksumBody(hex.EncodeToString(addr.Bytes()))
}

// Equal compares two address strings case-insensitively.
func Equal(a, b string) bool {
	return strings.EqualFold(a, b)
}

func checksumBody(lower string) string {
	hasher := sha3.NewLegacyKeccak256()
	hasher.Write([]byte(lower))
	hash := hasher.Sum(nil)

	out := []byte(lower)
	for i, c := range out {
		if c < 'a' || c > 'f' {
			continue
		}

		nibble := hash[i/2]
		if i%2 == 0 {
			nibble >>= 4
		} else {
			nibble &= 0x0f
		}

		if nibble >= 8 {
			out[i] = c - ('a' - 'A')
		}
	}

	return string(out)
}

func isMixedCase(body string) bool {
	return strings.ToLower(body) != body && strings.ToUpper(body) != body
}

func looksLikePrivateKey(input string) bool {
	return len(strings.TrimPrefix(input, prefix)) == privateKeyHexLength
}

func invalid(field string, reason token.AddressReason, hint string) error {
	return &token.InvalidAddressError{Field: field, Reason: reason, Hint: hint}
}
