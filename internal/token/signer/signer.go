package signer

import (
	"crypto/ecdsa"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"

	"github/chapool/humtoken/internal/token"
)

// ParseKey decodes a hex private key, with or without 0x prefix.
// Parse failures never include the key material.
func ParseKey(key token.SigningKey) (*ecdsa.PrivateKey, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(key.Reveal()), "0x")
	if raw == "" {
		return nil, errors.New("signing key is empty")
	}

	privateKey, err := crypto.HexToECDSA(raw)
	if err != nil {
		return nil, errors.New("signing key is not a valid secp256k1 private key")
	}

	return privateKey, nil
}

// Address returns the account controlled by privateKey.
func Address(privateKey *ecdsa.PrivateKey) (common.Address, error) {
	publicKeyECDSA, ok := privateKey.Public().(*ecdsa.PublicKey)
	if !ok {
		return common.Address{}, errors.New("failed to cast public key to ECDSA")
	}

	return crypto.PubkeyToAddress(*publicKeyECDSA), nil
}

// KeyFor parses key and verifies it controls from. Any failure is a
// *token.KeyMismatchError.
func KeyFor(key token.SigningKey, from common.Address) (*ecdsa.PrivateKey, error) {
	privateKey, err := ParseKey(key)
	if err != nil {
		return nil, &token.KeyMismatchError{Malformed: true}
	}

	derived, err := Address(privateKey)
	if err != nil {
		return nil, &token.KeyMismatchError{Malformed: true}
	}

	// common.Address compares raw bytes, so casing of the input is irrelevant
	if derived != from {
		return nil, &token.KeyMismatchError{}
	}

	return privateKey, nil
}
