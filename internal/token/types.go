package token

import (
	"crypto/ecdsa"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// DefaultDecimals is the decimal count of HUMToken.
const DefaultDecimals uint8 = 18

// MaxFeeBasisPoints is 100%.
const MaxFeeBasisPoints = 10000

// Info is a snapshot of the read-only token attributes. It is fetched fresh
// for every request and never cached.
type Info struct {
	Name           string
	Symbol         string
	Decimals       uint8
	TotalSupply    *big.Int
	Treasury       common.Address
	FeeBasisPoints *big.Int
	MaxWalletSize  *big.Int
	MaxTxAmount    *big.Int
}

// Balance is an owner's holding in base units.
type Balance struct {
	Owner  common.Address
	Amount *big.Int
}

// Allowance is what spender may still move on behalf of owner, in base units.
type Allowance struct {
	Owner   common.Address
	Spender common.Address
	Amount  *big.Int
}

// TransferRequest is constructed per user action and consumed once.
type TransferRequest struct {
	From       string
	To         string
	Amount     string
	SigningKey SigningKey
}

// ValidatedTransfer is the output of the pre-flight checks. It holds the
// parsed key and must not outlive the submission.
type ValidatedTransfer struct {
	From       common.Address
	To         common.Address
	Amount     *big.Int
	AmountText string
	Key        *ecdsa.PrivateKey
}

// TransferResult is created only after on-chain confirmation.
type TransferResult struct {
	TransactionHash string
	From            common.Address
	To              common.Address
	Amount          string
	Confirmed       bool
	BlockNumber     uint64
	GasUsed         uint64
}

// TransactionState is the outcome of a hash lookup.
type TransactionState string

const (
	TransactionPending   TransactionState = "pending"
	TransactionConfirmed TransactionState = "confirmed"
	TransactionReverted  TransactionState = "reverted"
	TransactionUnknown   TransactionState = "unknown"
)

type TransactionStatus struct {
	TransactionHash string
	State           TransactionState
	BlockNumber     uint64
	RevertReason    string
}

// ExpectedFee computes the fee the contract withholds from amount, using the
// contract's integer division.
func ExpectedFee(amount *big.Int, feeBasisPoints *big.Int) *big.Int {
	if amount == nil || feeBasisPoints == nil {
		return new(big.Int)
	}
	fee := new(big.Int).Mul(amount, feeBasisPoints)
	return fee.Quo(fee, big.NewInt(MaxFeeBasisPoints))
}
