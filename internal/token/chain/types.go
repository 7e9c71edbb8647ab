package chain

import (
	"context"
	"crypto/ecdsa"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// Method names as used in ReadError fields and Mock call counters.
const (
	MethodName           = "name"
	MethodSymbol         = "symbol"
	MethodDecimals       = "decimals"
	MethodTotalSupply    = "totalSupply"
	MethodBalanceOf      = "balanceOf"
	MethodAllowance      = "allowance"
	MethodTreasury       = "treasury"
	MethodFeeBasisPoints = "feeBasisPoints"
	MethodMaxWalletSize  = "maxWalletSize"
	MethodMaxTxAmount    = "maxTxAmount"
	MethodSignTransfer   = "signTransfer"
	MethodSend           = "sendTransaction"
	MethodWaitMined      = "waitMined"
	MethodReceipt        = "transactionReceipt"
	MethodRevertReason   = "revertReason"
	MethodChainID        = "chainId"
	MethodBlockNumber    = "blockNumber"
	MethodCode           = "code"
)

// Reader exposes the contract's read-only calls.
type Reader interface {
	Name(ctx context.Context) (string, error)
	Symbol(ctx context.Context) (string, error)
	Decimals(ctx context.Context) (uint8, error)
	TotalSupply(ctx context.Context) (*big.Int, error)
	BalanceOf(ctx context.Context, owner common.Address) (*big.Int, error)
	Allowance(ctx context.Context, owner, spender common.Address) (*big.Int, error)
	Treasury(ctx context.Context) (common.Address, error)
	FeeBasisPoints(ctx context.Context) (*big.Int, error)
	MaxWalletSize(ctx context.Context) (*big.Int, error)
	MaxTxAmount(ctx context.Context) (*big.Int, error)
}

// Writer signs, broadcasts and follows transfer transactions.
type Writer interface {
	// SignTransfer simulates transfer(to, amount) from the key's account and
	// returns the signed transaction without broadcasting it. A simulation
	// revert is returned as *RevertError.
	SignTransfer(ctx context.Context, key *ecdsa.PrivateKey, to common.Address, amount *big.Int) (*types.Transaction, error)

	// SendTransaction broadcasts a signed transaction.
	SendTransaction(ctx context.Context, tx *types.Transaction) error

	// WaitMined blocks until tx has a receipt or ctx is done.
	WaitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error)

	// TransactionReceipt returns ethereum.NotFound for unknown or pending hashes.
	TransactionReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error)

	// TransactionPending reports whether hash is known to the node but not mined.
	TransactionPending(ctx context.Context, hash common.Hash) (bool, error)

	// RevertReason replays a mined transaction at its block to recover the
	// revert reason. An empty string means none could be decoded.
	RevertReason(ctx context.Context, hash common.Hash, blockNumber *big.Int) (string, error)
}

// Node exposes the node-level calls used by probes and deployment checks.
type Node interface {
	ChainID(ctx context.Context) (*big.Int, error)
	BlockNumber(ctx context.Context) (uint64, error)
	ContractCode(ctx context.Context) ([]byte, error)
	TokenAddress() common.Address
	Close()
}

// Client is the process-wide handle to the chain. Implementations must be
// safe for concurrent use.
type Client interface {
	Reader
	Writer
	Node
}
