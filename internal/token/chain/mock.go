package chain

import (
	"context"
	"crypto/ecdsa"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"

	"github/chapool/humtoken/internal/token"
	"github/chapool/humtoken/internal/token/bindings/humtoken"
)

// Defaults served by NewMock.
var (
	MockTokenAddress = common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
	MockTreasury     = common.HexToAddress("0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC")
	MockChainID      = big.NewInt(31337)
)

// MockTransfer records a transfer that reached SignTransfer.
type MockTransfer struct {
	From   common.Address
	To     common.Address
	Amount *big.Int
}

// Mock is an in-memory Client for tests. Public fields may be changed before
// use; once shared between goroutines only the methods should be used.
type Mock struct {
	Info        token.Info
	Balances    map[common.Address]*big.Int
	Allowances  map[common.Address]map[common.Address]*big.Int
	Code        []byte
	LatestBlock uint64

	// Errors injects a failure per method name (see the Method constants).
	Errors map[string]error

	// SimulationRevert makes SignTransfer fail with a *RevertError.
	SimulationRevert string
	// ReceiptStatus is the status of mined receipts, success by default.
	ReceiptStatus uint64
	// MinedRevertReason is returned by RevertReason for failed receipts.
	MinedRevertReason string
	// NeverMine makes WaitMined block until its context is done.
	NeverMine bool

	mu        sync.Mutex
	calls     map[string]int
	nonces    map[common.Address]uint64
	transfers []MockTransfer
	receipts  map[common.Hash]*types.Receipt
	pending   map[common.Hash]*types.Transaction
}

var _ Client = (*Mock)(nil)

// NewMock returns a mock serving a plausible HUMToken deployment with no balances.
func NewMock() *Mock {
	decimals := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(token.DefaultDecimals)), nil)

	return &Mock{
		Info: token.Info{
			Name:           "HUMToken",
			Symbol:         "HUM",
			Decimals:       token.DefaultDecimals,
			TotalSupply:    new(big.Int).Mul(big.NewInt(1_000_000_000), decimals),
			Treasury:       MockTreasury,
			FeeBasisPoints: big.NewInt(100),
			MaxWalletSize:  new(big.Int).Mul(big.NewInt(20_000_000), decimals),
			MaxTxAmount:    new(big.Int).Mul(big.NewInt(5_000_000), decimals),
		},
		Balances:      make(map[common.Address]*big.Int),
		Allowances:    make(map[common.Address]map[common.Address]*big.Int),
		Code:          []byte{0x60, 0x80, 0x60, 0x40},
		LatestBlock:   1,
		Errors:        make(map[string]error),
		ReceiptStatus: types.ReceiptStatusSuccessful,
		calls:         make(map[string]int),
		nonces:        make(map[common.Address]uint64),
		receipts:      make(map[common.Hash]*types.Receipt),
		pending:       make(map[common.Hash]*types.Transaction),
	}
}

// SetBalance sets owner's balance in base units.
func (m *Mock) SetBalance(owner common.Address, balance *big.Int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Balances[owner] = new(big.Int).Set(balance)
}

// Calls returns how often method was invoked.
func (m *Mock) Calls(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[method]
}

// Transfers returns the transfers that were signed so far.
func (m *Mock) Transfers() []MockTransfer {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]MockTransfer(nil), m.transfers...)
}

// record counts the call and returns the injected error, if any.
// Callers must hold m.mu.
func (m *Mock) record(method string) error {
	m.calls[method]++
	return m.Errors[method]
}

func copyInt(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(v)
}

func (m *Mock) Name(_ context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record(MethodName); err != nil {
		return "", err
	}
	return m.Info.Name, nil
}

func (m *Mock) Symbol(_ context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record(MethodSymbol); err != nil {
		return "", err
	}
	return m.Info.Symbol, nil
}

func (m *Mock) Decimals(_ context.Context) (uint8, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record(MethodDecimals); err != nil {
		return 0, err
	}
	return m.Info.Decimals, nil
}

func (m *Mock) TotalSupply(_ context.Context) (*big.Int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record(MethodTotalSupply); err != nil {
		return nil, err
	}
	return copyInt(m.Info.TotalSupply), nil
}

func (m *Mock) BalanceOf(_ context.Context, owner common.Address) (*big.Int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record(MethodBalanceOf); err != nil {
		return nil, err
	}
	return copyInt(m.Balances[owner]), nil
}

func (m *Mock) Allowance(_ context.Context, owner, spender common.Address) (*big.Int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record(MethodAllowance); err != nil {
		return nil, err
	}
	return copyInt(m.Allowances[owner][spender]), nil
}

func (m *Mock) Treasury(_ context.Context) (common.Address, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record(MethodTreasury); err != nil {
		return common.Address{}, err
	}
	return m.Info.Treasury, nil
}

func (m *Mock) FeeBasisPoints(_ context.Context) (*big.Int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record(MethodFeeBasisPoints); err != nil {
		return nil, err
	}
	return copyInt(m.Info.FeeBasisPoints), nil
}

func (m *Mock) MaxWalletSize(_ context.Context) (*big.Int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record(MethodMaxWalletSize); err != nil {
		return nil, err
	}
	return copyInt(m.Info.MaxWalletSize), nil
}

func (m *Mock) MaxTxAmount(_ context.Context) (*big.Int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record(MethodMaxTxAmount); err != nil {
		return nil, err
	}
	return copyInt(m.Info.MaxTxAmount), nil
}

// SignTransfer produces a real signed transaction carrying transfer calldata.
func (m *Mock) SignTransfer(_ context.Context, key *ecdsa.PrivateKey, to common.Address, amount *big.Int) (*types.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record(MethodSignTransfer); err != nil {
		return nil, err
	}
	if m.SimulationRevert != "" {
		return nil, &RevertError{Reason: m.SimulationRevert}
	}

	from := crypto.PubkeyToAddress(key.PublicKey)

	tokenABI, err := humtoken.HUMTokenMetaData.GetAbi()
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token ABI")
	}
	data, err := tokenABI.Pack("transfer", to, amount)
	if err != nil {
		return nil, errors.Wrap(err, "failed to pack transfer call")
	}

	nonce := m.nonces[from]
	m.nonces[from]++

	tokenAddress := MockTokenAddress
	tx := types.NewTx(&types.DynamicFeeTx{
		ChainID:   MockChainID,
		Nonce:     nonce,
		GasTipCap: big.NewInt(1_000_000_000),
		GasFeeCap: big.NewInt(2_000_000_000),
		Gas:       60_000,
		To:        &tokenAddress,
		Data:      data,
	})

	signed, err := types.SignTx(tx, types.LatestSignerForChainID(MockChainID), key)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign transaction")
	}

	m.transfers = append(m.transfers, MockTransfer{From: from, To: to, Amount: new(big.Int).Set(amount)})
	return signed, nil
}

func (m *Mock) SendTransaction(_ context.Context, tx *types.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record(MethodSend); err != nil {
		return err
	}
	m.pending[tx.Hash()] = tx
	return nil
}

// WaitMined mines tx immediately unless NeverMine is set. A successful receipt
// moves balances the way the token does, fee included.
func (m *Mock) WaitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	m.mu.Lock()
	err := m.record(MethodWaitMined)
	neverMine := m.NeverMine
	m.mu.Unlock()

	if err != nil {
		return nil, err
	}
	if neverMine {
		<-ctx.Done()
		return nil, ctx.Err()
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.LatestBlock++
	receipt := &types.Receipt{
		Type:        tx.Type(),
		Status:      m.ReceiptStatus,
		TxHash:      tx.Hash(),
		GasUsed:     52_000,
		BlockNumber: new(big.Int).SetUint64(m.LatestBlock),
	}
	m.receipts[tx.Hash()] = receipt
	delete(m.pending, tx.Hash())

	if receipt.Status == types.ReceiptStatusSuccessful && len(m.transfers) > 0 {
		m.applyTransfer(m.transfers[len(m.transfers)-1])
	}

	return receipt, nil
}

// applyTransfer must be called with m.mu held.
func (m *Mock) applyTransfer(t MockTransfer) {
	fee := token.ExpectedFee(t.Amount, m.Info.FeeBasisPoints)
	net := new(big.Int).Sub(t.Amount, fee)

	m.Balances[t.From] = new(big.Int).Sub(copyInt(m.Balances[t.From]), t.Amount)
	m.Balances[t.To] = new(big.Int).Add(copyInt(m.Balances[t.To]), net)
	if fee.Sign() > 0 {
		m.Balances[m.Info.Treasury] = new(big.Int).Add(copyInt(m.Balances[m.Info.Treasury]), fee)
	}
}

func (m *Mock) TransactionReceipt(_ context.Context, hash common.Hash) (*types.Receipt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record(MethodReceipt); err != nil {
		return nil, err
	}
	receipt, ok := m.receipts[hash]
	if !ok {
		return nil, ethereum.NotFound
	}
	return receipt, nil
}

func (m *Mock) TransactionPending(_ context.Context, hash common.Hash) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.pending[hash]
	return ok, nil
}

func (m *Mock) RevertReason(_ context.Context, _ common.Hash, _ *big.Int) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record(MethodRevertReason); err != nil {
		return "", err
	}
	return m.MinedRevertReason, nil
}

func (m *Mock) ChainID(_ context.Context) (*big.Int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record(MethodChainID); err != nil {
		return nil, err
	}
	return new(big.Int).Set(MockChainID), nil
}

func (m *Mock) BlockNumber(_ context.Context) (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record(MethodBlockNumber); err != nil {
		return 0, err
	}
	return m.LatestBlock, nil
}

func (m *Mock) ContractCode(_ context.Context) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record(MethodCode); err != nil {
		return nil, err
	}
	return append([]byte(nil), m.Code...), nil
}

func (m *Mock) TokenAddress() common.Address {
	return MockTokenAddress
}

func (m *Mock) Close() {}
