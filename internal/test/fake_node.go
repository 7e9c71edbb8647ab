package test

import (
	"context"
	"math/big"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/pkg/errors"

	"github/chapool/humtoken/internal/token/bindings/humtoken"
	"github/chapool/humtoken/internal/token/chain"
)

// revertSelector is the selector of Error(string).
var revertSelector = []byte{0x08, 0xc3, 0x79, 0xa0}

// FakeNode is the state served by the in-process JSON-RPC node. Lock Mu
// when changing it while the node is serving.
type FakeNode struct {
	Mu sync.Mutex

	ChainID     *big.Int
	LatestBlock uint64
	Code        []byte
	Mock        *chain.Mock // attribute values and balances are read from here

	// Revert makes every eth_call and eth_estimateGas revert with this reason.
	Revert string
}

// WithFakeNode serves a JSON-RPC node answering eth_chainId, eth_blockNumber,
// eth_getCode, eth_call and eth_estimateGas for the HUMToken ABI on a local
// HTTP endpoint. The closure receives the endpoint URL.
func WithFakeNode(t *testing.T, closure func(url string, node *FakeNode)) {
	t.Helper()

	node := &FakeNode{
		ChainID:     new(big.Int).Set(chain.MockChainID),
		LatestBlock: 1,
		Code:        []byte{0x60, 0x80, 0x60, 0x40},
		Mock:        chain.NewMock(),
	}

	tokenABI, err := humtoken.HUMTokenMetaData.GetAbi()
	if err != nil {
		t.Fatalf("failed to parse token ABI: %v", err)
	}

	server := rpc.NewServer()
	if err := server.RegisterName("eth", &fakeEthAPI{node: node, abi: tokenABI}); err != nil {
		t.Fatalf("failed to register fake eth API: %v", err)
	}

	httpServer := httptest.NewServer(server)
	defer func() {
		httpServer.Close()
		server.Stop()
	}()

	closure(httpServer.URL, node)
}

type callArgs struct {
	From  *common.Address `json:"from"`
	To    *common.Address `json:"to"`
	Input hexutil.Bytes   `json:"input"`
	Data  hexutil.Bytes   `json:"data"`
}

func (a callArgs) calldata() []byte {
	if len(a.Input) > 0 {
		return a.Input
	}
	return a.Data
}

type revertError struct {
	reason string
	data   string
}

func (e *revertError) Error() string {
	return "execution reverted: " + e.reason
}

func (e *revertError) ErrorCode() int {
	return 3
}

func (e *revertError) ErrorData() interface{} {
	return e.data
}

func newRevertError(reason string) error {
	stringType, err := abi.NewType("string", "", nil)
	if err != nil {
		return err
	}

	packed, err := abi.Arguments{{Type: stringType}}.Pack(reason)
	if err != nil {
		return err
	}

	data := append(append([]byte{}, revertSelector...), packed...)
	return &revertError{reason: reason, data: hexutil.Encode(data)}
}

type fakeEthAPI struct {
	node *FakeNode
	abi  *abi.ABI
}

func (api *fakeEthAPI) ChainId() *hexutil.Big { //nolint:revive,stylecheck // JSON-RPC method name
	api.node.Mu.Lock()
	defer api.node.Mu.Unlock()
	return (*hexutil.Big)(new(big.Int).Set(api.node.ChainID))
}

func (api *fakeEthAPI) BlockNumber() hexutil.Uint64 {
	api.node.Mu.Lock()
	defer api.node.Mu.Unlock()
	return hexutil.Uint64(api.node.LatestBlock)
}

func (api *fakeEthAPI) GetCode(_ common.Address, _ *string) hexutil.Bytes {
	api.node.Mu.Lock()
	defer api.node.Mu.Unlock()
	return append(hexutil.Bytes{}, api.node.Code...)
}

func (api *fakeEthAPI) EstimateGas(_ callArgs, _ *string) (hexutil.Uint64, error) {
	api.node.Mu.Lock()
	defer api.node.Mu.Unlock()

	if api.node.Revert != "" {
		return 0, newRevertError(api.node.Revert)
	}
	return hexutil.Uint64(52_000), nil
}

func (api *fakeEthAPI) Call(ctx context.Context, args callArgs, _ *string) (hexutil.Bytes, error) {
	api.node.Mu.Lock()
	reason := api.node.Revert
	mock := api.node.Mock
	api.node.Mu.Unlock()

	if reason != "" {
		return nil, newRevertError(reason)
	}

	data := args.calldata()
	if len(data) < 4 {
		return nil, errors.New("calldata too short")
	}

	method, err := api.abi.MethodById(data[:4])
	if err != nil {
		return nil, err
	}

	inputs, err := method.Inputs.Unpack(data[4:])
	if err != nil {
		return nil, err
	}

	var result interface{}
	switch method.Name {
	case "name":
		result, err = mock.Name(ctx)
	case "symbol":
		result, err = mock.Symbol(ctx)
	case "decimals":
		result, err = mock.Decimals(ctx)
	case "totalSupply":
		result, err = mock.TotalSupply(ctx)
	case "treasury":
		result, err = mock.Treasury(ctx)
	case "feeBasisPoints":
		result, err = mock.FeeBasisPoints(ctx)
	case "maxWalletSize":
		result, err = mock.MaxWalletSize(ctx)
	case "maxTxAmount":
		result, err = mock.MaxTxAmount(ctx)
	case "balanceOf":
		result, err = mock.BalanceOf(ctx, inputs[0].(common.Address))
	case "allowance":
		result, err = mock.Allowance(ctx, inputs[0].(common.Address), inputs[1].(common.Address))
	default:
		return nil, errors.Errorf("method %s not served by fake node", method.Name)
	}
	if err != nil {
		return nil, err
	}

	return method.Outputs.Pack(result)
}
