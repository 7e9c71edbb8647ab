package chain

import (
	"context"
	"crypto/ecdsa"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github/chapool/humtoken/internal/token/address"
	"github/chapool/humtoken/internal/token/bindings/humtoken"
)

const (
	defaultReadTimeout = 10 * time.Second

	// gas estimates get a 20% buffer
	gasBufferNumerator   = 120
	gasBufferDenominator = 100
)

// Options configures the connection. It is built once at startup.
type Options struct {
	NetworkURL   string
	TokenAddress string
	ReadTimeout  time.Duration
}

// RPCClient talks to a single JSON-RPC endpoint and the deployed HUMToken.
// All fields are set at construction and never mutated, so it is safe for
// concurrent use.
type RPCClient struct {
	client       *ethclient.Client
	token        *humtoken.HUMToken
	tokenABI     *abi.ABI
	tokenAddress common.Address
	chainID      *big.Int
	readTimeout  time.Duration
}

var _ Client = (*RPCClient)(nil)

// NewRPCClient dials the node and resolves the chain id once.
func NewRPCClient(ctx context.Context, opts Options) (*RPCClient, error) {
	if opts.NetworkURL == "" {
		return nil, errors.New("network URL is required")
	}

	tokenAddress, err := address.Validate("token", opts.TokenAddress)
	if err != nil {
		return nil, errors.Wrap(err, "invalid token contract address")
	}

	client, err := ethclient.DialContext(ctx, opts.NetworkURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to RPC node")
	}

	chainID, err := client.ChainID(ctx)
	if err != nil {
		client.Close()
		return nil, errors.Wrap(err, "failed to get chain ID")
	}

	token, err := humtoken.NewHUMToken(tokenAddress, client)
	if err != nil {
		client.Close()
		return nil, errors.Wrap(err, "failed to bind token contract")
	}

	tokenABI, err := humtoken.HUMTokenMetaData.GetAbi()
	if err != nil {
		client.Close()
		return nil, errors.Wrap(err, "failed to parse token ABI")
	}

	readTimeout := opts.ReadTimeout
	if readTimeout <= 0 {
		readTimeout = defaultReadTimeout
	}

	log.Info().
		Str("token_address", tokenAddress.Hex()).
		Str("chain_id", chainID.String()).
		Msg("Connected to chain")

	return &RPCClient{
		client:       client,
		token:        token,
		tokenABI:     tokenABI,
		tokenAddress: tokenAddress,
		chainID:      chainID,
		readTimeout:  readTimeout,
	}, nil
}

// Close closes the underlying connection.
func (c *RPCClient) Close() {
	c.client.Close()
}

func (c *RPCClient) TokenAddress() common.Address {
	return c.tokenAddress
}

// withTimeout bounds a single read.
func (c *RPCClient) withTimeout(ctx context.Context) (*bind.CallOpts, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(ctx, c.readTimeout)
	return &bind.CallOpts{Context: ctx}, cancel
}

func (c *RPCClient) Name(ctx context.Context) (string, error) {
	opts, cancel := c.withTimeout(ctx)
	defer cancel()

	name, err := c.token.Name(opts)
	return name, errors.Wrap(err, "failed to call name")
}

func (c *RPCClient) Symbol(ctx context.Context) (string, error) {
	opts, cancel := c.withTimeout(ctx)
	defer cancel()

	symbol, err := c.token.Symbol(opts)
	return symbol, errors.Wrap(err, "failed to call symbol")
}

func (c *RPCClient) Decimals(ctx context.Context) (uint8, error) {
	opts, cancel := c.withTimeout(ctx)
	defer cancel()

	decimals, err := c.token.Decimals(opts)
	return decimals, errors.Wrap(err, "failed to call decimals")
}

func (c *RPCClient) TotalSupply(ctx context.Context) (*big.Int, error) {
	opts, cancel := c.withTimeout(ctx)
	defer cancel()

	supply, err := c.token.TotalSupply(opts)
	return supply, errors.Wrap(err, "failed to call totalSupply")
}

func (c *RPCClient) BalanceOf(ctx context.Context, owner common.Address) (*big.Int, error) {
	opts, cancel := c.withTimeout(ctx)
	defer cancel()

	balance, err := c.token.BalanceOf(opts, owner)
	return balance, errors.Wrap(err, "failed to call balanceOf")
}

func (c *RPCClient) Allowance(ctx context.Context, owner, spender common.Address) (*big.Int, error) {
	opts, cancel := c.withTimeout(ctx)
	defer cancel()

	allowance, err := c.token.Allowance(opts, owner, spender)
	return allowance, errors.Wrap(err, "failed to call allowance")
}

func (c *RPCClient) Treasury(ctx context.Context) (common.Address, error) {
	opts, cancel := c.withTimeout(ctx)
	defer cancel()

	treasury, err := c.token.Treasury(opts)
	return treasury, errors.Wrap(err, "failed to call treasury")
}

func (c *RPCClient) FeeBasisPoints(ctx context.Context) (*big.Int, error) {
	opts, cancel := c.withTimeout(ctx)
	defer cancel()

	fee, err := c.token.FeeBasisPoints(opts)
	return fee, errors.Wrap(err, "failed to call feeBasisPoints")
}

func (c *RPCClient) MaxWalletSize(ctx context.Context) (*big.Int, error) {
	opts, cancel := c.withTimeout(ctx)
	defer cancel()

	size, err := c.token.MaxWalletSize(opts)
	return size, errors.Wrap(err, "failed to call maxWalletSize")
}

func (c *RPCClient) MaxTxAmount(ctx context.Context) (*big.Int, error) {
	opts, cancel := c.withTimeout(ctx)
	defer cancel()

	maxTx, err := c.token.MaxTxAmount(opts)
	return maxTx, errors.Wrap(err, "failed to call maxTxAmount")
}

// SignTransfer estimates gas for transfer(to, amount) from the key's account,
// which surfaces contract reverts before anything is broadcast, then builds
// and signs the transaction with NoSend.
func (c *RPCClient) SignTransfer(ctx context.Context, key *ecdsa.PrivateKey, to common.Address, amount *big.Int) (*types.Transaction, error) {
	from := crypto.PubkeyToAddress(key.PublicKey)

	data, err := c.tokenABI.Pack("transfer", to, amount)
	if err != nil {
		return nil, errors.Wrap(err, "failed to pack transfer call")
	}

	gas, err := c.client.EstimateGas(ctx, ethereum.CallMsg{
		From: from,
		To:   &c.tokenAddress,
		Data: data,
	})
	if err != nil {
		if reason, ok := RevertReasonFromError(err); ok {
			return nil, &RevertError{Reason: reason, Err: err}
		}
		return nil, errors.Wrap(err, "failed to estimate gas")
	}

	opts, err := bind.NewKeyedTransactorWithChainID(key, c.chainID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create transactor")
	}
	opts.Context = ctx
	opts.NoSend = true
	opts.GasLimit = gas * gasBufferNumerator / gasBufferDenominator

	tx, err := c.token.Transfer(opts, to, amount)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign transfer")
	}

	return tx, nil
}

func (c *RPCClient) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	if err := c.client.SendTransaction(ctx, tx); err != nil {
		return errors.Wrap(err, "failed to send transaction")
	}
	return nil
}

func (c *RPCClient) WaitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	receipt, err := bind.WaitMined(ctx, c.client, tx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to wait for transaction receipt")
	}
	return receipt, nil
}

func (c *RPCClient) TransactionReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	receipt, err := c.client.TransactionReceipt(ctx, hash)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get transaction receipt")
	}
	return receipt, nil
}

func (c *RPCClient) TransactionPending(ctx context.Context, hash common.Hash) (bool, error) {
	_, isPending, err := c.client.TransactionByHash(ctx, hash)
	if err != nil {
		if errors.Is(err, ethereum.NotFound) {
			return false, nil
		}
		return false, errors.Wrap(err, "failed to get transaction")
	}
	return isPending, nil
}

func (c *RPCClient) RevertReason(ctx context.Context, hash common.Hash, blockNumber *big.Int) (string, error) {
	tx, _, err := c.client.TransactionByHash(ctx, hash)
	if err != nil {
		return "", errors.Wrap(err, "failed to get transaction")
	}

	from, err := types.Sender(types.LatestSignerForChainID(tx.ChainId()), tx)
	if err != nil {
		return "", errors.Wrap(err, "failed to recover transaction sender")
	}

	_, err = c.client.CallContract(ctx, ethereum.CallMsg{
		From:  from,
		To:    tx.To(),
		Gas:   tx.Gas(),
		Value: tx.Value(),
		Data:  tx.Data(),
	}, blockNumber)
	if err == nil {
		return "", nil
	}

	if reason, ok := RevertReasonFromError(err); ok {
		return reason, nil
	}

	return "", errors.Wrap(err, "failed to replay transaction")
}

func (c *RPCClient) ChainID(_ context.Context) (*big.Int, error) {
	return new(big.Int).Set(c.chainID), nil
}

func (c *RPCClient) BlockNumber(ctx context.Context) (uint64, error) {
	ctx, cancel := context.WithTimeout(ctx, c.readTimeout)
	defer cancel()

	number, err := c.client.BlockNumber(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to get latest block number")
	}
	return number, nil
}

func (c *RPCClient) ContractCode(ctx context.Context) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.readTimeout)
	defer cancel()

	code, err := c.client.CodeAt(ctx, c.tokenAddress, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get contract code")
	}
	return code, nil
}
