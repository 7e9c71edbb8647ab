package info

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github/chapool/humtoken/internal/token"
	"github/chapool/humtoken/internal/token/address"
	"github/chapool/humtoken/internal/token/chain"
)

// Reader serves the read-only side of the token. It holds no state besides
// the chain handle and never caches.
type Reader struct {
	chain chain.Reader
}

func NewReader(reader chain.Reader) *Reader {
	return &Reader{chain: reader}
}

// FetchAll issues the eight attribute reads concurrently. If any of them
// fails the result is a *token.ReadError naming that attribute and no Info.
func (r *Reader) FetchAll(ctx context.Context) (*token.Info, error) {
	var info token.Info

	g, ctx := errgroup.WithContext(ctx)

	read := func(field string, fn func(ctx context.Context) error) {
		g.Go(func() error {
			if err := fn(ctx); err != nil {
				return &token.ReadError{Field: field, Err: err}
			}
			return nil
		})
	}

	// every closure writes a distinct field of info
	read(chain.MethodName, func(ctx context.Context) (err error) {
		info.Name, err = r.chain.Name(ctx)
		return err
	})
	read(chain.MethodSymbol, func(ctx context.Context) (err error) {
		info.Symbol, err = r.chain.Symbol(ctx)
		return err
	})
	read(chain.MethodDecimals, func(ctx context.Context) (err error) {
		info.Decimals, err = r.chain.Decimals(ctx)
		return err
	})
	read(chain.MethodTotalSupply, func(ctx context.Context) (err error) {
		info.TotalSupply, err = r.chain.TotalSupply(ctx)
		return err
	})
	read(chain.MethodTreasury, func(ctx context.Context) (err error) {
		info.Treasury, err = r.chain.Treasury(ctx)
		return err
	})
	read(chain.MethodFeeBasisPoints, func(ctx context.Context) (err error) {
		info.FeeBasisPoints, err = r.chain.FeeBasisPoints(ctx)
		return err
	})
	read(chain.MethodMaxWalletSize, func(ctx context.Context) (err error) {
		info.MaxWalletSize, err = r.chain.MaxWalletSize(ctx)
		return err
	})
	read(chain.MethodMaxTxAmount, func(ctx context.Context) (err error) {
		info.MaxTxAmount, err = r.chain.MaxTxAmount(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &info, nil
}

// Balance validates owner and reads its balance.
func (r *Reader) Balance(ctx context.Context, owner string) (*token.Balance, error) {
	ownerAddress, err := address.Validate("address", owner)
	if err != nil {
		return nil, err
	}

	balance, err := r.chain.BalanceOf(ctx, ownerAddress)
	if err != nil {
		return nil, &token.ReadError{Field: chain.MethodBalanceOf, Err: err}
	}

	return &token.Balance{Owner: ownerAddress, Amount: balance}, nil
}

// Allowance validates both addresses and reads the allowance.
func (r *Reader) Allowance(ctx context.Context, owner string, spender string) (*token.Allowance, error) {
	ownerAddress, err := address.Validate("owner", owner)
	if err != nil {
		return nil, err
	}

	spenderAddress, err := address.Validate("spender", spender)
	if err != nil {
		return nil, err
	}

	allowance, err := r.chain.Allowance(ctx, ownerAddress, spenderAddress)
	if err != nil {
		return nil, &token.ReadError{Field: chain.MethodAllowance, Err: err}
	}

	return &token.Allowance{Owner: ownerAddress, Spender: spenderAddress, Amount: allowance}, nil
}
