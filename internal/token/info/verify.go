package info

import (
	"context"
	"fmt"
	"math/big"
	"strconv"

	"github.com/pkg/errors"

	"github/chapool/humtoken/internal/token"
	"github/chapool/humtoken/internal/token/amount"
	"github/chapool/humtoken/internal/token/chain"
)

// Check is the outcome of one deployment check.
type Check struct {
	Name  string
	Value string
	Err   error
}

func (c Check) OK() bool {
	return c.Err == nil
}

// Report collects the checks of Verify in execution order.
type Report struct {
	Checks []Check
}

func (r *Report) OK() bool {
	for _, c := range r.Checks {
		if !c.OK() {
			return false
		}
	}
	return true
}

func (r *Report) add(name string, value string, err error) {
	r.Checks = append(r.Checks, Check{Name: name, Value: value, Err: err})
}

// Verify checks that the configured deployment is reachable and sane: the
// chain answers, contract code exists at the token address and every
// attribute is readable. Attribute checks run even if earlier ones failed;
// a missing contract stops the run.
func Verify(ctx context.Context, client chain.Client, decimals uint8) *Report {
	report := &Report{}

	chainID, err := client.ChainID(ctx)
	if err != nil {
		report.add(chain.MethodChainID, "", err)
		return report
	}
	report.add(chain.MethodChainID, chainID.String(), nil)

	code, err := client.ContractCode(ctx)
	switch {
	case err != nil:
		report.add(chain.MethodCode, "", err)
		return report
	case len(code) == 0:
		report.add(chain.MethodCode, "", errors.Errorf("no contract found at %s", client.TokenAddress().Hex()))
		return report
	default:
		report.add(chain.MethodCode, fmt.Sprintf("%d bytes at %s", len(code), client.TokenAddress().Hex()), nil)
	}

	name, err := client.Name(ctx)
	report.add(chain.MethodName, name, err)

	symbol, err := client.Symbol(ctx)
	report.add(chain.MethodSymbol, symbol, err)

	onChainDecimals, err := client.Decimals(ctx)
	if err == nil && onChainDecimals != decimals {
		err = errors.Errorf("contract reports %d decimals, configured %d", onChainDecimals, decimals)
	}
	report.add(chain.MethodDecimals, strconv.Itoa(int(onChainDecimals)), err)

	report.addAmount(chain.MethodTotalSupply, decimals, func() (*big.Int, error) { return client.TotalSupply(ctx) })

	treasury, err := client.Treasury(ctx)
	treasuryValue := ""
	if err == nil {
		treasuryValue = treasury.Hex()
	}
	report.add(chain.MethodTreasury, treasuryValue, err)

	fee, err := client.FeeBasisPoints(ctx)
	feeValue := ""
	if err == nil {
		feeValue = fmt.Sprintf("%s (%s%%)", fee, amount.FeePercent(fee))
		if fee.Cmp(big.NewInt(token.MaxFeeBasisPoints)) > 0 {
			err = errors.Errorf("fee exceeds %d basis points", token.MaxFeeBasisPoints)
		}
	}
	report.add(chain.MethodFeeBasisPoints, feeValue, err)

	report.addAmount(chain.MethodMaxWalletSize, decimals, func() (*big.Int, error) { return client.MaxWalletSize(ctx) })
	report.addAmount(chain.MethodMaxTxAmount, decimals, func() (*big.Int, error) { return client.MaxTxAmount(ctx) })

	return report
}

func (r *Report) addAmount(name string, decimals uint8, read func() (*big.Int, error)) {
	value, err := read()
	if err != nil {
		r.add(name, "", err)
		return
	}
	r.add(name, amount.ToDecimalString(value, decimals), nil)
}
