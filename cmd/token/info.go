package token

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github/chapool/humtoken/internal/api"
	"github/chapool/humtoken/internal/token/amount"
)

func newInfo() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Prints the token attributes",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return run(func(ctx context.Context, s *api.Server) error {
				info, err := s.Info.FetchAll(ctx)
				if err != nil {
					return err
				}

				return printRows(stdout, [][2]string{
					{"Address", s.Chain.TokenAddress().Hex()},
					{"Name", info.Name},
					{"Symbol", info.Symbol},
					{"Decimals", fmt.Sprint(info.Decimals)},
					{"Total supply", amount.ToDecimalString(info.TotalSupply, info.Decimals)},
					{"Treasury", info.Treasury.Hex()},
					{"Fee", fmt.Sprintf("%s bp (%s%%)", info.FeeBasisPoints, amount.FeePercent(info.FeeBasisPoints))},
					{"Max wallet size", amount.ToDecimalString(info.MaxWalletSize, info.Decimals)},
					{"Max tx amount", amount.ToDecimalString(info.MaxTxAmount, info.Decimals)},
				})
			})
		},
	}
}
