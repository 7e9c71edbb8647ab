package token

import (
	"context"

	"github.com/spf13/cobra"

	"github/chapool/humtoken/internal/api"
	"github/chapool/humtoken/internal/token/amount"
)

func newAllowance() *cobra.Command {
	return &cobra.Command{
		Use:   "allowance <owner> <spender>",
		Short: "Prints what spender may still transfer on behalf of owner",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return run(func(ctx context.Context, s *api.Server) error {
				allowance, err := s.Info.Allowance(ctx, args[0], args[1])
				if err != nil {
					return err
				}

				return printRows(stdout, [][2]string{
					{"Owner", allowance.Owner.Hex()},
					{"Spender", allowance.Spender.Hex()},
					{"Allowance", amount.ToDecimalString(allowance.Amount, s.Config.Chain.Decimals)},
					{"Base units", allowance.Amount.String()},
				})
			})
		},
	}
}
