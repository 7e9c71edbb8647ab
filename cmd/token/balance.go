package token

import (
	"context"

	"github.com/spf13/cobra"

	"github/chapool/humtoken/internal/api"
	"github/chapool/humtoken/internal/token/amount"
)

func newBalance() *cobra.Command {
	return &cobra.Command{
		Use:   "balance <address>",
		Short: "Prints the token balance of an address",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return run(func(ctx context.Context, s *api.Server) error {
				balance, err := s.Info.Balance(ctx, args[0])
				if err != nil {
					return err
				}

				return printRows(stdout, [][2]string{
					{"Address", balance.Owner.Hex()},
					{"Balance", amount.ToDecimalString(balance.Amount, s.Config.Chain.Decimals)},
					{"Base units", balance.Amount.String()},
				})
			})
		},
	}
}
