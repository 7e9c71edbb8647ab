package token

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github/chapool/humtoken/internal/api"
)

func newStatus() *cobra.Command {
	return &cobra.Command{
		Use:   "status <transaction-hash>",
		Short: "Looks up a previously submitted transfer",
		Long: `Looks up a transaction by hash and prints whether it is pending,
confirmed, reverted or unknown to the node.

Use it to resolve a transfer that timed out before submitting it again.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return run(func(ctx context.Context, s *api.Server) error {
				status, err := s.Transfer.Status(ctx, args[0])
				if err != nil {
					return err
				}

				rows := [][2]string{
					{"Transaction", status.TransactionHash},
					{"Status", string(status.State)},
				}
				if status.BlockNumber > 0 {
					rows = append(rows, [2]string{"Block", fmt.Sprint(status.BlockNumber)})
				}
				if status.RevertReason != "" {
					rows = append(rows, [2]string{"Revert reason", status.RevertReason})
				}

				return printRows(stdout, rows)
			})
		},
	}
}
