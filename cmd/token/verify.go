package token

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github/chapool/humtoken/internal/api"
	"github/chapool/humtoken/internal/token/info"
)

var errVerificationFailed = errors.New("token deployment verification failed")

func newVerify() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Verifies the token deployment",
		Long: `Checks the configured chain and token deployment: chain id, contract code
at HUM_TOKEN_ADDRESS, then every token attribute one by one.

Exits 1 if any check fails.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return run(func(ctx context.Context, s *api.Server) error {
				report := info.Verify(ctx, s.Chain, s.Config.Chain.Decimals)

				rows := make([][2]string, 0, len(report.Checks))
				for _, check := range report.Checks {
					result := "ok  " + check.Value
					if !check.OK() {
						result = fmt.Sprintf("FAIL %v", check.Err)
					}
					rows = append(rows, [2]string{check.Name, result})
				}

				if err := printRows(stdout, rows); err != nil {
					return err
				}

				if !report.OK() {
					return errVerificationFailed
				}
				return nil
			})
		},
	}
}
