package probe

import (
	"context"

	"github.com/spf13/cobra"

	"github/chapool/humtoken/internal/api"
	"github/chapool/humtoken/internal/config"
	"github/chapool/humtoken/internal/token/chain"
	"github/chapool/humtoken/internal/util/command"
)

type ReadinessFlags struct {
	Verbose bool
}

func newReadiness() *cobra.Command {
	var flags ReadinessFlags

	cmd := &cobra.Command{
		Use:   "readiness",
		Short: "Runs readiness probes",
		Long: `Runs the readiness probe against the configured node.

Exits 1 if the node is unreachable or no contract is deployed at
HUM_TOKEN_ADDRESS.`,
		Run: func(_ *cobra.Command, _ []string) {
			readinessCmdFunc(flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.Verbose, verboseFlag, "v", false, "Show verbose output.")

	return cmd
}

func readinessCmdFunc(flags ReadinessFlags) {
	cfg := config.DefaultServiceConfigFromEnv()

	err := command.WithServer(context.Background(), cfg, func(ctx context.Context, s *api.Server) error {
		ctx, cancel := context.WithTimeout(ctx, cfg.Management.ProbeTimeout)
		defer cancel()

		return chain.Readiness(ctx, s.Chain)
	})
	report("readiness", err, flags.Verbose)
}
