package probe

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github/chapool/humtoken/internal/api"
	"github/chapool/humtoken/internal/config"
	"github/chapool/humtoken/internal/token/chain"
	"github/chapool/humtoken/internal/util/command"
)

type LivenessFlags struct {
	Verbose bool
}

func newLiveness() *cobra.Command {
	var flags LivenessFlags

	cmd := &cobra.Command{
		Use:   "liveness",
		Short: "Runs liveness probes",
		Long: `Runs the liveness probe against the configured node.

Exits 1 if the node does not serve the latest block.`,
		Run: func(_ *cobra.Command, _ []string) {
			livenessCmdFunc(flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.Verbose, verboseFlag, "v", false, "Show verbose output.")

	return cmd
}

func livenessCmdFunc(flags LivenessFlags) {
	cfg := config.DefaultServiceConfigFromEnv()

	err := command.WithServer(context.Background(), cfg, func(ctx context.Context, s *api.Server) error {
		ctx, cancel := context.WithTimeout(ctx, cfg.Management.ProbeTimeout)
		defer cancel()

		return chain.Liveness(ctx, s.Chain)
	})
	report("liveness", err, flags.Verbose)
}

func report(probe string, err error, verbose bool) {
	if err != nil {
		log.Error().Err(err).Str("probe", probe).Msg("Probe failed")
		os.Exit(1)
	}

	if verbose {
		fmt.Printf("%s: ok\n", probe) //nolint:forbidigo
	}
}
