package token

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github/chapool/humtoken/internal/api"
	"github/chapool/humtoken/internal/config"
	"github/chapool/humtoken/internal/util/command"
)

// stdout receives command output, logs go to stderr.
var stdout io.Writer = os.Stdout

func New() *cobra.Command {
	return command.NewSubcommandGroup("token",
		newInfo(),
		newBalance(),
		newAllowance(),
		newVerify(),
		newTransfer(),
		newStatus(),
	)
}

// run executes f against a server connected to the configured node.
func run(f func(ctx context.Context, s *api.Server) error) error {
	cfg := config.DefaultServiceConfigFromEnv()
	return command.WithServer(context.Background(), cfg, f)
}

// printRows writes label/value pairs as aligned columns.
func printRows(w io.Writer, rows [][2]string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, row := range rows {
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", row[0], row[1]); err != nil {
			return err
		}
	}
	return tw.Flush()
}
