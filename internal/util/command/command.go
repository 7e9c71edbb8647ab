package command

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github/chapool/humtoken/internal/api"
	"github/chapool/humtoken/internal/config"
)

const (
	// shutdownTimeout bounds closing the chain connection after a command.
	shutdownTimeout = 10 * time.Second
)

// NewSubcommandGroup returns a command that only groups its subcommands
// and prints its help when run by itself.
func NewSubcommandGroup(use string, subcommands ...*cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: fmt.Sprintf("%s related subcommands", use),
		Run: func(cmd *cobra.Command, _ []string) {
			if err := cmd.Help(); err != nil {
				log.Error().Err(err).Msg("Failed to print help")
			}
		},
	}

	cmd.AddCommand(subcommands...)

	return cmd
}

// SetupLogger applies the logger config globally.
func SetupLogger(cfg config.Server) {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.SetGlobalLevel(cfg.Logger.Level)

	if cfg.Logger.PrettyPrintConsole {
		log.Logger = log.Output(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
			w.TimeFormat = "15:04:05"
			w.Out = os.Stderr
		}))
	}
}

// WithServer initializes a server connected to the configured node, runs f
// and shuts the server down again, returning the error of f.
func WithServer(ctx context.Context, cfg config.Server, f func(ctx context.Context, s *api.Server) error) error {
	SetupLogger(cfg)

	s, err := api.InitNewServer(cfg)
	if err != nil {
		log.Error().Err(err).Msg("Failed to initialize server")
		return err
	}

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()

		if errs := s.Shutdown(shutdownCtx); len(errs) > 0 {
			log.Error().Errs("shutdownErrors", errs).Msg("Failed to gracefully shut down server")
		}
	}()

	return f(ctx, s)
}
