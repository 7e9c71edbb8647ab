package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github/chapool/humtoken/internal/api"
	"github/chapool/humtoken/internal/api/router"
	"github/chapool/humtoken/internal/config"
	"github/chapool/humtoken/internal/token/info"
	"github/chapool/humtoken/internal/util/command"
)

const (
	verifyFlag      = "verify"
	shutdownTimeout = 30 * time.Second
)

type Flags struct {
	Verify bool
}

func New() *cobra.Command {
	var flags Flags

	cmd := &cobra.Command{
		Use:   "server",
		Short: "Starts the server",
		Long: `Starts the HTTP server.

Connects to NETWORK_URL and serves the token at HUM_TOKEN_ADDRESS.
Requires configuration through ENV.`,
		Run: func(_ *cobra.Command, _ []string) {
			runServer(flags)
		},
	}

	cmd.Flags().BoolVar(&flags.Verify, verifyFlag, false, "Verify the token deployment before serving and exit if it fails")

	return cmd
}

func runServer(flags Flags) {
	cfg := config.DefaultServiceConfigFromEnv()
	command.SetupLogger(cfg)

	s, err := api.InitNewServer(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize server")
	}

	if flags.Verify {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Management.ProbeTimeout)
		report := info.Verify(ctx, s.Chain, cfg.Chain.Decimals)
		cancel()

		for _, check := range report.Checks {
			if !check.OK() {
				log.Error().Err(check.Err).Str("check", check.Name).Msg("Deployment check failed")
			}
		}
		if !report.OK() {
			s.Chain.Close()
			log.Fatal().Msg("Token deployment verification failed")
		}
		log.Info().Msg("Token deployment verified")
	}

	router.Init(s)

	go func() {
		if err := s.Start(); err != nil {
			if errors.Is(err, http.ErrServerClosed) {
				log.Info().Msg("Server closed")
			} else {
				log.Fatal().Err(err).Msg("Failed to start server")
			}
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if errs := s.Shutdown(ctx); len(errs) > 0 {
		log.Fatal().Errs("shutdownErrors", errs).Msg("Failed to gracefully shut down server")
	}
}
