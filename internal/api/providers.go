package api

import (
	"context"

	"github/chapool/humtoken/internal/config"
	"github/chapool/humtoken/internal/token/chain"
	"github/chapool/humtoken/internal/token/info"
	"github/chapool/humtoken/internal/token/transfer"
)

// PROVIDERS - define here only providers that for various reasons (e.g. cyclic dependency) can't live in their corresponding packages
// or for wrapping providers that only accept sub-configs to prevent the requirement for defining providers for sub-configs.
// https://github.com/google/wire/blob/main/docs/guide.md#defining-providers

// NewChainClient dials the configured node. The dial is bounded by the
// probe timeout.
func NewChainClient(cfg config.Server) (*chain.RPCClient, error) {
	ctx := context.Background()
	if cfg.Management.ProbeTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Management.ProbeTimeout)
		defer cancel()
	}

	return chain.NewRPCClient(ctx, ChainOptions(cfg))
}

// ChainOptions maps the chain config to client options.
func ChainOptions(cfg config.Server) chain.Options {
	return chain.Options{
		NetworkURL:   cfg.Chain.NetworkURL,
		TokenAddress: cfg.Chain.TokenAddress,
		ReadTimeout:  cfg.Chain.ReadTimeout,
	}
}

func NewInfoReader(client chain.Client) *info.Reader {
	return info.NewReader(client)
}

func NewTransferService(cfg config.Server, client chain.Client) *transfer.Service {
	return transfer.NewService(client, cfg.Chain.Decimals, cfg.Chain.ConfirmationTimeout)
}
