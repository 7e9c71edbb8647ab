//go:build wireinject

package api

import (
	"github.com/google/wire"

	"github/chapool/humtoken/internal/config"
	"github/chapool/humtoken/internal/metrics"
	"github/chapool/humtoken/internal/token/chain"
)

// INJECTORS - https://github.com/google/wire/blob/main/docs/guide.md#injectors

// serviceSet groups the default set of providers that are required for initing a server
var serviceSet = wire.NewSet(
	newServerWithComponents,
	NewInfoReader,
	NewTransferService,
	metrics.New,
)

var rpcChainSet = wire.NewSet(
	NewChainClient,
	wire.Bind(new(chain.Client), new(*chain.RPCClient)),
)

// InitNewServer returns a new Server instance connected to the configured node.
func InitNewServer(
	_ config.Server,
) (*Server, error) {
	wire.Build(serviceSet, rpcChainSet)
	return new(Server), nil
}

// InitNewServerWithChain returns a new Server instance with the given chain client.
// All the other components are initialized via go wire according to the configuration.
func InitNewServerWithChain(
	_ config.Server,
	_ chain.Client,
) (*Server, error) {
	wire.Build(serviceSet)
	return new(Server), nil
}
