package port

import (
	"context"
	"math/big"

	"aurora_deployer/internal/domain/entity"
)

// ChainClient defines the JSON-RPC calls made against a network profile's endpoint.
type ChainClient interface {
	// ChainID returns the chain identifier reported by the node.
	ChainID(ctx context.Context) (uint64, error)

	// GasPrice returns the node's suggested gas price in wei.
	GasPrice(ctx context.Context) (*big.Int, error)

	// Accounts returns the addresses the node manages, in node order.
	Accounts(ctx context.Context) ([]string, error)

	// GetBalances fetches native balances in a single batch.
	GetBalances(ctx context.Context, requests []entity.BalanceRequestItem) ([]entity.BalanceResultItem, error)

	// Profile returns the network profile associated with this client.
	Profile() entity.NetworkProfile
}

// ChainClientProvider defines the interface for providing chain clients.
type ChainClientProvider interface {
	GetClient(profile entity.NetworkProfile) (ChainClient, error)
}

// NetworkProfileProvider defines the interface for looking up network profiles.
type NetworkProfileProvider interface {
	// GetAllProfiles returns every profile, sorted by name.
	GetAllProfiles() []entity.NetworkProfile

	// GetProfileByName returns a profile and true if found, otherwise false.
	GetProfileByName(name string) (entity.NetworkProfile, bool)
}

// AccountService lists the signing accounts of a network profile.
type AccountService interface {
	ListAccounts(ctx context.Context, networkName string) ([]entity.Account, error)
}
