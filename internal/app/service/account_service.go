package service

import (
	"context"
	"fmt"

	"aurora_deployer/internal/app/port"
	"aurora_deployer/internal/domain/entity"
)

// accountServiceImpl implements port.AccountService.
type accountServiceImpl struct {
	profiles port.NetworkProfileProvider
	signers  port.SignerProvider
	clients  port.ChainClientProvider
	logger   port.Logger
}

// NewAccountService creates a new account service.
func NewAccountService(
	profiles port.NetworkProfileProvider,
	signers port.SignerProvider,
	clients port.ChainClientProvider,
	l port.Logger,
) port.AccountService {
	return &accountServiceImpl{
		profiles: profiles,
		signers:  signers,
		clients:  clients,
		logger:   l,
	}
}

// ListAccounts returns the signing accounts of the named profile. Profiles
// with credentials yield the derived addresses in credential order; profiles
// without credentials yield the node's accounts in node order.
func (s *accountServiceImpl) ListAccounts(ctx context.Context, networkName string) ([]entity.Account, error) {
	profile, ok := s.profiles.GetProfileByName(networkName)
	if !ok {
		return nil, fmt.Errorf("%w: %s", entity.ErrNetworkNotFound, networkName)
	}

	if !profile.UsesRemoteAccounts() {
		s.logger.Debug("Listing local signers", "network", profile.Name)
		return s.signers.GetSigners(profile)
	}

	s.logger.Debug("Listing node accounts", "network", profile.Name, "url", profile.URL)
	client, err := s.clients.GetClient(profile)
	if err != nil {
		return nil, err
	}
	addresses, err := client.Accounts(ctx)
	if err != nil {
		return nil, err
	}

	accounts := make([]entity.Account, len(addresses))
	for i, addr := range addresses {
		accounts[i] = entity.Account{Address: addr, Source: entity.RemoteAccount}
	}
	return accounts, nil
}
