package service

import (
	"context"
	"fmt"
	"strconv"

	"aurora_deployer/internal/app/port"
	"aurora_deployer/internal/domain/entity"
	"aurora_deployer/internal/pkg/utils"
)

const defaultMaxAddressesPerBatch = 50

// balanceServiceImpl implements port.BalanceService.
type balanceServiceImpl struct {
	accounts        port.AccountService
	profiles        port.NetworkProfileProvider
	clients         port.ChainClientProvider
	logger          port.Logger
	maxPerBatchCall int
}

// NewBalanceService creates a new balance service.
func NewBalanceService(
	accounts port.AccountService,
	profiles port.NetworkProfileProvider,
	clients port.ChainClientProvider,
	l port.Logger,
) port.BalanceService {
	return &balanceServiceImpl{
		accounts:        accounts,
		profiles:        profiles,
		clients:         clients,
		logger:          l,
		maxPerBatchCall: defaultMaxAddressesPerBatch,
	}
}

// GetBalances returns the native balance of every account of the named
// profile, in account order. A per-account failure is reported in the
// Balance's Error field; a failed batch call fails the whole request.
func (s *balanceServiceImpl) GetBalances(ctx context.Context, networkName string) ([]entity.Balance, error) {
	profile, ok := s.profiles.GetProfileByName(networkName)
	if !ok {
		return nil, fmt.Errorf("%w: %s", entity.ErrNetworkNotFound, networkName)
	}

	accounts, err := s.accounts.ListAccounts(ctx, networkName)
	if err != nil {
		return nil, err
	}
	if len(accounts) == 0 {
		return []entity.Balance{}, nil
	}

	client, err := s.clients.GetClient(profile)
	if err != nil {
		return nil, err
	}

	addresses := make([]string, len(accounts))
	for i, account := range accounts {
		addresses[i] = account.Address
	}

	balances := make([]entity.Balance, 0, len(accounts))
	for batchIdx, batch := range utils.BatchStrings(addresses, s.maxPerBatchCall) {
		requests := make([]entity.BalanceRequestItem, len(batch))
		for i, addr := range batch {
			requests[i] = entity.BalanceRequestItem{ID: strconv.Itoa(batchIdx*s.maxPerBatchCall + i), Address: addr}
		}

		results, err := client.GetBalances(ctx, requests)
		if err != nil {
			return nil, err
		}
		for _, res := range results {
			balance := entity.Balance{
				Address:          res.Address,
				NetworkName:      profile.Name,
				ChainID:          profile.ChainID,
				Amount:           res.Balance,
				FormattedBalance: res.FormattedBalance,
			}
			if res.Balance != nil {
				balance.Wei = res.Balance.String()
			}
			if res.Error != nil {
				s.logger.Warn("Balance lookup failed", "network", profile.Name, "address", res.Address, "error", res.Error)
				balance.Error = res.Error.Error()
			}
			balances = append(balances, balance)
		}
	}
	return balances, nil
}
