package service

import (
	"context"
	"math/big"

	"aurora_deployer/internal/app/port"
	"aurora_deployer/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

// staticProfiles serves a fixed list of profiles.
type staticProfiles []entity.NetworkProfile

func (s staticProfiles) GetAllProfiles() []entity.NetworkProfile { return s }

func (s staticProfiles) GetProfileByName(name string) (entity.NetworkProfile, bool) {
	for _, profile := range s {
		if profile.Name == name {
			return profile, true
		}
	}
	return entity.NetworkProfile{}, false
}

type MockSignerProvider struct {
	mock.Mock
}

func (m *MockSignerProvider) GetSigners(profile entity.NetworkProfile) ([]entity.Account, error) {
	args := m.Called(profile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Account), args.Error(1)
}

type MockClientProvider struct {
	mock.Mock
}

func (m *MockClientProvider) GetClient(profile entity.NetworkProfile) (port.ChainClient, error) {
	args := m.Called(profile.Name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(port.ChainClient), args.Error(1)
}

type MockChainClient struct {
	mock.Mock
}

func (m *MockChainClient) ChainID(ctx context.Context) (uint64, error) {
	args := m.Called(ctx)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *MockChainClient) GasPrice(ctx context.Context) (*big.Int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}

func (m *MockChainClient) Accounts(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockChainClient) GetBalances(ctx context.Context, requests []entity.BalanceRequestItem) ([]entity.BalanceResultItem, error) {
	args := m.Called(ctx, requests)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.BalanceResultItem), args.Error(1)
}

func (m *MockChainClient) Profile() entity.NetworkProfile {
	return m.Called().Get(0).(entity.NetworkProfile)
}

type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) ListAccounts(ctx context.Context, networkName string) ([]entity.Account, error) {
	args := m.Called(ctx, networkName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Account), args.Error(1)
}
