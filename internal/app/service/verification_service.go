package service

import (
	"context"
	"errors"
	"fmt"

	"aurora_deployer/internal/app/port"
	"aurora_deployer/internal/domain/entity"

	"golang.org/x/sync/errgroup"
)

// verificationServiceImpl implements port.VerificationService.
type verificationServiceImpl struct {
	profiles       port.NetworkProfileProvider
	clients        port.ChainClientProvider
	logger         port.Logger
	maxConcurrency int
}

// NewVerificationService creates a new verification service. maxConcurrency
// bounds the number of networks verified at once.
func NewVerificationService(
	profiles port.NetworkProfileProvider,
	clients port.ChainClientProvider,
	l port.Logger,
	maxConcurrency int,
) port.VerificationService {
	if maxConcurrency <= 0 {
		maxConcurrency = 1
	}
	return &verificationServiceImpl{
		profiles:       profiles,
		clients:        clients,
		logger:         l,
		maxConcurrency: maxConcurrency,
	}
}

// Verify checks the named profile against its node. The report is returned
// alongside ErrChainIDMismatch when the chain ids differ.
func (s *verificationServiceImpl) Verify(ctx context.Context, networkName string) (*entity.VerificationReport, error) {
	profile, ok := s.profiles.GetProfileByName(networkName)
	if !ok {
		return nil, fmt.Errorf("%w: %s", entity.ErrNetworkNotFound, networkName)
	}
	return s.verifyProfile(ctx, profile)
}

func (s *verificationServiceImpl) verifyProfile(ctx context.Context, profile entity.NetworkProfile) (*entity.VerificationReport, error) {
	client, err := s.clients.GetClient(profile)
	if err != nil {
		return nil, err
	}

	remoteChainID, err := client.ChainID(ctx)
	if err != nil {
		return nil, err
	}
	gasPrice, err := client.GasPrice(ctx)
	if err != nil {
		return nil, err
	}

	report := &entity.VerificationReport{
		Network:         profile.Name,
		URL:             profile.URL,
		ExpectedChainID: profile.ChainID,
		RemoteChainID:   remoteChainID,
		ConfiguredGas:   profile.GasPrice,
		RemoteGasPrice:  gasPrice,
		ChainIDMatches:  remoteChainID == profile.ChainID,
	}

	if !report.ChainIDMatches {
		s.logger.Warn("Chain id mismatch", "network", profile.Name, "expected", profile.ChainID, "remote", remoteChainID)
		return report, fmt.Errorf("%w: network %s expects %d, node reports %d",
			entity.ErrChainIDMismatch, profile.Name, profile.ChainID, remoteChainID)
	}
	s.logger.Info("Network verified", "network", profile.Name, "chain_id", remoteChainID, "gas_price", gasPrice)
	return report, nil
}

// VerifyAll verifies every profile concurrently. Reports come back in profile
// order; profiles whose node could not be queried have no report. All
// failures are joined into the returned error.
func (s *verificationServiceImpl) VerifyAll(ctx context.Context) ([]entity.VerificationReport, error) {
	profiles := s.profiles.GetAllProfiles()
	reports := make([]*entity.VerificationReport, len(profiles))
	errs := make([]error, len(profiles))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(s.maxConcurrency)

	for i, profile := range profiles {
		i, profile := i, profile
		eg.Go(func() error {
			reports[i], errs[i] = s.verifyProfile(egCtx, profile)
			return nil // keep verifying the other networks
		})
	}
	_ = eg.Wait()

	result := make([]entity.VerificationReport, 0, len(profiles))
	for _, report := range reports {
		if report != nil {
			result = append(result, *report)
		}
	}
	return result, errors.Join(errs...)
}
