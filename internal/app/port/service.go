package port

import (
	"context"

	"aurora_deployer/internal/domain/entity"
)

// VerificationService compares network profiles with what their nodes report.
type VerificationService interface {
	Verify(ctx context.Context, networkName string) (*entity.VerificationReport, error)
	VerifyAll(ctx context.Context) ([]entity.VerificationReport, error)
}

// BalanceService fetches native balances of a profile's accounts.
type BalanceService interface {
	GetBalances(ctx context.Context, networkName string) ([]entity.Balance, error)
}
