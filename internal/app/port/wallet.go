package port

import "aurora_deployer/internal/domain/entity"

// SignerProvider derives signing accounts from a profile's credentials.
type SignerProvider interface {
	GetSigners(profile entity.NetworkProfile) ([]entity.Account, error)
}
