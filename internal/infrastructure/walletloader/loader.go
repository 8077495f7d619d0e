package walletloader

import (
	"fmt"
	"strings"

	"aurora_deployer/internal/app/port"
	"aurora_deployer/internal/domain/entity"

	"github.com/ethereum/go-ethereum/crypto"
)

// SignerLoader implements port.SignerProvider by deriving addresses from the
// private keys held in a network profile.
type SignerLoader struct {
	loggerInfo func(msg string, args ...any)
}

// NewSignerLoader creates a new SignerLoader.
func NewSignerLoader(loggerInfo func(msg string, args ...any)) port.SignerProvider {
	return &SignerLoader{loggerInfo: loggerInfo}
}

// GetSigners returns one account per credential, in credential order.
func (l *SignerLoader) GetSigners(profile entity.NetworkProfile) ([]entity.Account, error) {
	if err := profile.ValidateCredentials(); err != nil {
		return nil, err
	}

	signers := make([]entity.Account, 0, len(profile.Accounts))
	for i, cred := range profile.Accounts {
		key, err := crypto.HexToECDSA(strings.TrimPrefix(cred, "0x"))
		if err != nil {
			return nil, fmt.Errorf("network %s: account %d: %w: %v", profile.Name, i, entity.ErrInvalidCredential, err)
		}
		signers = append(signers, entity.Account{
			Address: crypto.PubkeyToAddress(key.PublicKey).Hex(),
			Source:  entity.LocalAccount,
		})
	}

	if l.loggerInfo != nil {
		l.loggerInfo("Signers derived from credentials", "network", profile.Name, "count", len(signers))
	}
	return signers, nil
}
