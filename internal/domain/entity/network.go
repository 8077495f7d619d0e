package entity

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// UndefinedCredential is what a credential becomes when its environment
// variable is not set. Kept verbatim so the record matches what deployments
// have always produced; ValidateCredentials rejects it.
const UndefinedCredential = "0xundefined"

var (
	// ErrNetworkNotFound is returned when a profile name is not in the settings.
	ErrNetworkNotFound = errors.New("network not found")
	// ErrInvalidCredential is returned for a signing credential that is not a 32-byte hex key.
	ErrInvalidCredential = errors.New("invalid signing credential")
	// ErrChainIDMismatch is returned when a node reports a different chain than its profile.
	ErrChainIDMismatch = errors.New("chain id mismatch")
)

// NetworkProfile holds the connection and signing parameters of a named deployment target.
type NetworkProfile struct {
	Name     string   `json:"name" yaml:"name"`
	URL      string   `json:"url" yaml:"url"`
	Accounts []string `json:"-" yaml:"-"` // 0x-prefixed private keys, in signer order
	// AccountsEnv is the environment variable the credential was read from.
	AccountsEnv string `json:"accountsEnv,omitempty" yaml:"accountsEnv,omitempty"`
	ChainID     uint64 `json:"chainId" yaml:"chainId"`
	GasPrice    uint64 `json:"gasPrice" yaml:"gasPrice"` // wei
}

// UsesRemoteAccounts reports whether the profile relies on the node's own accounts.
func (p NetworkProfile) UsesRemoteAccounts() bool {
	return len(p.Accounts) == 0
}

// ValidateCredentials checks that every credential is a 0x-prefixed 32-byte hex key.
func (p NetworkProfile) ValidateCredentials() error {
	var errs []error
	for i, cred := range p.Accounts {
		if err := validateCredential(cred); err != nil {
			source := ""
			if p.AccountsEnv != "" {
				source = fmt.Sprintf(" (from %s)", p.AccountsEnv)
			}
			errs = append(errs, fmt.Errorf("network %s: account %d%s: %w: %v", p.Name, i, source, ErrInvalidCredential, err))
		}
	}
	return errors.Join(errs...)
}

func validateCredential(cred string) error {
	if cred == UndefinedCredential {
		return errors.New("environment variable is not set")
	}
	raw, ok := strings.CutPrefix(cred, "0x")
	if !ok {
		return errors.New("missing 0x prefix")
	}
	if len(raw) != 64 {
		return fmt.Errorf("expected 64 hex characters, got %d", len(raw))
	}
	if _, err := hex.DecodeString(raw); err != nil {
		return fmt.Errorf("not hex: %w", err)
	}
	return nil
}

// MaskedAccounts returns the credentials with all but the first and last four hex digits hidden.
func (p NetworkProfile) MaskedAccounts() []string {
	masked := make([]string, len(p.Accounts))
	for i, cred := range p.Accounts {
		masked[i] = MaskCredential(cred)
	}
	return masked
}

// MaskCredential hides a private key for display.
func MaskCredential(cred string) string {
	if cred == UndefinedCredential {
		return cred
	}
	raw := strings.TrimPrefix(cred, "0x")
	if len(raw) <= 12 {
		return "0x****"
	}
	return "0x" + raw[:4] + "..." + raw[len(raw)-4:]
}

// NetworkProfileView is the display form of a profile with credentials masked.
type NetworkProfileView struct {
	Name           string   `json:"name"`
	URL            string   `json:"url"`
	ChainID        uint64   `json:"chainId"`
	GasPrice       uint64   `json:"gasPrice"`
	Accounts       []string `json:"accounts"`
	AccountsEnv    string   `json:"accountsEnv,omitempty"`
	RemoteAccounts bool     `json:"remoteAccounts"`
}

// View returns the display form of the profile.
func (p NetworkProfile) View() NetworkProfileView {
	return NetworkProfileView{
		Name:           p.Name,
		URL:            p.URL,
		ChainID:        p.ChainID,
		GasPrice:       p.GasPrice,
		Accounts:       p.MaskedAccounts(),
		AccountsEnv:    p.AccountsEnv,
		RemoteAccounts: p.UsesRemoteAccounts(),
	}
}
