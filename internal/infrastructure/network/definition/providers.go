package networkdefinition

import (
	"fmt"
	"sort"

	"aurora_deployer/internal/app/port"
	"aurora_deployer/internal/domain/entity"
)

const (
	// AuroraPrivateKeyEnv holds the raw hex key (no 0x prefix) for the Aurora profiles.
	AuroraPrivateKeyEnv = "AURORA_PRIVATE_KEY"

	// DefaultSolidityVersion is the compiler version declared for contracts.
	DefaultSolidityVersion = "0.8.10"

	// DefaultNetworkName is the profile used when none is selected.
	DefaultNetworkName = "testnet_aurora"

	auroraChainID  uint64 = 1313161555
	auroraGasPrice uint64 = 120 * 1000000000 // 120 gwei
)

// Credential turns a raw environment value into a signing credential.
// An empty value yields entity.UndefinedCredential.
func Credential(raw string) string {
	if raw == "" {
		return entity.UndefinedCredential
	}
	return "0x" + raw
}

// TestnetAurora returns the Aurora testnet profile signing with the given raw key.
func TestnetAurora(rawKey string) entity.NetworkProfile {
	return entity.NetworkProfile{
		Name:        "testnet_aurora",
		URL:         "https://testnet.aurora.dev",
		Accounts:    []string{Credential(rawKey)},
		AccountsEnv: AuroraPrivateKeyEnv,
		ChainID:     auroraChainID,
		GasPrice:    auroraGasPrice,
	}
}

// LocalAurora returns a profile for an Aurora node running on localhost.
func LocalAurora(rawKey string) entity.NetworkProfile {
	return entity.NetworkProfile{
		Name:        "local_aurora",
		URL:         "http://localhost:8545",
		Accounts:    []string{Credential(rawKey)},
		AccountsEnv: AuroraPrivateKeyEnv,
		ChainID:     auroraChainID,
		GasPrice:    auroraGasPrice,
	}
}

// BuiltinProfiles returns the profiles that exist without any settings file, keyed by name.
func BuiltinProfiles(rawKey string) map[string]entity.NetworkProfile {
	testnet := TestnetAurora(rawKey)
	local := LocalAurora(rawKey)
	return map[string]entity.NetworkProfile{
		testnet.Name: testnet,
		local.Name:   local,
	}
}

// NetworkProfileProvider serves the profiles of a settings record.
type NetworkProfileProvider struct {
	logger   port.Logger
	profiles map[string]entity.NetworkProfile
	ordered  []entity.NetworkProfile
}

// NewNetworkProfileProvider creates a provider over the given settings.
func NewNetworkProfileProvider(log port.Logger, settings *entity.Settings) *NetworkProfileProvider {
	p := &NetworkProfileProvider{
		logger:   log,
		profiles: make(map[string]entity.NetworkProfile, len(settings.Networks)),
	}
	for name, profile := range settings.Networks {
		p.profiles[name] = profile
		p.ordered = append(p.ordered, profile)
	}
	sort.Slice(p.ordered, func(i, j int) bool { return p.ordered[i].Name < p.ordered[j].Name })

	p.logger.Debug(fmt.Sprintf("NetworkProfileProvider initialized with %d profiles", len(p.ordered)))
	for _, profile := range p.ordered {
		p.logger.Debug("Network profile", "name", profile.Name, "url", profile.URL, "chain_id", profile.ChainID, "accounts", len(profile.Accounts))
	}
	return p
}

// GetAllProfiles returns all profiles sorted by name.
func (p *NetworkProfileProvider) GetAllProfiles() []entity.NetworkProfile {
	if p == nil {
		return []entity.NetworkProfile{}
	}
	profilesCopy := make([]entity.NetworkProfile, len(p.ordered))
	copy(profilesCopy, p.ordered)
	return profilesCopy
}

// GetProfileByName returns a profile by its name.
func (p *NetworkProfileProvider) GetProfileByName(name string) (entity.NetworkProfile, bool) {
	if p == nil {
		return entity.NetworkProfile{}, false
	}
	profile, ok := p.profiles[name]
	return profile, ok
}

// GetProfileByChainID returns the first profile (by name) with the given chain id.
func (p *NetworkProfileProvider) GetProfileByChainID(chainID uint64) (entity.NetworkProfile, bool) {
	if p == nil {
		return entity.NetworkProfile{}, false
	}
	for _, profile := range p.ordered {
		if profile.ChainID == chainID {
			return profile, true
		}
	}
	return entity.NetworkProfile{}, false
}
