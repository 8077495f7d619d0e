package configloader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"aurora_deployer/internal/config"
	"aurora_deployer/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rawTestKey = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deployer.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func noEnv(string) (string, bool) { return "", false }

func TestLoad_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.yml")

	cfg, err := Load(path, false)
	require.NoError(t, err)
	assert.Empty(t, cfg.Path)
	assert.Equal(t, "0.8.10", cfg.Solidity)
	assert.Equal(t, "testnet_aurora", cfg.DefaultNetwork)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 10, cfg.RpcClient.RateLimit)
	assert.Equal(t, 10, cfg.RpcClient.BurstLimit)
	assert.Equal(t, 4, cfg.Performance.MaxConcurrentRoutines)
	assert.Equal(t, "https://binaries.soliditylang.org/bin/list.json", cfg.Compiler.ReleaseListURL)
	assert.Equal(t, 30, cfg.Cache.AccountsTTLSeconds)

	_, err = Load(path, true)
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
solidity: "0.8.20"
defaultNetwork: ganache
networks:
  - name: ganache
    url: http://127.0.0.1:7545
    chainId: 1337
    gasPrice: 20000000000
rpcClient:
  rateLimit: 5
performance:
  max_concurrent_routines: 8
`)

	cfg, err := Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, path, cfg.Path)
	assert.Equal(t, "0.8.20", cfg.Solidity)
	assert.Equal(t, "ganache", cfg.DefaultNetwork)
	require.Len(t, cfg.Networks, 1)
	assert.Equal(t, uint64(1337), cfg.Networks[0].ChainID)
	assert.Equal(t, 5, cfg.RpcClient.RateLimit)
	assert.Equal(t, 5, cfg.RpcClient.BurstLimit)
	assert.Equal(t, 8, cfg.Performance.MaxConcurrentRoutines)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{name: "bad yaml", content: "networks: [", wantErr: "failed to unmarshal"},
		{name: "missing name", content: "networks:\n  - url: http://x\n    chainId: 1\n", wantErr: "name is required"},
		{name: "missing url", content: "networks:\n  - name: a\n    chainId: 1\n", wantErr: "url is required"},
		{name: "missing chain id", content: "networks:\n  - name: a\n    url: http://x\n", wantErr: "chainId is required"},
		{
			name:    "duplicate",
			content: `networks:
  - {name: a, url: "http://x", chainId: 1}
  - {name: a, url: "http://y", chainId: 2}
`,
			wantErr: "duplicate network name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content), true)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestBuildSettings_Builtin(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"), false)
	require.NoError(t, err)

	settings, err := BuildSettings(cfg, &config.Environment{AuroraPrivateKey: rawTestKey}, noEnv)
	require.NoError(t, err)

	assert.Equal(t, "0.8.10", settings.Solidity)
	testnet, err := settings.Network("testnet_aurora")
	require.NoError(t, err)
	assert.Equal(t, "https://testnet.aurora.dev", testnet.URL)
	assert.Equal(t, []string{"0x" + rawTestKey}, testnet.Accounts)
	assert.Equal(t, uint64(1313161555), testnet.ChainID)
	assert.Equal(t, uint64(120000000000), testnet.GasPrice)
}

func TestBuildSettings_UnsetKey(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"), false)
	require.NoError(t, err)

	settings, err := BuildSettings(cfg, &config.Environment{}, noEnv)
	require.NoError(t, err)

	testnet, err := settings.Network("testnet_aurora")
	require.NoError(t, err)
	assert.Equal(t, []string{"0xundefined"}, testnet.Accounts)
	assert.ErrorIs(t, settings.Validate(), entity.ErrInvalidCredential)
}

func TestBuildSettings_DeclaredNetworks(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
defaultNetwork: ganache
networks:
  - name: ganache
    url: http://127.0.0.1:7545
    chainId: 1337
  - name: sepolia
    url: https://rpc.sepolia.org
    accountsEnv: SEPOLIA_KEY
    chainId: 11155111
  - name: testnet_aurora
    url: https://rpc.testnet.aurora.example
    accountsEnv: AURORA_PRIVATE_KEY
    chainId: 1313161555
    gasPrice: 70000000000
`), true)
	require.NoError(t, err)

	lookup := func(key string) (string, bool) {
		if key == "SEPOLIA_KEY" {
			return "abcd", true
		}
		return "", false
	}
	settings, err := BuildSettings(cfg, &config.Environment{AuroraPrivateKey: rawTestKey}, lookup)
	require.NoError(t, err)

	assert.Equal(t, []string{"ganache", "local_aurora", "sepolia", "testnet_aurora"}, settings.NetworkNames())

	ganache, _ := settings.Network("ganache")
	assert.True(t, ganache.UsesRemoteAccounts())

	sepolia, _ := settings.Network("sepolia")
	assert.Equal(t, []string{"0xabcd"}, sepolia.Accounts)

	testnet, _ := settings.Network("testnet_aurora")
	assert.Equal(t, "https://rpc.testnet.aurora.example", testnet.URL)
	assert.Equal(t, uint64(70000000000), testnet.GasPrice)
	assert.Equal(t, []string{"0x" + rawTestKey}, testnet.Accounts)
}

func TestBuildSettings_UnknownDefault(t *testing.T) {
	cfg, err := Load(writeConfig(t, "defaultNetwork: mainnet\n"), true)
	require.NoError(t, err)

	_, err = BuildSettings(cfg, &config.Environment{}, noEnv)
	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrNetworkNotFound)
}

func TestLoadSettings(t *testing.T) {
	t.Setenv("AURORA_PRIVATE_KEY", rawTestKey)
	path := writeConfig(t, "solidity: \"0.8.10\"\n")
	t.Setenv("DEPLOYER_CONFIG", path)

	provider, err := LoadSettings("")
	require.NoError(t, err)
	assert.Equal(t, path, provider.GetConfig().Path)

	testnet, err := provider.GetSettings().Network("testnet_aurora")
	require.NoError(t, err)
	assert.Equal(t, []string{"0x" + rawTestKey}, testnet.Accounts)
}

func TestLoadSettings_ExplicitPathMustExist(t *testing.T) {
	_, err := LoadSettings(filepath.Join(t.TempDir(), "absent.yml"))
	require.Error(t, err)
}
