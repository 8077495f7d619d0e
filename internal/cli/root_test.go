package cli

import (
	"bytes"
	"math/big"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"aurora_deployer/internal/domain/entity"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rawTestKey = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

// nodeEth serves the subset of the eth namespace the commands use.
type nodeEth struct {
	accounts []common.Address
}

func (n *nodeEth) ChainId() *hexutil.Big { return (*hexutil.Big)(big.NewInt(1337)) }

func (n *nodeEth) GasPrice() *hexutil.Big { return (*hexutil.Big)(big.NewInt(20000000000)) }

func (n *nodeEth) Accounts() []common.Address { return n.accounts }

func startNode(t *testing.T, accounts ...string) string {
	t.Helper()
	eth := &nodeEth{}
	for _, a := range accounts {
		eth.accounts = append(eth.accounts, common.HexToAddress(a))
	}
	server := rpc.NewServer()
	require.NoError(t, server.RegisterName("eth", eth))
	httpServer := httptest.NewServer(server)
	t.Cleanup(func() {
		httpServer.Close()
		server.Stop()
	})
	return httpServer.URL
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deployer.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// isolateEnv clears the variables the commands read.
func isolateEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"AURORA_PRIVATE_KEY", "DEPLOYER_CONFIG", "DEPLOYER_NETWORK", "DEPLOYER_LOG_LEVEL"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestAccountsCommand_LocalKey(t *testing.T) {
	isolateEnv(t)
	t.Setenv("AURORA_PRIVATE_KEY", rawTestKey)
	config := writeConfig(t, "solidity: \"0.8.10\"\n")

	out, err := run(t, "--config", config, "accounts")
	require.NoError(t, err)
	assert.Equal(t, "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266\n", out)
}

func TestAccountsCommand_NodeAccounts(t *testing.T) {
	isolateEnv(t)
	want := []string{
		"0x70997970C51812dc3A010C7d01b50e0d17dc79C8",
		"0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266",
		"0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC",
	}
	url := startNode(t, want...)
	config := writeConfig(t, `
networks:
  - name: node
    url: `+url+`
    chainId: 1337
`)
	t.Setenv("DEPLOYER_NETWORK", "node")

	out, err := run(t, "--config", config, "accounts")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	assert.Equal(t, want, lines)
}

func TestAccountsCommand_NoAccounts(t *testing.T) {
	isolateEnv(t)
	url := startNode(t)
	config := writeConfig(t, `
networks:
  - name: node
    url: `+url+`
    chainId: 1337
`)

	out, err := run(t, "--config", config, "--network", "node", "accounts")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestAccountsCommand_UnsetKey(t *testing.T) {
	isolateEnv(t)
	config := writeConfig(t, "solidity: \"0.8.10\"\n")

	out, err := run(t, "--config", config, "accounts")
	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrInvalidCredential)
	assert.Contains(t, err.Error(), "AURORA_PRIVATE_KEY")
	assert.Empty(t, out)
}

func TestAccountsCommand_UnknownNetwork(t *testing.T) {
	isolateEnv(t)
	config := writeConfig(t, "solidity: \"0.8.10\"\n")

	_, err := run(t, "--config", config, "--network", "mainnet", "accounts")
	assert.ErrorIs(t, err, entity.ErrNetworkNotFound)
}

func TestNetworksCommand_JSON(t *testing.T) {
	isolateEnv(t)
	t.Setenv("AURORA_PRIVATE_KEY", rawTestKey)
	config := writeConfig(t, "solidity: \"0.8.10\"\n")

	out, err := run(t, "--config", config, "--json", "networks")
	require.NoError(t, err)

	var views []entity.NetworkProfileView
	require.NoError(t, json.Unmarshal([]byte(out), &views))
	require.Len(t, views, 2)
	assert.Equal(t, "local_aurora", views[0].Name)
	assert.Equal(t, "testnet_aurora", views[1].Name)
	assert.Equal(t, "https://testnet.aurora.dev", views[1].URL)
	assert.NotContains(t, out, rawTestKey)
}

func TestConfigValidateCommand(t *testing.T) {
	isolateEnv(t)
	config := writeConfig(t, "solidity: \"0.8.10\"\n")

	_, err := run(t, "--config", config, "config", "validate")
	assert.ErrorIs(t, err, entity.ErrInvalidCredential)

	t.Setenv("AURORA_PRIVATE_KEY", rawTestKey)
	out, err := run(t, "--config", config, "config", "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "Settings are valid")
}

func TestVerifyCommand(t *testing.T) {
	isolateEnv(t)
	url := startNode(t)
	config := writeConfig(t, `
defaultNetwork: node
networks:
  - name: node
    url: `+url+`
    chainId: 1337
  - name: wrong_chain
    url: `+url+`
    chainId: 5
`)

	out, err := run(t, "--config", config, "verify")
	require.NoError(t, err)
	assert.Contains(t, out, "node")
	assert.Contains(t, out, "ok")

	out, err = run(t, "--config", config, "--network", "wrong_chain", "verify")
	assert.ErrorIs(t, err, entity.ErrChainIDMismatch)
	assert.Contains(t, out, "MISMATCH")
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "deployer version dev\n", out)
}
