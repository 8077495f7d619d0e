package client

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"aurora_deployer/internal/app/port"
	"aurora_deployer/internal/domain/entity"
	"aurora_deployer/internal/pkg/metrics"
	"aurora_deployer/internal/pkg/utils"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"golang.org/x/time/rate"
)

// EVMClient implements the port.ChainClient interface for EVM-compatible chains.
type EVMClient struct {
	ethClient      *ethclient.Client
	profile        entity.NetworkProfile
	limiter        *rate.Limiter
	rpcCallTimeout time.Duration
}

// NewEVMClient dials the endpoint of the given network profile.
// A nil limiter disables rate limiting.
func NewEVMClient(profile entity.NetworkProfile, limiter *rate.Limiter, connectionTimeout, rpcCallTimeout time.Duration) (port.ChainClient, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectionTimeout)
	defer cancel()

	ethClient, err := ethclient.DialContext(ctx, profile.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RPC %s for network %s: %w", profile.URL, profile.Name, err)
	}
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Inf, 0)
	}
	return &EVMClient{ethClient: ethClient, profile: profile, limiter: limiter, rpcCallTimeout: rpcCallTimeout}, nil
}

// call waits for the limiter, bounds fn by the call timeout and records metrics.
func (c *EVMClient) call(ctx context.Context, method string, fn func(ctx context.Context) error) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter wait for %s: %w", method, err)
	}

	callCtx, cancel := context.WithTimeout(ctx, c.rpcCallTimeout)
	defer cancel()

	start := time.Now()
	err := fn(callCtx)
	metrics.ObserveRPC(c.profile.Name, method, start, err)
	return err
}

// ChainID returns the chain identifier reported by the node.
func (c *EVMClient) ChainID(ctx context.Context) (uint64, error) {
	var chainID *big.Int
	err := c.call(ctx, "eth_chainId", func(ctx context.Context) error {
		var err error
		chainID, err = c.ethClient.ChainID(ctx)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("eth_chainId on %s: %w", c.profile.Name, err)
	}
	if !chainID.IsUint64() {
		return 0, fmt.Errorf("eth_chainId on %s: chain id %s overflows uint64", c.profile.Name, chainID)
	}
	return chainID.Uint64(), nil
}

// GasPrice returns the node's suggested gas price in wei.
func (c *EVMClient) GasPrice(ctx context.Context) (*big.Int, error) {
	var price *big.Int
	err := c.call(ctx, "eth_gasPrice", func(ctx context.Context) error {
		var err error
		price, err = c.ethClient.SuggestGasPrice(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("eth_gasPrice on %s: %w", c.profile.Name, err)
	}
	return price, nil
}

// Accounts returns the addresses managed by the node, in the order it reports them.
func (c *EVMClient) Accounts(ctx context.Context) ([]string, error) {
	var addresses []common.Address
	err := c.call(ctx, "eth_accounts", func(ctx context.Context) error {
		return c.ethClient.Client().CallContext(ctx, &addresses, "eth_accounts")
	})
	if err != nil {
		return nil, fmt.Errorf("eth_accounts on %s: %w", c.profile.Name, err)
	}

	result := make([]string, len(addresses))
	for i, addr := range addresses {
		result[i] = addr.Hex()
	}
	return result, nil
}

// GetBalances fetches native balances using a single JSON-RPC batch request.
func (c *EVMClient) GetBalances(ctx context.Context, requests []entity.BalanceRequestItem) ([]entity.BalanceResultItem, error) {
	if len(requests) == 0 {
		return []entity.BalanceResultItem{}, nil
	}

	batchElems := make([]rpc.BatchElem, len(requests))
	results := make([]entity.BalanceResultItem, len(requests))

	for i, reqItem := range requests {
		results[i] = entity.BalanceResultItem{
			RequestID: reqItem.ID,
			Address:   reqItem.Address,
		}
		batchElems[i] = rpc.BatchElem{
			Method: "eth_getBalance",
			Args:   []interface{}{common.HexToAddress(reqItem.Address), "latest"},
			Result: new(hexutil.Big),
		}
	}

	err := c.call(ctx, "eth_getBalance", func(ctx context.Context) error {
		return c.ethClient.Client().BatchCallContext(ctx, batchElems)
	})
	if err != nil {
		return results, fmt.Errorf("RPC batch call failed on %s: %w", c.profile.Name, err)
	}

	for i, elem := range batchElems {
		if elem.Error != nil {
			results[i].Error = fmt.Errorf("failed to fetch balance of %s: %w", requests[i].Address, elem.Error)
			continue
		}
		result, ok := elem.Result.(*hexutil.Big)
		if !ok || result == nil {
			results[i].Error = fmt.Errorf("failed to decode balance of %s: unexpected result", requests[i].Address)
			continue
		}
		results[i].Balance = result.ToInt()

		formatted, err := utils.FormatBigInt(results[i].Balance, entity.NativeDecimals)
		if err != nil {
			results[i].Error = fmt.Errorf("failed to format balance of %s: %w", requests[i].Address, err)
			continue
		}
		results[i].FormattedBalance = formatted
	}
	return results, nil
}

// Profile returns the network profile for this client.
func (c *EVMClient) Profile() entity.NetworkProfile {
	return c.profile
}
