package client

import (
	"fmt"
	"sync"
	"time"

	"aurora_deployer/internal/app/port"
	"aurora_deployer/internal/domain/entity"
	"aurora_deployer/internal/infrastructure/configloader"

	"golang.org/x/time/rate"
)

// evmClientProvider implements the port.ChainClientProvider interface.
type evmClientProvider struct {
	clients           map[string]port.ChainClient
	mu                sync.Mutex
	limiter           *rate.Limiter
	loggerInfo        func(msg string, args ...any)
	loggerError       func(msg string, args ...any)
	connectionTimeout time.Duration
	rpcCallTimeout    time.Duration
}

// NewEVMClientProvider creates a new EVMClientProvider. All clients it hands
// out share one rate limiter.
func NewEVMClientProvider(
	cfg *configloader.Config,
	loggerInfo func(msg string, args ...any),
	loggerError func(msg string, args ...any),
) port.ChainClientProvider {
	return &evmClientProvider{
		clients:           make(map[string]port.ChainClient),
		limiter:           rate.NewLimiter(rate.Limit(cfg.RpcClient.RateLimit), cfg.RpcClient.BurstLimit),
		loggerInfo:        loggerInfo,
		loggerError:       loggerError,
		connectionTimeout: time.Duration(cfg.RpcClient.ConnectTimeoutMs) * time.Millisecond,
		rpcCallTimeout:    time.Duration(cfg.RpcClient.CallTimeoutMs) * time.Millisecond,
	}
}

// GetClient returns the client for the given profile, dialing it on first use.
func (p *evmClientProvider) GetClient(profile entity.NetworkProfile) (port.ChainClient, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if client, exists := p.clients[profile.Name]; exists {
		return client, nil
	}

	p.loggerInfo("Creating new EVM client", "network", profile.Name, "url", profile.URL)
	newClient, err := NewEVMClient(profile, p.limiter, p.connectionTimeout, p.rpcCallTimeout)
	if err != nil {
		p.loggerError("Failed to create EVM client", "network", profile.Name, "error", err)
		return nil, fmt.Errorf("failed to create EVM client for %s: %w", profile.Name, err)
	}

	p.clients[profile.Name] = newClient
	return newClient, nil
}
