package configloader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"aurora_deployer/internal/config"
	"aurora_deployer/internal/domain/entity"
	networkdefinition "aurora_deployer/internal/infrastructure/network/definition"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is read when no settings file is named explicitly.
const DefaultConfigPath = "config/deployer.yml"

// ServerConfig holds server-specific configurations.
type ServerConfig struct {
	Port         string `yaml:"port"`
	ReadTimeout  int    `yaml:"readTimeout"`
	WriteTimeout int    `yaml:"writeTimeout"`
	IdleTimeout  int    `yaml:"idleTimeout"`
}

// LoggingConfig holds logging-specific configurations.
type LoggingConfig struct {
	Level string `yaml:"level"` // e.g., "debug", "info", "warn", "error"
}

// NetworkNodeConfig declares a network profile in the settings file.
type NetworkNodeConfig struct {
	Name        string `yaml:"name"`
	URL         string `yaml:"url"`
	AccountsEnv string `yaml:"accountsEnv"` // env var holding the raw hex key; empty means node accounts
	ChainID     uint64 `yaml:"chainId"`
	GasPrice    uint64 `yaml:"gasPrice"`
}

// RpcClientConfig holds configuration for RPC clients.
type RpcClientConfig struct {
	ConnectTimeoutMs int64 `yaml:"connectTimeoutMs"`
	CallTimeoutMs    int64 `yaml:"callTimeoutMs"`
	RateLimit        int   `yaml:"rateLimit"`
	BurstLimit       int   `yaml:"burstLimit"`
}

// PerformanceConfig holds performance-related configurations.
type PerformanceConfig struct {
	MaxConcurrentRoutines int `yaml:"max_concurrent_routines"`
}

// CompilerConfig holds configuration for the compiler release client.
type CompilerConfig struct {
	ReleaseListURL       string `yaml:"releaseListURL"`
	RequestTimeoutMillis int64  `yaml:"requestTimeoutMillis"`
}

// CacheConfig holds configuration for caching.
type CacheConfig struct {
	AccountsTTLSeconds     int `yaml:"accountsTTLSeconds"`
	CleanupIntervalSeconds int `yaml:"cleanupIntervalSeconds"`
}

// Config is the top-level structure of the settings file.
type Config struct {
	Solidity       string              `yaml:"solidity"`
	DefaultNetwork string              `yaml:"defaultNetwork"`
	Networks       []NetworkNodeConfig `yaml:"networks"`
	Server         ServerConfig        `yaml:"server"`
	Logging        LoggingConfig       `yaml:"logging"`
	RpcClient      RpcClientConfig     `yaml:"rpcClient"`
	Performance    PerformanceConfig   `yaml:"performance"`
	Compiler       CompilerConfig      `yaml:"compiler"`
	Cache          CacheConfig         `yaml:"cache"`

	// Path is the file the configuration was read from, empty if none.
	Path string `yaml:"-"`
}

// Load reads the YAML settings file at path. A missing file is an error only
// when required is true; otherwise the defaults are returned.
func Load(path string, required bool) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		logrus.Infof("Loading configuration from path: %s", path)
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config data from %s: %w", path, err)
		}
		cfg.Path = path
	case errors.Is(err, fs.ErrNotExist) && !required:
		logrus.Debugf("Config file %s not found, using defaults", path)
	default:
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Solidity == "" {
		cfg.Solidity = networkdefinition.DefaultSolidityVersion
	}
	if cfg.DefaultNetwork == "" {
		cfg.DefaultNetwork = networkdefinition.DefaultNetworkName
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "warn"
	}
	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
	}
	if cfg.Server.ReadTimeout <= 0 {
		cfg.Server.ReadTimeout = 10
	}
	if cfg.Server.WriteTimeout <= 0 {
		cfg.Server.WriteTimeout = 30
	}
	if cfg.Server.IdleTimeout <= 0 {
		cfg.Server.IdleTimeout = 60
	}
	if cfg.RpcClient.ConnectTimeoutMs <= 0 {
		cfg.RpcClient.ConnectTimeoutMs = 10000
	}
	if cfg.RpcClient.CallTimeoutMs <= 0 {
		cfg.RpcClient.CallTimeoutMs = 10000
	}
	if cfg.RpcClient.RateLimit <= 0 {
		cfg.RpcClient.RateLimit = 10 // requests per second
	}
	if cfg.RpcClient.BurstLimit <= 0 {
		cfg.RpcClient.BurstLimit = cfg.RpcClient.RateLimit
	}
	if cfg.Performance.MaxConcurrentRoutines <= 0 {
		cfg.Performance.MaxConcurrentRoutines = 4
	}
	if cfg.Compiler.ReleaseListURL == "" {
		cfg.Compiler.ReleaseListURL = "https://binaries.soliditylang.org/bin/list.json"
	}
	if cfg.Compiler.RequestTimeoutMillis <= 0 {
		cfg.Compiler.RequestTimeoutMillis = 10000
	}
	if cfg.Cache.AccountsTTLSeconds <= 0 {
		cfg.Cache.AccountsTTLSeconds = 30
	}
	if cfg.Cache.CleanupIntervalSeconds <= 0 {
		cfg.Cache.CleanupIntervalSeconds = 60
	}
}

func validate(cfg *Config) error {
	seen := make(map[string]struct{}, len(cfg.Networks))
	for i, network := range cfg.Networks {
		if network.Name == "" {
			return fmt.Errorf("networks[%d]: name is required", i)
		}
		if _, dup := seen[network.Name]; dup {
			return fmt.Errorf("networks[%d]: duplicate network name %q", i, network.Name)
		}
		seen[network.Name] = struct{}{}
		if network.URL == "" {
			return fmt.Errorf("network %s: url is required", network.Name)
		}
		if network.ChainID == 0 {
			return fmt.Errorf("network %s: chainId is required", network.Name)
		}
	}
	return nil
}

// BuildSettings assembles the settings record from the built-in profiles, the
// profiles declared in cfg and the environment. lookupEnv resolves the
// accountsEnv of declared profiles; nil means os.LookupEnv.
func BuildSettings(cfg *Config, environment *config.Environment, lookupEnv func(string) (string, bool)) (*entity.Settings, error) {
	if lookupEnv == nil {
		lookupEnv = os.LookupEnv
	}

	settings := &entity.Settings{
		Solidity:       cfg.Solidity,
		DefaultNetwork: cfg.DefaultNetwork,
		Networks:       networkdefinition.BuiltinProfiles(environment.AuroraPrivateKey),
	}

	for _, node := range cfg.Networks {
		profile := entity.NetworkProfile{
			Name:        node.Name,
			URL:         node.URL,
			AccountsEnv: node.AccountsEnv,
			ChainID:     node.ChainID,
			GasPrice:    node.GasPrice,
		}
		if node.AccountsEnv != "" {
			raw := environment.AuroraPrivateKey
			if node.AccountsEnv != networkdefinition.AuroraPrivateKeyEnv {
				raw, _ = lookupEnv(node.AccountsEnv)
			}
			profile.Accounts = []string{networkdefinition.Credential(raw)}
		}
		if _, builtin := settings.Networks[node.Name]; builtin {
			logrus.Infof("Network '%s' from config overrides the built-in profile", node.Name)
		}
		settings.Networks[node.Name] = profile
	}

	if _, err := settings.Network(settings.DefaultNetwork); err != nil {
		return nil, fmt.Errorf("default network: %w", err)
	}

	logrus.Infof("Settings assembled: solidity %s, %d networks, default %s", settings.Solidity, len(settings.Networks), settings.DefaultNetwork)
	return settings, nil
}

// Provider implements port.SettingsProvider over a loaded settings record.
type Provider struct {
	cfg      *Config
	settings *entity.Settings
}

// LoadSettings loads the environment and the settings file and builds the record.
// An empty path falls back to DEPLOYER_CONFIG and then DefaultConfigPath.
func LoadSettings(path string) (*Provider, error) {
	environment, err := config.LoadEnvironment()
	if err != nil {
		return nil, err
	}

	required := true
	if path == "" {
		path = environment.ConfigPath
	}
	if path == "" {
		path = DefaultConfigPath
		required = false
	}

	cfg, err := Load(path, required)
	if err != nil {
		return nil, err
	}

	settings, err := BuildSettings(cfg, environment, nil)
	if err != nil {
		return nil, err
	}
	return &Provider{cfg: cfg, settings: settings}, nil
}

// NewProvider wraps an already built configuration and settings record.
func NewProvider(cfg *Config, settings *entity.Settings) *Provider {
	return &Provider{cfg: cfg, settings: settings}
}

// GetSettings returns the settings record.
func (p *Provider) GetSettings() *entity.Settings {
	return p.settings
}

// GetConfig returns the settings file configuration.
func (p *Provider) GetConfig() *Config {
	return p.cfg
}
