package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"aurora_deployer/internal/app/port"
	"aurora_deployer/internal/app/service"
	"aurora_deployer/internal/infrastructure/configloader"
	clientprovider "aurora_deployer/internal/infrastructure/network/client"
	networkdefinition "aurora_deployer/internal/infrastructure/network/definition"
	"aurora_deployer/internal/infrastructure/walletloader"
	"aurora_deployer/internal/pkg/logger"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Version is set at build time.
var Version = "dev"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// app holds the state shared by all commands of one invocation.
type app struct {
	v *viper.Viper

	zapLogger *zap.Logger
	log       port.Logger

	settings     *configloader.Provider
	profiles     *networkdefinition.NetworkProfileProvider
	clients      port.ChainClientProvider
	accounts     port.AccountService
	verification port.VerificationService
	balances     port.BalanceService
}

// skipSetup marks commands that run without loading the settings.
const skipSetup = "skip-setup"

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "deployer",
		Short: "Deployment settings for Aurora and other EVM networks",
		Long: `deployer provides the deployment settings of this project: the compiler
version and the named network profiles, with the signing key read from
AURORA_PRIVATE_KEY (a .env file in the working directory is honored).

Configuration (in order of priority):
  1. Command-line flags (--config, --network, --log-level)
  2. Environment variables (DEPLOYER_CONFIG, DEPLOYER_NETWORK, DEPLOYER_LOG_LEVEL)
  3. Settings file (config/deployer.yml)

Get started:
  $ deployer accounts                  # Print the signing account addresses
  $ deployer networks                  # List network profiles
  $ deployer verify --network testnet_aurora`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations[skipSetup] == "true" {
				return nil
			}
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.zapLogger != nil {
				_ = a.zapLogger.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "settings file (default is "+configloader.DefaultConfigPath+")")
	flags.String("network", "", "network profile to use (default from settings)")
	flags.String("log-level", "", "log level: debug, info, warn, error (default from settings)")
	flags.Bool("json", false, "output in JSON format")

	a.v.SetEnvPrefix("DEPLOYER")
	for _, name := range []string{"config", "network", "log-level", "json"} {
		_ = a.v.BindPFlag(name, flags.Lookup(name))
	}
	_ = a.v.BindEnv("config", "DEPLOYER_CONFIG")
	_ = a.v.BindEnv("network", "DEPLOYER_NETWORK")
	_ = a.v.BindEnv("log-level", "DEPLOYER_LOG_LEVEL")

	root.AddCommand(
		newAccountsCommand(a),
		newNetworksCommand(a),
		newConfigCommand(a),
		newVerifyCommand(a),
		newBalancesCommand(a),
		newCompilerCommand(a),
		newServeCommand(a),
		newVersionCommand(),
	)
	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// setup initializes logging, loads the settings and wires the services.
func (a *app) setup() error {
	level := a.v.GetString("log-level")

	bootstrapLevel := logrus.WarnLevel
	if parsed, err := logrus.ParseLevel(level); err == nil {
		bootstrapLevel = parsed
	}
	logrus.SetLevel(bootstrapLevel)
	logrus.SetOutput(os.Stderr)

	settings, err := configloader.LoadSettings(a.v.GetString("config"))
	if err != nil {
		return err
	}
	a.settings = settings
	cfg := settings.GetConfig()

	if level == "" {
		level = cfg.Logging.Level
		if parsed, err := logrus.ParseLevel(level); err == nil {
			logrus.SetLevel(parsed)
		}
	}
	zapLogger, err := logger.NewZapLogger(level)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.zapLogger = zapLogger
	logger.InitSlog(zapLogger, level)
	a.log = logger.NewSlogAdapter()

	a.profiles = networkdefinition.NewNetworkProfileProvider(a.log, settings.GetSettings())
	a.clients = clientprovider.NewEVMClientProvider(cfg, a.log.Debug, a.log.Error)
	signers := walletloader.NewSignerLoader(a.log.Debug)
	a.accounts = service.NewAccountService(a.profiles, signers, a.clients, a.log)
	a.verification = service.NewVerificationService(a.profiles, a.clients, a.log, cfg.Performance.MaxConcurrentRoutines)
	a.balances = service.NewBalanceService(a.accounts, a.profiles, a.clients, a.log)
	return nil
}

// networkName returns the selected profile name.
func (a *app) networkName() string {
	if name := a.v.GetString("network"); name != "" {
		return name
	}
	return a.settings.GetSettings().DefaultNetwork
}

func (a *app) jsonOutput() bool {
	return a.v.GetBool("json")
}

// printJSON outputs data as formatted JSON.
func printJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// newTable creates a new tabwriter for formatted output.
func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// commandContext bounds a command's network work.
func commandContext(cmd *cobra.Command, timeout time.Duration) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithTimeout(ctx, timeout)
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print version information",
		Annotations: map[string]string{skipSetup: "true"},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "deployer version %s\n", Version)
		},
	}
}
