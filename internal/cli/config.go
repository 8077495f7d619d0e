package cli

import (
	"fmt"

	"aurora_deployer/internal/domain/entity"

	"github.com/spf13/cobra"
)

func newConfigCommand(a *app) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the deployment settings",
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the settings record with credentials masked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := a.settings.GetSettings()
			configFile := a.settings.GetConfig().Path
			out := cmd.OutOrStdout()

			profiles := a.profiles.GetAllProfiles()
			views := make([]entity.NetworkProfileView, len(profiles))
			for i, profile := range profiles {
				views[i] = profile.View()
			}

			if a.jsonOutput() {
				return printJSON(out, map[string]interface{}{
					"solidity":       settings.Solidity,
					"defaultNetwork": settings.DefaultNetwork,
					"configFile":     configFile,
					"networks":       views,
				})
			}

			fmt.Fprintf(out, "Solidity:        %s\n", settings.Solidity)
			fmt.Fprintf(out, "Default network: %s\n", settings.DefaultNetwork)
			if configFile != "" {
				fmt.Fprintf(out, "Config file:     %s\n", configFile)
			}
			for _, view := range views {
				fmt.Fprintf(out, "\n[%s]\n", view.Name)
				fmt.Fprintf(out, "  url:       %s\n", view.URL)
				fmt.Fprintf(out, "  chain id:  %d\n", view.ChainID)
				fmt.Fprintf(out, "  gas price: %d\n", view.GasPrice)
				if view.RemoteAccounts {
					fmt.Fprintln(out, "  accounts:  remote (eth_accounts)")
					continue
				}
				fmt.Fprintf(out, "  accounts:  %v", view.Accounts)
				if view.AccountsEnv != "" {
					fmt.Fprintf(out, " (from %s)", view.AccountsEnv)
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}

	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Check that every signing credential is a valid private key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.settings.GetSettings().Validate(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Settings are valid")
			return nil
		},
	}

	configCmd.AddCommand(showCmd, validateCmd)
	return configCmd
}
