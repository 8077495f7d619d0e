package cli

import (
	"fmt"

	"aurora_deployer/internal/domain/entity"

	"github.com/spf13/cobra"
)

func newNetworksCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "networks",
		Short: "List network profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			profiles := a.profiles.GetAllProfiles()
			out := cmd.OutOrStdout()

			if a.jsonOutput() {
				views := make([]entity.NetworkProfileView, len(profiles))
				for i, profile := range profiles {
					views[i] = profile.View()
				}
				return printJSON(out, views)
			}

			defaultNetwork := a.settings.GetSettings().DefaultNetwork
			w := newTable(out)
			fmt.Fprintln(w, "NAME\tURL\tCHAIN ID\tGAS PRICE\tACCOUNTS")
			for _, profile := range profiles {
				name := profile.Name
				if name == defaultNetwork {
					name += " *"
				}
				accounts := fmt.Sprintf("%d", len(profile.Accounts))
				if profile.UsesRemoteAccounts() {
					accounts = "remote"
				}
				fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\n", name, profile.URL, profile.ChainID, profile.GasPrice, accounts)
			}
			return w.Flush()
		},
	}
}
