package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

const commandTimeout = 2 * time.Minute

func newAccountsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "accounts",
		Short: "Prints the list of accounts",
		Long: `Print the address of every signing account of the selected network,
one per line, in the order the account provider returns them.

Profiles with credentials list the addresses derived from their keys;
profiles without credentials list the node's eth_accounts.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd, commandTimeout)
			defer cancel()

			accounts, err := a.accounts.ListAccounts(ctx, a.networkName())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, account := range accounts {
				if _, err := fmt.Fprintln(out, account.Address); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
