package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newBalancesCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "balances",
		Short: "Print the native balance of every account of the selected network",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd, commandTimeout)
			defer cancel()

			balances, err := a.balances.GetBalances(ctx, a.networkName())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if a.jsonOutput() {
				return printJSON(out, balances)
			}

			w := newTable(out)
			fmt.Fprintln(w, "ADDRESS\tBALANCE\tWEI")
			for _, b := range balances {
				if b.Error != "" {
					fmt.Fprintf(w, "%s\terror: %s\t\n", b.Address, b.Error)
					continue
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", b.Address, b.FormattedBalance, b.Wei)
			}
			return w.Flush()
		},
	}
}
