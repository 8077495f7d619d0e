package cli

import (
	"fmt"

	"aurora_deployer/internal/domain/entity"

	"github.com/spf13/cobra"
)

func newVerifyCommand(a *app) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check that a network's node reports the configured chain id",
		Long: `Query eth_chainId and eth_gasPrice on the selected network's endpoint and
compare the chain id with the profile. Exits non-zero on a mismatch.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd, commandTimeout)
			defer cancel()

			var (
				reports []entity.VerificationReport
				err     error
			)
			if all {
				reports, err = a.verification.VerifyAll(ctx)
			} else {
				var report *entity.VerificationReport
				report, err = a.verification.Verify(ctx, a.networkName())
				if report != nil {
					reports = append(reports, *report)
				}
			}

			out := cmd.OutOrStdout()
			if a.jsonOutput() {
				if printErr := printJSON(out, reports); printErr != nil {
					return printErr
				}
				return err
			}

			w := newTable(out)
			fmt.Fprintln(w, "NETWORK\tEXPECTED\tREMOTE\tGAS PRICE (CONFIGURED)\tGAS PRICE (NODE)\tSTATUS")
			for _, r := range reports {
				status := "ok"
				if !r.ChainIDMatches {
					status = "MISMATCH"
				}
				fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%s\t%s\n", r.Network, r.ExpectedChainID, r.RemoteChainID, r.ConfiguredGas, r.RemoteGasPrice, status)
			}
			if flushErr := w.Flush(); flushErr != nil {
				return flushErr
			}
			return err
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "verify every network profile")
	return cmd
}
