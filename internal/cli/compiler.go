package cli

import (
	"fmt"
	"time"

	"aurora_deployer/internal/client"

	"github.com/spf13/cobra"
)

func newCompilerCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "compiler",
		Short: "Check that the declared compiler version is a published release",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.settings.GetConfig()
			version := a.settings.GetSettings().Solidity

			timeout := time.Duration(cfg.Compiler.RequestTimeoutMillis) * time.Millisecond
			solc := client.NewSolcClient(cfg.Compiler.ReleaseListURL, timeout, a.zapLogger)

			ctx, cancel := commandContext(cmd, timeout)
			defer cancel()

			build, err := solc.GetRelease(ctx, version)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if a.jsonOutput() {
				return printJSON(out, build)
			}
			fmt.Fprintf(out, "solidity %s: %s\n", version, build.Path)
			if build.LongVersion != "" {
				fmt.Fprintf(out, "  long version: %s\n", build.LongVersion)
			}
			if build.SHA256 != "" {
				fmt.Fprintf(out, "  sha256:       %s\n", build.SHA256)
			}
			return nil
		},
	}
}
