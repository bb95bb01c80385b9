package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve PATTERN...",
		Short: "Resolve a file dependency into its manifest",
		Long: `Resolve a file dependency into its manifest.

The patterns form a chain from a top-level dependency down to the dependency
to resolve, each one requested by the previous one:

  filedep resolve app@file:./app lib@file:../libs/lib

With --each every pattern is resolved as its own top-level dependency.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := outputFormat(cmd)
			if err != nil {
				return err
			}

			each, _ := cmd.Flags().GetBool("each")
			if !each {
				manifest, err := c.app.ResolveChain(cmd.Context(), options(cmd), args)
				if err != nil {
					return err
				}
				return encode(cmd.OutOrStdout(), f, manifest)
			}

			chains := make([][]string, len(args))
			for i, p := range args {
				chains[i] = []string{p}
			}
			manifests, err := c.app.ResolveChains(cmd.Context(), options(cmd), chains)
			if err != nil {
				return err
			}
			return encode(cmd.OutOrStdout(), f, manifests)
		},
	}
	cmd.Flags().Bool("each", false, "Resolve every pattern as an independent top-level dependency")
	return cmd
}
