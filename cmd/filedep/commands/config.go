package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := outputFormat(cmd)
			if err != nil {
				return err
			}

			cfg, err := c.app.Config(options(cmd))
			if err != nil {
				return err
			}
			return encode(cmd.OutOrStdout(), f, cfg)
		},
	}
}
