package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newPatternCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pattern NAME RANGE [DIR]",
		Short: "Print the lockfile pattern of a dependency declared in DIR",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 3 {
				dir = args[2]
			}

			p, err := c.app.Pattern(options(cmd), args[0], args[1], dir)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), p)
			return err
		},
	}
}

func (c *CLI) newPatternsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patterns [DIR]",
		Short: "Print the lockfile patterns of every dependency of the manifest in DIR",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			writePatterns := func(patterns []string) error {
				for _, p := range patterns {
					if _, err := fmt.Fprintln(cmd.OutOrStdout(), p); err != nil {
						return err
					}
				}
				return nil
			}

			if watch, _ := cmd.Flags().GetBool("watch"); watch {
				return c.app.WatchPatterns(cmd.Context(), options(cmd), dir, func(patterns []string) error {
					if _, err := fmt.Fprintln(cmd.OutOrStdout(), "---"); err != nil {
						return err
					}
					return writePatterns(patterns)
				})
			}

			patterns, err := c.app.Patterns(cmd.Context(), options(cmd), dir)
			if err != nil {
				return err
			}
			return writePatterns(patterns)
		},
	}
	cmd.Flags().BoolP("watch", "w", false, "Print the patterns again whenever the manifest changes")
	return cmd
}
