// Package commands implements the CLI commands for filedep.
package commands

import (
	"context"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"go.trai.ch/filedep/internal/adapters/logger"
	"go.trai.ch/filedep/internal/app"
	"go.trai.ch/filedep/internal/build"
	"go.trai.ch/filedep/internal/core/domain"
	"go.trai.ch/zerr"
)

// CLI represents the command line interface for filedep.
type CLI struct {
	app     *app.App
	logger  *logger.Logger
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app and logger.
func New(a *app.App, log *logger.Logger) *CLI {
	rootCmd := &cobra.Command{
		Use:           "filedep",
		Short:         "Resolve local file dependencies into lockfile patterns and manifests",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	flags := rootCmd.PersistentFlags()
	flags.String("cwd", "", "Directory to run in (defaults to the working directory)")
	flags.String("lockfile-root", "", "Directory patterns are relative to (defaults to the closest directory holding yarn.lock)")
	flags.Bool("link-file-dependencies", false, "Link file dependencies in place instead of copying them")
	flags.String("registry", "", "Registry whose manifest format is read (npm, yarn, bower)")
	flags.Int("concurrency", 0, "Maximum parallel resolutions (defaults to the number of CPUs)")
	flags.Bool("verbose", false, "Enable debug logging")
	flags.StringP("output", "o", string(formatYAML), "Output format for manifests (yaml, json)")

	c := &CLI{
		app:     a,
		logger:  log,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRunE = c.preRun

	rootCmd.AddCommand(c.newPatternCmd())
	rootCmd.AddCommand(c.newPatternsCmd())
	rootCmd.AddCommand(c.newResolveCmd())
	rootCmd.AddCommand(c.newConfigCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects command output. Used for testing.
func (c *CLI) SetOutput(w io.Writer) {
	c.rootCmd.SetOut(w)
}

func (c *CLI) preRun(cmd *cobra.Command, _ []string) error {
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		c.logger.SetLevel(slog.LevelDebug)
	}

	output, _ := cmd.Flags().GetString("output")
	if _, err := parseFormat(output); err != nil {
		return err
	}
	return nil
}

// options collects the invocation options from the persistent flags.
// Only flags set on the command line become overrides.
func options(cmd *cobra.Command) app.Options {
	flags := cmd.Flags()
	cwd, _ := flags.GetString("cwd")

	overrides := make(map[string]any)
	if flags.Changed("lockfile-root") {
		v, _ := flags.GetString("lockfile-root")
		overrides[domain.KeyLockfileRoot] = v
	}
	if flags.Changed("link-file-dependencies") {
		v, _ := flags.GetBool("link-file-dependencies")
		overrides[domain.KeyLinkFileDependencies] = v
	}
	if flags.Changed("registry") {
		v, _ := flags.GetString("registry")
		overrides[domain.KeyRegistry] = v
	}
	if flags.Changed("concurrency") {
		v, _ := flags.GetInt("concurrency")
		overrides[domain.KeyConcurrency] = v
	}

	return app.Options{Cwd: cwd, Overrides: overrides}
}

func outputFormat(cmd *cobra.Command) (format, error) {
	output, _ := cmd.Flags().GetString("output")
	f, err := parseFormat(output)
	if err != nil {
		return "", zerr.Wrap(err, "invalid --output")
	}
	return f, nil
}
