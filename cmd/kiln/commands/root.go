// Package commands implements the CLI commands for the kiln build tool.
package commands

import (
	"context"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.trai.ch/kiln/internal/adapters/settings"
	"go.trai.ch/kiln/internal/app"
	"go.trai.ch/kiln/internal/build"
	"go.trai.ch/kiln/internal/core/ports"
)

// CLI represents the command line interface for kiln.
type CLI struct {
	app     *app.App
	loader  ports.ConfigLoader
	logger  ports.Logger
	rootCmd *cobra.Command
}

// New creates a new CLI instance over the application components.
func New(components *app.Components) *CLI {
	rootCmd := &cobra.Command{
		Use:           "kiln",
		Short:         "Incremental builds for Java projects",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	flags := rootCmd.PersistentFlags()
	flags.StringP("dir", "C", ".", "Run as if started in this directory")
	flags.String(settings.KeyRegistry, "", "Package registry root (default ~/.kiln/registry)")
	flags.String(settings.KeyCompiler, "", "Compiler executable (default javac)")
	flags.String(settings.KeyWarnings, "", "Warnings policy: show, hide or error (default show)")
	flags.Bool(settings.KeyJSON, false, "Emit logs as JSON")

	c := &CLI{
		app:     components.App,
		loader:  components.ConfigLoader,
		logger:  components.Logger,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newBuildCmd())
	rootCmd.AddCommand(c.newStatusCmd())
	rootCmd.AddCommand(c.newCleanCmd())
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

// project locates the project root from the --dir flag, loads its .env file and
// resolves the settings for cmd.
func (c *CLI) project(cmd *cobra.Command) (string, app.BuildOptions, error) {
	dir, _ := cmd.Flags().GetString("dir")
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", app.BuildOptions{}, err
	}

	root, err := c.loader.FindRoot(abs)
	if err != nil {
		return "", app.BuildOptions{}, err
	}

	if err := settings.LoadEnvFile(root); err != nil {
		return "", app.BuildOptions{}, err
	}

	loader := settings.NewLoader()
	if err := loader.BindFlags(cmd); err != nil {
		return "", app.BuildOptions{}, err
	}
	s, err := loader.Load()
	if err != nil {
		return "", app.BuildOptions{}, err
	}

	if j, ok := c.logger.(interface{ SetJSON(bool) }); ok {
		j.SetJSON(s.JSON)
	}

	return root, app.BuildOptions{
		RegistryRoot: s.RegistryRoot,
		Compiler:     s.Compiler,
		Warnings:     s.Warnings,
		Force:        s.Force,
	}, nil
}

// SetOutput redirects command output. Used for testing.
func (c *CLI) SetOutput(w io.Writer) {
	c.rootCmd.SetOut(w)
	c.rootCmd.SetErr(w)
}
