package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/kiln/internal/adapters/settings"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Compile changed sources and everything that depends on them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, opts, err := c.project(cmd)
			if err != nil {
				return err
			}
			return c.app.Build(cmd.Context(), root, opts)
		},
	}
	cmd.Flags().BoolP(settings.KeyForce, "f", false, "Recompile every source, ignoring the build cache")
	return cmd
}

func (c *CLI) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show which sources the next build would compile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, opts, err := c.project(cmd)
			if err != nil {
				return err
			}
			return c.app.Status(cmd.Context(), root, opts)
		},
	}
}

func (c *CLI) newCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Remove the output folder and its build cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, _, err := c.project(cmd)
			if err != nil {
				return err
			}
			return c.app.Clean(root)
		},
	}
}
