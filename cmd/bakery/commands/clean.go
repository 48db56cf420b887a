package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/bakery/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove build outputs and the build cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			all, _ := cmd.Flags().GetBool("all")
			return c.app.Clean(cmd.Context(), directory(cmd), app.CleanOptions{All: all})
		},
	}
	cmd.Flags().BoolP("all", "a", false, "Clean every project of the dependency tree")
	return cmd
}
