package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/bakery/internal/app"
)

func (c *CLI) newGraphCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Print the resolved project tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, _ := cmd.Flags().GetString("format")
			return c.app.Graph(cmd.Context(), directory(cmd), format)
		},
	}
	cmd.Flags().StringP("format", "f", app.FormatYAML, "Output format: yaml or json")
	return cmd
}
