package commands

import "github.com/spf13/cobra"

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [args...]",
		Short: "Build the project and run the executable",
		Long: "Build the project and run the executable with the given arguments.\n" +
			"Flags after the first argument are passed to the executable unparsed.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Run(cmd.Context(), directory(cmd), args)
		},
	}
	cmd.Flags().SetInterspersed(false)
	return cmd
}
