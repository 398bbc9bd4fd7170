package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/clustertap/internal/app"
)

func (c *CLI) newExtractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract <file>",
		Short: "Extract the cluster graph from a captured response",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expectID, _ := cmd.Flags().GetString("expect-id")
			return c.app.Extract(cmd.Context(), args[0], app.ExtractOptions{
				ConfigPath: c.configPath,
				ExpectID:   expectID,
			}, cmd.OutOrStdout())
		},
	}
	cmd.Flags().String("expect-id", "", "Only accept a cluster with this id")
	return cmd
}
