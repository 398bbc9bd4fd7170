package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/clustertap/internal/app"
)

func (c *CLI) newClassifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify <address>",
		Short: "Report whether an exchange would be treated as query traffic",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, _ := cmd.Flags().GetString("payload")
			return c.app.Classify(cmd.Context(), args[0], app.ClassifyOptions{
				ConfigPath:  c.configPath,
				PayloadFile: payload,
			}, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringP("payload", "p", "", "File holding the request payload")
	return cmd
}
