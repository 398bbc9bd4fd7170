package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/clustertap/internal/app"
)

func (c *CLI) newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the ingest server and publish cluster graphs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			addr, _ := cmd.Flags().GetString("addr")
			spoolDir, _ := cmd.Flags().GetString("spool")
			logFormat, _ := cmd.Flags().GetString("log-format")
			logLevel, _ := cmd.Flags().GetString("log-level")

			return c.app.Serve(cmd.Context(), app.ServeOptions{
				ConfigPath: c.configPath,
				Addr:       addr,
				SpoolDir:   spoolDir,
				LogFormat:  logFormat,
				LogLevel:   logLevel,
			})
		},
	}
	cmd.Flags().StringP("addr", "a", "", "Listen address (overrides server.addr)")
	cmd.Flags().String("spool", "", "Watch this directory for spooled observations (overrides spool.dir)")
	cmd.Flags().String("log-format", "", "Log format: pretty or json")
	cmd.Flags().String("log-level", "", "Log level: debug, info, warn or error")
	return cmd
}
