package main

import (
	"github.com/aretw0/finiteconsole/internal/cli"
	"github.com/aretw0/finiteconsole/internal/logging"
	"github.com/aretw0/finiteconsole/pkg/registry"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve <graph.yaml>",
	Short: "Serve the graph introspection API",
	Long:  `Builds the graph without running it and serves /healthz, /menus, /graph and /diagnostics.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		level, err := logging.ParseLevel(cfg.LogLevel)
		if err != nil {
			return err
		}
		addr, _ := cmd.Flags().GetString("addr")
		logger := logging.New(level)

		return cli.Serve(cmd.Context(), addr, args[0], registry.NewWithBuiltins(), logger)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", ":8080", "Address to listen on")
}
