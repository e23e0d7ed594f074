package main

import (
	"github.com/aretw0/finiteconsole/internal/cli"
	"github.com/aretw0/finiteconsole/pkg/registry"
	"github.com/spf13/cobra"
)

var graphCmd = &cobra.Command{
	Use:   "graph <graph.yaml>",
	Short: "Export the menu graph visualization",
	Long:  `Outputs a Mermaid diagram (graph TD) of the menus and their options.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.Graph(cmd.OutOrStdout(), args[0], registry.NewWithBuiltins())
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
