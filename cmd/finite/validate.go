package main

import (
	"fmt"

	"github.com/aretw0/finiteconsole/internal/cli"
	"github.com/aretw0/finiteconsole/pkg/registry"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <graph.yaml>",
	Short: "Check the graph for consistency",
	Long: `Reports menus without options, a missing initial menu, options pointing at
unknown menus and menus unreachable from the initial menu.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if err := cli.Validate(out, args[0], registry.NewWithBuiltins()); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
		fmt.Fprintln(out, "Graph is valid! ✅")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
