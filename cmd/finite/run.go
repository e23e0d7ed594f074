package main

import (
	"github.com/aretw0/finiteconsole/internal/cli"
	"github.com/aretw0/finiteconsole/internal/config"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <graph.yaml>",
	Short: "Run the interactive menu loop",
	Long: `Loads the graph and starts the loop at its initial menu. The loop ends when a
finite menu runs its action, when input ends or on SIGINT/SIGTERM.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		inputs, _ := cmd.Flags().GetStringSlice("input")
		jsonMode, _ := cmd.Flags().GetBool("json")

		result, err := cli.Run(cmd.Context(), cli.RunOptions{
			GraphPath: args[0],
			Config:    cfg,
			Inputs:    inputs,
			JSON:      jsonMode,
		})
		if err != nil {
			return err
		}
		return cli.PrintResult(cmd.OutOrStdout(), result, jsonMode)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Bool("headless", false, "Run without prompts or banner (strict IO)")
	runCmd.Flags().Bool("json", false, "Run in JSON mode (NDJSON views out, one token per line in)")
	runCmd.Flags().StringSlice("input", nil, "Feed these tokens instead of reading stdin")
	runCmd.Flags().String("renderer", config.DefaultRenderer, "Menu renderer: plain, table or markdown")
	runCmd.Flags().Bool("banner", true, "Print the banner on interactive terminals")
	runCmd.Flags().String("metrics-addr", "", "Serve /metrics and introspection on this address")
	runCmd.Flags().String("redis-addr", "", "Append loop events to a Redis stream at this address")
	runCmd.Flags().String("redis-stream", config.DefaultRedisStream, "Redis stream key for loop events")
}
