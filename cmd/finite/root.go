package main

import (
	"fmt"
	"os"

	"github.com/aretw0/finiteconsole/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "finite",
	Short: "finite runs interactive menu programs described as graphs",
	Long: `finite loads a menu graph from a YAML file, checks that every menu can be
reached and left, and drives the read-input / transition / act loop over it.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Config file (default finite.yaml in the working directory)")
	rootCmd.PersistentFlags().Bool("debug", false, "Shorthand for --log-level=debug")
	rootCmd.PersistentFlags().String("log-level", config.DefaultLogLevel, "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-format", config.DefaultLogFormat, "Log format: text or json")
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfgFile, _ := cmd.Flags().GetString("config")
	return config.Load(cfgFile, cmd.Flags())
}
