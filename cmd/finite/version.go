package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/finiteconsole"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of finite",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "finite version %s\n", strings.TrimSpace(finiteconsole.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
