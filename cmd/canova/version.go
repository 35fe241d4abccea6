package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/canova"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of canova",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "canova version %s\n", strings.TrimSpace(canova.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
