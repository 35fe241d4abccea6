package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/canova/internal/logging"
	"github.com/aretw0/canova/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "canova",
	Short: "Canova is a form builder with branching page flows",
	Long: `Canova builds multi-page forms whose pages branch on the answers given so far.
It serves the form builder API and inspects form files from the command line.`,
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
	rootCmd.PersistentFlags().String("config", "", "YAML configuration file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("quiet", false, "Do not print the banner")
}

// newLogger builds the stderr logger from a level name, falling back to info.
func newLogger(level string) *slog.Logger {
	return logging.New(logging.ParseLevel(level))
}

func banner(cmd *cobra.Command) {
	if quiet, _ := cmd.Flags().GetBool("quiet"); !quiet {
		tui.PrintBanner(cmd.ErrOrStderr())
	}
}
