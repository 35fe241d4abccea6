package main

import (
	"fmt"

	"github.com/aretw0/canova/internal/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Loads defaults, the configuration file, .env and CANOVA_* variables and prints
the result as YAML. Secrets are masked.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if keys, _ := cmd.Flags().GetBool("keys"); keys {
			for _, k := range config.Keys() {
				fmt.Fprintln(cmd.OutOrStdout(), k)
			}
			return nil
		}

		masked := *cfg
		if masked.Auth.JWTSecret != "" {
			masked.Auth.JWTSecret = "***"
		}
		if masked.Store.EncryptionKey != "" {
			masked.Store.EncryptionKey = "***"
		}
		out, err := yaml.Marshal(&masked)
		if err != nil {
			return fmt.Errorf("failed to encode config: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().Bool("keys", false, "List the configuration keys instead")
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	file, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(config.Options{File: file, EnvFiles: []string{".env"}})
	if err != nil {
		return nil, err
	}
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.Log.Level = level
	}
	return cfg, nil
}
