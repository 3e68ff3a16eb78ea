// Package main is the entry point for the fieldwork CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fieldworkhq/fieldwork/internal/config"
)

// Version information set via ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fieldwork",
		Short: "Fieldwork job-market intelligence",
		Long:  `Fieldwork imports job postings from public ATS boards, enriches them with salary, function, seniority, AI, and location classification, and tracks hiring history from archived board pages.`,
	}

	cmd.AddCommand(importCmd())
	cmd.AddCommand(historyCmd())
	cmd.AddCommand(serveCmd())
	cmd.AddCommand(stdioCmd())
	cmd.AddCommand(versionCmd())

	return cmd
}

// loadConfig loads configuration from a .env file and environment variables.
func loadConfig(envFile string) (config.AppConfig, error) {
	cfg, err := config.LoadConfig(envFile)
	if err != nil {
		return config.AppConfig{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
