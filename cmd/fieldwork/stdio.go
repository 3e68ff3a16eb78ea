package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/fieldworkhq/fieldwork"
	"github.com/fieldworkhq/fieldwork/internal/log"
	"github.com/fieldworkhq/fieldwork/internal/mcp"
)

func stdioCmd() *cobra.Command {
	var envFile string

	cmd := &cobra.Command{
		Use:   "stdio",
		Short: "Start MCP server on stdio",
		Long: `Start the MCP (Model Context Protocol) server on stdio.

This allows AI assistants to query imported jobs, company stats, and hiring
timelines. Configuration is loaded from environment variables and .env file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStdio(envFile)
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", "", "Path to .env file")

	return cmd
}

func runStdio(envFile string) error {
	cfg, err := loadConfig(envFile)
	if err != nil {
		return err
	}

	// Stdout carries the MCP protocol, so logs go to stderr.
	logger := log.NewLoggerWithWriter(os.Stderr, cfg.LogFormat(), cfg.LogLevel()).Slog()

	client, err := fieldwork.New(
		fieldwork.WithConfig(cfg),
		fieldwork.WithLogger(logger),
	)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	logger.Info("starting MCP server",
		slog.String("version", version),
		slog.String("data_dir", cfg.DataDir()),
	)

	srv := mcp.NewServer(client.Jobs, client.History, version, logger)
	return srv.ServeStdio()
}
