package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fieldworkhq/fieldwork"
	"github.com/fieldworkhq/fieldwork/application/service"
	"github.com/fieldworkhq/fieldwork/internal/config"
)

func importCmd() *cobra.Command {
	var (
		envFile  string
		company  string
		url      string
		industry string
		boards   string
		dryRun   bool
		reimport bool
	)

	cmd := &cobra.Command{
		Use:   "import [board-slug]",
		Short: "Import job postings from an ATS board",
		Long: `Import job postings from an ATS board.

Fetches every posting, runs the enrichment pipeline (salary, function,
seniority, AI detection, signals, tools, location), and persists the
results. Re-running refreshes last-seen on existing postings without
touching their classification.

Import one board:

  fieldwork import carta --company Carta --url https://carta.com --industry Fintech

Or several at once:

  fieldwork import --boards "carta|Carta|https://carta.com|Fintech;ramp|Ramp||Fintech"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var targets []config.Board
			switch {
			case boards != "":
				targets = config.ParseBoards(boards)
				if len(targets) == 0 {
					return errors.New("--boards did not parse to any boards")
				}
			case len(args) == 1:
				if company == "" {
					return errors.New("--company is required when importing a single board")
				}
				targets = []config.Board{config.NewBoard(args[0], company, url, industry)}
			default:
				return errors.New("provide a board slug or --boards")
			}
			return runImport(envFile, targets, service.ImportOptions{DryRun: dryRun, Reimport: reimport})
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", "", "Path to .env file (default: .env in current directory)")
	cmd.Flags().StringVar(&company, "company", "", "Company display name for the board")
	cmd.Flags().StringVar(&url, "url", "", "Company website URL")
	cmd.Flags().StringVar(&industry, "industry", "", "Company industry label")
	cmd.Flags().StringVar(&boards, "boards", "", `Multiple boards as "slug|Company|url|industry;..."`)
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Run the pipeline without writing anything")
	cmd.Flags().BoolVar(&reimport, "reimport", false, "Wipe the company's existing jobs and re-enrich everything")

	return cmd
}

func runImport(envFile string, targets []config.Board, opts service.ImportOptions) error {
	cfg, err := loadConfig(envFile)
	if err != nil {
		return err
	}

	client, err := fieldwork.New(fieldwork.WithConfig(cfg))
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	summaries, err := client.Importer.ImportBoards(context.Background(), targets, opts)
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}

	for _, s := range summaries {
		label := ""
		if s.DryRun {
			label = " (dry run)"
		}
		fmt.Printf("%s%s: %d fetched, %d inserted, %d updated, %d failed\n",
			s.Board, label, s.Fetched, s.Inserted, s.Updated, s.Failed)
	}
	return nil
}
