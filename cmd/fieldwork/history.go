package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/fieldworkhq/fieldwork"
	"github.com/fieldworkhq/fieldwork/application/service"
	"github.com/fieldworkhq/fieldwork/domain/history"
)

func historyCmd() *cobra.Command {
	var (
		envFile   string
		frequency string
		start     string
		end       string
		output    string
	)

	cmd := &cobra.Command{
		Use:   "history <board-slug>",
		Short: "Rebuild a board's hiring history from archived page captures",
		Long: `Rebuild a board's hiring history from archived page captures.

Samples one archive snapshot per month (or quarter), extracts the open-role
count from each captured page, appends the live count, and persists the
timeline. Archive fetches are spaced out to stay polite.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(envFile, args[0], frequency, start, end, output)
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", "", "Path to .env file (default: .env in current directory)")
	cmd.Flags().StringVar(&frequency, "frequency", "monthly", "Snapshot sampling: monthly or quarterly")
	cmd.Flags().StringVar(&start, "start", "", "Earliest snapshot date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "Latest snapshot date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&output, "output", "", "Write the timeline as JSON to this file")

	return cmd
}

func runHistory(envFile, board, frequency, start, end, output string) error {
	cfg, err := loadConfig(envFile)
	if err != nil {
		return err
	}

	opts := service.HistoryOptions{Frequency: history.ParseFrequency(frequency)}
	if start != "" {
		opts.Start, err = time.Parse("2006-01-02", start)
		if err != nil {
			return fmt.Errorf("parse --start: %w", err)
		}
	}
	if end != "" {
		opts.End, err = time.Parse("2006-01-02", end)
		if err != nil {
			return fmt.Errorf("parse --end: %w", err)
		}
	}

	client, err := fieldwork.New(fieldwork.WithConfig(cfg))
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	timeline, err := client.History.BuildTimeline(context.Background(), board, opts)
	if err != nil {
		return fmt.Errorf("build timeline: %w", err)
	}

	report := buildReport(timeline)
	if output != "" {
		encoded, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		if err := os.WriteFile(output, encoded, 0o644); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		fmt.Printf("wrote %s\n", output)
	}

	for _, p := range timeline.Points() {
		fmt.Printf("%s  %4d open roles  (%s)\n", p.Date(), p.OpenRoles(), p.Format())
	}
	if peak, ok := timeline.Peak(); ok {
		fmt.Printf("peak:    %s (%d open roles)\n", peak.Date(), peak.OpenRoles())
	}
	if trough, ok := timeline.Trough(); ok {
		fmt.Printf("trough:  %s (%d open roles)\n", trough.Date(), trough.OpenRoles())
	}
	if current, ok := timeline.Current(); ok {
		fmt.Printf("current: %s (%d open roles)\n", current.Date(), current.OpenRoles())
	}
	return nil
}

type reportPoint struct {
	Date        string         `json:"date"`
	Timestamp   string         `json:"timestamp"`
	OpenRoles   int            `json:"open_roles"`
	Format      string         `json:"format"`
	Departments map[string]int `json:"departments,omitempty"`
}

type report struct {
	Board       string        `json:"board"`
	Frequency   string        `json:"frequency"`
	GeneratedAt time.Time     `json:"generated_at"`
	Points      []reportPoint `json:"points"`
}

func buildReport(t history.Timeline) report {
	points := t.Points()
	r := report{
		Board:       t.Board(),
		Frequency:   string(t.Frequency()),
		GeneratedAt: t.GeneratedAt(),
		Points:      make([]reportPoint, len(points)),
	}
	for i, p := range points {
		r.Points[i] = reportPoint{
			Date:        p.Date(),
			Timestamp:   p.Timestamp(),
			OpenRoles:   p.OpenRoles(),
			Format:      string(p.Format()),
			Departments: p.Departments(),
		}
	}
	return r
}
