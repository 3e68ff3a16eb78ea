// Package service provides the application services composing fetching,
// enrichment, and persistence.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/fieldworkhq/fieldwork/domain/job"
	"github.com/fieldworkhq/fieldwork/domain/posting"
	"github.com/fieldworkhq/fieldwork/internal/config"
)

// Fetcher produces raw postings for one board.
type Fetcher interface {
	FetchBoard(ctx context.Context, board string) ([]posting.RawPosting, error)
}

// ImportOptions control one import run.
type ImportOptions struct {
	// DryRun runs the full pipeline but writes nothing, reporting what an
	// actual run would have done.
	DryRun bool

	// Reimport wipes the company's existing jobs before inserting, so every
	// posting is re-enriched with current rules and gets a fresh first-seen.
	Reimport bool
}

// ImportSummary reports the outcome of one board import.
type ImportSummary struct {
	Board    string
	Company  string
	Fetched  int
	Inserted int
	Updated  int
	Failed   int
	Wiped    int64
	DryRun   bool
}

// Importer runs the enrichment pipeline over board feeds and persists the
// results.
type Importer struct {
	fetcher   Fetcher
	jobs      job.Store
	companies job.CompanyStore
	enricher  posting.Enricher
	logger    *slog.Logger
}

// NewImporter creates an Importer with the built-in taxonomies.
func NewImporter(fetcher Fetcher, jobs job.Store, companies job.CompanyStore, logger *slog.Logger) *Importer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Importer{
		fetcher:   fetcher,
		jobs:      jobs,
		companies: companies,
		enricher:  posting.NewDefaultEnricher(),
		logger:    logger,
	}
}

// ImportBoard fetches, enriches, and persists every posting for one board.
//
// A posting whose enrichment fails is counted and skipped so one malformed
// posting cannot sink the batch. Store failures are different: a reimport
// wipe that fails aborts before any insert, and a failed write aborts the
// run immediately, since a persistence error makes every later write
// suspect. The company aggregate is written once at the end.
func (s *Importer) ImportBoard(ctx context.Context, board config.Board, opts ImportOptions) (ImportSummary, error) {
	summary := ImportSummary{
		Board:   board.Slug(),
		Company: board.Company(),
		DryRun:  opts.DryRun,
	}

	postings, err := s.fetcher.FetchBoard(ctx, board.Slug())
	if err != nil {
		return summary, fmt.Errorf("fetch board %q: %w", board.Slug(), err)
	}
	summary.Fetched = len(postings)

	normalized := job.NormalizeCompanyName(board.Company())
	if opts.Reimport && !opts.DryRun {
		wiped, err := s.jobs.DeleteByCompany(ctx, normalized)
		if err != nil {
			return summary, fmt.Errorf("wipe before reimport of %q: %w", normalized, err)
		}
		summary.Wiped = wiped
		s.logger.Info("wiped existing jobs for reimport", "company", normalized, "deleted", wiped)
	}

	breakdown := newRunBreakdown()
	for _, raw := range postings {
		enriched, err := s.enrichOne(raw, board)
		if err != nil {
			summary.Failed++
			s.logger.Warn("posting failed, skipping",
				"board", board.Slug(), "source_id", raw.SourceID(), "error", err)
			continue
		}
		breakdown.add(enriched)

		if opts.DryRun {
			exists, err := s.exists(ctx, enriched)
			if err != nil {
				return summary, fmt.Errorf("dry-run lookup %s/%s: %w", job.SourceGreenhouse, raw.SourceID(), err)
			}
			if exists {
				summary.Updated++
			} else {
				summary.Inserted++
			}
			continue
		}

		_, outcome, err := s.jobs.Upsert(ctx, enriched)
		if err != nil {
			return summary, fmt.Errorf("persist posting %s/%s: %w", job.SourceGreenhouse, raw.SourceID(), err)
		}
		switch outcome {
		case job.OutcomeInserted:
			summary.Inserted++
		case job.OutcomeUpdated:
			summary.Updated++
		}
	}

	if !opts.DryRun {
		company := job.NewCompany(board.Company(), board.URL(), board.Industry(), summary.Fetched)
		if _, err := s.companies.Upsert(ctx, company); err != nil {
			return summary, fmt.Errorf("upsert company %q: %w", normalized, err)
		}
	}

	s.logger.Info("import complete",
		"board", board.Slug(),
		"fetched", summary.Fetched,
		"inserted", summary.Inserted,
		"updated", summary.Updated,
		"failed", summary.Failed,
		"dry_run", summary.DryRun)
	breakdown.log(s.logger, board.Slug())
	return summary, nil
}

// ImportBoards imports every board in turn. A board whose import fails is
// logged and skipped; the error returned reflects only whether any board
// succeeded.
func (s *Importer) ImportBoards(ctx context.Context, boards []config.Board, opts ImportOptions) ([]ImportSummary, error) {
	var summaries []ImportSummary
	var failed int
	for _, board := range boards {
		summary, err := s.ImportBoard(ctx, board, opts)
		if err != nil {
			failed++
			s.logger.Error("board import failed", "board", board.Slug(), "error", err)
			continue
		}
		summaries = append(summaries, summary)
	}
	if failed > 0 && len(summaries) == 0 {
		return nil, errors.New("all board imports failed")
	}
	return summaries, nil
}

// enrichOne runs the pipeline over one posting, converting a stage panic into
// an error so the batch survives malformed input.
func (s *Importer) enrichOne(raw posting.RawPosting, board config.Board) (enriched job.Job, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("enrich posting %s: %v", raw.SourceID(), r)
		}
	}()

	enrichment := s.enricher.Enrich(raw)
	return job.NewJob(job.SourceGreenhouse, raw, enrichment, board.Company(), board.URL(), board.Industry()), nil
}

// runBreakdown tallies enrichment results across one run. Logged at the end
// of every import, dry runs included, so a run's classification profile is
// visible without querying the database.
type runBreakdown struct {
	total      int
	withSalary int
	aiMentions int
	remote     int
	functions  map[string]int
	seniority  map[string]int
	signals    map[string]int
	tools      map[string]int
	locations  map[string]int
}

func newRunBreakdown() *runBreakdown {
	return &runBreakdown{
		functions: map[string]int{},
		seniority: map[string]int{},
		signals:   map[string]int{},
		tools:     map[string]int{},
		locations: map[string]int{},
	}
}

func (b *runBreakdown) add(j job.Job) {
	e := j.Enrichment()
	b.total++
	if e.HasSalary() {
		b.withSalary++
	}
	if e.HasAIMention() {
		b.aiMentions++
	}

	b.functions[string(e.Function())]++
	b.seniority[string(e.Seniority())]++
	for _, tag := range e.Signals() {
		b.signals[tag.ID()]++
	}
	for _, tag := range e.Tools() {
		b.tools[tag.ID()]++
	}

	loc := e.Location()
	switch {
	case loc.IsRemote():
		b.remote++
		b.locations["remote"]++
	case loc.Metro() != "":
		b.locations[loc.Metro()]++
	case loc.State() != "":
		b.locations[loc.State()]++
	default:
		b.locations["unresolved"]++
	}
}

func (b *runBreakdown) log(logger *slog.Logger, board string) {
	if b.total == 0 {
		return
	}
	logger.Info("run breakdown",
		"board", board,
		"postings", b.total,
		"with_salary", b.withSalary,
		"ai_mentions", b.aiMentions,
		"remote", b.remote,
		"functions", topCounts(b.functions, 0),
		"seniority", topCounts(b.seniority, 0),
		"top_signals", topCounts(b.signals, 5),
		"top_tools", topCounts(b.tools, 5),
		"top_locations", topCounts(b.locations, 5))
}

// topCounts renders a tally as "key=n" pairs, highest first, ties
// alphabetical. A limit of 0 keeps everything.
func topCounts(tally map[string]int, limit int) string {
	keys := make([]string, 0, len(tally))
	for k := range tally {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if tally[keys[i]] != tally[keys[j]] {
			return tally[keys[i]] > tally[keys[j]]
		}
		return keys[i] < keys[j]
	})
	if limit > 0 && len(keys) > limit {
		keys = keys[:limit]
	}

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%d", k, tally[k])
	}
	return strings.Join(parts, " ")
}

func (s *Importer) exists(ctx context.Context, j job.Job) (bool, error) {
	count, err := s.jobs.Count(ctx,
		job.WithSource(j.Source()),
		job.WithSourceID(j.SourceID()))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
