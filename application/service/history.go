package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/fieldworkhq/fieldwork/domain/history"
)

// SnapshotSource lists and fetches archived board page captures.
type SnapshotSource interface {
	ListSnapshots(ctx context.Context, board string) ([]history.Snapshot, error)
	FetchSnapshot(ctx context.Context, board string, snap history.Snapshot) (string, error)
}

// LiveCounter reports a board's current open-role count.
type LiveCounter interface {
	CountLive(ctx context.Context, board string) (int, error)
}

// defaultHistoryConcurrency bounds parallel archive fetches. The archive is a
// shared public service; the per-fetch delay does the real throttling.
const defaultHistoryConcurrency = 2

// HistoryOptions control one timeline build.
type HistoryOptions struct {
	// Frequency selects one snapshot per month or per quarter.
	Frequency history.Frequency

	// Start and End bound the snapshot range. Zero values are open.
	Start time.Time
	End   time.Time

	// Concurrency bounds parallel snapshot fetches.
	Concurrency int
}

// HistoryService builds hiring timelines from archived board pages.
type HistoryService struct {
	archive SnapshotSource
	live    LiveCounter
	store   history.Store
	delay   time.Duration
	logger  *slog.Logger
}

// NewHistoryService creates a HistoryService. The delay is the minimum gap
// between consecutive archive fetches; live may be nil to skip the current
// data point.
func NewHistoryService(archive SnapshotSource, live LiveCounter, store history.Store, delay time.Duration, logger *slog.Logger) *HistoryService {
	if logger == nil {
		logger = slog.Default()
	}
	return &HistoryService{
		archive: archive,
		live:    live,
		store:   store,
		delay:   delay,
		logger:  logger,
	}
}

// BuildTimeline lists a board's archive captures, samples one per period,
// fetches each sampled page, and extracts its open-role count. A snapshot
// that fails to fetch is logged and skipped rather than failing the build.
// The live API count is appended as the final point when available, and the
// finished timeline is persisted.
func (s *HistoryService) BuildTimeline(ctx context.Context, board string, opts HistoryOptions) (history.Timeline, error) {
	snapshots, err := s.archive.ListSnapshots(ctx, board)
	if err != nil {
		return history.Timeline{}, fmt.Errorf("list archive snapshots for %q: %w", board, err)
	}

	filtered := history.FilterByDateRange(snapshots, opts.Start, opts.End)
	selected := history.SelectSnapshots(filtered, opts.Frequency)
	s.logger.Info("selected archive snapshots",
		"board", board, "available", len(snapshots), "selected", len(selected), "frequency", string(opts.Frequency))

	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = defaultHistoryConcurrency
	}

	points := make([]*history.TimelinePoint, len(selected))
	throttle := s.throttler()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, snap := range selected {
		g.Go(func() error {
			if err := throttle(gctx); err != nil {
				return err
			}

			markup, err := s.archive.FetchSnapshot(gctx, board, snap)
			if err != nil {
				s.logger.Warn("snapshot fetch failed, skipping",
					"board", board, "timestamp", snap.Timestamp(), "error", err)
				return nil
			}

			count, format := history.CountOpenings(markup)
			var departments map[string]int
			if format == history.FormatOld {
				departments = history.ExtractDepartments(markup)
			}

			point := history.NewTimelinePoint(
				board, snap.DateString(), snap.Timestamp(), count, format, snap.Length(), departments)
			points[i] = &point
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return history.Timeline{}, fmt.Errorf("fetch snapshots for %q: %w", board, err)
	}

	var collected []history.TimelinePoint
	for _, p := range points {
		if p != nil {
			collected = append(collected, *p)
		}
	}

	if s.live != nil {
		if count, err := s.live.CountLive(ctx, board); err != nil {
			s.logger.Warn("live count failed, omitting current point", "board", board, "error", err)
		} else {
			now := time.Now().UTC()
			collected = append(collected, history.NewTimelinePoint(
				board, now.Format("2006-01-02"), "live", count, history.FormatAPI, 0, nil))
		}
	}

	timeline := history.NewTimeline(board, opts.Frequency, collected)
	if s.store != nil {
		if err := s.store.SaveTimeline(ctx, timeline); err != nil {
			return history.Timeline{}, fmt.Errorf("persist timeline for %q: %w", board, err)
		}
	}

	s.logTimeline(timeline)
	return timeline, nil
}

// StoredTimeline returns the persisted points for a board as a timeline.
func (s *HistoryService) StoredTimeline(ctx context.Context, board string, frequency history.Frequency) (history.Timeline, error) {
	points, err := s.store.FindPoints(ctx, history.WithBoard(board))
	if err != nil {
		return history.Timeline{}, fmt.Errorf("load timeline for %q: %w", board, err)
	}
	return history.NewTimeline(board, frequency, points), nil
}

// throttler returns a function that blocks until the next archive fetch is
// allowed, spacing fetches at least delay apart across goroutines.
func (s *HistoryService) throttler() func(ctx context.Context) error {
	if s.delay <= 0 {
		return func(context.Context) error { return nil }
	}

	var mu sync.Mutex
	var last time.Time
	return func(ctx context.Context) error {
		mu.Lock()
		now := time.Now()
		next := last.Add(s.delay)
		if next.Before(now) {
			next = now
		}
		last = next
		mu.Unlock()

		wait := time.Until(next)
		if wait <= 0 {
			return nil
		}
		timer := time.NewTimer(wait)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
			return nil
		}
	}
}

func (s *HistoryService) logTimeline(t history.Timeline) {
	if peak, ok := t.Peak(); ok {
		s.logger.Info("timeline peak", "board", t.Board(), "date", peak.Date(), "open_roles", peak.OpenRoles())
	}
	if trough, ok := t.Trough(); ok {
		s.logger.Info("timeline trough", "board", t.Board(), "date", trough.Date(), "open_roles", trough.OpenRoles())
	}
	if current, ok := t.Current(); ok {
		s.logger.Info("timeline current", "board", t.Board(), "date", current.Date(), "open_roles", current.OpenRoles())
	}
}
