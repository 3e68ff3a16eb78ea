package history

import (
	"context"

	"github.com/fieldworkhq/fieldwork/domain/job"
)

// Store defines persistence for board hiring timelines. Points are keyed
// (board, timestamp); re-running a history build refreshes rather than
// duplicates.
type Store interface {
	// SaveTimeline upserts every point in a timeline.
	SaveTimeline(ctx context.Context, t Timeline) error

	// FindPoints returns stored points matching the given options.
	FindPoints(ctx context.Context, options ...job.Option) ([]TimelinePoint, error)
}

// WithBoard filters by the "board" column.
func WithBoard(board string) job.Option {
	return job.WithCondition("board", board)
}
