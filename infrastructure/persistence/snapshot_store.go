package persistence

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/fieldworkhq/fieldwork/domain/history"
	"github.com/fieldworkhq/fieldwork/domain/job"
	"github.com/fieldworkhq/fieldwork/internal/database"
)

// SnapshotStore implements history.Store using GORM.
type SnapshotStore struct {
	repo database.Repository[history.TimelinePoint, SnapshotModel]
	db   database.Database
}

// NewSnapshotStore creates a new SnapshotStore.
func NewSnapshotStore(db database.Database) *SnapshotStore {
	return &SnapshotStore{
		repo: database.NewRepository[history.TimelinePoint, SnapshotModel](db, SnapshotMapper{}, "board snapshot"),
		db:   db,
	}
}

// SaveTimeline upserts every point in a timeline. Points are keyed
// (board, timestamp), so rebuilding a history refreshes rows in place.
func (s *SnapshotStore) SaveTimeline(ctx context.Context, t history.Timeline) error {
	points := t.Points()
	if len(points) == 0 {
		return nil
	}

	now := time.Now().UTC()
	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		for _, p := range points {
			model := s.repo.Mapper().ToModel(p)
			model.CreatedAt = now
			result := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "board"}, {Name: "timestamp"}},
				DoUpdates: clause.AssignmentColumns([]string{
					"date", "open_roles", "format", "page_size", "departments", "created_at",
				}),
			}).Create(&model)
			if result.Error != nil {
				return fmt.Errorf("save snapshot %s@%s: %w", p.Board(), p.Timestamp(), result.Error)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("save timeline for %q: %w", t.Board(), err)
	}
	return nil
}

// FindPoints returns stored points matching the given options, ordered by
// timestamp.
func (s *SnapshotStore) FindPoints(ctx context.Context, options ...job.Option) ([]history.TimelinePoint, error) {
	options = append(options, job.WithOrderAsc("timestamp"))
	return s.repo.Find(ctx, options...)
}
