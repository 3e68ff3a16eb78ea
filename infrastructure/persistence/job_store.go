package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/fieldworkhq/fieldwork/domain/job"
	"github.com/fieldworkhq/fieldwork/internal/database"
)

// JobStore implements job.Store using GORM.
type JobStore struct {
	db     database.Database
	mapper JobMapper
}

// NewJobStore creates a new JobStore.
func NewJobStore(db database.Database) *JobStore {
	return &JobStore{db: db}
}

// Upsert creates or refreshes a job row. Existence is decided solely by the
// (source, source_id) pair. A hit touches last_seen and is_active and nothing
// else, so the classification from the first import survives re-fetches. A
// miss inserts the row plus signal and tool child rows, with sentinel rows
// standing in for empty tag sets.
func (s *JobStore) Upsert(ctx context.Context, j job.Job) (job.Job, job.UpsertOutcome, error) {
	session := s.db.Session(ctx)
	now := time.Now().UTC()

	var existing JobModel
	err := session.
		Where("source = ? AND source_id = ?", j.Source(), j.SourceID()).
		First(&existing).Error
	switch {
	case err == nil:
		result := session.Model(&JobModel{}).
			Where("id = ?", existing.ID).
			Updates(map[string]any{"last_seen": now, "is_active": true})
		if result.Error != nil {
			return job.Job{}, "", fmt.Errorf("refresh job %s/%s: %w", j.Source(), j.SourceID(), result.Error)
		}
		existing.LastSeen = now
		existing.IsActive = true

		refreshed, err := s.withTags(ctx, existing)
		if err != nil {
			return job.Job{}, "", err
		}
		return refreshed, job.OutcomeUpdated, nil

	case errors.Is(err, gorm.ErrRecordNotFound):
		// fall through to insert

	default:
		return job.Job{}, "", fmt.Errorf("lookup job %s/%s: %w", j.Source(), j.SourceID(), err)
	}

	model := s.mapper.ToModel(j)
	model.ID = 0
	model.DateScraped = now
	model.LastSeen = now
	model.IsActive = true

	if err := session.Create(&model).Error; err != nil {
		return job.Job{}, "", fmt.Errorf("insert job %s/%s: %w", j.Source(), j.SourceID(), err)
	}

	enrichment := j.Enrichment()
	signalRows := s.mapper.SignalRows(model.ID, enrichment.Signals())
	if err := session.Create(&signalRows).Error; err != nil {
		return job.Job{}, "", fmt.Errorf("insert job signals %s/%s: %w", j.Source(), j.SourceID(), err)
	}
	toolRows := s.mapper.ToolRows(model.ID, enrichment.Tools())
	if err := session.Create(&toolRows).Error; err != nil {
		return job.Job{}, "", fmt.Errorf("insert job tools %s/%s: %w", j.Source(), j.SourceID(), err)
	}

	return s.mapper.ToDomain(model, signalRows, toolRows), job.OutcomeInserted, nil
}

// Find returns jobs matching the given options, with tag child rows loaded in
// bulk.
func (s *JobStore) Find(ctx context.Context, options ...job.Option) ([]job.Job, error) {
	var models []JobModel
	db := database.ApplyOptions(s.db.Session(ctx).Model(&JobModel{}), options...)
	if result := db.Find(&models); result.Error != nil {
		return nil, fmt.Errorf("find jobs: %w", result.Error)
	}
	if len(models) == 0 {
		return nil, nil
	}

	ids := make([]int64, len(models))
	for i, m := range models {
		ids[i] = m.ID
	}

	var signals []SignalModel
	if result := s.db.Session(ctx).Where("job_id IN ?", ids).Find(&signals); result.Error != nil {
		return nil, fmt.Errorf("load job signals: %w", result.Error)
	}
	var tools []ToolModel
	if result := s.db.Session(ctx).Where("job_id IN ?", ids).Find(&tools); result.Error != nil {
		return nil, fmt.Errorf("load job tools: %w", result.Error)
	}

	signalsByJob := make(map[int64][]SignalModel, len(models))
	for _, row := range signals {
		signalsByJob[row.JobID] = append(signalsByJob[row.JobID], row)
	}
	toolsByJob := make(map[int64][]ToolModel, len(models))
	for _, row := range tools {
		toolsByJob[row.JobID] = append(toolsByJob[row.JobID], row)
	}

	jobs := make([]job.Job, len(models))
	for i, m := range models {
		jobs[i] = s.mapper.ToDomain(m, signalsByJob[m.ID], toolsByJob[m.ID])
	}
	return jobs, nil
}

// FindOne returns a single job matching the given options.
func (s *JobStore) FindOne(ctx context.Context, options ...job.Option) (job.Job, error) {
	var model JobModel
	db := database.ApplyOptions(s.db.Session(ctx), options...)
	if result := db.First(&model); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return job.Job{}, fmt.Errorf("%w: job", database.ErrNotFound)
		}
		return job.Job{}, fmt.Errorf("find one job: %w", result.Error)
	}
	return s.withTags(ctx, model)
}

// Count returns the number of jobs matching the given options.
func (s *JobStore) Count(ctx context.Context, options ...job.Option) (int64, error) {
	var count int64
	db := database.ApplyConditions(s.db.Session(ctx).Model(&JobModel{}), options...)
	if result := db.Count(&count); result.Error != nil {
		return 0, fmt.Errorf("count jobs: %w", result.Error)
	}
	return count, nil
}

// DeleteByCompany removes every job for a company together with its signal
// and tool child rows, all in one transaction. Returns the number of jobs
// removed.
func (s *JobStore) DeleteByCompany(ctx context.Context, normalized string) (int64, error) {
	var deleted int64
	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		var ids []int64
		if err := tx.Model(&JobModel{}).
			Where("company_name_normalized = ?", normalized).
			Pluck("id", &ids).Error; err != nil {
			return fmt.Errorf("list company jobs: %w", err)
		}
		if len(ids) == 0 {
			return nil
		}

		if err := tx.Where("job_id IN ?", ids).Delete(&SignalModel{}).Error; err != nil {
			return fmt.Errorf("delete job signals: %w", err)
		}
		if err := tx.Where("job_id IN ?", ids).Delete(&ToolModel{}).Error; err != nil {
			return fmt.Errorf("delete job tools: %w", err)
		}
		if err := tx.Where("id IN ?", ids).Delete(&JobModel{}).Error; err != nil {
			return fmt.Errorf("delete jobs: %w", err)
		}

		deleted = int64(len(ids))
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("delete jobs for company %q: %w", normalized, err)
	}
	return deleted, nil
}

func (s *JobStore) withTags(ctx context.Context, model JobModel) (job.Job, error) {
	var signals []SignalModel
	if result := s.db.Session(ctx).Where("job_id = ?", model.ID).Find(&signals); result.Error != nil {
		return job.Job{}, fmt.Errorf("load job signals: %w", result.Error)
	}
	var tools []ToolModel
	if result := s.db.Session(ctx).Where("job_id = ?", model.ID).Find(&tools); result.Error != nil {
		return job.Job{}, fmt.Errorf("load job tools: %w", result.Error)
	}
	return s.mapper.ToDomain(model, signals, tools), nil
}
