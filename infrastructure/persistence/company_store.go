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

// CompanyStore implements job.CompanyStore using GORM.
type CompanyStore struct {
	repo database.Repository[job.Company, CompanyModel]
}

// NewCompanyStore creates a new CompanyStore.
func NewCompanyStore(db database.Database) *CompanyStore {
	return &CompanyStore{
		repo: database.NewRepository[job.Company, CompanyModel](db, CompanyMapper{}, "company"),
	}
}

// Upsert creates the aggregate on first sight, otherwise overwrites the
// posting count and metadata. The count reflects the run that wrote it, not
// an accumulation.
func (s *CompanyStore) Upsert(ctx context.Context, c job.Company) (job.Company, error) {
	session := s.repo.DB(ctx)
	now := time.Now().UTC()

	var existing CompanyModel
	err := session.Where("name_normalized = ?", c.Normalized()).First(&existing).Error
	switch {
	case err == nil:
		result := session.Model(&CompanyModel{}).
			Where("id = ?", existing.ID).
			Updates(map[string]any{
				"total_job_postings": c.TotalPostings(),
				"industry":           c.Industry(),
				"url":                c.URL(),
				"updated_at":         now,
			})
		if result.Error != nil {
			return job.Company{}, fmt.Errorf("update company %q: %w", c.Normalized(), result.Error)
		}
		existing.TotalJobPostings = c.TotalPostings()
		existing.Industry = c.Industry()
		existing.URL = c.URL()
		existing.UpdatedAt = now
		return s.repo.Mapper().ToDomain(existing), nil

	case errors.Is(err, gorm.ErrRecordNotFound):
		model := s.repo.Mapper().ToModel(c)
		model.ID = 0
		model.UpdatedAt = now
		if err := session.Create(&model).Error; err != nil {
			return job.Company{}, fmt.Errorf("insert company %q: %w", c.Normalized(), err)
		}
		return s.repo.Mapper().ToDomain(model), nil

	default:
		return job.Company{}, fmt.Errorf("lookup company %q: %w", c.Normalized(), err)
	}
}

// Find returns companies matching the given options.
func (s *CompanyStore) Find(ctx context.Context, options ...job.Option) ([]job.Company, error) {
	return s.repo.Find(ctx, options...)
}

// FindOne returns a single company matching the given options.
func (s *CompanyStore) FindOne(ctx context.Context, options ...job.Option) (job.Company, error) {
	return s.repo.FindOne(ctx, options...)
}
