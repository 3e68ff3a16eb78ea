package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fieldworkhq/fieldwork/domain/job"
)

// JobFilter narrows a job query. Zero values mean "any".
type JobFilter struct {
	Company    string
	Function   string
	Seniority  string
	State      string
	Metro      string
	Remote     *bool
	AIMention  *bool
	ActiveOnly bool
	Limit      int
	Offset     int
}

func (f JobFilter) options() []job.Option {
	var options []job.Option
	if f.Company != "" {
		options = append(options, job.WithCompany(job.NormalizeCompanyName(f.Company)))
	}
	if f.Function != "" {
		options = append(options, job.WithFunction(f.Function))
	}
	if f.Seniority != "" {
		options = append(options, job.WithSeniority(f.Seniority))
	}
	if f.State != "" {
		options = append(options, job.WithState(f.State))
	}
	if f.Metro != "" {
		options = append(options, job.WithMetro(f.Metro))
	}
	if f.Remote != nil {
		options = append(options, job.WithRemote(*f.Remote))
	}
	if f.AIMention != nil {
		options = append(options, job.WithAIMention(*f.AIMention))
	}
	if f.ActiveOnly {
		options = append(options, job.WithActive(true))
	}
	if f.Limit > 0 {
		options = append(options, job.WithLimit(f.Limit))
	}
	if f.Offset > 0 {
		options = append(options, job.WithOffset(f.Offset))
	}
	return options
}

// CompanyStats is a company aggregate with live counts from the jobs table.
type CompanyStats struct {
	Company    job.Company
	ActiveJobs int64
	RemoteJobs int64
	AIJobs     int64
}

// JobsService answers read queries over imported jobs and companies.
type JobsService struct {
	jobs      job.Store
	companies job.CompanyStore
	logger    *slog.Logger
}

// NewJobsService creates a JobsService.
func NewJobsService(jobs job.Store, companies job.CompanyStore, logger *slog.Logger) *JobsService {
	if logger == nil {
		logger = slog.Default()
	}
	return &JobsService{jobs: jobs, companies: companies, logger: logger}
}

// Search returns jobs matching the filter, most recently seen first.
func (s *JobsService) Search(ctx context.Context, filter JobFilter) ([]job.Job, error) {
	options := append(filter.options(), job.WithOrderDesc("last_seen"))
	return s.jobs.Find(ctx, options...)
}

// Count returns the number of jobs matching the filter.
func (s *JobsService) Count(ctx context.Context, filter JobFilter) (int64, error) {
	return s.jobs.Count(ctx, filter.options()...)
}

// Get returns one job by database id.
func (s *JobsService) Get(ctx context.Context, id int64) (job.Job, error) {
	return s.jobs.FindOne(ctx, job.WithID(id))
}

// Companies returns every known company, alphabetically.
func (s *JobsService) Companies(ctx context.Context) ([]job.Company, error) {
	return s.companies.Find(ctx, job.WithOrderAsc("name_normalized"))
}

// CompanyStats returns one company's aggregate plus live counts from the
// jobs table.
func (s *JobsService) CompanyStats(ctx context.Context, name string) (CompanyStats, error) {
	normalized := job.NormalizeCompanyName(name)

	company, err := s.companies.FindOne(ctx, job.WithCondition("name_normalized", normalized))
	if err != nil {
		return CompanyStats{}, fmt.Errorf("load company %q: %w", normalized, err)
	}

	active, err := s.jobs.Count(ctx, job.WithCompany(normalized), job.WithActive(true))
	if err != nil {
		return CompanyStats{}, fmt.Errorf("count active jobs for %q: %w", normalized, err)
	}
	remote, err := s.jobs.Count(ctx, job.WithCompany(normalized), job.WithActive(true), job.WithRemote(true))
	if err != nil {
		return CompanyStats{}, fmt.Errorf("count remote jobs for %q: %w", normalized, err)
	}
	ai, err := s.jobs.Count(ctx, job.WithCompany(normalized), job.WithActive(true), job.WithAIMention(true))
	if err != nil {
		return CompanyStats{}, fmt.Errorf("count ai jobs for %q: %w", normalized, err)
	}

	return CompanyStats{
		Company:    company,
		ActiveJobs: active,
		RemoteJobs: remote,
		AIJobs:     ai,
	}, nil
}
