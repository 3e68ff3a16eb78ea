package job

import "context"

// UpsertOutcome reports what an upsert did.
type UpsertOutcome string

// UpsertOutcome values.
const (
	OutcomeInserted UpsertOutcome = "inserted"
	OutcomeUpdated  UpsertOutcome = "updated"
)

// Store defines persistence operations for jobs and their tag child rows.
//
// The upsert contract: lookup by (source, source id) is the sole existence
// test. A hit refreshes last-seen and the active flag only; classification
// from the first import stays authoritative. A miss inserts the full record
// plus signal and tool child rows, writing sentinel rows when a tag set is
// empty.
type Store interface {
	// Upsert creates or refreshes a job row. Returns the persisted job and
	// what happened.
	Upsert(ctx context.Context, j Job) (Job, UpsertOutcome, error)

	// Find returns jobs matching the given options.
	Find(ctx context.Context, options ...Option) ([]Job, error)

	// FindOne returns a single job matching the given options.
	FindOne(ctx context.Context, options ...Option) (Job, error)

	// Count returns the number of jobs matching the given options.
	Count(ctx context.Context, options ...Option) (int64, error)

	// DeleteByCompany removes all jobs for a company, including every signal
	// and tool child row, and returns the number of jobs deleted. Used by
	// reimport; it must complete before any insert begins.
	DeleteByCompany(ctx context.Context, normalized string) (int64, error)
}

// CompanyStore defines persistence operations for the company aggregate.
type CompanyStore interface {
	// Upsert creates the aggregate on first import, otherwise overwrites the
	// posting count and timestamp. Always executed once per run.
	Upsert(ctx context.Context, c Company) (Company, error)

	// Find returns companies matching the given options.
	Find(ctx context.Context, options ...Option) ([]Company, error)

	// FindOne returns a single company matching the given options.
	FindOne(ctx context.Context, options ...Option) (Company, error)
}
