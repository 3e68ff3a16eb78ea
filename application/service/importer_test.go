package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldworkhq/fieldwork/application/service"
	"github.com/fieldworkhq/fieldwork/domain/job"
	"github.com/fieldworkhq/fieldwork/domain/posting"
	"github.com/fieldworkhq/fieldwork/infrastructure/persistence"
	"github.com/fieldworkhq/fieldwork/internal/config"
	"github.com/fieldworkhq/fieldwork/internal/testdb"
)

type fakeFetcher struct {
	postings map[string][]posting.RawPosting
	err      error
}

func (f *fakeFetcher) FetchBoard(_ context.Context, board string) ([]posting.RawPosting, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.postings[board], nil
}

func rawPosting(id, title, location string) posting.RawPosting {
	return posting.NewRawPosting(
		id,
		title,
		"Engineering",
		location,
		"2025-03-14T09:30:00-04:00",
		"https://example.com/jobs/"+id,
		"<p>Build services in Go. Salary range: $150,000 - $180,000.</p>",
	)
}

func newTestImporter(t *testing.T, fetcher service.Fetcher) (*service.Importer, *persistence.JobStore, *persistence.CompanyStore) {
	t.Helper()
	db := testdb.New(t)
	jobs := persistence.NewJobStore(db)
	companies := persistence.NewCompanyStore(db)
	return service.NewImporter(fetcher, jobs, companies, nil), jobs, companies
}

func acmeBoard() config.Board {
	return config.NewBoard("acme", "Acme Corp", "https://acme.example.com", "devtools")
}

func TestImportBoardInsertsAndWritesCompany(t *testing.T) {
	fetcher := &fakeFetcher{postings: map[string][]posting.RawPosting{
		"acme": {
			rawPosting("100", "Senior Backend Engineer", "Remote"),
			rawPosting("101", "Account Executive", "New York, NY"),
		},
	}}
	importer, jobs, companies := newTestImporter(t, fetcher)
	ctx := context.Background()

	summary, err := importer.ImportBoard(ctx, acmeBoard(), service.ImportOptions{})
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Fetched)
	assert.Equal(t, 2, summary.Inserted)
	assert.Zero(t, summary.Updated)
	assert.Zero(t, summary.Failed)

	count, err := jobs.Count(ctx, job.WithCompany("acme corp"))
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	company, err := companies.FindOne(ctx, job.WithCondition("name_normalized", "acme corp"))
	require.NoError(t, err)
	assert.Equal(t, 2, company.TotalPostings())
	assert.Equal(t, "devtools", company.Industry())
}

func TestImportBoardSecondRunUpdates(t *testing.T) {
	fetcher := &fakeFetcher{postings: map[string][]posting.RawPosting{
		"acme": {rawPosting("100", "Senior Backend Engineer", "Remote")},
	}}
	importer, _, _ := newTestImporter(t, fetcher)
	ctx := context.Background()

	_, err := importer.ImportBoard(ctx, acmeBoard(), service.ImportOptions{})
	require.NoError(t, err)

	summary, err := importer.ImportBoard(ctx, acmeBoard(), service.ImportOptions{})
	require.NoError(t, err)
	assert.Zero(t, summary.Inserted)
	assert.Equal(t, 1, summary.Updated)
}

func TestImportBoardDryRunWritesNothing(t *testing.T) {
	fetcher := &fakeFetcher{postings: map[string][]posting.RawPosting{
		"acme": {rawPosting("100", "Senior Backend Engineer", "Remote")},
	}}
	importer, jobs, companies := newTestImporter(t, fetcher)
	ctx := context.Background()

	summary, err := importer.ImportBoard(ctx, acmeBoard(), service.ImportOptions{DryRun: true})
	require.NoError(t, err)
	assert.True(t, summary.DryRun)
	assert.Equal(t, 1, summary.Inserted)

	count, err := jobs.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	all, err := companies.Find(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestImportBoardDryRunReportsUpdates(t *testing.T) {
	fetcher := &fakeFetcher{postings: map[string][]posting.RawPosting{
		"acme": {rawPosting("100", "Senior Backend Engineer", "Remote")},
	}}
	importer, _, _ := newTestImporter(t, fetcher)
	ctx := context.Background()

	_, err := importer.ImportBoard(ctx, acmeBoard(), service.ImportOptions{})
	require.NoError(t, err)

	summary, err := importer.ImportBoard(ctx, acmeBoard(), service.ImportOptions{DryRun: true})
	require.NoError(t, err)
	assert.Zero(t, summary.Inserted)
	assert.Equal(t, 1, summary.Updated)
}

func TestImportBoardReimportWipesFirst(t *testing.T) {
	fetcher := &fakeFetcher{postings: map[string][]posting.RawPosting{
		"acme": {
			rawPosting("100", "Senior Backend Engineer", "Remote"),
			rawPosting("101", "Account Executive", "New York, NY"),
		},
	}}
	importer, jobs, _ := newTestImporter(t, fetcher)
	ctx := context.Background()

	_, err := importer.ImportBoard(ctx, acmeBoard(), service.ImportOptions{})
	require.NoError(t, err)

	// Drop one posting from the feed; reimport should leave exactly the
	// current feed, every row freshly inserted.
	fetcher.postings["acme"] = fetcher.postings["acme"][:1]

	summary, err := importer.ImportBoard(ctx, acmeBoard(), service.ImportOptions{Reimport: true})
	require.NoError(t, err)
	assert.Equal(t, int64(2), summary.Wiped)
	assert.Equal(t, 1, summary.Inserted)
	assert.Zero(t, summary.Updated)

	count, err := jobs.Count(ctx, job.WithCompany("acme corp"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestImportBoardFetchErrorAborts(t *testing.T) {
	fetcher := &fakeFetcher{err: errors.New("boards api unreachable")}
	importer, jobs, _ := newTestImporter(t, fetcher)
	ctx := context.Background()

	_, err := importer.ImportBoard(ctx, acmeBoard(), service.ImportOptions{})
	require.Error(t, err)

	count, err := jobs.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestImportBoardsSkipsFailedBoard(t *testing.T) {
	fetcher := &boardAwareFetcher{good: "acme"}
	importer, _, _ := newTestImporter(t, fetcher)

	boards := []config.Board{
		config.NewBoard("broken", "Broken Co", "", ""),
		acmeBoard(),
	}

	summaries, err := importer.ImportBoards(context.Background(), boards, service.ImportOptions{})
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "acme", summaries[0].Board)
}

func TestImportBoardsAllFailed(t *testing.T) {
	fetcher := &fakeFetcher{err: errors.New("boards api unreachable")}
	importer, _, _ := newTestImporter(t, fetcher)

	boards := []config.Board{acmeBoard()}
	_, err := importer.ImportBoards(context.Background(), boards, service.ImportOptions{})
	assert.Error(t, err)
}

// boardAwareFetcher fails every board except one.
type boardAwareFetcher struct {
	good string
}

func (f *boardAwareFetcher) FetchBoard(_ context.Context, board string) ([]posting.RawPosting, error) {
	if board != f.good {
		return nil, errors.New("fetch failed")
	}
	return []posting.RawPosting{rawPosting("100", "Senior Backend Engineer", "Remote")}, nil
}

// failingJobStore wraps a real store, injecting errors on selected methods.
type failingJobStore struct {
	job.Store
	upsertErr error
	countErr  error
}

func (f *failingJobStore) Upsert(ctx context.Context, j job.Job) (job.Job, job.UpsertOutcome, error) {
	if f.upsertErr != nil {
		return job.Job{}, "", f.upsertErr
	}
	return f.Store.Upsert(ctx, j)
}

func (f *failingJobStore) Count(ctx context.Context, options ...job.Option) (int64, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return f.Store.Count(ctx, options...)
}

func TestImportBoardUpsertErrorAborts(t *testing.T) {
	fetcher := &fakeFetcher{postings: map[string][]posting.RawPosting{
		"acme": {
			rawPosting("100", "Senior Backend Engineer", "Remote"),
			rawPosting("101", "Account Executive", "New York, NY"),
		},
	}}
	db := testdb.New(t)
	jobs := &failingJobStore{
		Store:     persistence.NewJobStore(db),
		upsertErr: errors.New("disk I/O error"),
	}
	companies := persistence.NewCompanyStore(db)
	importer := service.NewImporter(fetcher, jobs, companies, nil)
	ctx := context.Background()

	_, err := importer.ImportBoard(ctx, acmeBoard(), service.ImportOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk I/O error")

	// An aborted run writes no company aggregate.
	all, err := companies.Find(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestImportBoardDryRunLookupErrorAborts(t *testing.T) {
	fetcher := &fakeFetcher{postings: map[string][]posting.RawPosting{
		"acme": {rawPosting("100", "Senior Backend Engineer", "Remote")},
	}}
	db := testdb.New(t)
	jobs := &failingJobStore{
		Store:    persistence.NewJobStore(db),
		countErr: errors.New("database is locked"),
	}
	importer := service.NewImporter(fetcher, jobs, persistence.NewCompanyStore(db), nil)

	_, err := importer.ImportBoard(context.Background(), acmeBoard(), service.ImportOptions{DryRun: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database is locked")
}
