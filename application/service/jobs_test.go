package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldworkhq/fieldwork/application/service"
	"github.com/fieldworkhq/fieldwork/domain/posting"
	"github.com/fieldworkhq/fieldwork/internal/config"
	"github.com/fieldworkhq/fieldwork/internal/database"
)

func globexBoard() config.Board {
	return config.NewBoard("globex", "Globex", "https://globex.example.com", "manufacturing")
}

func seedJobsService(t *testing.T) *service.JobsService {
	t.Helper()

	mlPosting := posting.NewRawPosting(
		"300",
		"Machine Learning Engineer",
		"Engineering",
		"Remote",
		"2025-03-14T09:30:00-04:00",
		"https://example.com/jobs/300",
		"<p>Train and ship machine learning models.</p>",
	)

	fetcher := &fakeFetcher{postings: map[string][]posting.RawPosting{
		"acme": {
			rawPosting("100", "Senior Backend Engineer", "Remote"),
			rawPosting("101", "Account Executive", "New York, NY"),
			mlPosting,
		},
		"globex": {
			rawPosting("200", "Engineering Manager", "Columbus, OH"),
		},
	}}

	importer, jobs, companies := newTestImporter(t, fetcher)
	ctx := context.Background()

	_, err := importer.ImportBoard(ctx, acmeBoard(), service.ImportOptions{})
	require.NoError(t, err)
	_, err = importer.ImportBoard(ctx, globexBoard(), service.ImportOptions{})
	require.NoError(t, err)

	return service.NewJobsService(jobs, companies, nil)
}

func TestJobsServiceSearch(t *testing.T) {
	svc := seedJobsService(t)
	ctx := context.Background()

	all, err := svc.Search(ctx, service.JobFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 4)

	acme, err := svc.Search(ctx, service.JobFilter{Company: "Acme Corp"})
	require.NoError(t, err)
	assert.Len(t, acme, 3)

	remote := true
	remoteJobs, err := svc.Search(ctx, service.JobFilter{Remote: &remote})
	require.NoError(t, err)
	assert.Len(t, remoteJobs, 2)

	ai := true
	aiJobs, err := svc.Search(ctx, service.JobFilter{AIMention: &ai})
	require.NoError(t, err)
	require.Len(t, aiJobs, 1)
	assert.Equal(t, "Machine Learning Engineer", aiJobs[0].Title())

	limited, err := svc.Search(ctx, service.JobFilter{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestJobsServiceCount(t *testing.T) {
	svc := seedJobsService(t)

	count, err := svc.Count(context.Background(), service.JobFilter{Company: "globex"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestJobsServiceGet(t *testing.T) {
	svc := seedJobsService(t)
	ctx := context.Background()

	all, err := svc.Search(ctx, service.JobFilter{})
	require.NoError(t, err)
	require.NotEmpty(t, all)

	found, err := svc.Get(ctx, all[0].ID())
	require.NoError(t, err)
	assert.Equal(t, all[0].SourceID(), found.SourceID())

	_, err = svc.Get(ctx, 99999)
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestJobsServiceCompanies(t *testing.T) {
	svc := seedJobsService(t)

	companies, err := svc.Companies(context.Background())
	require.NoError(t, err)
	require.Len(t, companies, 2)
	assert.Equal(t, "Acme Corp", companies[0].Name())
	assert.Equal(t, "Globex", companies[1].Name())
}

func TestJobsServiceCompanyStats(t *testing.T) {
	svc := seedJobsService(t)

	stats, err := svc.CompanyStats(context.Background(), "Acme Corp")
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", stats.Company.Name())
	assert.Equal(t, int64(3), stats.ActiveJobs)
	assert.Equal(t, int64(2), stats.RemoteJobs)
	assert.Equal(t, int64(1), stats.AIJobs)

	_, err = svc.CompanyStats(context.Background(), "Nobody Inc")
	assert.Error(t, err)
}
