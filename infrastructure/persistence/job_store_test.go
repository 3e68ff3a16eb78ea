package persistence_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldworkhq/fieldwork/domain/job"
	"github.com/fieldworkhq/fieldwork/domain/posting"
	"github.com/fieldworkhq/fieldwork/domain/taxonomy"
	"github.com/fieldworkhq/fieldwork/infrastructure/persistence"
	"github.com/fieldworkhq/fieldwork/internal/database"
	"github.com/fieldworkhq/fieldwork/internal/testdb"
)

func testJob(sourceID, title, company string, signals, tools []taxonomy.Tag) job.Job {
	raw := posting.NewRawPosting(
		sourceID,
		title,
		"Engineering",
		"Remote",
		"2025-01-01T00:00:00Z",
		"https://example.com/jobs/"+sourceID,
		"",
	)
	salaryMin := 120000.0
	salaryMax := 150000.0
	enrichment := posting.ReconstructEnrichment(
		"Build and run services.",
		&salaryMin, &salaryMax,
		posting.FunctionEngineering,
		posting.SenioritySenior,
		true,
		[]string{"machine learning"},
		false,
		posting.ResolveLocation("Remote"),
		signals, tools,
		"2025-01-01 00:00:00",
	)
	return job.NewJob(job.SourceGreenhouse, raw, enrichment, company, "https://example.com", "devtools")
}

func TestJobStoreUpsertInserts(t *testing.T) {
	db := testdb.New(t)
	store := persistence.NewJobStore(db)
	ctx := context.Background()

	signals := []taxonomy.Tag{taxonomy.NewTag("segment", "enterprise")}
	tools := []taxonomy.Tag{taxonomy.NewTag("Languages", "python")}

	saved, outcome, err := store.Upsert(ctx, testJob("100", "Senior Backend Engineer", "Acme", signals, tools))
	require.NoError(t, err)
	assert.Equal(t, job.OutcomeInserted, outcome)
	assert.NotZero(t, saved.ID())
	assert.Equal(t, "Senior Backend Engineer", saved.Title())
	assert.Equal(t, "acme", saved.CompanyNormalized())
	assert.True(t, saved.Active())
	assert.False(t, saved.FirstSeen().IsZero())
	assert.False(t, saved.LastSeen().IsZero())

	e := saved.Enrichment()
	require.NotNil(t, e.SalaryMin())
	assert.Equal(t, 120000.0, *e.SalaryMin())
	require.Len(t, e.Signals(), 1)
	assert.Equal(t, "enterprise", e.Signals()[0].ID())
	require.Len(t, e.Tools(), 1)
	assert.Equal(t, "python", e.Tools()[0].ID())
}

func TestJobStoreUpsertHitPreservesClassification(t *testing.T) {
	db := testdb.New(t)
	store := persistence.NewJobStore(db)
	ctx := context.Background()

	first, _, err := store.Upsert(ctx, testJob("100", "Senior Backend Engineer", "Acme", nil, nil))
	require.NoError(t, err)

	// Same (source, source_id), different title and tags. Only last_seen and
	// is_active may change.
	changed := testJob("100", "Totally Different Title", "Acme",
		[]taxonomy.Tag{taxonomy.NewTag("segment", "smb")}, nil)

	refreshed, outcome, err := store.Upsert(ctx, changed)
	require.NoError(t, err)
	assert.Equal(t, job.OutcomeUpdated, outcome)
	assert.Equal(t, first.ID(), refreshed.ID())
	assert.Equal(t, "Senior Backend Engineer", refreshed.Title())
	assert.Empty(t, refreshed.Enrichment().Signals())
	assert.True(t, refreshed.Active())
	assert.False(t, refreshed.LastSeen().Before(first.LastSeen()))

	count, err := store.Count(ctx, job.WithSource(job.SourceGreenhouse), job.WithSourceID("100"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestJobStoreUpsertWritesSentinelRows(t *testing.T) {
	db := testdb.New(t)
	store := persistence.NewJobStore(db)
	ctx := context.Background()

	saved, _, err := store.Upsert(ctx, testJob("100", "Backend Engineer", "Acme", nil, nil))
	require.NoError(t, err)

	var signalRows []persistence.SignalModel
	require.NoError(t, db.Session(ctx).Where("job_id = ?", saved.ID()).Find(&signalRows).Error)
	require.Len(t, signalRows, 1)
	assert.Equal(t, job.SentinelTag, signalRows[0].SignalID)

	var toolRows []persistence.ToolModel
	require.NoError(t, db.Session(ctx).Where("job_id = ?", saved.ID()).Find(&toolRows).Error)
	require.Len(t, toolRows, 1)
	assert.Equal(t, job.SentinelTag, toolRows[0].ToolID)

	// Sentinels are storage detail only: the domain job reads back with no tags.
	loaded, err := store.FindOne(ctx, job.WithID(saved.ID()))
	require.NoError(t, err)
	assert.Empty(t, loaded.Enrichment().Signals())
	assert.Empty(t, loaded.Enrichment().Tools())
}

func TestJobStoreFindFilters(t *testing.T) {
	db := testdb.New(t)
	store := persistence.NewJobStore(db)
	ctx := context.Background()

	for _, j := range []job.Job{
		testJob("100", "Backend Engineer", "Acme", nil, nil),
		testJob("101", "Account Executive", "Acme", nil, nil),
		testJob("200", "Backend Engineer", "Globex", nil, nil),
	} {
		_, _, err := store.Upsert(ctx, j)
		require.NoError(t, err)
	}

	acme, err := store.Find(ctx, job.WithCompany("acme"))
	require.NoError(t, err)
	assert.Len(t, acme, 2)

	count, err := store.Count(ctx, job.WithCompany("globex"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	none, err := store.Find(ctx, job.WithCompany("initech"))
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestJobStoreFindOneNotFound(t *testing.T) {
	db := testdb.New(t)
	store := persistence.NewJobStore(db)

	_, err := store.FindOne(context.Background(), job.WithID(9999))
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestJobStoreDeleteByCompany(t *testing.T) {
	db := testdb.New(t)
	store := persistence.NewJobStore(db)
	ctx := context.Background()

	tools := []taxonomy.Tag{taxonomy.NewTag("Languages", "go")}
	for _, j := range []job.Job{
		testJob("100", "Backend Engineer", "Acme", nil, tools),
		testJob("101", "Account Executive", "Acme", nil, nil),
		testJob("200", "Backend Engineer", "Globex", nil, tools),
	} {
		_, _, err := store.Upsert(ctx, j)
		require.NoError(t, err)
	}

	deleted, err := store.DeleteByCompany(ctx, "acme")
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	remaining, err := store.Find(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "globex", remaining[0].CompanyNormalized())

	// Child rows must go with their jobs.
	var signalRows int64
	require.NoError(t, db.Session(ctx).Model(&persistence.SignalModel{}).Count(&signalRows).Error)
	var toolRows int64
	require.NoError(t, db.Session(ctx).Model(&persistence.ToolModel{}).Count(&toolRows).Error)
	assert.Equal(t, int64(1), signalRows)
	assert.Equal(t, int64(1), toolRows)
}

func TestJobStoreDeleteByCompanyNoRows(t *testing.T) {
	db := testdb.New(t)
	store := persistence.NewJobStore(db)

	deleted, err := store.DeleteByCompany(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Zero(t, deleted)
}
