package posting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnrichFullPipeline(t *testing.T) {
	enricher := NewDefaultEnricher()

	raw := NewRawPosting(
		"4012345",
		"Senior Data Scientist",
		"Data & Machine Learning",
		"Remote - US",
		"2025-03-14T09:30:00-04:00",
		"https://example.com/jobs/4012345",
		"<p>Build machine learning models in Python using Snowflake and dbt.</p>"+
			"<p>Salary range: $170,000 - $210,000.</p>",
	)

	e := enricher.Enrich(raw)

	assert.Contains(t, e.Description(), "Build machine learning models")
	assert.NotContains(t, e.Description(), "<p>")

	require.True(t, e.HasSalary())
	assert.Equal(t, float64(170000), *e.SalaryMin())
	assert.Equal(t, float64(210000), *e.SalaryMax())

	assert.Equal(t, FunctionData, e.Function())
	assert.Equal(t, SenioritySenior, e.Seniority())

	assert.True(t, e.HasAIMention())
	assert.True(t, e.IsAINativeRole())
	assert.Contains(t, e.AITerms(), "machine learning")

	assert.True(t, e.Location().IsRemote())
	assert.Empty(t, e.Location().Metro())
	assert.Empty(t, e.Location().State())

	var toolIDs []string
	for _, tag := range e.Tools() {
		toolIDs = append(toolIDs, tag.ID())
	}
	assert.Contains(t, toolIDs, "python")
	assert.Contains(t, toolIDs, "snowflake")
	assert.Contains(t, toolIDs, "dbt")

	assert.Equal(t, "2025-03-14 13:30:00", e.DatePosted())
}

func TestEnrichEmptyContent(t *testing.T) {
	enricher := NewDefaultEnricher()

	raw := NewRawPosting("1", "Office Coordinator", "", "Chicago, IL", "", "", "")
	e := enricher.Enrich(raw)

	assert.Empty(t, e.Description())
	assert.False(t, e.HasSalary())
	assert.Nil(t, e.SalaryMin())
	assert.Equal(t, FunctionOther, e.Function())
	assert.Equal(t, SeniorityMid, e.Seniority())
	assert.False(t, e.HasAIMention())
	assert.Nil(t, e.AITerms())
	assert.Equal(t, "Chicago Metro", e.Location().Metro())
	assert.Equal(t, "IL", e.Location().State())
	assert.Empty(t, e.DatePosted())
	assert.Empty(t, e.Signals())
	assert.Empty(t, e.Tools())
}

func TestCanonicalTimestamp(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "empty", raw: "", want: ""},
		{name: "rfc3339 utc", raw: "2025-01-15T08:00:00Z", want: "2025-01-15 08:00:00"},
		{name: "rfc3339 with offset", raw: "2025-01-15T08:00:00-05:00", want: "2025-01-15 13:00:00"},
		{name: "unparseable falls back to prefix", raw: "2025-01-15 08:00:00.123456", want: "2025-01-15 08:00:00"},
		{name: "short unparseable returned as is", raw: "yesterday", want: "yesterday"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanonicalTimestamp(tt.raw))
		})
	}
}
