package history

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const oldFormatPage = `
<div class="level-0">
  <h3>Engineering</h3>
  <div class="opening" department_id="100"><a data-mapped="true" href="/acme/jobs/1">Backend Engineer</a></div>
  <div class="opening" department_id="100"><a data-mapped="true" href="/acme/jobs/2">Platform Engineer</a></div>
  <h3>Sales</h3>
  <div class="opening" department_id="200"><a data-mapped="true" href="/acme/jobs/3">Account Executive</a></div>
</div>`

const newFormatPage = `
<script>window.__remixContext = {"jobPosts":{"data":[
  {"id": 4012345, "title": "Backend Engineer"},
  {"id": 4012346, "title": "Account Executive"},
  {"id": 4012345, "title": "Backend Engineer"}
]}};</script>`

func TestCountOpeningsOld(t *testing.T) {
	assert.Equal(t, 3, CountOpeningsOld(oldFormatPage))
}

func TestCountOpeningsOldFallsBackToMappedLinks(t *testing.T) {
	page := strings.ReplaceAll(oldFormatPage, `class="opening"`, `class="job"`)
	assert.Equal(t, 3, CountOpeningsOld(page))
}

func TestCountOpeningsOldFallsBackToJobListing(t *testing.T) {
	page := `<tr class="gh-job-listing"></tr><tr class="GH-Job-Listing"></tr>`
	assert.Equal(t, 2, CountOpeningsOld(page))
}

func TestCountOpeningsNewDeduplicatesIDs(t *testing.T) {
	assert.Equal(t, 2, CountOpeningsNew(newFormatPage))
}

func TestCountOpeningsNewFallsBackToJobCards(t *testing.T) {
	page := `<div data-job-id="1"></div><div data-job-id="2"></div>`
	assert.Equal(t, 2, CountOpeningsNew(page))
}

func TestCountOpeningsNewIgnoresShortIDs(t *testing.T) {
	// Embedded ids shorter than seven digits are department ids, not jobs.
	page := `{"id": 1234, "id": 5678}`
	assert.Equal(t, 0, CountOpeningsNew(page))
}

func TestCountOpeningsPrefersOldFormat(t *testing.T) {
	count, format := CountOpenings(oldFormatPage)
	assert.Equal(t, 3, count)
	assert.Equal(t, FormatOld, format)
}

func TestCountOpeningsFallsBackToNewFormat(t *testing.T) {
	count, format := CountOpenings(newFormatPage)
	assert.Equal(t, 2, count)
	assert.Equal(t, FormatNew, format)
}

func TestCountOpeningsEmptyPage(t *testing.T) {
	count, format := CountOpenings("")
	assert.Equal(t, 0, count)
	assert.Equal(t, FormatNew, format)
}

func TestExtractDepartments(t *testing.T) {
	departments := ExtractDepartments(oldFormatPage)
	assert.Equal(t, map[string]int{"Engineering": 2, "Sales": 1}, departments)
}

func TestExtractDepartmentsNoneFound(t *testing.T) {
	assert.Nil(t, ExtractDepartments(newFormatPage))
	assert.Nil(t, ExtractDepartments(""))
}
