// Package job provides the persisted job aggregate, company aggregate, and
// their store contracts.
package job

import (
	"strings"
	"time"

	"github.com/fieldworkhq/fieldwork/domain/posting"
)

// SourceGreenhouse identifies the Greenhouse ATS feed.
const SourceGreenhouse = "greenhouse"

// SentinelTag is the reserved id written as a child row when a posting has
// zero detected tags of a kind, so "none detected" is distinguishable from
// "not yet processed".
const SentinelTag = "_none"

// Job is the durable record keyed by (source, source id). The pair is stable
// per upstream posting no matter how often it is re-fetched.
type Job struct {
	id          int64
	source      string
	sourceID    string
	sourceURL   string
	title       string
	locationRaw string
	companyName string
	companyURL  string
	industry    string
	enrichment  posting.Enrichment
	firstSeen   time.Time
	lastSeen    time.Time
	active      bool
}

// NewJob creates a Job from an enriched posting and company metadata.
// First-seen and last-seen are stamped by the store on insert.
func NewJob(source string, raw posting.RawPosting, enrichment posting.Enrichment, companyName, companyURL, industry string) Job {
	return Job{
		source:      source,
		sourceID:    raw.SourceID(),
		sourceURL:   raw.URL(),
		title:       raw.Title(),
		locationRaw: raw.Location(),
		companyName: companyName,
		companyURL:  companyURL,
		industry:    industry,
		enrichment:  enrichment,
		active:      true,
	}
}

// ReconstructJob rebuilds a Job from persistence.
func ReconstructJob(
	id int64,
	source, sourceID, sourceURL, title, locationRaw string,
	companyName, companyURL, industry string,
	enrichment posting.Enrichment,
	firstSeen, lastSeen time.Time,
	active bool,
) Job {
	return Job{
		id:          id,
		source:      source,
		sourceID:    sourceID,
		sourceURL:   sourceURL,
		title:       title,
		locationRaw: locationRaw,
		companyName: companyName,
		companyURL:  companyURL,
		industry:    industry,
		enrichment:  enrichment,
		firstSeen:   firstSeen,
		lastSeen:    lastSeen,
		active:      active,
	}
}

// ID returns the database id (0 before first persist).
func (j Job) ID() int64 { return j.id }

// Source returns the source system identifier.
func (j Job) Source() string { return j.source }

// SourceID returns the source-assigned posting identifier.
func (j Job) SourceID() string { return j.sourceID }

// SourceURL returns the absolute posting URL.
func (j Job) SourceURL() string { return j.sourceURL }

// Title returns the posting title.
func (j Job) Title() string { return j.title }

// LocationRaw returns the raw location string.
func (j Job) LocationRaw() string { return j.locationRaw }

// CompanyName returns the company display name.
func (j Job) CompanyName() string { return j.companyName }

// CompanyNormalized returns the normalized company key.
func (j Job) CompanyNormalized() string { return NormalizeCompanyName(j.companyName) }

// CompanyURL returns the company website URL.
func (j Job) CompanyURL() string { return j.companyURL }

// Industry returns the industry label, or empty.
func (j Job) Industry() string { return j.industry }

// Enrichment returns the classification derived at first import.
func (j Job) Enrichment() posting.Enrichment { return j.enrichment }

// FirstSeen returns the first-import timestamp.
func (j Job) FirstSeen() time.Time { return j.firstSeen }

// LastSeen returns the most recent import timestamp.
func (j Job) LastSeen() time.Time { return j.lastSeen }

// Active reports whether the posting was present in the latest import.
func (j Job) Active() bool { return j.active }

// NormalizeCompanyName lower-cases and trims a company display name into the
// natural key used by the company aggregate and reimport wipes.
func NormalizeCompanyName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
