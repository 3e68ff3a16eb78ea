// Package posting provides the enrichment pipeline for raw job postings.
//
// Every stage is a pure function over normalized text: salary extraction,
// function and seniority classification, AI detection, and location
// resolution. Stages are composed by Enrich into a single Enrichment value.
package posting

import "time"

// RawPosting is one job listing as produced by the upstream feed.
// It is immutable and owned by the fetch collaborator.
type RawPosting struct {
	sourceID   string
	title      string
	department string
	location   string
	updatedAt  string
	url        string
	content    string
}

// NewRawPosting creates a RawPosting from feed fields.
// Department may be empty when the feed carries no department data.
func NewRawPosting(sourceID, title, department, location, updatedAt, url, content string) RawPosting {
	return RawPosting{
		sourceID:   sourceID,
		title:      title,
		department: department,
		location:   location,
		updatedAt:  updatedAt,
		url:        url,
		content:    content,
	}
}

// SourceID returns the source-assigned identifier.
func (p RawPosting) SourceID() string { return p.sourceID }

// Title returns the posting title.
func (p RawPosting) Title() string { return p.title }

// Department returns the free-text department label, or empty.
func (p RawPosting) Department() string { return p.department }

// Location returns the raw location string.
func (p RawPosting) Location() string { return p.location }

// UpdatedAt returns the source-native last-updated timestamp string.
func (p RawPosting) UpdatedAt() string { return p.updatedAt }

// URL returns the absolute posting URL.
func (p RawPosting) URL() string { return p.url }

// Content returns the raw markup content.
func (p RawPosting) Content() string { return p.content }

// TimestampLayout is the canonical persisted timestamp form (UTC).
const TimestampLayout = "2006-01-02 15:04:05"

// CanonicalTimestamp parses an ISO-8601 source timestamp and renders it in
// the canonical persisted form. Unparseable input falls back to the first 19
// characters of the raw value rather than failing the posting.
func CanonicalTimestamp(raw string) string {
	if raw == "" {
		return ""
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC().Format(TimestampLayout)
	}
	if len(raw) >= 19 {
		return raw[:19]
	}
	return raw
}
