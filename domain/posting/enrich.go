package posting

import "github.com/fieldworkhq/fieldwork/domain/taxonomy"

// Enricher composes the enrichment stages over raw postings. The taxonomies
// are immutable configuration captured at construction; the zero-cost stages
// (salary, function, seniority, AI, location) carry their own rule tables.
type Enricher struct {
	signals taxonomy.Taxonomy
	tools   taxonomy.Taxonomy
}

// NewEnricher creates an Enricher over the given taxonomies.
func NewEnricher(signals, tools taxonomy.Taxonomy) Enricher {
	return Enricher{signals: signals, tools: tools}
}

// NewDefaultEnricher creates an Enricher over the built-in taxonomies.
func NewDefaultEnricher() Enricher {
	return NewEnricher(taxonomy.Signals(), taxonomy.Tools())
}

// Enrich runs every stage over one raw posting and assembles the Enrichment.
// Normalization precedes every text-consuming stage; the stages themselves
// are independent of each other.
func (e Enricher) Enrich(raw RawPosting) Enrichment {
	description := NormalizeHTML(raw.Content())

	salaryMin, salaryMax := ExtractSalary(description)
	function := ClassifyFunction(raw.Department(), raw.Title())
	seniority := ClassifySeniority(raw.Title())
	hasAI, aiTerms, aiNative := DetectAI(raw.Title(), description)
	location := ResolveLocation(raw.Location())
	signals := e.signals.Scan(raw.Title(), description)
	tools := e.tools.Scan(raw.Title(), description)
	datePosted := CanonicalTimestamp(raw.UpdatedAt())

	return Enrichment{
		description: description,
		salaryMin:   salaryMin,
		salaryMax:   salaryMax,
		function:    function,
		seniority:   seniority,
		hasAI:       hasAI,
		aiTerms:     aiTerms,
		aiNative:    aiNative,
		location:    location,
		signals:     signals,
		tools:       tools,
		datePosted:  datePosted,
	}
}
