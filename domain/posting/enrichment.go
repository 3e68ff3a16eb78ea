package posting

import "github.com/fieldworkhq/fieldwork/domain/taxonomy"

// Enrichment is the structured classification derived from one raw posting.
// Immutable once produced for a pipeline run.
type Enrichment struct {
	description string
	salaryMin   *float64
	salaryMax   *float64
	function    Function
	seniority   Seniority
	hasAI       bool
	aiTerms     []string
	aiNative    bool
	location    Location
	signals     []taxonomy.Tag
	tools       []taxonomy.Tag
	datePosted  string
}

// ReconstructEnrichment rebuilds an Enrichment from persistence.
func ReconstructEnrichment(
	description string,
	salaryMin, salaryMax *float64,
	function Function,
	seniority Seniority,
	hasAI bool,
	aiTerms []string,
	aiNative bool,
	location Location,
	signals, tools []taxonomy.Tag,
	datePosted string,
) Enrichment {
	terms := make([]string, len(aiTerms))
	copy(terms, aiTerms)
	sigs := make([]taxonomy.Tag, len(signals))
	copy(sigs, signals)
	tls := make([]taxonomy.Tag, len(tools))
	copy(tls, tools)

	return Enrichment{
		description: description,
		salaryMin:   salaryMin,
		salaryMax:   salaryMax,
		function:    function,
		seniority:   seniority,
		hasAI:       hasAI,
		aiTerms:     terms,
		aiNative:    aiNative,
		location:    location,
		signals:     sigs,
		tools:       tls,
		datePosted:  datePosted,
	}
}

// Description returns the normalized plain-text description.
func (e Enrichment) Description() string { return e.description }

// SalaryMin returns the extracted minimum salary, or nil.
func (e Enrichment) SalaryMin() *float64 { return e.salaryMin }

// SalaryMax returns the extracted maximum salary, or nil.
func (e Enrichment) SalaryMax() *float64 { return e.salaryMax }

// HasSalary reports whether a salary range was extracted.
func (e Enrichment) HasSalary() bool { return e.salaryMin != nil }

// Function returns the job-function category.
func (e Enrichment) Function() Function { return e.function }

// Seniority returns the seniority tier.
func (e Enrichment) Seniority() Seniority { return e.seniority }

// HasAIMention reports whether the posting mentions AI/ML concepts.
func (e Enrichment) HasAIMention() bool { return e.hasAI }

// AITerms returns the distinct AI terms found, nil when none.
func (e Enrichment) AITerms() []string {
	if e.aiTerms == nil {
		return nil
	}
	result := make([]string, len(e.aiTerms))
	copy(result, e.aiTerms)
	return result
}

// IsAINativeRole reports whether the title names an AI-native role.
func (e Enrichment) IsAINativeRole() bool { return e.aiNative }

// Location returns the resolved location.
func (e Enrichment) Location() Location { return e.location }

// Signals returns the detected hiring-signal tags.
func (e Enrichment) Signals() []taxonomy.Tag {
	result := make([]taxonomy.Tag, len(e.signals))
	copy(result, e.signals)
	return result
}

// Tools returns the detected tool/tech-stack tags.
func (e Enrichment) Tools() []taxonomy.Tag {
	result := make([]taxonomy.Tag, len(e.tools))
	copy(result, e.tools)
	return result
}

// DatePosted returns the canonical posted timestamp, best-effort.
func (e Enrichment) DatePosted() string { return e.datePosted }
