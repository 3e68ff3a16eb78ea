package job

import "time"

// Company is the company-level aggregate keyed by normalized name. The
// posting count reflects the current run, not an accumulation across runs.
type Company struct {
	id            int64
	name          string
	industry      string
	isTech        bool
	totalPostings int
	url           string
	updatedAt     time.Time
}

// NewCompany creates a Company aggregate for one import run.
func NewCompany(name, url, industry string, totalPostings int) Company {
	return Company{
		name:          name,
		industry:      industry,
		isTech:        true,
		totalPostings: totalPostings,
		url:           url,
	}
}

// ReconstructCompany rebuilds a Company from persistence.
func ReconstructCompany(id int64, name, industry string, isTech bool, totalPostings int, url string, updatedAt time.Time) Company {
	return Company{
		id:            id,
		name:          name,
		industry:      industry,
		isTech:        isTech,
		totalPostings: totalPostings,
		url:           url,
		updatedAt:     updatedAt,
	}
}

// ID returns the database id (0 before first persist).
func (c Company) ID() int64 { return c.id }

// Name returns the display name.
func (c Company) Name() string { return c.name }

// Normalized returns the normalized natural key.
func (c Company) Normalized() string { return NormalizeCompanyName(c.name) }

// Industry returns the industry label, or empty.
func (c Company) Industry() string { return c.industry }

// IsTech reports whether the company is classified as a tech company.
func (c Company) IsTech() bool { return c.isTech }

// TotalPostings returns the posting count from the most recent run.
func (c Company) TotalPostings() int { return c.totalPostings }

// URL returns the company website URL.
func (c Company) URL() string { return c.url }

// UpdatedAt returns the last aggregate update time.
func (c Company) UpdatedAt() time.Time { return c.updatedAt }
