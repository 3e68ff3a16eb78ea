// Package persistence provides GORM-backed implementations of the domain
// store interfaces.
package persistence

import "time"

// JobModel is the GORM model for the jobs table. One row per upstream posting,
// keyed by the (source, source_id) pair.
type JobModel struct {
	ID                    int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Source                string    `gorm:"column:source;size:32;not null;uniqueIndex:idx_jobs_source_source_id,priority:1"`
	SourceID              string    `gorm:"column:source_id;size:64;not null;uniqueIndex:idx_jobs_source_source_id,priority:2"`
	SourceURL             string    `gorm:"column:source_url;size:1024"`
	Title                 string    `gorm:"column:title;size:512;not null"`
	CompanyName           string    `gorm:"column:company_name;size:255;not null"`
	CompanyNameNormalized string    `gorm:"column:company_name_normalized;size:255;not null;index:idx_jobs_company"`
	CompanyURL            string    `gorm:"column:company_url;size:1024"`
	CompanyIndustry       string    `gorm:"column:company_industry;size:255"`
	LocationRaw           string    `gorm:"column:location_raw;size:512"`
	LocationType          string    `gorm:"column:location_type;size:16"`
	LocationMetro         *string   `gorm:"column:location_metro;size:128"`
	LocationState         *string   `gorm:"column:location_state;size:2"`
	IsRemote              bool      `gorm:"column:is_remote;index:idx_jobs_remote"`
	AnnualSalaryMin       *float64  `gorm:"column:annual_salary_min"`
	AnnualSalaryMax       *float64  `gorm:"column:annual_salary_max"`
	HasSalary             bool      `gorm:"column:has_salary"`
	FunctionCategory      string    `gorm:"column:function_category;size:64;index:idx_jobs_function"`
	SeniorityTier         string    `gorm:"column:seniority_tier;size:32;index:idx_jobs_seniority"`
	DescriptionRaw        string    `gorm:"column:description_raw;type:text"`
	HasDescription        bool      `gorm:"column:has_description"`
	HasAIMention          bool      `gorm:"column:has_ai_mention;index:idx_jobs_ai"`
	AITermsFound          *string   `gorm:"column:ai_terms_found;type:text"`
	IsAINativeRole        bool      `gorm:"column:is_ai_native_role"`
	DatePosted            string    `gorm:"column:date_posted;size:32"`
	DateScraped           time.Time `gorm:"column:date_scraped;not null"`
	LastSeen              time.Time `gorm:"column:last_seen;not null"`
	IsActive              bool      `gorm:"column:is_active;index:idx_jobs_active"`
}

// TableName returns the table name for JobModel.
func (JobModel) TableName() string {
	return "jobs"
}

// SignalModel is the GORM model for the job_signals table. One row per
// detected hiring signal; a single sentinel row when none were detected.
type SignalModel struct {
	ID          int64  `gorm:"column:id;primaryKey;autoIncrement"`
	JobID       int64  `gorm:"column:job_id;not null;index:idx_job_signals_job"`
	SignalType  string `gorm:"column:signal_type;size:64;not null"`
	SignalID    string `gorm:"column:signal_id;size:64;not null"`
	SignalValue string `gorm:"column:signal_value;size:128;not null"`
}

// TableName returns the table name for SignalModel.
func (SignalModel) TableName() string {
	return "job_signals"
}

// ToolModel is the GORM model for the job_tools table. One row per detected
// tool; a single sentinel row when none were detected.
type ToolModel struct {
	ID           int64  `gorm:"column:id;primaryKey;autoIncrement"`
	JobID        int64  `gorm:"column:job_id;not null;index:idx_job_tools_job"`
	ToolID       string `gorm:"column:tool_id;size:64;not null"`
	ToolName     string `gorm:"column:tool_name;size:128;not null"`
	ToolCategory string `gorm:"column:tool_category;size:64;not null"`
}

// TableName returns the table name for ToolModel.
func (ToolModel) TableName() string {
	return "job_tools"
}

// CompanyModel is the GORM model for the companies table, keyed by the
// normalized name.
type CompanyModel struct {
	ID               int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Name             string    `gorm:"column:name;size:255;not null"`
	NameNormalized   string    `gorm:"column:name_normalized;size:255;not null;uniqueIndex:idx_companies_normalized"`
	Industry         string    `gorm:"column:industry;size:255"`
	IsTech           bool      `gorm:"column:is_tech"`
	TotalJobPostings int       `gorm:"column:total_job_postings"`
	URL              string    `gorm:"column:url;size:1024"`
	UpdatedAt        time.Time `gorm:"column:updated_at;not null"`
}

// TableName returns the table name for CompanyModel.
func (CompanyModel) TableName() string {
	return "companies"
}

// SnapshotModel is the GORM model for the board_snapshots table. One row per
// archived data point, keyed (board, timestamp) so rebuilds refresh in place.
type SnapshotModel struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Board       string    `gorm:"column:board;size:128;not null;uniqueIndex:idx_board_snapshots_key,priority:1"`
	Timestamp   string    `gorm:"column:timestamp;size:16;not null;uniqueIndex:idx_board_snapshots_key,priority:2"`
	Date        string    `gorm:"column:date;size:10;not null"`
	OpenRoles   int       `gorm:"column:open_roles"`
	Format      string    `gorm:"column:format;size:16"`
	PageSize    int       `gorm:"column:page_size"`
	Departments *string   `gorm:"column:departments;type:text"`
	CreatedAt   time.Time `gorm:"column:created_at;not null"`
}

// TableName returns the table name for SnapshotModel.
func (SnapshotModel) TableName() string {
	return "board_snapshots"
}
