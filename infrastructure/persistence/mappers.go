package persistence

import (
	"encoding/json"
	"strings"

	"github.com/fieldworkhq/fieldwork/domain/history"
	"github.com/fieldworkhq/fieldwork/domain/job"
	"github.com/fieldworkhq/fieldwork/domain/posting"
	"github.com/fieldworkhq/fieldwork/domain/taxonomy"
)

const aiTermsSeparator = ", "

// JobMapper converts between the job aggregate and its row representation.
// Tag child rows travel separately from the jobs row, so the mapper exposes
// explicit child conversions instead of the generic entity mapper shape.
type JobMapper struct{}

// ToModel converts a domain job to its jobs-table row.
func (JobMapper) ToModel(j job.Job) JobModel {
	e := j.Enrichment()
	loc := e.Location()

	var metro, state *string
	if loc.Metro() != "" {
		m := loc.Metro()
		metro = &m
	}
	if loc.State() != "" {
		s := loc.State()
		state = &s
	}

	var aiTerms *string
	if terms := e.AITerms(); len(terms) > 0 {
		joined := strings.Join(terms, aiTermsSeparator)
		aiTerms = &joined
	}

	return JobModel{
		ID:                    j.ID(),
		Source:                j.Source(),
		SourceID:              j.SourceID(),
		SourceURL:             j.SourceURL(),
		Title:                 j.Title(),
		CompanyName:           j.CompanyName(),
		CompanyNameNormalized: j.CompanyNormalized(),
		CompanyURL:            j.CompanyURL(),
		CompanyIndustry:       j.Industry(),
		LocationRaw:           j.LocationRaw(),
		LocationType:          string(loc.Type()),
		LocationMetro:         metro,
		LocationState:         state,
		IsRemote:              loc.IsRemote(),
		AnnualSalaryMin:       e.SalaryMin(),
		AnnualSalaryMax:       e.SalaryMax(),
		HasSalary:             e.HasSalary(),
		FunctionCategory:      string(e.Function()),
		SeniorityTier:         string(e.Seniority()),
		DescriptionRaw:        e.Description(),
		HasDescription:        e.Description() != "",
		HasAIMention:          e.HasAIMention(),
		AITermsFound:          aiTerms,
		IsAINativeRole:        e.IsAINativeRole(),
		DatePosted:            e.DatePosted(),
		DateScraped:           j.FirstSeen(),
		LastSeen:              j.LastSeen(),
		IsActive:              j.Active(),
	}
}

// ToDomain rebuilds a domain job from its row and tag child rows. Sentinel
// child rows are filtered out; they mean "processed, none found".
func (JobMapper) ToDomain(m JobModel, signals []SignalModel, tools []ToolModel) job.Job {
	var metro, state string
	if m.LocationMetro != nil {
		metro = *m.LocationMetro
	}
	if m.LocationState != nil {
		state = *m.LocationState
	}
	loc := posting.ReconstructLocation(posting.LocationType(m.LocationType), metro, state)

	var aiTerms []string
	if m.AITermsFound != nil && *m.AITermsFound != "" {
		aiTerms = strings.Split(*m.AITermsFound, aiTermsSeparator)
	}

	var signalTags []taxonomy.Tag
	for _, s := range signals {
		if s.SignalID == job.SentinelTag {
			continue
		}
		signalTags = append(signalTags, taxonomy.ReconstructTag(s.SignalType, s.SignalID, s.SignalValue))
	}

	var toolTags []taxonomy.Tag
	for _, t := range tools {
		if t.ToolID == job.SentinelTag {
			continue
		}
		toolTags = append(toolTags, taxonomy.ReconstructTag(t.ToolCategory, t.ToolID, t.ToolName))
	}

	enrichment := posting.ReconstructEnrichment(
		m.DescriptionRaw,
		m.AnnualSalaryMin, m.AnnualSalaryMax,
		posting.Function(m.FunctionCategory),
		posting.Seniority(m.SeniorityTier),
		m.HasAIMention,
		aiTerms,
		m.IsAINativeRole,
		loc,
		signalTags, toolTags,
		m.DatePosted,
	)

	return job.ReconstructJob(
		m.ID,
		m.Source, m.SourceID, m.SourceURL, m.Title, m.LocationRaw,
		m.CompanyName, m.CompanyURL, m.CompanyIndustry,
		enrichment,
		m.DateScraped, m.LastSeen,
		m.IsActive,
	)
}

// SignalRows converts a job's signal tags to child rows, emitting the
// sentinel row when the set is empty.
func (JobMapper) SignalRows(jobID int64, tags []taxonomy.Tag) []SignalModel {
	if len(tags) == 0 {
		return []SignalModel{{
			JobID:       jobID,
			SignalType:  job.SentinelTag,
			SignalID:    job.SentinelTag,
			SignalValue: job.SentinelTag,
		}}
	}
	rows := make([]SignalModel, len(tags))
	for i, t := range tags {
		rows[i] = SignalModel{
			JobID:       jobID,
			SignalType:  t.Category(),
			SignalID:    t.ID(),
			SignalValue: t.Display(),
		}
	}
	return rows
}

// ToolRows converts a job's tool tags to child rows, emitting the sentinel
// row when the set is empty.
func (JobMapper) ToolRows(jobID int64, tags []taxonomy.Tag) []ToolModel {
	if len(tags) == 0 {
		return []ToolModel{{
			JobID:        jobID,
			ToolID:       job.SentinelTag,
			ToolName:     job.SentinelTag,
			ToolCategory: job.SentinelTag,
		}}
	}
	rows := make([]ToolModel, len(tags))
	for i, t := range tags {
		rows[i] = ToolModel{
			JobID:        jobID,
			ToolID:       t.ID(),
			ToolName:     t.Display(),
			ToolCategory: t.Category(),
		}
	}
	return rows
}

// CompanyMapper converts between the company aggregate and its row.
type CompanyMapper struct{}

// ToDomain converts a companies-table row to a domain company.
func (CompanyMapper) ToDomain(m CompanyModel) job.Company {
	return job.ReconstructCompany(m.ID, m.Name, m.Industry, m.IsTech, m.TotalJobPostings, m.URL, m.UpdatedAt)
}

// ToModel converts a domain company to its companies-table row.
func (CompanyMapper) ToModel(c job.Company) CompanyModel {
	return CompanyModel{
		ID:               c.ID(),
		Name:             c.Name(),
		NameNormalized:   c.Normalized(),
		Industry:         c.Industry(),
		IsTech:           c.IsTech(),
		TotalJobPostings: c.TotalPostings(),
		URL:              c.URL(),
		UpdatedAt:        c.UpdatedAt(),
	}
}

// SnapshotMapper converts between timeline points and board_snapshots rows.
type SnapshotMapper struct{}

// ToDomain converts a board_snapshots row to a timeline point.
func (SnapshotMapper) ToDomain(m SnapshotModel) history.TimelinePoint {
	var departments map[string]int
	if m.Departments != nil && *m.Departments != "" {
		// Rows written by older builds may hold malformed JSON; treat that
		// as no breakdown rather than failing the read.
		_ = json.Unmarshal([]byte(*m.Departments), &departments)
	}
	return history.NewTimelinePoint(m.Board, m.Date, m.Timestamp, m.OpenRoles, history.PageFormat(m.Format), m.PageSize, departments)
}

// ToModel converts a timeline point to a board_snapshots row.
func (SnapshotMapper) ToModel(p history.TimelinePoint) SnapshotModel {
	var departments *string
	if depts := p.Departments(); len(depts) > 0 {
		if encoded, err := json.Marshal(depts); err == nil {
			s := string(encoded)
			departments = &s
		}
	}
	return SnapshotModel{
		Board:       p.Board(),
		Timestamp:   p.Timestamp(),
		Date:        p.Date(),
		OpenRoles:   p.OpenRoles(),
		Format:      string(p.Format()),
		PageSize:    p.PageSize(),
		Departments: departments,
	}
}
