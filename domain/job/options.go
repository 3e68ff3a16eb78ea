package job

// WithID filters by the "id" column.
func WithID(id int64) Option {
	return WithCondition("id", id)
}

// WithSource filters by the "source" column.
func WithSource(source string) Option {
	return WithCondition("source", source)
}

// WithSourceID filters by the "source_id" column.
func WithSourceID(sourceID string) Option {
	return WithCondition("source_id", sourceID)
}

// WithCompany filters by the normalized company name column.
func WithCompany(normalized string) Option {
	return WithCondition("company_name_normalized", normalized)
}

// WithFunction filters by the "function_category" column.
func WithFunction(fn string) Option {
	return WithCondition("function_category", fn)
}

// WithSeniority filters by the "seniority_tier" column.
func WithSeniority(tier string) Option {
	return WithCondition("seniority_tier", tier)
}

// WithRemote filters by the "is_remote" column.
func WithRemote(remote bool) Option {
	return WithCondition("is_remote", remote)
}

// WithActive filters by the "is_active" column.
func WithActive(active bool) Option {
	return WithCondition("is_active", active)
}

// WithAIMention filters by the "has_ai_mention" column.
func WithAIMention(has bool) Option {
	return WithCondition("has_ai_mention", has)
}

// WithState filters by the "location_state" column.
func WithState(state string) Option {
	return WithCondition("location_state", state)
}

// WithMetro filters by the "location_metro" column.
func WithMetro(metro string) Option {
	return WithCondition("location_metro", metro)
}
