package posting

import (
	"regexp"
	"strings"
)

// Seniority is a fixed seniority tier.
type Seniority string

// Seniority values.
const (
	SeniorityCLevel         Seniority = "c_level"
	SeniorityEVP            Seniority = "evp"
	SenioritySVP            Seniority = "svp"
	SeniorityVP             Seniority = "vp"
	SenioritySeniorDirector Seniority = "senior_director"
	SeniorityDirector       Seniority = "director"
	SeniorityHead           Seniority = "head"
	SenioritySeniorManager  Seniority = "senior_manager"
	SeniorityManager        Seniority = "manager"
	SenioritySenior         Seniority = "senior"
	SeniorityAssociate      Seniority = "associate"
	SeniorityEntry          Seniority = "entry"
	SeniorityMid            Seniority = "mid"
)

// seniorityRule pairs a title pattern with the tier it implies.
type seniorityRule struct {
	pattern *regexp.Regexp
	tier    Seniority
}

// seniorityRules is evaluated first-match-wins. Order is load-bearing:
// "senior director" must precede both "director" and the generic "senior"
// rule, and manager variants follow the same most-specific-first layout.
var seniorityRules = []seniorityRule{
	{regexp.MustCompile(`\b(chief|ceo|cto|cfo|coo|cpo|cro|cmo)\b`), SeniorityCLevel},
	{regexp.MustCompile(`\bevp\b|executive vice president`), SeniorityEVP},
	{regexp.MustCompile(`\bsvp\b|senior vice president`), SenioritySVP},
	{regexp.MustCompile(`\bvice president\b|\bvp\b`), SeniorityVP},
	{regexp.MustCompile(`\bsenior director\b`), SenioritySeniorDirector},
	{regexp.MustCompile(`\bdirector\b`), SeniorityDirector},
	{regexp.MustCompile(`\bhead of\b|\bhead,`), SeniorityHead},
	{regexp.MustCompile(`\bsenior manager\b`), SenioritySeniorManager},
	{regexp.MustCompile(`\bmanager\b`), SeniorityManager},
	{regexp.MustCompile(`\bstaff\b`), SenioritySenior},
	{regexp.MustCompile(`\bprincipal\b`), SenioritySenior},
	{regexp.MustCompile(`\blead\b`), SenioritySenior},
	{regexp.MustCompile(`\bsenior\b|\bsr\.?\b`), SenioritySenior},
	{regexp.MustCompile(`\bassociate\b`), SeniorityAssociate},
	{regexp.MustCompile(`\bjunior\b|\bjr\.?\b`), SeniorityEntry},
	{regexp.MustCompile(`\bintern\b`), SeniorityEntry},
}

// ClassifySeniority maps a title to a seniority tier via the ordered rule
// table. Titles matching nothing default to SeniorityMid.
func ClassifySeniority(title string) Seniority {
	titleLower := strings.ToLower(title)
	for _, rule := range seniorityRules {
		if rule.pattern.MatchString(titleLower) {
			return rule.tier
		}
	}
	return SeniorityMid
}
