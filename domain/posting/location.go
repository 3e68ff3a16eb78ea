package posting

import "strings"

// LocationType distinguishes remote from onsite postings.
type LocationType string

// LocationType values.
const (
	LocationRemote LocationType = "remote"
	LocationOnsite LocationType = "onsite"
)

// remoteIndicators are exact matches (after lower/trim) that short-circuit
// location parsing entirely.
var remoteIndicators = map[string]struct{}{
	"remote":         {},
	"remote, us":     {},
	"remote, usa":    {},
	"remote - us":    {},
	"remote - usa":   {},
	"anywhere":       {},
	"work from home": {},
}

// usStates is the two-letter US state code set (plus DC).
var usStates = map[string]struct{}{
	"AL": {}, "AK": {}, "AZ": {}, "AR": {}, "CA": {}, "CO": {}, "CT": {},
	"DE": {}, "FL": {}, "GA": {}, "HI": {}, "ID": {}, "IL": {}, "IN": {},
	"IA": {}, "KS": {}, "KY": {}, "LA": {}, "ME": {}, "MD": {}, "MA": {},
	"MI": {}, "MN": {}, "MS": {}, "MO": {}, "MT": {}, "NE": {}, "NV": {},
	"NH": {}, "NJ": {}, "NM": {}, "NY": {}, "NC": {}, "ND": {}, "OH": {},
	"OK": {}, "OR": {}, "PA": {}, "RI": {}, "SC": {}, "SD": {}, "TN": {},
	"TX": {}, "UT": {}, "VT": {}, "VA": {}, "WA": {}, "WV": {}, "WI": {},
	"WY": {}, "DC": {},
}

// metroEntry pairs a city substring with its metro label. Entries are ordered
// so the scan is deterministic.
type metroEntry struct {
	city  string
	metro string
}

var metroMap = []metroEntry{
	{"san francisco", "San Francisco Bay Area"},
	{"santa clara", "San Francisco Bay Area"},
	{"palo alto", "San Francisco Bay Area"},
	{"mountain view", "San Francisco Bay Area"},
	{"sunnyvale", "San Francisco Bay Area"},
	{"new york", "New York Metro"},
	{"new york city", "New York Metro"},
	{"brooklyn", "New York Metro"},
	{"hamilton", "New York Metro"},
	{"new brunswick", "New York Metro"},
	{"seattle", "Seattle Metro"},
	{"boston", "Boston Metro"},
	{"chicago", "Chicago Metro"},
	{"los angeles", "Los Angeles Metro"},
	{"sandy", "Salt Lake City Metro"},
	{"salt lake city", "Salt Lake City Metro"},
	{"austin", "Austin Metro"},
	{"denver", "Denver Metro"},
	{"waterloo", "Waterloo, Canada"},
	{"toronto", "Toronto, Canada"},
	{"london", "London, UK"},
	{"singapore", "Singapore"},
	{"sydney", "Sydney, Australia"},
	{"rio de janeiro", "Rio de Janeiro, Brazil"},
	{"hong kong", "Hong Kong"},
	{"abu dhabi", "Abu Dhabi, UAE"},
}

// Location is the resolved location for one posting.
type Location struct {
	locationType LocationType
	metro        string
	state        string
}

// ReconstructLocation rebuilds a Location from persistence.
func ReconstructLocation(locationType LocationType, metro, state string) Location {
	return Location{locationType: locationType, metro: metro, state: state}
}

// Type returns remote or onsite.
func (l Location) Type() LocationType { return l.locationType }

// Metro returns the metro-area label, or empty when unresolved.
func (l Location) Metro() string { return l.metro }

// State returns the two-letter US state code, or empty when unresolved.
func (l Location) State() string { return l.state }

// IsRemote reports whether the posting is remote.
func (l Location) IsRemote() bool { return l.locationType == LocationRemote }

// ResolveLocation parses a raw, possibly semicolon-delimited multi-location
// string. Remote indicators win immediately with no metro/state. Otherwise
// each candidate location is split on commas; the first metro match and the
// first state match across all candidates are kept independently, and the
// scan stops early once both are found. Unresolved locations are still
// onsite, never remote.
func ResolveLocation(raw string) Location {
	if raw == "" {
		return Location{locationType: LocationOnsite}
	}

	if _, ok := remoteIndicators[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return Location{locationType: LocationRemote}
	}

	var metro, state string
	for _, candidate := range strings.Split(raw, ";") {
		parts := strings.Split(candidate, ",")
		city := strings.ToLower(strings.TrimSpace(parts[0]))

		if metro == "" {
			for _, entry := range metroMap {
				if strings.Contains(city, entry.city) {
					metro = entry.metro
					break
				}
			}
		}

		if state == "" {
			for _, part := range parts {
				upper := strings.ToUpper(strings.TrimSpace(part))
				if _, ok := usStates[upper]; ok {
					state = upper
					break
				}
			}
		}

		if metro != "" && state != "" {
			break
		}
	}

	return Location{locationType: LocationOnsite, metro: metro, state: state}
}
