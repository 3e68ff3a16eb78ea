package history

import (
	"regexp"
	"strings"
)

// PageFormat identifies which board page generation a snapshot was captured
// from.
type PageFormat string

// PageFormat values.
const (
	FormatOld PageFormat = "old" // server-rendered board listing
	FormatNew PageFormat = "new" // SPA board with embedded initial data
	FormatAPI PageFormat = "api" // live count from the board API
)

var (
	openingDiv    = regexp.MustCompile(`class="opening"`)
	mappedJobLink = regexp.MustCompile(`<a[^>]+data-mapped="true"`)
	jobListing    = regexp.MustCompile(`(?i)gh-job-listing`)
	embeddedJobID = regexp.MustCompile(`"id"\s*:\s*(\d{7,})`)
	jobCardAttr   = regexp.MustCompile(`data-job-id`)

	departmentSection = regexp.MustCompile(
		`(?s)<h[23][^>]*>([^<]+)</h[23]>\s*(?:<[^>]+>\s*)*((?:<div[^>]*class="opening"[^>]*>.*?</div>\s*)+)`)
)

// CountOpeningsOld counts job openings in an old-format (server-rendered)
// board page. Falls back through successively looser markers.
func CountOpeningsOld(markup string) int {
	if count := len(openingDiv.FindAllStringIndex(markup, -1)); count > 0 {
		return count
	}
	if count := len(mappedJobLink.FindAllStringIndex(markup, -1)); count > 0 {
		return count
	}
	return len(jobListing.FindAllStringIndex(markup, -1))
}

// CountOpeningsNew counts job openings in a new-format (SPA) board page by
// collecting distinct job ids from the embedded initial payload, falling back
// to counting job card elements.
func CountOpeningsNew(markup string) int {
	ids := map[string]struct{}{}
	for _, match := range embeddedJobID.FindAllStringSubmatch(markup, -1) {
		ids[match[1]] = struct{}{}
	}
	if len(ids) > 0 {
		return len(ids)
	}
	return len(jobCardAttr.FindAllStringIndex(markup, -1))
}

// CountOpenings tries the old format first, then the new, and reports which
// one produced the count.
func CountOpenings(markup string) (int, PageFormat) {
	if count := CountOpeningsOld(markup); count > 0 {
		return count, FormatOld
	}
	return CountOpeningsNew(markup), FormatNew
}

// ExtractDepartments pulls a department → opening-count breakdown from an
// old-format board page. Returns nil when no department sections are found.
func ExtractDepartments(markup string) map[string]int {
	departments := map[string]int{}
	for _, match := range departmentSection.FindAllStringSubmatch(markup, -1) {
		name := strings.TrimSpace(match[1])
		count := len(openingDiv.FindAllStringIndex(match[2], -1))
		if count > 0 {
			departments[name] = count
		}
	}
	if len(departments) == 0 {
		return nil
	}
	return departments
}
