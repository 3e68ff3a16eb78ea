package posting

import (
	"regexp"
	"sort"
	"strings"
)

// aiTerms is the broad AI/ML vocabulary scanned over title + description.
var aiTerms = regexp.MustCompile(
	`(?i)\b(artificial intelligence|machine learning|deep learning|neural network|` +
		`nlp|natural language processing|computer vision|llm|large language model|` +
		`generative ai|gpt|transformer model|reinforcement learning|` +
		`ai[ -]native|ai[ -]first|ai[ -]powered|ai/ml)\b|\bAI\b`,
)

// aiNativeRoles is the narrower role vocabulary tested against the title only.
var aiNativeRoles = regexp.MustCompile(
	`(?i)\b(machine learning engineer|ml engineer|ai engineer|` +
		`data scientist|deep learning|nlp engineer|computer vision engineer|` +
		`ai researcher|llm|prompt engineer)\b`,
)

// DetectAI flags AI relevance. The mention check scans title + description;
// the native-role check consults the title only, so a posting can mention AI
// without being an AI-native role. Terms found are the distinct matched
// substrings, lowercased and sorted; nil when nothing matched.
func DetectAI(title, description string) (hasMention bool, termsFound []string, isNativeRole bool) {
	text := title + " " + description

	matches := aiTerms.FindAllString(text, -1)
	if len(matches) > 0 {
		seen := map[string]struct{}{}
		for _, m := range matches {
			term := strings.ToLower(m)
			if _, ok := seen[term]; ok {
				continue
			}
			seen[term] = struct{}{}
			termsFound = append(termsFound, term)
		}
		sort.Strings(termsFound)
		hasMention = true
	}

	isNativeRole = aiNativeRoles.MatchString(title)
	return hasMention, termsFound, isNativeRole
}
