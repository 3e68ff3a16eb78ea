// Package taxonomy provides the multi-label tag detection engine shared by
// the hiring-signal and tool/tech-stack scanners.
//
// A Taxonomy is a fixed, versioned two-level mapping: ordered categories,
// each holding ordered (tag id → pattern) rules. Scanning is case-insensitive
// over title + description and produces at most one tag per distinct tag id,
// regardless of how many times a pattern matches or how many categories
// reference the id.
package taxonomy

import (
	"regexp"
	"strings"
)

// Rule is one detection rule: a tag id, its pattern, and an optional
// exclusion pattern (RE2 has no negative lookahead, so "react but not react
// native" is expressed as pattern + unless). The exclusion is applied per
// occurrence: a match is vetoed only when it sits inside an exclusion match,
// so text naming both React and React Native still tags react.
// A rule whose pattern failed to compile carries a nil regexp and is skipped
// at scan time; one bad rule must not blank out the rest of the taxonomy.
type Rule struct {
	id      string
	pattern string
	re      *regexp.Regexp
	unless  *regexp.Regexp
}

// NewRule creates a Rule, compiling the pattern case-insensitively.
// Compilation failure is not an error: the rule is kept, marked uncompilable.
func NewRule(id, pattern string) Rule {
	re, err := regexp.Compile(`(?i)` + pattern)
	if err != nil {
		re = nil
	}
	return Rule{id: id, pattern: pattern, re: re}
}

// NewRuleWithExclusion creates a Rule whose matches are vetoed when they fall
// inside an unless match. An uncompilable exclusion is dropped, leaving the
// rule inclusive rather than dead.
func NewRuleWithExclusion(id, pattern, unless string) Rule {
	r := NewRule(id, pattern)
	if unless == "" {
		return r
	}
	if ex, err := regexp.Compile(`(?i)` + unless); err == nil {
		r.unless = ex
	}
	return r
}

// ID returns the tag identifier.
func (r Rule) ID() string { return r.id }

// Pattern returns the raw pattern source.
func (r Rule) Pattern() string { return r.pattern }

// Valid reports whether the pattern compiled.
func (r Rule) Valid() bool { return r.re != nil }

// matches reports whether the rule matches the text, honoring the exclusion
// per occurrence: at least one pattern match must lie outside every
// exclusion match.
func (r Rule) matches(text string) bool {
	if r.re == nil {
		return false
	}
	if r.unless == nil {
		return r.re.MatchString(text)
	}

	excluded := r.unless.FindAllStringIndex(text, -1)
	for _, m := range r.re.FindAllStringIndex(text, -1) {
		vetoed := false
		for _, ex := range excluded {
			if m[0] >= ex[0] && m[1] <= ex[1] {
				vetoed = true
				break
			}
		}
		if !vetoed {
			return true
		}
	}
	return false
}

// Category is an ordered group of rules under one category label.
type Category struct {
	name  string
	rules []Rule
}

// NewCategory creates a Category.
func NewCategory(name string, rules []Rule) Category {
	copied := make([]Rule, len(rules))
	copy(copied, rules)
	return Category{name: name, rules: copied}
}

// Name returns the category label.
func (c Category) Name() string { return c.name }

// Rules returns the ordered rules.
func (c Category) Rules() []Rule {
	result := make([]Rule, len(c.rules))
	copy(result, c.rules)
	return result
}

// Tag is one detected tag: category, tag id, and a human-readable display
// value derived from the id.
type Tag struct {
	category string
	id       string
	display  string
}

// NewTag creates a Tag with a display value derived from the id.
func NewTag(category, id string) Tag {
	return Tag{category: category, id: id, display: displayValue(id)}
}

// ReconstructTag rebuilds a Tag from persistence, preserving the stored
// display value.
func ReconstructTag(category, id, display string) Tag {
	return Tag{category: category, id: id, display: display}
}

// Category returns the category label.
func (t Tag) Category() string { return t.category }

// ID returns the tag identifier.
func (t Tag) ID() string { return t.id }

// Display returns the human-readable display value.
func (t Tag) Display() string { return t.display }

// Taxonomy is an immutable ordered list of categories. Load once at startup;
// no runtime mutation.
type Taxonomy struct {
	name       string
	categories []Category
}

// NewTaxonomy creates a Taxonomy.
func NewTaxonomy(name string, categories []Category) Taxonomy {
	copied := make([]Category, len(categories))
	copy(copied, categories)
	return Taxonomy{name: name, categories: copied}
}

// Name returns the taxonomy name.
func (t Taxonomy) Name() string { return t.name }

// Categories returns the ordered categories.
func (t Taxonomy) Categories() []Category {
	result := make([]Category, len(t.categories))
	copy(result, t.categories)
	return result
}

// Scan applies every rule to title + description and returns the
// deduplicated tag list. Dedup is keyed on tag id alone: iteration order
// decides which category wins if an id were ever reachable from two
// categories, and repeated matches of one rule never produce a second tag.
func (t Taxonomy) Scan(title, description string) []Tag {
	text := title + " " + description

	var found []Tag
	seen := map[string]struct{}{}

	for _, category := range t.categories {
		for _, rule := range category.rules {
			if _, ok := seen[rule.id]; ok {
				continue
			}
			if rule.matches(text) {
				found = append(found, NewTag(category.name, rule.id))
				seen[rule.id] = struct{}{}
			}
		}
	}

	return found
}

// displayValue renders a tag id for humans: underscores become spaces and
// each word is title-cased ("mid_market" → "Mid Market").
func displayValue(id string) string {
	words := strings.Split(id, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
