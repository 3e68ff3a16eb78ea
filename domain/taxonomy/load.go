package taxonomy

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed signals.yaml
var signalsYAML []byte

//go:embed tools.yaml
var toolsYAML []byte

// categoryYAML mirrors one category entry in a taxonomy YAML document.
// A list (not a map) keeps category and rule order stable.
type categoryYAML struct {
	Category string `yaml:"category"`
	Tags     []struct {
		ID      string `yaml:"id"`
		Pattern string `yaml:"pattern"`
		Unless  string `yaml:"unless"`
	} `yaml:"tags"`
}

// Parse loads a Taxonomy from YAML. Individual patterns that fail to compile
// are kept as invalid rules; only structural YAML errors are fatal.
func Parse(name string, data []byte) (Taxonomy, error) {
	var doc []categoryYAML
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Taxonomy{}, fmt.Errorf("parse taxonomy %s: %w", name, err)
	}

	categories := make([]Category, 0, len(doc))
	for _, c := range doc {
		rules := make([]Rule, 0, len(c.Tags))
		for _, t := range c.Tags {
			rules = append(rules, NewRuleWithExclusion(t.ID, t.Pattern, t.Unless))
		}
		categories = append(categories, NewCategory(c.Category, rules))
	}

	return NewTaxonomy(name, categories), nil
}

// Signals returns the built-in hiring-signal taxonomy.
func Signals() Taxonomy {
	t, err := Parse("signals", signalsYAML)
	if err != nil {
		// Embedded taxonomies are validated by tests; a parse failure here
		// is a build defect.
		panic(err)
	}
	return t
}

// Tools returns the built-in tool/tech-stack taxonomy.
func Tools() Taxonomy {
	t, err := Parse("tools", toolsYAML)
	if err != nil {
		panic(err)
	}
	return t
}
