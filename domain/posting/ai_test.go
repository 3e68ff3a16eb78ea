package posting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectAI(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		description string
		wantMention bool
		wantNative  bool
		wantTerms   []string
	}{
		{
			name:        "no mention",
			title:       "Account Executive",
			description: "Sell software to mid-market customers.",
			wantMention: false,
			wantNative:  false,
			wantTerms:   nil,
		},
		{
			name:        "mention in description only",
			title:       "Backend Engineer",
			description: "You will work with machine learning systems at scale.",
			wantMention: true,
			wantNative:  false,
			wantTerms:   []string{"machine learning"},
		},
		{
			name:        "native role from title",
			title:       "Machine Learning Engineer",
			description: "",
			wantMention: true,
			wantNative:  true,
			wantTerms:   []string{"machine learning"},
		},
		{
			name:        "data scientist is native",
			title:       "Senior Data Scientist",
			description: "Statistical modeling and experimentation.",
			wantMention: false,
			wantNative:  true,
			wantTerms:   nil,
		},
		{
			name:        "native check ignores description",
			title:       "Product Manager",
			description: "Partner with our machine learning engineer team.",
			wantMention: true,
			wantNative:  false,
			wantTerms:   []string{"machine learning"},
		},
		{
			name:        "terms deduplicated and sorted",
			title:       "NLP Engineer",
			description: "Build NLP pipelines with LLM tooling. More LLM work over time.",
			wantMention: true,
			wantNative:  true,
			wantTerms:   []string{"llm", "nlp"},
		},
		{
			name:        "bare ai token",
			title:       "Platform Engineer",
			description: "Our AI platform powers everything.",
			wantMention: true,
			wantNative:  false,
			wantTerms:   []string{"ai"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mention, terms, native := DetectAI(tt.title, tt.description)
			assert.Equal(t, tt.wantMention, mention)
			assert.Equal(t, tt.wantNative, native)
			assert.Equal(t, tt.wantTerms, terms)
		})
	}
}
