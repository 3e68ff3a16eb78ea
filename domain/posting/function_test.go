package posting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyFunction(t *testing.T) {
	tests := []struct {
		name       string
		department string
		title      string
		want       Function
	}{
		{
			name:       "department exact match wins",
			department: "Engineering",
			title:      "Sales Lead",
			want:       FunctionEngineering,
		},
		{
			name:       "department case insensitive",
			department: "STRATEGIC FINANCE",
			title:      "Analyst",
			want:       FunctionFinance,
		},
		{
			name:       "confidential department is other",
			department: "Confidential",
			title:      "Software Engineer",
			want:       FunctionOther,
		},
		{
			name:       "unknown department falls back to title",
			department: "Special Projects",
			title:      "Backend Engineer",
			want:       FunctionEngineering,
		},
		{
			name:  "empty department uses title",
			title: "Data Scientist, Growth",
			want:  FunctionData,
		},
		{
			name:  "title rule order engineering before data",
			title: "Machine Learning Engineer",
			want:  FunctionEngineering,
		},
		{
			name:  "designer maps to product",
			title: "Senior Product Designer",
			want:  FunctionProduct,
		},
		{
			name:  "no match at all",
			title: "Chief of Staff",
			want:  FunctionOther,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyFunction(tt.department, tt.title))
		})
	}
}
