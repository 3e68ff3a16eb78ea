package posting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSalary(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantMin float64
		wantMax float64
	}{
		{
			name:    "plain dollar range",
			text:    "The salary range is $140,000 - $180,000 plus equity.",
			wantMin: 140000,
			wantMax: 180000,
		},
		{
			name:    "range with to separator",
			text:    "Base pay: $90,000 to $120,000 depending on experience.",
			wantMin: 90000,
			wantMax: 120000,
		},
		{
			name:    "k suffixed range",
			text:    "Compensation: $120k-$160k.",
			wantMin: 120000,
			wantMax: 160000,
		},
		{
			name:    "reversed order normalizes",
			text:    "$180,000 - $140,000",
			wantMin: 140000,
			wantMax: 180000,
		},
		{
			name:    "ote single figure",
			text:    "On-target earnings of $250,000 OTE for this role.",
			wantMin: 150000,
			wantMax: 250000,
		},
		{
			name:    "small values scale independently",
			text:    "$120 - $160,000",
			wantMin: 120000,
			wantMax: 160000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			min, max := ExtractSalary(tt.text)
			require.NotNil(t, min)
			require.NotNil(t, max)
			assert.Equal(t, tt.wantMin, *min)
			assert.Equal(t, tt.wantMax, *max)
		})
	}
}

func TestExtractSalaryNoMatch(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "empty text", text: ""},
		{name: "no dollar amounts", text: "Competitive salary and great benefits."},
		{name: "single dollar amount without ote", text: "Up to $150,000 for the right candidate."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			min, max := ExtractSalary(tt.text)
			assert.Nil(t, min)
			assert.Nil(t, max)
		})
	}
}

func TestExtractSalaryFirstPatternWins(t *testing.T) {
	// A plain range and an OTE figure in the same text: the range pattern is
	// consulted first and the OTE figure is never reached.
	min, max := ExtractSalary("$100,000 - $130,000 base, $200,000 OTE")
	require.NotNil(t, min)
	require.NotNil(t, max)
	assert.Equal(t, float64(100000), *min)
	assert.Equal(t, float64(130000), *max)
}
