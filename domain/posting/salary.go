package posting

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// salaryPatterns are tried in order; the first match wins and later patterns
// are never consulted. A plain dollar range, a "k"-suffixed range, then a
// single on-target-earnings figure.
var salaryPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\$\s*([\d,]+(?:\.\d+)?)\s*[-–—to]+\s*\$\s*([\d,]+(?:\.\d+)?)`),
	regexp.MustCompile(`(?i)\$\s*([\d.]+)\s*k\s*[-–—to]+\s*\$\s*([\d.]+)\s*k`),
	regexp.MustCompile(`(?i)\$\s*([\d,]+(?:\.\d+)?)\s+OTE`),
}

// ExtractSalary pulls a min/max compensation range from free text.
// Values below 1000 are treated as "k" shorthand and scaled, independently
// per value. Two captured values return (min, max) regardless of source
// order. A single OTE figure returns an estimated base split of
// (round(0.6×OTE), round(OTE)). No match returns (nil, nil).
func ExtractSalary(text string) (*float64, *float64) {
	if text == "" {
		return nil, nil
	}

	for _, pattern := range salaryPatterns {
		match := pattern.FindStringSubmatch(text)
		if match == nil {
			continue
		}

		var vals []float64
		for _, group := range match[1:] {
			v, err := strconv.ParseFloat(strings.ReplaceAll(group, ",", ""), 64)
			if err != nil {
				continue
			}
			if v < 1000 {
				v *= 1000
			}
			vals = append(vals, v)
		}

		switch len(vals) {
		case 2:
			lo, hi := math.Min(vals[0], vals[1]), math.Max(vals[0], vals[1])
			return &lo, &hi
		case 1:
			ote := vals[0]
			lo, hi := math.Round(ote*0.6), math.Round(ote)
			return &lo, &hi
		}
	}

	return nil, nil
}
