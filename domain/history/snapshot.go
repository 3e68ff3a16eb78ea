// Package history provides the archived-snapshot domain: selecting board
// snapshots over time and extracting job counts from archived board markup.
package history

import (
	"sort"
	"time"
)

// Frequency is the snapshot sampling frequency.
type Frequency string

// Frequency values.
const (
	FrequencyMonthly   Frequency = "monthly"
	FrequencyQuarterly Frequency = "quarterly"
)

// ParseFrequency parses a frequency string, defaulting to monthly.
func ParseFrequency(s string) Frequency {
	if s == string(FrequencyQuarterly) {
		return FrequencyQuarterly
	}
	return FrequencyMonthly
}

// cdxTimestampLayout is the archive index timestamp form.
const cdxTimestampLayout = "20060102150405"

// Snapshot is one usable archive snapshot of a board page.
type Snapshot struct {
	timestamp   string
	date        time.Time
	length      int
	urlTemplate string
}

// NewSnapshot creates a Snapshot from a CDX index row. The timestamp must be
// in YYYYMMDDHHMMSS form; rows that fail to parse are unusable.
func NewSnapshot(timestamp string, length int, urlTemplate string) (Snapshot, bool) {
	date, err := time.Parse(cdxTimestampLayout, timestamp)
	if err != nil {
		return Snapshot{}, false
	}
	return Snapshot{
		timestamp:   timestamp,
		date:        date,
		length:      length,
		urlTemplate: urlTemplate,
	}, true
}

// Timestamp returns the archive timestamp (YYYYMMDDHHMMSS).
func (s Snapshot) Timestamp() string { return s.timestamp }

// Date returns the snapshot capture time.
func (s Snapshot) Date() time.Time { return s.date }

// DateString returns the capture date as YYYY-MM-DD.
func (s Snapshot) DateString() string { return s.date.Format("2006-01-02") }

// Length returns the archived page size in bytes.
func (s Snapshot) Length() int { return s.length }

// URLTemplate returns the board URL template this snapshot was captured from.
func (s Snapshot) URLTemplate() string { return s.urlTemplate }

// periodKey buckets a snapshot into its sampling period.
func (s Snapshot) periodKey(frequency Frequency) string {
	if frequency == FrequencyQuarterly {
		quarter := (int(s.date.Month())-1)/3 + 1
		return s.date.Format("2006") + "-Q" + string(rune('0'+quarter))
	}
	return s.date.Format("2006-01")
}

// SelectSnapshots picks one snapshot per period, keeping the latest within
// each period as the most representative, and returns them in time order.
func SelectSnapshots(snapshots []Snapshot, frequency Frequency) []Snapshot {
	if len(snapshots) == 0 {
		return nil
	}

	sorted := make([]Snapshot, len(snapshots))
	copy(sorted, snapshots)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].timestamp < sorted[j].timestamp
	})

	selected := map[string]Snapshot{}
	for _, snap := range sorted {
		selected[snap.periodKey(frequency)] = snap
	}

	result := make([]Snapshot, 0, len(selected))
	for _, snap := range selected {
		result = append(result, snap)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].timestamp < result[j].timestamp
	})
	return result
}

// FilterByDateRange keeps snapshots within [start, end]. Zero bounds are open.
func FilterByDateRange(snapshots []Snapshot, start, end time.Time) []Snapshot {
	var result []Snapshot
	for _, snap := range snapshots {
		if !start.IsZero() && snap.date.Before(start) {
			continue
		}
		if !end.IsZero() && snap.date.After(end) {
			continue
		}
		result = append(result, snap)
	}
	return result
}
