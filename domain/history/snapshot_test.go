package history

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSnapshot(t *testing.T, timestamp string) Snapshot {
	t.Helper()
	snap, ok := NewSnapshot(timestamp, 1024, "boards.greenhouse.io/%s")
	require.True(t, ok, "timestamp %s should parse", timestamp)
	return snap
}

func TestNewSnapshot(t *testing.T) {
	snap, ok := NewSnapshot("20240315120000", 52341, "boards.greenhouse.io/%s")
	require.True(t, ok)
	assert.Equal(t, "20240315120000", snap.Timestamp())
	assert.Equal(t, "2024-03-15", snap.DateString())
	assert.Equal(t, 52341, snap.Length())
	assert.Equal(t, "boards.greenhouse.io/%s", snap.URLTemplate())
}

func TestNewSnapshotRejectsBadTimestamp(t *testing.T) {
	for _, ts := range []string{"", "notadate", "2024-03-15", "20241315120000"} {
		_, ok := NewSnapshot(ts, 0, "")
		assert.False(t, ok, "timestamp %q should not parse", ts)
	}
}

func TestParseFrequency(t *testing.T) {
	assert.Equal(t, FrequencyMonthly, ParseFrequency("monthly"))
	assert.Equal(t, FrequencyQuarterly, ParseFrequency("quarterly"))
	assert.Equal(t, FrequencyMonthly, ParseFrequency(""))
	assert.Equal(t, FrequencyMonthly, ParseFrequency("weekly"))
}

func TestSelectSnapshotsMonthly(t *testing.T) {
	snapshots := []Snapshot{
		mustSnapshot(t, "20240115090000"),
		mustSnapshot(t, "20240128160000"), // later in January, should win
		mustSnapshot(t, "20240203120000"),
		mustSnapshot(t, "20240410080000"),
	}

	selected := SelectSnapshots(snapshots, FrequencyMonthly)

	require.Len(t, selected, 3)
	assert.Equal(t, "20240128160000", selected[0].Timestamp())
	assert.Equal(t, "20240203120000", selected[1].Timestamp())
	assert.Equal(t, "20240410080000", selected[2].Timestamp())
}

func TestSelectSnapshotsQuarterly(t *testing.T) {
	snapshots := []Snapshot{
		mustSnapshot(t, "20240115090000"), // Q1
		mustSnapshot(t, "20240320160000"), // Q1, latest
		mustSnapshot(t, "20240510120000"), // Q2
		mustSnapshot(t, "20241101080000"), // Q4
	}

	selected := SelectSnapshots(snapshots, FrequencyQuarterly)

	require.Len(t, selected, 3)
	assert.Equal(t, "20240320160000", selected[0].Timestamp())
	assert.Equal(t, "20240510120000", selected[1].Timestamp())
	assert.Equal(t, "20241101080000", selected[2].Timestamp())
}

func TestSelectSnapshotsUnorderedInput(t *testing.T) {
	snapshots := []Snapshot{
		mustSnapshot(t, "20240128160000"),
		mustSnapshot(t, "20240115090000"),
	}

	selected := SelectSnapshots(snapshots, FrequencyMonthly)

	require.Len(t, selected, 1)
	assert.Equal(t, "20240128160000", selected[0].Timestamp())
}

func TestSelectSnapshotsEmpty(t *testing.T) {
	assert.Nil(t, SelectSnapshots(nil, FrequencyMonthly))
}

func TestFilterByDateRange(t *testing.T) {
	snapshots := []Snapshot{
		mustSnapshot(t, "20230601000000"),
		mustSnapshot(t, "20240115090000"),
		mustSnapshot(t, "20250301000000"),
	}

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

	filtered := FilterByDateRange(snapshots, start, end)
	require.Len(t, filtered, 1)
	assert.Equal(t, "20240115090000", filtered[0].Timestamp())

	openStart := FilterByDateRange(snapshots, time.Time{}, end)
	assert.Len(t, openStart, 2)

	openEnd := FilterByDateRange(snapshots, start, time.Time{})
	assert.Len(t, openEnd, 2)

	openBoth := FilterByDateRange(snapshots, time.Time{}, time.Time{})
	assert.Len(t, openBoth, 3)
}
