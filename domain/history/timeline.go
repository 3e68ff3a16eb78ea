package history

import "time"

// TimelinePoint is one extracted data point in a board's hiring timeline.
type TimelinePoint struct {
	board       string
	date        string
	timestamp   string
	openRoles   int
	format      PageFormat
	pageSize    int
	departments map[string]int
}

// NewTimelinePoint creates a TimelinePoint.
func NewTimelinePoint(board, date, timestamp string, openRoles int, format PageFormat, pageSize int, departments map[string]int) TimelinePoint {
	var depts map[string]int
	if departments != nil {
		depts = make(map[string]int, len(departments))
		for k, v := range departments {
			depts[k] = v
		}
	}
	return TimelinePoint{
		board:       board,
		date:        date,
		timestamp:   timestamp,
		openRoles:   openRoles,
		format:      format,
		pageSize:    pageSize,
		departments: depts,
	}
}

// Board returns the board slug.
func (p TimelinePoint) Board() string { return p.board }

// Date returns the capture date (YYYY-MM-DD).
func (p TimelinePoint) Date() string { return p.date }

// Timestamp returns the archive timestamp, or "live" for the API point.
func (p TimelinePoint) Timestamp() string { return p.timestamp }

// OpenRoles returns the extracted open-role count.
func (p TimelinePoint) OpenRoles() int { return p.openRoles }

// Format returns which page format produced the count.
func (p TimelinePoint) Format() PageFormat { return p.format }

// PageSize returns the archived page size in bytes (0 for the live point).
func (p TimelinePoint) PageSize() int { return p.pageSize }

// Departments returns the department breakdown, or nil.
func (p TimelinePoint) Departments() map[string]int {
	if p.departments == nil {
		return nil
	}
	result := make(map[string]int, len(p.departments))
	for k, v := range p.departments {
		result[k] = v
	}
	return result
}

// Timeline is an ordered series of timeline points for one board.
type Timeline struct {
	board       string
	frequency   Frequency
	generatedAt time.Time
	points      []TimelinePoint
}

// NewTimeline creates a Timeline.
func NewTimeline(board string, frequency Frequency, points []TimelinePoint) Timeline {
	copied := make([]TimelinePoint, len(points))
	copy(copied, points)
	return Timeline{
		board:       board,
		frequency:   frequency,
		generatedAt: time.Now().UTC(),
		points:      copied,
	}
}

// Board returns the board slug.
func (t Timeline) Board() string { return t.board }

// Frequency returns the sampling frequency.
func (t Timeline) Frequency() Frequency { return t.frequency }

// GeneratedAt returns when the timeline was built.
func (t Timeline) GeneratedAt() time.Time { return t.generatedAt }

// Points returns the ordered data points.
func (t Timeline) Points() []TimelinePoint {
	result := make([]TimelinePoint, len(t.points))
	copy(result, t.points)
	return result
}

// Peak returns the point with the most open roles, and false when empty.
func (t Timeline) Peak() (TimelinePoint, bool) {
	if len(t.points) == 0 {
		return TimelinePoint{}, false
	}
	peak := t.points[0]
	for _, p := range t.points[1:] {
		if p.openRoles > peak.openRoles {
			peak = p
		}
	}
	return peak, true
}

// Trough returns the point with the fewest open roles, and false when empty.
func (t Timeline) Trough() (TimelinePoint, bool) {
	if len(t.points) == 0 {
		return TimelinePoint{}, false
	}
	trough := t.points[0]
	for _, p := range t.points[1:] {
		if p.openRoles < trough.openRoles {
			trough = p
		}
	}
	return trough, true
}

// Current returns the most recent point, and false when empty.
func (t Timeline) Current() (TimelinePoint, bool) {
	if len(t.points) == 0 {
		return TimelinePoint{}, false
	}
	return t.points[len(t.points)-1], true
}
