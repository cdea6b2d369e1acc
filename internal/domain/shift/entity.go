package shift

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Definition is one admin-configured shift. Times are wall-clock "HH:MM"
// values in the restaurant's timezone; there is no timezone attached to the
// definition itself.
type Definition struct {
	ID           string
	Code         string
	Name         string
	StartTime    string // "HH:MM"
	EndTime      string // "HH:MM"
	IsSplitShift bool
	BreakStart   *string
	BreakEnd     *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SentinelCode marks a log that could not be matched to any configured shift.
const SentinelCode = "N/A"

// Sentinel is the fallback definition used when the catalog is empty.
func Sentinel() Definition {
	return Definition{
		Code:      SentinelCode,
		Name:      "Unscheduled",
		StartTime: "08:00",
		EndTime:   "17:00",
	}
}

// MinutesOfClock parses a "HH:MM" wall-clock value into minutes of day.
func MinutesOfClock(clock string) (int, error) {
	parts := strings.Split(clock, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock value %q", clock)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("invalid hour in clock value %q", clock)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid minute in clock value %q", clock)
	}
	return hour*60 + minute, nil
}

// StartMinutes returns the shift start as minutes of day.
// Definitions are validated on write, so a parse failure here means corrupt
// data; it is reported as minute 0 rather than panicking mid-reconciliation.
func (d Definition) StartMinutes() int {
	m, err := MinutesOfClock(d.StartTime)
	if err != nil {
		return 0
	}
	return m
}

// EndMinutes returns the shift end as minutes of day.
func (d Definition) EndMinutes() int {
	m, err := MinutesOfClock(d.EndTime)
	if err != nil {
		return 0
	}
	return m
}

// BreakWindow returns the unpaid break window in minutes of day.
// ok is false when the definition is not a split shift or the window is
// incomplete.
func (d Definition) BreakWindow() (start, end int, ok bool) {
	if !d.IsSplitShift || d.BreakStart == nil || d.BreakEnd == nil {
		return 0, 0, false
	}
	bs, err := MinutesOfClock(*d.BreakStart)
	if err != nil {
		return 0, 0, false
	}
	be, err := MinutesOfClock(*d.BreakEnd)
	if err != nil {
		return 0, 0, false
	}
	return bs, be, true
}

// MatchClosest returns the catalog entry whose start time is nearest to
// minutesOfDay, measured as an absolute difference with no wraparound across
// midnight. Ties resolve to the first entry in catalog order. An empty
// catalog yields the sentinel definition.
func MatchClosest(minutesOfDay int, catalog []Definition) Definition {
	if len(catalog) == 0 {
		return Sentinel()
	}

	best := catalog[0]
	bestDiff := absDiff(minutesOfDay, best.StartMinutes())
	for _, def := range catalog[1:] {
		if diff := absDiff(minutesOfDay, def.StartMinutes()); diff < bestDiff {
			best = def
			bestDiff = diff
		}
	}
	return best
}

// Lookup finds a definition by code in catalog order.
func Lookup(code string, catalog []Definition) (Definition, bool) {
	for _, def := range catalog {
		if def.Code == code {
			return def, true
		}
	}
	return Definition{}, false
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
