// Package window maps wall time to the half-day collection windows that scope
// every ingestion and merge run.
package window

import (
	"fmt"
	"strings"
	"time"
)

// Period is one of the three daily buckets.
type Period string

const (
	AM  Period = "AM"  // before 14:00
	PM  Period = "PM"  // 14:00 to 19:59
	EVE Period = "EVE" // 20:00 onward
)

// Window identifies one collection window, e.g. "2025-11-07_AM".
type Window struct {
	Date   string // YYYY-MM-DD
	Period Period
}

// ForTime returns the window containing t, evaluated in t's location.
func ForTime(t time.Time) Window {
	var p Period
	switch hour := t.Hour(); {
	case hour < 14:
		p = AM
	case hour < 20:
		p = PM
	default:
		p = EVE
	}
	return Window{Date: t.Format("2006-01-02"), Period: p}
}

// Parse parses a window identifier produced by String.
func Parse(s string) (Window, error) {
	date, period, ok := strings.Cut(s, "_")
	if !ok {
		return Window{}, fmt.Errorf("malformed window %q", s)
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return Window{}, fmt.Errorf("malformed window date %q: %w", date, err)
	}
	switch Period(period) {
	case AM, PM, EVE:
		return Window{Date: date, Period: Period(period)}, nil
	default:
		return Window{}, fmt.Errorf("unknown window period %q", period)
	}
}

func (w Window) String() string {
	return w.Date + "_" + string(w.Period)
}

// Day returns the window's date at midnight in loc.
func (w Window) Day(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", w.Date, loc)
}
