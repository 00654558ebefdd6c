package domain

import "time"

// TimeWindow is a half-open interval [Start, End). Windows are independent
// and may overlap; the same record set can be evaluated against several.
type TimeWindow struct {
	Start time.Time
	End   time.Time
	Days  int
}

// TrailingWindow returns the window covering the last `days` days ending at
// the reference time.
func TrailingWindow(now time.Time, days int) TimeWindow {
	return TimeWindow{
		Start: now.AddDate(0, 0, -days),
		End:   now,
		Days:  days,
	}
}

// ForwardWindow returns the window covering the next `days` days starting at
// the reference time.
func ForwardWindow(now time.Time, days int) TimeWindow {
	return TimeWindow{
		Start: now,
		End:   now.AddDate(0, 0, days),
		Days:  days,
	}
}

// Contains reports whether t falls inside the window. A nil t is never in
// any window; records with a missing date are excluded, not treated as
// always-in-window.
func (w TimeWindow) Contains(t *time.Time) bool {
	if t == nil {
		return false
	}
	return !t.Before(w.Start) && t.Before(w.End)
}
