// Package shiftcalc buckets financial events into named shift windows and
// computes cash reconciliation totals. Everything here is pure and stateless:
// callers fetch data, invoke, and render — no I/O, no shared state.
package shiftcalc

import (
	"fmt"
	"time"
)

// Label names one of the three fixed daily shifts.
type Label string

const (
	Morning   Label = "morning"
	Afternoon Label = "afternoon"
	Night     Label = "night"
)

// ParseLabel validates a shift label coming from a request or a DB row.
func ParseLabel(s string) (Label, error) {
	switch Label(s) {
	case Morning, Afternoon, Night:
		return Label(s), nil
	}
	return "", fmt.Errorf("unknown shift label %q", s)
}

// Window is a concrete [Start, End] timestamp range for one shift on one
// calendar date. Ends are set to the last representable millisecond so the
// three windows of a day tile with no gap and no overlap.
type Window struct {
	Label Label
	Start time.Time
	End   time.Time
}

// WindowFor maps (calendar date, shift label) to its timestamp range:
//
//	morning    07:00:00.000 – 13:59:59.999 same date
//	afternoon  14:00:00.000 – 20:59:59.999 same date
//	night      21:00:00.000 – 06:59:59.999 next date
func WindowFor(date time.Time, label Label) Window {
	y, m, d := date.Date()
	loc := date.Location()
	dayAt := func(dayOffset, hour int) time.Time {
		return time.Date(y, m, d+dayOffset, hour, 0, 0, 0, loc)
	}
	lastMs := -time.Millisecond

	switch label {
	case Morning:
		return Window{Label: label, Start: dayAt(0, 7), End: dayAt(0, 14).Add(lastMs)}
	case Afternoon:
		return Window{Label: label, Start: dayAt(0, 14), End: dayAt(0, 21).Add(lastMs)}
	default: // Night spans midnight into the following date
		return Window{Label: label, Start: dayAt(0, 21), End: dayAt(1, 7).Add(lastMs)}
	}
}

// Contains reports whether t falls within the window, inclusive of both
// bounds. Boundary events belong to the window; adjacent windows are defined
// a millisecond apart, so an event can never land on two of them.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}
