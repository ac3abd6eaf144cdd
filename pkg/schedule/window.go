// Package schedule converts event time ranges into timeline geometry:
// it resolves the visible hour window for a day or week view and
// positions each event as a normalized vertical block inside that
// window.
//
// Everything here is a pure function of its inputs. There is no hidden
// state, so concurrent calls over disjoint events are safe.
package schedule

import (
	"time"

	"github.com/aretw0/almanac/pkg/core"
)

// Window is the inclusive hour range rendered in a timeline view.
// Invariant: 0 <= Start <= End <= 23.
type Window struct {
	Start int
	End   int
}

// Baseline business-hours windows. The day view shows one more trailing
// hour than the week view.
var (
	DefaultDayWindow  = Window{Start: 7, End: 21}
	DefaultWeekWindow = Window{Start: 7, End: 20}
)

// Hours returns the number of rendered hour rows (inclusive range).
func (w Window) Hours() int {
	return w.End - w.Start + 1
}

// Contains reports whether the given hour falls inside the window.
func (w Window) Contains(hour int) bool {
	return hour >= w.Start && hour <= w.End
}

// Resolve grows the base window until it contains every event's hours.
// An event starting before the window lowers the start to its start
// hour (clamped to 0); one ending after it raises the end to its end
// hour plus one (clamped to 23). The window only ever grows, never
// shrinks below the base; shrinking back means resolving against the
// baseline again. Callers pass only the events of the visible day(s).
func Resolve(base Window, events []core.Event) Window {
	w := base
	for _, ev := range events {
		startHour := ev.Start.Hour()
		endHour := ev.End.Hour()

		if startHour < w.Start {
			w.Start = max(0, startHour)
		}
		if endHour > w.End {
			w.End = min(23, endHour+1)
		}
	}
	return w
}

// Expand widens the window by two hours on each side, clamped to the
// day bounds, irrespective of events.
func Expand(w Window) Window {
	return Window{
		Start: max(0, w.Start-2),
		End:   min(23, w.End+2),
	}
}

// SameDay reports whether two instants fall on the same local calendar
// date. Presentation filters events by same-day membership before
// positioning them.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// EventsOnDay returns the subset of events whose start falls on the
// given local calendar date, preserving input order.
func EventsOnDay(events []core.Event, day time.Time) []core.Event {
	var out []core.Event
	for _, ev := range events {
		if SameDay(ev.Start, day) {
			out = append(out, ev)
		}
	}
	return out
}
