// Package agenda produces the filtered, sorted and date-grouped event
// listings consumed by the agenda and search surfaces.
package agenda

import (
	"sort"
	"strings"
	"time"

	"github.com/aretw0/almanac/pkg/core"
)

// Range selects a calendar window relative to the current real-world
// date at query time, not the currently viewed date.
type Range string

const (
	RangeAll       Range = "all"
	RangeToday     Range = "today"
	RangeThisWeek  Range = "thisWeek"
	RangeThisMonth Range = "thisMonth"
)

// Query bundles the three filter dimensions. The zero value matches
// everything.
type Query struct {
	// Range membership test for the event start. Unrecognized values
	// behave like RangeAll rather than erroring.
	Range Range

	// Search is a case-insensitive substring matched against title,
	// description and location. Empty means no search filter.
	Search string

	// Types restricts events to the given set. An empty set means
	// unrestricted, not "exclude all".
	Types []core.EventType
}

// Apply filters events by q (the three dimensions compose by AND) and
// returns them sorted ascending by start time. The sort is stable:
// ties keep their original relative order. An empty result is a valid
// outcome that callers render as an explicit "no events" state.
func Apply(events []core.Event, q Query, now time.Time) []core.Event {
	var out []core.Event
	for _, ev := range events {
		if !inRange(ev.Start, q.Range, now) {
			continue
		}
		if !matchesSearch(ev, q.Search) {
			continue
		}
		if !matchesType(ev.Type, q.Types) {
			continue
		}
		out = append(out, ev)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Start.Before(out[j].Start)
	})
	return out
}

func inRange(start time.Time, r Range, now time.Time) bool {
	switch r {
	case RangeToday:
		return sameDate(start, now)
	case RangeThisWeek:
		ws := startOfWeek(now)
		return !start.Before(ws) && start.Before(ws.AddDate(0, 0, 7))
	case RangeThisMonth:
		return start.Year() == now.Year() && start.Month() == now.Month()
	default:
		// RangeAll and anything unrecognized pass through.
		return true
	}
}

func matchesSearch(ev core.Event, term string) bool {
	if term == "" {
		return true
	}
	needle := strings.ToLower(term)
	return strings.Contains(strings.ToLower(ev.Title), needle) ||
		strings.Contains(strings.ToLower(ev.Description), needle) ||
		strings.Contains(strings.ToLower(ev.Location), needle)
}

func matchesType(t core.EventType, selected []core.EventType) bool {
	if len(selected) == 0 {
		return true
	}
	for _, s := range selected {
		if t == s {
			return true
		}
	}
	return false
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// startOfWeek returns local midnight of the Sunday beginning the week
// containing t. Weeks start on Sunday.
func startOfWeek(t time.Time) time.Time {
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return midnight.AddDate(0, 0, -int(midnight.Weekday()))
}

// Day is one date bucket of a grouped agenda.
type Day struct {
	// Date is the local calendar date key of the bucket (2006-01-02).
	Date string

	// Events keep the global ascending sort order from Apply.
	Events []core.Event
}

// Group partitions an already sorted event list by the local calendar
// date of each event's start. Bucket order follows the first
// appearance of each date, so a sorted input yields date-sorted
// buckets; flattening the groups reproduces the input exactly.
func Group(events []core.Event) []Day {
	var days []Day
	index := make(map[string]int)

	for _, ev := range events {
		key := ev.Start.Format("2006-01-02")
		i, ok := index[key]
		if !ok {
			i = len(days)
			index[key] = i
			days = append(days, Day{Date: key})
		}
		days[i].Events = append(days[i].Events, ev)
	}
	return days
}

// Heading renders the human label for a date bucket: Today, Tomorrow,
// or the long weekday form.
func Heading(d Day, now time.Time) string {
	date, err := time.ParseInLocation("2006-01-02", d.Date, now.Location())
	if err != nil {
		return d.Date
	}
	if sameDate(date, now) {
		return "Today"
	}
	if sameDate(date, now.AddDate(0, 0, 1)) {
		return "Tomorrow"
	}
	return date.Format("Monday, January 2")
}
