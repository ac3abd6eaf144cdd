// Package ics renders a vault's events as an iCalendar document so
// they can be imported into other calendar tools.
package ics

import (
	"fmt"
	"io"

	ical "github.com/arran4/golang-ical"

	"github.com/aretw0/almanac/pkg/core"
)

const prodID = "-//almanac//calendar export//EN"

// Export writes the events as a VCALENDAR document. Recurrence
// metadata is intentionally not translated to RRULEs: occurrences are
// never expanded in this system, so exporting a rule the engine does
// not honor would misrepresent the data.
func Export(w io.Writer, events []core.Event) error {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(prodID)

	for _, ev := range events {
		ve := cal.AddEvent(fmt.Sprintf("%s@almanac", ev.ID))
		ve.SetSummary(ev.Title)
		ve.SetStartAt(ev.Start)
		ve.SetEndAt(ev.End)
		if ev.Location != "" {
			ve.SetLocation(ev.Location)
		}
		if ev.Description != "" {
			ve.SetDescription(ev.Description)
		}
		// The event type travels as a CATEGORIES property so a
		// round-trip preserves the filter dimension.
		ve.AddProperty(ical.ComponentPropertyCategories, string(ev.Type))
	}

	return cal.SerializeTo(w)
}
