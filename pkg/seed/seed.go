// Package seed generates the demo data used when the vault is empty or
// its persisted state cannot be read.
package seed

import (
	"time"

	"github.com/google/uuid"

	"github.com/aretw0/almanac/pkg/core"
)

// eventSpec describes one seeded event relative to the reference week:
// a weekday, a start clock time and a duration.
type eventSpec struct {
	title       string
	weekday     time.Weekday
	hour        int
	minute      int
	duration    time.Duration
	typ         core.EventType
	location    string
	description string
}

var weekPlan = []eventSpec{
	{"Daily Standup", time.Monday, 9, 0, 30 * time.Minute, core.TypeWork, "Meeting Room A", "Quick sync on progress and blockers"},
	{"Sprint Planning", time.Monday, 11, 0, 90 * time.Minute, core.TypeWork, "Meeting Room B", "Plan the upcoming sprint"},
	{"Lunch with Sam", time.Monday, 12, 30, time.Hour, core.TypePersonal, "Cafe Central", ""},
	{"Deep Work Block", time.Tuesday, 9, 30, 2 * time.Hour, core.TypeFocus, "", "No meetings, no chat"},
	{"Daily Standup", time.Tuesday, 9, 0, 30 * time.Minute, core.TypeWork, "Meeting Room A", ""},
	{"Dentist", time.Wednesday, 16, 0, 45 * time.Minute, core.TypePersonal, "Smile Clinic", "Regular checkup"},
	{"Design Review", time.Thursday, 14, 0, time.Hour, core.TypeWork, "Meeting Room B", "Review the new layout proposals"},
	{"Writing Time", time.Thursday, 10, 0, 90 * time.Minute, core.TypeFocus, "", "Draft the quarterly report"},
	{"Gym", time.Friday, 18, 0, time.Hour, core.TypePersonal, "City Gym", ""},
	{"Errands", time.Saturday, 10, 0, 2 * time.Hour, core.TypeOther, "", "Groceries and dry cleaning"},
}

// Generate produces a plausible, internally consistent demo event set
// spread over the week containing ref. Every event ends after it
// starts and all four types are represented.
func Generate(ref time.Time) []core.Event {
	weekStart := startOfWeek(ref)

	events := make([]core.Event, 0, len(weekPlan))
	for _, spec := range weekPlan {
		day := weekStart.AddDate(0, 0, int(spec.weekday))
		start := time.Date(day.Year(), day.Month(), day.Day(), spec.hour, spec.minute, 0, 0, ref.Location())
		events = append(events, core.Event{
			ID:          uuid.NewString(),
			Title:       spec.title,
			Start:       start,
			End:         start.Add(spec.duration),
			Type:        spec.typ,
			Location:    spec.location,
			Description: spec.description,
		})
	}
	return events
}

// GenerateNotes produces a small starter note set.
func GenerateNotes(ref time.Time) []core.Note {
	specs := []struct {
		title    string
		content  string
		category string
		pinned   bool
		tags     []string
	}{
		{
			title:    "Meeting Notes",
			content:  "## Project Timeline\n\nDiscussed the timeline and allocated resources for the quarter.",
			category: "Work",
			pinned:   true,
			tags:     []string{"meeting", "planning"},
		},
		{
			title:    "Vacation Ideas",
			content:  "Coastal towns, late summer. Look into accommodations with ocean views.",
			category: "Personal",
			tags:     []string{"travel"},
		},
		{
			title:    "Feature Ideas",
			content:  "- Dark mode\n- Tagging system",
			category: "Ideas",
			tags:     []string{"backlog"},
		},
	}

	notes := make([]core.Note, 0, len(specs))
	for i, s := range specs {
		created := ref.AddDate(0, 0, -(i + 1))
		notes = append(notes, core.Note{
			ID:        uuid.NewString(),
			Title:     s.title,
			Content:   s.content,
			Category:  s.category,
			Color:     core.CategoryColor(s.category),
			Pinned:    s.pinned,
			CreatedAt: created,
			UpdatedAt: created,
			Tags:      s.tags,
		})
	}
	return notes
}

func startOfWeek(t time.Time) time.Time {
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return midnight.AddDate(0, 0, -int(midnight.Weekday()))
}
