package ics_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/almanac/pkg/core"
	"github.com/aretw0/almanac/pkg/ics"
)

func TestExport(t *testing.T) {
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	events := []core.Event{
		{
			ID:          "abc-123",
			Title:       "Sprint Planning",
			Start:       start,
			End:         start.Add(90 * time.Minute),
			Type:        core.TypeWork,
			Location:    "Room 4",
			Description: "Bring the backlog",
		},
		{
			ID:    "def-456",
			Title: "Gym",
			Start: start.Add(9 * time.Hour),
			End:   start.Add(10 * time.Hour),
			Type:  core.TypePersonal,
		},
	}

	var buf bytes.Buffer
	if err := ics.Export(&buf, events); err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"BEGIN:VCALENDAR",
		"END:VCALENDAR",
		"METHOD:PUBLISH",
		"UID:abc-123@almanac",
		"SUMMARY:Sprint Planning",
		"LOCATION:Room 4",
		"DESCRIPTION:Bring the backlog",
		"CATEGORIES:work",
		"UID:def-456@almanac",
		"CATEGORIES:personal",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output misses %q:\n%s", want, out)
		}
	}

	if strings.Count(out, "BEGIN:VEVENT") != 2 {
		t.Errorf("expected 2 VEVENT blocks:\n%s", out)
	}
	// Optional fields stay out when unset.
	if strings.Count(out, "LOCATION") != 1 {
		t.Errorf("expected a single LOCATION property:\n%s", out)
	}
	if strings.Contains(out, "RRULE") {
		t.Errorf("recurrence must not be exported as RRULE:\n%s", out)
	}
}

func TestExport_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := ics.Export(&buf, nil); err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "BEGIN:VCALENDAR") || strings.Contains(out, "BEGIN:VEVENT") {
		t.Errorf("expected an empty calendar:\n%s", out)
	}
}
