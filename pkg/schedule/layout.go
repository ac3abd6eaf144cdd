package schedule

import (
	"time"

	"github.com/aretw0/almanac/pkg/core"
)

// Placement is the normalized vertical geometry of an event block
// within a time window, both expressed as percentages of the rendered
// column height.
type Placement struct {
	Top    float64
	Height float64
}

// hourFraction converts an instant to fractional hours since local
// midnight (9:30 -> 9.5).
func hourFraction(t time.Time) float64 {
	return float64(t.Hour()) + float64(t.Minute())/60
}

// Position maps an event's absolute time range to a Placement inside
// the window.
//
// The height has a quarter-hour floor: every event renders with a
// minimum visible height regardless of true duration, so near-zero
// duration events do not disappear. Overlapping events are NOT packed
// side by side; they stack with identical horizontal bounds, matching
// the timeline's established behavior.
func Position(ev core.Event, w Window) Placement {
	totalHours := float64(w.Hours())
	hourHeight := 100 / totalHours

	startHour := hourFraction(ev.Start)
	endHour := hourFraction(ev.End)

	// Clamp into the visible range.
	adjustedStart := min(totalHours, max(0, startHour-float64(w.Start)))
	adjustedEnd := min(totalHours, max(0, endHour-float64(w.Start)))

	return Placement{
		Top:    adjustedStart * hourHeight,
		Height: max(hourHeight/4, (adjustedEnd-adjustedStart)*hourHeight),
	}
}

// HourMark returns the top percentage of the row for the given hour,
// used to draw grid lines and the current-time indicator.
func HourMark(hour int, w Window) float64 {
	return float64(hour-w.Start) / float64(w.Hours()) * 100
}

// NowMark returns the top percentage for an exact instant, or false if
// the instant's hour is outside the window.
func NowMark(now time.Time, w Window) (float64, bool) {
	if !w.Contains(now.Hour()) {
		return 0, false
	}
	hourHeight := 100 / float64(w.Hours())
	return (hourFraction(now) - float64(w.Start)) * hourHeight, true
}
