package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/almanac/pkg/core"
	"github.com/aretw0/almanac/pkg/schedule"
)

var (
	dayDate         string
	dayExpand       bool
	dayFullDay      bool
	dayDefaultHours bool
)

// dayCmd represents the day command
var dayCmd = &cobra.Command{
	Use:   "day",
	Short: "Show the timeline for a single day",
	Long: `Show one day as an hour-by-hour timeline. The visible hour range
starts at business hours and grows to fit the day's events.`,
	Run: func(cmd *cobra.Command, args []string) {
		planner := openPlanner()

		date := time.Now()
		if dayDate != "" {
			parsed, err := time.ParseInLocation("2006-01-02", dayDate, time.Local)
			if err != nil {
				fatal("Invalid --date", err)
			}
			date = parsed
		}

		base := schedule.DefaultDayWindow
		if cfg != nil {
			base = cfg.DayWindow()
		}
		events := schedule.EventsOnDay(planner.Events.Events(), date)
		window := resolveWindow(base, events, viewControls{
			expand:       dayExpand,
			fullDay:      dayFullDay,
			defaultHours: dayDefaultHours,
		})

		now := time.Now()
		fmt.Println(date.Format("Monday, January 2, 2006"))
		if !schedule.SameDay(date, now) {
			// The current-time marker only makes sense on today.
			now = time.Time{}
		}
		printTimeline(events, window, now)
	},
}

// viewControls are the manual overrides layered on top of the
// event-driven window resolve.
type viewControls struct {
	expand       bool // widen by two hours each side
	fullDay      bool // show all 24 hours, overrides everything else
	defaultHours bool // keep the baseline, discarding event-driven growth
}

// resolveWindow applies the shared window controls: full-day overrides
// everything, default-hours restores the baseline regardless of events,
// expand widens whatever range the other controls produce.
func resolveWindow(base schedule.Window, events []core.Event, c viewControls) schedule.Window {
	if c.fullDay {
		return schedule.Window{Start: 0, End: 23}
	}
	w := base
	if !c.defaultHours {
		w = schedule.Resolve(base, events)
	}
	if c.expand {
		w = schedule.Expand(w)
	}
	return w
}

// printTimeline renders one hour row per window hour, with each event
// listed on its start hour and a marker on the current hour.
func printTimeline(events []core.Event, w schedule.Window, now time.Time) {
	byHour := make(map[int][]core.Event)
	for _, ev := range events {
		hour := ev.Start.Hour()
		if hour < w.Start {
			hour = w.Start
		}
		byHour[hour] = append(byHour[hour], ev)
	}

	nowVisible := false
	if !now.IsZero() {
		_, nowVisible = schedule.NowMark(now, w)
	}

	for hour := w.Start; hour <= w.End; hour++ {
		marker := " "
		if nowVisible && now.Hour() == hour {
			marker = ">"
		}
		fmt.Printf("%s %02d:00 |", marker, hour)
		for _, ev := range byHour[hour] {
			p := schedule.Position(ev, w)
			fmt.Printf("  %s-%s %s [%s] (%.0f%%..%.0f%%)",
				ev.Start.Format("15:04"), ev.End.Format("15:04"),
				ev.Title, ev.Type, p.Top, p.Top+p.Height)
		}
		fmt.Println()
	}
}

func init() {
	dayCmd.Flags().StringVar(&dayDate, "date", "", "Day to show (2006-01-02, default today)")
	dayCmd.Flags().BoolVar(&dayExpand, "expand", false, "Widen the hour range by two hours each side")
	dayCmd.Flags().BoolVar(&dayFullDay, "full-day", false, "Show all 24 hours")
	dayCmd.Flags().BoolVar(&dayDefaultHours, "default-hours", false, "Keep the baseline hour range instead of fitting it to events")

	rootCmd.AddCommand(dayCmd)
}
