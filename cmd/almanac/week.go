package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/almanac/pkg/core"
	"github.com/aretw0/almanac/pkg/schedule"
)

var (
	weekDate         string
	weekExpand       bool
	weekFullDay      bool
	weekDefaultHours bool
)

// weekCmd represents the week command
var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "Show the timeline for a week",
	Long: `Show seven day columns starting on Sunday. All days share one hour
window, resolved against the whole week's events.`,
	Run: func(cmd *cobra.Command, args []string) {
		planner := openPlanner()

		ref := time.Now()
		if weekDate != "" {
			parsed, err := time.ParseInLocation("2006-01-02", weekDate, time.Local)
			if err != nil {
				fatal("Invalid --date", err)
			}
			ref = parsed
		}

		sunday := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
		sunday = sunday.AddDate(0, 0, -int(sunday.Weekday()))

		all := planner.Events.Events()
		var weekEvents []core.Event
		for i := 0; i < 7; i++ {
			weekEvents = append(weekEvents, schedule.EventsOnDay(all, sunday.AddDate(0, 0, i))...)
		}

		base := schedule.DefaultWeekWindow
		if cfg != nil {
			base = cfg.WeekWindow()
		}
		window := resolveWindow(base, weekEvents, viewControls{
			expand:       weekExpand,
			fullDay:      weekFullDay,
			defaultHours: weekDefaultHours,
		})

		now := time.Now()
		for i := 0; i < 7; i++ {
			day := sunday.AddDate(0, 0, i)
			fmt.Println(day.Format("Monday, January 2"))
			dayNow := now
			if !schedule.SameDay(day, now) {
				dayNow = time.Time{}
			}
			printTimeline(schedule.EventsOnDay(all, day), window, dayNow)
			fmt.Println()
		}
	},
}

func init() {
	weekCmd.Flags().StringVar(&weekDate, "date", "", "Any day inside the week to show (2006-01-02, default today)")
	weekCmd.Flags().BoolVar(&weekExpand, "expand", false, "Widen the hour range by two hours each side")
	weekCmd.Flags().BoolVar(&weekFullDay, "full-day", false, "Show all 24 hours")
	weekCmd.Flags().BoolVar(&weekDefaultHours, "default-hours", false, "Keep the baseline hour range instead of fitting it to events")

	rootCmd.AddCommand(weekCmd)
}
