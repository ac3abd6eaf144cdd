package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/almanac/pkg/schedule"
)

var monthDate string

// monthCmd represents the month command
var monthCmd = &cobra.Command{
	Use:   "month",
	Short: "Show a month grid with per-day event counts",
	Run: func(cmd *cobra.Command, args []string) {
		planner := openPlanner()

		ref := time.Now()
		if monthDate != "" {
			parsed, err := time.ParseInLocation("2006-01", monthDate, time.Local)
			if err != nil {
				fatal("Invalid --date", err)
			}
			ref = parsed
		}

		first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
		events := planner.Events.Events()

		fmt.Println(first.Format("January 2006"))
		fmt.Println("Sun   Mon   Tue   Wed   Thu   Fri   Sat")

		// Leading blanks up to the first weekday.
		for i := 0; i < int(first.Weekday()); i++ {
			fmt.Print("      ")
		}

		for day := first; day.Month() == first.Month(); day = day.AddDate(0, 0, 1) {
			count := len(schedule.EventsOnDay(events, day))
			if count > 0 {
				fmt.Printf("%2d(%d) ", day.Day(), count)
			} else {
				fmt.Printf("%2d    ", day.Day())
			}
			if day.Weekday() == time.Saturday {
				fmt.Println()
			}
		}
		fmt.Println()
	},
}

func init() {
	monthCmd.Flags().StringVar(&monthDate, "date", "", "Month to show (2006-01, default current)")

	rootCmd.AddCommand(monthCmd)
}
