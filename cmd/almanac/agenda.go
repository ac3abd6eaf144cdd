package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/almanac/pkg/agenda"
	"github.com/aretw0/almanac/pkg/core"
)

var (
	agendaRange  string
	agendaSearch string
	agendaTypes  []string
)

// agendaCmd represents the agenda command
var agendaCmd = &cobra.Command{
	Use:   "agenda",
	Short: "Show a filtered agenda grouped by day",
	Long: `Show events as an agenda: filtered by range, search text and type,
sorted by start time and grouped under per-day headings.`,
	Run: func(cmd *cobra.Command, args []string) {
		planner := openPlanner()

		types := make([]core.EventType, 0, len(agendaTypes))
		for _, t := range agendaTypes {
			typ := core.EventType(t)
			if !core.ValidEventType(typ) {
				fatal("Invalid --type", core.ErrUnknownType)
			}
			types = append(types, typ)
		}

		now := time.Now()
		q := agenda.Query{
			Range:  agenda.Range(agendaRange),
			Search: agendaSearch,
			Types:  types,
		}
		matched := agenda.Apply(planner.Events.Events(), q, now)
		if len(matched) == 0 {
			fmt.Println("No events found")
			return
		}

		for _, day := range agenda.Group(matched) {
			fmt.Println(agenda.Heading(day, now))
			for _, ev := range day.Events {
				fmt.Printf("  %s - %s  [%s]  %s\n",
					ev.Start.Format("15:04"),
					ev.End.Format("15:04"),
					ev.Type,
					ev.Title)
				if ev.Location != "" {
					fmt.Printf("      %s\n", ev.Location)
				}
			}
			fmt.Println()
		}
	},
}

func init() {
	agendaCmd.Flags().StringVar(&agendaRange, "range", "all", "Time range: all|today|thisWeek|thisMonth")
	agendaCmd.Flags().StringVar(&agendaSearch, "search", "", "Match title, description or location")
	agendaCmd.Flags().StringSliceVar(&agendaTypes, "type", nil, "Only include these event types (repeatable)")

	rootCmd.AddCommand(agendaCmd)
}
