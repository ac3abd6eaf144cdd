package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/aretw0/almanac/pkg/core"
)

var (
	listJSON  bool
	listMatch string
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all calendar events",
	Long:  `List every event in the vault, sorted by start time.`,
	Run: func(cmd *cobra.Command, args []string) {
		planner := openPlanner()

		events := planner.Events.Events()
		if listMatch != "" {
			if !doublestar.ValidatePattern(listMatch) {
				fatal("Invalid --match pattern", doublestar.ErrBadPattern)
			}
			filtered := events[:0]
			for _, ev := range events {
				if ok, _ := doublestar.Match(listMatch, ev.ID); ok {
					filtered = append(filtered, ev)
				}
			}
			events = filtered
		}
		sort.SliceStable(events, func(i, j int) bool {
			return events[i].Start.Before(events[j].Start)
		})

		if listJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(events); err != nil {
				fatal("Failed to encode events", err)
			}
			return
		}

		if len(events) == 0 {
			fmt.Println("No events found")
			return
		}
		for _, ev := range events {
			printEventLine(ev)
		}
	},
}

func printEventLine(ev core.Event) {
	fmt.Printf("%s  %s - %s  [%s]  %s\n",
		ev.ID,
		ev.Start.Format(time.RFC3339),
		ev.End.Format("15:04"),
		ev.Type,
		ev.Title)
	if ev.Location != "" {
		fmt.Printf("    %s\n", ev.Location)
	}
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Emit events as JSON")
	listCmd.Flags().StringVar(&listMatch, "match", "", "Only list events whose id matches the glob pattern")

	rootCmd.AddCommand(listCmd)
}
