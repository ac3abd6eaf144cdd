package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/almanac/pkg/core"
)

var (
	addTitle       string
	addStart       string
	addEnd         string
	addType        string
	addLocation    string
	addDescription string
)

// timeLayouts are the accepted formats for --start/--end, tried in
// order. Layouts without an offset are interpreted in local time.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04",
}

func parseTimeFlag(value string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time %q (want e.g. 2006-01-02 15:04)", value)
}

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a calendar event",
	Long:  `Create a new event. Validation happens here at the flag boundary; see 'almanac agenda' to find it back.`,
	Run: func(cmd *cobra.Command, args []string) {
		start, err := parseTimeFlag(addStart)
		if err != nil {
			fatal("Invalid --start", err)
		}
		end, err := parseTimeFlag(addEnd)
		if err != nil {
			fatal("Invalid --end", err)
		}

		draft, err := core.NewDraft(addTitle, start, end, core.EventType(addType))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			cmd.Usage()
			os.Exit(1)
		}
		draft.Location = addLocation
		draft.Description = addDescription

		planner := openPlanner()
		ev := planner.Events.Add(context.Background(), draft)

		fmt.Printf("Created event %s (%s)\n", ev.ID, ev.Title)
	},
}

func init() {
	addCmd.Flags().StringVar(&addTitle, "title", "", "Event title (required)")
	addCmd.Flags().StringVar(&addStart, "start", "", "Start time (required)")
	addCmd.Flags().StringVar(&addEnd, "end", "", "End time (required)")
	addCmd.Flags().StringVar(&addType, "type", string(core.TypeOther), "Event type: work|personal|focus|other")
	addCmd.Flags().StringVar(&addLocation, "location", "", "Location")
	addCmd.Flags().StringVar(&addDescription, "description", "", "Description")
	addCmd.MarkFlagRequired("title")
	addCmd.MarkFlagRequired("start")
	addCmd.MarkFlagRequired("end")

	rootCmd.AddCommand(addCmd)
}
