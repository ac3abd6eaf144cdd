package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/almanac/pkg/core"
)

var (
	editTitle       string
	editStart       string
	editEnd         string
	editType        string
	editLocation    string
	editDescription string
)

// editCmd represents the edit command
var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a calendar event",
	Long:  `Replace fields of an existing event. Only the provided flags change.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		planner := openPlanner()

		ev, ok := planner.Events.Get(args[0])
		if !ok {
			fmt.Fprintf(os.Stderr, "Event not found: %s\n", args[0])
			os.Exit(1)
		}

		if cmd.Flags().Changed("title") {
			ev.Title = editTitle
		}
		if cmd.Flags().Changed("start") {
			start, err := parseTimeFlag(editStart)
			if err != nil {
				fatal("Invalid --start", err)
			}
			ev.Start = start
		}
		if cmd.Flags().Changed("end") {
			end, err := parseTimeFlag(editEnd)
			if err != nil {
				fatal("Invalid --end", err)
			}
			ev.End = end
		}
		if cmd.Flags().Changed("type") {
			if !core.ValidEventType(core.EventType(editType)) {
				fatal("Invalid --type", core.ErrUnknownType)
			}
			ev.Type = core.EventType(editType)
		}
		if cmd.Flags().Changed("location") {
			ev.Location = editLocation
		}
		if cmd.Flags().Changed("description") {
			ev.Description = editDescription
		}

		// The form boundary enforces end > start; the store does not.
		if !ev.End.After(ev.Start) {
			fatal("Invalid time range", core.ErrEndBeforeStart)
		}

		planner.Events.Edit(context.Background(), ev)
		fmt.Printf("Updated event %s\n", ev.ID)
	},
}

func init() {
	editCmd.Flags().StringVar(&editTitle, "title", "", "Event title")
	editCmd.Flags().StringVar(&editStart, "start", "", "Start time")
	editCmd.Flags().StringVar(&editEnd, "end", "", "End time")
	editCmd.Flags().StringVar(&editType, "type", "", "Event type: work|personal|focus|other")
	editCmd.Flags().StringVar(&editLocation, "location", "", "Location")
	editCmd.Flags().StringVar(&editDescription, "description", "", "Description")

	rootCmd.AddCommand(editCmd)
}
