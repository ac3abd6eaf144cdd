package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// rmCmd represents the rm command
var rmCmd = &cobra.Command{
	Use:   "rm <id>...",
	Short: "Remove calendar events",
	Long:  `Remove one or more events by id. Unknown ids are ignored.`,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		planner := openPlanner()

		for _, id := range args {
			planner.Events.Remove(context.Background(), id)
		}
		fmt.Printf("Removed %d event(s)\n", len(args))
	},
}

func init() {
	rootCmd.AddCommand(rmCmd)
}
