package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/almanac/pkg/ics"
)

var exportOutput string

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the calendar as iCalendar",
	Long:  `Write every event as an iCalendar (.ics) stream, to stdout or a file.`,
	Run: func(cmd *cobra.Command, args []string) {
		planner := openPlanner()

		out := os.Stdout
		if exportOutput != "" {
			f, err := os.Create(exportOutput)
			if err != nil {
				fatal("Failed to create output file", err)
			}
			defer f.Close()
			out = f
		}

		if err := ics.Export(out, planner.Events.Events()); err != nil {
			fatal("Failed to export calendar", err)
		}
		if exportOutput != "" {
			fmt.Fprintf(os.Stderr, "Wrote %s\n", exportOutput)
		}
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default stdout)")

	rootCmd.AddCommand(exportCmd)
}
