package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/almanac"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of almanac",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("almanac version %s\n", strings.TrimSpace(almanac.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
