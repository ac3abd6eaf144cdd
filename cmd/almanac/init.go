package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/almanac"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize an almanac vault",
	Long:  `Create the events/ and notes/ collection directories in the current directory.`,
	Run: func(cmd *cobra.Command, args []string) {
		cwd, err := os.Getwd()
		if err != nil {
			fatal("Failed to get CWD", err)
		}
		if vaultFlag != "" {
			cwd = vaultFlag
		}

		_, err = almanac.Init(cwd,
			almanac.WithAutoInit(true),
			almanac.WithLogger(slog.Default()),
		)
		if err != nil {
			fatal("Failed to initialize vault", err)
		}

		fmt.Println("Initialized empty almanac vault in", cwd)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
