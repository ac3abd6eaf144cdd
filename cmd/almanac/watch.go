package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	alifecycle "github.com/aretw0/almanac/pkg/adapters/lifecycle"
	"github.com/aretw0/almanac/pkg/core"
)

var watchPattern string

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the vault for changes",
	Long: `Stream vault changes to stdout until interrupted. Useful when an
external editor or sync tool modifies records directly.`,
	Run: func(cmd *cobra.Command, args []string) {
		planner := openPlanner()

		watchable, ok := planner.Repository().(core.Watchable)
		if !ok {
			fmt.Fprintln(os.Stderr, "Error: this vault backend does not support watching")
			os.Exit(1)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		changes, err := watchable.Watch(ctx, watchPattern)
		if err != nil {
			fatal("Failed to start watcher", err)
		}

		source := alifecycle.NewSource(changes)
		if err := source.Start(ctx); err != nil {
			fatal("Failed to start change source", err)
		}

		fmt.Printf("Watching vault (pattern %q), press Ctrl+C to stop\n", watchPattern)
		for {
			select {
			case <-ctx.Done():
				fmt.Println("Watch stopped")
				return
			case ev, open := <-source.Events():
				if !open {
					return
				}
				fmt.Println(ev.String())
			}
		}
	},
}

func init() {
	watchCmd.Flags().StringVar(&watchPattern, "pattern", "**", "Glob pattern over record ids (events/* or notes/*)")

	rootCmd.AddCommand(watchCmd)
}
