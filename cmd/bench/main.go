// Command bench measures vault load performance: it generates a large
// synthetic event collection by writing record files directly, then
// times a full planner load, simulating a CLI command run against an
// existing vault of that size.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/aretw0/almanac"
)

func main() {
	count := flag.Int("count", 1000, "Number of events to generate")
	keep := flag.Bool("keep", false, "Keep the benchmark vault after running")
	flag.Parse()

	benchDir, err := os.MkdirTemp("", "almanac_bench_")
	if err != nil {
		panic(err)
	}
	defer func() {
		if !*keep {
			os.RemoveAll(benchDir)
		} else {
			fmt.Printf("Keeping bench dir: %s\n", benchDir)
		}
	}()

	fmt.Printf("Generating %d events in %s...\n", *count, benchDir)
	startGen := time.Now()

	// Direct file writes are faster than going through the store and
	// simulate a pre-existing vault.
	eventsDir := filepath.Join(benchDir, "events")
	if err := os.MkdirAll(eventsDir, 0755); err != nil {
		panic(err)
	}
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.Local)
	for i := 0; i < *count; i++ {
		start := day.AddDate(0, 0, i/8).Add(time.Duration(9+i%8) * time.Hour)
		content := fmt.Sprintf(
			"---\ntitle: Event %d\nstart: %s\nend: %s\ntype: work\n---\nGenerated benchmark event %d.",
			i,
			start.Format(time.RFC3339),
			start.Add(time.Hour).Format(time.RFC3339),
			i,
		)
		filename := filepath.Join(eventsDir, fmt.Sprintf("event_%d.md", i))
		if err := os.WriteFile(filename, []byte(content), 0644); err != nil {
			panic(err)
		}
	}
	fmt.Printf("Generation took: %v\n", time.Since(startGen))

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	runLoad := func(label string) {
		startLoad := time.Now()
		planner, err := almanac.New(benchDir,
			almanac.WithLogger(logger),
			almanac.WithAutoInit(true),
			almanac.WithSeed(false),
		)
		if err != nil {
			panic(err)
		}
		duration := time.Since(startLoad)
		fmt.Printf("%s: %v (Items: %d)\n", label, duration, planner.Events.Len())
	}

	// Each run re-instantiates the planner to simulate a fresh CLI
	// command run: every load walks and parses the whole collection.
	fmt.Println("Running Load (Run 1)...")
	runLoad("Run 1 Result")

	fmt.Println("Running Load (Run 2)...")
	runLoad("Run 2 Result")
}
