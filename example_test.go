package almanac_test

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/aretw0/almanac"
	"github.com/aretw0/almanac/pkg/core"
)

// Example_basic demonstrates how to open a vault, create an event, and
// read it back.
func Example_basic() {
	// Create a temporary directory for the example
	tmpDir, err := os.MkdirTemp("", "almanac-example-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	// Open the planner targeting the temporary directory.
	// WithSeed(false) keeps the vault empty instead of generating demo data.
	planner, err := almanac.New(tmpDir,
		almanac.WithAutoInit(true),
		almanac.WithSeed(false),
	)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	// 1. Create an event
	start := time.Date(2024, 6, 10, 9, 0, 0, 0, time.Local)
	draft, err := core.NewDraft("Daily Standup", start, start.Add(30*time.Minute), core.TypeWork)
	if err != nil {
		log.Fatal(err)
	}
	created := planner.Events.Add(ctx, draft)

	// 2. Read it back
	ev, ok := planner.Events.Get(created.ID)
	if !ok {
		log.Fatal("event not found")
	}

	fmt.Printf("Found event: %s\n", ev.Title)
	// Output: Found event: Daily Standup
}
