// Package almanac is the Composition Root for the almanac application.
//
// It connects the core business logic (Domain Layer) with the
// infrastructure adapters (Persistence Layer) using the Hexagonal
// Architecture pattern.
//
// Philosophy:
//
// Almanac is a local-first planner engine: a calendar and note
// collection stored as plain Markdown files with YAML frontmatter,
// plus the computation that turns those records into timeline layouts
// and agenda listings. The core is agnostic to storage; the default
// adapter uses the filesystem, and future adapters (SQL, S3) only need
// to implement core.Repository.
//
// Features:
//
//   - **Event Store**: id-assigning CRUD over calendar events with
//     fire-and-forget persistence and seed-data recovery.
//   - **Time Window Resolver**: grows a business-hours window to fit
//     every event of the visible day(s).
//   - **Layout Engine**: pure mapping of events to normalized vertical
//     timeline positions.
//   - **Agenda Engine**: composable date/search/type filters with
//     stable sorting and per-day grouping.
//   - **Notes**: pinned, categorized, tagged rich-text notes with the
//     same store pattern.
//   - **Vault Watching**: fsnotify-based observation of external edits.
//
// Usage:
//
//	// Initialize the planner with functional options
//	planner, err := almanac.New("./vault",
//		almanac.WithAutoInit(true),
//		almanac.WithLogger(logger),
//	)
//
//	// Create an event
//	draft, _ := core.NewDraft("Standup", start, end, core.TypeWork)
//	ev := planner.Events.Add(ctx, draft)
package almanac
