package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/almanac/pkg/core"
	"github.com/aretw0/almanac/pkg/notes"
)

var (
	noteTitle    string
	noteContent  string
	noteCategory string
	noteColor    string
	notePinned   bool
	noteTags     []string

	noteListCategory string
	noteListSearch   string
	noteListSort     string
)

// noteCmd represents the note command group
var noteCmd = &cobra.Command{
	Use:   "note",
	Short: "Work with notes",
	Long:  `Create, list, pin and remove notes stored alongside the calendar.`,
}

var noteAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a note",
	Run: func(cmd *cobra.Command, args []string) {
		planner := openPlanner()

		n := planner.Notes.Add(context.Background(), core.NoteDraft{
			Title:    noteTitle,
			Content:  noteContent,
			Category: noteCategory,
			Color:    noteColor,
			Pinned:   notePinned,
			Tags:     noteTags,
		})
		fmt.Printf("Created note %s\n", n.ID)
	},
}

var noteListCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes",
	Run: func(cmd *cobra.Command, args []string) {
		planner := openPlanner()

		matched := notes.Apply(planner.Notes.Notes(), notes.Query{
			Category: noteListCategory,
			Search:   noteListSearch,
			Sort:     notes.SortOrder(noteListSort),
		})
		if len(matched) == 0 {
			fmt.Println("No notes found")
			return
		}

		for _, n := range matched {
			pin := " "
			if n.Pinned {
				pin = "*"
			}
			fmt.Printf("%s %s  [%s]  %s\n", pin, n.ID, n.Category, n.Title)
			if len(n.Tags) > 0 {
				fmt.Printf("      #%s\n", strings.Join(n.Tags, " #"))
			}
		}
	},
}

var noteShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a note's content",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		planner := openPlanner()

		n, ok := planner.Notes.Get(args[0])
		if !ok {
			fmt.Fprintf(os.Stderr, "Note not found: %s\n", args[0])
			os.Exit(1)
		}
		fmt.Printf("%s  [%s]  updated %s\n\n", n.Title, n.Category, n.UpdatedAt.Format("2006-01-02 15:04"))
		fmt.Println(n.Content)
	},
}

var notePinCmd = &cobra.Command{
	Use:   "pin <id>",
	Short: "Toggle a note's pinned flag",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		planner := openPlanner()

		planner.Notes.TogglePinned(context.Background(), args[0])
		if n, ok := planner.Notes.Get(args[0]); ok {
			state := "unpinned"
			if n.Pinned {
				state = "pinned"
			}
			fmt.Printf("Note %s is now %s\n", n.ID, state)
		}
	},
}

var noteRmCmd = &cobra.Command{
	Use:   "rm <id>...",
	Short: "Remove notes",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		planner := openPlanner()

		for _, id := range args {
			planner.Notes.Remove(context.Background(), id)
		}
		fmt.Printf("Removed %d note(s)\n", len(args))
	},
}

var noteCategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Show note counts per category",
	Run: func(cmd *cobra.Command, args []string) {
		planner := openPlanner()

		for _, c := range notes.CountByCategory(planner.Notes.Notes()) {
			fmt.Printf("%-12s %d\n", c.Name, c.Count)
		}
	},
}

func init() {
	noteAddCmd.Flags().StringVar(&noteTitle, "title", "", "Note title")
	noteAddCmd.Flags().StringVar(&noteContent, "content", "", "Note body")
	noteAddCmd.Flags().StringVar(&noteCategory, "category", "", "Category (Work, Personal, Ideas, Tasks)")
	noteAddCmd.Flags().StringVar(&noteColor, "color", "", "Accent color (defaults from the category)")
	noteAddCmd.Flags().BoolVar(&notePinned, "pinned", false, "Pin the note")
	noteAddCmd.Flags().StringSliceVar(&noteTags, "tag", nil, "Tag (repeatable)")
	noteAddCmd.MarkFlagRequired("title")

	noteListCmd.Flags().StringVar(&noteListCategory, "category", "", "Only this category")
	noteListCmd.Flags().StringVar(&noteListSearch, "search", "", "Match title, content or tags")
	noteListCmd.Flags().StringVar(&noteListSort, "sort", "newest", "Sort order: newest|oldest|alphabetical")

	noteCmd.AddCommand(noteAddCmd)
	noteCmd.AddCommand(noteListCmd)
	noteCmd.AddCommand(noteShowCmd)
	noteCmd.AddCommand(notePinCmd)
	noteCmd.AddCommand(noteRmCmd)
	noteCmd.AddCommand(noteCategoriesCmd)

	rootCmd.AddCommand(noteCmd)
}
