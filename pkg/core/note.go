package core

import "time"

// Note is the secondary entity of the domain: a rich-text note with a
// category, a color and free-form tags. It follows the same store
// pattern as Event but carries no time range.
type Note struct {
	ID        string
	Title     string
	Content   string // Markdown or plain text body
	Category  string
	Color     string
	Pinned    bool
	CreatedAt time.Time
	UpdatedAt time.Time
	Tags      []string
}

// NoteDraft is a note without an identity or timestamps; the store
// assigns all three.
type NoteDraft struct {
	Title    string
	Content  string
	Category string
	Color    string
	Pinned   bool
	Tags     []string
}

// NoteCategories lists the built-in categories with their default colors.
// Unknown categories are allowed; they fall back to DefaultNoteColor.
var NoteCategories = map[string]string{
	"Work":     "#f97316",
	"Personal": "#8b5cf6",
	"Ideas":    "#10b981",
	"Tasks":    "#0ea5e9",
}

// DefaultNoteColor is used when a draft names no color and its category
// is not one of the built-ins.
const DefaultNoteColor = "#0ea5e9"

// CategoryColor resolves the display color for a category.
func CategoryColor(category string) string {
	if c, ok := NoteCategories[category]; ok {
		return c
	}
	return DefaultNoteColor
}
