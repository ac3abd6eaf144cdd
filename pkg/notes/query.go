// Package notes filters and orders note collections for listing.
package notes

import (
	"sort"
	"strings"

	"github.com/aretw0/almanac/pkg/core"
)

// SortOrder selects how a filtered note list is ordered. Pinned notes
// always come first regardless of the order chosen.
type SortOrder string

const (
	SortNewest       SortOrder = "newest"
	SortOldest       SortOrder = "oldest"
	SortAlphabetical SortOrder = "alphabetical"
)

// AllCategories is the category filter value that matches every note.
const AllCategories = "All Notes"

// Query bundles the note filter dimensions.
type Query struct {
	// Category restricts notes to one category. Empty or AllCategories
	// means no category filter.
	Category string

	// Search is a case-insensitive substring matched against title,
	// content and tags.
	Search string

	Sort SortOrder
}

// Apply filters and sorts notes. Filters compose by AND; the sort is
// stable with pinned notes first, then the selected order. An empty or
// unrecognized order keeps the input's relative order after the pinned
// partition.
func Apply(all []core.Note, q Query) []core.Note {
	var out []core.Note
	for _, n := range all {
		if !matchesCategory(n, q.Category) {
			continue
		}
		if !matchesSearch(n, q.Search) {
			continue
		}
		out = append(out, n)
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Pinned != b.Pinned {
			return a.Pinned
		}
		switch q.Sort {
		case SortNewest:
			return a.UpdatedAt.After(b.UpdatedAt)
		case SortOldest:
			return a.UpdatedAt.Before(b.UpdatedAt)
		case SortAlphabetical:
			return a.Title < b.Title
		default:
			return false
		}
	})
	return out
}

func matchesCategory(n core.Note, category string) bool {
	if category == "" || category == AllCategories {
		return true
	}
	return n.Category == category
}

func matchesSearch(n core.Note, term string) bool {
	if term == "" {
		return true
	}
	needle := strings.ToLower(term)
	if strings.Contains(strings.ToLower(n.Title), needle) ||
		strings.Contains(strings.ToLower(n.Content), needle) {
		return true
	}
	for _, tag := range n.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

// CategoryCount is one entry of a per-category tally.
type CategoryCount struct {
	Name  string
	Count int
}

// CountByCategory tallies notes per category in first-appearance order.
func CountByCategory(all []core.Note) []CategoryCount {
	var counts []CategoryCount
	index := make(map[string]int)
	for _, n := range all {
		i, ok := index[n.Category]
		if !ok {
			i = len(counts)
			index[n.Category] = i
			counts = append(counts, CategoryCount{Name: n.Category})
		}
		counts[i].Count++
	}
	return counts
}
