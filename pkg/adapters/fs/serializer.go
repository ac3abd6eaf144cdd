package fs

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/almanac/pkg/core"
)

// Vault records are Markdown files with a YAML frontmatter block. The
// frontmatter carries every structured field; the body carries the
// free-text part of the record (event description, note content).
// Timestamps are serialized as RFC3339 strings and must round-trip
// exactly.

type eventFrontmatter struct {
	Title      string          `yaml:"title"`
	Start      string          `yaml:"start"`
	End        string          `yaml:"end"`
	Type       string          `yaml:"type"`
	Location   string          `yaml:"location,omitempty"`
	Recurring  bool            `yaml:"recurring,omitempty"`
	Recurrence *recurrenceMeta `yaml:"recurrence,omitempty"`
}

type recurrenceMeta struct {
	Frequency string `yaml:"frequency"`
	Interval  int    `yaml:"interval"`
	EndDate   string `yaml:"end_date,omitempty"`
}

type noteFrontmatter struct {
	Title     string   `yaml:"title"`
	Category  string   `yaml:"category"`
	Color     string   `yaml:"color"`
	Pinned    bool     `yaml:"pinned"`
	CreatedAt string   `yaml:"created_at"`
	UpdatedAt string   `yaml:"updated_at"`
	Tags      []string `yaml:"tags,omitempty"`
}

// serializeEvent renders an event as frontmatter + description body.
func serializeEvent(ev core.Event) ([]byte, error) {
	fm := eventFrontmatter{
		Title:     ev.Title,
		Start:     ev.Start.Format(time.RFC3339),
		End:       ev.End.Format(time.RFC3339),
		Type:      string(ev.Type),
		Location:  ev.Location,
		Recurring: ev.IsRecurring,
	}
	if ev.Recurrence != nil {
		fm.Recurrence = &recurrenceMeta{
			Frequency: string(ev.Recurrence.Frequency),
			Interval:  ev.Recurrence.Interval,
		}
		if !ev.Recurrence.EndDate.IsZero() {
			fm.Recurrence.EndDate = ev.Recurrence.EndDate.Format(time.RFC3339)
		}
	}
	return serializeFrontmatter(fm, ev.Description)
}

// parseEvent reads a vault event file. The returned event's ID is set
// by the caller from the file path.
func parseEvent(r io.Reader) (core.Event, error) {
	var fm eventFrontmatter
	body, err := parseFrontmatter(r, &fm)
	if err != nil {
		return core.Event{}, err
	}

	start, err := time.Parse(time.RFC3339, fm.Start)
	if err != nil {
		return core.Event{}, fmt.Errorf("invalid start timestamp %q: %w", fm.Start, err)
	}
	end, err := time.Parse(time.RFC3339, fm.End)
	if err != nil {
		return core.Event{}, fmt.Errorf("invalid end timestamp %q: %w", fm.End, err)
	}

	ev := core.Event{
		Title:       fm.Title,
		Start:       start,
		End:         end,
		Type:        core.EventType(fm.Type),
		Location:    fm.Location,
		Description: body,
		IsRecurring: fm.Recurring,
	}
	if fm.Recurrence != nil {
		rec := &core.Recurrence{
			Frequency: core.Frequency(fm.Recurrence.Frequency),
			Interval:  fm.Recurrence.Interval,
		}
		if fm.Recurrence.EndDate != "" {
			endDate, err := time.Parse(time.RFC3339, fm.Recurrence.EndDate)
			if err != nil {
				return core.Event{}, fmt.Errorf("invalid recurrence end date %q: %w", fm.Recurrence.EndDate, err)
			}
			rec.EndDate = endDate
		}
		ev.Recurrence = rec
	}
	return ev, nil
}

// serializeNote renders a note as frontmatter + content body.
func serializeNote(n core.Note) ([]byte, error) {
	fm := noteFrontmatter{
		Title:     n.Title,
		Category:  n.Category,
		Color:     n.Color,
		Pinned:    n.Pinned,
		CreatedAt: n.CreatedAt.Format(time.RFC3339),
		UpdatedAt: n.UpdatedAt.Format(time.RFC3339),
		Tags:      n.Tags,
	}
	return serializeFrontmatter(fm, n.Content)
}

// parseNote reads a vault note file. The returned note's ID is set by
// the caller from the file path.
func parseNote(r io.Reader) (core.Note, error) {
	var fm noteFrontmatter
	body, err := parseFrontmatter(r, &fm)
	if err != nil {
		return core.Note{}, err
	}

	createdAt, err := time.Parse(time.RFC3339, fm.CreatedAt)
	if err != nil {
		return core.Note{}, fmt.Errorf("invalid created_at timestamp %q: %w", fm.CreatedAt, err)
	}
	updatedAt, err := time.Parse(time.RFC3339, fm.UpdatedAt)
	if err != nil {
		return core.Note{}, fmt.Errorf("invalid updated_at timestamp %q: %w", fm.UpdatedAt, err)
	}

	return core.Note{
		Title:     fm.Title,
		Category:  fm.Category,
		Color:     fm.Color,
		Pinned:    fm.Pinned,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
		Tags:      fm.Tags,
		Content:   body,
	}, nil
}

func serializeFrontmatter(fm any, body string) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("---\n")
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(fm); err != nil {
		return nil, err
	}
	encoder.Close()
	buf.WriteString("---\n")
	buf.WriteString(body)
	return buf.Bytes(), nil
}

func parseFrontmatter(r io.Reader, fm any) (body string, err error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}

	if !bytes.HasPrefix(data, []byte("---\n")) && !bytes.HasPrefix(data, []byte("---\r\n")) {
		return "", fmt.Errorf("missing frontmatter block")
	}

	rest := data[3:]
	parts := bytes.SplitN(rest, []byte("---"), 2)
	if len(parts) == 1 {
		return "", fmt.Errorf("frontmatter started but no closing delimiter found")
	}

	if err := yaml.Unmarshal(parts[0], fm); err != nil {
		return "", fmt.Errorf("failed to parse frontmatter: %w", err)
	}

	body = strings.TrimPrefix(string(parts[1]), "\n")
	body = strings.TrimPrefix(body, "\r\n")
	return body, nil
}
