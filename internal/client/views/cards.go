// Package views turns backend records into terminal output.
package views

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/peersphere/peersphere/internal/client/models"
)

// SummaryLimit is how many runes of a note body a card shows.
const SummaryLimit = 150

type Kind string

const (
	KindNote Kind = "note"
	KindDeck Kind = "deck"
)

// Card is the list representation of a note or deck. Owned cards offer
// edit and delete actions.
type Card struct {
	ID      int64
	Kind    Kind
	Title   string
	Summary string
	Meta    []string
	Owned   bool
}

// CardOptions tweaks card metadata.
type CardOptions struct {
	// ShowGroup replaces the author with the group name, for lists that
	// span several groups.
	ShowGroup bool
}

func NoteCard(n models.Note, currentUserID int64, opts CardOptions) Card {
	title := n.Title
	if title == "" {
		title = "Untitled Note"
	}

	var meta []string
	if d := displayDate(firstNonEmpty(n.UpdatedAt, n.CreatedAt)); d != "" {
		meta = append(meta, d)
	}
	if opts.ShowGroup && n.GroupName != "" {
		meta = append(meta, n.GroupName)
	} else {
		meta = append(meta, firstNonEmpty(n.UserName, n.AuthorName, "Unknown"))
	}

	return Card{
		ID:      n.NoteID,
		Kind:    KindNote,
		Title:   title,
		Summary: Truncate(n.Content, SummaryLimit),
		Meta:    meta,
		Owned:   currentUserID != 0 && n.Owner() == currentUserID,
	}
}

func DeckCard(d models.Deck, currentUserID int64, opts CardOptions) Card {
	title := d.DisplayTitle()
	if title == "" {
		title = "Untitled Deck"
	}
	summary := d.Description
	if summary == "" {
		summary = "No description"
	}

	meta := []string{fmt.Sprintf("%d cards", d.CardCount)}
	if opts.ShowGroup && d.GroupName != "" {
		meta = append(meta, d.GroupName)
	} else {
		meta = append(meta, firstNonEmpty(d.UserName, d.CreatorName, "Unknown"))
	}

	return Card{
		ID:      d.DeckID,
		Kind:    KindDeck,
		Title:   title,
		Summary: summary,
		Meta:    meta,
		Owned:   currentUserID != 0 && d.Owner() == currentUserID,
	}
}

// Truncate cuts s to limit runes and appends "..." when it was longer.
func Truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit]) + "..."
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

func parseTimestamp(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// displayDate renders a backend timestamp as "Jan 2, 2006". Unparsable
// values are shown as is.
func displayDate(s string) string {
	if s == "" {
		return ""
	}
	if t, ok := parseTimestamp(s); ok {
		return t.Format("Jan 2, 2006")
	}
	return s
}

// displayTime is displayDate with the time of day.
func displayTime(s string) string {
	if s == "" {
		return ""
	}
	if t, ok := parseTimestamp(s); ok {
		return t.Format("Jan 2, 2006 15:04")
	}
	return s
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
