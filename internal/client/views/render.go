package views

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/peersphere/peersphere/internal/client/models"
)

// Renderer styles output for one writer. Colors are dropped when the
// writer is not a terminal.
type Renderer struct {
	w io.Writer

	title lipgloss.Style
	meta  lipgloss.Style
	hint  lipgloss.Style
	card  lipgloss.Style
	empty lipgloss.Style
}

func NewRenderer(w io.Writer) *Renderer {
	r := lipgloss.NewRenderer(w)
	return &Renderer{
		w:     w,
		title: r.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		meta:  r.NewStyle().Foreground(lipgloss.Color("245")),
		hint:  r.NewStyle().Foreground(lipgloss.Color("2")),
		card: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1),
		empty: r.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
	}
}

// Cards prints cards, or the empty state when there are none.
func (r *Renderer) Cards(cards []Card, emptyTitle, emptyMessage string) error {
	if len(cards) == 0 {
		return r.Empty(emptyTitle, emptyMessage)
	}
	for _, c := range cards {
		if _, err := fmt.Fprintln(r.w, r.card.Render(r.cardBody(c))); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) cardBody(c Card) string {
	lines := []string{
		r.title.Render(fmt.Sprintf("#%d %s", c.ID, c.Title)),
		c.Summary,
		r.meta.Render(strings.Join(c.Meta, " · ")),
	}
	if c.Owned {
		lines = append(lines, r.hint.Render(fmt.Sprintf("edit%s %d · del%s %d", c.Kind, c.ID, c.Kind, c.ID)))
	}
	return strings.Join(lines, "\n")
}

// Empty prints an empty-state block.
func (r *Renderer) Empty(title, message string) error {
	_, err := fmt.Fprintf(r.w, "%s\n%s\n", r.title.Render(title), r.empty.Render(message))
	return err
}

func (r *Renderer) Groups(groups []models.Group) error {
	if len(groups) == 0 {
		return r.Empty("No Study Spheres Yet", "Create one with newgroup or join with joingroup.")
	}
	for _, g := range groups {
		line := fmt.Sprintf("%s %s", r.title.Render(fmt.Sprintf("#%d %s", g.GroupID, g.Name)), r.meta.Render(g.CourseCode))
		if g.GroupCode != "" {
			line += r.meta.Render(" · code " + g.GroupCode)
		}
		if _, err := fmt.Fprintln(r.w, line); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) Flashcards(cards []models.Flashcard) error {
	if len(cards) == 0 {
		return r.Empty("No Flashcards Yet", "Add one with newcard.")
	}
	for i, c := range cards {
		body := fmt.Sprintf("%s\n%s %s\n%s %s",
			r.meta.Render(fmt.Sprintf("card %d of %d (#%d)", i+1, len(cards), c.CardID)),
			r.title.Render("Q:"), c.Question,
			r.title.Render("A:"), c.Answer)
		if _, err := fmt.Fprintln(r.w, r.card.Render(body)); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) Messages(msgs []models.Message) error {
	if len(msgs) == 0 {
		return r.Empty("No Messages Yet", "Say hello with send.")
	}
	for _, m := range msgs {
		author := firstNonEmpty(m.AuthorName, "Unknown")
		line := fmt.Sprintf("%s %s %s", r.meta.Render(displayTime(m.CreatedAt)), r.title.Render(author+":"), m.Content)
		if _, err := fmt.Fprintln(r.w, strings.TrimLeft(line, " ")); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) Events(events []models.Event) error {
	if len(events) == 0 {
		return r.Empty("No Events Yet", "Schedule one with newevent.")
	}
	for _, e := range events {
		lines := []string{
			r.title.Render(fmt.Sprintf("#%d %s", e.EventID, e.Title)),
			r.meta.Render(fmt.Sprintf("%s → %s", displayTime(e.StartTime), displayTime(e.EndTime))),
		}
		if e.Description != "" {
			lines = append(lines, e.Description)
		}
		if _, err := fmt.Fprintln(r.w, r.card.Render(strings.Join(lines, "\n"))); err != nil {
			return err
		}
	}
	return nil
}
