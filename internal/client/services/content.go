package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/peersphere/peersphere/internal/client/forms"
	"github.com/peersphere/peersphere/internal/client/models"
)

// Decks

func (s *studyService) Decks(ctx context.Context, groupID int64) ([]models.Deck, error) {
	if err := s.guard(ctx); err != nil {
		return nil, err
	}
	return s.api.GetDecksByGroup(ctx, groupID)
}

// AllDecks lists the decks of every group the user belongs to, each
// stamped with its group's name.
func (s *studyService) AllDecks(ctx context.Context) ([]models.Deck, error) {
	groups, err := s.MyGroups(ctx)
	if err != nil {
		return nil, err
	}
	var all []models.Deck
	for _, g := range groups {
		decks, err := s.api.GetDecksByGroup(ctx, g.GroupID)
		if err != nil {
			return nil, fmt.Errorf("decks of group %d: %w", g.GroupID, err)
		}
		for _, d := range decks {
			d.GroupName = g.Name
			all = append(all, d)
		}
	}
	return all, nil
}

func (s *studyService) CreateDeck(ctx context.Context, groupID int64, f forms.Deck) (*models.Deck, error) {
	uid, err := s.actor(ctx)
	if err != nil {
		return nil, err
	}
	if err := forms.Validate(f); err != nil {
		return nil, err
	}
	return s.api.CreateDeck(ctx, groupID, strings.TrimSpace(f.Title), strings.TrimSpace(f.Description), uid)
}

func (s *studyService) Deck(ctx context.Context, deckID int64) (*models.Deck, error) {
	if err := s.guard(ctx); err != nil {
		return nil, err
	}
	return s.api.GetDeck(ctx, deckID)
}

func (s *studyService) UpdateDeck(ctx context.Context, deckID int64, f forms.Deck) error {
	if err := s.guard(ctx); err != nil {
		return err
	}
	if err := forms.Validate(f); err != nil {
		return err
	}
	return s.api.UpdateDeck(ctx, deckID, strings.TrimSpace(f.Title), strings.TrimSpace(f.Description))
}

func (s *studyService) DeleteDeck(ctx context.Context, deckID int64) error {
	if err := s.guard(ctx); err != nil {
		return err
	}
	return s.api.DeleteDeck(ctx, deckID)
}

// Flashcards

func (s *studyService) Flashcards(ctx context.Context, deckID int64) ([]models.Flashcard, error) {
	if err := s.guard(ctx); err != nil {
		return nil, err
	}
	return s.api.GetFlashcardsByDeck(ctx, deckID)
}

func (s *studyService) CreateFlashcard(ctx context.Context, deckID int64, f forms.Flashcard) (*models.Flashcard, error) {
	uid, err := s.actor(ctx)
	if err != nil {
		return nil, err
	}
	if err := forms.Validate(f); err != nil {
		return nil, err
	}
	return s.api.CreateFlashcard(ctx, deckID, strings.TrimSpace(f.Question), strings.TrimSpace(f.Answer), uid)
}

func (s *studyService) Flashcard(ctx context.Context, cardID int64) (*models.Flashcard, error) {
	if err := s.guard(ctx); err != nil {
		return nil, err
	}
	return s.api.GetFlashcard(ctx, cardID)
}

func (s *studyService) UpdateFlashcard(ctx context.Context, cardID int64, f forms.Flashcard) error {
	if err := s.guard(ctx); err != nil {
		return err
	}
	if err := forms.Validate(f); err != nil {
		return err
	}
	return s.api.UpdateFlashcard(ctx, cardID, strings.TrimSpace(f.Question), strings.TrimSpace(f.Answer))
}

func (s *studyService) DeleteFlashcard(ctx context.Context, cardID int64) error {
	if err := s.guard(ctx); err != nil {
		return err
	}
	return s.api.DeleteFlashcard(ctx, cardID)
}

// Notes

func (s *studyService) Notes(ctx context.Context, groupID int64) ([]models.Note, error) {
	if err := s.guard(ctx); err != nil {
		return nil, err
	}
	return s.api.GetNotesByGroup(ctx, groupID)
}

// AllNotes is AllDecks for notes.
func (s *studyService) AllNotes(ctx context.Context) ([]models.Note, error) {
	groups, err := s.MyGroups(ctx)
	if err != nil {
		return nil, err
	}
	var all []models.Note
	for _, g := range groups {
		notes, err := s.api.GetNotesByGroup(ctx, g.GroupID)
		if err != nil {
			return nil, fmt.Errorf("notes of group %d: %w", g.GroupID, err)
		}
		for _, n := range notes {
			n.GroupName = g.Name
			all = append(all, n)
		}
	}
	return all, nil
}

func (s *studyService) CreateNote(ctx context.Context, groupID int64, f forms.Note) (*models.Note, error) {
	uid, err := s.actor(ctx)
	if err != nil {
		return nil, err
	}
	if err := forms.Validate(f); err != nil {
		return nil, err
	}
	return s.api.CreateNote(ctx, groupID, uid, strings.TrimSpace(f.Title), strings.TrimSpace(f.Content))
}

func (s *studyService) Note(ctx context.Context, noteID int64) (*models.Note, error) {
	if err := s.guard(ctx); err != nil {
		return nil, err
	}
	return s.api.GetNote(ctx, noteID)
}

func (s *studyService) UpdateNote(ctx context.Context, noteID int64, f forms.Note) error {
	if err := s.guard(ctx); err != nil {
		return err
	}
	if err := forms.Validate(f); err != nil {
		return err
	}
	return s.api.UpdateNote(ctx, noteID, strings.TrimSpace(f.Title), strings.TrimSpace(f.Content))
}

func (s *studyService) DeleteNote(ctx context.Context, noteID int64) error {
	if err := s.guard(ctx); err != nil {
		return err
	}
	return s.api.DeleteNote(ctx, noteID)
}

// Calendar

func (s *studyService) Events(ctx context.Context, groupID int64) ([]models.Event, error) {
	if err := s.guard(ctx); err != nil {
		return nil, err
	}
	return s.api.GetEventsByGroup(ctx, groupID)
}

func (s *studyService) CreateEvent(ctx context.Context, groupID int64, f forms.Event) (*models.Event, error) {
	uid, err := s.actor(ctx)
	if err != nil {
		return nil, err
	}
	if err := forms.Validate(f); err != nil {
		return nil, err
	}
	return s.api.CreateEvent(ctx, groupID,
		strings.TrimSpace(f.Title), strings.TrimSpace(f.Description),
		strings.TrimSpace(f.StartTime), strings.TrimSpace(f.EndTime), uid)
}

func (s *studyService) Event(ctx context.Context, eventID int64) (*models.Event, error) {
	if err := s.guard(ctx); err != nil {
		return nil, err
	}
	return s.api.GetEvent(ctx, eventID)
}

func (s *studyService) UpdateEvent(ctx context.Context, eventID int64, f forms.Event) error {
	if err := s.guard(ctx); err != nil {
		return err
	}
	if err := forms.Validate(f); err != nil {
		return err
	}
	return s.api.UpdateEvent(ctx, eventID,
		strings.TrimSpace(f.Title), strings.TrimSpace(f.Description),
		strings.TrimSpace(f.StartTime), strings.TrimSpace(f.EndTime))
}

func (s *studyService) DeleteEvent(ctx context.Context, eventID int64) error {
	if err := s.guard(ctx); err != nil {
		return err
	}
	return s.api.DeleteEvent(ctx, eventID)
}
