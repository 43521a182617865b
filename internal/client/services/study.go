package services

import (
	"context"
	"strings"

	"github.com/peersphere/peersphere/internal/client/client"
	"github.com/peersphere/peersphere/internal/client/forms"
	"github.com/peersphere/peersphere/internal/client/models"
	"github.com/peersphere/peersphere/internal/client/session"
	"github.com/peersphere/peersphere/internal/common"
	"github.com/peersphere/peersphere/internal/logging"
)

// StudyService holds the command handlers behind the study workspace:
// groups, decks, flashcards, notes, messages and calendar events.
//
// Every method requires a session and returns common.ErrNotAuthenticated,
// without calling the backend, when there is none. Form input is
// validated and trimmed before it is sent.
type StudyService interface {
	CreateGroup(ctx context.Context, f forms.Group) (*models.Group, error)
	JoinGroup(ctx context.Context, f forms.JoinGroup) error
	MyGroups(ctx context.Context) ([]models.Group, error)
	Group(ctx context.Context, groupID int64) (*models.Group, error)

	Decks(ctx context.Context, groupID int64) ([]models.Deck, error)
	AllDecks(ctx context.Context) ([]models.Deck, error)
	CreateDeck(ctx context.Context, groupID int64, f forms.Deck) (*models.Deck, error)
	Deck(ctx context.Context, deckID int64) (*models.Deck, error)
	UpdateDeck(ctx context.Context, deckID int64, f forms.Deck) error
	DeleteDeck(ctx context.Context, deckID int64) error

	Flashcards(ctx context.Context, deckID int64) ([]models.Flashcard, error)
	CreateFlashcard(ctx context.Context, deckID int64, f forms.Flashcard) (*models.Flashcard, error)
	Flashcard(ctx context.Context, cardID int64) (*models.Flashcard, error)
	UpdateFlashcard(ctx context.Context, cardID int64, f forms.Flashcard) error
	DeleteFlashcard(ctx context.Context, cardID int64) error

	Notes(ctx context.Context, groupID int64) ([]models.Note, error)
	AllNotes(ctx context.Context) ([]models.Note, error)
	CreateNote(ctx context.Context, groupID int64, f forms.Note) (*models.Note, error)
	Note(ctx context.Context, noteID int64) (*models.Note, error)
	UpdateNote(ctx context.Context, noteID int64, f forms.Note) error
	DeleteNote(ctx context.Context, noteID int64) error

	Messages(ctx context.Context, groupID int64) ([]models.Message, error)
	SendMessage(ctx context.Context, groupID int64, f forms.Message) (*models.Message, error)

	Events(ctx context.Context, groupID int64) ([]models.Event, error)
	CreateEvent(ctx context.Context, groupID int64, f forms.Event) (*models.Event, error)
	Event(ctx context.Context, eventID int64) (*models.Event, error)
	UpdateEvent(ctx context.Context, eventID int64, f forms.Event) error
	DeleteEvent(ctx context.Context, eventID int64) error
}

type studyService struct {
	api          client.Client
	store        *session.Store
	messageLimit int
	log          logging.Logger
}

// NewStudyService constructs a StudyService. messageLimit bounds how many
// chat messages are fetched per group; values ≤ 0 use the client default.
func NewStudyService(api client.Client, store *session.Store, messageLimit int, log logging.Logger) StudyService {
	if log == nil {
		log = logging.Discard()
	}
	return &studyService{api: api, store: store, messageLimit: messageLimit, log: log}
}

// actor returns the id of the logged-in user.
func (s *studyService) actor(ctx context.Context) (int64, error) {
	id, ok := s.store.UserID(ctx)
	if !ok {
		return 0, common.ErrNotAuthenticated
	}
	return id, nil
}

// guard is actor for handlers that only need a session to exist.
func (s *studyService) guard(ctx context.Context) error {
	_, err := s.actor(ctx)
	return err
}

func (s *studyService) CreateGroup(ctx context.Context, f forms.Group) (*models.Group, error) {
	uid, err := s.actor(ctx)
	if err != nil {
		return nil, err
	}
	if err := forms.Validate(f); err != nil {
		return nil, err
	}
	g, err := s.api.CreateGroup(ctx, strings.TrimSpace(f.Name), strings.TrimSpace(f.CourseCode), uid)
	if err != nil {
		return nil, err
	}
	s.log.Info(ctx, "group created", "group_id", g.GroupID)
	return g, nil
}

func (s *studyService) JoinGroup(ctx context.Context, f forms.JoinGroup) error {
	uid, err := s.actor(ctx)
	if err != nil {
		return err
	}
	if err := forms.Validate(f); err != nil {
		return err
	}
	return s.api.JoinGroup(ctx, uid, strings.TrimSpace(f.GroupCode))
}

func (s *studyService) MyGroups(ctx context.Context) ([]models.Group, error) {
	uid, err := s.actor(ctx)
	if err != nil {
		return nil, err
	}
	return s.api.GetUserGroups(ctx, uid)
}

func (s *studyService) Group(ctx context.Context, groupID int64) (*models.Group, error) {
	if err := s.guard(ctx); err != nil {
		return nil, err
	}
	return s.api.GetGroup(ctx, groupID)
}

func (s *studyService) Messages(ctx context.Context, groupID int64) ([]models.Message, error) {
	if err := s.guard(ctx); err != nil {
		return nil, err
	}
	return s.api.GetMessages(ctx, groupID, s.messageLimit)
}

func (s *studyService) SendMessage(ctx context.Context, groupID int64, f forms.Message) (*models.Message, error) {
	uid, err := s.actor(ctx)
	if err != nil {
		return nil, err
	}
	if err := forms.Validate(f); err != nil {
		return nil, err
	}
	return s.api.SendMessage(ctx, groupID, uid, strings.TrimSpace(f.Content))
}
