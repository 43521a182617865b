package client

import (
	"context"

	"github.com/peersphere/peersphere/internal/client/models"
)

// Client is the PeerSphere backend contract, one method per endpoint.
type Client interface {
	Health(ctx context.Context) (string, error)

	Register(ctx context.Context, name, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, error)

	CreateGroup(ctx context.Context, name, courseCode string, creatorUserID int64) (*models.Group, error)
	JoinGroup(ctx context.Context, userID int64, groupCode string) error
	GetUserGroups(ctx context.Context, userID int64) ([]models.Group, error)
	GetGroup(ctx context.Context, groupID int64) (*models.Group, error)

	CreateDeck(ctx context.Context, groupID int64, title, description string, createdBy int64) (*models.Deck, error)
	GetDecksByGroup(ctx context.Context, groupID int64) ([]models.Deck, error)
	GetDeck(ctx context.Context, deckID int64) (*models.Deck, error)
	UpdateDeck(ctx context.Context, deckID int64, title, description string) error
	DeleteDeck(ctx context.Context, deckID int64) error

	CreateFlashcard(ctx context.Context, deckID int64, question, answer string, createdBy int64) (*models.Flashcard, error)
	GetFlashcardsByDeck(ctx context.Context, deckID int64) ([]models.Flashcard, error)
	GetFlashcard(ctx context.Context, cardID int64) (*models.Flashcard, error)
	UpdateFlashcard(ctx context.Context, cardID int64, question, answer string) error
	DeleteFlashcard(ctx context.Context, cardID int64) error

	CreateNote(ctx context.Context, groupID, authorID int64, title, content string) (*models.Note, error)
	GetNotesByGroup(ctx context.Context, groupID int64) ([]models.Note, error)
	GetNote(ctx context.Context, noteID int64) (*models.Note, error)
	UpdateNote(ctx context.Context, noteID int64, title, content string) error
	DeleteNote(ctx context.Context, noteID int64) error

	SendMessage(ctx context.Context, groupID, authorID int64, content string) (*models.Message, error)
	GetMessages(ctx context.Context, groupID int64, limit int) ([]models.Message, error)

	CreateEvent(ctx context.Context, groupID int64, title, description, startTime, endTime string, createdBy int64) (*models.Event, error)
	GetEventsByGroup(ctx context.Context, groupID int64) ([]models.Event, error)
	GetEvent(ctx context.Context, eventID int64) (*models.Event, error)
	UpdateEvent(ctx context.Context, eventID int64, title, description, startTime, endTime string) error
	DeleteEvent(ctx context.Context, eventID int64) error
}

var _ Client = (*RESTClient)(nil)
