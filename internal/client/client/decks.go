package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/peersphere/peersphere/internal/client/models"
)

type createDeckRequest struct {
	GroupID     int64  `json:"groupId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	CreatedBy   int64  `json:"createdBy"`
}

type updateDeckRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type createFlashcardRequest struct {
	DeckID    int64  `json:"deckId"`
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	CreatedBy int64  `json:"createdBy"`
}

type updateFlashcardRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

func (c *RESTClient) CreateDeck(ctx context.Context, groupID int64, title, description string, createdBy int64) (*models.Deck, error) {
	var d models.Deck
	req := createDeckRequest{GroupID: groupID, Title: title, Description: description, CreatedBy: createdBy}
	if err := c.call(ctx, http.MethodPost, "/decks", req, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (c *RESTClient) GetDecksByGroup(ctx context.Context, groupID int64) ([]models.Deck, error) {
	var decks []models.Deck
	if err := c.call(ctx, http.MethodGet, fmt.Sprintf("/decks/group/%d", groupID), nil, &decks); err != nil {
		return nil, err
	}
	return decks, nil
}

func (c *RESTClient) GetDeck(ctx context.Context, deckID int64) (*models.Deck, error) {
	var d models.Deck
	if err := c.call(ctx, http.MethodGet, fmt.Sprintf("/decks/%d", deckID), nil, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (c *RESTClient) UpdateDeck(ctx context.Context, deckID int64, title, description string) error {
	return c.call(ctx, http.MethodPut, fmt.Sprintf("/decks/%d", deckID), updateDeckRequest{Title: title, Description: description}, nil)
}

func (c *RESTClient) DeleteDeck(ctx context.Context, deckID int64) error {
	return c.call(ctx, http.MethodDelete, fmt.Sprintf("/decks/%d", deckID), nil, nil)
}

func (c *RESTClient) CreateFlashcard(ctx context.Context, deckID int64, question, answer string, createdBy int64) (*models.Flashcard, error) {
	var fc models.Flashcard
	req := createFlashcardRequest{DeckID: deckID, Question: question, Answer: answer, CreatedBy: createdBy}
	if err := c.call(ctx, http.MethodPost, "/flashcards", req, &fc); err != nil {
		return nil, err
	}
	return &fc, nil
}

func (c *RESTClient) GetFlashcardsByDeck(ctx context.Context, deckID int64) ([]models.Flashcard, error) {
	var cards []models.Flashcard
	if err := c.call(ctx, http.MethodGet, fmt.Sprintf("/flashcards/deck/%d", deckID), nil, &cards); err != nil {
		return nil, err
	}
	return cards, nil
}

func (c *RESTClient) GetFlashcard(ctx context.Context, cardID int64) (*models.Flashcard, error) {
	var fc models.Flashcard
	if err := c.call(ctx, http.MethodGet, fmt.Sprintf("/flashcards/%d", cardID), nil, &fc); err != nil {
		return nil, err
	}
	return &fc, nil
}

func (c *RESTClient) UpdateFlashcard(ctx context.Context, cardID int64, question, answer string) error {
	return c.call(ctx, http.MethodPut, fmt.Sprintf("/flashcards/%d", cardID), updateFlashcardRequest{Question: question, Answer: answer}, nil)
}

func (c *RESTClient) DeleteFlashcard(ctx context.Context, cardID int64) error {
	return c.call(ctx, http.MethodDelete, fmt.Sprintf("/flashcards/%d", cardID), nil, nil)
}
