package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/peersphere/peersphere/internal/client/models"
)

type createNoteRequest struct {
	GroupID  int64  `json:"groupId"`
	AuthorID int64  `json:"authorId"`
	Title    string `json:"title"`
	Content  string `json:"content"`
}

type updateNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type sendMessageRequest struct {
	GroupID  int64  `json:"groupId"`
	AuthorID int64  `json:"authorId"`
	Content  string `json:"content"`
}

// DefaultMessageLimit is used by GetMessages when limit is not positive.
const DefaultMessageLimit = 50

func (c *RESTClient) CreateNote(ctx context.Context, groupID, authorID int64, title, content string) (*models.Note, error) {
	var n models.Note
	req := createNoteRequest{GroupID: groupID, AuthorID: authorID, Title: title, Content: content}
	if err := c.call(ctx, http.MethodPost, "/notes", req, &n); err != nil {
		return nil, err
	}
	return &n, nil
}

func (c *RESTClient) GetNotesByGroup(ctx context.Context, groupID int64) ([]models.Note, error) {
	var notes []models.Note
	if err := c.call(ctx, http.MethodGet, fmt.Sprintf("/notes/group/%d", groupID), nil, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

func (c *RESTClient) GetNote(ctx context.Context, noteID int64) (*models.Note, error) {
	var n models.Note
	if err := c.call(ctx, http.MethodGet, fmt.Sprintf("/notes/%d", noteID), nil, &n); err != nil {
		return nil, err
	}
	return &n, nil
}

func (c *RESTClient) UpdateNote(ctx context.Context, noteID int64, title, content string) error {
	return c.call(ctx, http.MethodPut, fmt.Sprintf("/notes/%d", noteID), updateNoteRequest{Title: title, Content: content}, nil)
}

func (c *RESTClient) DeleteNote(ctx context.Context, noteID int64) error {
	return c.call(ctx, http.MethodDelete, fmt.Sprintf("/notes/%d", noteID), nil, nil)
}

func (c *RESTClient) SendMessage(ctx context.Context, groupID, authorID int64, content string) (*models.Message, error) {
	var m models.Message
	req := sendMessageRequest{GroupID: groupID, AuthorID: authorID, Content: content}
	if err := c.call(ctx, http.MethodPost, "/messages", req, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (c *RESTClient) GetMessages(ctx context.Context, groupID int64, limit int) ([]models.Message, error) {
	if limit <= 0 {
		limit = DefaultMessageLimit
	}
	var msgs []models.Message
	if err := c.call(ctx, http.MethodGet, fmt.Sprintf("/messages/group/%d?limit=%d", groupID, limit), nil, &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}
