package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/peersphere/peersphere/internal/client/models"
)

type createEventRequest struct {
	GroupID     int64  `json:"groupId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	CreatedBy   int64  `json:"createdBy"`
}

type updateEventRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
}

func (c *RESTClient) CreateEvent(ctx context.Context, groupID int64, title, description, startTime, endTime string, createdBy int64) (*models.Event, error) {
	var e models.Event
	req := createEventRequest{
		GroupID:     groupID,
		Title:       title,
		Description: description,
		StartTime:   startTime,
		EndTime:     endTime,
		CreatedBy:   createdBy,
	}
	if err := c.call(ctx, http.MethodPost, "/calendar", req, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (c *RESTClient) GetEventsByGroup(ctx context.Context, groupID int64) ([]models.Event, error) {
	var events []models.Event
	if err := c.call(ctx, http.MethodGet, fmt.Sprintf("/calendar/group/%d", groupID), nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (c *RESTClient) GetEvent(ctx context.Context, eventID int64) (*models.Event, error) {
	var e models.Event
	if err := c.call(ctx, http.MethodGet, fmt.Sprintf("/calendar/%d", eventID), nil, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (c *RESTClient) UpdateEvent(ctx context.Context, eventID int64, title, description, startTime, endTime string) error {
	req := updateEventRequest{Title: title, Description: description, StartTime: startTime, EndTime: endTime}
	return c.call(ctx, http.MethodPut, fmt.Sprintf("/calendar/%d", eventID), req, nil)
}

func (c *RESTClient) DeleteEvent(ctx context.Context, eventID int64) error {
	return c.call(ctx, http.MethodDelete, fmt.Sprintf("/calendar/%d", eventID), nil, nil)
}
