package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/peersphere/peersphere/internal/client/models"
)

type createGroupRequest struct {
	Name          string `json:"name"`
	CourseCode    string `json:"courseCode"`
	CreatorUserID int64  `json:"creatorUserId"`
}

type joinGroupRequest struct {
	GroupCode string `json:"groupCode"`
}

func (c *RESTClient) CreateGroup(ctx context.Context, name, courseCode string, creatorUserID int64) (*models.Group, error) {
	var g models.Group
	req := createGroupRequest{Name: name, CourseCode: courseCode, CreatorUserID: creatorUserID}
	if err := c.call(ctx, http.MethodPost, "/groups", req, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

func (c *RESTClient) JoinGroup(ctx context.Context, userID int64, groupCode string) error {
	return c.call(ctx, http.MethodPost, fmt.Sprintf("/groups/join?userId=%d", userID), joinGroupRequest{GroupCode: groupCode}, nil)
}

func (c *RESTClient) GetUserGroups(ctx context.Context, userID int64) ([]models.Group, error) {
	var groups []models.Group
	if err := c.call(ctx, http.MethodGet, fmt.Sprintf("/groups/user/%d", userID), nil, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

func (c *RESTClient) GetGroup(ctx context.Context, groupID int64) (*models.Group, error) {
	var g models.Group
	if err := c.call(ctx, http.MethodGet, fmt.Sprintf("/groups/%d", groupID), nil, &g); err != nil {
		return nil, err
	}
	return &g, nil
}
