package models

// Group is a study group ("sphere"). Members join with GroupCode.
type Group struct {
	GroupID       int64  `json:"groupId"`
	Name          string `json:"name"`
	CourseCode    string `json:"courseCode"`
	GroupCode     string `json:"groupCode,omitempty"`
	CreatorUserID int64  `json:"creatorUserId,omitempty"`
	CreatedAt     string `json:"createdAt,omitempty"`
}
