package models

// Event is a calendar entry of a group. StartTime and EndTime are passed
// through in the backend's format (ISO 8601).
type Event struct {
	EventID     int64  `json:"eventId"`
	GroupID     int64  `json:"groupId,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	CreatedBy   int64  `json:"createdBy,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
}
