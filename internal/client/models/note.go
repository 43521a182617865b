package models

// Note is a shared text note posted to a group.
type Note struct {
	NoteID     int64  `json:"noteId"`
	GroupID    int64  `json:"groupId,omitempty"`
	AuthorID   int64  `json:"authorId,omitempty"`
	UserID     int64  `json:"userId,omitempty"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	AuthorName string `json:"authorName,omitempty"`
	UserName   string `json:"userName,omitempty"`
	GroupName  string `json:"groupName,omitempty"`
	CreatedAt  string `json:"createdAt,omitempty"`
	UpdatedAt  string `json:"updatedAt,omitempty"`
}

// Owner returns the author's id, falling back to UserID.
func (n Note) Owner() int64 {
	if n.AuthorID != 0 {
		return n.AuthorID
	}
	return n.UserID
}

// Message is a chat line in a group.
type Message struct {
	MessageID  int64  `json:"messageId"`
	GroupID    int64  `json:"groupId,omitempty"`
	AuthorID   int64  `json:"authorId,omitempty"`
	AuthorName string `json:"authorName,omitempty"`
	Content    string `json:"content"`
	CreatedAt  string `json:"createdAt,omitempty"`
}
