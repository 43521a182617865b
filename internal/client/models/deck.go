package models

// Deck is a named set of flashcards inside a group.
//
// Older backend versions send the deck title as Name; use DisplayTitle.
type Deck struct {
	DeckID      int64  `json:"deckId"`
	GroupID     int64  `json:"groupId,omitempty"`
	Title       string `json:"title,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	CreatedBy   int64  `json:"createdBy,omitempty"`
	UserID      int64  `json:"userId,omitempty"`
	CardCount   int    `json:"cardCount,omitempty"`
	CreatorName string `json:"creatorName,omitempty"`
	UserName    string `json:"userName,omitempty"`
	GroupName   string `json:"groupName,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
}

// DisplayTitle returns Title, falling back to Name.
func (d Deck) DisplayTitle() string {
	if d.Title != "" {
		return d.Title
	}
	return d.Name
}

// Owner returns the creating user's id, falling back to UserID.
func (d Deck) Owner() int64 {
	if d.CreatedBy != 0 {
		return d.CreatedBy
	}
	return d.UserID
}

// Flashcard is a question/answer pair in a deck.
type Flashcard struct {
	CardID    int64  `json:"cardId"`
	DeckID    int64  `json:"deckId,omitempty"`
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	CreatedBy int64  `json:"createdBy,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}
