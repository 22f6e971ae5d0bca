package domain

import "time"

type Conversation struct {
	ID             string    `json:"id"`
	Participant1ID string    `json:"participant1_id"`
	Participant2ID string    `json:"participant2_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// HasParticipant reports whether the account takes part in the
// conversation.
func (c *Conversation) HasParticipant(accountID string) bool {
	return c.Participant1ID == accountID || c.Participant2ID == accountID
}

type Message struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversation_id"`
	SenderID       string    `json:"sender_id"`
	Content        string    `json:"content"`
	Read           bool      `json:"read"`
	CreatedAt      time.Time `json:"created_at"`
}
