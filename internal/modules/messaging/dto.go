package messaging

type CreateConversationRequest struct {
	ParticipantID string `json:"participant_id" validate:"required"`
}

type SendMessageRequest struct {
	ConversationID string `json:"conversation_id" validate:"required"`
	Content        string `json:"content" validate:"required"`
}
