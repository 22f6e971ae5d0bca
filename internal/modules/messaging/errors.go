package messaging

import "errors"

var (
	ErrParticipantNotFound  = errors.New("participant not found")
	ErrConversationNotFound = errors.New("conversation not found")
	ErrNotParticipant       = errors.New("not a participant of this conversation")
	ErrSelfConversation     = errors.New("cannot start a conversation with yourself")
)
