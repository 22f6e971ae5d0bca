package messaging

import (
	"context"

	"kejaspace/internal/domain"
	"kejaspace/internal/repository"
)

type Service struct {
	store repository.Storage
	hub   *Hub
}

func NewService(store repository.Storage, hub *Hub) *Service {
	return &Service{store: store, hub: hub}
}

// CreateConversation starts a conversation between the caller and another
// account. The other participant must exist and differ from the caller.
func (s *Service) CreateConversation(ctx context.Context, accountID string, req CreateConversationRequest) (*domain.Conversation, error) {
	if req.ParticipantID == accountID {
		return nil, ErrSelfConversation
	}

	other, err := s.store.GetAccount(ctx, req.ParticipantID)
	if err != nil {
		return nil, err
	}
	if other == nil {
		return nil, ErrParticipantNotFound
	}

	conv := &domain.Conversation{
		Participant1ID: accountID,
		Participant2ID: req.ParticipantID,
	}
	if err := s.store.CreateConversation(ctx, conv); err != nil {
		return nil, err
	}

	return conv, nil
}

func (s *Service) ListConversations(ctx context.Context, accountID string) ([]domain.Conversation, error) {
	return s.store.GetUserConversations(ctx, accountID)
}

// SendMessage persists a message and then pushes it to the other
// participant's websocket, if connected.
func (s *Service) SendMessage(ctx context.Context, senderID string, req SendMessageRequest) (*domain.Message, error) {
	conv, err := s.store.GetConversation(ctx, req.ConversationID)
	if err != nil {
		return nil, err
	}
	if conv == nil {
		return nil, ErrConversationNotFound
	}
	if !conv.HasParticipant(senderID) {
		return nil, ErrNotParticipant
	}

	msg := &domain.Message{
		ConversationID: conv.ID,
		SenderID:       senderID,
		Content:        req.Content,
	}
	if err := s.store.CreateMessage(ctx, msg); err != nil {
		return nil, err
	}

	if s.hub != nil {
		recipient := conv.Participant1ID
		if recipient == senderID {
			recipient = conv.Participant2ID
		}
		s.hub.SendToAccount(recipient, msg)
	}

	return msg, nil
}

func (s *Service) GetMessages(ctx context.Context, accountID, conversationID string) ([]domain.Message, error) {
	conv, err := s.store.GetConversation(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if conv == nil {
		return nil, ErrConversationNotFound
	}
	if !conv.HasParticipant(accountID) {
		return nil, ErrNotParticipant
	}

	return s.store.GetConversationMessages(ctx, conversationID)
}
