package repository

import (
	"context"

	"kejaspace/internal/domain"

	"github.com/google/uuid"
)

/* ---------- BOOKINGS ---------- */

func (s *DatabaseStorage) CreateBooking(ctx context.Context, b *domain.Booking) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	m := toBookingRow(b)
	tx := s.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

func (s *DatabaseStorage) GetUserBookings(ctx context.Context, userID string) ([]domain.Booking, error) {
	var rows []bookingRow
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	bookings := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		bookings = append(bookings, *toDomainBooking(m))
	}
	return bookings, nil
}

func (s *DatabaseStorage) CreateMovingBooking(ctx context.Context, b *domain.MovingBooking) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	m := toMovingBookingRow(b)
	tx := s.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainMovingBooking(m)
	return nil
}

func (s *DatabaseStorage) GetUserMovingBookings(ctx context.Context, userID string) ([]domain.MovingBooking, error) {
	var rows []movingBookingRow
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	bookings := make([]domain.MovingBooking, 0, len(rows))
	for _, m := range rows {
		bookings = append(bookings, *toDomainMovingBooking(m))
	}
	return bookings, nil
}

/* ---------- REVIEWS ---------- */

func (s *DatabaseStorage) CreateReview(ctx context.Context, r *domain.Review) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	m := toReviewRow(r)
	tx := s.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*r = *toDomainReview(m)
	return nil
}

func (s *DatabaseStorage) GetPropertyReviews(ctx context.Context, propertyID string) ([]domain.Review, error) {
	return s.reviewsBy(ctx, "property_id = ?", propertyID)
}

func (s *DatabaseStorage) GetMovingServiceReviews(ctx context.Context, serviceID string) ([]domain.Review, error) {
	return s.reviewsBy(ctx, "moving_service_id = ?", serviceID)
}

func (s *DatabaseStorage) reviewsBy(ctx context.Context, cond string, arg string) ([]domain.Review, error) {
	var rows []reviewRow
	err := s.db.WithContext(ctx).
		Where(cond, arg).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	reviews := make([]domain.Review, 0, len(rows))
	for _, m := range rows {
		reviews = append(reviews, *toDomainReview(m))
	}
	return reviews, nil
}

/* ---------- MESSAGING ---------- */

func (s *DatabaseStorage) CreateConversation(ctx context.Context, c *domain.Conversation) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	m := conversationRow{
		ID:             c.ID,
		Participant1ID: c.Participant1ID,
		Participant2ID: c.Participant2ID,
	}
	tx := s.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*c = *toDomainConversation(m)
	return nil
}

func (s *DatabaseStorage) GetUserConversations(ctx context.Context, accountID string) ([]domain.Conversation, error) {
	var rows []conversationRow
	err := s.db.WithContext(ctx).
		Where("participant1_id = ? OR participant2_id = ?", accountID, accountID).
		Order("updated_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	convs := make([]domain.Conversation, 0, len(rows))
	for _, m := range rows {
		convs = append(convs, *toDomainConversation(m))
	}
	return convs, nil
}

func (s *DatabaseStorage) GetConversation(ctx context.Context, id string) (*domain.Conversation, error) {
	var m conversationRow
	tx := s.db.WithContext(ctx).Where("id = ?", id).First(&m)
	if tx.Error != nil {
		if isNotFound(tx.Error) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return toDomainConversation(m), nil
}

func (s *DatabaseStorage) CreateMessage(ctx context.Context, msg *domain.Message) error {
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	m := messageRow{
		ID:             msg.ID,
		ConversationID: msg.ConversationID,
		SenderID:       msg.SenderID,
		Content:        msg.Content,
		Read:           msg.Read,
	}
	tx := s.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}

	// A new message bumps the conversation for recency ordering.
	if err := s.db.WithContext(ctx).Model(&conversationRow{}).
		Where("id = ?", msg.ConversationID).
		Update("updated_at", m.CreatedAt).Error; err != nil {
		return err
	}

	*msg = *toDomainMessage(m)
	return nil
}

func (s *DatabaseStorage) GetConversationMessages(ctx context.Context, conversationID string) ([]domain.Message, error) {
	var rows []messageRow
	err := s.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	msgs := make([]domain.Message, 0, len(rows))
	for _, m := range rows {
		msgs = append(msgs, *toDomainMessage(m))
	}
	return msgs, nil
}
