package review

import (
	"context"

	"kejaspace/internal/domain"
	"kejaspace/internal/repository"
)

type Service struct {
	store repository.Storage
}

func NewService(store repository.Storage) *Service {
	return &Service{store: store}
}

// Create stores a review after checking that exactly one target is
// referenced and that it exists.
func (s *Service) Create(ctx context.Context, userID string, req CreateReviewRequest) (*domain.Review, error) {
	rv := &domain.Review{
		UserID:            userID,
		PropertyID:        req.PropertyID,
		MarketplaceItemID: req.MarketplaceItemID,
		MovingServiceID:   req.MovingServiceID,
		Rating:            req.Rating,
		Comment:           req.Comment,
	}

	if rv.TargetCount() != 1 {
		return nil, ErrInvalidTarget
	}

	switch {
	case rv.PropertyID != nil:
		p, err := s.store.GetProperty(ctx, *rv.PropertyID)
		if err != nil {
			return nil, err
		}
		if p == nil {
			return nil, ErrTargetNotFound
		}
	case rv.MarketplaceItemID != nil:
		i, err := s.store.GetMarketplaceItem(ctx, *rv.MarketplaceItemID)
		if err != nil {
			return nil, err
		}
		if i == nil {
			return nil, ErrTargetNotFound
		}
	case rv.MovingServiceID != nil:
		m, err := s.store.GetMovingService(ctx, *rv.MovingServiceID)
		if err != nil {
			return nil, err
		}
		if m == nil {
			return nil, ErrTargetNotFound
		}
	}

	if err := s.store.CreateReview(ctx, rv); err != nil {
		return nil, err
	}
	return rv, nil
}

func (s *Service) GetPropertyReviews(ctx context.Context, propertyID string) ([]domain.Review, error) {
	return s.store.GetPropertyReviews(ctx, propertyID)
}

func (s *Service) GetMovingServiceReviews(ctx context.Context, serviceID string) ([]domain.Review, error) {
	return s.store.GetMovingServiceReviews(ctx, serviceID)
}
