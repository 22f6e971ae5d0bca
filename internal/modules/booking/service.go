package booking

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

// CreateBooking records a stay request against an existing property.
// No availability check: overlapping bookings are allowed, conflict
// resolution is out of scope.
func (s *Service) CreateBooking(ctx context.Context, userID string, req CreateBookingRequest) (*domain.Booking, error) {
	if !req.CheckOutDate.After(req.CheckInDate) {
		return nil, ErrInvalidDates
	}

	prop, err := s.store.GetProperty(ctx, req.PropertyID)
	if err != nil {
		return nil, err
	}
	if prop == nil {
		return nil, ErrPropertyNotFound
	}

	b := &domain.Booking{
		UserID:        userID,
		PropertyID:    req.PropertyID,
		CheckInDate:   req.CheckInDate,
		CheckOutDate:  req.CheckOutDate,
		TotalPrice:    req.TotalPrice,
		Status:        domain.BookingPending,
		PaymentStatus: domain.PaymentPending,
	}

	if err := s.store.CreateBooking(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) GetUserBookings(ctx context.Context, userID string) ([]domain.Booking, error) {
	return s.store.GetUserBookings(ctx, userID)
}

func (s *Service) CreateMovingBooking(ctx context.Context, userID string, req CreateMovingBookingRequest) (*domain.MovingBooking, error) {
	svc, err := s.store.GetMovingService(ctx, req.ServiceID)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}

	b := &domain.MovingBooking{
		UserID:         userID,
		ServiceID:      req.ServiceID,
		BookingDate:    req.BookingDate,
		FromAddress:    req.FromAddress,
		ToAddress:      req.ToAddress,
		EstimatedPrice: req.EstimatedPrice,
		Status:         domain.BookingPending,
		PaymentStatus:  domain.PaymentPending,
	}

	if err := s.store.CreateMovingBooking(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) GetUserMovingBookings(ctx context.Context, userID string) ([]domain.MovingBooking, error) {
	return s.store.GetUserMovingBookings(ctx, userID)
}
