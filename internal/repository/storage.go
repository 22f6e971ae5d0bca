package repository

import (
	"context"
	"errors"

	"kejaspace/internal/domain"
)

// ErrStoreDisabled is returned by MemStorage for write operations that
// need a real database. Read paths degrade to empty results instead.
var ErrStoreDisabled = errors.New("listing store disabled: no database configured")

// PropertyFilters restricts GetProperties. Zero values mean no
// predicate.
type PropertyFilters struct {
	Type     string
	Featured *bool
}

// PropertySearch holds the compound filters for text search.
type PropertySearch struct {
	Type        string
	MinPrice    float64
	MaxPrice    float64
	Location    string
	MinBedrooms float64
}

// Storage is the single persistence contract. Every "get by id"
// returns (nil, nil) on miss; errors are reserved for backing-store
// failures. Every list operation returns a non-nil slice, empty when
// nothing matches.
//
// Ordering: properties, marketplace items, bookings, reviews and
// conversations are newest first (created_at descending, updated_at
// for conversations); moving services are rating descending; messages
// are oldest first.
type Storage interface {
	// Legacy users. Username lookup is exact-match byte equality in
	// both implementations.
	GetUser(ctx context.Context, id int64) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	CreateUser(ctx context.Context, u *domain.User) error

	// Accounts and profiles.
	GetAccount(ctx context.Context, id string) (*domain.Account, error)
	GetAccountByEmail(ctx context.Context, email string) (*domain.Account, error)
	CreateAccount(ctx context.Context, a *domain.Account) error
	GetUserProfile(ctx context.Context, id string) (*domain.UserProfile, error)
	CreateUserProfile(ctx context.Context, p *domain.UserProfile) error
	UpdateUserProfile(ctx context.Context, p *domain.UserProfile) error

	// Properties.
	GetProperties(ctx context.Context, f PropertyFilters) ([]domain.Property, error)
	GetProperty(ctx context.Context, id string) (*domain.Property, error)
	SearchProperties(ctx context.Context, query string, f PropertySearch) ([]domain.Property, error)
	GetPropertiesByLandlord(ctx context.Context, landlordName string) ([]domain.Property, error)
	CreateProperty(ctx context.Context, p *domain.Property) error
	UpdateProperty(ctx context.Context, p *domain.Property) error
	DeleteProperty(ctx context.Context, id string) error

	// Marketplace items.
	GetMarketplaceItems(ctx context.Context) ([]domain.MarketplaceItem, error)
	GetMarketplaceItem(ctx context.Context, id string) (*domain.MarketplaceItem, error)
	CreateMarketplaceItem(ctx context.Context, m *domain.MarketplaceItem) error

	// Moving services.
	GetMovingServices(ctx context.Context) ([]domain.MovingService, error)
	GetMovingService(ctx context.Context, id string) (*domain.MovingService, error)
	CreateMovingService(ctx context.Context, m *domain.MovingService) error

	// Bookings.
	CreateBooking(ctx context.Context, b *domain.Booking) error
	GetUserBookings(ctx context.Context, userID string) ([]domain.Booking, error)
	CreateMovingBooking(ctx context.Context, b *domain.MovingBooking) error
	GetUserMovingBookings(ctx context.Context, userID string) ([]domain.MovingBooking, error)

	// Reviews.
	CreateReview(ctx context.Context, r *domain.Review) error
	GetPropertyReviews(ctx context.Context, propertyID string) ([]domain.Review, error)
	GetMovingServiceReviews(ctx context.Context, serviceID string) ([]domain.Review, error)

	// Messaging.
	CreateConversation(ctx context.Context, c *domain.Conversation) error
	GetUserConversations(ctx context.Context, accountID string) ([]domain.Conversation, error)
	GetConversation(ctx context.Context, id string) (*domain.Conversation, error)
	CreateMessage(ctx context.Context, m *domain.Message) error
	GetConversationMessages(ctx context.Context, conversationID string) ([]domain.Message, error)
}
