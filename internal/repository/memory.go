package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"kejaspace/internal/domain"

	"github.com/google/uuid"
)

// MemStorage keeps the user-oriented subset of the interface working
// with no database: legacy users, accounts and profiles live in maps.
// Listing reads return empty results; listing writes return
// ErrStoreDisabled. It never fabricates catalog data.
type MemStorage struct {
	mu        sync.RWMutex
	users     map[int64]domain.User
	usernames map[string]int64
	accounts  map[string]domain.Account
	emails    map[string]string
	profiles  map[string]domain.UserProfile
	currentID int64
}

var _ Storage = (*MemStorage)(nil)

func NewMemStorage() *MemStorage {
	return &MemStorage{
		users:     make(map[int64]domain.User),
		usernames: make(map[string]int64),
		accounts:  make(map[string]domain.Account),
		emails:    make(map[string]string),
		profiles:  make(map[string]domain.UserProfile),
		currentID: 1,
	}
}

/* ---------- LEGACY USERS ---------- */

func (s *MemStorage) GetUser(_ context.Context, id int64) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if u, ok := s.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (s *MemStorage) GetUserByUsername(_ context.Context, username string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if id, ok := s.usernames[username]; ok {
		u := s.users[id]
		return &u, nil
	}
	return nil, nil
}

func (s *MemStorage) CreateUser(_ context.Context, u *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.usernames[u.Username]; exists {
		return fmt.Errorf("username %q already taken", u.Username)
	}

	// Ids are never reused, even conceptually after deletion.
	u.ID = s.currentID
	s.currentID++

	s.users[u.ID] = *u
	s.usernames[u.Username] = u.ID
	return nil
}

/* ---------- ACCOUNTS ---------- */

func (s *MemStorage) GetAccount(_ context.Context, id string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if a, ok := s.accounts[id]; ok {
		return &a, nil
	}
	return nil, nil
}

func (s *MemStorage) GetAccountByEmail(_ context.Context, email string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if id, ok := s.emails[email]; ok {
		a := s.accounts[id]
		return &a, nil
	}
	return nil, nil
}

func (s *MemStorage) CreateAccount(_ context.Context, a *domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.emails[a.Email]; exists {
		return fmt.Errorf("email %q already registered", a.Email)
	}
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	a.CreatedAt = time.Now()

	s.accounts[a.ID] = *a
	s.emails[a.Email] = a.ID
	return nil
}

/* ---------- USER PROFILES ---------- */

func (s *MemStorage) GetUserProfile(_ context.Context, id string) (*domain.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if p, ok := s.profiles[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (s *MemStorage) CreateUserProfile(_ context.Context, p *domain.UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.profiles[p.ID]; exists {
		return fmt.Errorf("profile %q already exists", p.ID)
	}
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	s.profiles[p.ID] = *p
	return nil
}

func (s *MemStorage) UpdateUserProfile(_ context.Context, p *domain.UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.profiles[p.ID]; !exists {
		return fmt.Errorf("profile %q does not exist", p.ID)
	}
	p.UpdatedAt = time.Now()
	s.profiles[p.ID] = *p
	return nil
}

/* ---------- LISTINGS (disabled) ---------- */

func (s *MemStorage) GetProperties(context.Context, PropertyFilters) ([]domain.Property, error) {
	return []domain.Property{}, nil
}

func (s *MemStorage) GetProperty(context.Context, string) (*domain.Property, error) {
	return nil, nil
}

func (s *MemStorage) SearchProperties(context.Context, string, PropertySearch) ([]domain.Property, error) {
	return []domain.Property{}, nil
}

func (s *MemStorage) GetPropertiesByLandlord(context.Context, string) ([]domain.Property, error) {
	return []domain.Property{}, nil
}

func (s *MemStorage) CreateProperty(context.Context, *domain.Property) error {
	return ErrStoreDisabled
}

func (s *MemStorage) UpdateProperty(context.Context, *domain.Property) error {
	return ErrStoreDisabled
}

func (s *MemStorage) DeleteProperty(context.Context, string) error {
	return ErrStoreDisabled
}

func (s *MemStorage) GetMarketplaceItems(context.Context) ([]domain.MarketplaceItem, error) {
	return []domain.MarketplaceItem{}, nil
}

func (s *MemStorage) GetMarketplaceItem(context.Context, string) (*domain.MarketplaceItem, error) {
	return nil, nil
}

func (s *MemStorage) CreateMarketplaceItem(context.Context, *domain.MarketplaceItem) error {
	return ErrStoreDisabled
}

func (s *MemStorage) GetMovingServices(context.Context) ([]domain.MovingService, error) {
	return []domain.MovingService{}, nil
}

func (s *MemStorage) GetMovingService(context.Context, string) (*domain.MovingService, error) {
	return nil, nil
}

func (s *MemStorage) CreateMovingService(context.Context, *domain.MovingService) error {
	return ErrStoreDisabled
}

func (s *MemStorage) CreateBooking(context.Context, *domain.Booking) error {
	return ErrStoreDisabled
}

func (s *MemStorage) GetUserBookings(context.Context, string) ([]domain.Booking, error) {
	return []domain.Booking{}, nil
}

func (s *MemStorage) CreateMovingBooking(context.Context, *domain.MovingBooking) error {
	return ErrStoreDisabled
}

func (s *MemStorage) GetUserMovingBookings(context.Context, string) ([]domain.MovingBooking, error) {
	return []domain.MovingBooking{}, nil
}

func (s *MemStorage) CreateReview(context.Context, *domain.Review) error {
	return ErrStoreDisabled
}

func (s *MemStorage) GetPropertyReviews(context.Context, string) ([]domain.Review, error) {
	return []domain.Review{}, nil
}

func (s *MemStorage) GetMovingServiceReviews(context.Context, string) ([]domain.Review, error) {
	return []domain.Review{}, nil
}

func (s *MemStorage) CreateConversation(context.Context, *domain.Conversation) error {
	return ErrStoreDisabled
}

func (s *MemStorage) GetUserConversations(context.Context, string) ([]domain.Conversation, error) {
	return []domain.Conversation{}, nil
}

func (s *MemStorage) GetConversation(context.Context, string) (*domain.Conversation, error) {
	return nil, nil
}

func (s *MemStorage) CreateMessage(context.Context, *domain.Message) error {
	return ErrStoreDisabled
}

func (s *MemStorage) GetConversationMessages(context.Context, string) ([]domain.Message, error) {
	return []domain.Message{}, nil
}
