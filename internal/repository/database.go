package repository

import (
	"context"
	"errors"

	"kejaspace/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DatabaseStorage satisfies Storage against a relational store via
// gorm. A miss maps gorm.ErrRecordNotFound to (nil, nil); every other
// error propagates untranslated.
type DatabaseStorage struct {
	db *gorm.DB
}

var _ Storage = (*DatabaseStorage)(nil)

func NewDatabaseStorage(db *gorm.DB) *DatabaseStorage {
	return &DatabaseStorage{db: db}
}

// AutoMigrate creates or updates every table the storage layer owns.
func (s *DatabaseStorage) AutoMigrate() error {
	return s.db.AutoMigrate(
		&userRow{},
		&accountRow{},
		&userProfileRow{},
		&propertyRow{},
		&marketplaceItemRow{},
		&movingServiceRow{},
		&bookingRow{},
		&movingBookingRow{},
		&reviewRow{},
		&conversationRow{},
		&messageRow{},
	)
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

/* ---------- LEGACY USERS ---------- */

func (s *DatabaseStorage) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	var m userRow
	tx := s.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		if isNotFound(tx.Error) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return toDomainUser(m), nil
}

func (s *DatabaseStorage) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	var m userRow
	tx := s.db.WithContext(ctx).Where("username = ?", username).First(&m)
	if tx.Error != nil {
		if isNotFound(tx.Error) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return toDomainUser(m), nil
}

func (s *DatabaseStorage) CreateUser(ctx context.Context, u *domain.User) error {
	m := userRow{Username: u.Username, Password: u.Password}
	tx := s.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		// Uniqueness violations included: the caller must see them.
		return tx.Error
	}
	*u = *toDomainUser(m)
	return nil
}

/* ---------- ACCOUNTS ---------- */

func (s *DatabaseStorage) GetAccount(ctx context.Context, id string) (*domain.Account, error) {
	var m accountRow
	tx := s.db.WithContext(ctx).Where("id = ?", id).First(&m)
	if tx.Error != nil {
		if isNotFound(tx.Error) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return toDomainAccount(m), nil
}

func (s *DatabaseStorage) GetAccountByEmail(ctx context.Context, email string) (*domain.Account, error) {
	var m accountRow
	tx := s.db.WithContext(ctx).Where("email = ?", email).First(&m)
	if tx.Error != nil {
		if isNotFound(tx.Error) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return toDomainAccount(m), nil
}

func (s *DatabaseStorage) CreateAccount(ctx context.Context, a *domain.Account) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	m := accountRow{ID: a.ID, Email: a.Email, PasswordHash: a.PasswordHash}
	tx := s.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*a = *toDomainAccount(m)
	return nil
}

/* ---------- USER PROFILES ---------- */

func (s *DatabaseStorage) GetUserProfile(ctx context.Context, id string) (*domain.UserProfile, error) {
	var m userProfileRow
	tx := s.db.WithContext(ctx).Where("id = ?", id).First(&m)
	if tx.Error != nil {
		if isNotFound(tx.Error) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return toDomainProfile(m), nil
}

func (s *DatabaseStorage) CreateUserProfile(ctx context.Context, p *domain.UserProfile) error {
	m := toProfileRow(p)
	tx := s.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*p = *toDomainProfile(m)
	return nil
}

func (s *DatabaseStorage) UpdateUserProfile(ctx context.Context, p *domain.UserProfile) error {
	m := toProfileRow(p)
	tx := s.db.WithContext(ctx).Save(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*p = *toDomainProfile(m)
	return nil
}
