package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kejaspace/internal/domain"
)

func TestMemStorage_UserIDsAreMonotonic(t *testing.T) {
	store := NewMemStorage()
	ctx := context.Background()

	first := &domain.User{Username: "first", Password: "x"}
	require.NoError(t, store.CreateUser(ctx, first))
	assert.Equal(t, int64(1), first.ID)

	second := &domain.User{Username: "second", Password: "x"}
	require.NoError(t, store.CreateUser(ctx, second))
	assert.Equal(t, int64(2), second.ID)

	// A failed create must not consume an id.
	dup := &domain.User{Username: "first", Password: "x"}
	require.Error(t, store.CreateUser(ctx, dup))

	third := &domain.User{Username: "third", Password: "x"}
	require.NoError(t, store.CreateUser(ctx, third))
	assert.Equal(t, int64(3), third.ID)
}

func TestMemStorage_UserLookup(t *testing.T) {
	store := NewMemStorage()
	ctx := context.Background()

	u := &domain.User{Username: "amina", Password: "hash"}
	require.NoError(t, store.CreateUser(ctx, u))

	byID, err := store.GetUser(ctx, u.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, "amina", byID.Username)

	byName, err := store.GetUserByUsername(ctx, "amina")
	require.NoError(t, err)
	require.NotNil(t, byName)
	assert.Equal(t, u.ID, byName.ID)

	miss, err := store.GetUser(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, miss)
}

func TestMemStorage_AccountsAndProfiles(t *testing.T) {
	store := NewMemStorage()
	ctx := context.Background()

	a := &domain.Account{Email: "jane@example.com", PasswordHash: "hash"}
	require.NoError(t, store.CreateAccount(ctx, a))
	assert.NotEmpty(t, a.ID)

	dup := &domain.Account{Email: "jane@example.com", PasswordHash: "other"}
	assert.Error(t, store.CreateAccount(ctx, dup))

	p := &domain.UserProfile{ID: a.ID, FullName: "Jane", UserType: domain.UserTenant}
	require.NoError(t, store.CreateUserProfile(ctx, p))

	p.FullName = "Jane W."
	require.NoError(t, store.UpdateUserProfile(ctx, p))

	got, err := store.GetUserProfile(ctx, a.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Jane W.", got.FullName)
}

func TestMemStorage_ListingReadsAreEmpty(t *testing.T) {
	store := NewMemStorage()
	ctx := context.Background()

	props, err := store.GetProperties(ctx, PropertyFilters{})
	require.NoError(t, err)
	require.NotNil(t, props)
	assert.Empty(t, props)

	prop, err := store.GetProperty(ctx, "any")
	require.NoError(t, err)
	assert.Nil(t, prop)

	items, err := store.GetMarketplaceItems(ctx)
	require.NoError(t, err)
	require.NotNil(t, items)
	assert.Empty(t, items)

	services, err := store.GetMovingServices(ctx)
	require.NoError(t, err)
	require.NotNil(t, services)
	assert.Empty(t, services)

	found, err := store.SearchProperties(ctx, "anything", PropertySearch{})
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestMemStorage_ListingWritesAreDisabled(t *testing.T) {
	store := NewMemStorage()
	ctx := context.Background()

	err := store.CreateProperty(ctx, &domain.Property{Title: "X", Location: "Y", Price: 1, Type: domain.PropertyRental})
	assert.ErrorIs(t, err, ErrStoreDisabled)

	err = store.CreateMarketplaceItem(ctx, &domain.MarketplaceItem{Title: "X"})
	assert.ErrorIs(t, err, ErrStoreDisabled)

	err = store.CreateBooking(ctx, &domain.Booking{UserID: "u", PropertyID: "p"})
	assert.ErrorIs(t, err, ErrStoreDisabled)

	err = store.CreateReview(ctx, &domain.Review{UserID: "u", Rating: 5})
	assert.ErrorIs(t, err, ErrStoreDisabled)

	err = store.CreateMessage(ctx, &domain.Message{ConversationID: "c", SenderID: "u", Content: "hi"})
	assert.ErrorIs(t, err, ErrStoreDisabled)
}
