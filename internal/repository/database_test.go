package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kejaspace/internal/database"
	"kejaspace/internal/domain"
)

func setupStorage(t *testing.T) *DatabaseStorage {
	t.Helper()

	db, err := database.Connect(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err, "Failed to connect to test database")

	store := NewDatabaseStorage(db)
	require.NoError(t, store.AutoMigrate())
	return store
}

func seedProperty(t *testing.T, store *DatabaseStorage, p domain.Property) domain.Property {
	t.Helper()
	if p.PriceType == "" {
		p.PriceType = domain.PricePerMonth
	}
	if p.Image == "" {
		p.Image = "https://example.com/image.jpg"
	}
	require.NoError(t, store.CreateProperty(context.Background(), &p))
	return p
}

func TestCreateProperty_AssignsIDAndRoundTrips(t *testing.T) {
	store := setupStorage(t)
	ctx := context.Background()

	p := domain.Property{
		Title:     "Modern 2BR Apartment",
		Location:  "Kilimani, Nairobi",
		Price:     65000,
		PriceType: domain.PricePerMonth,
		Bedrooms:  2,
		Bathrooms: 2,
		Area:      95,
		Image:     "https://example.com/a.jpg",
		Type:      domain.PropertyRental,
		Featured:  true,
		Management: domain.Management{
			Kind:     domain.ManagedByAgency,
			Name:     "Acme Realty",
			Verified: true,
		},
	}
	require.NoError(t, store.CreateProperty(ctx, &p))
	assert.NotEmpty(t, p.ID)

	got, err := store.GetProperty(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, p.Title, got.Title)
	assert.Equal(t, domain.ManagedByAgency, got.Management.Kind)
	assert.Equal(t, "Acme Realty", got.Management.Name)
	assert.True(t, got.Management.Verified)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestGetProperty_MissReturnsNilNil(t *testing.T) {
	store := setupStorage(t)

	got, err := store.GetProperty(context.Background(), "no-such-id")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestGetProperties_TypeFilterIsExact(t *testing.T) {
	store := setupStorage(t)
	ctx := context.Background()

	seedProperty(t, store, domain.Property{Title: "Rental A", Location: "Nairobi", Price: 100, Type: domain.PropertyRental})
	seedProperty(t, store, domain.Property{Title: "Airbnb B", Location: "Nairobi", Price: 200, Type: domain.PropertyAirbnb})
	seedProperty(t, store, domain.Property{Title: "Office C", Location: "Nairobi", Price: 300, Type: domain.PropertyOffice})

	got, err := store.GetProperties(ctx, PropertyFilters{Type: "rental"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Rental A", got[0].Title)

	all, err := store.GetProperties(ctx, PropertyFilters{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestGetProperties_FeaturedFilter(t *testing.T) {
	store := setupStorage(t)
	ctx := context.Background()

	seedProperty(t, store, domain.Property{Title: "Plain", Location: "Nairobi", Price: 100, Type: domain.PropertyRental})
	seedProperty(t, store, domain.Property{Title: "Star", Location: "Nairobi", Price: 200, Type: domain.PropertyRental, Featured: true})

	featured := true
	got, err := store.GetProperties(ctx, PropertyFilters{Featured: &featured})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Star", got[0].Title)

	notFeatured := false
	got, err = store.GetProperties(ctx, PropertyFilters{Featured: &notFeatured})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Plain", got[0].Title)
}

func TestGetProperties_OrderedByCreatedAtDesc(t *testing.T) {
	store := setupStorage(t)
	ctx := context.Background()

	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	seedProperty(t, store, domain.Property{Title: "Oldest", Location: "Nairobi", Price: 100, Type: domain.PropertyRental, CreatedAt: base})
	seedProperty(t, store, domain.Property{Title: "Newest", Location: "Nairobi", Price: 100, Type: domain.PropertyRental, CreatedAt: base.Add(2 * time.Hour)})
	seedProperty(t, store, domain.Property{Title: "Middle", Location: "Nairobi", Price: 100, Type: domain.PropertyRental, CreatedAt: base.Add(time.Hour)})

	got, err := store.GetProperties(ctx, PropertyFilters{})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Newest", got[0].Title)
	assert.Equal(t, "Middle", got[1].Title)
	assert.Equal(t, "Oldest", got[2].Title)
}

func TestSearchProperties_MatchesTitleOrLocation(t *testing.T) {
	store := setupStorage(t)
	ctx := context.Background()

	seedProperty(t, store, domain.Property{Title: "Garden Cottage", Location: "Karen, Nairobi", Price: 100, Type: domain.PropertyAirbnb})
	seedProperty(t, store, domain.Property{Title: "City Studio", Location: "Westlands, Nairobi", Price: 200, Type: domain.PropertyRental})

	// Title match, case-insensitive.
	got, err := store.SearchProperties(ctx, "garden", PropertySearch{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Garden Cottage", got[0].Title)

	// Location match.
	got, err = store.SearchProperties(ctx, "WESTLANDS", PropertySearch{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "City Studio", got[0].Title)

	// A match in either column must not duplicate the row.
	got, err = store.SearchProperties(ctx, "nairobi", PropertySearch{})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestSearchProperties_CompoundFilters(t *testing.T) {
	store := setupStorage(t)
	ctx := context.Background()

	seedProperty(t, store, domain.Property{Title: "Cheap Bedsitter", Location: "Kasarani", Price: 8000, Bedrooms: 0.75, Type: domain.PropertyRental})
	seedProperty(t, store, domain.Property{Title: "Family Home", Location: "Karen", Price: 90000, Bedrooms: 4, Type: domain.PropertyRental})
	seedProperty(t, store, domain.Property{Title: "Beach Villa", Location: "Nyali", Price: 150000, Bedrooms: 5, Type: domain.PropertyAirbnb})

	got, err := store.SearchProperties(ctx, "", PropertySearch{MinPrice: 50000, MaxPrice: 100000})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Family Home", got[0].Title)

	got, err = store.SearchProperties(ctx, "", PropertySearch{Type: "rental", MinBedrooms: 1})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Family Home", got[0].Title)

	got, err = store.SearchProperties(ctx, "", PropertySearch{Location: "ka"})
	require.NoError(t, err)
	require.Len(t, got, 2) // Kasarani and Karen, not Nyali

	// The location filter is a substring match, not a prefix match.
	got, err = store.SearchProperties(ctx, "", PropertySearch{Location: "aren"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Family Home", got[0].Title)
}

func TestUpdateProperty_RoundTrips(t *testing.T) {
	store := setupStorage(t)
	ctx := context.Background()

	p := seedProperty(t, store, domain.Property{Title: "Before", Location: "Nairobi", Price: 100, Type: domain.PropertyRental})

	p.Title = "After"
	p.Price = 250
	require.NoError(t, store.UpdateProperty(ctx, &p))

	got, err := store.GetProperty(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "After", got.Title)
	assert.Equal(t, 250.0, got.Price)
}

func TestDeleteProperty(t *testing.T) {
	store := setupStorage(t)
	ctx := context.Background()

	p := seedProperty(t, store, domain.Property{Title: "Doomed", Location: "Nairobi", Price: 100, Type: domain.PropertyRental})
	require.NoError(t, store.DeleteProperty(ctx, p.ID))

	got, err := store.GetProperty(ctx, p.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestGetPropertiesByLandlord(t *testing.T) {
	store := setupStorage(t)
	ctx := context.Background()

	seedProperty(t, store, domain.Property{
		Title: "Mine", Location: "Nairobi", Price: 100, Type: domain.PropertyRental,
		Management: domain.Management{Kind: domain.ManagedByLandlord, Name: "acct-1"},
	})
	seedProperty(t, store, domain.Property{
		Title: "Theirs", Location: "Nairobi", Price: 100, Type: domain.PropertyRental,
		Management: domain.Management{Kind: domain.ManagedByLandlord, Name: "acct-2"},
	})
	seedProperty(t, store, domain.Property{
		Title: "Agency", Location: "Nairobi", Price: 100, Type: domain.PropertyRental,
		Management: domain.Management{Kind: domain.ManagedByAgency, Name: "acct-1"},
	})

	got, err := store.GetPropertiesByLandlord(ctx, "acct-1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Mine", got[0].Title)
}

func TestMovingServices_OrderedByRatingDesc(t *testing.T) {
	store := setupStorage(t)
	ctx := context.Background()

	for _, svc := range []domain.MovingService{
		{Name: "Mid", Rating: 4.8, Location: "Nairobi"},
		{Name: "Top", Rating: 4.9, Location: "Nairobi"},
		{Name: "Low", Rating: 4.7, Location: "Mombasa"},
	} {
		s := svc
		require.NoError(t, store.CreateMovingService(ctx, &s))
	}

	got, err := store.GetMovingServices(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Top", got[0].Name)
	assert.Equal(t, "Mid", got[1].Name)
	assert.Equal(t, "Low", got[2].Name)
}

func TestMovingService_ServicesRoundTrip(t *testing.T) {
	store := setupStorage(t)
	ctx := context.Background()

	svc := domain.MovingService{
		Name:     "Swift Movers",
		Rating:   4.9,
		Location: "Nairobi",
		Services: []string{"packing", "transport", "storage"},
	}
	require.NoError(t, store.CreateMovingService(ctx, &svc))

	got, err := store.GetMovingService(ctx, svc.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, []string{"packing", "transport", "storage"}, got.Services)
}

func TestMarketplaceItems_OrderedByCreatedAtDesc(t *testing.T) {
	store := setupStorage(t)
	ctx := context.Background()

	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	for _, item := range []domain.MarketplaceItem{
		{Title: "Old Sofa", Price: 100, Category: "furniture", CreatedAt: base},
		{Title: "New TV", Price: 200, Category: "electronics", CreatedAt: base.Add(time.Hour)},
	} {
		i := item
		require.NoError(t, store.CreateMarketplaceItem(ctx, &i))
	}

	got, err := store.GetMarketplaceItems(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "New TV", got[0].Title)

	miss, err := store.GetMarketplaceItem(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, miss)
}

func TestUsers_DuplicateUsernameFails(t *testing.T) {
	store := setupStorage(t)
	ctx := context.Background()

	u := &domain.User{Username: "amina", Password: "hash"}
	require.NoError(t, store.CreateUser(ctx, u))
	assert.NotZero(t, u.ID)

	dup := &domain.User{Username: "amina", Password: "other"}
	assert.Error(t, store.CreateUser(ctx, dup))

	got, err := store.GetUserByUsername(ctx, "amina")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, u.ID, got.ID)

	// Lookup is exact, not case-folded.
	missing, err := store.GetUserByUsername(ctx, "Amina")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestAccounts_RoundTripAndEmailLookup(t *testing.T) {
	store := setupStorage(t)
	ctx := context.Background()

	a := &domain.Account{Email: "jane@example.com", PasswordHash: "hash"}
	require.NoError(t, store.CreateAccount(ctx, a))
	assert.NotEmpty(t, a.ID)

	got, err := store.GetAccountByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, a.ID, got.ID)

	miss, err := store.GetAccount(ctx, "no-such-id")
	require.NoError(t, err)
	assert.Nil(t, miss)
}

func TestUserProfile_UpdateRoundTrips(t *testing.T) {
	store := setupStorage(t)
	ctx := context.Background()

	a := &domain.Account{Email: "p@example.com", PasswordHash: "hash"}
	require.NoError(t, store.CreateAccount(ctx, a))

	p := &domain.UserProfile{ID: a.ID, FullName: "Jane", UserType: domain.UserTenant}
	require.NoError(t, store.CreateUserProfile(ctx, p))

	p.FullName = "Jane W."
	p.Phone = "+254700000000"
	require.NoError(t, store.UpdateUserProfile(ctx, p))

	got, err := store.GetUserProfile(ctx, a.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Jane W.", got.FullName)
	assert.Equal(t, "+254700000000", got.Phone)
}

func TestBookings_FilteredByUser(t *testing.T) {
	store := setupStorage(t)
	ctx := context.Background()

	now := time.Now()
	for _, b := range []domain.Booking{
		{UserID: "u1", PropertyID: "p1", CheckInDate: now, CheckOutDate: now.AddDate(0, 0, 2), TotalPrice: 100, Status: domain.BookingPending, PaymentStatus: domain.PaymentPending},
		{UserID: "u2", PropertyID: "p1", CheckInDate: now, CheckOutDate: now.AddDate(0, 0, 3), TotalPrice: 200, Status: domain.BookingPending, PaymentStatus: domain.PaymentPending},
	} {
		bk := b
		require.NoError(t, store.CreateBooking(ctx, &bk))
	}

	got, err := store.GetUserBookings(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 100.0, got[0].TotalPrice)

	empty, err := store.GetUserBookings(ctx, "u3")
	require.NoError(t, err)
	require.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestReviews_PerTarget(t *testing.T) {
	store := setupStorage(t)
	ctx := context.Background()

	propertyID := "prop-1"
	serviceID := "svc-1"
	for _, r := range []domain.Review{
		{UserID: "u1", PropertyID: &propertyID, Rating: 5, Comment: "Great place"},
		{UserID: "u2", PropertyID: &propertyID, Rating: 3},
		{UserID: "u1", MovingServiceID: &serviceID, Rating: 4},
	} {
		rv := r
		require.NoError(t, store.CreateReview(ctx, &rv))
	}

	propReviews, err := store.GetPropertyReviews(ctx, propertyID)
	require.NoError(t, err)
	assert.Len(t, propReviews, 2)

	svcReviews, err := store.GetMovingServiceReviews(ctx, serviceID)
	require.NoError(t, err)
	require.Len(t, svcReviews, 1)
	assert.Equal(t, 4, svcReviews[0].Rating)
}

func TestMessaging_MessageBumpsConversation(t *testing.T) {
	store := setupStorage(t)
	ctx := context.Background()

	first := &domain.Conversation{Participant1ID: "a", Participant2ID: "b"}
	require.NoError(t, store.CreateConversation(ctx, first))
	second := &domain.Conversation{Participant1ID: "a", Participant2ID: "c"}
	require.NoError(t, store.CreateConversation(ctx, second))

	// Backdate the first conversation, then message it; the bump
	// must put it on top again.
	past := time.Now().Add(-time.Hour)
	require.NoError(t, store.db.Model(&conversationRow{}).Where("id = ?", first.ID).Update("updated_at", past).Error)

	msg := &domain.Message{ConversationID: first.ID, SenderID: "a", Content: "hello"}
	require.NoError(t, store.CreateMessage(ctx, msg))
	assert.NotEmpty(t, msg.ID)

	convs, err := store.GetUserConversations(ctx, "a")
	require.NoError(t, err)
	require.Len(t, convs, 2)
	assert.Equal(t, first.ID, convs[0].ID)

	msgs, err := store.GetConversationMessages(ctx, first.ID)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "hello", msgs[0].Content)

	// Only participants see the conversation.
	convs, err = store.GetUserConversations(ctx, "b")
	require.NoError(t, err)
	assert.Len(t, convs, 1)
}
