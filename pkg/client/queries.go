package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"kejaspace/internal/domain"
)

// PropertySearchParams are the compound filters accepted by the
// property search endpoint. Zero values are omitted from the request.
type PropertySearchParams struct {
	Query       string
	Type        string
	MinPrice    float64
	MaxPrice    float64
	Location    string
	MinBedrooms float64
}

// GetProperties fetches the property collection, optionally filtered
// by type. Pass the empty string for all types.
func (c *Client) GetProperties(ctx context.Context, propertyType string) ([]domain.Property, error) {
	query := url.Values{}
	if propertyType != "" {
		query.Set("type", propertyType)
	}
	return getJSON[[]domain.Property](ctx, c, "/api/properties", query)
}

// GetFeaturedProperties fetches properties flagged for the landing
// page, optionally narrowed by type.
func (c *Client) GetFeaturedProperties(ctx context.Context, propertyType string) ([]domain.Property, error) {
	query := url.Values{}
	query.Set("featured", "true")
	if propertyType != "" {
		query.Set("type", propertyType)
	}
	return getJSON[[]domain.Property](ctx, c, "/api/properties", query)
}

func (c *Client) GetProperty(ctx context.Context, id string) (domain.Property, error) {
	return getJSON[domain.Property](ctx, c, "/api/properties/"+url.PathEscape(id), nil)
}

func (c *Client) SearchProperties(ctx context.Context, params PropertySearchParams) ([]domain.Property, error) {
	query := url.Values{}
	if params.Query != "" {
		query.Set("q", params.Query)
	}
	if params.Type != "" {
		query.Set("type", params.Type)
	}
	if params.MinPrice > 0 {
		query.Set("min_price", fmt.Sprintf("%g", params.MinPrice))
	}
	if params.MaxPrice > 0 {
		query.Set("max_price", fmt.Sprintf("%g", params.MaxPrice))
	}
	if params.Location != "" {
		query.Set("location", params.Location)
	}
	if params.MinBedrooms > 0 {
		query.Set("bedrooms", fmt.Sprintf("%g", params.MinBedrooms))
	}
	return getJSON[[]domain.Property](ctx, c, "/api/properties/search", query)
}

// GetMyProperties lists properties managed by the authenticated
// landlord.
func (c *Client) GetMyProperties(ctx context.Context) ([]domain.Property, error) {
	return getJSON[[]domain.Property](ctx, c, "/api/my/properties", nil)
}

func (c *Client) GetMarketplaceItems(ctx context.Context) ([]domain.MarketplaceItem, error) {
	return getJSON[[]domain.MarketplaceItem](ctx, c, "/api/marketplace-items", nil)
}

func (c *Client) GetMarketplaceItem(ctx context.Context, id string) (domain.MarketplaceItem, error) {
	return getJSON[domain.MarketplaceItem](ctx, c, "/api/marketplace-items/"+url.PathEscape(id), nil)
}

func (c *Client) GetMovingServices(ctx context.Context) ([]domain.MovingService, error) {
	return getJSON[[]domain.MovingService](ctx, c, "/api/moving-services", nil)
}

func (c *Client) GetMovingService(ctx context.Context, id string) (domain.MovingService, error) {
	return getJSON[domain.MovingService](ctx, c, "/api/moving-services/"+url.PathEscape(id), nil)
}

func (c *Client) GetPropertyReviews(ctx context.Context, propertyID string) ([]domain.Review, error) {
	return getJSON[[]domain.Review](ctx, c, "/api/properties/"+url.PathEscape(propertyID)+"/reviews", nil)
}

func (c *Client) GetMovingServiceReviews(ctx context.Context, serviceID string) ([]domain.Review, error) {
	return getJSON[[]domain.Review](ctx, c, "/api/moving-services/"+url.PathEscape(serviceID)+"/reviews", nil)
}

// Me fetches the authenticated account. Account data is never cached.
func (c *Client) Me(ctx context.Context) (domain.Account, error) {
	return doJSON[domain.Account](ctx, c, http.MethodGet, "/api/auth/me", nil)
}

func (c *Client) GetProfile(ctx context.Context) (domain.UserProfile, error) {
	return doJSON[domain.UserProfile](ctx, c, http.MethodGet, "/api/auth/profile", nil)
}

func (c *Client) GetBookings(ctx context.Context) ([]domain.Booking, error) {
	return doJSON[[]domain.Booking](ctx, c, http.MethodGet, "/api/bookings", nil)
}

func (c *Client) GetMovingBookings(ctx context.Context) ([]domain.MovingBooking, error) {
	return doJSON[[]domain.MovingBooking](ctx, c, http.MethodGet, "/api/moving-bookings", nil)
}

func (c *Client) GetConversations(ctx context.Context) ([]domain.Conversation, error) {
	return doJSON[[]domain.Conversation](ctx, c, http.MethodGet, "/api/conversations", nil)
}

func (c *Client) GetConversationMessages(ctx context.Context, conversationID string) ([]domain.Message, error) {
	return doJSON[[]domain.Message](ctx, c, http.MethodGet, "/api/conversations/"+url.PathEscape(conversationID)+"/messages", nil)
}
