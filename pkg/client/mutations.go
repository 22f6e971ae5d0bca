package client

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"kejaspace/internal/domain"
)

type SignUpParams struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	UserType string `json:"user_type"`
	Phone    string `json:"phone,omitempty"`
}

type SignInParams struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResult struct {
	Account *domain.Account     `json:"account"`
	Profile *domain.UserProfile `json:"profile,omitempty"`
	Token   string              `json:"token"`
}

type UpdateProfileParams struct {
	FullName  *string `json:"full_name,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
	UserType  *string `json:"user_type,omitempty"`
}

type CreatePropertyParams struct {
	Title     string  `json:"title"`
	Location  string  `json:"location"`
	Price     float64 `json:"price"`
	PriceType string  `json:"price_type"`
	Bedrooms  float64 `json:"bedrooms"`
	Bathrooms float64 `json:"bathrooms"`
	Area      int     `json:"area"`
	Image     string  `json:"image"`
	Type      string  `json:"type"`
	Featured  bool    `json:"featured"`

	ManagedBy        string `json:"managed_by,omitempty"`
	LandlordName     string `json:"landlord_name,omitempty"`
	LandlordVerified bool   `json:"landlord_verified,omitempty"`
	AgencyName       string `json:"agency_name,omitempty"`
	AgencyVerified   bool   `json:"agency_verified,omitempty"`
}

type UpdatePropertyParams struct {
	Title     *string  `json:"title,omitempty"`
	Location  *string  `json:"location,omitempty"`
	Price     *float64 `json:"price,omitempty"`
	PriceType *string  `json:"price_type,omitempty"`
	Bedrooms  *float64 `json:"bedrooms,omitempty"`
	Bathrooms *float64 `json:"bathrooms,omitempty"`
	Area      *int     `json:"area,omitempty"`
	Image     *string  `json:"image,omitempty"`
	Type      *string  `json:"type,omitempty"`
	Featured  *bool    `json:"featured,omitempty"`

	ManagedBy        *string `json:"managed_by,omitempty"`
	LandlordName     *string `json:"landlord_name,omitempty"`
	LandlordVerified *bool   `json:"landlord_verified,omitempty"`
	AgencyName       *string `json:"agency_name,omitempty"`
	AgencyVerified   *bool   `json:"agency_verified,omitempty"`
}

type CreateBookingParams struct {
	PropertyID   string    `json:"property_id"`
	CheckInDate  time.Time `json:"check_in_date"`
	CheckOutDate time.Time `json:"check_out_date"`
	TotalPrice   float64   `json:"total_price"`
}

type CreateMovingBookingParams struct {
	ServiceID      string    `json:"service_id"`
	BookingDate    time.Time `json:"booking_date"`
	FromAddress    string    `json:"from_address"`
	ToAddress      string    `json:"to_address"`
	EstimatedPrice float64   `json:"estimated_price"`
}

type CreateReviewParams struct {
	PropertyID        *string `json:"property_id,omitempty"`
	MarketplaceItemID *string `json:"marketplace_item_id,omitempty"`
	MovingServiceID   *string `json:"moving_service_id,omitempty"`
	Rating            int     `json:"rating"`
	Comment           string  `json:"comment,omitempty"`
}

type CreateConversationParams struct {
	ParticipantID string `json:"participant_id"`
}

type SendMessageParams struct {
	ConversationID string `json:"conversation_id"`
	Content        string `json:"content"`
}

// SignUp registers an account and stores the returned token on the
// client for subsequent requests.
func (c *Client) SignUp(ctx context.Context, params SignUpParams) (AuthResult, error) {
	result, err := doJSON[AuthResult](ctx, c, http.MethodPost, "/api/auth/signup", params)
	if err != nil {
		return AuthResult{}, err
	}
	c.SetToken(result.Token)
	return result, nil
}

// SignIn authenticates and stores the returned token on the client.
func (c *Client) SignIn(ctx context.Context, params SignInParams) (AuthResult, error) {
	result, err := doJSON[AuthResult](ctx, c, http.MethodPost, "/api/auth/signin", params)
	if err != nil {
		return AuthResult{}, err
	}
	c.SetToken(result.Token)
	return result, nil
}

// SignOut tells the server and clears the local token. The server
// call is best effort; the token is cleared regardless.
func (c *Client) SignOut(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodPost, "/api/auth/signout", nil, nil)
	c.SetToken("")
	return err
}

func (c *Client) UpdateProfile(ctx context.Context, params UpdateProfileParams) (domain.UserProfile, error) {
	return doJSON[domain.UserProfile](ctx, c, http.MethodPatch, "/api/auth/profile", params)
}

func (c *Client) CreateProperty(ctx context.Context, params CreatePropertyParams) (domain.Property, error) {
	return doJSON[domain.Property](ctx, c, http.MethodPost, "/api/properties", params)
}

func (c *Client) UpdateProperty(ctx context.Context, id string, params UpdatePropertyParams) (domain.Property, error) {
	return doJSON[domain.Property](ctx, c, http.MethodPatch, "/api/properties/"+url.PathEscape(id), params)
}

func (c *Client) DeleteProperty(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/properties/"+url.PathEscape(id), nil, nil)
	return err
}

func (c *Client) CreateBooking(ctx context.Context, params CreateBookingParams) (domain.Booking, error) {
	return doJSON[domain.Booking](ctx, c, http.MethodPost, "/api/bookings", params)
}

func (c *Client) CreateMovingBooking(ctx context.Context, params CreateMovingBookingParams) (domain.MovingBooking, error) {
	return doJSON[domain.MovingBooking](ctx, c, http.MethodPost, "/api/moving-bookings", params)
}

func (c *Client) CreateReview(ctx context.Context, params CreateReviewParams) (domain.Review, error) {
	return doJSON[domain.Review](ctx, c, http.MethodPost, "/api/reviews", params)
}

func (c *Client) CreateConversation(ctx context.Context, params CreateConversationParams) (domain.Conversation, error) {
	return doJSON[domain.Conversation](ctx, c, http.MethodPost, "/api/conversations", params)
}

func (c *Client) SendMessage(ctx context.Context, params SendMessageParams) (domain.Message, error) {
	return doJSON[domain.Message](ctx, c, http.MethodPost, "/api/messages", params)
}
