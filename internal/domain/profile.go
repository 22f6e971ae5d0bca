package domain

import "time"

type UserType string

const (
	UserTenant   UserType = "tenant"
	UserLandlord UserType = "landlord"
	UserAgent    UserType = "agent"
	UserMover    UserType = "mover"
	UserBuyer    UserType = "buyer"
	UserSeller   UserType = "seller"
)

func IsValidUserType(s string) bool {
	switch UserType(s) {
	case UserTenant, UserLandlord, UserAgent, UserMover, UserBuyer, UserSeller:
		return true
	}
	return false
}

// UserProfile is keyed by the owning account's id, not independently
// generated.
type UserProfile struct {
	ID        string    `json:"id"`
	FullName  string    `json:"full_name"`
	Phone     string    `json:"phone,omitempty"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	UserType  UserType  `json:"user_type"`
	Verified  bool      `json:"verified"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
