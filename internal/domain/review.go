package domain

import "time"

// Review targets exactly one of property, marketplace item or moving
// service. The target columns are nullable; writers must set one.
type Review struct {
	ID                string    `json:"id"`
	UserID            string    `json:"user_id"`
	PropertyID        *string   `json:"property_id,omitempty"`
	MarketplaceItemID *string   `json:"marketplace_item_id,omitempty"`
	MovingServiceID   *string   `json:"moving_service_id,omitempty"`
	Rating            int       `json:"rating"`
	Comment           string    `json:"comment,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// TargetCount reports how many of the three target references are set.
func (r *Review) TargetCount() int {
	n := 0
	if r.PropertyID != nil {
		n++
	}
	if r.MarketplaceItemID != nil {
		n++
	}
	if r.MovingServiceID != nil {
		n++
	}
	return n
}
