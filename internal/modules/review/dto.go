package review

type CreateReviewRequest struct {
	PropertyID        *string `json:"property_id,omitempty"`
	MarketplaceItemID *string `json:"marketplace_item_id,omitempty"`
	MovingServiceID   *string `json:"moving_service_id,omitempty"`
	Rating            int     `json:"rating" validate:"required,gte=1,lte=5"`
	Comment           string  `json:"comment,omitempty"`
}
