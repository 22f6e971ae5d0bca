package domain

import "time"

type MarketplaceItem struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Price     float64   `json:"price"`
	Condition string    `json:"condition"`
	Location  string    `json:"location"`
	Image     string    `json:"image"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
