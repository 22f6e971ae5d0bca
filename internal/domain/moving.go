package domain

import "time"

type MovingService struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Rating     float64   `json:"rating"`
	Reviews    int       `json:"reviews"`
	Location   string    `json:"location"`
	Services   []string  `json:"services"`
	PriceRange string    `json:"price_range"`
	Verified   bool      `json:"verified"`
	Image      string    `json:"image"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
