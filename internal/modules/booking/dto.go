package booking

import "time"

type CreateBookingRequest struct {
	PropertyID   string    `json:"property_id" validate:"required"`
	CheckInDate  time.Time `json:"check_in_date" validate:"required"`
	CheckOutDate time.Time `json:"check_out_date" validate:"required"`
	TotalPrice   float64   `json:"total_price" validate:"required,gt=0"`
}

type CreateMovingBookingRequest struct {
	ServiceID      string    `json:"service_id" validate:"required"`
	BookingDate    time.Time `json:"booking_date" validate:"required"`
	FromAddress    string    `json:"from_address" validate:"required"`
	ToAddress      string    `json:"to_address" validate:"required"`
	EstimatedPrice float64   `json:"estimated_price" validate:"required,gt=0"`
}
