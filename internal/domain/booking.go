package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

type Booking struct {
	ID            string        `json:"id"`
	UserID        string        `json:"user_id"`
	PropertyID    string        `json:"property_id"`
	CheckInDate   time.Time     `json:"check_in_date"`
	CheckOutDate  time.Time     `json:"check_out_date"`
	TotalPrice    float64       `json:"total_price"`
	Status        BookingStatus `json:"status"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// MovingBooking is a request for a moving service on a date, not a
// stay. Separate table, separate shape.
type MovingBooking struct {
	ID             string        `json:"id"`
	UserID         string        `json:"user_id"`
	ServiceID      string        `json:"service_id"`
	BookingDate    time.Time     `json:"booking_date"`
	FromAddress    string        `json:"from_address"`
	ToAddress      string        `json:"to_address"`
	EstimatedPrice float64       `json:"estimated_price"`
	Status         BookingStatus `json:"status"`
	PaymentStatus  PaymentStatus `json:"payment_status"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}
