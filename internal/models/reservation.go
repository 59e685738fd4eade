package models

import "time"

// Reservation statuses. Pending is the default assigned at creation when
// no status is supplied; no transition graph is enforced between them.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

type Reservation struct {
	ID           int64     `json:"id"`
	PropertyID   int64     `json:"property_id"`
	GuestName    string    `json:"guest_name"`
	GuestEmail   string    `json:"guest_email"`
	CheckInDate  string    `json:"check_in_date"`
	CheckOutDate string    `json:"check_out_date"`
	TotalPrice   float64   `json:"total_price"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ReservationInput is the payload accepted for create and update requests.
// Check-in and check-out dates travel as ISO calendar dates (YYYY-MM-DD).
type ReservationInput struct {
	PropertyID   *int64   `json:"property_id"`
	GuestName    string   `json:"guest_name"`
	GuestEmail   string   `json:"guest_email"`
	CheckInDate  string   `json:"check_in_date"`
	CheckOutDate string   `json:"check_out_date"`
	TotalPrice   *float64 `json:"total_price"`
	Status       string   `json:"status"`
}
