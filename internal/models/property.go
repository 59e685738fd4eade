package models

import "time"

type Property struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Address       string    `json:"address"`
	PricePerNight float64   `json:"price_per_night"`
	Bedrooms      *int      `json:"bedrooms"`
	Bathrooms     *int      `json:"bathrooms"`
	MaxGuests     *int      `json:"max_guests"`
	Amenities     string    `json:"amenities"`
	ImageURL      string    `json:"image_url"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// PropertyInput is the payload accepted for create and update requests.
// Numeric fields where the validator must tell "absent" apart from "zero"
// are pointers.
type PropertyInput struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Address       string   `json:"address"`
	PricePerNight *float64 `json:"price_per_night"`
	Bedrooms      *int     `json:"bedrooms"`
	Bathrooms     *int     `json:"bathrooms"`
	MaxGuests     *int     `json:"max_guests"`
	Amenities     string   `json:"amenities"`
	ImageURL      string   `json:"image_url"`
}

type PropertyWithReservations struct {
	Property
	Reservations []Reservation `json:"reservations"`
}

// DeleteResult mirrors the delete response shape: AffectedRows is 0 when
// the id did not match any row, which is a normal outcome rather than an error.
type DeleteResult struct {
	Message      string `json:"message"`
	AffectedRows int64  `json:"affectedRows"`
}
