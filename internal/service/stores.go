// Package service orchestrates validate, persist and response shaping for
// the two entities. Storage access goes through narrow interfaces so tests
// can substitute in-memory stores.
package service

import "casabook/server/internal/models"

// PropertyStore is the storage contract the property service depends on.
// *database.Database satisfies it.
type PropertyStore interface {
	CreateProperty(input *models.PropertyInput) (*models.Property, error)
	GetAllProperties(page, limit int) ([]models.Property, error)
	GetPropertyByID(id int64) (*models.Property, error)
	GetPropertyWithReservations(id int64) (*models.PropertyWithReservations, error)
	UpdateProperty(id int64, input *models.PropertyInput) (*models.Property, error)
	DeleteProperty(id int64) (int64, error)
}

// ReservationStore is the storage contract the reservation service depends
// on. *database.Database satisfies it.
type ReservationStore interface {
	CreateReservation(input *models.ReservationInput) (*models.Reservation, error)
	GetAllReservations() ([]models.Reservation, error)
	GetReservationByID(id int64) (*models.Reservation, error)
	GetReservationsByPropertyID(propertyID int64) ([]models.Reservation, error)
	UpdateReservation(id int64, input *models.ReservationInput) (*models.Reservation, error)
	DeleteReservation(id int64) (int64, error)
}
