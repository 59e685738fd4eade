package service

import (
	"errors"

	"github.com/sirupsen/logrus"

	"casabook/server/internal/apperrors"
	"casabook/server/internal/database"
	"casabook/server/internal/models"
	"casabook/server/internal/validation"
)

type ReservationService struct {
	store      ReservationStore
	properties validation.PropertyLookup
	logger     *logrus.Logger
}

func NewReservationService(store ReservationStore, properties validation.PropertyLookup, logger *logrus.Logger) *ReservationService {
	return &ReservationService{store: store, properties: properties, logger: logger}
}

// Create validates the payload, including the referential property check,
// and persists it. A missing status comes back as pending.
func (s *ReservationService) Create(input *models.ReservationInput) (*models.Reservation, error) {
	if err := validation.ValidateReservation(input, s.properties); err != nil {
		return nil, err
	}

	reservation, err := s.store.CreateReservation(input)
	if err != nil {
		s.logger.WithError(err).Error("Failed to create reservation")
		return nil, apperrors.NewDatabaseError(err)
	}
	return reservation, nil
}

func (s *ReservationService) GetAll() ([]models.Reservation, error) {
	reservations, err := s.store.GetAllReservations()
	if err != nil {
		s.logger.WithError(err).Error("Failed to list reservations")
		return nil, apperrors.NewDatabaseError(err)
	}
	return reservations, nil
}

// GetByID returns (nil, nil) when the id matches no reservation.
func (s *ReservationService) GetByID(id int64) (*models.Reservation, error) {
	reservation, err := s.store.GetReservationByID(id)
	if err != nil {
		s.logger.WithError(err).Error("Failed to get reservation")
		return nil, apperrors.NewDatabaseError(err)
	}
	return reservation, nil
}

func (s *ReservationService) GetByPropertyID(propertyID int64) ([]models.Reservation, error) {
	reservations, err := s.store.GetReservationsByPropertyID(propertyID)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list reservations for property")
		return nil, apperrors.NewDatabaseError(err)
	}
	return reservations, nil
}

// Update re-validates the full payload exactly as Create does.
func (s *ReservationService) Update(id int64, input *models.ReservationInput) (*models.Reservation, error) {
	if err := validation.ValidateReservation(input, s.properties); err != nil {
		return nil, err
	}

	reservation, err := s.store.UpdateReservation(id, input)
	if errors.Is(err, database.ErrRowNotFound) {
		return nil, apperrors.NewNotFoundError("Reservation not found")
	}
	if err != nil {
		s.logger.WithError(err).Error("Failed to update reservation")
		return nil, apperrors.NewDatabaseError(err)
	}
	return reservation, nil
}

// Delete reports how many rows went away; 0 affected rows is a normal
// result, not an error.
func (s *ReservationService) Delete(id int64) (*models.DeleteResult, error) {
	affected, err := s.store.DeleteReservation(id)
	if err != nil {
		s.logger.WithError(err).Error("Failed to delete reservation")
		return nil, apperrors.NewDatabaseError(err)
	}
	return &models.DeleteResult{
		Message:      "Reservation deleted successfully",
		AffectedRows: affected,
	}, nil
}
