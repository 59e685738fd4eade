package service

import (
	"errors"

	"github.com/sirupsen/logrus"

	"casabook/server/internal/apperrors"
	"casabook/server/internal/database"
	"casabook/server/internal/models"
	"casabook/server/internal/validation"
)

type PropertyService struct {
	store  PropertyStore
	logger *logrus.Logger
}

func NewPropertyService(store PropertyStore, logger *logrus.Logger) *PropertyService {
	return &PropertyService{store: store, logger: logger}
}

// Create validates the payload and persists it. Validation failures pass
// through untouched; storage failures come back as DatabaseError.
func (s *PropertyService) Create(input *models.PropertyInput) (*models.Property, error) {
	if err := validation.ValidateProperty(input); err != nil {
		return nil, err
	}

	property, err := s.store.CreateProperty(input)
	if err != nil {
		s.logger.WithError(err).Error("Failed to create property")
		return nil, apperrors.NewDatabaseError(err)
	}
	return property, nil
}

func (s *PropertyService) GetAll(page, limit int) ([]models.Property, error) {
	properties, err := s.store.GetAllProperties(page, limit)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list properties")
		return nil, apperrors.NewDatabaseError(err)
	}
	return properties, nil
}

// GetByID returns (nil, nil) when the id matches no property; the boundary
// decides how to surface that.
func (s *PropertyService) GetByID(id int64) (*models.Property, error) {
	property, err := s.store.GetPropertyByID(id)
	if err != nil {
		s.logger.WithError(err).Error("Failed to get property")
		return nil, apperrors.NewDatabaseError(err)
	}
	return property, nil
}

// GetWithReservations returns the property and its reservations, or
// (nil, nil) when the property does not exist.
func (s *PropertyService) GetWithReservations(id int64) (*models.PropertyWithReservations, error) {
	property, err := s.store.GetPropertyWithReservations(id)
	if err != nil {
		s.logger.WithError(err).Error("Failed to get property with reservations")
		return nil, apperrors.NewDatabaseError(err)
	}
	return property, nil
}

// Update re-validates the full payload exactly as Create does; partial
// updates are not distinguished from full replacement.
func (s *PropertyService) Update(id int64, input *models.PropertyInput) (*models.Property, error) {
	if err := validation.ValidateProperty(input); err != nil {
		return nil, err
	}

	property, err := s.store.UpdateProperty(id, input)
	if errors.Is(err, database.ErrRowNotFound) {
		return nil, apperrors.NewNotFoundError("Property not found")
	}
	if err != nil {
		s.logger.WithError(err).Error("Failed to update property")
		return nil, apperrors.NewDatabaseError(err)
	}
	return property, nil
}

// Delete reports how many rows went away; 0 affected rows is a normal
// result, not an error.
func (s *PropertyService) Delete(id int64) (*models.DeleteResult, error) {
	affected, err := s.store.DeleteProperty(id)
	if err != nil {
		s.logger.WithError(err).Error("Failed to delete property")
		return nil, apperrors.NewDatabaseError(err)
	}
	return &models.DeleteResult{
		Message:      "Property deleted successfully",
		AffectedRows: affected,
	}, nil
}
