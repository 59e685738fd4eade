package service

import (
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"casabook/server/internal/apperrors"
	"casabook/server/internal/database"
	"casabook/server/internal/models"
)

// mockReservationStore mirrors mockPropertyStore for reservations.
type mockReservationStore struct {
	reservations map[int64]*models.Reservation
	nextID       int64
	failWith     error
}

func newMockReservationStore() *mockReservationStore {
	return &mockReservationStore{reservations: make(map[int64]*models.Reservation), nextID: 1}
}

func (m *mockReservationStore) fromInput(id int64, input *models.ReservationInput) *models.Reservation {
	status := input.Status
	if status == "" {
		status = models.StatusPending
	}
	var propertyID int64
	if input.PropertyID != nil {
		propertyID = *input.PropertyID
	}
	var total float64
	if input.TotalPrice != nil {
		total = *input.TotalPrice
	}
	return &models.Reservation{
		ID:           id,
		PropertyID:   propertyID,
		GuestName:    input.GuestName,
		GuestEmail:   input.GuestEmail,
		CheckInDate:  input.CheckInDate,
		CheckOutDate: input.CheckOutDate,
		TotalPrice:   total,
		Status:       status,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
}

func (m *mockReservationStore) CreateReservation(input *models.ReservationInput) (*models.Reservation, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	reservation := m.fromInput(m.nextID, input)
	m.reservations[m.nextID] = reservation
	m.nextID++
	return reservation, nil
}

func (m *mockReservationStore) GetAllReservations() ([]models.Reservation, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	var result []models.Reservation
	for id := int64(1); id < m.nextID; id++ {
		if r, ok := m.reservations[id]; ok {
			result = append(result, *r)
		}
	}
	return result, nil
}

func (m *mockReservationStore) GetReservationByID(id int64) (*models.Reservation, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	return m.reservations[id], nil
}

func (m *mockReservationStore) GetReservationsByPropertyID(propertyID int64) ([]models.Reservation, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	var result []models.Reservation
	for id := int64(1); id < m.nextID; id++ {
		if r, ok := m.reservations[id]; ok && r.PropertyID == propertyID {
			result = append(result, *r)
		}
	}
	return result, nil
}

func (m *mockReservationStore) UpdateReservation(id int64, input *models.ReservationInput) (*models.Reservation, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	if _, ok := m.reservations[id]; !ok {
		return nil, database.ErrRowNotFound
	}
	reservation := m.fromInput(id, input)
	m.reservations[id] = reservation
	return reservation, nil
}

func (m *mockReservationStore) DeleteReservation(id int64) (int64, error) {
	if m.failWith != nil {
		return 0, m.failWith
	}
	if _, ok := m.reservations[id]; !ok {
		return 0, nil
	}
	delete(m.reservations, id)
	return 1, nil
}

// knownProperties answers the referential lookup from a fixed id set.
type knownProperties map[int64]bool

func (k knownProperties) PropertyExists(id int64) (bool, error) {
	return k[id], nil
}

func anaInput() *models.ReservationInput {
	return &models.ReservationInput{
		PropertyID:   int64Ptr(1),
		GuestName:    "Ana",
		GuestEmail:   "ana@x.com",
		CheckInDate:  "2030-01-01",
		CheckOutDate: "2030-01-03",
		TotalPrice:   floatPtr(200),
	}
}

func newReservationService(store ReservationStore, lookup knownProperties) *ReservationService {
	return NewReservationService(store, lookup, logrus.New())
}

func TestReservationService_Create_DefaultsToPending(t *testing.T) {
	service := newReservationService(newMockReservationStore(), knownProperties{1: true})

	reservation, err := service.Create(anaInput())
	require.NoError(t, err)
	assert.Equal(t, int64(1), reservation.ID)
	assert.Equal(t, models.StatusPending, reservation.Status)
}

func TestReservationService_Create_UnknownPropertyRejected(t *testing.T) {
	store := newMockReservationStore()
	service := newReservationService(store, knownProperties{1: true})

	input := anaInput()
	input.PropertyID = int64Ptr(999)

	_, err := service.Create(input)
	require.Error(t, err)

	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "invalid property_id: property does not exist", validationErr.Error())
	assert.Empty(t, store.reservations)
}

func TestReservationService_Create_StorageFailureWrapped(t *testing.T) {
	store := newMockReservationStore()
	store.failWith = errors.New("database is locked")
	service := newReservationService(store, knownProperties{1: true})

	_, err := service.Create(anaInput())
	require.Error(t, err)

	var databaseErr *apperrors.DatabaseError
	require.ErrorAs(t, err, &databaseErr)
}

func TestReservationService_GetByID_AbsentIsNotAnError(t *testing.T) {
	service := newReservationService(newMockReservationStore(), knownProperties{})

	reservation, err := service.GetByID(7)
	require.NoError(t, err)
	assert.Nil(t, reservation)
}

func TestReservationService_GetByPropertyID(t *testing.T) {
	store := newMockReservationStore()
	service := newReservationService(store, knownProperties{1: true, 2: true})

	_, err := service.Create(anaInput())
	require.NoError(t, err)

	other := anaInput()
	other.PropertyID = int64Ptr(2)
	_, err = service.Create(other)
	require.NoError(t, err)

	reservations, err := service.GetByPropertyID(1)
	require.NoError(t, err)
	assert.Len(t, reservations, 1)
}

func TestReservationService_Update_RevalidatesReferentialCheck(t *testing.T) {
	store := newMockReservationStore()
	service := newReservationService(store, knownProperties{1: true})

	created, err := service.Create(anaInput())
	require.NoError(t, err)

	moved := anaInput()
	moved.PropertyID = int64Ptr(999)

	_, err = service.Update(created.ID, moved)
	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestReservationService_Update_MissingRowIsNotFound(t *testing.T) {
	service := newReservationService(newMockReservationStore(), knownProperties{1: true})

	_, err := service.Update(42, anaInput())
	require.Error(t, err)

	var notFoundErr *apperrors.NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
	assert.Equal(t, "Reservation not found", notFoundErr.Error())
}

func TestReservationService_Update_AnyStatusAllowed(t *testing.T) {
	service := newReservationService(newMockReservationStore(), knownProperties{1: true})

	created, err := service.Create(anaInput())
	require.NoError(t, err)

	// There is no transition graph: cancelled can go straight back to
	// confirmed through an update.
	cancelled := anaInput()
	cancelled.Status = models.StatusCancelled
	_, err = service.Update(created.ID, cancelled)
	require.NoError(t, err)

	confirmed := anaInput()
	confirmed.Status = models.StatusConfirmed
	updated, err := service.Update(created.ID, confirmed)
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, updated.Status)
}

func TestReservationService_Delete(t *testing.T) {
	service := newReservationService(newMockReservationStore(), knownProperties{1: true})

	created, err := service.Create(anaInput())
	require.NoError(t, err)

	result, err := service.Delete(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Reservation deleted successfully", result.Message)
	assert.Equal(t, int64(1), result.AffectedRows)

	result, err = service.Delete(created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), result.AffectedRows)
}
