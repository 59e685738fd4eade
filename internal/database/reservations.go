package database

import (
	"database/sql"
	"fmt"

	"casabook/server/internal/models"
)

const reservationColumns = `
	id, property_id, guest_name, guest_email,
	check_in_date, check_out_date, total_price,
	COALESCE(status, 'pending') AS status,
	created_at, updated_at
`

func scanReservation(row rowScanner) (*models.Reservation, error) {
	var r models.Reservation
	err := row.Scan(
		&r.ID,
		&r.PropertyID,
		&r.GuestName,
		&r.GuestEmail,
		&r.CheckInDate,
		&r.CheckOutDate,
		&r.TotalPrice,
		&r.Status,
		&r.CreatedAt,
		&r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// CreateReservation inserts a reservation and returns the stored row. An
// empty status falls back to pending.
func (d *Database) CreateReservation(input *models.ReservationInput) (*models.Reservation, error) {
	status := input.Status
	if status == "" {
		status = models.StatusPending
	}

	result, err := d.db.Exec(`
		INSERT INTO reservations
		(property_id, guest_name, guest_email, check_in_date, check_out_date, total_price, status)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		input.PropertyID,
		input.GuestName,
		input.GuestEmail,
		input.CheckInDate,
		input.CheckOutDate,
		input.TotalPrice,
		status,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert reservation: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get reservation id: %w", err)
	}

	return d.GetReservationByID(id)
}

// GetAllReservations returns reservations in insertion order.
func (d *Database) GetAllReservations() ([]models.Reservation, error) {
	rows, err := d.db.Query("SELECT " + reservationColumns + " FROM reservations ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reservations []models.Reservation
	for rows.Next() {
		r, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, *r)
	}
	return reservations, rows.Err()
}

// GetReservationByID returns nil without an error when no row matches.
func (d *Database) GetReservationByID(id int64) (*models.Reservation, error) {
	row := d.db.QueryRow("SELECT "+reservationColumns+" FROM reservations WHERE id = ?", id)
	r, err := scanReservation(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

// GetReservationsByPropertyID returns the reservations for one property in
// insertion order. An unknown property id yields an empty result.
func (d *Database) GetReservationsByPropertyID(propertyID int64) ([]models.Reservation, error) {
	rows, err := d.db.Query(
		"SELECT "+reservationColumns+" FROM reservations WHERE property_id = ? ORDER BY id",
		propertyID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reservations []models.Reservation
	for rows.Next() {
		r, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, *r)
	}
	return reservations, rows.Err()
}

// UpdateReservation replaces every user-supplied column and refreshes
// updated_at. It returns ErrRowNotFound when the id matches no row.
func (d *Database) UpdateReservation(id int64, input *models.ReservationInput) (*models.Reservation, error) {
	status := input.Status
	if status == "" {
		status = models.StatusPending
	}

	result, err := d.db.Exec(`
		UPDATE reservations SET
			property_id = ?,
			guest_name = ?,
			guest_email = ?,
			check_in_date = ?,
			check_out_date = ?,
			total_price = ?,
			status = ?,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`,
		input.PropertyID,
		input.GuestName,
		input.GuestEmail,
		input.CheckInDate,
		input.CheckOutDate,
		input.TotalPrice,
		status,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update reservation: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrRowNotFound
	}

	return d.GetReservationByID(id)
}

// DeleteReservation reports the number of rows removed; 0 means the id was
// not present, which is not an error.
func (d *Database) DeleteReservation(id int64) (int64, error) {
	result, err := d.db.Exec("DELETE FROM reservations WHERE id = ?", id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete reservation: %w", err)
	}
	return result.RowsAffected()
}
