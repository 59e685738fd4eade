package database

import (
	"database/sql"
	"errors"
	"fmt"

	"casabook/server/internal/models"
)

// ErrRowNotFound is returned by updates against an id that matches no row.
// Lookups signal the same condition with a nil record instead, so callers
// can tell "not found" apart from a storage failure.
var ErrRowNotFound = errors.New("row not found")

const propertyColumns = `
	id, title, COALESCE(description, '') AS description, address,
	price_per_night, bedrooms, bathrooms, max_guests,
	COALESCE(amenities, '') AS amenities, COALESCE(image_url, '') AS image_url,
	created_at, updated_at
`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProperty(row rowScanner) (*models.Property, error) {
	var p models.Property
	var bedrooms, bathrooms, maxGuests sql.NullInt64

	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&p.Address,
		&p.PricePerNight,
		&bedrooms,
		&bathrooms,
		&maxGuests,
		&p.Amenities,
		&p.ImageURL,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if bedrooms.Valid {
		v := int(bedrooms.Int64)
		p.Bedrooms = &v
	}
	if bathrooms.Valid {
		v := int(bathrooms.Int64)
		p.Bathrooms = &v
	}
	if maxGuests.Valid {
		v := int(maxGuests.Int64)
		p.MaxGuests = &v
	}

	return &p, nil
}

// CreateProperty inserts a property and returns the stored row, including
// the assigned id and timestamps.
func (d *Database) CreateProperty(input *models.PropertyInput) (*models.Property, error) {
	result, err := d.db.Exec(`
		INSERT INTO properties
		(title, description, address, price_per_night, bedrooms, bathrooms, max_guests, amenities, image_url)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		input.Title,
		input.Description,
		input.Address,
		input.PricePerNight,
		input.Bedrooms,
		input.Bathrooms,
		input.MaxGuests,
		input.Amenities,
		input.ImageURL,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert property: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get property id: %w", err)
	}

	return d.GetPropertyByID(id)
}

// GetAllProperties returns properties in insertion order. A limit of 0
// returns the full set; otherwise page (1-based) and limit select a window.
func (d *Database) GetAllProperties(page, limit int) ([]models.Property, error) {
	query := "SELECT " + propertyColumns + " FROM properties ORDER BY id"
	var args []interface{}
	if limit > 0 {
		if page < 1 {
			page = 1
		}
		query += " LIMIT ? OFFSET ?"
		args = append(args, limit, (page-1)*limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var properties []models.Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		properties = append(properties, *p)
	}
	return properties, rows.Err()
}

// GetPropertyByID returns nil without an error when no row matches.
func (d *Database) GetPropertyByID(id int64) (*models.Property, error) {
	row := d.db.QueryRow("SELECT "+propertyColumns+" FROM properties WHERE id = ?", id)
	p, err := scanProperty(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// UpdateProperty replaces every user-supplied column and refreshes
// updated_at. It returns ErrRowNotFound when the id matches no row.
func (d *Database) UpdateProperty(id int64, input *models.PropertyInput) (*models.Property, error) {
	result, err := d.db.Exec(`
		UPDATE properties SET
			title = ?,
			description = ?,
			address = ?,
			price_per_night = ?,
			bedrooms = ?,
			bathrooms = ?,
			max_guests = ?,
			amenities = ?,
			image_url = ?,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`,
		input.Title,
		input.Description,
		input.Address,
		input.PricePerNight,
		input.Bedrooms,
		input.Bathrooms,
		input.MaxGuests,
		input.Amenities,
		input.ImageURL,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update property: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrRowNotFound
	}

	return d.GetPropertyByID(id)
}

// DeleteProperty reports the number of rows removed; 0 means the id was
// not present, which is not an error.
func (d *Database) DeleteProperty(id int64) (int64, error) {
	result, err := d.db.Exec("DELETE FROM properties WHERE id = ?", id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete property: %w", err)
	}
	return result.RowsAffected()
}

// PropertyExists backs the referential check on reservation writes.
func (d *Database) PropertyExists(id int64) (bool, error) {
	var exists bool
	err := d.db.QueryRow("SELECT EXISTS(SELECT 1 FROM properties WHERE id = ?)", id).Scan(&exists)
	return exists, err
}

// GetPropertyWithReservations returns a property and its reservations in a
// single left-join scan. A property with no reservations carries an empty
// slice, and a missing property id yields nil without an error.
func (d *Database) GetPropertyWithReservations(id int64) (*models.PropertyWithReservations, error) {
	rows, err := d.db.Query(`
		SELECT
			p.id, p.title, COALESCE(p.description, ''), p.address,
			p.price_per_night, p.bedrooms, p.bathrooms, p.max_guests,
			COALESCE(p.amenities, ''), COALESCE(p.image_url, ''),
			p.created_at, p.updated_at,
			r.id, r.property_id, r.guest_name, r.guest_email,
			r.check_in_date, r.check_out_date, r.total_price, r.status,
			r.created_at, r.updated_at
		FROM properties p
		LEFT JOIN reservations r ON r.property_id = p.id
		WHERE p.id = ?
		ORDER BY r.id
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result *models.PropertyWithReservations
	for rows.Next() {
		var p models.Property
		var bedrooms, bathrooms, maxGuests sql.NullInt64
		var resID, resPropertyID sql.NullInt64
		var guestName, guestEmail, checkIn, checkOut, status sql.NullString
		var totalPrice sql.NullFloat64
		var resCreatedAt, resUpdatedAt sql.NullTime

		err := rows.Scan(
			&p.ID,
			&p.Title,
			&p.Description,
			&p.Address,
			&p.PricePerNight,
			&bedrooms,
			&bathrooms,
			&maxGuests,
			&p.Amenities,
			&p.ImageURL,
			&p.CreatedAt,
			&p.UpdatedAt,
			&resID,
			&resPropertyID,
			&guestName,
			&guestEmail,
			&checkIn,
			&checkOut,
			&totalPrice,
			&status,
			&resCreatedAt,
			&resUpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		if result == nil {
			if bedrooms.Valid {
				v := int(bedrooms.Int64)
				p.Bedrooms = &v
			}
			if bathrooms.Valid {
				v := int(bathrooms.Int64)
				p.Bathrooms = &v
			}
			if maxGuests.Valid {
				v := int(maxGuests.Int64)
				p.MaxGuests = &v
			}
			result = &models.PropertyWithReservations{
				Property:     p,
				Reservations: []models.Reservation{},
			}
		}

		// Null reservation columns mean the property has no reservations.
		if resID.Valid {
			r := models.Reservation{
				ID:           resID.Int64,
				PropertyID:   resPropertyID.Int64,
				GuestName:    guestName.String,
				GuestEmail:   guestEmail.String,
				CheckInDate:  checkIn.String,
				CheckOutDate: checkOut.String,
				TotalPrice:   totalPrice.Float64,
				Status:       status.String,
				CreatedAt:    resCreatedAt.Time,
				UpdatedAt:    resUpdatedAt.Time,
			}
			result.Reservations = append(result.Reservations, r)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
