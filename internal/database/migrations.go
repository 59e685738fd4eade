package database

import "fmt"

// RunMigrations creates the two tables. The foreign key from reservations
// to properties carries no ON DELETE action: deleting a referenced property
// leaves its reservations in place.
func (d *Database) RunMigrations() error {
	_, err := d.db.Exec(`
		CREATE TABLE IF NOT EXISTS properties (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			description TEXT,
			address TEXT NOT NULL,
			price_per_night REAL NOT NULL,
			bedrooms INTEGER,
			bathrooms INTEGER,
			max_guests INTEGER,
			amenities TEXT,
			image_url TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
	`)
	if err != nil {
		return fmt.Errorf("failed to create properties table: %w", err)
	}

	_, err = d.db.Exec(`
		CREATE TABLE IF NOT EXISTS reservations (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			property_id INTEGER NOT NULL,
			guest_name TEXT NOT NULL,
			guest_email TEXT NOT NULL,
			check_in_date TEXT NOT NULL,
			check_out_date TEXT NOT NULL,
			total_price REAL NOT NULL,
			status TEXT DEFAULT 'pending',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (property_id) REFERENCES properties(id)
		);
	`)
	if err != nil {
		return fmt.Errorf("failed to create reservations table: %w", err)
	}

	_, err = d.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_reservations_property_id
		ON reservations(property_id);
	`)
	if err != nil {
		return fmt.Errorf("failed to create reservations index: %w", err)
	}

	return nil
}
