package database

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

// Database is the system of record for properties and reservations. It is
// constructed once at startup and handed to the services; no other layer
// holds persistent state.
type Database struct {
	db *sql.DB
}

func NewDatabase(dbPath string) (*Database, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	// Foreign key enforcement stays off: the property_id key on
	// reservations is declarative only, and the referential check is the
	// validation layer's job. Deleting a referenced property is permitted
	// and leaves its reservations behind.
	_, err = db.Exec("PRAGMA foreign_keys = OFF")
	if err != nil {
		return nil, err
	}

	return &Database{db: db}, nil
}

func (d *Database) Close() error {
	return d.db.Close()
}

func (d *Database) GetDB() *sql.DB {
	return d.db
}
