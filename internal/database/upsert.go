package database

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"casabook/server/internal/models"
)

// NewImportDB opens a gorm handle over the same sqlite file for the bulk
// import path. Single-record CRUD stays on the plain database/sql handle.
func NewImportDB(dbPath string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
}

// UpsertProperties writes a batch of properties inside the caller's
// transaction. Rows that collide on id are replaced field by field;
// rows without an id are inserted fresh.
func UpsertProperties(tx *gorm.DB, batch []*models.Property) error {
	if len(batch) == 0 {
		return nil
	}

	return tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"title", "description", "address", "price_per_night",
			"bedrooms", "bathrooms", "max_guests", "amenities",
			"image_url", "updated_at",
		}),
	}).Create(&batch).Error
}
