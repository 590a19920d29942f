package database

import (
	"gorm.io/gorm"

	"skydraw_backend/internal/models"
)

// Migrate brings the schema up to date for every model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Shop{},
		&models.Artwork{},
		&models.Order{},
		&models.Message{},
	)
}
