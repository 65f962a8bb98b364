package database

import (
	"gorm.io/gorm"

	"github.com/hansols27/QWER-Back-end/internal/models"
)

// AutoMigrate creates or updates the tables for every content model.
// Called once at startup against the injected connection.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Album{},
		&models.GalleryItem{},
		&models.MemberProfile{},
		&models.SiteSettings{},
		&models.Video{},
		&models.Notice{},
		&models.Schedule{},
	)
}
