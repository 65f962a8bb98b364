package repositories

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hansols27/QWER-Back-end/internal/models"
)

var ErrSettingsNotFound = fmt.Errorf("site settings %w", ErrNotFound)

// SettingsRepository manages the single site_settings row.
type SettingsRepository interface {
	Find(db *gorm.DB) (*models.SiteSettings, error)
	Save(db *gorm.DB, settings *models.SiteSettings) error
	Delete(db *gorm.DB) (int64, error)
}

type SettingsRepositoryImpl struct{}

func NewSettingsRepository() SettingsRepository {
	return &SettingsRepositoryImpl{}
}

func (r *SettingsRepositoryImpl) Find(db *gorm.DB) (*models.SiteSettings, error) {
	var settings models.SiteSettings
	if err := db.First(&settings, "id = ?", models.SettingsID).Error; err != nil {
		return nil, asNotFound(err, ErrSettingsNotFound)
	}
	return &settings, nil
}

func (r *SettingsRepositoryImpl) Save(db *gorm.DB, settings *models.SiteSettings) error {
	settings.ID = models.SettingsID
	return db.Clauses(clause.OnConflict{UpdateAll: true}).Create(settings).Error
}

func (r *SettingsRepositoryImpl) Delete(db *gorm.DB) (int64, error) {
	res := db.Delete(&models.SiteSettings{}, "id = ?", models.SettingsID)
	return res.RowsAffected, res.Error
}
