package repositories

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hansols27/QWER-Back-end/internal/models"
)

var ErrGalleryItemNotFound = fmt.Errorf("gallery item %w", ErrNotFound)

type GalleryRepository interface {
	FindByID(db *gorm.DB, id string) (*models.GalleryItem, error)
	// List returns items newest-shot first; limit <= 0 means no limit.
	List(db *gorm.DB, limit int) ([]models.GalleryItem, error)
	Save(db *gorm.DB, item *models.GalleryItem) error
	Delete(db *gorm.DB, id string) (int64, error)
}

type GalleryRepositoryImpl struct{}

func NewGalleryRepository() GalleryRepository {
	return &GalleryRepositoryImpl{}
}

func (r *GalleryRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.GalleryItem, error) {
	var item models.GalleryItem
	if err := db.First(&item, "id = ?", id).Error; err != nil {
		return nil, asNotFound(err, ErrGalleryItemNotFound)
	}
	return &item, nil
}

func (r *GalleryRepositoryImpl) List(db *gorm.DB, limit int) ([]models.GalleryItem, error) {
	q := db.Order("shot_date DESC, created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var items []models.GalleryItem
	err := q.Find(&items).Error
	return items, err
}

func (r *GalleryRepositoryImpl) Save(db *gorm.DB, item *models.GalleryItem) error {
	return db.Clauses(clause.OnConflict{UpdateAll: true}).Create(item).Error
}

func (r *GalleryRepositoryImpl) Delete(db *gorm.DB, id string) (int64, error) {
	res := db.Delete(&models.GalleryItem{}, "id = ?", id)
	return res.RowsAffected, res.Error
}
