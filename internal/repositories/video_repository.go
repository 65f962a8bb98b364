package repositories

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hansols27/QWER-Back-end/internal/models"
)

var ErrVideoNotFound = fmt.Errorf("video %w", ErrNotFound)

type VideoRepository interface {
	FindByID(db *gorm.DB, id string) (*models.Video, error)
	// List returns videos newest first, optionally filtered by category.
	List(db *gorm.DB, category string) ([]models.Video, error)
	Save(db *gorm.DB, video *models.Video) error
	Delete(db *gorm.DB, id string) (int64, error)
}

type VideoRepositoryImpl struct{}

func NewVideoRepository() VideoRepository {
	return &VideoRepositoryImpl{}
}

func (r *VideoRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Video, error) {
	var video models.Video
	if err := db.First(&video, "id = ?", id).Error; err != nil {
		return nil, asNotFound(err, ErrVideoNotFound)
	}
	return &video, nil
}

func (r *VideoRepositoryImpl) List(db *gorm.DB, category string) ([]models.Video, error) {
	q := db.Order("published_at DESC, created_at DESC")
	if category != "" {
		q = q.Where("category = ?", category)
	}
	var videos []models.Video
	err := q.Find(&videos).Error
	return videos, err
}

func (r *VideoRepositoryImpl) Save(db *gorm.DB, video *models.Video) error {
	return db.Clauses(clause.OnConflict{UpdateAll: true}).Create(video).Error
}

func (r *VideoRepositoryImpl) Delete(db *gorm.DB, id string) (int64, error) {
	res := db.Delete(&models.Video{}, "id = ?", id)
	return res.RowsAffected, res.Error
}
