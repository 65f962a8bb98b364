package repositories

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hansols27/QWER-Back-end/internal/models"
)

var ErrNoticeNotFound = fmt.Errorf("notice %w", ErrNotFound)

type NoticeRepository interface {
	FindByID(db *gorm.DB, id string) (*models.Notice, error)
	// List returns pinned notices first, then newest first.
	List(db *gorm.DB) ([]models.Notice, error)
	Save(db *gorm.DB, notice *models.Notice) error
	Delete(db *gorm.DB, id string) (int64, error)
}

type NoticeRepositoryImpl struct{}

func NewNoticeRepository() NoticeRepository {
	return &NoticeRepositoryImpl{}
}

func (r *NoticeRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Notice, error) {
	var notice models.Notice
	if err := db.First(&notice, "id = ?", id).Error; err != nil {
		return nil, asNotFound(err, ErrNoticeNotFound)
	}
	return &notice, nil
}

func (r *NoticeRepositoryImpl) List(db *gorm.DB) ([]models.Notice, error) {
	var notices []models.Notice
	err := db.Order("pinned DESC, created_at DESC").Find(&notices).Error
	return notices, err
}

func (r *NoticeRepositoryImpl) Save(db *gorm.DB, notice *models.Notice) error {
	return db.Clauses(clause.OnConflict{UpdateAll: true}).Create(notice).Error
}

func (r *NoticeRepositoryImpl) Delete(db *gorm.DB, id string) (int64, error) {
	res := db.Delete(&models.Notice{}, "id = ?", id)
	return res.RowsAffected, res.Error
}
