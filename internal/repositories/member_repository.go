package repositories

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hansols27/QWER-Back-end/internal/models"
)

var ErrMemberNotFound = fmt.Errorf("member profile %w", ErrNotFound)

type MemberRepository interface {
	FindByID(db *gorm.DB, id string) (*models.MemberProfile, error)
	List(db *gorm.DB) ([]models.MemberProfile, error)
	Save(db *gorm.DB, member *models.MemberProfile) error
	Delete(db *gorm.DB, id string) (int64, error)
}

type MemberRepositoryImpl struct{}

func NewMemberRepository() MemberRepository {
	return &MemberRepositoryImpl{}
}

func (r *MemberRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.MemberProfile, error) {
	var member models.MemberProfile
	if err := db.First(&member, "id = ?", id).Error; err != nil {
		return nil, asNotFound(err, ErrMemberNotFound)
	}
	return &member, nil
}

func (r *MemberRepositoryImpl) List(db *gorm.DB) ([]models.MemberProfile, error) {
	var members []models.MemberProfile
	err := db.Order("sort_order ASC, created_at ASC").Find(&members).Error
	return members, err
}

func (r *MemberRepositoryImpl) Save(db *gorm.DB, member *models.MemberProfile) error {
	return db.Clauses(clause.OnConflict{UpdateAll: true}).Create(member).Error
}

func (r *MemberRepositoryImpl) Delete(db *gorm.DB, id string) (int64, error) {
	res := db.Delete(&models.MemberProfile{}, "id = ?", id)
	return res.RowsAffected, res.Error
}
