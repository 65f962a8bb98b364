package repositories

import (
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hansols27/QWER-Back-end/internal/models"
)

var ErrScheduleNotFound = fmt.Errorf("schedule %w", ErrNotFound)

type ScheduleRepository interface {
	FindByID(db *gorm.DB, id string) (*models.Schedule, error)
	List(db *gorm.DB) ([]models.Schedule, error)
	// ListBetween returns entries with from <= date < to, soonest first.
	ListBetween(db *gorm.DB, from, to time.Time) ([]models.Schedule, error)
	Save(db *gorm.DB, schedule *models.Schedule) error
	Delete(db *gorm.DB, id string) (int64, error)
}

type ScheduleRepositoryImpl struct{}

func NewScheduleRepository() ScheduleRepository {
	return &ScheduleRepositoryImpl{}
}

func (r *ScheduleRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Schedule, error) {
	var schedule models.Schedule
	if err := db.First(&schedule, "id = ?", id).Error; err != nil {
		return nil, asNotFound(err, ErrScheduleNotFound)
	}
	return &schedule, nil
}

func (r *ScheduleRepositoryImpl) List(db *gorm.DB) ([]models.Schedule, error) {
	var schedules []models.Schedule
	err := db.Order("date ASC").Find(&schedules).Error
	return schedules, err
}

func (r *ScheduleRepositoryImpl) ListBetween(db *gorm.DB, from, to time.Time) ([]models.Schedule, error) {
	var schedules []models.Schedule
	err := db.Where("date >= ? AND date < ?", from, to).Order("date ASC").Find(&schedules).Error
	return schedules, err
}

func (r *ScheduleRepositoryImpl) Save(db *gorm.DB, schedule *models.Schedule) error {
	return db.Clauses(clause.OnConflict{UpdateAll: true}).Create(schedule).Error
}

func (r *ScheduleRepositoryImpl) Delete(db *gorm.DB, id string) (int64, error) {
	res := db.Delete(&models.Schedule{}, "id = ?", id)
	return res.RowsAffected, res.Error
}
