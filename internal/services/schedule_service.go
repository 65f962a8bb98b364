package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/hansols27/QWER-Back-end/internal/models"
	"github.com/hansols27/QWER-Back-end/internal/repositories"
	"github.com/hansols27/QWER-Back-end/internal/services/dto"
	"github.com/hansols27/QWER-Back-end/internal/utils"
	"github.com/hansols27/QWER-Back-end/pkg/apperrors"
)

type ScheduleService interface {
	// List returns all entries, or just one KST month when month is
	// "YYYY-MM" (calendar view).
	List(ctx context.Context, db *gorm.DB, month string) ([]*dto.ScheduleResponse, error)
	Get(ctx context.Context, db *gorm.DB, id string) (*dto.ScheduleResponse, error)
	Create(ctx context.Context, db *gorm.DB, req *dto.CreateScheduleRequest) (*dto.ScheduleResponse, error)
	Update(ctx context.Context, db *gorm.DB, id string, req *dto.UpdateScheduleRequest) (*dto.ScheduleResponse, error)
	Delete(ctx context.Context, db *gorm.DB, id string) error
}

type scheduleService struct {
	repo repositories.ScheduleRepository
}

func NewScheduleService(repo repositories.ScheduleRepository) ScheduleService {
	return &scheduleService{repo: repo}
}

func (s *scheduleService) List(ctx context.Context, db *gorm.DB, month string) ([]*dto.ScheduleResponse, error) {
	if month == "" {
		schedules, err := s.repo.List(db)
		if err != nil {
			return nil, apperrors.DatabaseError(err)
		}
		return dto.ScheduleListResponseFrom(schedules), nil
	}

	from, to, err := utils.MonthRange(month)
	if err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}
	schedules, err := s.repo.ListBetween(db, from, to)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return dto.ScheduleListResponseFrom(schedules), nil
}

func (s *scheduleService) Get(ctx context.Context, db *gorm.DB, id string) (*dto.ScheduleResponse, error) {
	schedule, err := s.repo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.DatabaseError(err)
	}
	return dto.ScheduleResponseFrom(schedule), nil
}

func (s *scheduleService) Create(ctx context.Context, db *gorm.DB, req *dto.CreateScheduleRequest) (*dto.ScheduleResponse, error) {
	date, err := utils.ParseKSTDate(req.Date)
	if err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	schedule := &models.Schedule{
		BaseModel:   models.BaseModel{ID: req.ID},
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Date:        date,
	}
	if err := s.repo.Save(db, schedule); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return dto.ScheduleResponseFrom(schedule), nil
}

func (s *scheduleService) Update(ctx context.Context, db *gorm.DB, id string, req *dto.UpdateScheduleRequest) (*dto.ScheduleResponse, error) {
	schedule, err := s.repo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.DatabaseError(err)
	}

	if req.Title != nil {
		schedule.Title = *req.Title
	}
	if req.Description != nil {
		schedule.Description = *req.Description
	}
	if req.Category != nil {
		schedule.Category = *req.Category
	}
	if req.Date != nil {
		date, err := utils.ParseKSTDate(*req.Date)
		if err != nil {
			return nil, apperrors.NewBadRequestError(err.Error())
		}
		schedule.Date = date
	}

	if err := s.repo.Save(db, schedule); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return dto.ScheduleResponseFrom(schedule), nil
}

func (s *scheduleService) Delete(ctx context.Context, db *gorm.DB, id string) error {
	if _, err := s.repo.FindByID(db, id); err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.DatabaseError(err)
	}
	if _, err := s.repo.Delete(db, id); err != nil {
		return apperrors.DatabaseError(err)
	}
	return nil
}
