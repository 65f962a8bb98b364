package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/hansols27/QWER-Back-end/internal/models"
	"github.com/hansols27/QWER-Back-end/internal/repositories"
	"github.com/hansols27/QWER-Back-end/internal/services/dto"
	"github.com/hansols27/QWER-Back-end/pkg/apperrors"
)

type NoticeService interface {
	List(ctx context.Context, db *gorm.DB) ([]*dto.NoticeResponse, error)
	Get(ctx context.Context, db *gorm.DB, id string) (*dto.NoticeResponse, error)
	Create(ctx context.Context, db *gorm.DB, req *dto.CreateNoticeRequest) (*dto.NoticeResponse, error)
	Update(ctx context.Context, db *gorm.DB, id string, req *dto.UpdateNoticeRequest) (*dto.NoticeResponse, error)
	Delete(ctx context.Context, db *gorm.DB, id string) error
}

type noticeService struct {
	repo repositories.NoticeRepository
}

func NewNoticeService(repo repositories.NoticeRepository) NoticeService {
	return &noticeService{repo: repo}
}

func (s *noticeService) List(ctx context.Context, db *gorm.DB) ([]*dto.NoticeResponse, error) {
	notices, err := s.repo.List(db)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return dto.NoticeListResponseFrom(notices), nil
}

func (s *noticeService) Get(ctx context.Context, db *gorm.DB, id string) (*dto.NoticeResponse, error) {
	notice, err := s.repo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.DatabaseError(err)
	}
	return dto.NoticeResponseFrom(notice), nil
}

func (s *noticeService) Create(ctx context.Context, db *gorm.DB, req *dto.CreateNoticeRequest) (*dto.NoticeResponse, error) {
	notice := &models.Notice{
		BaseModel: models.BaseModel{ID: req.ID},
		Title:     req.Title,
		Content:   req.Content,
		Pinned:    req.Pinned,
	}
	if err := s.repo.Save(db, notice); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return dto.NoticeResponseFrom(notice), nil
}

func (s *noticeService) Update(ctx context.Context, db *gorm.DB, id string, req *dto.UpdateNoticeRequest) (*dto.NoticeResponse, error) {
	notice, err := s.repo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.DatabaseError(err)
	}

	if req.Title != nil {
		notice.Title = *req.Title
	}
	if req.Content != nil {
		if *req.Content == "" {
			return nil, apperrors.NewBadRequestError("Notice content cannot be empty")
		}
		notice.Content = *req.Content
	}
	if req.Pinned != nil {
		notice.Pinned = *req.Pinned
	}

	if err := s.repo.Save(db, notice); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return dto.NoticeResponseFrom(notice), nil
}

func (s *noticeService) Delete(ctx context.Context, db *gorm.DB, id string) error {
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
