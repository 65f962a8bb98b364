package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/hansols27/QWER-Back-end/internal/models"
	"github.com/hansols27/QWER-Back-end/internal/repositories"
	"github.com/hansols27/QWER-Back-end/internal/services/dto"
	"github.com/hansols27/QWER-Back-end/pkg/apperrors"
)

type VideoService interface {
	List(ctx context.Context, db *gorm.DB, category string) ([]*dto.VideoResponse, error)
	Get(ctx context.Context, db *gorm.DB, id string) (*dto.VideoResponse, error)
	Create(ctx context.Context, db *gorm.DB, req *dto.CreateVideoRequest) (*dto.VideoResponse, error)
	Update(ctx context.Context, db *gorm.DB, id string, req *dto.UpdateVideoRequest) (*dto.VideoResponse, error)
	Delete(ctx context.Context, db *gorm.DB, id string) error
}

type videoService struct {
	repo repositories.VideoRepository
}

func NewVideoService(repo repositories.VideoRepository) VideoService {
	return &videoService{repo: repo}
}

func (s *videoService) List(ctx context.Context, db *gorm.DB, category string) ([]*dto.VideoResponse, error) {
	videos, err := s.repo.List(db, category)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return dto.VideoListResponseFrom(videos), nil
}

func (s *videoService) Get(ctx context.Context, db *gorm.DB, id string) (*dto.VideoResponse, error) {
	video, err := s.repo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.DatabaseError(err)
	}
	return dto.VideoResponseFrom(video), nil
}

func (s *videoService) Create(ctx context.Context, db *gorm.DB, req *dto.CreateVideoRequest) (*dto.VideoResponse, error) {
	publishedAt, err := parseOptionalDate(req.PublishedAt)
	if err != nil {
		return nil, err
	}

	video := &models.Video{
		BaseModel:   models.BaseModel{ID: req.ID},
		Title:       req.Title,
		URL:         req.URL,
		Category:    req.Category,
		PublishedAt: publishedAt,
	}
	if err := s.repo.Save(db, video); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return dto.VideoResponseFrom(video), nil
}

func (s *videoService) Update(ctx context.Context, db *gorm.DB, id string, req *dto.UpdateVideoRequest) (*dto.VideoResponse, error) {
	video, err := s.repo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.DatabaseError(err)
	}

	if req.Title != nil {
		video.Title = *req.Title
	}
	if req.URL != nil {
		video.URL = *req.URL
	}
	if req.Category != nil {
		video.Category = *req.Category
	}
	if req.PublishedAt != nil {
		publishedAt, err := parseOptionalDate(*req.PublishedAt)
		if err != nil {
			return nil, err
		}
		video.PublishedAt = publishedAt
	}

	if err := s.repo.Save(db, video); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return dto.VideoResponseFrom(video), nil
}

func (s *videoService) Delete(ctx context.Context, db *gorm.DB, id string) error {
	if _, err := s.repo.FindByID(db, id); err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.DatabaseError(err)
	}
	// Zero rows affected here means a concurrent delete won; the end
	// state is the same, so it is still a success.
	if _, err := s.repo.Delete(db, id); err != nil {
		return apperrors.DatabaseError(err)
	}
	return nil
}
