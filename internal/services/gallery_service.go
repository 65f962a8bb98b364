package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/hansols27/QWER-Back-end/internal/imageprocessor"
	"github.com/hansols27/QWER-Back-end/internal/models"
	"github.com/hansols27/QWER-Back-end/internal/repositories"
	"github.com/hansols27/QWER-Back-end/internal/services/dto"
	"github.com/hansols27/QWER-Back-end/internal/storage"
	"github.com/hansols27/QWER-Back-end/pkg/apperrors"
)

type GalleryService interface {
	List(ctx context.Context, db *gorm.DB, limit int) ([]*dto.GalleryItemResponse, error)
	Get(ctx context.Context, db *gorm.DB, id string) (*dto.GalleryItemResponse, error)
	Create(ctx context.Context, db *gorm.DB, req *dto.CreateGalleryItemRequest, file *FileUpload) (*dto.GalleryItemResponse, error)
	Update(ctx context.Context, db *gorm.DB, id string, req *dto.UpdateGalleryItemRequest, file *FileUpload) (*dto.GalleryItemResponse, error)
	Delete(ctx context.Context, db *gorm.DB, id string) error
	DeleteMany(ctx context.Context, db *gorm.DB, ids []string) []string
}

type galleryService struct {
	repo   repositories.GalleryRepository
	images *ImageResource[*models.GalleryItem]
}

func NewGalleryService(
	repo repositories.GalleryRepository,
	store storage.Storage,
	proc *imageprocessor.Processor,
	limits UploadLimits,
) GalleryService {
	return &galleryService{
		repo: repo,
		images: NewImageResource(store, proc, limits, ImageResourceConfig[*models.GalleryItem]{
			Namespace: "gallery",
			Find:      repo.FindByID,
			Persist: func(tx *gorm.DB, item *models.GalleryItem) error {
				return repo.Save(tx, item)
			},
			Delete: repo.Delete,
		}),
	}
}

func (s *galleryService) List(ctx context.Context, db *gorm.DB, limit int) ([]*dto.GalleryItemResponse, error) {
	items, err := s.repo.List(db, limit)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return dto.GalleryListResponseFrom(items), nil
}

func (s *galleryService) Get(ctx context.Context, db *gorm.DB, id string) (*dto.GalleryItemResponse, error) {
	item, err := s.repo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.DatabaseError(err)
	}
	return dto.GalleryItemResponseFrom(item), nil
}

// Create requires an image part: a gallery item exists to show a photo.
func (s *galleryService) Create(ctx context.Context, db *gorm.DB, req *dto.CreateGalleryItemRequest, file *FileUpload) (*dto.GalleryItemResponse, error) {
	if file == nil {
		return nil, apperrors.ErrInvalidOperation("gallery", "An image file is required")
	}

	item, err := s.images.Save(ctx, db, req.ID, func(existing *models.GalleryItem, found bool) (*models.GalleryItem, error) {
		g := existing
		if !found {
			g = &models.GalleryItem{BaseModel: models.BaseModel{ID: req.ID}}
		}
		g.Title = req.Title

		shotDate, err := parseOptionalDate(req.ShotDate)
		if err != nil {
			return nil, err
		}
		g.ShotDate = shotDate
		return g, nil
	}, file)
	if err != nil {
		return nil, err
	}
	return dto.GalleryItemResponseFrom(item), nil
}

func (s *galleryService) Update(ctx context.Context, db *gorm.DB, id string, req *dto.UpdateGalleryItemRequest, file *FileUpload) (*dto.GalleryItemResponse, error) {
	item, err := s.images.Save(ctx, db, id, func(existing *models.GalleryItem, found bool) (*models.GalleryItem, error) {
		if !found {
			return nil, apperrors.ErrNotFound(repositories.ErrGalleryItemNotFound)
		}
		if req.Title != nil {
			existing.Title = *req.Title
		}
		if req.ShotDate != nil {
			shotDate, err := parseOptionalDate(*req.ShotDate)
			if err != nil {
				return nil, err
			}
			existing.ShotDate = shotDate
		}
		return existing, nil
	}, file)
	if err != nil {
		return nil, err
	}
	return dto.GalleryItemResponseFrom(item), nil
}

func (s *galleryService) Delete(ctx context.Context, db *gorm.DB, id string) error {
	return s.images.Delete(ctx, db, id)
}

func (s *galleryService) DeleteMany(ctx context.Context, db *gorm.DB, ids []string) []string {
	return s.images.DeleteMany(ctx, db, ids)
}
