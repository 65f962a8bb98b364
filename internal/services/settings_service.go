package services

import (
	"context"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/hansols27/QWER-Back-end/internal/imageprocessor"
	"github.com/hansols27/QWER-Back-end/internal/models"
	"github.com/hansols27/QWER-Back-end/internal/repositories"
	"github.com/hansols27/QWER-Back-end/internal/services/dto"
	"github.com/hansols27/QWER-Back-end/internal/storage"
	"github.com/hansols27/QWER-Back-end/pkg/apperrors"
)

type SettingsService interface {
	// Get never 404s: before the singleton row is written it returns the
	// built-in defaults.
	Get(ctx context.Context, db *gorm.DB) (*dto.SettingsResponse, error)
	Update(ctx context.Context, db *gorm.DB, req *dto.UpdateSettingsRequest, file *FileUpload) (*dto.SettingsResponse, error)
}

type settingsService struct {
	repo   repositories.SettingsRepository
	images *ImageResource[*models.SiteSettings]
}

func NewSettingsService(
	repo repositories.SettingsRepository,
	store storage.Storage,
	proc *imageprocessor.Processor,
	limits UploadLimits,
) SettingsService {
	return &settingsService{
		repo: repo,
		images: NewImageResource(store, proc, limits, ImageResourceConfig[*models.SiteSettings]{
			Namespace: "settings",
			Find: func(db *gorm.DB, _ string) (*models.SiteSettings, error) {
				return repo.Find(db)
			},
			Persist: func(tx *gorm.DB, s *models.SiteSettings) error {
				return repo.Save(tx, s)
			},
			Delete: func(db *gorm.DB, _ string) (int64, error) {
				return repo.Delete(db)
			},
		}),
	}
}

func (s *settingsService) Get(ctx context.Context, db *gorm.DB) (*dto.SettingsResponse, error) {
	settings, err := s.repo.Find(db)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return dto.SettingsResponseFrom(models.DefaultSiteSettings()), nil
		}
		return nil, apperrors.DatabaseError(err)
	}
	return dto.SettingsResponseFrom(settings), nil
}

func (s *settingsService) Update(ctx context.Context, db *gorm.DB, req *dto.UpdateSettingsRequest, file *FileUpload) (*dto.SettingsResponse, error) {
	settings, err := s.images.Save(ctx, db, models.SettingsID, func(existing *models.SiteSettings, found bool) (*models.SiteSettings, error) {
		cur := existing
		if !found {
			cur = models.DefaultSiteSettings()
		}
		if req.SiteTitle != nil {
			cur.SiteTitle = *req.SiteTitle
		}
		if req.AboutText != nil {
			cur.AboutText = *req.AboutText
		}
		if req.FooterText != nil {
			cur.FooterText = *req.FooterText
		}
		if req.SNS != nil {
			cur.SNS = datatypes.NewJSONType(snsFromInput(req.SNS))
		}
		return cur, nil
	}, file)
	if err != nil {
		return nil, err
	}
	return dto.SettingsResponseFrom(settings), nil
}
