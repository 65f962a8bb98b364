package services

import (
	"context"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/hansols27/QWER-Back-end/internal/imageprocessor"
	"github.com/hansols27/QWER-Back-end/internal/models"
	"github.com/hansols27/QWER-Back-end/internal/repositories"
	"github.com/hansols27/QWER-Back-end/internal/services/dto"
	"github.com/hansols27/QWER-Back-end/internal/storage"
	"github.com/hansols27/QWER-Back-end/internal/utils"
	"github.com/hansols27/QWER-Back-end/pkg/apperrors"
)

type AlbumService interface {
	List(ctx context.Context, db *gorm.DB) ([]*dto.AlbumResponse, error)
	Get(ctx context.Context, db *gorm.DB, id string) (*dto.AlbumResponse, error)
	Create(ctx context.Context, db *gorm.DB, req *dto.CreateAlbumRequest, file *FileUpload) (*dto.AlbumResponse, error)
	Update(ctx context.Context, db *gorm.DB, id string, req *dto.UpdateAlbumRequest, file *FileUpload) (*dto.AlbumResponse, error)
	Delete(ctx context.Context, db *gorm.DB, id string) error
}

type albumService struct {
	repo   repositories.AlbumRepository
	images *ImageResource[*models.Album]
}

func NewAlbumService(
	repo repositories.AlbumRepository,
	store storage.Storage,
	proc *imageprocessor.Processor,
	limits UploadLimits,
) AlbumService {
	return &albumService{
		repo: repo,
		images: NewImageResource(store, proc, limits, ImageResourceConfig[*models.Album]{
			Namespace: "albums",
			Find:      repo.FindByID,
			Persist: func(tx *gorm.DB, a *models.Album) error {
				return repo.Save(tx, a)
			},
			Delete: repo.Delete,
		}),
	}
}

func (s *albumService) List(ctx context.Context, db *gorm.DB) ([]*dto.AlbumResponse, error) {
	albums, err := s.repo.List(db)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return dto.AlbumListResponseFrom(albums), nil
}

func (s *albumService) Get(ctx context.Context, db *gorm.DB, id string) (*dto.AlbumResponse, error) {
	album, err := s.repo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.DatabaseError(err)
	}
	return dto.AlbumResponseFrom(album), nil
}

// Create writes the full field set. Re-submitting an existing id replaces
// that album rather than duplicating it.
func (s *albumService) Create(ctx context.Context, db *gorm.DB, req *dto.CreateAlbumRequest, file *FileUpload) (*dto.AlbumResponse, error) {
	album, err := s.images.Save(ctx, db, req.ID, func(existing *models.Album, found bool) (*models.Album, error) {
		a := existing
		if !found {
			a = &models.Album{BaseModel: models.BaseModel{ID: req.ID}}
		}
		a.Title = req.Title
		a.Description = req.Description

		releaseDate, err := parseOptionalDate(req.ReleaseDate)
		if err != nil {
			return nil, err
		}
		a.ReleaseDate = releaseDate

		a.Tracks = datatypes.NewJSONType(tracksFromInput(req.Tracks))
		a.Links = datatypes.NewJSONType(linksFromInput(req.Links))
		return a, nil
	}, file)
	if err != nil {
		return nil, err
	}
	return dto.AlbumResponseFrom(album), nil
}

// Update merges the supplied fields over the stored record; the cover is
// replaced only when a new file part is present.
func (s *albumService) Update(ctx context.Context, db *gorm.DB, id string, req *dto.UpdateAlbumRequest, file *FileUpload) (*dto.AlbumResponse, error) {
	album, err := s.images.Save(ctx, db, id, func(existing *models.Album, found bool) (*models.Album, error) {
		if !found {
			return nil, apperrors.ErrNotFound(repositories.ErrAlbumNotFound)
		}
		if req.Title != nil {
			existing.Title = *req.Title
		}
		if req.Description != nil {
			existing.Description = *req.Description
		}
		if req.ReleaseDate != nil {
			releaseDate, err := parseOptionalDate(*req.ReleaseDate)
			if err != nil {
				return nil, err
			}
			existing.ReleaseDate = releaseDate
		}
		if req.Tracks != nil {
			existing.Tracks = datatypes.NewJSONType(tracksFromInput(*req.Tracks))
		}
		if req.Links != nil {
			existing.Links = datatypes.NewJSONType(linksFromInput(req.Links))
		}
		return existing, nil
	}, file)
	if err != nil {
		return nil, err
	}
	return dto.AlbumResponseFrom(album), nil
}

func (s *albumService) Delete(ctx context.Context, db *gorm.DB, id string) error {
	return s.images.Delete(ctx, db, id)
}

func tracksFromInput(in []dto.TrackInput) []models.AlbumTrack {
	tracks := make([]models.AlbumTrack, 0, len(in))
	for _, t := range in {
		tracks = append(tracks, models.AlbumTrack{No: t.No, Title: t.Title})
	}
	return tracks
}

func linksFromInput(in *dto.StreamingLinksInput) models.StreamingLinks {
	if in == nil {
		return models.StreamingLinks{}
	}
	return models.StreamingLinks{
		Melon:      in.Melon,
		Spotify:    in.Spotify,
		AppleMusic: in.AppleMusic,
		Youtube:    in.Youtube,
	}
}

// parseOptionalDate maps "" to nil and anything else through the KST parser.
func parseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := utils.ParseKSTDate(s)
	if err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}
	return &t, nil
}
