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

type MemberService interface {
	List(ctx context.Context, db *gorm.DB) ([]*dto.MemberResponse, error)
	Get(ctx context.Context, db *gorm.DB, id string) (*dto.MemberResponse, error)
	Create(ctx context.Context, db *gorm.DB, req *dto.CreateMemberRequest, file *FileUpload) (*dto.MemberResponse, error)
	Update(ctx context.Context, db *gorm.DB, id string, req *dto.UpdateMemberRequest, file *FileUpload) (*dto.MemberResponse, error)
	Delete(ctx context.Context, db *gorm.DB, id string) error
}

type memberService struct {
	repo   repositories.MemberRepository
	images *ImageResource[*models.MemberProfile]
}

func NewMemberService(
	repo repositories.MemberRepository,
	store storage.Storage,
	proc *imageprocessor.Processor,
	limits UploadLimits,
) MemberService {
	return &memberService{
		repo: repo,
		images: NewImageResource(store, proc, limits, ImageResourceConfig[*models.MemberProfile]{
			Namespace: "members",
			Find:      repo.FindByID,
			Persist: func(tx *gorm.DB, m *models.MemberProfile) error {
				return repo.Save(tx, m)
			},
			Delete: repo.Delete,
		}),
	}
}

func (s *memberService) List(ctx context.Context, db *gorm.DB) ([]*dto.MemberResponse, error) {
	members, err := s.repo.List(db)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return dto.MemberListResponseFrom(members), nil
}

func (s *memberService) Get(ctx context.Context, db *gorm.DB, id string) (*dto.MemberResponse, error) {
	member, err := s.repo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.DatabaseError(err)
	}
	return dto.MemberResponseFrom(member), nil
}

func (s *memberService) Create(ctx context.Context, db *gorm.DB, req *dto.CreateMemberRequest, file *FileUpload) (*dto.MemberResponse, error) {
	member, err := s.images.Save(ctx, db, req.ID, func(existing *models.MemberProfile, found bool) (*models.MemberProfile, error) {
		m := existing
		if !found {
			m = &models.MemberProfile{BaseModel: models.BaseModel{ID: req.ID}}
		}
		m.Name = req.Name
		m.Position = req.Position
		m.Intro = req.Intro
		m.SortOrder = req.SortOrder

		birthday, err := parseOptionalDate(req.Birthday)
		if err != nil {
			return nil, err
		}
		m.Birthday = birthday

		m.SNS = datatypes.NewJSONType(snsFromInput(req.SNS))
		return m, nil
	}, file)
	if err != nil {
		return nil, err
	}
	return dto.MemberResponseFrom(member), nil
}

func (s *memberService) Update(ctx context.Context, db *gorm.DB, id string, req *dto.UpdateMemberRequest, file *FileUpload) (*dto.MemberResponse, error) {
	member, err := s.images.Save(ctx, db, id, func(existing *models.MemberProfile, found bool) (*models.MemberProfile, error) {
		if !found {
			return nil, apperrors.ErrNotFound(repositories.ErrMemberNotFound)
		}
		if req.Name != nil {
			existing.Name = *req.Name
		}
		if req.Position != nil {
			existing.Position = *req.Position
		}
		if req.Intro != nil {
			existing.Intro = *req.Intro
		}
		if req.SortOrder != nil {
			existing.SortOrder = *req.SortOrder
		}
		if req.Birthday != nil {
			birthday, err := parseOptionalDate(*req.Birthday)
			if err != nil {
				return nil, err
			}
			existing.Birthday = birthday
		}
		if req.SNS != nil {
			existing.SNS = datatypes.NewJSONType(snsFromInput(req.SNS))
		}
		return existing, nil
	}, file)
	if err != nil {
		return nil, err
	}
	return dto.MemberResponseFrom(member), nil
}

func (s *memberService) Delete(ctx context.Context, db *gorm.DB, id string) error {
	return s.images.Delete(ctx, db, id)
}

// snsFromInput fills absent platforms with "" so every response carries
// the complete link set.
func snsFromInput(in *dto.SNSLinksInput) models.SNSLinks {
	if in == nil {
		return models.SNSLinks{}
	}
	return models.SNSLinks{
		Instagram: in.Instagram,
		Twitter:   in.Twitter,
		Youtube:   in.Youtube,
		Tiktok:    in.Tiktok,
	}
}
