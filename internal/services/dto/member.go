package dto

import (
	"time"

	"github.com/hansols27/QWER-Back-end/internal/models"
	"github.com/hansols27/QWER-Back-end/internal/utils"
)

type SNSLinksInput struct {
	Instagram string `json:"instagram" validate:"omitempty,url"`
	Twitter   string `json:"twitter" validate:"omitempty,url"`
	Youtube   string `json:"youtube" validate:"omitempty,url"`
	Tiktok    string `json:"tiktok" validate:"omitempty,url"`
}

type CreateMemberRequest struct {
	ID        string         `json:"id" validate:"omitempty,max=64"`
	Name      string         `json:"name" validate:"required,max=100"`
	Position  string         `json:"position" validate:"max=100"`
	Birthday  string         `json:"birthday" validate:"omitempty,datetime=2006-01-02"`
	Intro     string         `json:"intro"`
	SNS       *SNSLinksInput `json:"sns"`
	SortOrder int            `json:"sortOrder" validate:"min=0"`
}

type UpdateMemberRequest struct {
	Name      *string        `json:"name" validate:"omitempty,max=100"`
	Position  *string        `json:"position" validate:"omitempty,max=100"`
	Birthday  *string        `json:"birthday" validate:"omitempty,datetime=2006-01-02"`
	Intro     *string        `json:"intro"`
	SNS       *SNSLinksInput `json:"sns"`
	SortOrder *int           `json:"sortOrder" validate:"omitempty,min=0"`
}

type MemberResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Position     string          `json:"position"`
	Birthday     string          `json:"birthday"`
	Intro        string          `json:"intro"`
	SNS          models.SNSLinks `json:"sns"`
	SortOrder    int             `json:"sortOrder"`
	ProfileImage string          `json:"profileImage"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

func MemberResponseFrom(m *models.MemberProfile) *MemberResponse {
	birthday := ""
	if m.Birthday != nil {
		birthday = utils.FormatKSTDate(*m.Birthday)
	}
	return &MemberResponse{
		ID:           m.ID,
		Name:         m.Name,
		Position:     m.Position,
		Birthday:     birthday,
		Intro:        m.Intro,
		SNS:          m.SNS.Data(),
		SortOrder:    m.SortOrder,
		ProfileImage: m.ProfileImageURL,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func MemberListResponseFrom(members []models.MemberProfile) []*MemberResponse {
	out := make([]*MemberResponse, 0, len(members))
	for i := range members {
		out = append(out, MemberResponseFrom(&members[i]))
	}
	return out
}
