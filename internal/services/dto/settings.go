package dto

import (
	"time"

	"github.com/hansols27/QWER-Back-end/internal/models"
)

// UpdateSettingsRequest updates the settings singleton. Nil fields keep
// the stored (or default) value.
type UpdateSettingsRequest struct {
	SiteTitle  *string        `json:"siteTitle" validate:"omitempty,max=200"`
	AboutText  *string        `json:"aboutText"`
	FooterText *string        `json:"footerText"`
	SNS        *SNSLinksInput `json:"sns"`
}

type SettingsResponse struct {
	SiteTitle   string          `json:"siteTitle"`
	AboutText   string          `json:"aboutText"`
	FooterText  string          `json:"footerText"`
	SNS         models.SNSLinks `json:"sns"`
	BannerImage string          `json:"bannerImage"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func SettingsResponseFrom(s *models.SiteSettings) *SettingsResponse {
	return &SettingsResponse{
		SiteTitle:   s.SiteTitle,
		AboutText:   s.AboutText,
		FooterText:  s.FooterText,
		SNS:         s.SNS.Data(),
		BannerImage: s.BannerImageURL,
		UpdatedAt:   s.UpdatedAt,
	}
}
