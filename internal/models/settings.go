package models

import "gorm.io/datatypes"

// SettingsID is the fixed primary key of the single settings row.
const SettingsID = "site"

// SiteSettings is a singleton: at most one row, keyed by SettingsID.
// Reads with no row present return DefaultSiteSettings().
type SiteSettings struct {
	BaseModel
	SiteTitle      string                       `gorm:"not null"`
	AboutText      string                       `gorm:"type:text"`
	FooterText     string                       `gorm:"type:text"`
	SNS            datatypes.JSONType[SNSLinks] `gorm:"column:sns"`
	BannerImageURL string                       `gorm:"column:banner_image_url"`
}

func (SiteSettings) TableName() string {
	return "site_settings"
}

func (s *SiteSettings) GetImageURL() string {
	return s.BannerImageURL
}

func (s *SiteSettings) SetImageURL(url string) {
	s.BannerImageURL = url
}

// DefaultSiteSettings is what reads return before the singleton row has
// ever been written.
func DefaultSiteSettings() *SiteSettings {
	return &SiteSettings{
		BaseModel: BaseModel{ID: SettingsID},
		SiteTitle: "QWER",
	}
}
