package models

import (
	"time"

	"gorm.io/datatypes"
)

// SNSLinks holds per-platform profile links. Platforms without a link
// serialize as empty strings.
type SNSLinks struct {
	Instagram string `json:"instagram"`
	Twitter   string `json:"twitter"`
	Youtube   string `json:"youtube"`
	Tiktok    string `json:"tiktok"`
}

type MemberProfile struct {
	BaseModel
	Name            string                       `gorm:"not null"`
	Position        string                       // vocal, drums, guitar, ...
	Birthday        *time.Time
	Intro           string                       `gorm:"type:text"`
	SNS             datatypes.JSONType[SNSLinks] `gorm:"column:sns"`
	SortOrder       int                          `gorm:"index;default:0"`
	ProfileImageURL string                       `gorm:"column:profile_image_url"`
}

func (MemberProfile) TableName() string {
	return "member_profiles"
}

func (m *MemberProfile) GetImageURL() string {
	return m.ProfileImageURL
}

func (m *MemberProfile) SetImageURL(url string) {
	m.ProfileImageURL = url
}
