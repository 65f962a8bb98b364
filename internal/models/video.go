package models

import "time"

type Video struct {
	BaseModel
	Title       string     `gorm:"not null"`
	URL         string     `gorm:"not null"` // external (YouTube) link
	Category    string     `gorm:"index"`    // mv, stage, behind, cover, ...
	PublishedAt *time.Time `gorm:"index"`
}

func (Video) TableName() string {
	return "videos"
}
