package models

import "time"

type Schedule struct {
	BaseModel
	Title       string    `gorm:"not null"`
	Description string    `gorm:"type:text"`
	Category    string    `gorm:"index"` // concert, broadcast, release, fansign, ...
	Date        time.Time `gorm:"not null;index"`
}

func (Schedule) TableName() string {
	return "schedules"
}
