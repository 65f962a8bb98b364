package models

import (
	"time"

	"gorm.io/datatypes"
)

// AlbumTrack is one entry of an album's track list, stored as part of a
// JSON column.
type AlbumTrack struct {
	No    int    `json:"no"`
	Title string `json:"title"`
}

// StreamingLinks holds per-platform listen links. Absent platforms
// serialize as empty strings so the client always sees every key.
type StreamingLinks struct {
	Melon      string `json:"melon"`
	Spotify    string `json:"spotify"`
	AppleMusic string `json:"appleMusic"`
	Youtube    string `json:"youtube"`
}

type Album struct {
	BaseModel
	Title         string                              `gorm:"not null"`
	Description   string                              `gorm:"type:text"`
	ReleaseDate   *time.Time                          `gorm:"index"`
	Tracks        datatypes.JSONType[[]AlbumTrack]    `gorm:"column:tracks"`
	Links         datatypes.JSONType[StreamingLinks]  `gorm:"column:links"`
	CoverImageURL string                              `gorm:"column:cover_image_url"`
}

func (Album) TableName() string {
	return "albums"
}

func (a *Album) GetImageURL() string {
	return a.CoverImageURL
}

func (a *Album) SetImageURL(url string) {
	a.CoverImageURL = url
}
