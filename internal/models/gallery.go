package models

import "time"

// GalleryItem is one published photo. The image object is mandatory for a
// live item; the row is created together with its first upload.
type GalleryItem struct {
	BaseModel
	Title    string     `gorm:"not null"`
	ShotDate *time.Time `gorm:"index"`
	ImageURL string     `gorm:"column:image_url"`
}

func (GalleryItem) TableName() string {
	return "gallery_items"
}

func (g *GalleryItem) GetImageURL() string {
	return g.ImageURL
}

func (g *GalleryItem) SetImageURL(url string) {
	g.ImageURL = url
}
