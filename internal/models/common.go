package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BaseModel struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// BeforeCreate assigns an id when the caller did not supply one.
// Generating in the application rather than the database keeps the scheme
// identical across postgres and the sqlite test databases.
func (m *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// ImageBacked is implemented by every model that pairs its row with a
// stored image object. The generic upsert engine works through it.
type ImageBacked interface {
	GetID() string
	GetImageURL() string
	SetImageURL(url string)
}

func (m *BaseModel) GetID() string {
	return m.ID
}
