package dto

import (
	"time"

	"github.com/hansols27/QWER-Back-end/internal/models"
	"github.com/hansols27/QWER-Back-end/internal/utils"
)

type CreateGalleryItemRequest struct {
	ID       string `json:"id" validate:"omitempty,max=64"`
	Title    string `json:"title" validate:"required,max=200"`
	ShotDate string `json:"shotDate" validate:"omitempty,datetime=2006-01-02"`
}

type UpdateGalleryItemRequest struct {
	Title    *string `json:"title" validate:"omitempty,max=200"`
	ShotDate *string `json:"shotDate" validate:"omitempty,datetime=2006-01-02"`
}

// BatchDeleteRequest asks for several items at once; ids that are missing
// are skipped, not errors.
type BatchDeleteRequest struct {
	IDs []string `json:"ids" validate:"required,min=1"`
}

type BatchDeleteResponse struct {
	Deleted []string `json:"deleted"`
}

type GalleryItemResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	ShotDate  string    `json:"shotDate"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func GalleryItemResponseFrom(g *models.GalleryItem) *GalleryItemResponse {
	shotDate := ""
	if g.ShotDate != nil {
		shotDate = utils.FormatKSTDate(*g.ShotDate)
	}
	return &GalleryItemResponse{
		ID:        g.ID,
		Title:     g.Title,
		ShotDate:  shotDate,
		Image:     g.ImageURL,
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}
}

func GalleryListResponseFrom(items []models.GalleryItem) []*GalleryItemResponse {
	out := make([]*GalleryItemResponse, 0, len(items))
	for i := range items {
		out = append(out, GalleryItemResponseFrom(&items[i]))
	}
	return out
}
