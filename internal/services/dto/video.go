package dto

import (
	"time"

	"github.com/hansols27/QWER-Back-end/internal/models"
	"github.com/hansols27/QWER-Back-end/internal/utils"
)

type CreateVideoRequest struct {
	ID          string `json:"id" validate:"omitempty,max=64"`
	Title       string `json:"title" validate:"required,max=200"`
	URL         string `json:"url" validate:"required,url"`
	Category    string `json:"category" validate:"max=50"`
	PublishedAt string `json:"publishedAt" validate:"omitempty,datetime=2006-01-02"`
}

type UpdateVideoRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=200"`
	URL         *string `json:"url" validate:"omitempty,url"`
	Category    *string `json:"category" validate:"omitempty,max=50"`
	PublishedAt *string `json:"publishedAt" validate:"omitempty,datetime=2006-01-02"`
}

type VideoResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Category    string    `json:"category"`
	PublishedAt string    `json:"publishedAt"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func VideoResponseFrom(v *models.Video) *VideoResponse {
	publishedAt := ""
	if v.PublishedAt != nil {
		publishedAt = utils.FormatKSTDate(*v.PublishedAt)
	}
	return &VideoResponse{
		ID:          v.ID,
		Title:       v.Title,
		URL:         v.URL,
		Category:    v.Category,
		PublishedAt: publishedAt,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

func VideoListResponseFrom(videos []models.Video) []*VideoResponse {
	out := make([]*VideoResponse, 0, len(videos))
	for i := range videos {
		out = append(out, VideoResponseFrom(&videos[i]))
	}
	return out
}
