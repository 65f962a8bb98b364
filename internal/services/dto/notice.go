package dto

import (
	"time"

	"github.com/hansols27/QWER-Back-end/internal/models"
)

type CreateNoticeRequest struct {
	ID      string `json:"id" validate:"omitempty,max=64"`
	Title   string `json:"title" validate:"required,max=200"`
	Content string `json:"content" validate:"required"`
	Pinned  bool   `json:"pinned"`
}

type UpdateNoticeRequest struct {
	Title   *string `json:"title" validate:"omitempty,max=200"`
	Content *string `json:"content"`
	Pinned  *bool   `json:"pinned"`
}

type NoticeResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Pinned    bool      `json:"pinned"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NoticeResponseFrom(n *models.Notice) *NoticeResponse {
	return &NoticeResponse{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		Pinned:    n.Pinned,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

func NoticeListResponseFrom(notices []models.Notice) []*NoticeResponse {
	out := make([]*NoticeResponse, 0, len(notices))
	for i := range notices {
		out = append(out, NoticeResponseFrom(&notices[i]))
	}
	return out
}
