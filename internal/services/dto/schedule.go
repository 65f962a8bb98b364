package dto

import (
	"time"

	"github.com/hansols27/QWER-Back-end/internal/models"
	"github.com/hansols27/QWER-Back-end/internal/utils"
)

type CreateScheduleRequest struct {
	ID          string `json:"id" validate:"omitempty,max=64"`
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description"`
	Category    string `json:"category" validate:"max=50"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
}

type UpdateScheduleRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=200"`
	Description *string `json:"description"`
	Category    *string `json:"category" validate:"omitempty,max=50"`
	Date        *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

type ScheduleResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Date        string    `json:"date"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func ScheduleResponseFrom(s *models.Schedule) *ScheduleResponse {
	return &ScheduleResponse{
		ID:          s.ID,
		Title:       s.Title,
		Description: s.Description,
		Category:    s.Category,
		Date:        utils.FormatKSTDate(s.Date),
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func ScheduleListResponseFrom(schedules []models.Schedule) []*ScheduleResponse {
	out := make([]*ScheduleResponse, 0, len(schedules))
	for i := range schedules {
		out = append(out, ScheduleResponseFrom(&schedules[i]))
	}
	return out
}
