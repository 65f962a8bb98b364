package dto

import (
	"time"

	"github.com/hansols27/QWER-Back-end/internal/models"
	"github.com/hansols27/QWER-Back-end/internal/utils"
)

type TrackInput struct {
	No    int    `json:"no" validate:"min=1"`
	Title string `json:"title" validate:"required"`
}

type StreamingLinksInput struct {
	Melon      string `json:"melon" validate:"omitempty,url"`
	Spotify    string `json:"spotify" validate:"omitempty,url"`
	AppleMusic string `json:"appleMusic" validate:"omitempty,url"`
	Youtube    string `json:"youtube" validate:"omitempty,url"`
}

// CreateAlbumRequest is the metadata part of an album create. The cover
// image rides alongside it as a multipart file part.
type CreateAlbumRequest struct {
	ID          string               `json:"id" validate:"omitempty,max=64"`
	Title       string               `json:"title" validate:"required,max=200"`
	Description string               `json:"description"`
	ReleaseDate string               `json:"releaseDate" validate:"omitempty,datetime=2006-01-02"`
	Tracks      []TrackInput         `json:"tracks" validate:"dive"`
	Links       *StreamingLinksInput `json:"links"`
}

// UpdateAlbumRequest carries partial updates: nil fields keep the stored
// value, non-nil fields replace it.
type UpdateAlbumRequest struct {
	Title       *string              `json:"title" validate:"omitempty,max=200"`
	Description *string              `json:"description"`
	ReleaseDate *string              `json:"releaseDate" validate:"omitempty,datetime=2006-01-02"`
	Tracks      *[]TrackInput        `json:"tracks" validate:"omitempty,dive"`
	Links       *StreamingLinksInput `json:"links"`
}

type AlbumResponse struct {
	ID          string                `json:"id"`
	Title       string                `json:"title"`
	Description string                `json:"description"`
	ReleaseDate string                `json:"releaseDate"`
	Tracks      []models.AlbumTrack   `json:"tracks"`
	Links       models.StreamingLinks `json:"links"`
	CoverImage  string                `json:"coverImage"`
	CreatedAt   time.Time             `json:"createdAt"`
	UpdatedAt   time.Time             `json:"updatedAt"`
}

func AlbumResponseFrom(a *models.Album) *AlbumResponse {
	releaseDate := ""
	if a.ReleaseDate != nil {
		releaseDate = utils.FormatKSTDate(*a.ReleaseDate)
	}
	tracks := a.Tracks.Data()
	if tracks == nil {
		tracks = []models.AlbumTrack{}
	}
	return &AlbumResponse{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		ReleaseDate: releaseDate,
		Tracks:      tracks,
		Links:       a.Links.Data(),
		CoverImage:  a.CoverImageURL,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func AlbumListResponseFrom(albums []models.Album) []*AlbumResponse {
	out := make([]*AlbumResponse, 0, len(albums))
	for i := range albums {
		out = append(out, AlbumResponseFrom(&albums[i]))
	}
	return out
}
