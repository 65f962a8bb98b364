package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hansols27/QWER-Back-end/internal/repositories"
	"github.com/hansols27/QWER-Back-end/internal/services/dto"
	"github.com/hansols27/QWER-Back-end/internal/storage"
	"github.com/hansols27/QWER-Back-end/pkg/apperrors"
)

func newAlbumService(store storage.Storage) AlbumService {
	return NewAlbumService(repositories.NewAlbumRepository(), store, nil, UploadLimits{})
}

func TestAlbumService_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	store := storage.NewMemoryStorage("")
	svc := newAlbumService(store)
	ctx := context.Background()

	created, err := svc.Create(ctx, db, &dto.CreateAlbumRequest{
		Title:       "MANITO",
		Description: "2nd mini album",
		ReleaseDate: "2024-04-01",
		Tracks: []dto.TrackInput{
			{No: 1, Title: "T.B.H"},
			{No: 2, Title: "고민중독"},
		},
		Links: &dto.StreamingLinksInput{Spotify: "https://open.spotify.com/album/x"},
	}, newUpload("cover.jpg", "image/jpeg", []byte("cover")))
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "2024-04-01", created.ReleaseDate)
	assert.Len(t, created.Tracks, 2)
	assert.NotEmpty(t, created.CoverImage)

	got, err := svc.Get(ctx, db, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "MANITO", got.Title)
	assert.Equal(t, "https://open.spotify.com/album/x", got.Links.Spotify)
}

func TestAlbumService_CreateWithExistingIDReplaces(t *testing.T) {
	db := newTestDB(t)
	svc := newAlbumService(storage.NewMemoryStorage(""))
	ctx := context.Background()

	first, err := svc.Create(ctx, db, &dto.CreateAlbumRequest{Title: "v1"}, nil)
	require.NoError(t, err)

	second, err := svc.Create(ctx, db, &dto.CreateAlbumRequest{ID: first.ID, Title: "v2"}, nil)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	all, err := svc.List(ctx, db)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "v2", all[0].Title)
}

func TestAlbumService_UpdateMergesOnlySuppliedFields(t *testing.T) {
	db := newTestDB(t)
	svc := newAlbumService(storage.NewMemoryStorage(""))
	ctx := context.Background()

	created, err := svc.Create(ctx, db, &dto.CreateAlbumRequest{
		Title:       "Harmony from Discord",
		Description: "debut",
		ReleaseDate: "2023-10-18",
	}, nil)
	require.NoError(t, err)

	title := "Harmony from Discord (repackage)"
	updated, err := svc.Update(ctx, db, created.ID, &dto.UpdateAlbumRequest{Title: &title}, nil)
	require.NoError(t, err)

	assert.Equal(t, title, updated.Title)
	assert.Equal(t, "debut", updated.Description)
	assert.Equal(t, "2023-10-18", updated.ReleaseDate)
}

func TestAlbumService_UpdateMissingIsNotFound(t *testing.T) {
	db := newTestDB(t)
	store := storage.NewMemoryStorage("")
	svc := newAlbumService(store)

	title := "x"
	_, err := svc.Update(context.Background(), db, "no-such-album", &dto.UpdateAlbumRequest{Title: &title}, newUpload("c.jpg", "image/jpeg", []byte("c")))

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
	assert.Equal(t, 0, store.SaveCalls, "a miss must abort before the upload")
}

func TestAlbumService_CreateRejectsBadDate(t *testing.T) {
	db := newTestDB(t)
	store := storage.NewMemoryStorage("")
	svc := newAlbumService(store)

	_, err := svc.Create(context.Background(), db, &dto.CreateAlbumRequest{
		Title:       "x",
		ReleaseDate: "04/01/2024",
	}, newUpload("c.jpg", "image/jpeg", []byte("c")))

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.HTTPCode)
	assert.Equal(t, 0, store.SaveCalls)
}
