package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hansols27/QWER-Back-end/internal/repositories"
	"github.com/hansols27/QWER-Back-end/internal/services/dto"
	"github.com/hansols27/QWER-Back-end/internal/storage"
)

func newSettingsService(store storage.Storage) SettingsService {
	return NewSettingsService(repositories.NewSettingsRepository(), store, nil, UploadLimits{})
}

func TestSettingsService_GetReturnsDefaultsBeforeFirstWrite(t *testing.T) {
	db := newTestDB(t)
	svc := newSettingsService(storage.NewMemoryStorage(""))

	got, err := svc.Get(context.Background(), db)
	require.NoError(t, err)
	assert.Equal(t, "QWER", got.SiteTitle)
	assert.Empty(t, got.BannerImage)
}

func TestSettingsService_UpdateCreatesTheSingleton(t *testing.T) {
	db := newTestDB(t)
	store := storage.NewMemoryStorage("")
	svc := newSettingsService(store)
	ctx := context.Background()

	title := "QWER Official"
	about := "4-piece band"
	updated, err := svc.Update(ctx, db, &dto.UpdateSettingsRequest{
		SiteTitle: &title,
		AboutText: &about,
		SNS:       &dto.SNSLinksInput{Youtube: "https://youtube.com/@qwerband_official"},
	}, newUpload("banner.png", "image/png", []byte("banner")))
	require.NoError(t, err)
	assert.Equal(t, "QWER Official", updated.SiteTitle)
	assert.NotEmpty(t, updated.BannerImage)

	got, err := svc.Get(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, "QWER Official", got.SiteTitle)
	assert.Equal(t, "4-piece band", got.AboutText)
	assert.Equal(t, "https://youtube.com/@qwerband_official", got.SNS.Youtube)
}

func TestSettingsService_RepeatedUpdateKeepsOneRowOneObject(t *testing.T) {
	db := newTestDB(t)
	store := storage.NewMemoryStorage("")
	svc := newSettingsService(store)
	ctx := context.Background()

	title := "first"
	_, err := svc.Update(ctx, db, &dto.UpdateSettingsRequest{SiteTitle: &title}, newUpload("a.png", "image/png", []byte("a")))
	require.NoError(t, err)

	title = "second"
	updated, err := svc.Update(ctx, db, &dto.UpdateSettingsRequest{SiteTitle: &title}, newUpload("b.png", "image/png", []byte("b")))
	require.NoError(t, err)

	assert.Equal(t, "second", updated.SiteTitle)
	assert.Equal(t, 1, store.Len(), "replaced banner must be cleaned up")
}

func TestSettingsService_PartialUpdateKeepsStoredValues(t *testing.T) {
	db := newTestDB(t)
	svc := newSettingsService(storage.NewMemoryStorage(""))
	ctx := context.Background()

	title := "QWER Official"
	footer := "© QWER"
	_, err := svc.Update(ctx, db, &dto.UpdateSettingsRequest{SiteTitle: &title, FooterText: &footer}, nil)
	require.NoError(t, err)

	about := "now with an about text"
	got, err := svc.Update(ctx, db, &dto.UpdateSettingsRequest{AboutText: &about}, nil)
	require.NoError(t, err)

	assert.Equal(t, "QWER Official", got.SiteTitle)
	assert.Equal(t, "© QWER", got.FooterText)
	assert.Equal(t, "now with an about text", got.AboutText)
}
