package services

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/hansols27/QWER-Back-end/database"
	"github.com/hansols27/QWER-Back-end/internal/models"
	"github.com/hansols27/QWER-Back-end/internal/repositories"
	"github.com/hansols27/QWER-Back-end/internal/storage"
	"github.com/hansols27/QWER-Back-end/pkg/apperrors"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A second pooled connection would see an empty in-memory database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.AutoMigrate(db))
	return db
}

func newUpload(name, contentType string, body []byte) *FileUpload {
	return &FileUpload{
		Filename:    name,
		ContentType: contentType,
		Size:        int64(len(body)),
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(body)), nil
		},
	}
}

func newGalleryEngine(store storage.Storage) *ImageResource[*models.GalleryItem] {
	repo := repositories.NewGalleryRepository()
	return NewImageResource(store, nil, UploadLimits{}, ImageResourceConfig[*models.GalleryItem]{
		Namespace: "gallery",
		Find:      repo.FindByID,
		Persist: func(tx *gorm.DB, item *models.GalleryItem) error {
			return repo.Save(tx, item)
		},
		Delete: repo.Delete,
	})
}

func galleryBuild(title string) BuildFunc[*models.GalleryItem] {
	return func(existing *models.GalleryItem, found bool) (*models.GalleryItem, error) {
		g := existing
		if !found {
			g = &models.GalleryItem{}
		}
		g.Title = title
		return g, nil
	}
}

func TestImageResource_SaveCreatesRowAndObject(t *testing.T) {
	db := newTestDB(t)
	store := storage.NewMemoryStorage("")
	engine := newGalleryEngine(store)

	item, err := engine.Save(context.Background(), db, "", galleryBuild("first"), newUpload("a.jpg", "image/jpeg", []byte("jpeg-bytes")))
	require.NoError(t, err)
	require.NotEmpty(t, item.ID)
	require.NotEmpty(t, item.ImageURL)
	assert.Equal(t, 1, store.Len())

	key, ok := store.KeyFromURL(item.ImageURL)
	require.True(t, ok)
	exists, err := store.Exists(context.Background(), key)
	require.NoError(t, err)
	assert.True(t, exists, "row must reference a stored object")
}

func TestImageResource_ReplaceDeletesOldObject(t *testing.T) {
	db := newTestDB(t)
	store := storage.NewMemoryStorage("")
	engine := newGalleryEngine(store)
	ctx := context.Background()

	item, err := engine.Save(ctx, db, "", galleryBuild("v1"), newUpload("a.jpg", "image/jpeg", []byte("one")))
	require.NoError(t, err)
	firstURL := item.ImageURL

	item, err = engine.Save(ctx, db, item.ID, galleryBuild("v2"), newUpload("b.jpg", "image/jpeg", []byte("two")))
	require.NoError(t, err)

	assert.NotEqual(t, firstURL, item.ImageURL, "replacement must get a fresh key")
	assert.Equal(t, 1, store.Len(), "old object must be cleaned up")

	oldKey, ok := store.KeyFromURL(firstURL)
	require.True(t, ok)
	exists, _ := store.Exists(ctx, oldKey)
	assert.False(t, exists)
}

func TestImageResource_SaveWithoutFileKeepsImage(t *testing.T) {
	db := newTestDB(t)
	store := storage.NewMemoryStorage("")
	engine := newGalleryEngine(store)
	ctx := context.Background()

	item, err := engine.Save(ctx, db, "", galleryBuild("v1"), newUpload("a.jpg", "image/jpeg", []byte("one")))
	require.NoError(t, err)
	url := item.ImageURL

	item, err = engine.Save(ctx, db, item.ID, galleryBuild("renamed"), nil)
	require.NoError(t, err)

	assert.Equal(t, "renamed", item.Title)
	assert.Equal(t, url, item.ImageURL)
	assert.Equal(t, 1, store.Len())
}

func TestImageResource_BuildErrorShortCircuitsStorage(t *testing.T) {
	db := newTestDB(t)
	store := storage.NewMemoryStorage("")
	engine := newGalleryEngine(store)

	boom := apperrors.NewBadRequestError("bad payload")
	_, err := engine.Save(context.Background(), db, "", func(existing *models.GalleryItem, found bool) (*models.GalleryItem, error) {
		return nil, boom
	}, newUpload("a.jpg", "image/jpeg", []byte("one")))

	require.ErrorIs(t, err, boom)
	assert.Equal(t, 0, store.SaveCalls, "validation failure must not touch storage")
	assert.Equal(t, 0, store.Len())
}

func TestImageResource_UploadFailureLeavesRowUnchanged(t *testing.T) {
	db := newTestDB(t)
	store := storage.NewMemoryStorage("")
	engine := newGalleryEngine(store)
	ctx := context.Background()

	item, err := engine.Save(ctx, db, "", galleryBuild("v1"), newUpload("a.jpg", "image/jpeg", []byte("one")))
	require.NoError(t, err)

	store.SaveErr = errors.New("bucket down")
	_, err = engine.Save(ctx, db, item.ID, galleryBuild("v2"), newUpload("b.jpg", "image/jpeg", []byte("two")))
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeStorageError, appErr.Code)

	current, err := repositories.NewGalleryRepository().FindByID(db, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "v1", current.Title)
	assert.Equal(t, item.ImageURL, current.ImageURL)
}

func TestImageResource_PersistFailureOrphansUploadOnly(t *testing.T) {
	db := newTestDB(t)
	store := storage.NewMemoryStorage("")
	repo := repositories.NewGalleryRepository()
	ctx := context.Background()

	seed := newGalleryEngine(store)
	item, err := seed.Save(ctx, db, "", galleryBuild("v1"), newUpload("a.jpg", "image/jpeg", []byte("one")))
	require.NoError(t, err)

	failing := NewImageResource(store, nil, UploadLimits{}, ImageResourceConfig[*models.GalleryItem]{
		Namespace: "gallery",
		Find:      repo.FindByID,
		Persist: func(tx *gorm.DB, g *models.GalleryItem) error {
			return errors.New("constraint violation")
		},
		Delete: repo.Delete,
	})

	_, err = failing.Save(ctx, db, item.ID, galleryBuild("v2"), newUpload("b.jpg", "image/jpeg", []byte("two")))
	require.Error(t, err)

	// The row still points at its original object, which must survive.
	current, err := repo.FindByID(db, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "v1", current.Title)
	assert.Equal(t, item.ImageURL, current.ImageURL)

	key, ok := store.KeyFromURL(current.ImageURL)
	require.True(t, ok)
	exists, _ := store.Exists(ctx, key)
	assert.True(t, exists, "object referenced by the live row must not be deleted")

	// The new upload stays behind as an orphan. Acceptable by contract.
	assert.Equal(t, 2, store.Len())
}

func TestImageResource_LimitsRejectOversizeAndWrongType(t *testing.T) {
	db := newTestDB(t)
	store := storage.NewMemoryStorage("")
	repo := repositories.NewGalleryRepository()
	engine := NewImageResource(store, nil, UploadLimits{
		MaxSize:      4,
		AllowedTypes: []string{"image/jpeg"},
	}, ImageResourceConfig[*models.GalleryItem]{
		Namespace: "gallery",
		Find:      repo.FindByID,
		Persist: func(tx *gorm.DB, g *models.GalleryItem) error {
			return repo.Save(tx, g)
		},
		Delete: repo.Delete,
	})
	ctx := context.Background()

	_, err := engine.Save(ctx, db, "", galleryBuild("big"), newUpload("a.jpg", "image/jpeg", []byte("way too large")))
	require.ErrorIs(t, err, apperrors.ErrFileTooLarge)
	assert.Equal(t, 400, apperrors.ErrFileTooLarge.HTTPCode, "limit breaches are validation failures")

	_, err = engine.Save(ctx, db, "", galleryBuild("pdf"), newUpload("a.pdf", "application/pdf", []byte("abc")))
	require.ErrorIs(t, err, apperrors.ErrInvalidFileType)
	assert.Equal(t, 400, apperrors.ErrInvalidFileType.HTTPCode)

	assert.Equal(t, 0, store.SaveCalls)
}

func TestImageResource_URLFailureAfterUploadOrphansObject(t *testing.T) {
	db := newTestDB(t)
	store := storage.NewMemoryStorage("")
	engine := newGalleryEngine(store)
	ctx := context.Background()

	store.GetURLErr = errors.New("endpoint misconfigured")
	_, err := engine.Save(ctx, db, "", galleryBuild("v1"), newUpload("a.jpg", "image/jpeg", []byte("one")))
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeStorageError, appErr.Code)

	// The uploaded object stays behind as an orphan; no row was written.
	assert.Equal(t, 1, store.Len())
	var count int64
	require.NoError(t, db.Table("gallery_items").Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestImageResource_DeleteRemovesRowAndObject(t *testing.T) {
	db := newTestDB(t)
	store := storage.NewMemoryStorage("")
	engine := newGalleryEngine(store)
	ctx := context.Background()

	item, err := engine.Save(ctx, db, "", galleryBuild("v1"), newUpload("a.jpg", "image/jpeg", []byte("one")))
	require.NoError(t, err)

	require.NoError(t, engine.Delete(ctx, db, item.ID))
	assert.Equal(t, 0, store.Len())

	_, err = repositories.NewGalleryRepository().FindByID(db, item.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestImageResource_DeleteMissingIsNotFoundWithoutSideEffects(t *testing.T) {
	db := newTestDB(t)
	store := storage.NewMemoryStorage("")
	engine := newGalleryEngine(store)
	ctx := context.Background()

	item, err := engine.Save(ctx, db, "", galleryBuild("v1"), newUpload("a.jpg", "image/jpeg", []byte("one")))
	require.NoError(t, err)

	calls := store.SaveCalls
	err = engine.Delete(ctx, db, "no-such-id")

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
	assert.Equal(t, 1, store.Len())
	assert.Equal(t, calls, store.SaveCalls)

	// Deleting twice: the second call finds nothing.
	require.NoError(t, engine.Delete(ctx, db, item.ID))
	err = engine.Delete(ctx, db, item.ID)
	appErr, ok = apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestImageResource_DeleteSurvivesStorageFailure(t *testing.T) {
	db := newTestDB(t)
	store := storage.NewMemoryStorage("")
	engine := newGalleryEngine(store)
	ctx := context.Background()

	item, err := engine.Save(ctx, db, "", galleryBuild("v1"), newUpload("a.jpg", "image/jpeg", []byte("one")))
	require.NoError(t, err)

	store.DeleteErr = errors.New("bucket down")
	require.NoError(t, engine.Delete(ctx, db, item.ID), "storage cleanup is best-effort")

	_, err = repositories.NewGalleryRepository().FindByID(db, item.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestImageResource_DeleteManyPartialSuccess(t *testing.T) {
	db := newTestDB(t)
	store := storage.NewMemoryStorage("")
	engine := newGalleryEngine(store)
	ctx := context.Background()

	a, err := engine.Save(ctx, db, "", galleryBuild("a"), newUpload("a.jpg", "image/jpeg", []byte("a")))
	require.NoError(t, err)
	b, err := engine.Save(ctx, db, "", galleryBuild("b"), newUpload("b.jpg", "image/jpeg", []byte("b")))
	require.NoError(t, err)

	removed := engine.DeleteMany(ctx, db, []string{a.ID, "missing", b.ID})
	assert.ElementsMatch(t, []string{a.ID, b.ID}, removed)
	assert.Equal(t, 0, store.Len())
}
