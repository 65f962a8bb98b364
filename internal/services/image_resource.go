package services

import (
	"context"
	"errors"
	"io"
	"strings"

	"gorm.io/gorm"

	"github.com/hansols27/QWER-Back-end/internal/imageprocessor"
	"github.com/hansols27/QWER-Back-end/internal/logger"
	"github.com/hansols27/QWER-Back-end/internal/models"
	"github.com/hansols27/QWER-Back-end/internal/repositories"
	"github.com/hansols27/QWER-Back-end/internal/storage"
	"github.com/hansols27/QWER-Back-end/pkg/apperrors"
)

// FileUpload is one multipart file part, extracted by the handler so the
// service layer never sees HTTP types.
type FileUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Open        func() (io.ReadCloser, error)
}

// UploadLimits is the per-file guard applied before any byte reaches storage.
type UploadLimits struct {
	MaxSize      int64
	AllowedTypes []string
}

// BuildFunc validates the incoming fields and merges them over the existing
// record. found is false on first create, in which case existing is nil.
// Returning an error aborts the save before anything touches storage.
type BuildFunc[T models.ImageBacked] func(existing T, found bool) (T, error)

// ImageResourceConfig binds the engine to one resource's data access.
type ImageResourceConfig[T models.ImageBacked] struct {
	// Namespace prefixes every object key ("albums", "gallery", ...).
	Namespace string
	// Find loads the current record; a miss must wrap repositories.ErrNotFound.
	Find func(db *gorm.DB, id string) (T, error)
	// Persist upserts the record inside the given transaction.
	Persist func(tx *gorm.DB, rec T) error
	// Delete removes the row, reporting rows affected.
	Delete func(db *gorm.DB, id string) (int64, error)
}

// ImageResource implements the save/delete protocol shared by every
// resource that pairs a database row with a stored image.
//
// Ordering on save is fixed: validate, upload the replacement under a fresh
// key, commit the row, and only then remove the old object. A failure at
// any step leaves the previous row and its object untouched; the one
// accepted anomaly is a logged storage orphan when the row commit fails
// after a successful upload, since an orphan is recoverable while a row
// pointing at a missing object is not.
type ImageResource[T models.ImageBacked] struct {
	cfg    ImageResourceConfig[T]
	store  storage.Storage
	proc   *imageprocessor.Processor // nil disables normalization
	limits UploadLimits
}

// NewImageResource builds the save/delete engine for one resource.
func NewImageResource[T models.ImageBacked](
	store storage.Storage,
	proc *imageprocessor.Processor,
	limits UploadLimits,
	cfg ImageResourceConfig[T],
) *ImageResource[T] {
	return &ImageResource[T]{
		cfg:    cfg,
		store:  store,
		proc:   proc,
		limits: limits,
	}
}

// Save upserts the record identified by id, optionally replacing its image.
// id == "" always creates. Returns the record as persisted.
func (r *ImageResource[T]) Save(ctx context.Context, db *gorm.DB, id string, build BuildFunc[T], file *FileUpload) (T, error) {
	var zero T

	var existing T
	found := false
	if id != "" {
		rec, err := r.cfg.Find(db, id)
		switch {
		case err == nil:
			existing = rec
			found = true
		case errors.Is(err, repositories.ErrNotFound):
			// first write under a caller-chosen id
		default:
			return zero, apperrors.DatabaseError(err)
		}
	}

	var oldURL string
	if found {
		oldURL = existing.GetImageURL()
	}

	rec, err := build(existing, found)
	if err != nil {
		return zero, err
	}

	var newKey string
	if file != nil {
		key, err := r.upload(ctx, file)
		if err != nil {
			return zero, err
		}
		url, err := r.store.GetURL(ctx, key)
		if err != nil {
			// The object is already stored; without a URL the row will
			// never reference it, so record the orphan like the
			// commit-failure path does.
			r.logOrphan(ctx, key, err)
			return zero, apperrors.ErrStorageWrite(err)
		}
		rec.SetImageURL(url)
		newKey = key
	}

	tx := db.Begin()
	if tx.Error != nil {
		r.logOrphan(ctx, newKey, tx.Error)
		return zero, apperrors.DatabaseError(tx.Error)
	}
	defer tx.Rollback()

	if err := r.cfg.Persist(tx, rec); err != nil {
		r.logOrphan(ctx, newKey, err)
		return zero, apperrors.DatabaseError(err)
	}
	if err := tx.Commit().Error; err != nil {
		r.logOrphan(ctx, newKey, err)
		return zero, apperrors.DatabaseError(err)
	}

	// The row now references the new object; the old one is unreachable
	// and can go. Failures here are logged, never surfaced: the write
	// already succeeded.
	if newKey != "" && oldURL != "" {
		r.deleteByURL(ctx, oldURL)
	}

	return rec, nil
}

// Delete removes the record and its stored object. A missing id is
// NotFound with no side effects; losing the row-delete race to a
// concurrent request still counts as success.
func (r *ImageResource[T]) Delete(ctx context.Context, db *gorm.DB, id string) error {
	rec, err := r.cfg.Find(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.DatabaseError(err)
	}

	if url := rec.GetImageURL(); url != "" {
		r.deleteByURL(ctx, url)
	}

	if _, err := r.cfg.Delete(db, id); err != nil {
		return apperrors.DatabaseError(err)
	}
	return nil
}

// DeleteMany applies Delete per id independently and returns the ids
// actually removed. A missing id or failed cleanup never aborts the batch.
func (r *ImageResource[T]) DeleteMany(ctx context.Context, db *gorm.DB, ids []string) []string {
	removed := make([]string, 0, len(ids))
	for _, id := range ids {
		if err := r.Delete(ctx, db, id); err != nil {
			logger.CtxWarn(ctx, "batch delete: skipping id",
				"namespace", r.cfg.Namespace, "id", id, "error", err.Error())
			continue
		}
		removed = append(removed, id)
	}
	return removed
}

// upload guards, normalizes and stores the file under a fresh key.
// The previous key is never reused: a half-written replacement must not
// be able to corrupt the object the live row still references.
func (r *ImageResource[T]) upload(ctx context.Context, file *FileUpload) (string, error) {
	if err := r.checkFile(file); err != nil {
		return "", err
	}

	reader, err := file.Open()
	if err != nil {
		return "", apperrors.NewBadRequestError("Unable to read uploaded file")
	}
	defer reader.Close()

	var body io.Reader = reader
	if r.proc != nil {
		body, err = r.proc.Normalize(reader, file.ContentType)
		if err != nil {
			return "", apperrors.NewBadRequestError("Uploaded file is not a readable image")
		}
	}

	key := storage.NewKey(r.cfg.Namespace, file.Filename)
	if err := r.store.Save(ctx, key, body, file.ContentType); err != nil {
		return "", apperrors.ErrStorageWrite(err)
	}
	return key, nil
}

func (r *ImageResource[T]) checkFile(file *FileUpload) error {
	if r.limits.MaxSize > 0 && file.Size > r.limits.MaxSize {
		return apperrors.ErrFileTooLarge
	}
	if len(r.limits.AllowedTypes) == 0 {
		return nil
	}
	ct := strings.ToLower(file.ContentType)
	for _, allowed := range r.limits.AllowedTypes {
		if ct == allowed {
			return nil
		}
	}
	return apperrors.ErrInvalidFileType
}

// deleteByURL is the best-effort cleanup step. A URL the adapter cannot
// parse back into a key is skipped, and delete failures are logged only.
func (r *ImageResource[T]) deleteByURL(ctx context.Context, url string) {
	key, ok := r.store.KeyFromURL(url)
	if !ok {
		logger.CtxWarn(ctx, "storage cleanup: cannot derive key from url, skipping",
			"namespace", r.cfg.Namespace, "url", url)
		return
	}
	if err := r.store.Delete(ctx, key); err != nil {
		logger.CtxWarn(ctx, "storage cleanup failed, object orphaned",
			"namespace", r.cfg.Namespace, "key", key, "error", err.Error())
	}
}

func (r *ImageResource[T]) logOrphan(ctx context.Context, key string, cause error) {
	if key == "" {
		return
	}
	logger.CtxError(ctx, "save failed after upload, object orphaned",
		"namespace", r.cfg.Namespace, "key", key, "error", cause.Error())
}
