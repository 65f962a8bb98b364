package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Storage is the object-store contract the content resources depend on.
//
// Delete is idempotent: removing a missing object is not an error, so
// callers replace objects without a prior existence check.
type Storage interface {
	// Save stores a file under the given key.
	Save(ctx context.Context, key string, reader io.Reader, contentType string) error

	// Get retrieves a file by key.
	Get(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes a file. Missing objects are ignored.
	Delete(ctx context.Context, key string) error

	// Exists checks whether a file exists.
	Exists(ctx context.Context, key string) (bool, error)

	// GetURL returns a public URL for the key.
	GetURL(ctx context.Context, key string) (string, error)

	// KeyFromURL inverts GetURL. A URL this adapter did not produce
	// returns ok=false; callers then skip deletion instead of failing.
	KeyFromURL(url string) (key string, ok bool)

	// GetSignedURL returns a temporary signed URL for private files.
	GetSignedURL(ctx context.Context, key string, expiry time.Duration) (string, error)

	// GetSize returns the size of a file in bytes.
	GetSize(ctx context.Context, key string) (int64, error)
}

// Config holds storage configuration.
type Config struct {
	Type       string // local, s3, cloudflare_r2, memory
	BasePath   string // for local storage
	BaseURL    string // public URL base
	Bucket     string // for S3/R2
	Region     string // for S3
	AccessKey  string // for S3/R2
	SecretKey  string // for S3/R2
	Endpoint   string // for R2 or custom S3
	UseSSL     bool
	PublicRead bool
}

// NewStorage creates a storage instance for the configured backend.
func NewStorage(cfg Config) (Storage, error) {
	switch cfg.Type {
	case "local":
		return NewLocalStorage(cfg)
	case "s3":
		return NewS3Storage(cfg)
	case "cloudflare_r2":
		return NewCloudflareR2Storage(cfg)
	case "memory":
		return NewMemoryStorage(cfg.BaseURL), nil
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}

// NewKey derives a fresh object key: "<namespace>/<uuid><ext>".
// Every upload gets a new key; keys are never reused across replacements,
// so a failed upload can never clobber the object a row still references.
func NewKey(namespace, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return fmt.Sprintf("%s/%s%s", namespace, uuid.NewString(), ext)
}

// keyFromPrefixedURL strips "<baseURL>/" from a URL, returning the key.
func keyFromPrefixedURL(url, baseURL string) (string, bool) {
	prefix := strings.TrimSuffix(baseURL, "/") + "/"
	if !strings.HasPrefix(url, prefix) {
		return "", false
	}
	key := strings.TrimPrefix(url, prefix)
	if key == "" {
		return "", false
	}
	return key, true
}
