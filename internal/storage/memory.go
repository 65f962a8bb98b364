package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"
	"time"
)

// MemoryStorage keeps objects in a map. It backs tests and throwaway
// development setups where neither a bucket nor a writable disk exists.
type MemoryStorage struct {
	mu      sync.RWMutex
	objects map[string][]byte
	baseURL string

	// SaveErr, when set, makes every Save fail. Tests use it to exercise
	// the upload-failure path of the upsert protocol.
	SaveErr error
	// DeleteErr, when set, makes every Delete fail.
	DeleteErr error
	// GetURLErr, when set, makes every GetURL fail.
	GetURLErr error

	// SaveCalls counts Save invocations, failed ones included.
	SaveCalls int
}

// NewMemoryStorage creates an in-memory storage instance.
func NewMemoryStorage(baseURL string) *MemoryStorage {
	if baseURL == "" {
		baseURL = "https://cdn.test"
	}
	return &MemoryStorage{
		objects: make(map[string][]byte),
		baseURL: baseURL,
	}
}

// Save stores the object in memory.
func (s *MemoryStorage) Save(ctx context.Context, key string, reader io.Reader, contentType string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.SaveCalls++
	if s.SaveErr != nil {
		return s.SaveErr
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	s.objects[key] = data
	return nil
}

// Get retrieves an object.
func (s *MemoryStorage) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.objects[key]
	if !ok {
		return nil, fmt.Errorf("object not found: %s", key)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

// Delete removes an object. Missing keys are not an error.
func (s *MemoryStorage) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.DeleteErr != nil {
		return s.DeleteErr
	}
	delete(s.objects, key)
	return nil
}

// Exists checks whether an object is stored.
func (s *MemoryStorage) Exists(ctx context.Context, key string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.objects[key]
	return ok, nil
}

// GetURL returns a public URL for the key.
func (s *MemoryStorage) GetURL(ctx context.Context, key string) (string, error) {
	if s.GetURLErr != nil {
		return "", s.GetURLErr
	}
	return fmt.Sprintf("%s/%s", s.baseURL, key), nil
}

// KeyFromURL inverts GetURL.
func (s *MemoryStorage) KeyFromURL(url string) (string, bool) {
	return keyFromPrefixedURL(url, s.baseURL)
}

// GetSignedURL returns a plain URL; memory storage has no signing.
func (s *MemoryStorage) GetSignedURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	return s.GetURL(ctx, key)
}

// GetSize returns the size of an object.
func (s *MemoryStorage) GetSize(ctx context.Context, key string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.objects[key]
	if !ok {
		return 0, fmt.Errorf("object not found: %s", key)
	}
	return int64(len(data)), nil
}

// Len reports how many objects are currently stored.
func (s *MemoryStorage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}
