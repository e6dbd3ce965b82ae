package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	catalogapp "github.com/catalog/backend/internal/application/catalog"
)

var _ catalogapp.ImageStorage = (*MemoryImageStorage)(nil)

// StoredObject is an object held by MemoryImageStorage
type StoredObject struct {
	ContentType string
	Data        []byte
}

// MemoryImageStorage keeps uploads in memory. It is used when object storage
// is disabled and in tests.
type MemoryImageStorage struct {
	mu      sync.RWMutex
	baseURL string
	objects map[string]StoredObject
}

// NewMemoryImageStorage creates a MemoryImageStorage serving URLs under baseURL
func NewMemoryImageStorage(baseURL string) *MemoryImageStorage {
	if baseURL == "" {
		baseURL = "http://localhost:8080/images"
	}
	return &MemoryImageStorage{
		baseURL: strings.TrimRight(baseURL, "/"),
		objects: make(map[string]StoredObject),
	}
}

// Upload reads body fully and stores it under key
func (s *MemoryImageStorage) Upload(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error) {
	if key == "" {
		return "", errors.New("storage key is required")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	n, err := io.Copy(&buf, body)
	if err != nil {
		return "", fmt.Errorf("failed to read upload: %w", err)
	}
	if size > 0 && n != size {
		return "", fmt.Errorf("upload size mismatch: declared %d, read %d", size, n)
	}

	s.mu.Lock()
	s.objects[key] = StoredObject{ContentType: contentType, Data: buf.Bytes()}
	s.mu.Unlock()
	return s.baseURL + "/" + key, nil
}

// Delete removes the object stored under key. Unknown keys are ignored.
func (s *MemoryImageStorage) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.New("storage key is required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	delete(s.objects, key)
	s.mu.Unlock()
	return nil
}

// Get returns a stored object
func (s *MemoryImageStorage) Get(key string) (StoredObject, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	obj, ok := s.objects[key]
	return obj, ok
}

// Len returns the number of stored objects
func (s *MemoryImageStorage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}
