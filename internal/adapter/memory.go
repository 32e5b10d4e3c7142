package adapter

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// MemoryBlobStore is a [BlobStore] backed by a map. It serves dry runs
// (--store=memory) and tests that want real store semantics without a
// network.
type MemoryBlobStore struct {
	mu      sync.RWMutex
	objects map[string][]byte
}

// NewMemoryBlobStore returns an empty store.
func NewMemoryBlobStore() *MemoryBlobStore {
	return &MemoryBlobStore{objects: make(map[string][]byte)}
}

// Put implements [BlobStore].
func (m *MemoryBlobStore) Put(ctx context.Context, key string, content []byte) error {
	if err := validateKey(key); err != nil {
		return fmt.Errorf("%w: %w", ErrUpload, err)
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrUpload, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = append([]byte(nil), content...)
	return nil
}

// Get implements [BlobStore].
func (m *MemoryBlobStore) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDownload, err)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	content, ok := m.objects[key]
	if !ok {
		return nil, fmt.Errorf("%s: %w", key, ErrNotFound)
	}
	return append([]byte(nil), content...), nil
}

// List implements [BlobStore]. Keys come back in map order, which is
// deliberately random.
func (m *MemoryBlobStore) List(ctx context.Context, prefix string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrList, err)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := make([]string, 0, len(m.objects))
	for k := range m.objects {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	return keys, nil
}

// Delete implements [BlobStore].
func (m *MemoryBlobStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrDelete, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, key)
	return nil
}

// Len returns the number of stored objects.
func (m *MemoryBlobStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.objects)
}
