package metadata

import (
	"bytes"
	"context"
	"sync"
)

// MemoryRepository keeps entries for the lifetime of the process. It is
// safe for concurrent use. Values are copied on the way in and out.
type MemoryRepository struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{data: make(map[string][]byte)}
}

func (r *MemoryRepository) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.data[key]
	if !ok {
		return nil, nil
	}
	return bytes.Clone(v), nil
}

func (r *MemoryRepository) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if value == nil {
		value = []byte{}
	}
	r.mu.Lock()
	r.data[key] = bytes.Clone(value)
	r.mu.Unlock()
	return nil
}

func (r *MemoryRepository) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	delete(r.data, key)
	r.mu.Unlock()
	return nil
}

var (
	_ Repository = (*MemoryRepository)(nil)
	_ Repository = (*SQLiteRepository)(nil)
)
