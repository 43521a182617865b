// Package metadata holds the client's key/value storage areas.
//
// The CLI keeps two areas: a process-scoped one that disappears when the
// program exits (MemoryRepository) and a durable one backed by the local
// SQLite file (SQLiteRepository). Both satisfy Repository.
package metadata

import (
	"context"
)

// Repository is a flat string-keyed blob store. Get returns (nil, nil)
// for a missing key; Delete of a missing key is not an error.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
