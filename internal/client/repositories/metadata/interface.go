// Package metadata is the local key-value store: one row per key in the
// SQLite metadata table, each value an opaque blob. Higher layers keep whole
// JSON documents under fixed keys (see LoadJSON and StoreJSON).
package metadata

import "context"

// Repository reads and writes blobs by key. Get returns common.ErrorNotFound
// when the key is absent.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
