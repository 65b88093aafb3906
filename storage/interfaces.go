package storage

import (
	"context"

	"github.com/poiesic/docstore"
	"github.com/poiesic/docstore/schema"
)

// SnapshotStore persists named document store snapshots.
type SnapshotStore interface {
	// SaveStore writes a snapshot of the store under the given name,
	// replacing any previous snapshot and its hash records.
	SaveStore(ctx context.Context, name string, store *docstore.Store) error

	// LoadStore reconstructs the named store from its snapshot. Index
	// struct tags are resolved through the given registry.
	// Returns ErrNotFound if no snapshot exists under the name.
	LoadStore(ctx context.Context, name string, registry schema.Registry) (*docstore.Store, error)

	// ListStores returns the names of all persisted snapshots.
	ListStores(ctx context.Context) ([]string, error)

	// DeleteStore removes the named snapshot and its hash records.
	// Returns ErrNotFound if no snapshot exists under the name.
	DeleteStore(ctx context.Context, name string) error

	// DocumentHash reads the persisted content hash of a single document
	// without loading the snapshot.
	// Returns ErrNotFound if no hash record exists.
	DocumentHash(ctx context.Context, name, docID string) (string, error)

	// Close closes the storage backend and releases resources.
	Close() error
}
