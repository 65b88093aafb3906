package badger

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/poiesic/docstore"
	"github.com/poiesic/docstore/schema"
	"github.com/poiesic/docstore/storage"
)

// SnapshotStore implements storage.SnapshotStore on BadgerDB. Snapshots are
// the store's dict form encoded as JSON; per-document hash records are kept
// under separate keys so DocumentHash never touches a snapshot.
type SnapshotStore struct {
	backend *Backend
	logger  *slog.Logger
}

var _ storage.SnapshotStore = (*SnapshotStore)(nil)

// NewSnapshotStore creates a SnapshotStore on the given backend.
func NewSnapshotStore(backend *Backend) *SnapshotStore {
	return &SnapshotStore{
		backend: backend,
		logger:  slog.Default(),
	}
}

// Close closes the underlying backend.
func (s *SnapshotStore) Close() error {
	return s.backend.Close()
}

// SaveStore writes a snapshot of the store under the given name.
func (s *SnapshotStore) SaveStore(ctx context.Context, name string, store *docstore.Store) error {
	if s.backend.IsClosed() {
		return storage.ErrStorageClosed
	}

	payload, err := json.Marshal(store.ToDict())
	if err != nil {
		return fmt.Errorf("%w: %w", storage.ErrSerializationFailed, err)
	}

	hashes := store.DocumentHashes()

	err = s.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Set(makeSnapshotKey(name), payload); err != nil {
			return err
		}

		// Replace hash records wholesale: stale entries from a previous
		// save would break change detection.
		if err := deletePrefix(tx, makeHashScanPrefix(name)); err != nil {
			return err
		}
		for docID, hash := range hashes {
			value := storage.MarshalRefDocInfo(docstore.RefDocInfo{DocHash: hash})
			if err := tx.Set(makeHashKey(name, docID), value); err != nil {
				return err
			}
		}

		return tx.Commit()
	}, true)
	if err != nil {
		return err
	}

	s.logger.Debug("snapshot saved", "name", name, "records", store.Len(), "bytes", len(payload))
	return nil
}

// LoadStore reconstructs the named store from its snapshot.
func (s *SnapshotStore) LoadStore(ctx context.Context, name string, registry schema.Registry) (*docstore.Store, error) {
	if s.backend.IsClosed() {
		return nil, storage.ErrStorageClosed
	}

	var payload []byte
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeSnapshotKey(name))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return fmt.Errorf("%w: %s", storage.ErrNotFound, name)
			}
			return err
		}
		payload, err = item.ValueCopy(nil)
		return err
	}, false)
	if err != nil {
		return nil, err
	}

	var data map[string]any
	if err := json.Unmarshal(payload, &data); err != nil {
		return nil, fmt.Errorf("%w: %w", storage.ErrSerializationFailed, err)
	}

	store, err := docstore.FromDict(data, registry)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("snapshot loaded", "name", name, "records", store.Len())
	return store, nil
}

// ListStores returns the names of all persisted snapshots.
func (s *SnapshotStore) ListStores(ctx context.Context) ([]string, error) {
	if s.backend.IsClosed() {
		return nil, storage.ErrStorageClosed
	}

	var names []string
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(snapshotPrefix)
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			key := iter.Item().Key()
			names = append(names, string(bytes.TrimPrefix(key, []byte(snapshotPrefix))))
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	return names, nil
}

// DeleteStore removes the named snapshot and its hash records.
func (s *SnapshotStore) DeleteStore(ctx context.Context, name string) error {
	if s.backend.IsClosed() {
		return storage.ErrStorageClosed
	}

	return s.backend.WithTx(func(tx *badger.Txn) error {
		if _, err := tx.Get(makeSnapshotKey(name)); err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return fmt.Errorf("%w: %s", storage.ErrNotFound, name)
			}
			return err
		}
		if err := tx.Delete(makeSnapshotKey(name)); err != nil {
			return err
		}
		if err := deletePrefix(tx, makeHashScanPrefix(name)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// DocumentHash reads one document's persisted content hash.
func (s *SnapshotStore) DocumentHash(ctx context.Context, name, docID string) (string, error) {
	if s.backend.IsClosed() {
		return "", storage.ErrStorageClosed
	}

	var hash string
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeHashKey(name, docID))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return fmt.Errorf("%w: %s", storage.ErrNotFound, docID)
			}
			return err
		}
		return item.Value(func(val []byte) error {
			info, err := storage.UnmarshalRefDocInfo(val)
			if err != nil {
				return fmt.Errorf("%w: %w", storage.ErrSerializationFailed, err)
			}
			hash = info.DocHash
			return nil
		})
	}, false)
	if err != nil {
		return "", err
	}

	return hash, nil
}

// deletePrefix removes every key under the given prefix within tx.
func deletePrefix(tx *badger.Txn, prefix []byte) error {
	opts := badger.DefaultIteratorOptions
	opts.Prefix = prefix
	opts.PrefetchValues = false
	iter := tx.NewIterator(opts)
	defer iter.Close()

	var keys [][]byte
	for iter.Rewind(); iter.Valid(); iter.Next() {
		keys = append(keys, iter.Item().KeyCopy(nil))
	}
	for _, key := range keys {
		if err := tx.Delete(key); err != nil {
			return err
		}
	}
	return nil
}
