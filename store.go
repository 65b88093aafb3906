// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package docstore implements an in-process keyed store for polymorphic
// records: raw documents and the index structs derived from them.
//
// A Store holds two maps: the records themselves, keyed by identifier, and a
// small per-identifier bookkeeping entry carrying the content hash observed
// when the record was inserted. Stores serialize to a plain dict
// (map[string]any) and are reconstructed from one through a caller-supplied
// schema.Registry; persisting the dict to disk or elsewhere is the job of the
// storage package, not of the Store.
//
// A Store performs no locking. Hosts mutating a Store from multiple
// goroutines must provide their own mutual exclusion.
package docstore

import (
	"fmt"
	"slices"

	"github.com/poiesic/docstore/schema"
)

// TypeKey is the dict key holding a record's type tag. It is reserved:
// record dicts must not use it as a field name.
const TypeKey = "__type__"

// RefDocInfo is the per-identifier bookkeeping entry. It currently carries
// only the content hash; an empty DocHash means no hash was recorded.
type RefDocInfo struct {
	DocHash string
}

func (i RefDocInfo) toDict() map[string]any {
	dict := map[string]any{}
	if i.DocHash != "" {
		dict["doc_hash"] = i.DocHash
	}
	return dict
}

// Store is the document store. The zero value is not usable; create stores
// with New, FromRecords or FromDict.
type Store struct {
	docs       map[string]schema.Record
	refDocInfo map[string]RefDocInfo
}

// New creates an empty store.
func New() *Store {
	return &Store{
		docs:       make(map[string]schema.Record),
		refDocInfo: make(map[string]RefDocInfo),
	}
}

// FromRecords creates a store holding the given records. Every record must
// carry a distinct identifier.
func FromRecords(records []schema.Record) (*Store, error) {
	store := New()
	if err := store.AddRecords(records, false); err != nil {
		return nil, err
	}
	return store, nil
}

// AddRecords inserts records in order. A record without an identifier fails
// with ErrMissingDocID; when allowUpdate is false, an identifier collision
// fails with ErrDuplicateDocID. The batch is not atomic: records processed
// before the failing one stay inserted.
//
// Inserting a record also records its content hash, overwriting any hash set
// earlier for the same identifier.
func (s *Store) AddRecords(records []schema.Record, allowUpdate bool) error {
	for _, record := range records {
		if !record.HasID() {
			return ErrMissingDocID
		}

		docID := record.ID()
		if !allowUpdate && s.Exists(docID) {
			return fmt.Errorf("%w: %s (set allowUpdate to overwrite)", ErrDuplicateDocID, docID)
		}

		s.docs[docID] = record
		s.refDocInfo[docID] = RefDocInfo{DocHash: record.ContentHash()}
	}
	return nil
}

// Merge copies every record of other into s, overwriting on collision.
// Bookkeeping entries are deliberately not merged: callers merging stores
// must reconcile hashes themselves if they depend on them.
func (s *Store) Merge(other *Store) {
	for docID, record := range other.docs {
		s.docs[docID] = record
	}
}

// Get returns the record stored under docID, or ErrNotFound.
func (s *Store) Get(docID string) (schema.Record, error) {
	record, ok := s.docs[docID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, docID)
	}
	return record, nil
}

// Lookup is the non-strict variant of Get.
func (s *Store) Lookup(docID string) (schema.Record, bool) {
	record, ok := s.docs[docID]
	return record, ok
}

// Exists reports whether a record is stored under docID.
func (s *Store) Exists(docID string) bool {
	_, ok := s.docs[docID]
	return ok
}

// Delete removes and returns the record stored under docID, or ErrNotFound.
// The bookkeeping entry for docID is removed even when the record is absent.
func (s *Store) Delete(docID string) (schema.Record, error) {
	record, ok := s.Remove(docID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, docID)
	}
	return record, nil
}

// Remove is the non-strict variant of Delete.
func (s *Store) Remove(docID string) (schema.Record, bool) {
	record, ok := s.docs[docID]
	delete(s.docs, docID)
	delete(s.refDocInfo, docID)
	return record, ok
}

// SetDocumentHash records a content hash for docID. The identifier does not
// need to have a record: the bookkeeping map has its own lifecycle.
func (s *Store) SetDocumentHash(docID, hash string) {
	s.refDocInfo[docID] = RefDocInfo{DocHash: hash}
}

// DocumentHash returns the recorded content hash for docID. It reports false
// when no entry exists or no hash was recorded.
func (s *Store) DocumentHash(docID string) (string, bool) {
	info, ok := s.refDocInfo[docID]
	if !ok || info.DocHash == "" {
		return "", false
	}
	return info.DocHash, true
}

// DocumentHashes returns a copy of all recorded identifier-to-hash pairs.
func (s *Store) DocumentHashes() map[string]string {
	hashes := make(map[string]string, len(s.refDocInfo))
	for docID, info := range s.refDocInfo {
		if info.DocHash != "" {
			hashes[docID] = info.DocHash
		}
	}
	return hashes
}

// ContainsIndexStruct reports whether at least one stored record is an index
// struct whose identifier is not in excludeIDs. Callers use it to detect
// whether a store has moved past raw-document state.
func (s *Store) ContainsIndexStruct(excludeIDs ...string) bool {
	for _, record := range s.docs {
		indexStruct, ok := record.(schema.IndexStruct)
		if !ok {
			continue
		}
		if !slices.Contains(excludeIDs, indexStruct.ID()) {
			return true
		}
	}
	return false
}

// Len returns the number of stored records.
func (s *Store) Len() int {
	return len(s.docs)
}

// DocIDs returns the identifiers of all stored records. Order is
// implementation-defined.
func (s *Store) DocIDs() []string {
	ids := make([]string, 0, len(s.docs))
	for docID := range s.docs {
		ids = append(ids, docID)
	}
	return ids
}
