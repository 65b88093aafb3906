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


// Package storage provides the persistence abstraction for document stores.
//
// A docstore.Store only produces and consumes an in-memory dict; this package
// defines the SnapshotStore interface that writes those dicts somewhere
// durable, keyed by a store name. Implementations also persist per-document
// hash records separately, so change detection can read a single hash without
// loading a whole snapshot.
//
// # Constructor Return Type Pattern
//
// Public constructors of backend packages return the SnapshotStore interface
// to keep consumers decoupled from the concrete backend:
//
//	snapshots := badger.NewSnapshotStore(backend)
//
// # Thread Safety
//
// SnapshotStore implementations must be safe for concurrent use. The
// docstore.Store values they accept and return are not: a loaded store
// belongs to the caller.
package storage
