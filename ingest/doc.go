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


// Package ingest turns raw text into documents in a document store.
//
// The Pipeline type splits source text into chunk documents, builds them
// concurrently on a worker pool, and upserts them into a docstore.Store.
// Re-ingesting is cheap: Refresh compares each document's content hash
// against the hash recorded in the store and skips unchanged documents.
package ingest
