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


// Package schema defines the record types held by a document store.
//
// Two kinds of records exist:
//   - Document: a raw ingested document with an identifier and a content hash.
//   - IndexStruct: a derived index structure built over documents (node ID
//     lists, keyword tables, ...).
//
// Every record serializes to a plain dict (map[string]any) via ToDict and is
// reconstructed from one via a variant-specific FromDict function. Index
// struct variants are resolved through a Registry mapping a type tag to its
// FromDict function; the registry is supplied by the caller at
// deserialization time, so applications can register their own variants
// alongside the built-in ones.
package schema
