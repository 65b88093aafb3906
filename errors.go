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


package docstore

import "errors"

var (
	// ErrMissingDocID indicates an insert was attempted with a record that
	// carries no identifier.
	ErrMissingDocID = errors.New("doc ID not set")

	// ErrDuplicateDocID indicates a non-update insert collided with an
	// existing identifier.
	ErrDuplicateDocID = errors.New("doc ID already exists")

	// ErrNotFound indicates a lookup or delete on an absent identifier.
	ErrNotFound = errors.New("doc ID not found")

	// ErrUnregisteredType indicates deserialization encountered a type tag
	// with no matching registry entry.
	ErrUnregisteredType = errors.New("unregistered record type")

	// ErrMalformedData indicates a serialized store dict does not have the
	// expected shape.
	ErrMalformedData = errors.New("malformed store data")
)
