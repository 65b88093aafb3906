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


package schema

import (
	"encoding/hex"

	"github.com/go-crypt/x/blake2b"
)

// HashContent computes a deterministic content hash over the given parts
// using BLAKE2b-256. Identical content always produces an identical hash,
// which is what the store's change detection relies on.
func HashContent(parts ...string) string {
	h, _ := blake2b.New(32, nil)
	for _, part := range parts {
		h.Write([]byte(part))
	}
	return hex.EncodeToString(h.Sum(nil))
}
