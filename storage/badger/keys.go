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


package badger

// Key layout:
//
//	snapshot:<name>        -> JSON-encoded store dict
//	hash:<name>:<docID>    -> mus-encoded RefDocInfo
const (
	snapshotPrefix = "snapshot:"
	hashPrefix     = "hash:"
)

// makeSnapshotKey constructs the key for a named snapshot.
func makeSnapshotKey(name string) []byte {
	return []byte(snapshotPrefix + name)
}

// makeHashKey constructs the key for one document's hash record.
func makeHashKey(name, docID string) []byte {
	return []byte(hashPrefix + name + ":" + docID)
}

// makeHashScanPrefix constructs the iteration prefix covering every hash
// record of a named snapshot.
func makeHashScanPrefix(name string) []byte {
	return []byte(hashPrefix + name + ":")
}
