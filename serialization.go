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

import (
	"fmt"

	"github.com/poiesic/docstore/schema"
)

// ToDict serializes the store. The result has two keys: "docs", mapping each
// identifier to its record dict extended with the TypeKey tag, and
// "ref_doc_info", mapping identifiers to their bookkeeping entries.
func (s *Store) ToDict() map[string]any {
	docs := make(map[string]any, len(s.docs))
	for docID, record := range s.docs {
		dict := record.ToDict()
		dict[TypeKey] = record.Type()
		docs[docID] = dict
	}

	refDocInfo := make(map[string]any, len(s.refDocInfo))
	for docID, info := range s.refDocInfo {
		refDocInfo[docID] = info.toDict()
	}

	return map[string]any{
		"docs":         docs,
		"ref_doc_info": refDocInfo,
	}
}

// FromDict reconstructs a store from its serialized dict. Record dicts carry
// their type under TypeKey: documents are tagged schema.TypeDocument (or not
// tagged at all, for compatibility with older snapshots), index structs are
// resolved through the given registry and fail with ErrUnregisteredType when
// their tag is unknown. Unknown top-level keys are ignored.
//
// FromDict is the inverse of ToDict: a store round-trips unchanged as long as
// every index struct tag it uses is present in the registry.
func FromDict(data map[string]any, registry schema.Registry) (*Store, error) {
	rawDocs, ok := data["docs"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: missing %q key", ErrMalformedData, "docs")
	}

	store := New()
	for docID, rawDict := range rawDocs {
		dict, ok := rawDict.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: record %s is not a dict", ErrMalformedData, docID)
		}

		record, err := recordFromDict(dict, registry)
		if err != nil {
			return nil, err
		}
		store.docs[docID] = record
	}

	if rawInfo, ok := data["ref_doc_info"].(map[string]any); ok {
		for docID, rawEntry := range rawInfo {
			info := RefDocInfo{}
			if entry, ok := rawEntry.(map[string]any); ok {
				info.DocHash, _ = entry["doc_hash"].(string)
			}
			store.refDocInfo[docID] = info
		}
	}

	return store, nil
}

// recordFromDict dispatches on the TypeKey tag. The caller's dict is not
// mutated.
func recordFromDict(dict map[string]any, registry schema.Registry) (schema.Record, error) {
	typeTag, _ := dict[TypeKey].(string)

	fields := make(map[string]any, len(dict))
	for key, value := range dict {
		if key == TypeKey {
			continue
		}
		fields[key] = value
	}

	// Untagged records predate the type tag and are always documents.
	if typeTag == "" || typeTag == schema.TypeDocument {
		return schema.DocumentFromDict(fields)
	}

	fromDict, ok := registry[typeTag]
	if !ok {
		return nil, fmt.Errorf("%w: %s (make sure it is present in the registry)", ErrUnregisteredType, typeTag)
	}
	return fromDict(fields)
}
