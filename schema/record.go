package schema

// Type tags stored under the "__type__" key of a serialized record.
const (
	// TypeDocument is the type tag for raw documents. Serialized records
	// without a "__type__" key are treated as documents for compatibility
	// with older snapshots.
	TypeDocument = "Document"

	// TypeList is the type tag for ListIndex.
	TypeList = "list"

	// TypeKeywordTable is the type tag for KeywordTable.
	TypeKeywordTable = "keyword_table"
)

// Record is a polymorphic value held by a document store: either a raw
// Document or a derived IndexStruct.
type Record interface {
	// ID returns the record identifier. Empty when unset.
	ID() string

	// ContentHash returns the hash of the record content.
	ContentHash() string

	// HasID reports whether the record carries an identifier.
	HasID() bool

	// Type returns the record's type tag.
	Type() string

	// ToDict serializes the record to a plain dict. The returned map must
	// not use the reserved "__type__" key.
	ToDict() map[string]any
}

// IndexStruct is a Record describing a derived index built over documents.
type IndexStruct interface {
	Record

	// Summary returns a short human-readable description of the index.
	Summary() string
}

// FromDictFunc reconstructs an index struct from its serialized dict.
// The dict does not contain the "__type__" key.
type FromDictFunc func(dict map[string]any) (IndexStruct, error)

// Registry maps a type tag to the FromDict function for that index struct
// variant. It is supplied by the caller when deserializing a store.
type Registry map[string]FromDictFunc

// DefaultRegistry returns a registry holding the built-in index struct
// variants. Callers may add their own variants to the returned map.
func DefaultRegistry() Registry {
	return Registry{
		TypeList:         ListIndexFromDict,
		TypeKeywordTable: KeywordTableFromDict,
	}
}
