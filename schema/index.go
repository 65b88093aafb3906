package schema

import (
	"maps"
	"slices"
	"strings"

	"github.com/google/uuid"
)

// ListIndex is an index struct holding an ordered list of node identifiers,
// typically the chunks of one or more documents in reading order.
type ListIndex struct {
	Id          string
	SummaryText string
	NodeIDs     []string
}

var _ IndexStruct = (*ListIndex)(nil)

// NewListIndex creates a list index over the given node identifiers.
func NewListIndex(summary string, nodeIDs ...string) *ListIndex {
	return &ListIndex{
		Id:          uuid.NewString(),
		SummaryText: summary,
		NodeIDs:     nodeIDs,
	}
}

// ID returns the index identifier.
func (l *ListIndex) ID() string { return l.Id }

// ContentHash derives the hash from the summary and the node list.
func (l *ListIndex) ContentHash() string {
	parts := append([]string{l.SummaryText}, l.NodeIDs...)
	return HashContent(parts...)
}

// HasID reports whether the index carries an identifier.
func (l *ListIndex) HasID() bool { return l.Id != "" }

// Type returns the list index type tag.
func (l *ListIndex) Type() string { return TypeList }

// Summary returns the index summary.
func (l *ListIndex) Summary() string { return l.SummaryText }

// ToDict serializes the index to a plain dict.
func (l *ListIndex) ToDict() map[string]any {
	dict := map[string]any{
		"index_id": l.Id,
		"summary":  l.SummaryText,
	}
	if len(l.NodeIDs) > 0 {
		dict["nodes"] = l.NodeIDs
	}
	return dict
}

type listIndexDict struct {
	IndexID string   `mapstructure:"index_id"`
	Summary string   `mapstructure:"summary"`
	Nodes   []string `mapstructure:"nodes"`
}

// ListIndexFromDict reconstructs a list index from its serialized dict.
func ListIndexFromDict(dict map[string]any) (IndexStruct, error) {
	var fields listIndexDict
	if err := decodeDict(dict, &fields); err != nil {
		return nil, err
	}
	return &ListIndex{
		Id:          fields.IndexID,
		SummaryText: fields.Summary,
		NodeIDs:     fields.Nodes,
	}, nil
}

// KeywordTable is an index struct mapping keywords to the node identifiers
// they occur in.
type KeywordTable struct {
	Id          string
	SummaryText string
	Table       map[string][]string
}

var _ IndexStruct = (*KeywordTable)(nil)

// NewKeywordTable creates an empty keyword table index.
func NewKeywordTable(summary string) *KeywordTable {
	return &KeywordTable{
		Id:          uuid.NewString(),
		SummaryText: summary,
		Table:       make(map[string][]string),
	}
}

// AddKeyword associates node identifiers with a keyword.
func (k *KeywordTable) AddKeyword(keyword string, nodeIDs ...string) {
	if k.Table == nil {
		k.Table = make(map[string][]string)
	}
	k.Table[keyword] = append(k.Table[keyword], nodeIDs...)
}

// ID returns the index identifier.
func (k *KeywordTable) ID() string { return k.Id }

// ContentHash derives the hash from the summary and the table in key order.
func (k *KeywordTable) ContentHash() string {
	parts := []string{k.SummaryText}
	for _, keyword := range slices.Sorted(maps.Keys(k.Table)) {
		parts = append(parts, keyword, strings.Join(k.Table[keyword], ","))
	}
	return HashContent(parts...)
}

// HasID reports whether the index carries an identifier.
func (k *KeywordTable) HasID() bool { return k.Id != "" }

// Type returns the keyword table type tag.
func (k *KeywordTable) Type() string { return TypeKeywordTable }

// Summary returns the index summary.
func (k *KeywordTable) Summary() string { return k.SummaryText }

// ToDict serializes the index to a plain dict.
func (k *KeywordTable) ToDict() map[string]any {
	dict := map[string]any{
		"index_id": k.Id,
		"summary":  k.SummaryText,
	}
	if len(k.Table) > 0 {
		dict["table"] = k.Table
	}
	return dict
}

type keywordTableDict struct {
	IndexID string              `mapstructure:"index_id"`
	Summary string              `mapstructure:"summary"`
	Table   map[string][]string `mapstructure:"table"`
}

// KeywordTableFromDict reconstructs a keyword table from its serialized dict.
func KeywordTableFromDict(dict map[string]any) (IndexStruct, error) {
	var fields keywordTableDict
	if err := decodeDict(dict, &fields); err != nil {
		return nil, err
	}
	return &KeywordTable{
		Id:          fields.IndexID,
		SummaryText: fields.Summary,
		Table:       fields.Table,
	}, nil
}
