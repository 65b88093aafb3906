package schema

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListIndex(t *testing.T) {
	list := NewListIndex("chunks in order", "a", "b", "c")

	assert.True(t, list.HasID())
	assert.Equal(t, TypeList, list.Type())
	assert.Equal(t, "chunks in order", list.Summary())
	assert.Equal(t, []string{"a", "b", "c"}, list.NodeIDs)
}

func TestListIndexHash(t *testing.T) {
	a := ListIndex{Id: "x", SummaryText: "s", NodeIDs: []string{"a", "b"}}
	b := ListIndex{Id: "y", SummaryText: "s", NodeIDs: []string{"a", "b"}}
	c := ListIndex{Id: "x", SummaryText: "s", NodeIDs: []string{"b", "a"}}

	// The hash covers content, not identity.
	assert.Equal(t, a.ContentHash(), b.ContentHash())
	assert.NotEqual(t, a.ContentHash(), c.ContentHash())
}

func TestListIndexDictRoundTrip(t *testing.T) {
	list := NewListIndex("chunks in order", "a", "b")

	restored, err := ListIndexFromDict(list.ToDict())
	require.NoError(t, err)
	assert.Equal(t, IndexStruct(list), restored)
}

func TestKeywordTable(t *testing.T) {
	table := NewKeywordTable("keywords")
	table.AddKeyword("go", "a", "b")
	table.AddKeyword("storage", "b")
	table.AddKeyword("go", "c")

	assert.True(t, table.HasID())
	assert.Equal(t, TypeKeywordTable, table.Type())
	assert.Equal(t, []string{"a", "b", "c"}, table.Table["go"])
	assert.Equal(t, []string{"b"}, table.Table["storage"])
}

func TestKeywordTableHashIsOrderIndependent(t *testing.T) {
	a := KeywordTable{SummaryText: "s", Table: map[string][]string{"go": {"a"}, "db": {"b"}}}
	b := KeywordTable{SummaryText: "s", Table: map[string][]string{"db": {"b"}, "go": {"a"}}}
	assert.Equal(t, a.ContentHash(), b.ContentHash())
}

func TestKeywordTableDictRoundTripThroughJSON(t *testing.T) {
	table := NewKeywordTable("keywords")
	table.AddKeyword("go", "a", "b")

	payload, err := json.Marshal(table.ToDict())
	require.NoError(t, err)

	var dict map[string]any
	require.NoError(t, json.Unmarshal(payload, &dict))

	restored, err := KeywordTableFromDict(dict)
	require.NoError(t, err)
	assert.Equal(t, IndexStruct(table), restored)
}

func TestDefaultRegistry(t *testing.T) {
	registry := DefaultRegistry()

	for _, tag := range []string{TypeList, TypeKeywordTable} {
		_, ok := registry[tag]
		assert.True(t, ok, "missing tag %q", tag)
	}

	// Documents are not dispatched through the registry.
	_, ok := registry[TypeDocument]
	assert.False(t, ok)
}
