package schema

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDocument(t *testing.T) {
	doc := NewDocument("hello, world")

	assert.True(t, doc.HasID(), "expected a generated identifier")
	assert.NotEmpty(t, doc.ContentHash())
	assert.Equal(t, TypeDocument, doc.Type())

	other := NewDocument("hello, world")
	assert.NotEqual(t, doc.ID(), other.ID(), "generated identifiers must differ")
	assert.Equal(t, doc.ContentHash(), other.ContentHash(), "identical content must share a hash")
}

func TestNewDocumentWithID(t *testing.T) {
	doc := NewDocument("hello", WithID("doc-1"))
	assert.Equal(t, "doc-1", doc.ID())
}

func TestDocumentHashDependsOnContent(t *testing.T) {
	base := NewDocument("hello", WithID("x"))

	changedText := NewDocument("goodbye", WithID("x"))
	assert.NotEqual(t, base.ContentHash(), changedText.ContentHash())

	changedMeta := NewDocument("hello", WithID("x"), WithMetadata(map[string]string{"lang": "en"}))
	assert.NotEqual(t, base.ContentHash(), changedMeta.ContentHash())

	// Embeddings do not participate in the hash.
	embedded := NewDocument("hello", WithID("x"), WithEmbedding([]float32{1, 2}))
	assert.Equal(t, base.ContentHash(), embedded.ContentHash())
}

func TestDocumentHasID(t *testing.T) {
	doc := &Document{Text: "no identifier"}
	assert.False(t, doc.HasID())
}

func TestDocumentDictRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		doc  *Document
	}{
		{
			name: "minimal",
			doc:  NewDocument("hello", WithID("a")),
		},
		{
			name: "with metadata and embedding",
			doc: NewDocument("hello",
				WithID("b"),
				WithMetadata(map[string]string{"source": "test.txt"}),
				WithEmbedding([]float32{0.25, -1.5}),
			),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			restored, err := DocumentFromDict(tt.doc.ToDict())
			require.NoError(t, err)
			assert.Equal(t, tt.doc, restored)
		})
	}
}

func TestDocumentFromDictAfterJSON(t *testing.T) {
	doc := NewDocument("hello",
		WithID("a"),
		WithMetadata(map[string]string{"source": "test.txt"}),
		WithEmbedding([]float32{0.25, -1.5}),
	)

	payload, err := json.Marshal(doc.ToDict())
	require.NoError(t, err)

	// JSON turns the embedding into []any of float64.
	var dict map[string]any
	require.NoError(t, json.Unmarshal(payload, &dict))

	restored, err := DocumentFromDict(dict)
	require.NoError(t, err)
	assert.Equal(t, doc, restored)
}

func TestDocumentFromDictInvalid(t *testing.T) {
	_, err := DocumentFromDict(map[string]any{
		"doc_id": "a",
		"text":   map[string]any{"not": "a string"},
	})
	require.ErrorIs(t, err, ErrInvalidRecordData)
}
