package ingest

import (
	"strings"
	"testing"

	"github.com/poiesic/docstore"
	"github.com/poiesic/docstore/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPipelineRequiresStore(t *testing.T) {
	_, err := NewPipeline(nil)
	require.ErrorIs(t, err, ErrStoreRequired)
}

func TestIngestText(t *testing.T) {
	store := docstore.New()
	pipeline, err := NewPipeline(store, WithPoolSize(2))
	require.NoError(t, err)
	defer pipeline.Close()

	text := strings.Repeat("Documents are split into chunks before storage. ", 40)
	updated, err := pipeline.IngestText("notes.txt", text)
	require.NoError(t, err)
	require.NotEmpty(t, updated)
	assert.Equal(t, len(updated), store.Len())

	// Chunk identifiers are stable and carry the source.
	first, err := store.Get("notes.txt#0")
	require.NoError(t, err)
	doc, ok := first.(*schema.Document)
	require.True(t, ok)
	assert.Equal(t, "notes.txt", doc.Metadata["source"])
	assert.NotEmpty(t, doc.Text)
}

func TestIngestTextUnchangedIsSkipped(t *testing.T) {
	store := docstore.New()
	pipeline, err := NewPipeline(store)
	require.NoError(t, err)
	defer pipeline.Close()

	text := strings.Repeat("Same content twice. ", 40)

	updated, err := pipeline.IngestText("notes.txt", text)
	require.NoError(t, err)
	require.NotEmpty(t, updated)
	recordCount := store.Len()

	// Re-ingesting identical content writes nothing.
	updated, err = pipeline.IngestText("notes.txt", text)
	require.NoError(t, err)
	assert.Empty(t, updated)
	assert.Equal(t, recordCount, store.Len())
}

func TestIngestTextChangedContentIsRewritten(t *testing.T) {
	store := docstore.New()
	pipeline, err := NewPipeline(store)
	require.NoError(t, err)
	defer pipeline.Close()

	_, err = pipeline.IngestText("notes.txt", "first version")
	require.NoError(t, err)

	updated, err := pipeline.IngestText("notes.txt", "second version")
	require.NoError(t, err)
	require.Len(t, updated, 1)

	record, err := store.Get("notes.txt#0")
	require.NoError(t, err)
	doc, ok := record.(*schema.Document)
	require.True(t, ok)
	assert.Equal(t, "second version", doc.Text)
}

func TestRefresh(t *testing.T) {
	store := docstore.New()
	pipeline, err := NewPipeline(store)
	require.NoError(t, err)
	defer pipeline.Close()

	docA := schema.NewDocument("alpha", schema.WithID("a"))
	docB := schema.NewDocument("beta", schema.WithID("b"))

	updated, err := pipeline.Refresh([]*schema.Document{docA, docB})
	require.NoError(t, err)
	assert.Len(t, updated, 2)

	// Unchanged documents are skipped, changed ones rewritten.
	changedB := schema.NewDocument("beta prime", schema.WithID("b"))
	updated, err = pipeline.Refresh([]*schema.Document{docA, changedB})
	require.NoError(t, err)
	require.Len(t, updated, 1)
	assert.Equal(t, "b", updated[0].ID())

	record, err := store.Get("b")
	require.NoError(t, err)
	assert.Equal(t, schema.Record(changedB), record)
}
