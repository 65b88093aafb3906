package schema

import (
	"maps"
	"slices"

	"github.com/google/uuid"
)

// Document is a raw ingested document. The content hash is derived from the
// text and metadata, so two documents with identical content share a hash
// regardless of their identifiers.
type Document struct {
	Id        string
	Text      string
	Hash      string
	Embedding []float32
	Metadata  map[string]string
}

var _ Record = (*Document)(nil)

// DocumentOption configures a Document created by NewDocument.
type DocumentOption func(*Document)

// WithID sets an explicit document identifier instead of a generated one.
func WithID(id string) DocumentOption {
	return func(d *Document) {
		d.Id = id
	}
}

// WithMetadata attaches metadata to the document. Metadata participates in
// the content hash.
func WithMetadata(metadata map[string]string) DocumentOption {
	return func(d *Document) {
		d.Metadata = metadata
	}
}

// WithEmbedding attaches an embedding vector to the document. Embeddings do
// not participate in the content hash.
func WithEmbedding(embedding []float32) DocumentOption {
	return func(d *Document) {
		d.Embedding = embedding
	}
}

// NewDocument creates a document from text. A random identifier is assigned
// unless WithID is given, and the content hash is computed from the text and
// metadata.
func NewDocument(text string, opts ...DocumentOption) *Document {
	doc := &Document{Text: text}
	for _, opt := range opts {
		opt(doc)
	}
	if doc.Id == "" {
		doc.Id = uuid.NewString()
	}
	doc.Hash = doc.computeHash()
	return doc
}

// computeHash hashes the text plus the metadata in key order.
func (d *Document) computeHash() string {
	parts := []string{d.Text}
	for _, key := range slices.Sorted(maps.Keys(d.Metadata)) {
		parts = append(parts, key, d.Metadata[key])
	}
	return HashContent(parts...)
}

// ID returns the document identifier.
func (d *Document) ID() string { return d.Id }

// ContentHash returns the stored content hash.
func (d *Document) ContentHash() string { return d.Hash }

// HasID reports whether the document carries an identifier.
func (d *Document) HasID() bool { return d.Id != "" }

// Type returns the document type tag.
func (d *Document) Type() string { return TypeDocument }

// ToDict serializes the document to a plain dict.
func (d *Document) ToDict() map[string]any {
	dict := map[string]any{
		"doc_id":   d.Id,
		"text":     d.Text,
		"doc_hash": d.Hash,
	}
	if len(d.Embedding) > 0 {
		dict["embedding"] = d.Embedding
	}
	if len(d.Metadata) > 0 {
		dict["extra_info"] = d.Metadata
	}
	return dict
}

// documentDict mirrors the serialized form of a Document.
type documentDict struct {
	DocID     string            `mapstructure:"doc_id"`
	Text      string            `mapstructure:"text"`
	DocHash   string            `mapstructure:"doc_hash"`
	Embedding []float32         `mapstructure:"embedding"`
	Metadata  map[string]string `mapstructure:"extra_info"`
}

// DocumentFromDict reconstructs a document from its serialized dict.
func DocumentFromDict(dict map[string]any) (*Document, error) {
	var fields documentDict
	if err := decodeDict(dict, &fields); err != nil {
		return nil, err
	}
	return &Document{
		Id:        fields.DocID,
		Text:      fields.Text,
		Hash:      fields.DocHash,
		Embedding: fields.Embedding,
		Metadata:  fields.Metadata,
	}, nil
}
