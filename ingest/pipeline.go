package ingest

import (
	"fmt"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/docstore"
	"github.com/poiesic/docstore/schema"
	"github.com/tmc/langchaingo/textsplitter"
)

const (
	defaultChunkSize    = 512
	defaultChunkOverlap = 64
)

// Pipeline splits source text into chunk documents and upserts them into a
// document store. The store is owned by the caller; the pipeline performs no
// locking around it, so ingest calls must not run concurrently with other
// store access.
type Pipeline struct {
	store    *docstore.Store
	splitter textsplitter.TextSplitter
	pool     *ants.Pool
	logger   *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithSplitter sets a custom text splitter.
// Default is a recursive character splitter.
func WithSplitter(splitter textsplitter.TextSplitter) Option {
	return func(p *Pipeline) error {
		p.splitter = splitter
		return nil
	}
}

// WithPoolSize sets the worker pool size for concurrent document building.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		if p.pool != nil {
			p.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates an ingestion pipeline writing into store.
func NewPipeline(store *docstore.Store, opts ...Option) (*Pipeline, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		store: store,
		splitter: textsplitter.NewRecursiveCharacter(
			textsplitter.WithChunkSize(defaultChunkSize),
			textsplitter.WithChunkOverlap(defaultChunkOverlap),
		),
		pool:   pool,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(p); err != nil {
			p.pool.Release()
			return nil, err
		}
	}

	return p, nil
}

// Close releases the worker pool.
func (p *Pipeline) Close() {
	p.pool.Release()
}

// IngestText splits text into chunk documents and upserts the changed ones
// into the store. Chunk identifiers are derived from the source name and the
// chunk position, so re-ingesting the same source updates in place instead of
// accumulating duplicates. Returns the documents that were written.
func (p *Pipeline) IngestText(source, text string) ([]*schema.Document, error) {
	chunks, err := p.splitter.SplitText(text)
	if err != nil {
		return nil, fmt.Errorf("split %s: %w", source, err)
	}

	docs := make([]*schema.Document, len(chunks))
	var wg sync.WaitGroup
	for i, chunk := range chunks {
		wg.Add(1)
		err := p.pool.Submit(func() {
			defer wg.Done()
			docs[i] = schema.NewDocument(chunk,
				schema.WithID(fmt.Sprintf("%s#%d", source, i)),
				schema.WithMetadata(map[string]string{"source": source}),
			)
		})
		if err != nil {
			wg.Done()
			wg.Wait()
			return nil, err
		}
	}
	wg.Wait()

	updated, err := p.Refresh(docs)
	if err != nil {
		return updated, err
	}

	p.logger.Info("ingested text",
		"source", source,
		"chunks", len(chunks),
		"updated", len(updated),
	)
	return updated, nil
}

// Refresh upserts the given documents, skipping any whose content hash
// matches the hash already recorded in the store. Returns the documents that
// were written.
func (p *Pipeline) Refresh(docs []*schema.Document) ([]*schema.Document, error) {
	var updated []*schema.Document
	for _, doc := range docs {
		stored, ok := p.store.DocumentHash(doc.ID())
		if ok && stored == doc.ContentHash() {
			p.logger.Debug("document unchanged", "doc_id", doc.ID())
			continue
		}

		if err := p.store.AddRecords([]schema.Record{doc}, true); err != nil {
			return updated, err
		}
		updated = append(updated, doc)
	}
	return updated, nil
}
