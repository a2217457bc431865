package ingestion

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/lexindex/ai"
	"github.com/poiesic/lexindex/core"
	"github.com/poiesic/lexindex/storage"
	"github.com/poiesic/lexindex/vecstore"
)

// DefaultBatchSize is the number of chunks embedded per request.
const DefaultBatchSize = 64

// Indexer builds the vector index and chunk metadata table for a corpus
// directory. Text extraction runs on a worker pool; chunking and
// embedding run sequentially so chunk positions are deterministic for a
// given corpus layout.
type Indexer struct {
	embedder     ai.Embedder
	extractor    Extractor
	walker       *Walker
	documents    storage.DocumentRepository
	extractPool  *ants.Pool
	chunkSize    int
	chunkOverlap int
	batchSize    int
	logger       *slog.Logger
}

// IndexerOption configures an Indexer.
type IndexerOption func(*Indexer) error

// WithPoolSize sets the worker pool size for parallel text extraction.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) IndexerOption {
	return func(ix *Indexer) error {
		if size < 1 {
			size = 1
		}
		if ix.extractPool != nil {
			ix.extractPool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		ix.extractPool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) IndexerOption {
	return func(ix *Indexer) error {
		if logger == nil {
			logger = slog.Default()
		}
		ix.logger = logger
		return nil
	}
}

// WithExtractor replaces the PDF extractor, e.g. with a plain-text
// extractor for pre-converted corpora.
func WithExtractor(extractor Extractor) IndexerOption {
	return func(ix *Indexer) error {
		if extractor == nil {
			return ErrExtractorRequired
		}
		ix.extractor = extractor
		return nil
	}
}

// WithWalker replaces the default corpus walker.
func WithWalker(walker *Walker) IndexerOption {
	return func(ix *Indexer) error {
		if walker == nil {
			return ErrWalkerRequired
		}
		ix.walker = walker
		return nil
	}
}

// WithChunking overrides the chunk size and overlap.
func WithChunking(size, overlap int) IndexerOption {
	return func(ix *Indexer) error {
		if size <= 0 || overlap < 0 || size <= overlap {
			return ErrInvalidChunking
		}
		ix.chunkSize = size
		ix.chunkOverlap = overlap
		return nil
	}
}

// WithBatchSize overrides the embedding batch size.
func WithBatchSize(size int) IndexerOption {
	return func(ix *Indexer) error {
		if size < 1 {
			size = 1
		}
		ix.batchSize = size
		return nil
	}
}

// WithDocumentRepository enables document registry records. When set,
// one entry per ingested document is written after a successful build.
func WithDocumentRepository(repo storage.DocumentRepository) IndexerOption {
	return func(ix *Indexer) error {
		ix.documents = repo
		return nil
	}
}

// NewIndexer creates a corpus indexer backed by the given embedder.
func NewIndexer(embedder ai.Embedder, opts ...IndexerOption) (*Indexer, error) {
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	ix := &Indexer{
		embedder:     embedder,
		extractor:    NewPDFExtractor(),
		walker:       NewDefaultWalker(),
		extractPool:  pool,
		chunkSize:    DefaultChunkSize,
		chunkOverlap: DefaultChunkOverlap,
		batchSize:    DefaultBatchSize,
		logger:       slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(ix); optErr != nil {
			ix.Release()
			return nil, optErr
		}
	}

	return ix, nil
}

// Build walks the corpus under root, extracts and chunks every matching
// document, embeds the chunks, and returns the populated index and
// metadata table. Documents whose extraction fails are logged and
// contribute no chunks; an embedding failure aborts the build.
func (ix *Indexer) Build(ctx context.Context, root string) (*vecstore.FlatIndex, *vecstore.MetaTable, error) {
	files, err := ix.walker.Walk(root)
	if err != nil {
		return nil, nil, err
	}
	if len(files) == 0 {
		return nil, nil, ErrNoDocuments
	}

	texts := ix.extractAll(files)

	meta := vecstore.NewMetaTable()
	var (
		chunkTexts []string
		docs       []*core.Document
		nextChunk  int
	)
	for i, file := range files {
		chunks, chunkErr := Chunk(texts[i], ix.chunkSize, ix.chunkOverlap)
		if chunkErr != nil {
			return nil, nil, chunkErr
		}
		for _, chunk := range chunks {
			meta.Add(core.ChunkRecord{Id: nextChunk, Source: file.Rel, Text: chunk})
			chunkTexts = append(chunkTexts, chunk)
			nextChunk++
		}
		docs = append(docs, &core.Document{
			Source:     file.Rel,
			Label:      file.Label,
			Chars:      len(texts[i]),
			ChunkStart: nextChunk - len(chunks),
			ChunkCount: len(chunks),
			IndexedAt:  time.Now().UTC(),
		})
	}

	index, err := ix.embedAll(ctx, chunkTexts)
	if err != nil {
		return nil, nil, err
	}
	if err := vecstore.CheckCorrespondence(index, meta); err != nil {
		return nil, nil, err
	}

	if ix.documents != nil {
		if _, err := ix.documents.AddDocuments(ctx, docs...); err != nil {
			return nil, nil, err
		}
	}

	ix.logger.Info("corpus indexed",
		"documents", len(files), "chunks", index.Len(), "dim", index.Dim())
	return index, meta, nil
}

// BuildToFiles runs Build and writes the two artifacts to disk.
func (ix *Indexer) BuildToFiles(ctx context.Context, root, indexPath, metaPath string) error {
	index, meta, err := ix.Build(ctx, root)
	if err != nil {
		return err
	}
	if err := index.Save(indexPath); err != nil {
		return err
	}
	return meta.Save(metaPath)
}

// extractAll extracts text from every file on the worker pool. Results
// are collected by position so the output order matches the input order
// regardless of which extraction finishes first.
func (ix *Indexer) extractAll(files []SourceFile) []string {
	texts := make([]string, len(files))
	var wg sync.WaitGroup
	for i, file := range files {
		wg.Add(1)
		err := ix.extractPool.Submit(func() {
			defer wg.Done()
			text, extractErr := ix.extractor.Extract(file.Path)
			if extractErr != nil {
				ix.logger.Warn("extraction failed, skipping document",
					"source", file.Rel, "err", extractErr)
				return
			}
			texts[i] = text
		})
		if err != nil {
			// Pool rejected the task; run inline.
			wg.Done()
			text, extractErr := ix.extractor.Extract(file.Path)
			if extractErr != nil {
				ix.logger.Warn("extraction failed, skipping document",
					"source", file.Rel, "err", extractErr)
				continue
			}
			texts[i] = text
		}
	}
	wg.Wait()
	return texts
}

// embedAll embeds chunk texts in fixed-size batches and appends the
// vectors to a new index in order. The index dimension is taken from
// the first returned vector.
func (ix *Indexer) embedAll(ctx context.Context, chunkTexts []string) (*vecstore.FlatIndex, error) {
	var index *vecstore.FlatIndex
	for start := 0; start < len(chunkTexts); start += ix.batchSize {
		end := start + ix.batchSize
		if end > len(chunkTexts) {
			end = len(chunkTexts)
		}
		vectors, err := ix.embedder.EmbedTexts(ctx, chunkTexts[start:end])
		if err != nil {
			return nil, fmt.Errorf("%w (batch at chunk %d): %s", ErrEmbedFailed, start, err)
		}
		if index == nil {
			if len(vectors) == 0 {
				return nil, fmt.Errorf("%w (batch at chunk %d): empty result", ErrEmbedFailed, start)
			}
			index, err = vecstore.NewFlatIndex(len(vectors[0]))
			if err != nil {
				return nil, err
			}
		}
		if err := index.Add(vectors...); err != nil {
			return nil, err
		}
		ix.logger.Debug("embedded batch", "from", start, "to", end)
	}
	if index == nil {
		index, _ = vecstore.NewFlatIndex(vecstore.DefaultDim)
	}
	return index, nil
}

// Release releases the extraction worker pool.
// The indexer should not be used after calling Release.
func (ix *Indexer) Release() {
	if ix.extractPool != nil {
		ix.extractPool.Release()
	}
}
