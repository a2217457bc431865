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


package retrieve

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/poiesic/lexindex/ai"
	"github.com/poiesic/lexindex/core"
	"github.com/poiesic/lexindex/vecstore"
)

// DefaultTopK is the number of neighbors returned when the caller does
// not ask for a specific count.
const DefaultTopK = 2

// Retriever serves nearest-neighbor queries over a built corpus index.
// Artifacts are loaded lazily on first use, so constructing a Retriever
// against not-yet-built paths is fine; only Search fails.
type Retriever struct {
	embedder  ai.Embedder
	indexPath string
	metaPath  string
	timeout   time.Duration
	logger    *slog.Logger

	mu    sync.Mutex
	index *vecstore.FlatIndex
	meta  *vecstore.MetaTable
}

// RetrieverOption configures a Retriever.
type RetrieverOption func(*Retriever)

// WithTimeout bounds the embedding call made for each query.
// Zero disables the bound. Default is 30 seconds.
func WithTimeout(timeout time.Duration) RetrieverOption {
	return func(r *Retriever) {
		r.timeout = timeout
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) RetrieverOption {
	return func(r *Retriever) {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
	}
}

// NewRetriever creates a retriever over the index and metadata files at
// the given paths.
func NewRetriever(embedder ai.Embedder, indexPath, metaPath string, opts ...RetrieverOption) (*Retriever, error) {
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}
	r := &Retriever{
		embedder:  embedder,
		indexPath: indexPath,
		metaPath:  metaPath,
		timeout:   30 * time.Second,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Load reads both artifacts from disk and verifies they correspond.
// Returns ErrResourcesNotFound if either file is missing. Load is
// called implicitly by Search; calling it up front surfaces artifact
// problems before the first query.
func (r *Retriever) Load() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loadLocked()
}

func (r *Retriever) loadLocked() error {
	if r.index != nil {
		return nil
	}

	index, err := vecstore.LoadFlatIndex(r.indexPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrResourcesNotFound, r.indexPath)
		}
		return err
	}
	meta, err := vecstore.LoadMetaTable(r.metaPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrResourcesNotFound, r.metaPath)
		}
		return err
	}
	if err := vecstore.CheckCorrespondence(index, meta); err != nil {
		return err
	}

	r.index = index
	r.meta = meta
	r.logger.Info("retrieval artifacts loaded",
		"chunks", index.Len(), "dim", index.Dim())
	return nil
}

// Ready reports whether the artifacts have been loaded.
func (r *Retriever) Ready() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.index != nil
}

// Search embeds the query and returns up to topK nearest chunks in
// ascending distance order. Distances are squared L2 over the raw
// embedding vectors. A topK below 1 uses DefaultTopK; asking for more
// neighbors than the index holds returns what exists.
func (r *Retriever) Search(ctx context.Context, query string, topK int) ([]core.Neighbor, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}
	if topK < 1 {
		topK = DefaultTopK
	}

	r.mu.Lock()
	if err := r.loadLocked(); err != nil {
		r.mu.Unlock()
		return nil, err
	}
	index, meta := r.index, r.meta
	r.mu.Unlock()

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}
	vector, err := r.embedder.EmbedText(ctx, query)
	if err != nil {
		return nil, err
	}

	positions, distances, err := index.Search(vector, topK)
	if err != nil {
		return nil, err
	}

	neighbors := make([]core.Neighbor, 0, len(positions))
	for i, pos := range positions {
		record, ok := meta.At(pos)
		if !ok {
			// Correspondence was checked at load; a miss here means
			// the artifacts changed underneath us.
			return nil, fmt.Errorf("%w: no metadata for position %d", vecstore.ErrSizeMismatch, pos)
		}
		neighbors = append(neighbors, core.Neighbor{
			Id:       record.Id,
			Source:   record.Source,
			Text:     record.Text,
			Distance: distances[i],
		})
	}
	return neighbors, nil
}
