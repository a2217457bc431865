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


package lexindex

import (
	"log/slog"

	"github.com/poiesic/lexindex/ai"
	"github.com/poiesic/lexindex/ai/openai"
	"github.com/poiesic/lexindex/ingestion"
	"github.com/poiesic/lexindex/match"
	"github.com/poiesic/lexindex/retrieve"
	"github.com/poiesic/lexindex/storage"
	"github.com/poiesic/lexindex/storage/badger"
)

// Library bundles the document registry, the embedding provider, and
// factories for the indexer, retriever, and template matchers.
type Library struct {
	backend  *badger.Backend
	docRepo  storage.DocumentRepository
	provider ai.AIProvider
	logger   *slog.Logger
}

// LibraryOption configures a Library.
type LibraryOption func(*libraryOptions)

type libraryOptions struct {
	aiConfig *ai.Config
	provider ai.AIProvider
	inMemory bool
}

// WithAIConfig sets the embedding service configuration.
func WithAIConfig(config *ai.Config) LibraryOption {
	return func(o *libraryOptions) {
		o.aiConfig = config
	}
}

// WithAIProvider supplies a pre-built provider instead of constructing
// one from configuration. Used by tests with the mock provider.
func WithAIProvider(provider ai.AIProvider) LibraryOption {
	return func(o *libraryOptions) {
		o.provider = provider
	}
}

// WithInMemoryStorage keeps the document registry in memory.
func WithInMemoryStorage() LibraryOption {
	return func(o *libraryOptions) {
		o.inMemory = true
	}
}

// NewLibrary opens the document registry at filePath and prepares the
// embedding provider.
func NewLibrary(filePath string, opts ...LibraryOption) (*Library, error) {
	options := &libraryOptions{
		aiConfig: ai.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	docRepo, err := badger.NewDocumentRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	provider := options.provider
	if provider == nil {
		provider, err = openai.NewProvider(options.aiConfig)
		if err != nil {
			docRepo.Close()
			backend.Close()
			return nil, err
		}
	}

	return &Library{
		backend:  backend,
		docRepo:  docRepo,
		provider: provider,
		logger:   slog.Default(),
	}, nil
}

func (lib *Library) Close() error {
	if err := lib.provider.Close(); err != nil {
		lib.logger.Error("error closing AI provider", "err", err)
	}

	if err := lib.docRepo.Close(); err != nil {
		lib.logger.Error("error closing document repository", "err", err)
		return err
	}

	if err := lib.backend.Close(); err != nil {
		lib.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

func (lib *Library) DocumentRepository() storage.DocumentRepository {
	return lib.docRepo
}

// NewIndexer returns a corpus indexer wired to the library's embedder
// and document registry.
func (lib *Library) NewIndexer(opts ...ingestion.IndexerOption) (*ingestion.Indexer, error) {
	base := []ingestion.IndexerOption{
		ingestion.WithDocumentRepository(lib.docRepo),
	}
	return ingestion.NewIndexer(lib.provider.Embedder(), append(base, opts...)...)
}

// NewRetriever returns a retriever over artifacts at the given paths,
// using the library's embedder.
func (lib *Library) NewRetriever(indexPath, metaPath string, opts ...retrieve.RetrieverOption) (*retrieve.Retriever, error) {
	return retrieve.NewRetriever(lib.provider.Embedder(), indexPath, metaPath, opts...)
}

// NewMatcherRegistry returns the template matchers for a templates
// directory. Matching is lexical and does not use the embedder.
func (lib *Library) NewMatcherRegistry(templatesRoot string, opts ...match.Option) *match.Registry {
	return match.NewRegistry(templatesRoot, opts...)
}
