package storage

import (
	"context"

	"github.com/poiesic/lexindex/core"
)

// DocumentRepository provides operations for the registry of indexed
// source documents. One entry is written per document the corpus indexer
// ingests; entries are read back to resolve a chunk's parent document and
// to inspect what a given index run covered.
type DocumentRepository interface {
	// AddDocuments adds one or more documents to the registry.
	// Documents with Id=0 get a content-based ID derived from Source.
	// Sets IndexedAt if not already set.
	// Returns the documents with IDs and timestamps populated.
	AddDocuments(ctx context.Context, docs ...*core.Document) ([]*core.Document, error)

	// GetDocument retrieves a single document by ID.
	// Returns ErrNotFound if the document doesn't exist.
	GetDocument(ctx context.Context, id core.ID) (*core.Document, error)

	// GetDocuments retrieves multiple documents by their IDs.
	// Returns only the documents that exist (no error for missing documents).
	GetDocuments(ctx context.Context, ids ...core.ID) ([]*core.Document, error)

	// ListDocuments retrieves all registered documents, ordered by ID.
	ListDocuments(ctx context.Context) ([]*core.Document, error)

	// GetDocumentsByLabel retrieves documents found under an allow-listed label.
	GetDocumentsByLabel(ctx context.Context, label string) ([]*core.Document, error)

	// DeleteDocuments removes documents by their IDs.
	// Returns ErrNotFound if any document doesn't exist.
	DeleteDocuments(ctx context.Context, ids ...core.ID) error

	// Close closes the repository and releases resources.
	Close() error
}
