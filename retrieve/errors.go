package retrieve

import "errors"

var (
	ErrEmbedderRequired  = errors.New("embedder is required")
	ErrResourcesNotFound = errors.New("index artifacts not found, run the indexer first")
	ErrEmptyQuery        = errors.New("query must not be empty")
)
