package match

import "errors"

var (
	// ErrUnknownCategory indicates a category name not present in the registry.
	ErrUnknownCategory = errors.New("unknown template category")

	// ErrEmptyDomain indicates an empty query after normalization.
	ErrEmptyDomain = errors.New("domain description is empty")
)
