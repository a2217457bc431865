package vecstore

import "errors"

var (
	// ErrDimensionMismatch indicates a vector of the wrong dimensionality.
	ErrDimensionMismatch = errors.New("vector dimension mismatch")

	// ErrInvalidDimension indicates a non-positive index dimension.
	ErrInvalidDimension = errors.New("dimension must be positive")

	// ErrInvalidTopK indicates a non-positive top-k request.
	ErrInvalidTopK = errors.New("top-k must be positive")

	// ErrCorruptIndex indicates that persisted index data could not be decoded.
	ErrCorruptIndex = errors.New("corrupt index data")

	// ErrSizeMismatch indicates that index and metadata sizes disagree.
	ErrSizeMismatch = errors.New("index and metadata size mismatch")
)
