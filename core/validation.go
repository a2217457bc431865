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


package core

import (
	"fmt"
	"time"
)

// ValidateChunkRecord validates a ChunkRecord according to domain rules.
//
// Validation rules:
//   - Id must not be negative (ids are index positions)
//   - Source must not be empty
//
// NOT validated:
//   - Text (a document that extracted to empty text produces no chunks,
//     so an empty Text never reaches persistence in practice)
func ValidateChunkRecord(record *ChunkRecord) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidChunkRecord)
	}

	if record.Id < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidChunkRecord, ErrNegativeId)
	}

	if record.Source == "" {
		return fmt.Errorf("%w: %w", ErrInvalidChunkRecord, ErrEmptySource)
	}

	return nil
}

// ValidateDocument validates a Document according to domain rules.
//
// Validation rules:
//   - Source must not be empty
//   - ChunkStart and ChunkCount must not be negative
//   - IndexedAt must not be in the future
//
// NOT validated:
//   - Id (0 is valid before content-based assignment)
//   - Label (documents outside the allow list never reach the registry)
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return fmt.Errorf("%w: document is nil", ErrInvalidDocument)
	}

	if doc.Source == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrEmptySource)
	}

	if doc.ChunkStart < 0 || doc.ChunkCount < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrNegativeChunkRange)
	}

	if !IsValidTimestamp(doc.IndexedAt) {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrInvalidTimestamp)
	}

	return nil
}

// IsValidTimestamp reports whether a timestamp is zero or not in the future.
// A small clock-skew allowance of one minute is tolerated.
func IsValidTimestamp(ts time.Time) bool {
	if ts.IsZero() {
		return true
	}
	return !ts.After(time.Now().UTC().Add(time.Minute))
}
