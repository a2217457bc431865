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


package badger

import (
	"encoding/binary"
	"fmt"

	"github.com/poiesic/lexindex/core"
)

const (
	documentPrefix      = "docrec"
	documentLabelPrefix = "doclbl"
)

// makeDocumentKey generates a key for a document by ID.
func makeDocumentKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", documentPrefix, id))
}

// makeDocumentLabelKey generates a composite key for the label index.
// Format: prefix:label:id
func makeDocumentLabelKey(label string, id core.ID) []byte {
	prefix := documentLabelPrefix + ":" + label + ":"
	prefixBytes := []byte(prefix)
	buf := make([]byte, len(prefixBytes)+8)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// makePartialDocumentLabelKey generates the iteration prefix for a label.
func makePartialDocumentLabelKey(label string) []byte {
	return []byte(documentLabelPrefix + ":" + label + ":")
}
