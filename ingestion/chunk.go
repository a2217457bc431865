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


package ingestion

const (
	// DefaultChunkSize and DefaultChunkOverlap control how document text
	// is split before embedding. Consecutive chunks share the trailing
	// overlap of the previous chunk.
	DefaultChunkSize    = 500
	DefaultChunkOverlap = 50
)

// Chunk splits text into windows of at most size runes, each starting
// overlap runes before the previous window ends. The final chunk may be
// shorter than size. Empty text yields no chunks.
//
// Windows are measured in runes, not bytes, so a boundary never lands
// inside a multi-byte character and every chunk is valid UTF-8.
func Chunk(text string, size, overlap int) ([]string, error) {
	if size <= 0 || overlap < 0 || size <= overlap {
		return nil, ErrInvalidChunking
	}
	runes := []rune(text)
	if len(runes) == 0 {
		return nil, nil
	}
	step := size - overlap
	chunks := make([]string, 0, len(runes)/step+1)
	for i := 0; i < len(runes); i += step {
		end := i + size
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[i:end]))
	}
	return chunks, nil
}
