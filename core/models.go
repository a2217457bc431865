package core

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// ChunkRecord is one entry of the metadata table that accompanies the
// vector index. Entry i describes the vector stored at index position i;
// that positional correspondence is the only linkage between the two
// artifacts.
type ChunkRecord struct {
	Id     int    `json:"id"`
	Source string `json:"source"`
	Text   string `json:"text"`
}

// Document represents a source document ingested by the indexer.
// One Document owns a contiguous run of chunk positions in the index.
type Document struct {
	Id         ID
	Source     string
	Label      string // allow-listed second path segment the document was found under
	Chars      int    // extracted text length
	ChunkStart int    // index position of the document's first chunk
	ChunkCount int
	IndexedAt  time.Time
}

// Neighbor is a single nearest-neighbor hit returned by the retriever.
// Distance is the raw squared L2 distance; smaller means more similar.
// No normalization to a bounded similarity score is applied.
type Neighbor struct {
	Id       int     `json:"id"`
	Source   string  `json:"source"`
	Text     string  `json:"text"`
	Distance float32 `json:"distance"`
}

// ScoreBreakdown holds the individual signals that produced a template
// match score. It exists for the duration of one matching call and is
// never persisted.
type ScoreBreakdown struct {
	NameScore    int     // partial-ratio similarity between file name and query (0-100)
	ContentScore int     // token-set similarity between query and content (0-100)
	KeywordBonus float64 // flat reinforcement bonus, 10 or 0
	Final        float64 // 0.40*name + 0.50*content + bonus
}

// TemplateMatch is the winning candidate of a template matching call.
type TemplateMatch struct {
	Name    string // normalized candidate file name
	Source  string // path of the matched template file
	Content string
	Score   ScoreBreakdown
}
