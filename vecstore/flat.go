package vecstore

import (
	"fmt"
	"sort"
)

// DefaultDim is the dimensionality of the production embedding model.
const DefaultDim = 384

// FlatIndex is an append-only collection of fixed-dimension float32
// vectors supporting exact squared-L2 nearest-neighbor search.
//
// The index is not safe for concurrent mutation; concurrent Search calls
// against an index that is not being appended to are safe.
type FlatIndex struct {
	dim  int
	data []float32 // flattened row-major storage, len == Len()*dim
}

// NewFlatIndex creates an empty flat index for vectors of the given dimension.
func NewFlatIndex(dim int) (*FlatIndex, error) {
	if dim < 1 {
		return nil, ErrInvalidDimension
	}
	return &FlatIndex{dim: dim}, nil
}

// Dim returns the vector dimensionality of the index.
func (x *FlatIndex) Dim() int {
	return x.dim
}

// Len returns the number of stored vectors.
func (x *FlatIndex) Len() int {
	return len(x.data) / x.dim
}

// Add appends vectors to the index in order. Every vector must have the
// index dimension; on a mismatch nothing is appended and an error is
// returned, so a failed Add never leaves a partial write behind.
func (x *FlatIndex) Add(vectors ...[]float32) error {
	for _, v := range vectors {
		if len(v) != x.dim {
			return fmt.Errorf("%w: expected %d, received %d", ErrDimensionMismatch, x.dim, len(v))
		}
	}
	for _, v := range vectors {
		x.data = append(x.data, v...)
	}
	return nil
}

// At returns the vector stored at position pos.
// The returned slice aliases the index storage and must not be modified.
func (x *FlatIndex) At(pos int) []float32 {
	start := pos * x.dim
	return x.data[start : start+x.dim]
}

// Search returns the positions and squared-L2 distances of the up-to-k
// stored vectors nearest to query, ordered by ascending distance. Ties
// are broken by lower position. If fewer than k vectors are stored, all
// of them are returned; absent neighbors are never fabricated.
func (x *FlatIndex) Search(query []float32, k int) ([]int, []float32, error) {
	if len(query) != x.dim {
		return nil, nil, fmt.Errorf("%w: expected %d, received %d", ErrDimensionMismatch, x.dim, len(query))
	}
	if k < 1 {
		return nil, nil, ErrInvalidTopK
	}

	n := x.Len()
	positions := make([]int, n)
	distances := make([]float32, n)
	for i := 0; i < n; i++ {
		positions[i] = i
		distances[i] = squaredL2(query, x.At(i))
	}

	sort.Slice(positions, func(a, b int) bool {
		pa, pb := positions[a], positions[b]
		if distances[pa] != distances[pb] {
			return distances[pa] < distances[pb]
		}
		return pa < pb
	})

	if k > n {
		k = n
	}

	outPos := make([]int, k)
	outDist := make([]float32, k)
	for i := 0; i < k; i++ {
		outPos[i] = positions[i]
		outDist[i] = distances[positions[i]]
	}
	return outPos, outDist, nil
}

// squaredL2 computes the squared Euclidean distance between two vectors
// of equal length.
func squaredL2(a, b []float32) float32 {
	var sum float32
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}
