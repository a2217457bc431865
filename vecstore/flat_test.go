package vecstore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewFlatIndex_InvalidDim(t *testing.T) {
	_, err := NewFlatIndex(0)
	require.ErrorIs(t, err, ErrInvalidDimension)
}

func TestFlatIndex_AddAndLen(t *testing.T) {
	index, err := NewFlatIndex(3)
	require.NoError(t, err)
	require.Equal(t, 0, index.Len())

	err = index.Add([]float32{1, 0, 0}, []float32{0, 1, 0})
	require.NoError(t, err)
	require.Equal(t, 2, index.Len())
}

func TestFlatIndex_Add_DimensionMismatch(t *testing.T) {
	index, err := NewFlatIndex(3)
	require.NoError(t, err)

	err = index.Add([]float32{1, 0, 0}, []float32{1, 0})
	require.ErrorIs(t, err, ErrDimensionMismatch)
	// Nothing appended on failure
	require.Equal(t, 0, index.Len())
}

func TestFlatIndex_Search_ExactOrdering(t *testing.T) {
	index, err := NewFlatIndex(2)
	require.NoError(t, err)
	require.NoError(t, index.Add(
		[]float32{10, 10}, // position 0, far
		[]float32{1, 1},   // position 1, near
		[]float32{3, 3},   // position 2, middle
	))

	positions, distances, err := index.Search([]float32{0, 0}, 3)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 0}, positions)
	require.Equal(t, []float32{2, 18, 200}, distances)
}

func TestFlatIndex_Search_KLargerThanIndex(t *testing.T) {
	index, err := NewFlatIndex(2)
	require.NoError(t, err)
	require.NoError(t, index.Add([]float32{1, 1}))

	// top_k=2 against an index of 1 vector returns exactly 1 result
	positions, distances, err := index.Search([]float32{0, 0}, 2)
	require.NoError(t, err)
	require.Len(t, positions, 1)
	require.Len(t, distances, 1)
	require.Equal(t, 0, positions[0])
}

func TestFlatIndex_Search_TieBreaksByPosition(t *testing.T) {
	index, err := NewFlatIndex(2)
	require.NoError(t, err)
	require.NoError(t, index.Add(
		[]float32{1, 0},
		[]float32{0, 1}, // same distance from origin as position 0
	))

	positions, _, err := index.Search([]float32{0, 0}, 2)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, positions)
}

func TestFlatIndex_Search_QueryDimensionMismatch(t *testing.T) {
	index, err := NewFlatIndex(3)
	require.NoError(t, err)

	_, _, err = index.Search([]float32{1, 2}, 1)
	require.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestFlatIndex_Search_InvalidTopK(t *testing.T) {
	index, err := NewFlatIndex(2)
	require.NoError(t, err)

	_, _, err = index.Search([]float32{0, 0}, 0)
	require.ErrorIs(t, err, ErrInvalidTopK)
}

func TestFlatIndex_Search_EmptyIndex(t *testing.T) {
	index, err := NewFlatIndex(2)
	require.NoError(t, err)

	positions, distances, err := index.Search([]float32{0, 0}, 5)
	require.NoError(t, err)
	require.Empty(t, positions)
	require.Empty(t, distances)
}

func TestFlatIndex_SaveLoad_RoundTrip(t *testing.T) {
	index, err := NewFlatIndex(3)
	require.NoError(t, err)
	require.NoError(t, index.Add(
		[]float32{0.25, -1.5, 3},
		[]float32{0, 0, 0},
	))

	path := filepath.Join(t.TempDir(), "index.bin")
	require.NoError(t, index.Save(path))

	loaded, err := LoadFlatIndex(path)
	require.NoError(t, err)
	require.Equal(t, index.Dim(), loaded.Dim())
	require.Equal(t, index.Len(), loaded.Len())
	require.Equal(t, index.At(0), loaded.At(0))
	require.Equal(t, index.At(1), loaded.At(1))
}

func TestFlatIndex_SaveLoad_Empty(t *testing.T) {
	index, err := NewFlatIndex(DefaultDim)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "index.bin")
	require.NoError(t, index.Save(path))

	loaded, err := LoadFlatIndex(path)
	require.NoError(t, err)
	require.Equal(t, DefaultDim, loaded.Dim())
	require.Equal(t, 0, loaded.Len())
}

func TestLoadFlatIndex_Truncated(t *testing.T) {
	index, err := NewFlatIndex(4)
	require.NoError(t, err)
	require.NoError(t, index.Add([]float32{1, 2, 3, 4}))

	path := filepath.Join(t.TempDir(), "index.bin")
	require.NoError(t, index.Save(path))

	// Truncate the artifact mid-vector
	data := readFile(t, path)
	writeFile(t, path, data[:len(data)-3])

	_, err = LoadFlatIndex(path)
	require.ErrorIs(t, err, ErrCorruptIndex)
}

func TestLoadFlatIndex_Missing(t *testing.T) {
	_, err := LoadFlatIndex(filepath.Join(t.TempDir(), "missing.bin"))
	require.Error(t, err)
}
