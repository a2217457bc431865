package vecstore

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/poiesic/lexindex/core"
	"github.com/stretchr/testify/require"
)

func readFile(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return data
}

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, data, 0644))
}

func TestMetaTable_AddAndAt(t *testing.T) {
	meta := NewMetaTable()
	meta.Add(core.ChunkRecord{Id: 0, Source: "a.pdf", Text: "first chunk"})
	meta.Add(core.ChunkRecord{Id: 1, Source: "a.pdf", Text: "second chunk"})

	require.Equal(t, 2, meta.Len())

	record, ok := meta.At(1)
	require.True(t, ok)
	require.Equal(t, "second chunk", record.Text)

	_, ok = meta.At(2)
	require.False(t, ok)
}

func TestMetaTable_SaveLoad_RoundTrip(t *testing.T) {
	meta := NewMetaTable()
	meta.Add(core.ChunkRecord{Id: 0, Source: "dataset/kanoon/1995/x.pdf", Text: "chunk text"})

	path := filepath.Join(t.TempDir(), "metadata.json")
	require.NoError(t, meta.Save(path))

	loaded, err := LoadMetaTable(path)
	require.NoError(t, err)
	require.Equal(t, 1, loaded.Len())

	record, ok := loaded.At(0)
	require.True(t, ok)
	require.Equal(t, "dataset/kanoon/1995/x.pdf", record.Source)
}

func TestMetaTable_SaveLoad_PreservesMultiByteText(t *testing.T) {
	text := "अनुबंध की शर्तें दोनों पक्षों पर बाध्यकारी हैं"
	meta := NewMetaTable()
	meta.Add(core.ChunkRecord{Id: 0, Source: "dataset/kanoon/1995/x.pdf", Text: text})

	path := filepath.Join(t.TempDir(), "metadata.json")
	require.NoError(t, meta.Save(path))

	loaded, err := LoadMetaTable(path)
	require.NoError(t, err)
	record, ok := loaded.At(0)
	require.True(t, ok)
	require.Equal(t, text, record.Text)
}

func TestMetaTable_Save_RejectsInvalidRecord(t *testing.T) {
	meta := NewMetaTable()
	meta.Add(core.ChunkRecord{Id: 0, Source: "", Text: "orphan chunk"})

	path := filepath.Join(t.TempDir(), "metadata.json")
	err := meta.Save(path)
	require.ErrorIs(t, err, core.ErrInvalidChunkRecord)

	_, statErr := os.Stat(path)
	require.True(t, os.IsNotExist(statErr))
}

func TestMetaTable_Save_HumanReadable(t *testing.T) {
	meta := NewMetaTable()
	meta.Add(core.ChunkRecord{Id: 7, Source: "b.pdf", Text: "visible"})

	path := filepath.Join(t.TempDir(), "metadata.json")
	require.NoError(t, meta.Save(path))

	data := string(readFile(t, path))
	// Stringified position keys and plain-text fields
	require.True(t, strings.Contains(data, `"7"`))
	require.True(t, strings.Contains(data, `"visible"`))
}

func TestCheckCorrespondence_OK(t *testing.T) {
	index, err := NewFlatIndex(2)
	require.NoError(t, err)
	require.NoError(t, index.Add([]float32{1, 2}, []float32{3, 4}))

	meta := NewMetaTable()
	meta.Add(core.ChunkRecord{Id: 0, Source: "a", Text: "t0"})
	meta.Add(core.ChunkRecord{Id: 1, Source: "a", Text: "t1"})

	require.NoError(t, CheckCorrespondence(index, meta))
}

func TestCheckCorrespondence_SizeMismatch(t *testing.T) {
	index, err := NewFlatIndex(2)
	require.NoError(t, err)
	require.NoError(t, index.Add([]float32{1, 2}))

	meta := NewMetaTable()
	require.ErrorIs(t, CheckCorrespondence(index, meta), ErrSizeMismatch)
}

func TestCheckCorrespondence_GapInPositions(t *testing.T) {
	index, err := NewFlatIndex(2)
	require.NoError(t, err)
	require.NoError(t, index.Add([]float32{1, 2}))

	meta := NewMetaTable()
	meta.Add(core.ChunkRecord{Id: 5, Source: "a", Text: "misnumbered"})

	require.ErrorIs(t, CheckCorrespondence(index, meta), ErrSizeMismatch)
}
