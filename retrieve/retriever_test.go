package retrieve

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/poiesic/lexindex/ai/mock"
	"github.com/poiesic/lexindex/ingestion"
	"github.com/poiesic/lexindex/vecstore"
	"github.com/stretchr/testify/require"
)

// buildArtifacts indexes a small plain-text corpus and returns the
// artifact paths.
func buildArtifacts(t *testing.T, docs map[string]string) (string, string) {
	t.Helper()
	root := t.TempDir()
	for rel, content := range docs {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}

	ix, err := ingestion.NewIndexer(mock.NewMockEmbedder(),
		ingestion.WithExtractor(ingestion.NewPlainTextExtractor()),
		ingestion.WithWalker(ingestion.NewWalker(".txt", ingestion.DefaultYearFilter)))
	require.NoError(t, err)
	t.Cleanup(ix.Release)

	out := t.TempDir()
	indexPath := filepath.Join(out, "corpus.index")
	metaPath := filepath.Join(out, "metadata.json")
	require.NoError(t, ix.BuildToFiles(context.Background(), root, indexPath, metaPath))
	return indexPath, metaPath
}

func TestSearch_MissingArtifacts(t *testing.T) {
	dir := t.TempDir()
	r, err := NewRetriever(mock.NewMockEmbedder(),
		filepath.Join(dir, "absent.index"), filepath.Join(dir, "absent.json"))
	require.NoError(t, err)
	require.False(t, r.Ready())

	_, err = r.Search(context.Background(), "breach of contract", 2)
	require.ErrorIs(t, err, ErrResourcesNotFound)
	require.False(t, r.Ready())
}

func TestLoad_ThenReady(t *testing.T) {
	indexPath, metaPath := buildArtifacts(t, map[string]string{
		"contracts/1995/deed.txt": "conveyance of property",
	})
	r, err := NewRetriever(mock.NewMockEmbedder(), indexPath, metaPath)
	require.NoError(t, err)
	require.NoError(t, r.Load())
	require.True(t, r.Ready())
}

func TestSearch_ReturnsNearestChunks(t *testing.T) {
	indexPath, metaPath := buildArtifacts(t, map[string]string{
		"contracts/1995/deed.txt":  "conveyance of immovable property between vendor and purchaser",
		"criminal/2000/charge.txt": "charge sheet under the penal code for theft",
		"family/2002/pet.txt":      "petition for dissolution of marriage",
	})
	r, err := NewRetriever(mock.NewMockEmbedder(), indexPath, metaPath)
	require.NoError(t, err)

	// The mock embedder is deterministic per text, so querying with a
	// chunk's exact text puts that chunk at distance zero.
	neighbors, err := r.Search(context.Background(),
		"petition for dissolution of marriage", 2)
	require.NoError(t, err)
	require.Len(t, neighbors, 2)
	require.Equal(t, "family/2002/pet.txt", neighbors[0].Source)
	require.Equal(t, float32(0), neighbors[0].Distance)
	require.LessOrEqual(t, neighbors[0].Distance, neighbors[1].Distance)
}

func TestSearch_TopKLargerThanIndex(t *testing.T) {
	indexPath, metaPath := buildArtifacts(t, map[string]string{
		"writs/1996/habeas.txt": "writ of habeas corpus",
	})
	r, err := NewRetriever(mock.NewMockEmbedder(), indexPath, metaPath)
	require.NoError(t, err)

	neighbors, err := r.Search(context.Background(), "habeas corpus", 2)
	require.NoError(t, err)
	require.Len(t, neighbors, 1)
}

func TestSearch_DefaultTopK(t *testing.T) {
	indexPath, metaPath := buildArtifacts(t, map[string]string{
		"civil/1995/a.txt": "first plaint",
		"civil/1995/b.txt": "second plaint",
		"civil/1995/c.txt": "third plaint",
	})
	r, err := NewRetriever(mock.NewMockEmbedder(), indexPath, metaPath)
	require.NoError(t, err)

	neighbors, err := r.Search(context.Background(), "plaint", 0)
	require.NoError(t, err)
	require.Len(t, neighbors, DefaultTopK)
}

func TestSearch_EmptyQuery(t *testing.T) {
	r, err := NewRetriever(mock.NewMockEmbedder(), "unused", "unused")
	require.NoError(t, err)
	_, err = r.Search(context.Background(), "   ", 2)
	require.ErrorIs(t, err, ErrEmptyQuery)
}

func TestLoad_MismatchedArtifacts(t *testing.T) {
	indexPath, metaPath := buildArtifacts(t, map[string]string{
		"contracts/1995/deed.txt": strings.Repeat("deed ", 300),
	})
	// Replace the metadata with an empty table so sizes disagree.
	require.NoError(t, vecstore.NewMetaTable().Save(metaPath))

	r, err := NewRetriever(mock.NewMockEmbedder(), indexPath, metaPath)
	require.NoError(t, err)
	require.ErrorIs(t, r.Load(), vecstore.ErrSizeMismatch)
}
