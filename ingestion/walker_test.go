package ingestion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeCorpusFile(t *testing.T, root string, parts ...string) {
	t.Helper()
	path := filepath.Join(append([]string{root}, parts...)...)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("content"), 0644))
}

func TestWalk_FiltersYearAndExtension(t *testing.T) {
	root := t.TempDir()
	writeCorpusFile(t, root, "contracts", "1995", "a.pdf")
	writeCorpusFile(t, root, "contracts", "1997", "b.pdf")  // year not allowed
	writeCorpusFile(t, root, "criminal", "2000", "c.txt")   // wrong extension
	writeCorpusFile(t, root, "criminal", "2002", "d.pdf")
	writeCorpusFile(t, root, "stray.pdf") // no year segment

	files, err := NewDefaultWalker().Walk(root)
	require.NoError(t, err)
	require.Len(t, files, 2)
	require.Equal(t, "contracts/1995/a.pdf", files[0].Rel)
	require.Equal(t, "contracts", files[0].Label)
	require.Equal(t, "criminal/2002/d.pdf", files[1].Rel)
	require.Equal(t, "criminal", files[1].Label)
}

func TestWalk_ExtensionCaseInsensitive(t *testing.T) {
	root := t.TempDir()
	writeCorpusFile(t, root, "writs", "1996", "Habeas.PDF")

	files, err := NewDefaultWalker().Walk(root)
	require.NoError(t, err)
	require.Len(t, files, 1)
}

func TestWalk_LexicalOrder(t *testing.T) {
	root := t.TempDir()
	writeCorpusFile(t, root, "family", "2000", "z.pdf")
	writeCorpusFile(t, root, "civil", "1995", "a.pdf")
	writeCorpusFile(t, root, "civil", "1995", "b.pdf")

	files, err := NewDefaultWalker().Walk(root)
	require.NoError(t, err)
	require.Equal(t, []string{
		"civil/1995/a.pdf",
		"civil/1995/b.pdf",
		"family/2000/z.pdf",
	}, []string{files[0].Rel, files[1].Rel, files[2].Rel})
}

func TestWalk_CustomFilter(t *testing.T) {
	root := t.TempDir()
	writeCorpusFile(t, root, "commercial", "2010", "note.txt")
	writeCorpusFile(t, root, "commercial", "1995", "old.txt")

	files, err := NewWalker(".txt", []string{"2010"}).Walk(root)
	require.NoError(t, err)
	require.Len(t, files, 1)
	require.Equal(t, "commercial/2010/note.txt", files[0].Rel)
}
