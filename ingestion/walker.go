package ingestion

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// DefaultYearFilter matches the reporting years the corpus is curated
// for. Files under any other year directory are skipped.
var DefaultYearFilter = []string{"1995", "1996", "2000", "2002"}

// SourceFile is one candidate document found under the corpus root.
type SourceFile struct {
	// Path is the absolute (or root-joined) path on disk.
	Path string
	// Rel is the path relative to the corpus root, slash-separated.
	Rel string
	// Label is the first segment of Rel, typically the practice area
	// the document was filed under.
	Label string
}

// Walker selects document files from a corpus directory tree. The tree
// is expected to be laid out as <label>/<year>/<file>; only files whose
// year segment is in the allow-list and whose extension matches are
// returned.
type Walker struct {
	extension string
	years     map[string]bool
}

// NewWalker builds a walker for the given file extension (with leading
// dot) and set of allowed year segments.
func NewWalker(extension string, years []string) *Walker {
	allowed := make(map[string]bool, len(years))
	for _, y := range years {
		allowed[y] = true
	}
	return &Walker{extension: strings.ToLower(extension), years: allowed}
}

// NewDefaultWalker returns a walker for PDF files in the default years.
func NewDefaultWalker() *Walker {
	return NewWalker(".pdf", DefaultYearFilter)
}

// Walk returns the matching files under root in lexical path order.
// Files that do not match the filter are skipped silently.
func (w *Walker) Walk(root string) ([]SourceFile, error) {
	var files []SourceFile
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.ToLower(filepath.Ext(path)) != w.extension {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		parts := strings.Split(rel, "/")
		if len(parts) < 3 || !w.years[parts[1]] {
			return nil
		}
		files = append(files, SourceFile{Path: path, Rel: rel, Label: parts[0]})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
