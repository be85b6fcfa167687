// Package fs provides file system adapters for walking, copying and hashing files.
package fs

import (
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/zerr"
)

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields every regular file below root as a slash-separated path
// relative to root. Symlinks to regular files are yielded, symlinks to
// directories and dangling symlinks are skipped. Iteration stops at the first
// error, which is yielded with an empty path.
func (w *Walker) WalkFiles(root string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !w.isFile(path, d) {
				return nil
			}

			rel, err := filepath.Rel(root, path)
			if err != nil {
				return zerr.With(zerr.Wrap(err, "failed to resolve relative path"), "path", path)
			}

			if !yield(filepath.ToSlash(rel), nil) {
				return filepath.SkipAll
			}
			return nil
		})
		if err != nil {
			yield("", zerr.With(zerr.Wrap(err, "failed to walk directory"), "root", root))
		}
	}
}

// ListFiles collects WalkFiles into a lexically sorted slice.
func (w *Walker) ListFiles(root string) ([]string, error) {
	var files []string
	for rel, err := range w.WalkFiles(root) {
		if err != nil {
			return nil, err
		}
		files = append(files, rel)
	}
	slices.Sort(files)
	return files, nil
}

func (w *Walker) isFile(path string, d fs.DirEntry) bool {
	if d.Type().IsRegular() {
		return true
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
