// Package fs provides the file system walker used to classify source trees.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"

	"github.com/bmatcuk/doublestar"
	"go.trai.ch/assemble/internal/core/ports"
)

var _ ports.SourceWalker = (*Walker)(nil)

// alwaysSkipped are version control directories that never hold sources.
var alwaysSkipped = map[string]bool{
	".git": true,
	".jj":  true,
}

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields every regular file below root in lexical order.
// Directories named .git or .jj are always skipped. Any entry whose
// slash-separated path relative to root matches one of ignores (doublestar
// syntax) is skipped as well, so "dist" skips only root/dist while
// "**/node_modules" skips node_modules at every depth.
// Unreadable directories are skipped silently.
func (w *Walker) WalkFiles(root string, ignores []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if d != nil && d.IsDir() && path != root {
					return filepath.SkipDir
				}
				return nil //nolint:nilerr // unreadable entries are skipped
			}

			if path != root && w.ignored(root, path, d.Name(), ignores) {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			if !d.Type().IsRegular() {
				return nil
			}

			if !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

func (w *Walker) ignored(root, path, name string, ignores []string) bool {
	if alwaysSkipped[name] {
		return true
	}
	if len(ignores) == 0 {
		return false
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	for _, pattern := range ignores {
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			return true
		}
	}
	return false
}
