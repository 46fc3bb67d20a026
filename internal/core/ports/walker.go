package ports

import "iter"

// SourceWalker enumerates the files of a source tree.
//
//go:generate mockgen -source=walker.go -destination=mocks/mock_walker.go -package=mocks
type SourceWalker interface {
	// WalkFiles yields the path of every regular file below root, skipping
	// entries whose slash-separated path relative to root matches one of ignores.
	WalkFiles(root string, ignores []string) iter.Seq[string]
}
