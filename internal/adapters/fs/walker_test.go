package fs_test

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/assemble/internal/adapters/fs"
	"go.trai.ch/assemble/internal/core/domain"
)

func writeTree(t *testing.T, root string, files ...string) {
	t.Helper()
	for _, f := range files {
		path := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
		require.NoError(t, os.WriteFile(path, []byte(f), domain.PrivateFilePerm))
	}
}

func relPaths(t *testing.T, root string, seq func(func(string) bool)) []string {
	t.Helper()
	var out []string
	for p := range seq {
		rel, err := filepath.Rel(root, p)
		require.NoError(t, err)
		out = append(out, filepath.ToSlash(rel))
	}
	return out
}

func TestWalker_WalkFiles(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root,
		"src/index.js",
		"src/styles/main.css",
		"node_modules/react/index.js",
		".git/HEAD",
		".jj/repo",
		"dist/main.js",
		"README.md",
	)

	w := fs.NewWalker()
	got := relPaths(t, root, w.WalkFiles(root, []string{"**/node_modules", "dist"}))

	assert.Equal(t, []string{"README.md", "src/index.js", "src/styles/main.css"}, got)
	assert.True(t, slices.IsSorted(got))
}

func TestWalker_WalkFiles_GlobIgnores(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "a.js", "a.js.map", "b.css", "src/c.js.map")

	got := relPaths(t, root, fs.NewWalker().WalkFiles(root, []string{"**/*.map"}))
	assert.Equal(t, []string{"a.js", "b.css"}, got)
}

func TestWalker_WalkFiles_AnchoredIgnores(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root,
		"dist/main.js",
		"src/widgets/dist/index.js",
		"build/out/app.js",
		"packages/ui/out/button.js",
		"packages/ui/node_modules/react/index.js",
	)

	got := relPaths(t, root, fs.NewWalker().WalkFiles(root, []string{"**/node_modules", "dist", "build/out"}))
	assert.Equal(t, []string{"packages/ui/out/button.js", "src/widgets/dist/index.js"}, got)
}

func TestWalker_WalkFiles_EarlyStop(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "a.js", "b.js", "c.js")

	var count int
	for range fs.NewWalker().WalkFiles(root, nil) {
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestWalker_WalkFiles_MissingRoot(t *testing.T) {
	var count int
	for range fs.NewWalker().WalkFiles(filepath.Join(t.TempDir(), "missing"), nil) {
		count++
	}
	assert.Zero(t, count)
}
