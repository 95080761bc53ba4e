package scanner

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTree(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := []string{
		"a.mx",
		"b.mx",
		"notes.txt",
		"sub/c.mx",
		"sub/deep/d.mx",
		"vendor/dep.mx",
	}
	for _, name := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("let x = 1;\n"), 0o644))
	}
	return dir
}

func names(dir string, files []FileInfo) []string {
	out := make([]string, 0, len(files))
	for _, f := range files {
		rel, _ := filepath.Rel(dir, f.Path)
		out = append(out, filepath.ToSlash(rel))
	}
	return out
}

func TestScanFiltersByExtension(t *testing.T) {
	t.Parallel()

	dir := setupTree(t)
	files, err := New(dir, ".mx").Scan()
	require.NoError(t, err)

	assert.ElementsMatch(t,
		[]string{"a.mx", "b.mx", "sub/c.mx", "sub/deep/d.mx", "vendor/dep.mx"},
		names(dir, files))
}

func TestScanNoExtensionsMeansEverything(t *testing.T) {
	t.Parallel()

	dir := setupTree(t)
	files, err := New(dir).Scan()
	require.NoError(t, err)
	assert.Len(t, files, 6)
}

func TestScanWithFilter(t *testing.T) {
	t.Parallel()

	dir := setupTree(t)
	files, err := New(dir, ".mx").
		WithFilter(func(path string) bool {
			return strings.Contains(path, string(filepath.Separator)+"vendor"+string(filepath.Separator))
		}).
		Scan()
	require.NoError(t, err)

	assert.ElementsMatch(t,
		[]string{"a.mx", "b.mx", "sub/c.mx", "sub/deep/d.mx"},
		names(dir, files))
}

func TestScanReportsSizes(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "one.mx"), []byte("let a = 1;\n"), 0o644))

	files, err := New(dir, ".mx").Scan()
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, int64(len("let a = 1;\n")), files[0].Size)
}

func TestScanMissingRoot(t *testing.T) {
	t.Parallel()

	_, err := New(filepath.Join(t.TempDir(), "missing")).Scan()
	assert.Error(t, err)
}
