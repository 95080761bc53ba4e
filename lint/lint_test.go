package lint

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tt "matchlint/internal/types"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "matchlint.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewWithConfig(t *testing.T) {
	t.Parallel()

	cfg := writeConfig(t, `
name: project
rules:
  unreachable-arm:
    severity: off
  match-pattern-test:
    severity: error
`)
	engine, err := New(cfg)
	require.NoError(t, err)

	issues, err := engine.RunSource([]byte(`let a = match x { None => true, _ => false };`))
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, tt.SeverityError, issues[0].Severity)

	issues, err = engine.RunSource([]byte(`let a = match x { _ => 0, Some(v) => v };`))
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestNewWithoutConfig(t *testing.T) {
	t.Parallel()

	engine, err := New("")
	require.NoError(t, err)

	issues, err := engine.RunSource([]byte(`let a = match x { _ => 0, Some(v) => v };`))
	require.NoError(t, err)
	assert.Len(t, issues, 1)
}

func TestNewWithMissingConfig(t *testing.T) {
	t.Parallel()

	_, err := New(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestProcessPathDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	files := map[string]string{
		"a.mx":     "let a = match x { Some(0) => true, _ => false };\n",
		"b.mx":     "let b = match x { None => true, _ => false };\n",
		"clean.mx": "let c = match x { Some(v) => v, _ => 0 };\n",
		"skip.txt": "not lintable",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}

	engine, err := New("")
	require.NoError(t, err)

	issues, err := ProcessPath(context.Background(), nil, engine, dir, ProcessFile)
	require.NoError(t, err)
	assert.Len(t, issues, 2)
}

func TestProcessPathSingleFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "one.mx")
	require.NoError(t, os.WriteFile(path, []byte("let a = match x { None => true, _ => false };\n"), 0o644))

	engine, err := New("")
	require.NoError(t, err)

	issues, err := ProcessFiles(context.Background(), nil, engine, []string{path}, ProcessFile)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, "x.is_none()", issues[0].Suggestion)
}

func TestProcessPathIgnoresNonSourceFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "readme.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o644))

	engine, err := New("")
	require.NoError(t, err)

	issues, err := ProcessPath(context.Background(), nil, engine, path, ProcessFile)
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestProcessPathIgnoredPrefix(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	sub := filepath.Join(dir, "vendor")
	require.NoError(t, os.Mkdir(sub, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "dep.mx"),
		[]byte("let a = match x { None => true, _ => false };\n"), 0o644))

	engine, err := New("")
	require.NoError(t, err)
	engine.IgnorePath(sub)

	issues, err := ProcessPath(context.Background(), nil, engine, dir, ProcessFile)
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestProcessSources(t *testing.T) {
	t.Parallel()

	engine, err := New("")
	require.NoError(t, err)

	sources := [][]byte{
		[]byte("let a = match x { Some(0) => true, _ => false };"),
		[]byte("let b = match x { Some(v) => v, _ => 0 };"),
	}
	issues, err := ProcessSources(context.Background(), nil, engine, sources, ProcessSource)
	require.NoError(t, err)
	assert.Len(t, issues, 1)
}

func TestProcessPathPropagatesParseError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.mx"), []byte("let a = ;"), 0o644))

	engine, err := New("")
	require.NoError(t, err)

	_, err = ProcessPath(context.Background(), nil, engine, dir, ProcessFile)
	require.Error(t, err)
}
