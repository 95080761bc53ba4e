package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tt "matchlint/internal/types"
)

func TestEngineRunSource(t *testing.T) {
	t.Parallel()

	engine := NewEngine(nil)
	issues, err := engine.RunSource([]byte(`let ok = match x { Some(0) => true, _ => false };`))
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, "match-pattern-test", issues[0].Rule)
	assert.Equal(t, "x is Some(0)", issues[0].Suggestion)
}

func TestEngineRunFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "sample.mx")
	src := "let dead = match x { _ => 0, Some(v) => v };\n"
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	engine := NewEngine(nil)
	issues, err := engine.Run(path)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, "unreachable-arm", issues[0].Rule)
	assert.Equal(t, path, issues[0].Start.Filename)
}

func TestEngineIgnoreRule(t *testing.T) {
	t.Parallel()

	engine := NewEngine(nil)
	engine.IgnoreRule("match-pattern-test")

	issues, err := engine.RunSource([]byte(`let ok = match x { None => true, _ => false };`))
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestEngineConfigSeverity(t *testing.T) {
	t.Parallel()

	engine := NewEngine(map[string]tt.ConfigRule{
		"match-pattern-test": {Severity: tt.SeverityError},
		"unreachable-arm":    {Severity: tt.SeverityOff},
	})

	issues, err := engine.RunSource([]byte(
		`let a = match x { None => true, _ => false, Some(v) => true };`))
	require.NoError(t, err)

	// unreachable-arm is off; the match itself is ineligible (three arms,
	// two specific), so nothing fires
	assert.Empty(t, issues)

	issues, err = engine.RunSource([]byte(`let a = match x { None => true, _ => false };`))
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, tt.SeverityError, issues[0].Severity)
}

func TestEngineNolintFiltering(t *testing.T) {
	t.Parallel()

	engine := NewEngine(nil)
	issues, err := engine.RunSource([]byte(
		"let a = match x { None => true, _ => false }; // nolint:match-pattern-test\n"))
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestEngineParseErrorSurfaces(t *testing.T) {
	t.Parallel()

	engine := NewEngine(nil)
	_, err := engine.RunSource([]byte(`let a = match {;`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error parsing file")
}

func TestEngineIgnorePath(t *testing.T) {
	t.Parallel()

	engine := NewEngine(nil)
	engine.IgnorePath("vendor/")

	assert.True(t, engine.IsPathIgnored("vendor/dep/file.mx"))
	assert.False(t, engine.IsPathIgnored("vendored/file.mx"))
	assert.False(t, engine.IsPathIgnored("src/file.mx"))
}
