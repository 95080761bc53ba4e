package nolint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"matchlint/internal/parser"
)

func TestTrailingNolintComment(t *testing.T) {
	t.Parallel()

	src := "let a = match x { None => true, _ => false }; // nolint:match-pattern-test\n" +
		"let b = match x { None => true, _ => false };\n"
	file, err := parser.ParseFile("test.mx", []byte(src))
	require.NoError(t, err)

	m := ParseComments(file)
	assert.True(t, m.IsNolint(1, "match-pattern-test"))
	assert.False(t, m.IsNolint(1, "unreachable-arm"))
	assert.False(t, m.IsNolint(2, "match-pattern-test"))
}

func TestStandaloneNolintComment(t *testing.T) {
	t.Parallel()

	src := "// nolint:unreachable-arm\n" +
		"let a = match x {\n" +
		"\t_ => 0,\n" +
		"\tSome(v) => v,\n" +
		"};\n" +
		"let b = match x { _ => 0, Some(v) => v };\n"
	file, err := parser.ParseFile("test.mx", []byte(src))
	require.NoError(t, err)

	m := ParseComments(file)
	// the directive covers the whole multi-line item that follows
	assert.True(t, m.IsNolint(4, "unreachable-arm"))
	assert.False(t, m.IsNolint(6, "unreachable-arm"))
}

func TestBareNolintMutesEverything(t *testing.T) {
	t.Parallel()

	src := "let a = 1; // nolint\n"
	file, err := parser.ParseFile("test.mx", []byte(src))
	require.NoError(t, err)

	m := ParseComments(file)
	assert.True(t, m.IsNolint(1, "match-pattern-test"))
	assert.True(t, m.IsNolint(1, "anything-at-all"))
}

func TestMalformedDirectivesIgnored(t *testing.T) {
	t.Parallel()

	src := "let a = 1; // nolint:\n" +
		"let b = 2; // nolinting everything\n" +
		"let c = 3; // regular comment\n"
	file, err := parser.ParseFile("test.mx", []byte(src))
	require.NoError(t, err)

	m := ParseComments(file)
	assert.False(t, m.IsNolint(1, "match-pattern-test"))
	assert.False(t, m.IsNolint(2, "match-pattern-test"))
	assert.False(t, m.IsNolint(3, "match-pattern-test"))
}

func TestNilManager(t *testing.T) {
	t.Parallel()

	var m *Manager
	assert.False(t, m.IsNolint(1, "match-pattern-test"))
}

func TestMultipleRules(t *testing.T) {
	t.Parallel()

	src := "let a = match x { _ => 0, Some(v) => v }; // nolint:unreachable-arm, useless-guard\n"
	file, err := parser.ParseFile("test.mx", []byte(src))
	require.NoError(t, err)

	m := ParseComments(file)
	assert.True(t, m.IsNolint(1, "unreachable-arm"))
	assert.True(t, m.IsNolint(1, "useless-guard"))
	assert.False(t, m.IsNolint(1, "match-pattern-test"))
}
