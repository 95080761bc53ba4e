package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"matchlint/internal/mast"
)

func parseOne(t *testing.T, src string) mast.Expr {
	t.Helper()
	file, err := ParseFile("test.mx", []byte(src+";"))
	require.NoError(t, err)
	require.Len(t, file.Items, 1)
	item, ok := file.Items[0].(*mast.ExprItem)
	require.True(t, ok)
	return item.X
}

func TestParseMatchExpression(t *testing.T) {
	t.Parallel()

	expr := parseOne(t, `match x { Some(0) => true, _ => false }`)
	m, ok := expr.(*mast.MatchExpr)
	require.True(t, ok)

	assert.Equal(t, "x", m.Scrutinee.String())
	require.Len(t, m.Arms, 2)

	first := m.Arms[0]
	assert.True(t, mast.EqualPatterns(first.Pattern, mast.Variant("Some", mast.IntPat("0"))))
	assert.Nil(t, first.Guard)
	assert.Equal(t, "true", first.Body.String())

	second := m.Arms[1]
	assert.True(t, mast.IsWildcard(second.Pattern))
	assert.Equal(t, "false", second.Body.String())
}

func TestParseGuardedArm(t *testing.T) {
	t.Parallel()

	expr := parseOne(t, `match x { Some(r) if r == 0 => false, _ => true }`)
	m := expr.(*mast.MatchExpr)
	require.Len(t, m.Arms, 2)

	require.NotNil(t, m.Arms[0].Guard)
	assert.Equal(t, "r == 0", m.Arms[0].Guard.String())
	assert.Equal(t, "Some(r)", m.Arms[0].Pattern.String())
}

func TestParseTrailingComma(t *testing.T) {
	t.Parallel()

	expr := parseOne(t, `match x { None => true, _ => false, }`)
	m := expr.(*mast.MatchExpr)
	assert.Len(t, m.Arms, 2)
}

func TestParsePatternKinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want mast.Pattern
	}{
		{"wildcard", `match x { _ => true, _ => false }`, mast.Wild()},
		{"lowercase binding", `match x { v => true, _ => false }`, mast.Bind("v")},
		{"bare variant", `match x { None => true, _ => false }`, mast.BareVariant("None")},
		{"variant with payload", `match x { Some(1) => true, _ => false }`, mast.Variant("Some", mast.IntPat("1"))},
		{"nested variant", `match x { Ok(Some(_)) => true, _ => false }`, mast.Variant("Ok", mast.Variant("Some", mast.Wild()))},
		{"or pattern", `match x { 0 | 1 => true, _ => false }`, mast.Or(mast.IntPat("0"), mast.IntPat("1"))},
		{"negative literal", `match x { -1 => true, _ => false }`, mast.IntPat("-1")},
		{"bool literal", `match x { true => 1, _ => 0 }`, mast.LitPat(mast.BoolValue{Val: true})},
		{"lowercase ident with payload is variant", `match x { some(0) => true, _ => false }`, mast.Variant("some", mast.IntPat("0"))},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m := parseOne(t, tt.src).(*mast.MatchExpr)
			require.NotEmpty(t, m.Arms)
			assert.True(t, mast.EqualPatterns(tt.want, m.Arms[0].Pattern),
				"want %s, got %s", tt.want, m.Arms[0].Pattern)
		})
	}
}

func TestParseIsExpression(t *testing.T) {
	t.Parallel()

	expr := parseOne(t, `x is Some(r) if r == 0`)
	is, ok := expr.(mast.IsExpr)
	require.True(t, ok)
	assert.Equal(t, "x", is.Value.String())
	assert.Equal(t, "Some(r)", is.Pattern.String())
	require.NotNil(t, is.Guard)
	assert.Equal(t, "r == 0", is.Guard.String())
}

func TestParseMethodCall(t *testing.T) {
	t.Parallel()

	expr := parseOne(t, `x.is_none()`)
	call, ok := expr.(mast.MethodCallExpr)
	require.True(t, ok)
	assert.Equal(t, "is_none", call.Name)
	assert.Empty(t, call.Args)
}

func TestParseLetItem(t *testing.T) {
	t.Parallel()

	file, err := ParseFile("test.mx", []byte("let ok = match x { None => true, _ => false };"))
	require.NoError(t, err)
	require.Len(t, file.Items, 1)

	let, ok := file.Items[0].(*mast.LetItem)
	require.True(t, ok)
	assert.Equal(t, "ok", let.Name)
	_, isMatch := let.Value.(*mast.MatchExpr)
	assert.True(t, isMatch)
}

func TestParseComments(t *testing.T) {
	t.Parallel()

	src := "// nolint:match-pattern-test\nlet a = 1;\n"
	file, err := ParseFile("test.mx", []byte(src))
	require.NoError(t, err)
	require.Len(t, file.Comments, 1)
	assert.Equal(t, " nolint:match-pattern-test", file.Comments[0].Text)
	assert.Equal(t, 1, file.Comments[0].Line)
}

func TestParseSpans(t *testing.T) {
	t.Parallel()

	src := "let a = match x {\n\tNone => true,\n\t_ => false,\n};\n"
	file, err := ParseFile("test.mx", []byte(src))
	require.NoError(t, err)

	let := file.Items[0].(*mast.LetItem)
	m := let.Value.(*mast.MatchExpr)
	assert.Equal(t, 1, m.Span.Start.Line)
	assert.Equal(t, 4, m.Span.End.Line)
	assert.Equal(t, 2, m.Arms[0].Span.Start.Line)
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want string
	}{
		{"missing semicolon", "let a = 1", "expected ';'"},
		{"missing arrow", "match x { _ true };", "expected '=>'"},
		{"missing pattern", "match x { => true };", "expected pattern"},
		{"unclosed match", "match x { _ => true ;", "expected '}'"},
		{"bare operator", "let a = ==;", "expected expression"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseFile("test.mx", []byte(tt.src))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestOperatorPrecedence(t *testing.T) {
	t.Parallel()

	expr := parseOne(t, `a == 1 && b != 2 || !c`)
	assert.Equal(t, "a == 1 && b != 2 || !c", expr.String())

	or, ok := expr.(mast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, mast.OpOr, or.Op)
}
