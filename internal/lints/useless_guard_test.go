package lints

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"matchlint/internal/parser"
	tt "matchlint/internal/types"
)

func TestDetectUselessGuard(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		src           string
		expectedIssue int
	}{
		{
			name:          "literal true guard",
			src:           `let a = match x { Some(v) if true => v, _ => 0 };`,
			expectedIssue: 1,
		},
		{
			name:          "parenthesized true guard",
			src:           `let a = match x { Some(v) if (true) => v, _ => 0 };`,
			expectedIssue: 1,
		},
		{
			name:          "meaningful guard",
			src:           `let a = match x { Some(v) if v > 0 => v, _ => 0 };`,
			expectedIssue: 0,
		},
		{
			name:          "literal false guard is not this rule's business",
			src:           `let a = match x { Some(v) if false => v, _ => 0 };`,
			expectedIssue: 0,
		},
		{
			name:          "no guard",
			src:           `let a = match x { Some(v) => v, _ => 0 };`,
			expectedIssue: 0,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			file, err := parser.ParseFile("test.mx", []byte(tc.src))
			require.NoError(t, err)

			issues, err := DetectUselessGuard("test.mx", file, tt.SeverityWarning)
			require.NoError(t, err)
			assert.Len(t, issues, tc.expectedIssue)
		})
	}
}

func TestDetectUselessGuardSuggestion(t *testing.T) {
	t.Parallel()

	file, err := parser.ParseFile("test.mx", []byte(`let a = match x { Some(v) if true => v, _ => 0 };`))
	require.NoError(t, err)

	issues, err := DetectUselessGuard("test.mx", file, tt.SeverityWarning)
	require.NoError(t, err)
	require.Len(t, issues, 1)

	assert.Equal(t, uselessGuardRule, issues[0].Rule)
	assert.Equal(t, "Some(v) => v", issues[0].Suggestion)
}
