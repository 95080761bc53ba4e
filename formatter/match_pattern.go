package formatter

// MatchPatternTestFormatter renders match-pattern-test issues. The
// suggestion block is the point of this rule, so it is always shown
// before the note.
type MatchPatternTestFormatter struct{}

func (f *MatchPatternTestFormatter) IssueTemplate() string {
	return `{{header .Rule .Severity .MaxLineNumWidth .Filename .StartLine .StartColumn}}
{{snippet .SnippetLines .StartLine .EndLine .MaxLineNumWidth .CommonIndent .Padding -}}
{{underlineAndMessage .Message .Padding .StartLine .EndLine .StartColumn .EndColumn .SnippetLines .CommonIndent}}
{{suggestion .Suggestion .Padding .MaxLineNumWidth .StartLine}}
{{- if .Note }}
{{note .Note}}
{{- end }}
`
}

// UnreachableArmFormatter renders unreachable-arm issues. Dead arms have
// no replacement text, only the explanation.
type UnreachableArmFormatter struct{}

func (f *UnreachableArmFormatter) IssueTemplate() string {
	return `{{header .Rule .Severity .MaxLineNumWidth .Filename .StartLine .StartColumn}}
{{snippet .SnippetLines .StartLine .EndLine .MaxLineNumWidth .CommonIndent .Padding -}}
{{underlineAndMessage .Message .Padding .StartLine .EndLine .StartColumn .EndColumn .SnippetLines .CommonIndent}}
{{- if .Note }}
{{note .Note}}
{{- end }}
`
}
