// Package nolint suppresses reported issues based on source comments.
//
// A comment of the form `// nolint` mutes every rule; `// nolint:rule-a,
// rule-b` mutes only the listed rules. A comment on its own line applies
// to the item starting on the following line; a trailing comment applies
// to the item that shares its line.
package nolint

import (
	"strings"

	"matchlint/internal/mast"
)

const nolintPrefix = "nolint"

// Manager holds the nolint scopes of one file.
type Manager struct {
	scopes []scope
}

// scope is a line range in which some rules are muted. An empty rule set
// mutes everything.
type scope struct {
	rules     map[string]struct{}
	startLine int
	endLine   int
}

// ParseComments extracts nolint directives from a parsed file.
func ParseComments(file *mast.File) *Manager {
	m := &Manager{}
	itemSpans := indexItemsByLine(file)

	for _, comment := range file.Comments {
		text := strings.TrimSpace(comment.Text)
		if !strings.HasPrefix(text, nolintPrefix) {
			continue
		}
		rest := text[len(nolintPrefix):]

		var rules map[string]struct{}
		switch {
		case rest == "":
			rules = map[string]struct{}{}
		case rest[0] == ':':
			rules = parseRuleNames(rest[1:])
			if len(rules) == 0 {
				// a colon with no rules is malformed, ignore it
				continue
			}
		default:
			// not a nolint directive after all (e.g. "nolinting")
			continue
		}

		sc := scope{rules: rules, startLine: comment.Line, endLine: comment.Line}
		if span, ok := itemSpans[comment.Line]; ok {
			// trailing comment: mute the whole item on this line
			sc.startLine = span.Start.Line
			sc.endLine = span.End.Line
		} else if span, ok := itemSpans[comment.Line+1]; ok {
			// standalone comment: mute the item that follows
			sc.endLine = span.End.Line
		}
		m.scopes = append(m.scopes, sc)
	}
	return m
}

// IsNolint reports whether an issue of the given rule at the given line
// is muted.
func (m *Manager) IsNolint(line int, rule string) bool {
	if m == nil {
		return false
	}
	for _, sc := range m.scopes {
		if line < sc.startLine || line > sc.endLine {
			continue
		}
		if len(sc.rules) == 0 {
			return true
		}
		if _, ok := sc.rules[rule]; ok {
			return true
		}
	}
	return false
}

func parseRuleNames(text string) map[string]struct{} {
	rules := make(map[string]struct{})
	for _, rule := range strings.Split(text, ",") {
		rule = strings.TrimSpace(rule)
		if rule != "" {
			rules[rule] = struct{}{}
		}
	}
	return rules
}

// indexItemsByLine maps each line an item starts on to that item's span.
// The first item on a line wins.
func indexItemsByLine(file *mast.File) map[int]mast.Span {
	spans := make(map[int]mast.Span, len(file.Items))
	record := func(span mast.Span) {
		if _, exists := spans[span.Start.Line]; !exists {
			spans[span.Start.Line] = span
		}
	}
	for _, item := range file.Items {
		switch it := item.(type) {
		case *mast.LetItem:
			record(it.Span)
		case *mast.ExprItem:
			record(it.Span)
		}
	}
	return spans
}
