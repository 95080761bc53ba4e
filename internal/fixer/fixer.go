// Package fixer applies lint suggestions to source files.
//
// Fixes are plain text substitutions over the issue's reported span. The
// patched file is re-parsed before being written back; a fix that breaks
// the file is rejected rather than saved.
package fixer

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"matchlint/internal/parser"
	tt "matchlint/internal/types"
)

type Fixer struct {
	DryRun        bool
	MinConfidence float64 // threshold for fixing issues
}

func New(dryRun bool, threshold float64) *Fixer {
	return &Fixer{
		DryRun:        dryRun,
		MinConfidence: threshold,
	}
}

// Fix applies the suggestions of the given issues to filename. Issues
// are applied bottom-up so earlier spans stay valid while later ones are
// rewritten.
func (f *Fixer) Fix(filename string, issues []tt.Issue) error {
	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	applicable := make([]tt.Issue, 0, len(issues))
	for _, issue := range issues {
		if issue.Suggestion == "" || issue.Confidence < f.MinConfidence {
			continue
		}
		applicable = append(applicable, issue)
	}

	sort.Slice(applicable, func(i, j int) bool {
		return applicable[i].Start.Offset > applicable[j].Start.Offset
	})

	text := string(content)
	applied := 0
	for _, issue := range applicable {
		if f.DryRun {
			fmt.Printf("Would fix issue in %s at line %d: %s\n", filename, issue.Start.Line, issue.Message)
			fmt.Printf("Suggestion:\n%s\n", issue.Suggestion)
			continue
		}
		patched, err := replaceSpan(text, issue)
		if err != nil {
			return err
		}
		text = patched
		applied++
	}

	if f.DryRun || applied == 0 {
		return nil
	}

	// a suggestion that produces an unparsable file must never be written
	if _, err := parser.ParseFile(filename, []byte(text)); err != nil {
		return fmt.Errorf("fix would break %s: %w", filename, err)
	}

	if err := os.WriteFile(filename, []byte(text), 0o644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	fmt.Printf("Fixed %d issue(s) in %s\n", applied, filename)
	return nil
}

// replaceSpan substitutes the issue's span in text with its suggestion,
// keeping the indentation of the span's first line for any continuation
// lines of the replacement.
func replaceSpan(text string, issue tt.Issue) (string, error) {
	start := issue.Start.Offset
	end := issue.End.Offset
	if start < 0 || end > len(text) || start > end {
		return "", fmt.Errorf("issue span %d..%d out of range for %s", start, end, issue.Filename)
	}

	suggestion := issue.Suggestion
	if strings.Contains(suggestion, "\n") {
		indent := lineIndent(text, start)
		suggestion = applyIndent(suggestion, indent)
	}
	return text[:start] + suggestion + text[end:], nil
}

// lineIndent returns the leading whitespace of the line containing offset.
func lineIndent(text string, offset int) string {
	lineStart := strings.LastIndexByte(text[:offset], '\n') + 1
	line := text[lineStart:]
	return line[:len(line)-len(strings.TrimLeft(line, " \t"))]
}

// applyIndent indents every line after the first.
func applyIndent(code, indent string) string {
	lines := strings.Split(code, "\n")
	for i := 1; i < len(lines); i++ {
		lines[i] = indent + lines[i]
	}
	return strings.Join(lines, "\n")
}
