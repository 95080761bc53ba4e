package lints

import (
	"fmt"

	"matchlint/internal/mast"
	tt "matchlint/internal/types"
)

const (
	uselessGuardRule = "useless-guard"

	baseMessageUselessGuard = "arm guard is always true and can be removed"

	noteTemplateUselessGuard = "%s\n`%s` matches exactly when `%s` does. a literal-true guard " +
		"adds a condition that can never fail."
)

// DetectUselessGuard reports match arms and pattern tests whose guard is
// the literal `true` (possibly parenthesized). Such a guard never filters
// anything and only obscures the pattern.
func DetectUselessGuard(filename string, file *mast.File, severity tt.Severity) ([]tt.Issue, error) {
	var issues []tt.Issue

	mast.InspectFile(file, func(e mast.Expr) bool {
		m, ok := e.(*mast.MatchExpr)
		if !ok {
			return true
		}
		for _, arm := range m.Arms {
			if arm.Guard == nil || classifyBody(arm.Guard) != bodyTrue {
				continue
			}

			stripped := mast.Arm{Pattern: arm.Pattern, Body: arm.Body}
			issues = append(issues, tt.Issue{
				Rule:       uselessGuardRule,
				Filename:   filename,
				Message:    baseMessageUselessGuard,
				Suggestion: stripped.String(),
				Note:       fmt.Sprintf(noteTemplateUselessGuard, baseMessageUselessGuard, stripped.String(), arm.String()),
				Start:      arm.Span.Start,
				End:        arm.Span.End,
				Severity:   severity,
				Confidence: 1.0,
			})
		}
		return true
	})

	return issues, nil
}
