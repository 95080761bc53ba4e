package lints

import (
	"fmt"

	"matchlint/internal/mast"
	tt "matchlint/internal/types"
)

const (
	unreachableArmRule = "unreachable-arm"

	messageAfterCatchAll   = "arm is unreachable, an earlier arm matches every value"
	messageDuplicateArm    = "arm is unreachable, an earlier arm has the same pattern"
	noteTemplateDeadArmFmt = "%s\narms are tried in order and the first match wins, so `%s` can never be selected."
)

// DetectUnreachableArm reports arms that can never be selected: every arm
// after an unguarded catch-all, and any arm whose pattern repeats an
// earlier unguarded arm's pattern. Guarded arms never shadow later ones,
// the guard may fail at runtime.
func DetectUnreachableArm(filename string, file *mast.File, severity tt.Severity) ([]tt.Issue, error) {
	var issues []tt.Issue

	mast.InspectFile(file, func(e mast.Expr) bool {
		m, ok := e.(*mast.MatchExpr)
		if !ok {
			return true
		}
		issues = append(issues, deadArms(filename, m, severity)...)
		return true
	})

	return issues, nil
}

func deadArms(filename string, m *mast.MatchExpr, severity tt.Severity) []tt.Issue {
	var issues []tt.Issue

	catchAllSeen := false
	for i, arm := range m.Arms {
		var msg string
		switch {
		case catchAllSeen:
			msg = messageAfterCatchAll
		case shadowedByEarlier(m.Arms[:i], arm):
			msg = messageDuplicateArm
		}

		if msg != "" {
			issues = append(issues, tt.Issue{
				Rule:       unreachableArmRule,
				Filename:   filename,
				Message:    msg,
				Note:       fmt.Sprintf(noteTemplateDeadArmFmt, msg, arm.String()),
				Start:      arm.Span.Start,
				End:        arm.Span.End,
				Severity:   severity,
				Confidence: 1.0,
			})
		}

		if isCatchAll(arm) {
			catchAllSeen = true
		}
	}
	return issues
}

func shadowedByEarlier(earlier []mast.Arm, arm mast.Arm) bool {
	for _, prev := range earlier {
		if prev.Guard == nil && mast.EqualPatterns(prev.Pattern, arm.Pattern) {
			return true
		}
	}
	return false
}
