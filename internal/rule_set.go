package internal

import (
	"matchlint/internal/lints"
	"matchlint/internal/mast"
	tt "matchlint/internal/types"
)

// LintRule defines the interface for all lint rules.
type LintRule interface {
	// Check runs the lint rule on the given file and returns a slice of Issues.
	Check(filename string, file *mast.File) ([]tt.Issue, error)

	// Name returns the name of the lint rule.
	Name() string

	// Severity returns the current severity of the rule.
	Severity() tt.Severity

	// SetSeverity overrides the severity of the rule.
	SetSeverity(tt.Severity)
}

type baseRule struct {
	severity tt.Severity
}

func (r *baseRule) Severity() tt.Severity {
	return r.severity
}

func (r *baseRule) SetSeverity(s tt.Severity) {
	r.severity = s
}

// MatchPatternTestRule reports match expressions that reduce to a single
// boolean pattern test.
type MatchPatternTestRule struct {
	baseRule
}

func NewMatchPatternTestRule() LintRule {
	return &MatchPatternTestRule{baseRule{severity: tt.SeverityWarning}}
}

func (r *MatchPatternTestRule) Check(filename string, file *mast.File) ([]tt.Issue, error) {
	return lints.DetectMatchPatternTest(filename, file, r.severity)
}

func (r *MatchPatternTestRule) Name() string {
	return "match-pattern-test"
}

// UselessGuardRule reports arm guards that are literally true.
type UselessGuardRule struct {
	baseRule
}

func NewUselessGuardRule() LintRule {
	return &UselessGuardRule{baseRule{severity: tt.SeverityWarning}}
}

func (r *UselessGuardRule) Check(filename string, file *mast.File) ([]tt.Issue, error) {
	return lints.DetectUselessGuard(filename, file, r.severity)
}

func (r *UselessGuardRule) Name() string {
	return "useless-guard"
}

// UnreachableArmRule reports match arms that can never be selected.
type UnreachableArmRule struct {
	baseRule
}

func NewUnreachableArmRule() LintRule {
	return &UnreachableArmRule{baseRule{severity: tt.SeverityWarning}}
}

func (r *UnreachableArmRule) Check(filename string, file *mast.File) ([]tt.Issue, error) {
	return lints.DetectUnreachableArm(filename, file, r.severity)
}

func (r *UnreachableArmRule) Name() string {
	return "unreachable-arm"
}
