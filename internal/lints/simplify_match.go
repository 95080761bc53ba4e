package lints

import (
	"fmt"

	"matchlint/internal/mast"
	tt "matchlint/internal/types"
)

const (
	matchPatternTestRule = "match-pattern-test"

	baseMessageMatchPatternTest = "match expression reduces to a boolean pattern test, can be simplified"

	noteTemplatePatternTest = "%s\nevery arm of this match yields a boolean literal, so the whole " +
		"expression is equivalent to `%s`. a pattern test states the intent directly and removes the arm list."

	noteTemplateIsNone = "%s\nthis match only distinguishes the absence case, so `%s` expresses " +
		"the same check directly."
)

// absenceVariant is the payload-less variant of the option type in the
// target language's prelude.
const absenceVariant = "None"

// bodyClass is the classification of a single arm body.
type bodyClass int

const (
	bodyTrue bodyClass = iota
	bodyFalse
	bodyOther
)

// classifyBody reports whether an arm body is literally true, literally
// false, or anything else. Only parentheses are looked through: `!true`,
// calls, and any other boolean-valued computation are bodyOther. The rule
// targets arms that already are bare literals, not arms that could be
// refactored into one.
func classifyBody(e mast.Expr) bodyClass {
	for {
		paren, ok := e.(mast.ParenExpr)
		if !ok {
			break
		}
		e = paren.Inner
	}
	lit, ok := e.(mast.LiteralExpr)
	if !ok {
		return bodyOther
	}
	b, ok := lit.Val.(mast.BoolValue)
	if !ok {
		return bodyOther
	}
	if b.Val {
		return bodyTrue
	}
	return bodyFalse
}

// isCatchAll reports whether an arm matches unconditionally: its pattern
// is a wildcard or a bare binding and it carries no guard. A guarded
// wildcard is not a catch-all, the guard makes it value-dependent.
func isCatchAll(arm mast.Arm) bool {
	return mast.IsWildcard(arm.Pattern) && arm.Guard == nil
}

// RewriteForm selects the replacement syntax for an eligible match.
type RewriteForm int

const (
	// PatternTest rewrites to `scrutinee is pattern [if guard]`.
	PatternTest RewriteForm = iota
	// IsNoneEquivalent rewrites to `scrutinee.is_none()` (or is_some when
	// negated). Chosen only for a bare absence pattern with no guard.
	IsNoneEquivalent
)

// Suggestion is the structured result of a successful simplification.
// Target is the arm supplying the pattern and guard to test; Negate is
// set when that arm yields false, so the predicate must be inverted to
// keep the original semantics.
type Suggestion struct {
	Negate bool
	Target mast.Arm
	Form   RewriteForm
}

// SimplifyMatch decides whether a match expression collapses to a single
// boolean pattern test and, if so, which one. The second return value is
// false for every match that is not positively one of the two supported
// shapes:
//
// Shape A: two arms, a specific first arm and a catch-all second arm with
// opposite boolean bodies.
//
// Shape B: three or more arms with exactly one specific arm; every other
// arm is a catch-all whose body is the complement of the specific arm's.
//
// Arm order is first-match-wins, so a catch-all arm appearing before the
// specific arm would shadow it; such matches are rejected rather than
// reasoned about.
func SimplifyMatch(m *mast.MatchExpr) (Suggestion, bool) {
	if m == nil || len(m.Arms) < 2 {
		return Suggestion{}, false
	}

	classes := make([]bodyClass, len(m.Arms))
	for i, arm := range m.Arms {
		classes[i] = classifyBody(arm.Body)
		if classes[i] == bodyOther {
			return Suggestion{}, false
		}
	}

	// Exactly one arm may be specific; everything else must be a
	// catch-all fallback. Two specific arms with differing outcomes
	// would make the result depend on arm order, not on one pattern.
	specific := -1
	for i, arm := range m.Arms {
		if isCatchAll(arm) {
			continue
		}
		if specific >= 0 {
			return Suggestion{}, false
		}
		specific = i
	}
	if specific < 0 {
		return Suggestion{}, false
	}

	// A catch-all before the specific arm shadows it.
	for i := 0; i < specific; i++ {
		if isCatchAll(m.Arms[i]) {
			return Suggestion{}, false
		}
	}

	// Every fallback must resolve to the complement of the specific
	// arm's value; identical classes leave nothing to test.
	for i := range m.Arms {
		if i == specific {
			continue
		}
		if classes[i] == classes[specific] {
			return Suggestion{}, false
		}
	}

	// Same pattern with different outcomes anywhere in the arm list
	// indicates order-dependent logic.
	for i := range m.Arms {
		for j := i + 1; j < len(m.Arms); j++ {
			if classes[i] != classes[j] && mast.EqualPatterns(m.Arms[i].Pattern, m.Arms[j].Pattern) {
				return Suggestion{}, false
			}
		}
	}

	target := m.Arms[specific]
	s := Suggestion{
		Negate: classes[specific] == bodyFalse,
		Target: target,
		Form:   PatternTest,
	}
	if target.Guard == nil && isAbsencePattern(target.Pattern) {
		s.Form = IsNoneEquivalent
	}
	return s, true
}

// isAbsencePattern reports whether p is the bare absence variant. A
// payload-carrying or or-pattern spelling never qualifies.
func isAbsencePattern(p mast.Pattern) bool {
	v, ok := p.(mast.VariantPattern)
	return ok && v.Name == absenceVariant && v.Args == nil
}

// RenderSuggestion turns a Suggestion into replacement source text for
// the given scrutinee.
func RenderSuggestion(scrutinee mast.Expr, s Suggestion) string {
	if s.Form == IsNoneEquivalent {
		method := "is_none"
		if s.Negate {
			method = "is_some"
		}
		return fmt.Sprintf("%s.%s()", receiverText(scrutinee), method)
	}

	test := mast.IsExpr{
		Value:   scrutinee,
		Pattern: s.Target.Pattern,
		Guard:   s.Target.Guard,
	}
	if s.Negate {
		return "!(" + test.String() + ")"
	}
	return test.String()
}

// receiverText renders the scrutinee as a method-call receiver,
// parenthesizing anything that is not already postfix-tight.
func receiverText(scrutinee mast.Expr) string {
	switch scrutinee.(type) {
	case mast.IdentExpr, mast.CallExpr, mast.MethodCallExpr, mast.ParenExpr:
		return scrutinee.String()
	}
	return "(" + scrutinee.String() + ")"
}

// DetectMatchPatternTest finds match expressions whose arms reduce to a
// boolean pattern test and reports each with its replacement expression.
func DetectMatchPatternTest(filename string, file *mast.File, severity tt.Severity) ([]tt.Issue, error) {
	var issues []tt.Issue

	mast.InspectFile(file, func(e mast.Expr) bool {
		m, ok := e.(*mast.MatchExpr)
		if !ok {
			return true
		}
		s, eligible := SimplifyMatch(m)
		if !eligible {
			return true
		}

		replacement := RenderSuggestion(m.Scrutinee, s)
		note := fmt.Sprintf(noteTemplatePatternTest, baseMessageMatchPatternTest, replacement)
		if s.Form == IsNoneEquivalent {
			note = fmt.Sprintf(noteTemplateIsNone, baseMessageMatchPatternTest, replacement)
		}

		issues = append(issues, tt.Issue{
			Rule:       matchPatternTestRule,
			Filename:   filename,
			Message:    baseMessageMatchPatternTest,
			Suggestion: replacement,
			Note:       note,
			Start:      m.Span.Start,
			End:        m.Span.End,
			Severity:   severity,
			Confidence: 1.0,
		})
		return true
	})

	return issues, nil
}
