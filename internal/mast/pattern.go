package mast

import "strings"

// Pattern represents a pattern node inside a match arm or an is-expression.
type Pattern interface {
	isPattern()
	String() string
}

// WildcardPattern matches any value and binds nothing: `_`.
type WildcardPattern struct{}

func (WildcardPattern) isPattern() {}
func (WildcardPattern) String() string {
	return "_"
}

// BindingPattern matches any value and binds it to a name.
type BindingPattern struct {
	Name string
}

func (BindingPattern) isPattern() {}
func (p BindingPattern) String() string {
	return p.Name
}

// LiteralPattern matches a single constant value.
type LiteralPattern struct {
	Val Value
}

func (LiteralPattern) isPattern() {}
func (p LiteralPattern) String() string {
	return p.Val.String()
}

// VariantPattern matches a named variant, optionally destructuring its
// payload: `None`, `Some(0)`, `Some(_)`.
type VariantPattern struct {
	Name string
	Args []Pattern
}

func (VariantPattern) isPattern() {}
func (p VariantPattern) String() string {
	if p.Args == nil {
		return p.Name
	}
	parts := make([]string, len(p.Args))
	for i, a := range p.Args {
		parts[i] = a.String()
	}
	return p.Name + "(" + strings.Join(parts, ", ") + ")"
}

// OrPattern matches if any alternative matches: `0 | 1 | 2`.
type OrPattern struct {
	Alts []Pattern
}

func (OrPattern) isPattern() {}
func (p OrPattern) String() string {
	parts := make([]string, len(p.Alts))
	for i, a := range p.Alts {
		parts[i] = a.String()
	}
	return strings.Join(parts, " | ")
}

// IsWildcard reports whether p matches every possible value without
// introducing a constraint. Both `_` and a bare binding qualify; guards
// are not the pattern's concern and must be checked by the caller.
func IsWildcard(p Pattern) bool {
	switch p.(type) {
	case WildcardPattern, BindingPattern:
		return true
	}
	return false
}

// EqualPatterns reports structural equality of two patterns. Binding
// patterns compare by name; an or-pattern is only equal to an or-pattern
// with the same alternatives in the same order.
func EqualPatterns(a, b Pattern) bool {
	switch pa := a.(type) {
	case WildcardPattern:
		_, ok := b.(WildcardPattern)
		return ok
	case BindingPattern:
		pb, ok := b.(BindingPattern)
		return ok && pa.Name == pb.Name
	case LiteralPattern:
		pb, ok := b.(LiteralPattern)
		return ok && pa.Val.Equal(pb.Val)
	case VariantPattern:
		pb, ok := b.(VariantPattern)
		if !ok || pa.Name != pb.Name || len(pa.Args) != len(pb.Args) {
			return false
		}
		if (pa.Args == nil) != (pb.Args == nil) {
			return false
		}
		for i := range pa.Args {
			if !EqualPatterns(pa.Args[i], pb.Args[i]) {
				return false
			}
		}
		return true
	case OrPattern:
		pb, ok := b.(OrPattern)
		if !ok || len(pa.Alts) != len(pb.Alts) {
			return false
		}
		for i := range pa.Alts {
			if !EqualPatterns(pa.Alts[i], pb.Alts[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// Helper constructors, primarily for tests.

// Wild creates a wildcard pattern.
func Wild() Pattern {
	return WildcardPattern{}
}

// Bind creates a binding pattern.
func Bind(name string) Pattern {
	return BindingPattern{Name: name}
}

// LitPat creates a literal pattern.
func LitPat(v Value) Pattern {
	return LiteralPattern{Val: v}
}

// IntPat creates an integer literal pattern.
func IntPat(text string) Pattern {
	return LiteralPattern{Val: IntValue{Text: text}}
}

// Variant creates a variant pattern with a destructured payload. An empty
// argument list still renders parentheses: use BareVariant for `None`.
func Variant(name string, args ...Pattern) Pattern {
	if args == nil {
		args = []Pattern{}
	}
	return VariantPattern{Name: name, Args: args}
}

// BareVariant creates a payload-less variant pattern such as `None`.
func BareVariant(name string) Pattern {
	return VariantPattern{Name: name}
}

// Or creates an or-pattern.
func Or(alts ...Pattern) Pattern {
	return OrPattern{Alts: alts}
}
