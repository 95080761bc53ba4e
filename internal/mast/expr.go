package mast

import (
	"go/token"
	"strings"
)

// Span marks the source range a node covers. Only nodes that lint rules
// report on carry one; positions come straight from the lexer.
type Span struct {
	Start token.Position
	End   token.Position
}

// Expr represents an expression node.
type Expr interface {
	isExpr()
	String() string
}

// LiteralExpr represents a literal value (bool, int, string).
type LiteralExpr struct {
	Val Value
}

func (LiteralExpr) isExpr() {}
func (e LiteralExpr) String() string {
	return e.Val.String()
}

// IdentExpr represents a variable reference.
type IdentExpr struct {
	Name string
}

func (IdentExpr) isExpr() {}
func (e IdentExpr) String() string {
	return e.Name
}

// ParenExpr represents a parenthesized expression.
type ParenExpr struct {
	Inner Expr
}

func (ParenExpr) isExpr() {}
func (e ParenExpr) String() string {
	return "(" + e.Inner.String() + ")"
}

// BinaryOp represents binary operators.
type BinaryOp int

const (
	_ BinaryOp = iota
	OpEq
	OpNeq
	OpLt
	OpLte
	OpGt
	OpGte
	OpAnd
	OpOr
)

func (op BinaryOp) String() string {
	switch op {
	case OpEq:
		return "=="
	case OpNeq:
		return "!="
	case OpLt:
		return "<"
	case OpLte:
		return "<="
	case OpGt:
		return ">"
	case OpGte:
		return ">="
	case OpAnd:
		return "&&"
	case OpOr:
		return "||"
	default:
		return "?"
	}
}

// BinaryExpr represents a binary expression.
type BinaryExpr struct {
	Op    BinaryOp
	Left  Expr
	Right Expr
}

func (BinaryExpr) isExpr() {}
func (e BinaryExpr) String() string {
	return e.Left.String() + " " + e.Op.String() + " " + e.Right.String()
}

// UnaryOp represents unary operators.
type UnaryOp int

const (
	OpNot UnaryOp = iota
	OpNeg
)

func (op UnaryOp) String() string {
	switch op {
	case OpNot:
		return "!"
	case OpNeg:
		return "-"
	default:
		return "?"
	}
}

// UnaryExpr represents a unary expression.
type UnaryExpr struct {
	Op      UnaryOp
	Operand Expr
}

func (UnaryExpr) isExpr() {}
func (e UnaryExpr) String() string {
	return e.Op.String() + e.Operand.String()
}

// CallExpr represents a free function call.
type CallExpr struct {
	Func string
	Args []Expr
}

func (CallExpr) isExpr() {}
func (e CallExpr) String() string {
	return e.Func + "(" + joinExprs(e.Args) + ")"
}

// MethodCallExpr represents a method call on a receiver: recv.name(args).
type MethodCallExpr struct {
	Recv Expr
	Name string
	Args []Expr
}

func (MethodCallExpr) isExpr() {}
func (e MethodCallExpr) String() string {
	return e.Recv.String() + "." + e.Name + "(" + joinExprs(e.Args) + ")"
}

// IsExpr represents a pattern test: value is pattern [if guard].
// This is the form the match simplification rule rewrites into.
type IsExpr struct {
	Value   Expr
	Pattern Pattern
	Guard   Expr // nil when no guard
}

func (IsExpr) isExpr() {}
func (e IsExpr) String() string {
	s := e.Value.String() + " is " + e.Pattern.String()
	if e.Guard != nil {
		s += " if " + e.Guard.String()
	}
	return s
}

// Arm represents one pattern (+ optional guard) and its result expression
// within a match expression. An arm has no lifetime outside its MatchExpr.
type Arm struct {
	Pattern Pattern
	Guard   Expr // nil when no guard
	Body    Expr
	Span    Span
}

func (a Arm) String() string {
	s := a.Pattern.String()
	if a.Guard != nil {
		s += " if " + a.Guard.String()
	}
	return s + " => " + a.Body.String()
}

// MatchExpr represents a match expression. Arm order is first-match-wins
// and must be preserved: a catch-all arm before a specific one changes
// which arms are reachable.
type MatchExpr struct {
	Scrutinee Expr
	Arms      []Arm
	Span      Span
}

func (*MatchExpr) isExpr() {}
func (e *MatchExpr) String() string {
	var b strings.Builder
	b.WriteString("match ")
	b.WriteString(e.Scrutinee.String())
	b.WriteString(" { ")
	for i, arm := range e.Arms {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(arm.String())
	}
	b.WriteString(" }")
	return b.String()
}

func joinExprs(exprs []Expr) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = e.String()
	}
	return strings.Join(parts, ", ")
}

// Helper constructors, primarily for tests.

// Bool creates a boolean literal expression.
func Bool(v bool) Expr {
	return LiteralExpr{Val: BoolValue{Val: v}}
}

// Int creates an integer literal expression.
func Int(text string) Expr {
	return LiteralExpr{Val: IntValue{Text: text}}
}

// Str creates a string literal expression.
func Str(v string) Expr {
	return LiteralExpr{Val: StringValue{Val: v}}
}

// Var creates a variable reference expression.
func Var(name string) Expr {
	return IdentExpr{Name: name}
}

// Paren wraps an expression in parentheses.
func Paren(inner Expr) Expr {
	return ParenExpr{Inner: inner}
}

// Not creates a logical not expression.
func Not(e Expr) Expr {
	return UnaryExpr{Op: OpNot, Operand: e}
}

// Binary creates a binary expression.
func Binary(op BinaryOp, left, right Expr) Expr {
	return BinaryExpr{Op: op, Left: left, Right: right}
}

// Call creates a free function call expression.
func Call(fn string, args ...Expr) Expr {
	return CallExpr{Func: fn, Args: args}
}

// Match creates a match expression without spans.
func Match(scrutinee Expr, arms ...Arm) *MatchExpr {
	return &MatchExpr{Scrutinee: scrutinee, Arms: arms}
}

// NewArm creates an arm without a guard.
func NewArm(p Pattern, body Expr) Arm {
	return Arm{Pattern: p, Body: body}
}

// GuardedArm creates an arm with a guard.
func GuardedArm(p Pattern, guard, body Expr) Arm {
	return Arm{Pattern: p, Guard: guard, Body: body}
}
