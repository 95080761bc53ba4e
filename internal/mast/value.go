package mast

import "fmt"

// Value represents a literal constant appearing in an expression or a
// literal pattern.
type Value interface {
	isValue()
	String() string
	Equal(other Value) bool
}

// BoolValue represents a boolean constant.
type BoolValue struct {
	Val bool
}

func (BoolValue) isValue() {}
func (v BoolValue) String() string {
	return fmt.Sprintf("%t", v.Val)
}

func (v BoolValue) Equal(other Value) bool {
	if o, ok := other.(BoolValue); ok {
		return v.Val == o.Val
	}
	return false
}

// IntValue represents an integer constant. The source text is kept
// verbatim so suggestions reproduce the user's spelling.
type IntValue struct {
	Text string
}

func (IntValue) isValue() {}
func (v IntValue) String() string {
	return v.Text
}

func (v IntValue) Equal(other Value) bool {
	if o, ok := other.(IntValue); ok {
		return v.Text == o.Text
	}
	return false
}

// StringValue represents a string constant.
type StringValue struct {
	Val string
}

func (StringValue) isValue() {}
func (v StringValue) String() string {
	return fmt.Sprintf("%q", v.Val)
}

func (v StringValue) Equal(other Value) bool {
	if o, ok := other.(StringValue); ok {
		return v.Val == o.Val
	}
	return false
}
