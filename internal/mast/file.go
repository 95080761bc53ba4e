package mast

// File is one parsed source file.
type File struct {
	Filename string
	Items    []Item
	Comments []Comment
}

// Item represents a top-level item in a file.
type Item interface {
	isItem()
}

// LetItem represents a top-level binding: let name = expr;
type LetItem struct {
	Name  string
	Value Expr
	Span  Span
}

func (*LetItem) isItem() {}

// ExprItem represents a bare top-level expression statement: expr;
type ExprItem struct {
	X    Expr
	Span Span
}

func (*ExprItem) isItem() {}

// Comment is a line comment. The text excludes the leading slashes but
// keeps interior whitespace, so directive parsing sees the raw payload.
type Comment struct {
	Text string
	Line int
}
