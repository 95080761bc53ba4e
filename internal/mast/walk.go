package mast

// Inspect traverses an expression tree in depth-first order, calling fn
// for each expression. If fn returns false the children of that node are
// skipped. Guards and arm bodies of match expressions are visited; patterns
// are not expressions and are never passed to fn.
func Inspect(e Expr, fn func(Expr) bool) {
	if e == nil || !fn(e) {
		return
	}
	switch v := e.(type) {
	case ParenExpr:
		Inspect(v.Inner, fn)
	case UnaryExpr:
		Inspect(v.Operand, fn)
	case BinaryExpr:
		Inspect(v.Left, fn)
		Inspect(v.Right, fn)
	case CallExpr:
		for _, arg := range v.Args {
			Inspect(arg, fn)
		}
	case MethodCallExpr:
		Inspect(v.Recv, fn)
		for _, arg := range v.Args {
			Inspect(arg, fn)
		}
	case IsExpr:
		Inspect(v.Value, fn)
		Inspect(v.Guard, fn)
	case *MatchExpr:
		Inspect(v.Scrutinee, fn)
		for _, arm := range v.Arms {
			Inspect(arm.Guard, fn)
			Inspect(arm.Body, fn)
		}
	}
}

// InspectFile walks every expression in every item of the file.
func InspectFile(f *File, fn func(Expr) bool) {
	for _, item := range f.Items {
		switch it := item.(type) {
		case *LetItem:
			Inspect(it.Value, fn)
		case *ExprItem:
			Inspect(it.X, fn)
		}
	}
}
