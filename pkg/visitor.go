package tinycompiler

// Visitor receives nodes during a walk. Only the kinds a caller cares
// about need callbacks; a nil field is a no-op.
type Visitor struct {
	Program             func(n *Program, parent Node, depth int)
	CallExpression      func(n *CallExpression, parent Node, depth int)
	NumberLiteral       func(n *NumberLiteral, parent Node, depth int)
	CProgram            func(n *CProgram, parent Node, depth int)
	ExpressionStatement func(n *ExpressionStatement, parent Node, depth int)
	CCallExpression     func(n *CCallExpression, parent Node, depth int)
	Identifier          func(n *Identifier, parent Node, depth int)
	CNumberLiteral      func(n *CNumberLiteral, parent Node, depth int)
}

// Walk traverses either tree depth-first in pre-order: a node is
// announced before its children, children in written order. parent is
// nil only for the root; depth starts at 0 there.
func Walk(n Node, parent Node, depth int, v Visitor) {
	switch e := n.(type) {
	case *Program:
		if v.Program != nil {
			v.Program(e, parent, depth)
		}

		for _, c := range e.Body {
			Walk(c, e, depth+1, v)
		}

	case *CallExpression:
		if v.CallExpression != nil {
			v.CallExpression(e, parent, depth)
		}

		for _, c := range e.Params {
			Walk(c, e, depth+1, v)
		}

	case *NumberLiteral:
		if v.NumberLiteral != nil {
			v.NumberLiteral(e, parent, depth)
		}

	case *CProgram:
		if v.CProgram != nil {
			v.CProgram(e, parent, depth)
		}

		for _, c := range e.Body {
			Walk(c, e, depth+1, v)
		}

	case *ExpressionStatement:
		if v.ExpressionStatement != nil {
			v.ExpressionStatement(e, parent, depth)
		}

		Walk(e.Expression, e, depth+1, v)

	case *CCallExpression:
		if v.CCallExpression != nil {
			v.CCallExpression(e, parent, depth)
		}

		Walk(e.Callee, e, depth+1, v)

		for _, c := range e.Params {
			Walk(c, e, depth+1, v)
		}

	case *Identifier:
		if v.Identifier != nil {
			v.Identifier(e, parent, depth)
		}

	case *CNumberLiteral:
		if v.CNumberLiteral != nil {
			v.CNumberLiteral(e, parent, depth)
		}
	}
}
