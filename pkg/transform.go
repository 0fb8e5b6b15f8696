package tinycompiler

// Transform rewrites the source tree into the target tree in a single
// pre-order pass. Each translated call is registered in a side table
// keyed by the source node it came from; when a child is visited
// later, the table resolves which params slot to file it into. Keys
// are node pointers, so two structurally identical sibling calls stay
// distinct. Pre-order guarantees a parent is registered before any of
// its children look it up.
func Transform(prog *Program) *CProgram {
	out := &CProgram{}
	slots := make(map[Node]*CCallExpression)

	Walk(prog, nil, 0, Visitor{
		CallExpression: func(n *CallExpression, parent Node, _ int) {
			call := &CCallExpression{
				Callee: &Identifier{Name: n.Name},
			}
			slots[n] = call

			// A call directly under the program is a statement in the
			// target language; a nested call stays a bare expression.
			if p, nested := parent.(*CallExpression); nested {
				slots[p].Params = append(slots[p].Params, call)
				return
			}

			out.Body = append(out.Body, &ExpressionStatement{Expression: call})
		},
		NumberLiteral: func(n *NumberLiteral, parent Node, _ int) {
			p := parent.(*CallExpression)
			slots[p].Params = append(slots[p].Params, &CNumberLiteral{Value: n.Value})
		},
	})

	return out
}
