package tinycompiler

import (
	"fmt"
	"io"
	"strings"
)

// PrintTree writes an indented dump of either tree, two spaces per
// depth level. Debug output only; the format is not a contract.
func PrintTree(w io.Writer, root Node) {
	line := func(depth int, text string) {
		fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth), text)
	}

	Walk(root, nil, 0, Visitor{
		Program: func(n *Program, _ Node, depth int) {
			line(depth, "Program")
		},
		CallExpression: func(n *CallExpression, _ Node, depth int) {
			line(depth, "CallExpression "+n.Name)
		},
		NumberLiteral: func(n *NumberLiteral, _ Node, depth int) {
			line(depth, fmt.Sprintf("NumberLiteral %d", n.Value))
		},
		CProgram: func(n *CProgram, _ Node, depth int) {
			line(depth, "CProgram")
		},
		ExpressionStatement: func(n *ExpressionStatement, _ Node, depth int) {
			line(depth, "ExpressionStatement")
		},
		CCallExpression: func(n *CCallExpression, _ Node, depth int) {
			line(depth, "CCallExpression")
		},
		Identifier: func(n *Identifier, _ Node, depth int) {
			line(depth, "Identifier "+n.Name)
		},
		CNumberLiteral: func(n *CNumberLiteral, _ Node, depth int) {
			line(depth, fmt.Sprintf("CNumberLiteral %d", n.Value))
		},
	})
}
