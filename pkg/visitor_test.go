package tinycompiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWalkPreOrder(t *testing.T) {
	prog := mustParse(t, "(add 1 (subtract 2 3))")

	var order []string
	var depths []int

	Walk(prog, nil, 0, Visitor{
		Program: func(n *Program, parent Node, depth int) {
			assert.Nil(t, parent)
			order = append(order, "Program")
			depths = append(depths, depth)
		},
		CallExpression: func(n *CallExpression, parent Node, depth int) {
			assert.NotNil(t, parent)
			order = append(order, "Call:"+n.Name)
			depths = append(depths, depth)
		},
		NumberLiteral: func(n *NumberLiteral, parent Node, depth int) {
			// Numbers only ever hang off a call
			assert.IsType(t, &CallExpression{}, parent)
			order = append(order, "Num")
			depths = append(depths, depth)
		},
	})

	assert.Equal(t, []string{"Program", "Call:add", "Num", "Call:subtract", "Num", "Num"}, order)
	assert.Equal(t, []int{0, 1, 2, 2, 3, 3}, depths)
}

func TestWalkTargetTree(t *testing.T) {
	target := Transform(mustParse(t, "(add 2 2)"))

	var order []string
	Walk(target, nil, 0, Visitor{
		CProgram: func(n *CProgram, parent Node, depth int) {
			order = append(order, "CProgram")
		},
		ExpressionStatement: func(n *ExpressionStatement, parent Node, depth int) {
			order = append(order, "ExpressionStatement")
		},
		CCallExpression: func(n *CCallExpression, parent Node, depth int) {
			order = append(order, "CCall")
		},
		Identifier: func(n *Identifier, parent Node, depth int) {
			order = append(order, "Identifier:"+n.Name)
		},
		CNumberLiteral: func(n *CNumberLiteral, parent Node, depth int) {
			order = append(order, "CNum")
		},
	})

	assert.Equal(t, []string{"CProgram", "ExpressionStatement", "CCall", "Identifier:add", "CNum", "CNum"}, order)
}

func TestWalkUnhandledKindsAreSkipped(t *testing.T) {
	prog := mustParse(t, "(add 1 2)")

	// Only numbers are handled; everything else defaults to a no-op
	var nums []int
	Walk(prog, nil, 0, Visitor{
		NumberLiteral: func(n *NumberLiteral, parent Node, depth int) {
			nums = append(nums, n.Value)
		},
	})

	assert.Equal(t, []int{1, 2}, nums)
}
