package tinycompiler

// Node is implemented by every AST node of both trees, so the walker
// and the transformer's side table can range over either of them.
type Node interface {
	node()
}

// Source tree. A program is a sequence of call forms; calls nest
// freely and numbers are the only leaves.

type Program struct {
	Body []*CallExpression
}

type CallExpression struct {
	Name   string
	Params []Node // *CallExpression or *NumberLiteral
}

type NumberLiteral struct {
	Value int
}

func (*Program) node()        {}
func (*CallExpression) node() {}
func (*NumberLiteral) node()  {}

// Target tree. Same shape one level removed: a call that stood at the
// top level of the source becomes a statement, a nested call stays an
// expression.

type CStatement interface {
	Node
	cstmt()
}

type CExpr interface {
	Node
	cexpr()
}

type CProgram struct {
	Body []CStatement
}

type ExpressionStatement struct {
	Expression *CCallExpression
}

type CCallExpression struct {
	Callee *Identifier
	Params []CExpr // *CCallExpression or *CNumberLiteral
}

type Identifier struct {
	Name string
}

type CNumberLiteral struct {
	Value int
}

func (*CProgram) node()            {}
func (*ExpressionStatement) node() {}
func (*CCallExpression) node()     {}
func (*Identifier) node()          {}
func (*CNumberLiteral) node()      {}

func (*ExpressionStatement) cstmt() {}

func (*CCallExpression) cexpr() {}
func (*CNumberLiteral) cexpr()  {}
