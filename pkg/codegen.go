package tinycompiler

import (
	"strconv"
	"strings"
)

// Generate serializes the target tree into C call-expression text.
func Generate(prog *CProgram) string {
	var b strings.Builder

	b.WriteString("int main()\n{\n")
	for _, stmt := range prog.Body {
		generateStatement(&b, stmt)
	}
	b.WriteString("}\n")

	return b.String()
}

func generateStatement(b *strings.Builder, stmt CStatement) {
	switch s := stmt.(type) {
	case *ExpressionStatement:
		b.WriteString("  ")
		generateExpr(b, s.Expression)
		b.WriteString(";\n")
	}
}

func generateExpr(b *strings.Builder, expr CExpr) {
	switch e := expr.(type) {
	case *CCallExpression:
		b.WriteString(e.Callee.Name)
		b.WriteByte('(')

		for i, param := range e.Params {
			if i > 0 {
				b.WriteString(", ")
			}

			generateExpr(b, param)
		}

		b.WriteByte(')')

	case *CNumberLiteral:
		b.WriteString(strconv.Itoa(e.Value))
	}
}
