package tinycompiler

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompile(t *testing.T) {
	cases := []struct {
		source  string
		expect  string
		lexFail bool
		synFail bool
	}{
		{
			source: "(add 2 (subtract 4 2))",
			expect: "int main()\n{\n  add(2, subtract(4, 2));\n}\n",
		},
		{
			source: "(add 2 2)(subtract 4 2)",
			expect: "int main()\n{\n  add(2, 2);\n  subtract(4, 2);\n}\n",
		},
		{
			source: "",
			expect: "int main()\n{\n}\n",
		},
		{
			// Missing ')'
			source:  "(add 2 2",
			synFail: true,
		},
		{
			// Missing the leading '('
			source:  "add 2 2)",
			synFail: true,
		},
		{
			// Number where the function name belongs
			source:  "(2 3)",
			synFail: true,
		},
		{
			source:  "(add @ 2)",
			lexFail: true,
		},
	}

	for _, c := range cases {
		got, err := NewCompiler().Compile(c.source)

		if c.lexFail {
			var lexErr *LexicalError
			assert.ErrorAs(t, err, &lexErr)
			assert.Empty(t, got)

			continue
		}

		if c.synFail {
			var synErr *SyntaxError
			assert.ErrorAs(t, err, &synErr)
			assert.Empty(t, got)

			continue
		}

		assert.NoError(t, err)
		assert.Equal(t, c.expect, got)
	}
}

func TestCompileFromReader(t *testing.T) {
	c := NewCompiler()

	got, err := c.CompileFromReader(strings.NewReader("(add 2 2)"))
	assert.NoError(t, err)
	assert.Equal(t, "int main()\n{\n  add(2, 2);\n}\n", got)
}

func TestCompileTrace(t *testing.T) {
	var buf bytes.Buffer

	c := NewCompiler()
	c.SetTrace(&buf)

	_, err := c.Compile("(add 2 2)")
	assert.NoError(t, err)

	trace := buf.String()
	assert.Contains(t, trace, "CallExpression add")
	assert.Contains(t, trace, "ExpressionStatement")
	assert.Contains(t, trace, "Identifier add")
}

func TestCompileTraceSilentOnError(t *testing.T) {
	var buf bytes.Buffer

	c := NewCompiler()
	c.SetTrace(&buf)

	_, err := c.Compile("(add 2 2")
	assert.Error(t, err)
	assert.Empty(t, buf.String())
}

func TestCompileLLVM(t *testing.T) {
	got, err := NewCompiler().CompileLLVM("(add 2 2)")
	assert.NoError(t, err)
	assert.Contains(t, got, "call i32 @add")

	_, err = NewCompiler().CompileLLVM("(2 3)")
	assert.Error(t, err)
}
