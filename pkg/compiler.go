package tinycompiler

import (
	"io"
	"strings"
)

// Compiler runs the pipeline: text -> tokens -> source tree -> target
// tree -> generated code. Any stage error aborts the whole run with no
// partial output.
type Compiler struct {
	trace io.Writer
}

func NewCompiler() *Compiler {
	return &Compiler{}
}

// SetTrace makes the compiler dump both intermediate trees to w.
func (c *Compiler) SetTrace(w io.Writer) {
	c.trace = w
}

func (c *Compiler) Compile(source string) (string, error) {
	return c.CompileFromReader(strings.NewReader(source))
}

func (c *Compiler) CompileFromReader(reader io.Reader) (string, error) {
	target, err := c.compile(reader)
	if err != nil {
		return "", err
	}

	return Generate(target), nil
}

// CompileLLVM lowers the program to LLVM IR instead of C text.
func (c *Compiler) CompileLLVM(source string) (string, error) {
	target, err := c.compile(strings.NewReader(source))
	if err != nil {
		return "", err
	}

	return NewLLVMGenerator(target).Do().String(), nil
}

func (c *Compiler) compile(reader io.Reader) (*CProgram, error) {
	toks, err := NewLexer(reader).RunBlocking()
	if err != nil {
		return nil, err
	}

	prog, err := NewParser(toks).Run()
	if err != nil {
		return nil, err
	}

	target := Transform(prog)

	if c.trace != nil {
		PrintTree(c.trace, prog)
		PrintTree(c.trace, target)
	}

	return target, nil
}
