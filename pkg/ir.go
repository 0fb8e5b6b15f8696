package tinycompiler

import (
	"fmt"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
)

type ValueLookup struct {
	vals map[string]value.Value
}

func NewValueLookup() *ValueLookup {
	return &ValueLookup{
		vals: make(map[string]value.Value),
	}
}

func (l *ValueLookup) Get(id string) (value.Value, bool) {
	val, ok := l.vals[id]
	return val, ok
}

func (l *ValueLookup) Set(id string, val value.Value) {
	l.vals[id] = val
}

type IRGenerator interface {
	Do() IR
}

type IR interface {
	fmt.Stringer
}

type LLVMIRBuilder struct {
	mod    *ir.Module
	values *ValueLookup
}

func NewLLVMIRBuilder() *LLVMIRBuilder {
	builder := &LLVMIRBuilder{
		mod:    ir.NewModule(),
		values: NewValueLookup(),
	}

	defineBuiltins(builder)
	return builder
}

// program lowers the whole target tree into a main function that
// evaluates each top-level statement and prints its value.
func (b *LLVMIRBuilder) program(prog *CProgram) {
	f := b.mod.NewFunc("main", types.I32)
	block := f.NewBlock("")

	for _, stmt := range prog.Body {
		switch s := stmt.(type) {
		case *ExpressionStatement:
			v, ins := b.expression(s.Expression)
			block.Insts = append(block.Insts, ins...)

			// A void statement, such as a direct call to print, has
			// no value to report
			if !v.Type().Equal(types.Void) {
				printFn, _ := b.values.Get("print")
				block.Insts = append(block.Insts, ir.NewCall(printFn, v))
			}
		}
	}

	block.NewRet(constant.NewInt(types.I32, 0))
}

func (b *LLVMIRBuilder) expression(expr CExpr) (value.Value, []ir.Instruction) {
	switch e := expr.(type) {
	case *CNumberLiteral:
		return constant.NewInt(types.I32, int64(e.Value)), nil
	case *CCallExpression:
		return b.functionCall(e)
	default:
		// The transformer only produces the two kinds above
		panic("unexpected expression kind")
	}
}

func (b *LLVMIRBuilder) functionCall(expr *CCallExpression) (value.Value, []ir.Instruction) {
	var ins []ir.Instruction
	var callVals []value.Value
	for _, arg := range expr.Params {
		argVal, argIns := b.expression(arg)

		ins = append(ins, argIns...)
		callVals = append(callVals, argVal)
	}

	call := ir.NewCall(b.callee(expr.Callee.Name, len(expr.Params)), callVals...)
	return call, append(ins, call)
}

// callee resolves a function by name. Names without a builtin
// definition are declared external with C linkage semantics, the same
// way the generated C text leaves them to the linker.
func (b *LLVMIRBuilder) callee(name string, arity int) value.Value {
	if v, ok := b.values.Get(name); ok {
		return v
	}

	params := make([]*ir.Param, arity)
	for i := range params {
		params[i] = ir.NewParam("", types.I32)
	}

	f := b.mod.NewFunc(name, types.I32, params...)
	b.values.Set(name, f)

	return f
}

type LLVMGenerator struct {
	prog *CProgram
}

func NewLLVMGenerator(prog *CProgram) *LLVMGenerator {
	return &LLVMGenerator{
		prog: prog,
	}
}

func (g *LLVMGenerator) Do() IR {
	builder := NewLLVMIRBuilder()
	builder.program(g.prog)

	return builder.mod
}
