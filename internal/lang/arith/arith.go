// Package arith is a domain of integer arithmetic: literals, addition,
// subtraction, multiplication and negation.
package arith

import (
	"fmt"
	"strconv"

	"github.com/funvibe/syntactic/pkg/constraint"
	"github.com/funvibe/syntactic/pkg/syntax"
)

// Arith is the domain. Every symbol yields int, so the domain declares Show.
type Arith interface {
	constraint.Constrained[constraint.Show]
	isArith()
}

type (
	Unary  = syntax.Arrow[int, syntax.Full[int]]
	Binary = syntax.Arrow[int, syntax.Arrow[int, syntax.Full[int]]]
)

// Lit is an integer constant.
type Lit struct {
	Value int
}

type (
	Add struct{}
	Sub struct{}
	Mul struct{}
	Neg struct{}
)

func (Lit) isArith() {}
func (Add) isArith() {}
func (Sub) isArith() {}
func (Mul) isArith() {}
func (Neg) isArith() {}

func (Lit) Satisfies(constraint.Show) {}
func (Add) Satisfies(constraint.Show) {}
func (Sub) Satisfies(constraint.Show) {}
func (Mul) Satisfies(constraint.Show) {}
func (Neg) Satisfies(constraint.Show) {}

func (Lit) Signature() syntax.Full[int] { return syntax.Full[int]{} }
func (Add) Signature() Binary           { return Binary{} }
func (Sub) Signature() Binary           { return Binary{} }
func (Mul) Signature() Binary           { return Binary{} }
func (Neg) Signature() Unary            { return Unary{} }

func (l Lit) RenderSym() string { return strconv.Itoa(l.Value) }
func (Add) RenderSym() string   { return "+" }
func (Sub) RenderSym() string   { return "-" }
func (Mul) RenderSym() string   { return "*" }
func (Neg) RenderSym() string   { return "negate" }

func (Add) RenderArgs(args []string) string { return infix("+", args) }
func (Sub) RenderArgs(args []string) string { return infix("-", args) }
func (Mul) RenderArgs(args []string) string { return infix("*", args) }
func (Neg) RenderArgs(args []string) string { return "-" + args[0] }

func (l Lit) EvalSym([]any) (any, error) { return l.Value, nil }

func (Add) EvalSym(args []any) (any, error) {
	return binary(args, func(a, b int) int { return a + b })
}

func (Sub) EvalSym(args []any) (any, error) {
	return binary(args, func(a, b int) int { return a - b })
}

func (Mul) EvalSym(args []any) (any, error) {
	return binary(args, func(a, b int) int { return a * b })
}

func (Neg) EvalSym(args []any) (any, error) {
	x, err := ints(args, 1)
	if err != nil {
		return nil, err
	}
	return -x[0], nil
}

func infix(op string, args []string) string {
	return "(" + args[0] + " " + op + " " + args[1] + ")"
}

func binary(args []any, f func(a, b int) int) (any, error) {
	x, err := ints(args, 2)
	if err != nil {
		return nil, err
	}
	return f(x[0], x[1]), nil
}

func ints(args []any, n int) ([]int, error) {
	if len(args) != n {
		return nil, fmt.Errorf("expected %d arguments, got %d", n, len(args))
	}
	out := make([]int, n)
	for i, a := range args {
		v, ok := a.(int)
		if !ok {
			return nil, fmt.Errorf("argument %d: expected int, got %T", i+1, a)
		}
		out[i] = v
	}
	return out, nil
}
