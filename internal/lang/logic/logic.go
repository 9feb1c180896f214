// Package logic is a domain of booleans and conditionals.
package logic

import (
	"fmt"
	"strconv"

	"github.com/funvibe/syntactic/pkg/constraint"
	"github.com/funvibe/syntactic/pkg/syntax"
)

// Logic is the domain. If yields the type of its branches, so evidence
// for trees headed by If depends on the branch type.
type Logic interface {
	constraint.Constrained[constraint.Show]
	isLogic()
}

type (
	Unary  = syntax.Arrow[bool, syntax.Full[bool]]
	Binary = syntax.Arrow[bool, syntax.Arrow[bool, syntax.Full[bool]]]
)

// Ternary is the signature of If[T].
type Ternary[T any] = syntax.Arrow[bool, syntax.Arrow[T, syntax.Arrow[T, syntax.Full[T]]]]

type BoolLit struct {
	Value bool
}

type (
	Not struct{}
	And struct{}
	Or  struct{}
)

// If chooses between two values of type T.
type If[T any] struct{}

func (BoolLit) isLogic() {}
func (Not) isLogic()     {}
func (And) isLogic()     {}
func (Or) isLogic()      {}
func (If[T]) isLogic()   {}

func (BoolLit) Satisfies(constraint.Show) {}
func (Not) Satisfies(constraint.Show)     {}
func (And) Satisfies(constraint.Show)     {}
func (Or) Satisfies(constraint.Show)      {}
func (If[T]) Satisfies(constraint.Show)   {}

func (BoolLit) Signature() syntax.Full[bool] { return syntax.Full[bool]{} }
func (Not) Signature() Unary                 { return Unary{} }
func (And) Signature() Binary                { return Binary{} }
func (Or) Signature() Binary                 { return Binary{} }
func (If[T]) Signature() Ternary[T]          { return Ternary[T]{} }

func (b BoolLit) RenderSym() string { return strconv.FormatBool(b.Value) }
func (Not) RenderSym() string       { return "not" }
func (And) RenderSym() string       { return "&&" }
func (Or) RenderSym() string        { return "||" }
func (If[T]) RenderSym() string     { return "if" }

func (Not) RenderArgs(args []string) string { return "!" + args[0] }
func (And) RenderArgs(args []string) string { return "(" + args[0] + " && " + args[1] + ")" }
func (Or) RenderArgs(args []string) string  { return "(" + args[0] + " || " + args[1] + ")" }

func (If[T]) RenderArgs(args []string) string {
	return "(if " + args[0] + " then " + args[1] + " else " + args[2] + ")"
}

func (b BoolLit) EvalSym([]any) (any, error) { return b.Value, nil }

func (Not) EvalSym(args []any) (any, error) {
	x, err := bools(args, 1)
	if err != nil {
		return nil, err
	}
	return !x[0], nil
}

func (And) EvalSym(args []any) (any, error) {
	x, err := bools(args, 2)
	if err != nil {
		return nil, err
	}
	return x[0] && x[1], nil
}

func (Or) EvalSym(args []any) (any, error) {
	x, err := bools(args, 2)
	if err != nil {
		return nil, err
	}
	return x[0] || x[1], nil
}

// EvalSym receives both branches already evaluated; trees are pure, so
// only the choice is observable.
func (If[T]) EvalSym(args []any) (any, error) {
	if len(args) != 3 {
		return nil, fmt.Errorf("expected 3 arguments, got %d", len(args))
	}
	c, ok := args[0].(bool)
	if !ok {
		return nil, fmt.Errorf("condition: expected bool, got %T", args[0])
	}
	if c {
		return args[1], nil
	}
	return args[2], nil
}

func bools(args []any, n int) ([]bool, error) {
	if len(args) != n {
		return nil, fmt.Errorf("expected %d arguments, got %d", n, len(args))
	}
	out := make([]bool, n)
	for i, a := range args {
		v, ok := a.(bool)
		if !ok {
			return nil, fmt.Errorf("argument %d: expected bool, got %T", i+1, a)
		}
		out[i] = v
	}
	return out, nil
}
