// Package compare is a domain of comparisons between values of any
// comparable or ordered type.
package compare

import (
	"cmp"
	"fmt"

	"github.com/funvibe/syntactic/pkg/constraint"
	"github.com/funvibe/syntactic/pkg/syntax"
)

// Compare is the domain. Every symbol yields bool.
type Compare interface {
	constraint.Constrained[constraint.Show]
	isCompare()
}

// Relation is the signature of a comparison over T.
type Relation[T any] = syntax.Arrow[T, syntax.Arrow[T, syntax.Full[bool]]]

type (
	Equal[T comparable] struct{}
	Less[T cmp.Ordered] struct{}
)

func (Equal[T]) isCompare() {}
func (Less[T]) isCompare()  {}

func (Equal[T]) Satisfies(constraint.Show) {}
func (Less[T]) Satisfies(constraint.Show)  {}

func (Equal[T]) Signature() Relation[T] { return Relation[T]{} }
func (Less[T]) Signature() Relation[T]  { return Relation[T]{} }

func (Equal[T]) RenderSym() string { return "==" }
func (Less[T]) RenderSym() string  { return "<" }

func (Equal[T]) RenderArgs(args []string) string { return "(" + args[0] + " == " + args[1] + ")" }
func (Less[T]) RenderArgs(args []string) string  { return "(" + args[0] + " < " + args[1] + ")" }

func (Equal[T]) EvalSym(args []any) (any, error) {
	a, b, err := pair[T](args)
	if err != nil {
		return nil, err
	}
	return a == b, nil
}

func (Less[T]) EvalSym(args []any) (any, error) {
	a, b, err := pair[T](args)
	if err != nil {
		return nil, err
	}
	return cmp.Less(a, b), nil
}

func pair[T any](args []any) (T, T, error) {
	var zero T
	if len(args) != 2 {
		return zero, zero, fmt.Errorf("expected 2 arguments, got %d", len(args))
	}
	a, ok := args[0].(T)
	if !ok {
		return zero, zero, fmt.Errorf("argument 1: expected %v, got %T", syntax.TypeOf[T](), args[0])
	}
	b, ok := args[1].(T)
	if !ok {
		return zero, zero, fmt.Errorf("argument 2: expected %v, got %T", syntax.TypeOf[T](), args[1])
	}
	return a, b, nil
}
