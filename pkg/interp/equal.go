// Package interp provides generic walkers over syntax trees. Every walker
// relies only on the capabilities symbols implement (see syntax.Equality,
// syntax.Hasher, syntax.Renderer, syntax.ArgRenderer and syntax.Evaluator),
// so the same code serves any composed domain.
package interp

import (
	"github.com/funvibe/syntactic/pkg/syntax"
)

// Equal reports whether a and b have the same shape, the same signatures
// and equal symbols.
func Equal[D any](a, b syntax.Node[D]) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a == b {
		return true
	}

	switch x := a.(type) {
	case *syntax.Leaf[D]:
		if y, ok := b.(*syntax.Leaf[D]); ok {
			return x.Sig().Equal(y.Sig()) && syntax.EqualSymbols(x.Symbol, y.Symbol)
		}
	case *syntax.Apply[D]:
		if y, ok := b.(*syntax.Apply[D]); ok {
			return x.Sig().Equal(y.Sig()) && Equal(x.Fn, y.Fn) && Equal(x.Arg, y.Arg)
		}
	}
	return false
}

// EqualSome compares two trees of hidden result type. Trees of different
// result types are never equal.
func EqualSome[D any](a, b syntax.Some[D]) bool {
	return syntax.With2(a, b, Equal[D])
}
