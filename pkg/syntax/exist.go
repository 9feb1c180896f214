package syntax

import "reflect"

// Some is a fully applied tree whose result type is hidden, so trees of
// different result types can share a collection.
type Some[D any] struct {
	root Node[D]
}

// Wrap hides the result type of e.
func Wrap[D, R any](e Expr[D, R]) Some[D] {
	return Some[D]{root: e.root}
}

// WrapNode hides the result type of an erased tree. n must be fully applied.
func WrapNode[D any](n Node[D]) (Some[D], error) {
	if _, ok := n.Sig().(FullRep); !ok {
		return Some[D]{}, NewArityError(n.Sig(), 0)
	}
	return Some[D]{root: n}, nil
}

func (s Some[D]) Node() Node[D] { return s.root }

func (s Some[D]) ResultType() reflect.Type { return s.root.Sig().Result() }

// With runs f on the hidden tree. f sees only the erased node and so
// works for every result type.
func With[T, D any](s Some[D], f func(Node[D]) T) T {
	return f(s.root)
}

// With2 runs f on two hidden trees.
func With2[T, D any](a, b Some[D], f func(x, y Node[D]) T) T {
	return f(a.root, b.root)
}

// Open recovers the typed tree when its result type is R.
func Open[R, D any](s Some[D]) (Expr[D, R], bool) {
	if s.root == nil || s.ResultType() != TypeOf[R]() {
		return Expr[D, R]{}, false
	}
	return Expr[D, R]{root: s.root}, true
}
