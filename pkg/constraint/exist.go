package constraint

import (
	"github.com/funvibe/syntactic/pkg/syntax"
)

// SomeC is a fully applied tree of hidden result type together with
// evidence that the result type satisfies P.
type SomeC[D any, P Predicate] struct {
	root     syntax.Node[D]
	evidence Evidence[P]
}

// WrapC packs e with evidence of P for R, derived from the domain.
func WrapC[P Predicate, D, R any](e syntax.Expr[D, R]) (SomeC[D, P], error) {
	ev, err := EvidenceOf[P](e.Node())
	if err != nil {
		return SomeC[D, P]{}, err
	}
	return SomeC[D, P]{root: e.Node(), evidence: ev}, nil
}

// WrapWith packs e with evidence the caller already holds.
func WrapWith[D, R any, P Predicate](ev Evidence[P], e syntax.Expr[D, R]) (SomeC[D, P], error) {
	if t := syntax.TypeOf[R](); ev.typ != t {
		return SomeC[D, P]{}, NewEvidenceError(zero[P](), t)
	}
	return SomeC[D, P]{root: e.Node(), evidence: ev}, nil
}

func (s SomeC[D, P]) Node() syntax.Node[D] { return s.root }

// Evidence certifies P for the hidden result type.
func (s SomeC[D, P]) Evidence() Evidence[P] { return s.evidence }

// Forget drops the evidence.
func (s SomeC[D, P]) Forget() syntax.Some[D] {
	out, _ := syntax.WrapNode(s.root)
	return out
}

// WithC passes the tree and its evidence to f.
func WithC[T, D any, P Predicate](s SomeC[D, P], f func(syntax.Node[D], Evidence[P]) T) T {
	return f(s.root, s.evidence)
}

// WithC2 passes two packed trees to f.
func WithC2[T, D any, P Predicate](a, b SomeC[D, P], f func(x syntax.Node[D], ex Evidence[P], y syntax.Node[D], ey Evidence[P]) T) T {
	return f(a.root, a.evidence, b.root, b.evidence)
}
