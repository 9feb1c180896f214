package constraint

import (
	"fmt"
	"reflect"

	"github.com/funvibe/syntactic/pkg/syntax"
)

// Constrained is embedded in a domain interface to declare that the result
// type of every symbol of the domain satisfies P. Symbols implement it with
// an empty marker method:
//
//	type Arith interface {
//		constraint.Constrained[constraint.Show]
//		isArith()
//	}
//
//	func (Lit) Satisfies(constraint.Show) {}
type Constrained[P Predicate] interface {
	Satisfies(P)
}

const satisfiesMethod = "Satisfies"

type declarer interface {
	declaredPredicate() Predicate
}

type carrier interface {
	carriedType() reflect.Type
}

// Declared returns the predicate guaranteed for every tree over D.
//
// A domain without a declaration has Top. A union has the predicate of its
// branches when both declare the same one and Top otherwise. Strict has the
// intersection of its predicate and the wrapped domain's, Override only its own.
func Declared[D any]() Predicate {
	return declaredOf(syntax.TypeOf[D]())
}

func declaredOf(t reflect.Type) Predicate {
	if t == nil {
		return Top{}
	}
	switch z := reflect.Zero(t).Interface().(type) {
	case declarer:
		return z.declaredPredicate()
	case syntax.Branching:
		l, r := z.Branches()
		pl, pr := declaredOf(l), declaredOf(r)
		if samePredicate(pl, pr) {
			return pl
		}
		return Top{}
	}
	if m, ok := t.MethodByName(satisfiesMethod); ok && m.Type.NumIn() > 0 {
		in := m.Type.In(m.Type.NumIn() - 1)
		if p, ok := reflect.Zero(in).Interface().(Predicate); ok {
			return p
		}
	}
	return Top{}
}

// Domain is a composed domain D checked to support predicate P.
type Domain[P Predicate, D any] struct {
	declared Predicate
	steps    []Step
}

// NewDomain checks, before any tree is built, that the predicate declared
// for D implies P.
func NewDomain[P Predicate, D any]() (Domain[P, D], error) {
	decl := Declared[D]()
	steps, ok := derive(zero[P](), decl)
	if !ok {
		return Domain[P, D]{}, fmt.Errorf("domain %v: %w", syntax.TypeOf[D](), NewSubsetError(zero[P](), decl))
	}
	return Domain[P, D]{declared: decl, steps: steps}, nil
}

// MustDomain is NewDomain for package level composition.
func MustDomain[P Predicate, D any]() Domain[P, D] {
	d, err := NewDomain[P, D]()
	if err != nil {
		panic(err)
	}
	return d
}

// Declared is the predicate the domain guarantees.
func (d Domain[P, D]) Declared() Predicate { return d.declared }

// Steps is the weakening chain from the declared predicate to P.
func (d Domain[P, D]) Steps() []Step { return append([]Step(nil), d.steps...) }

// Evidence certifies P for the result type of n. Evidence stored in a
// constrained wrapper at the head of n is reused; otherwise the declared
// predicate is checked against the result type.
func (d Domain[P, D]) Evidence(n syntax.Node[D]) (Evidence[P], error) {
	sig := n.Sig()
	if sig.Arity() != 0 {
		return Evidence[P]{}, fmt.Errorf("evidence for %s: tree is not fully applied", sig)
	}
	t := sig.Result()
	if head, _ := syntax.Spine(n); head != nil {
		if c, ok := carriedBy(head.Symbol); ok && c == t {
			return Evidence[P]{typ: t}, nil
		}
	}
	if !d.declared.Holds(t) {
		return Evidence[P]{}, NewEvidenceError(d.declared, t)
	}
	return Evidence[P]{typ: t}, nil
}

// EvidenceOf is NewDomain followed by Evidence.
func EvidenceOf[P Predicate, D any](n syntax.Node[D]) (Evidence[P], error) {
	d, err := NewDomain[P, D]()
	if err != nil {
		return Evidence[P]{}, err
	}
	return d.Evidence(n)
}

// carriedBy finds evidence stored by a wrapper, following the active
// branch of unions.
func carriedBy(sym any) (reflect.Type, bool) {
	for {
		switch v := sym.(type) {
		case carrier:
			return v.carriedType(), true
		case interface{ Value() any }:
			sym = v.Value()
		default:
			return nil, false
		}
	}
}
