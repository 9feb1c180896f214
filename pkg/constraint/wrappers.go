package constraint

import (
	"fmt"
	"reflect"

	"github.com/funvibe/syntactic/pkg/syntax"
)

// Strict wraps a symbol of a domain declaring Q and narrows it with the
// explicit predicate P. The wrapped domain declares P && Q. The evidence is
// taken once, when the wrapper is created, and carried with the symbol.
type Strict[P, Q Predicate, D any] struct {
	Symbol   D
	evidence Evidence[And[P, Q]]
}

// Restrict wraps sym, whose signature is S. It fails when D does not
// declare Q or when the result type of S does not satisfy P && Q.
func Restrict[P, Q Predicate, S syntax.Signature, D any](sym D) (Strict[P, Q, D], error) {
	if err := declares[Q, D](); err != nil {
		return Strict[P, Q, D]{}, err
	}
	ev, err := Prove[And[P, Q]](syntax.SignatureOf[S]().Result())
	if err != nil {
		return Strict[P, Q, D]{}, err
	}
	return Strict[P, Q, D]{Symbol: sym, evidence: ev}, nil
}

// RestrictWith wraps sym with proof of P that the caller already holds.
func RestrictWith[Q Predicate, S syntax.Signature, P Predicate, D any](p Evidence[P], sym D) (Strict[P, Q, D], error) {
	if err := declares[Q, D](); err != nil {
		return Strict[P, Q, D]{}, err
	}
	t := syntax.SignatureOf[S]().Result()
	if p.typ != t {
		return Strict[P, Q, D]{}, fmt.Errorf("evidence %s does not match result %v", p, t)
	}
	q, err := Prove[Q](t)
	if err != nil {
		return Strict[P, Q, D]{}, err
	}
	ev, err := Both(p, q)
	if err != nil {
		return Strict[P, Q, D]{}, err
	}
	return Strict[P, Q, D]{Symbol: sym, evidence: ev}, nil
}

// InjectStrict restricts sym and injects the wrapper into U.
func InjectStrict[P, Q Predicate, S syntax.Signature, D, U any](in syntax.Injection[Strict[P, Q, D], U], sym D) (syntax.AST[U, S], error) {
	s, err := Restrict[P, Q, S](sym)
	if err != nil {
		return syntax.AST[U, S]{}, err
	}
	return syntax.InjAs[S](in, s), nil
}

// Evidence is the proof stored at creation.
func (s Strict[P, Q, D]) Evidence() Evidence[And[P, Q]] { return s.evidence }

func (Strict[P, Q, D]) declaredPredicate() Predicate { return And[P, Q]{} }
func (s Strict[P, Q, D]) carriedType() reflect.Type  { return s.evidence.typ }

func (s Strict[P, Q, D]) ProjectSym(target any) (any, bool) {
	return projectWrapped(s.Symbol, target)
}

func (s Strict[P, Q, D]) EqualSym(other any) bool {
	o, ok := other.(Strict[P, Q, D])
	return ok && syntax.EqualSymbols(s.Symbol, o.Symbol)
}

func (s Strict[P, Q, D]) HashSym() uint64                 { return syntax.HashSymbol(s.Symbol) }
func (s Strict[P, Q, D]) RenderSym() string               { return syntax.RenderSymbol(s.Symbol) }
func (s Strict[P, Q, D]) RenderArgs(args []string) string { return syntax.RenderWithArgs(s.Symbol, args) }
func (s Strict[P, Q, D]) EvalSym(args []any) (any, error) { return syntax.EvalSymbol(s.Symbol, args) }
func (s Strict[P, Q, D]) String() string                  { return syntax.RenderSymbol(s.Symbol) }

// Override wraps a symbol and declares exactly P for it, replacing
// whatever the wrapped domain declares.
type Override[P Predicate, D any] struct {
	Symbol   D
	evidence Evidence[P]
}

// Overrule wraps sym, whose signature is S, after checking P on the
// result type of S.
func Overrule[P Predicate, S syntax.Signature, D any](sym D) (Override[P, D], error) {
	ev, err := Prove[P](syntax.SignatureOf[S]().Result())
	if err != nil {
		return Override[P, D]{}, err
	}
	return Override[P, D]{Symbol: sym, evidence: ev}, nil
}

// OverruleWith wraps sym with proof of P that the caller already holds.
func OverruleWith[S syntax.Signature, P Predicate, D any](p Evidence[P], sym D) (Override[P, D], error) {
	if t := syntax.SignatureOf[S]().Result(); p.typ != t {
		return Override[P, D]{}, fmt.Errorf("evidence %s does not match result %v", p, t)
	}
	return Override[P, D]{Symbol: sym, evidence: p}, nil
}

// InjectOverride overrules sym and injects the wrapper into U.
func InjectOverride[P Predicate, S syntax.Signature, D, U any](in syntax.Injection[Override[P, D], U], sym D) (syntax.AST[U, S], error) {
	o, err := Overrule[P, S](sym)
	if err != nil {
		return syntax.AST[U, S]{}, err
	}
	return syntax.InjAs[S](in, o), nil
}

// Evidence is the proof stored at creation.
func (o Override[P, D]) Evidence() Evidence[P] { return o.evidence }

func (Override[P, D]) declaredPredicate() Predicate { return zero[P]() }
func (o Override[P, D]) carriedType() reflect.Type  { return o.evidence.typ }

func (o Override[P, D]) ProjectSym(target any) (any, bool) {
	return projectWrapped(o.Symbol, target)
}

func (o Override[P, D]) EqualSym(other any) bool {
	x, ok := other.(Override[P, D])
	return ok && syntax.EqualSymbols(o.Symbol, x.Symbol)
}

func (o Override[P, D]) HashSym() uint64                 { return syntax.HashSymbol(o.Symbol) }
func (o Override[P, D]) RenderSym() string               { return syntax.RenderSymbol(o.Symbol) }
func (o Override[P, D]) RenderArgs(args []string) string { return syntax.RenderWithArgs(o.Symbol, args) }
func (o Override[P, D]) EvalSym(args []any) (any, error) { return syntax.EvalSymbol(o.Symbol, args) }
func (o Override[P, D]) String() string                  { return syntax.RenderSymbol(o.Symbol) }

func declares[Q Predicate, D any]() error {
	if got := Declared[D](); !samePredicate(got, zero[Q]()) {
		return NewDeclarationError(syntax.TypeOf[D](), zero[Q](), got)
	}
	return nil
}

func projectWrapped[D any](sym D, target any) (any, bool) {
	if _, ok := target.(*D); ok {
		return sym, true
	}
	if p, ok := any(sym).(syntax.Projector); ok {
		return p.ProjectSym(target)
	}
	return nil, false
}
