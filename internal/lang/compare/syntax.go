package compare

import (
	"cmp"

	"github.com/funvibe/syntactic/pkg/syntax"
)

// Syntax builds comparisons in any domain D containing Compare.
type Syntax[D any] struct {
	in syntax.Injection[Compare, D]
}

func For[D any]() (Syntax[D], error) {
	in, err := syntax.NewInjection[Compare, D]()
	if err != nil {
		return Syntax[D]{}, err
	}
	return Syntax[D]{in: in}, nil
}

func MustFor[D any]() Syntax[D] {
	s, err := For[D]()
	if err != nil {
		panic(err)
	}
	return s
}

// Eq builds a == b.
func Eq[T comparable, D any](s Syntax[D], a, b syntax.Expr[D, T]) syntax.Expr[D, bool] {
	return syntax.Sugar2(syntax.Inj[Relation[T]](s.in, Equal[T]{}))(a, b)
}

// Lt builds a < b.
func Lt[T cmp.Ordered, D any](s Syntax[D], a, b syntax.Expr[D, T]) syntax.Expr[D, bool] {
	return syntax.Sugar2(syntax.Inj[Relation[T]](s.in, Less[T]{}))(a, b)
}
