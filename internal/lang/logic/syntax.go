package logic

import (
	"github.com/funvibe/syntactic/pkg/syntax"
)

// Syntax builds logic trees in any domain D containing Logic.
type Syntax[D any] struct {
	in syntax.Injection[Logic, D]
}

func For[D any]() (Syntax[D], error) {
	in, err := syntax.NewInjection[Logic, D]()
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

func (s Syntax[D]) Bool(v bool) syntax.Expr[D, bool] {
	return syntax.Inj[syntax.Full[bool]](s.in, BoolLit{Value: v})
}

func (s Syntax[D]) Not(a syntax.Expr[D, bool]) syntax.Expr[D, bool] {
	return syntax.Sugar1(syntax.Inj[Unary](s.in, Not{}))(a)
}

func (s Syntax[D]) And(a, b syntax.Expr[D, bool]) syntax.Expr[D, bool] {
	return syntax.Sugar2(syntax.Inj[Binary](s.in, And{}))(a, b)
}

func (s Syntax[D]) Or(a, b syntax.Expr[D, bool]) syntax.Expr[D, bool] {
	return syntax.Sugar2(syntax.Inj[Binary](s.in, Or{}))(a, b)
}

// Cond builds "if c then t else e". Methods cannot introduce the branch
// type, hence a function.
func Cond[T, D any](s Syntax[D], c syntax.Expr[D, bool], t, e syntax.Expr[D, T]) syntax.Expr[D, T] {
	return syntax.Sugar3(syntax.Inj[Ternary[T]](s.in, If[T]{}))(c, t, e)
}
