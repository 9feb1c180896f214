package arith

import (
	"github.com/funvibe/syntactic/pkg/syntax"
)

// Syntax builds arithmetic trees in any domain D containing Arith.
type Syntax[D any] struct {
	in syntax.Injection[Arith, D]
}

// For checks that Arith is part of D.
func For[D any]() (Syntax[D], error) {
	in, err := syntax.NewInjection[Arith, D]()
	if err != nil {
		return Syntax[D]{}, err
	}
	return Syntax[D]{in: in}, nil
}

// MustFor is For for package level composition.
func MustFor[D any]() Syntax[D] {
	s, err := For[D]()
	if err != nil {
		panic(err)
	}
	return s
}

func (s Syntax[D]) Lit(v int) syntax.Expr[D, int] {
	return syntax.Inj[syntax.Full[int]](s.in, Lit{Value: v})
}

func (s Syntax[D]) Add(a, b syntax.Expr[D, int]) syntax.Expr[D, int] {
	return syntax.Sugar2(syntax.Inj[Binary](s.in, Add{}))(a, b)
}

func (s Syntax[D]) Sub(a, b syntax.Expr[D, int]) syntax.Expr[D, int] {
	return syntax.Sugar2(syntax.Inj[Binary](s.in, Sub{}))(a, b)
}

func (s Syntax[D]) Mul(a, b syntax.Expr[D, int]) syntax.Expr[D, int] {
	return syntax.Sugar2(syntax.Inj[Binary](s.in, Mul{}))(a, b)
}

func (s Syntax[D]) Neg(a syntax.Expr[D, int]) syntax.Expr[D, int] {
	return syntax.Sugar1(syntax.Inj[Unary](s.in, Neg{}))(a)
}

// Sum adds up xs, left to right. The sum of nothing is the literal 0.
func (s Syntax[D]) Sum(xs ...syntax.Expr[D, int]) syntax.Expr[D, int] {
	if len(xs) == 0 {
		return s.Lit(0)
	}
	acc := xs[0]
	for _, x := range xs[1:] {
		acc = s.Add(acc, x)
	}
	return acc
}
