package syntax

import (
	"fmt"
	"strconv"
)

// Small domains shared by the tests of this package.

type num interface{ isNum() }

type lit struct{ v int }

func (lit) isNum()                       {}
func (lit) Signature() Full[int]         { return Full[int]{} }
func (l lit) RenderSym() string          { return strconv.Itoa(l.v) }
func (l lit) EvalSym([]any) (any, error) { return l.v, nil }

type add struct{}

func (add) isNum()                                       {}
func (add) Signature() Arrow[int, Arrow[int, Full[int]]] { return Arrow[int, Arrow[int, Full[int]]]{} }
func (add) RenderSym() string                            { return "add" }
func (add) EvalSym(args []any) (any, error)              { return args[0].(int) + args[1].(int), nil }

type neg struct{}

func (neg) isNum()                           {}
func (neg) Signature() Arrow[int, Full[int]] { return Arrow[int, Full[int]]{} }

type boolean interface{ isBool() }

type blit struct{ v bool }

func (blit) isBool()               {}
func (blit) Signature() Full[bool] { return Full[bool]{} }
func (b blit) RenderSym() string   { return strconv.FormatBool(b.v) }

type cond[T any] struct{}

func (cond[T]) isBool()           {}
func (cond[T]) RenderSym() string { return "if" }
func (cond[T]) Signature() Arrow[bool, Arrow[T, Arrow[T, Full[T]]]] {
	return Arrow[bool, Arrow[T, Arrow[T, Full[T]]]]{}
}

type text interface{ isText() }

type str struct{ s string }

func (str) isText()                 {}
func (str) Signature() Full[string] { return Full[string]{} }
func (s str) String() string        { return fmt.Sprintf("%q", s.s) }

type lang = Sum[num, Sum[boolean, text]]

var (
	numIn  = MustInjection[num, lang]()
	boolIn = MustInjection[boolean, lang]()
	textIn = MustInjection[text, lang]()
)

func litE(v int) Expr[lang, int] { return Inj[Full[int]](numIn, lit{v: v}) }

func addE(a, b Expr[lang, int]) Expr[lang, int] {
	return Sugar2(Inj[Arrow[int, Arrow[int, Full[int]]]](numIn, add{}))(a, b)
}

func negE(a Expr[lang, int]) Expr[lang, int] {
	return Sugar1(Inj[Arrow[int, Full[int]]](numIn, neg{}))(a)
}

func boolE(v bool) Expr[lang, bool] { return Inj[Full[bool]](boolIn, blit{v: v}) }

func condE[T any](c Expr[lang, bool], t, e Expr[lang, T]) Expr[lang, T] {
	return Sugar3(Inj[Arrow[bool, Arrow[T, Arrow[T, Full[T]]]]](boolIn, cond[T]{}))(c, t, e)
}

func strE(s string) Expr[lang, string] { return Inj[Full[string]](textIn, str{s: s}) }
