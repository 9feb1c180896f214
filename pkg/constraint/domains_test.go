package constraint

import (
	"strconv"

	"github.com/funvibe/syntactic/pkg/syntax"
)

type shown interface {
	Constrained[Show]
	isShown()
}

type ilit struct{ v int }

func (ilit) isShown()                          {}
func (ilit) Satisfies(Show)                    {}
func (ilit) Signature() syntax.Full[int]       { return syntax.Full[int]{} }
func (l ilit) RenderSym() string               { return strconv.Itoa(l.v) }
func (l ilit) EvalSym(args []any) (any, error) { return l.v, nil }

type intBin = syntax.Arrow[int, syntax.Arrow[int, syntax.Full[int]]]

type iadd struct{}

func (iadd) isShown()                        {}
func (iadd) Satisfies(Show)                  {}
func (iadd) Signature() intBin               { return intBin{} }
func (iadd) RenderSym() string               { return "+" }
func (iadd) EvalSym(args []any) (any, error) { return args[0].(int) + args[1].(int), nil }

type truth interface {
	Constrained[Show]
	isTruth()
}

type tlit struct{ v bool }

func (tlit) isTruth()                     {}
func (tlit) Satisfies(Show)               {}
func (tlit) Signature() syntax.Full[bool] { return syntax.Full[bool]{} }

type eqd interface {
	Constrained[Eq]
	isEqd()
}

type elit struct{ s string }

func (elit) isEqd()                         {}
func (elit) Satisfies(Eq)                   {}
func (elit) Signature() syntax.Full[string] { return syntax.Full[string]{} }

type plain interface{ isPlain() }

type plit struct{ s string }

func (plit) isPlain()                       {}
func (plit) Signature() syntax.Full[string] { return syntax.Full[string]{} }

type (
	shownLang = syntax.Sum[shown, truth]
	mixedLang = syntax.Sum[shown, eqd]
)

var (
	shownIn = syntax.MustInjection[shown, shownLang]()
	truthIn = syntax.MustInjection[truth, shownLang]()
	mixedIn = syntax.MustInjection[shown, mixedLang]()
)

func litS(v int) syntax.Expr[shownLang, int] {
	return syntax.Inj[syntax.Full[int]](shownIn, ilit{v: v})
}

func addS(a, b syntax.Expr[shownLang, int]) syntax.Expr[shownLang, int] {
	return syntax.Sugar2(syntax.Inj[intBin](shownIn, iadd{}))(a, b)
}

func truthS(v bool) syntax.Expr[shownLang, bool] {
	return syntax.Inj[syntax.Full[bool]](truthIn, tlit{v: v})
}
