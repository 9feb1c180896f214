// Package syntax implements open, typed abstract syntax trees.
//
// A tree is built from symbols of a domain D. Every symbol has a signature
// (Full[R] or Arrow[A, S]) that fixes how many arguments it takes and what it
// yields. Domains are combined with Sum, and symbols are moved in and out of
// combined domains with Injection and Project.
//
// The typed API (AST, Expr, Sym, App, Sugar1..Sugar4) checks signatures at
// compile time. The erased API (Node, ApplyNode, Sugar) checks them when the
// tree is built and is what interpreters walk.
package syntax

import "reflect"

// Node is an erased syntax tree: a *Leaf or an *Apply.
type Node[D any] interface {
	Sig() SigRep
	Size() int
	node(D)
}

// Leaf wraps a single symbol.
type Leaf[D any] struct {
	Symbol D
	sig    SigRep
}

func (l *Leaf[D]) node(D)      {}
func (l *Leaf[D]) Sig() SigRep { return l.sig }
func (l *Leaf[D]) Size() int   { return 1 }

// NewLeaf wraps sym as a leaf with the given signature.
func NewLeaf[D any](sym D, sig SigRep) *Leaf[D] {
	return &Leaf[D]{Symbol: sym, sig: sig}
}

// Apply supplies one more argument to a partially applied tree.
type Apply[D any] struct {
	Fn  Node[D]
	Arg Node[D]
	sig SigRep
}

func (a *Apply[D]) node(D)      {}
func (a *Apply[D]) Sig() SigRep { return a.sig }
func (a *Apply[D]) Size() int   { return a.Fn.Size() + a.Arg.Size() }

// ApplyNode applies f to a. f must expect an argument of a's result type
// and a must be fully applied.
func ApplyNode[D any](f, a Node[D]) (Node[D], error) {
	arrow, ok := f.Sig().(ArrowRep)
	if !ok {
		return nil, NewSignatureError(f.Sig(), a.Sig(), "function is fully applied")
	}
	full, ok := a.Sig().(FullRep)
	if !ok {
		return nil, NewSignatureError(f.Sig(), a.Sig(), "argument is not fully applied")
	}
	if arrow.Arg != full.Type {
		return nil, NewSignatureError(f.Sig(), a.Sig(), "argument type mismatch")
	}
	return &Apply[D]{Fn: f, Arg: a, sig: arrow.Rest}, nil
}

// AST is a tree over domain D with signature S.
type AST[D any, S Signature] struct {
	root Node[D]
}

// Expr is a fully applied tree with result type R.
type Expr[D, R any] = AST[D, Full[R]]

// Node returns the erased tree.
func (a AST[D, S]) Node() Node[D] { return a.root }

// Size counts the symbols in the tree.
func (a AST[D, S]) Size() int { return a.root.Size() }

// Sig returns the witness of S.
func (a AST[D, S]) Sig() SigRep { return a.root.Sig() }

// Sym makes a leaf from sym.
func Sym[S Signature, D any](sym D) AST[D, S] {
	return AST[D, S]{root: NewLeaf(sym, SignatureOf[S]())}
}

// App applies f to a.
func App[D, A any, S Signature](f AST[D, Arrow[A, S]], a Expr[D, A]) AST[D, S] {
	return AST[D, S]{root: &Apply[D]{Fn: f.root, Arg: a.root, sig: SignatureOf[S]()}}
}

// AsAST gives an erased tree back its static signature.
func AsAST[S Signature, D any](n Node[D]) (AST[D, S], error) {
	want := SignatureOf[S]()
	if !n.Sig().Equal(want) {
		return AST[D, S]{}, NewSignatureError(want, n.Sig(), "signature mismatch")
	}
	return AST[D, S]{root: n}, nil
}

// Size counts the symbols in n.
func Size[D any](n Node[D]) int { return n.Size() }

// ResultType is the type n yields once fully applied.
func ResultType[D any](n Node[D]) reflect.Type { return n.Sig().Result() }

// MapSymbols rebuilds n with f applied to every symbol. Shape and
// signatures are kept.
func MapSymbols[D, E any](n Node[D], f func(D) E) Node[E] {
	switch n := n.(type) {
	case *Leaf[D]:
		return &Leaf[E]{Symbol: f(n.Symbol), sig: n.sig}
	case *Apply[D]:
		return &Apply[E]{Fn: MapSymbols(n.Fn, f), Arg: MapSymbols(n.Arg, f), sig: n.sig}
	}
	return nil
}

// Map is MapSymbols on a typed tree.
func Map[D, E any, S Signature](a AST[D, S], f func(D) E) AST[E, S] {
	return AST[E, S]{root: MapSymbols(a.root, f)}
}

// Spine splits n into the leaf at its head and the arguments applied to it,
// first argument first.
func Spine[D any](n Node[D]) (*Leaf[D], []Node[D]) {
	var args []Node[D]
	for {
		switch t := n.(type) {
		case *Leaf[D]:
			for i, j := 0, len(args)-1; i < j; i, j = i+1, j-1 {
				args[i], args[j] = args[j], args[i]
			}
			return t, args
		case *Apply[D]:
			args = append(args, t.Arg)
			n = t.Fn
		default:
			return nil, nil
		}
	}
}

// Fold interprets n bottom-up: f receives the head symbol of each spine
// together with the results of its arguments.
func Fold[D, T any](n Node[D], f func(head *Leaf[D], args []T) T) T {
	head, args := Spine(n)
	results := make([]T, len(args))
	for i, arg := range args {
		results[i] = Fold(arg, f)
	}
	return f(head, results)
}

// FoldErr is Fold for interpretations that can fail. The first error stops the walk.
func FoldErr[D, T any](n Node[D], f func(head *Leaf[D], args []T) (T, error)) (T, error) {
	head, args := Spine(n)
	results := make([]T, len(args))
	for i, arg := range args {
		r, err := FoldErr(arg, f)
		if err != nil {
			var zero T
			return zero, err
		}
		results[i] = r
	}
	return f(head, results)
}
