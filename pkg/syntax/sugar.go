package syntax

import "fmt"

// Constructor builds a fully applied tree from its arguments.
type Constructor[D any] func(args ...Node[D]) (Node[D], error)

// Sugar turns a tree of any arity into a constructor that takes exactly
// as many arguments as its signature has :-> layers.
func Sugar[D any](sym Node[D]) Constructor[D] {
	return func(args ...Node[D]) (Node[D], error) {
		if sym.Sig().Arity() != len(args) {
			return nil, NewArityError(sym.Sig(), len(args))
		}
		return sugar(sym, args, 0)
	}
}

func sugar[D any](fn Node[D], args []Node[D], pos int) (Node[D], error) {
	if len(args) == 0 {
		return fn, nil
	}
	next, err := ApplyNode(fn, args[0])
	if err != nil {
		return nil, fmt.Errorf("argument %d: %w", pos+1, err)
	}
	return sugar(next, args[1:], pos+1)
}

// Inj injects sym into the composed domain D and makes it a leaf.
// sym must belong to Sub; passing a symbol of another domain is a
// programming error and panics with a *CompositionError.
func Inj[S Signature, Sub, D any](in Injection[Sub, D], sym Typed[S]) AST[D, S] {
	sub, ok := sym.(Sub)
	if !ok {
		panic(NewCompositionError(TypeOf[Typed[S]](), TypeOf[Sub](), fmt.Sprintf("symbol %T is not in the domain", sym)))
	}
	return Sym[S](in.Inject(sub))
}

// InjAs is Inj for symbols that do not carry a static signature,
// such as constrained wrappers. The caller names S.
func InjAs[S Signature, Sub, D any](in Injection[Sub, D], sym Sub) AST[D, S] {
	return Sym[S](in.Inject(sym))
}

// Sugar1 makes a one argument constructor from f.
func Sugar1[D, A, R any](f AST[D, Arrow[A, Full[R]]]) func(Expr[D, A]) Expr[D, R] {
	return func(a Expr[D, A]) Expr[D, R] {
		return App(f, a)
	}
}

// Sugar2 makes a two argument constructor from f.
func Sugar2[D, A, B, R any](f AST[D, Arrow[A, Arrow[B, Full[R]]]]) func(Expr[D, A], Expr[D, B]) Expr[D, R] {
	return func(a Expr[D, A], b Expr[D, B]) Expr[D, R] {
		return App(App(f, a), b)
	}
}

// Sugar3 makes a three argument constructor from f.
func Sugar3[D, A, B, C, R any](f AST[D, Arrow[A, Arrow[B, Arrow[C, Full[R]]]]]) func(Expr[D, A], Expr[D, B], Expr[D, C]) Expr[D, R] {
	return func(a Expr[D, A], b Expr[D, B], c Expr[D, C]) Expr[D, R] {
		return App(App(App(f, a), b), c)
	}
}

// Sugar4 makes a four argument constructor from f.
func Sugar4[D, A, B, C, E, R any](f AST[D, Arrow[A, Arrow[B, Arrow[C, Arrow[E, Full[R]]]]]]) func(Expr[D, A], Expr[D, B], Expr[D, C], Expr[D, E]) Expr[D, R] {
	return func(a Expr[D, A], b Expr[D, B], c Expr[D, C], e Expr[D, E]) Expr[D, R] {
		return App(App(App(App(f, a), b), c), e)
	}
}
