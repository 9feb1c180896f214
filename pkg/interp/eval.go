package interp

import (
	"fmt"

	"github.com/funvibe/syntactic/pkg/syntax"
)

// EvalNode evaluates a fully applied tree bottom-up through the Evaluator
// capability of its symbols.
func EvalNode[D any](n syntax.Node[D]) (any, error) {
	if n.Sig().Arity() != 0 {
		return nil, syntax.NewArityError(n.Sig(), 0)
	}
	return syntax.FoldErr(n, func(head *syntax.Leaf[D], args []any) (any, error) {
		v, err := syntax.EvalSymbol(head.Symbol, args)
		if err != nil {
			return nil, fmt.Errorf("eval %s: %w", syntax.RenderSymbol(head.Symbol), err)
		}
		return v, nil
	})
}

// Evaluate evaluates e and checks that the value has the result type R.
func Evaluate[D, R any](e syntax.Expr[D, R]) (R, error) {
	var zero R
	v, err := EvalNode(e.Node())
	if err != nil {
		return zero, err
	}
	r, ok := v.(R)
	if !ok {
		return zero, fmt.Errorf("eval: value %v of type %T is not %v", v, v, syntax.TypeOf[R]())
	}
	return r, nil
}

// EvalSome evaluates a tree of hidden result type.
func EvalSome[D any](s syntax.Some[D]) (any, error) {
	return EvalNode(s.Node())
}
