package syntax

import (
	"fmt"
	"hash/fnv"
	"reflect"
	"strings"
)

// Capabilities a symbol can offer to interpreters. Each interpreter asks
// the head symbol of a spine for the capability it needs and hands it the
// already interpreted arguments.

// Equality compares two symbols of the same domain.
type Equality interface {
	EqualSym(other any) bool
}

// Hasher hashes a symbol consistently with Equality.
type Hasher interface {
	HashSym() uint64
}

// Renderer names a symbol.
type Renderer interface {
	RenderSym() string
}

// ArgRenderer renders a symbol applied to rendered arguments.
type ArgRenderer interface {
	RenderArgs(args []string) string
}

// Evaluator computes the value of a symbol applied to evaluated arguments.
type Evaluator interface {
	EvalSym(args []any) (any, error)
}

// EqualSymbols compares a and b through Equality, falling back to == for
// comparable symbols of the same type.
func EqualSymbols(a, b any) bool {
	if e, ok := a.(Equality); ok {
		return e.EqualSym(b)
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	if ta == nil {
		return true
	}
	return ta.Comparable() && comparePlain(a, b)
}

// comparePlain is a == b that reports false instead of panicking when an
// interface field holds a value that cannot be compared.
func comparePlain(a, b any) (equal bool) {
	defer func() {
		if recover() != nil {
			equal = false
		}
	}()
	return a == b
}

// HashSymbol hashes v through Hasher, falling back to its rendering.
func HashSymbol(v any) uint64 {
	if h, ok := v.(Hasher); ok {
		return h.HashSym()
	}
	f := fnv.New64a()
	fmt.Fprintf(f, "%T:%s", v, RenderSymbol(v))
	return f.Sum64()
}

// RenderSymbol names v through Renderer or fmt.Stringer.
func RenderSymbol(v any) string {
	switch r := v.(type) {
	case Renderer:
		return r.RenderSym()
	case fmt.Stringer:
		return r.String()
	}
	return fmt.Sprintf("%v", v)
}

// RenderWithArgs renders v applied to args. Symbols without ArgRenderer
// render in prefix form. args must be complete for v: use RenderApplied
// when the head may be partially applied.
func RenderWithArgs(v any, args []string) string {
	if r, ok := v.(ArgRenderer); ok {
		return r.RenderArgs(args)
	}
	return RenderPrefix(v, args)
}

// RenderApplied renders the head of a spine with signature sig applied to
// args. ArgRenderer only sees complete argument lists; a partial
// application renders in prefix form.
func RenderApplied(v any, sig SigRep, args []string) string {
	if len(args) == 0 || len(args) != sig.Arity() {
		return RenderPrefix(v, args)
	}
	return RenderWithArgs(v, args)
}

// RenderPrefix renders v followed by its arguments.
func RenderPrefix(v any, args []string) string {
	if len(args) == 0 {
		return RenderSymbol(v)
	}
	return "(" + RenderSymbol(v) + " " + strings.Join(args, " ") + ")"
}

// EvalSymbol evaluates v applied to args.
func EvalSymbol(v any, args []any) (any, error) {
	if e, ok := v.(Evaluator); ok {
		return e.EvalSym(args)
	}
	return nil, NewCapabilityError("Evaluator", RenderSymbol(v))
}

func (s Sum[L, R]) EqualSym(other any) bool {
	o, ok := other.(Sum[L, R])
	if !ok || o.isRight != s.isRight {
		return false
	}
	return EqualSymbols(s.Value(), o.Value())
}

func (s Sum[L, R]) HashSym() uint64 { return HashSymbol(s.Value()) }

func (s Sum[L, R]) RenderSym() string { return RenderSymbol(s.Value()) }

func (s Sum[L, R]) RenderArgs(args []string) string { return RenderWithArgs(s.Value(), args) }

func (s Sum[L, R]) EvalSym(args []any) (any, error) { return EvalSymbol(s.Value(), args) }
