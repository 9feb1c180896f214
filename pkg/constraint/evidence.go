package constraint

import (
	"cmp"
	"fmt"
	"reflect"

	"github.com/funvibe/syntactic/pkg/syntax"
)

// Evidence certifies that a type satisfies P. The zero value certifies
// nothing; evidence is only produced by the functions of this package.
type Evidence[P Predicate] struct {
	typ reflect.Type
}

// Type is the certified type.
func (e Evidence[P]) Type() reflect.Type { return e.typ }

// Valid reports whether e certifies a type.
func (e Evidence[P]) Valid() bool { return e.typ != nil }

func (e Evidence[P]) String() string {
	return fmt.Sprintf("%s(%v)", zero[P]().Name(), e.typ)
}

// Prove checks P on t.
func Prove[P Predicate](t reflect.Type) (Evidence[P], error) {
	p := zero[P]()
	if t == nil || !p.Holds(t) {
		return Evidence[P]{}, NewEvidenceError(p, t)
	}
	return Evidence[P]{typ: t}, nil
}

// ProveFor checks P on T.
func ProveFor[P Predicate, T any]() (Evidence[P], error) {
	return Prove[P](syntax.TypeOf[T]())
}

// Number is the set of types Num holds for statically.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 | ~complex64 | ~complex128
}

// Basic is the set of types Show holds for statically.
type Basic interface {
	Number | ~bool | ~string
}

// The following produce evidence from Go's own constraints, so no check is
// needed at run time.

func Trivial[T any]() Evidence[Top]        { return Evidence[Top]{typ: syntax.TypeOf[T]()} }
func EqFor[T comparable]() Evidence[Eq]    { return Evidence[Eq]{typ: syntax.TypeOf[T]()} }
func OrdFor[T cmp.Ordered]() Evidence[Ord] { return Evidence[Ord]{typ: syntax.TypeOf[T]()} }
func NumFor[T Number]() Evidence[Num]      { return Evidence[Num]{typ: syntax.TypeOf[T]()} }
func ShowFor[T Basic]() Evidence[Show]     { return Evidence[Show]{typ: syntax.TypeOf[T]()} }

// Both joins evidence of P and Q for the same type.
func Both[P, Q Predicate](p Evidence[P], q Evidence[Q]) (Evidence[And[P, Q]], error) {
	if !p.Valid() || p.typ != q.typ {
		return Evidence[And[P, Q]]{}, fmt.Errorf("evidence of %s for %v and %s for %v: %w",
			zero[P]().Name(), p.typ, zero[Q]().Name(), q.typ, NewEvidenceError(And[P, Q]{}, q.typ))
	}
	return Evidence[And[P, Q]]{typ: p.typ}, nil
}

// WeakenLeft drops Q from P && Q.
func WeakenLeft[P, Q Predicate](e Evidence[And[P, Q]]) Evidence[P] {
	return Evidence[P]{typ: e.typ}
}

// WeakenRight drops P from P && Q.
func WeakenRight[P, Q Predicate](e Evidence[And[P, Q]]) Evidence[Q] {
	return Evidence[Q]{typ: e.typ}
}
