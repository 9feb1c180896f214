// Package constraint attaches static predicates to the result types of
// syntax trees and combines them across composed domains.
//
// A predicate is a type (Top, Eq, Ord, Num, Show, And[P, Q], or a user
// type implementing Predicate). Evidence[P] certifies that a result type
// satisfies P. Domains declare the predicate all their symbols satisfy by
// embedding Constrained[P]; Declared computes the predicate of composed
// domains and Subset proves that a declared predicate implies a weaker one.
package constraint

import (
	"fmt"
	"reflect"
)

// Predicate is a property of result types. Implementations must be
// comparable struct types; two predicates are the same when their types are.
type Predicate interface {
	Name() string
	Holds(t reflect.Type) bool
}

// Top holds for every type.
type Top struct{}

func (Top) Name() string              { return "Top" }
func (Top) Holds(t reflect.Type) bool { return true }

// Eq holds for comparable types.
type Eq struct{}

func (Eq) Name() string { return "Eq" }
func (Eq) Holds(t reflect.Type) bool {
	return t != nil && t.Comparable()
}

// Ord holds for types with a natural order: integers, floats and strings.
type Ord struct{}

func (Ord) Name() string { return "Ord" }
func (Ord) Holds(t reflect.Type) bool {
	if t == nil {
		return false
	}
	return isInteger(t.Kind()) || isFloat(t.Kind()) || t.Kind() == reflect.String
}

// Num holds for numeric types.
type Num struct{}

func (Num) Name() string { return "Num" }
func (Num) Holds(t reflect.Type) bool {
	if t == nil {
		return false
	}
	k := t.Kind()
	return isInteger(k) || isFloat(k) || k == reflect.Complex64 || k == reflect.Complex128
}

var stringer = reflect.TypeFor[fmt.Stringer]()

// Show holds for basic types and for types implementing fmt.Stringer.
type Show struct{}

func (Show) Name() string { return "Show" }
func (Show) Holds(t reflect.Type) bool {
	if t == nil {
		return false
	}
	if t.Implements(stringer) {
		return true
	}
	k := t.Kind()
	return k == reflect.Bool || k == reflect.String || Num{}.Holds(t)
}

// And is the intersection of P and Q.
type And[P, Q Predicate] struct{}

func (And[P, Q]) Name() string {
	p, q := zero[P](), zero[Q]()
	return "(" + p.Name() + " && " + q.Name() + ")"
}

func (And[P, Q]) Holds(t reflect.Type) bool {
	return zero[P]().Holds(t) && zero[Q]().Holds(t)
}

// Parts returns P and Q.
func (And[P, Q]) Parts() (Predicate, Predicate) {
	return zero[P](), zero[Q]()
}

// Conjunction is implemented by intersection predicates.
type Conjunction interface {
	Predicate
	Parts() (Predicate, Predicate)
}

func zero[P Predicate]() P {
	var p P
	return p
}

func samePredicate(a, b Predicate) bool {
	return reflect.TypeOf(a) == reflect.TypeOf(b)
}

func isInteger(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Uintptr
}

func isFloat(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}
