package syntax

import (
	"fmt"
	"reflect"
)

// Sum is the union of the symbol domains L and R. A value holds a symbol of
// exactly one side. Larger unions nest to the right: Sum[A, Sum[B, C]].
type Sum[L, R any] struct {
	left    L
	right   R
	isRight bool
}

// InjL places l in the left branch.
func InjL[L, R any](l L) Sum[L, R] { return Sum[L, R]{left: l} }

// InjR places r in the right branch.
func InjR[L, R any](r R) Sum[L, R] { return Sum[L, R]{right: r, isRight: true} }

// Left returns the left symbol if s holds one.
func (s Sum[L, R]) Left() (L, bool) { return s.left, !s.isRight }

// Right returns the right symbol if s holds one.
func (s Sum[L, R]) Right() (R, bool) { return s.right, s.isRight }

func (s Sum[L, R]) IsRight() bool { return s.isRight }

// Value returns the symbol held by s.
func (s Sum[L, R]) Value() any {
	if s.isRight {
		return s.right
	}
	return s.left
}

// Branches describes the two member domains.
func (Sum[L, R]) Branches() (reflect.Type, reflect.Type) {
	return TypeOf[L](), TypeOf[R]()
}

func (s Sum[L, R]) String() string { return RenderSymbol(s.Value()) }

// Branching is implemented by union domains.
type Branching interface {
	Branches() (left, right reflect.Type)
}

// Empty is the domain without symbols.
type Empty interface {
	empty()
}

// Projector is implemented by domains that contain other domains.
// target is a non-nil *T; ProjectSym reports the contained symbol of
// domain T, if any.
type Projector interface {
	ProjectSym(target any) (any, bool)
}

func (s Sum[L, R]) ProjectSym(target any) (any, bool) {
	if s.isRight {
		return projectBranch(s.right, target)
	}
	return projectBranch(s.left, target)
}

func projectBranch[B any](v B, target any) (any, bool) {
	if _, ok := target.(*B); ok {
		return v, true
	}
	if p, ok := any(v).(Projector); ok {
		return p.ProjectSym(target)
	}
	return nil, false
}

// Project recovers a symbol of domain T from d. It succeeds when D is T or
// when d is a union (or wrapper) holding a T in its active branch. Any other
// target reports false; projection never fails loudly.
func Project[T, D any](d D) (T, bool) {
	var zero T
	if _, ok := any(&zero).(*D); ok {
		t, _ := any(d).(T)
		return t, true
	}
	if p, ok := any(d).(Projector); ok {
		if v, ok := p.ProjectSym(&zero); ok {
			t, _ := v.(T)
			return t, true
		}
	}
	return zero, false
}

// ProjectNode projects the symbol of a leaf. Applications never project:
// projection targets single symbols, not partially applied structures.
func ProjectNode[T, D any](n Node[D]) (T, bool) {
	if leaf, ok := n.(*Leaf[D]); ok {
		return Project[T, D](leaf.Symbol)
	}
	var zero T
	return zero, false
}

// Prj is ProjectNode on a typed tree.
func Prj[T, D any, S Signature](a AST[D, S]) (T, bool) {
	return ProjectNode[T](a.root)
}

// Injection places symbols of Sub into the composed domain D along a
// path fixed when the injection is created.
type Injection[Sub, D any] struct {
	path  []bool
	valid bool
}

type injector interface {
	pathTo(target any) ([]bool, bool)
	inject(path []bool, v any) any
}

func (Sum[L, R]) pathTo(target any) ([]bool, bool) {
	if _, ok := target.(*L); ok {
		return []bool{false}, true
	}
	var l L
	if u, ok := any(l).(injector); ok {
		if p, ok := u.pathTo(target); ok {
			return append([]bool{false}, p...), true
		}
	}
	if _, ok := target.(*R); ok {
		return []bool{true}, true
	}
	var r R
	if u, ok := any(r).(injector); ok {
		if p, ok := u.pathTo(target); ok {
			return append([]bool{true}, p...), true
		}
	}
	return nil, false
}

func (Sum[L, R]) inject(path []bool, v any) any {
	if path[0] {
		return InjR[L](branchValue[R](path[1:], v))
	}
	return InjL[L, R](branchValue[L](path[1:], v))
}

func branchValue[B any](path []bool, v any) B {
	if len(path) == 0 {
		b, _ := v.(B)
		return b
	}
	var zero B
	b, _ := any(zero).(injector).inject(path, v).(B)
	return b
}

// NewInjection checks that Sub is D itself or a member of the union D.
// When Sub occurs several times the leftmost, outermost occurrence is used.
func NewInjection[Sub, D any]() (Injection[Sub, D], error) {
	var sub Sub
	if _, ok := any(&sub).(*D); ok {
		return Injection[Sub, D]{valid: true}, nil
	}
	var d D
	if u, ok := any(d).(injector); ok {
		if path, ok := u.pathTo(&sub); ok {
			return Injection[Sub, D]{path: path, valid: true}, nil
		}
	}
	return Injection[Sub, D]{}, NewCompositionError(TypeOf[Sub](), TypeOf[D](), "not a member of the domain")
}

// MustInjection is NewInjection for package level composition; it panics
// when Sub is not part of D.
func MustInjection[Sub, D any]() Injection[Sub, D] {
	in, err := NewInjection[Sub, D]()
	if err != nil {
		panic(err)
	}
	return in
}

// Member reports whether Sub can be injected into D.
func Member[Sub, D any]() bool {
	_, err := NewInjection[Sub, D]()
	return err == nil
}

// Inject places v in D.
func (in Injection[Sub, D]) Inject(v Sub) D {
	if !in.valid {
		panic(fmt.Sprintf("syntax: use of unchecked Injection[%s, %s]", typeName(TypeOf[Sub]()), typeName(TypeOf[D]())))
	}
	if len(in.path) == 0 {
		d, _ := any(v).(D)
		return d
	}
	return branchValue[D](in.path, v)
}

// Path reports the branches taken by the injection, false for left.
func (in Injection[Sub, D]) Path() []bool {
	return append([]bool(nil), in.path...)
}
