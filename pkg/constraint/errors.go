package constraint

import (
	"fmt"
	"reflect"
)

// EvidenceError indicates a type that does not satisfy a predicate.
type EvidenceError struct {
	Predicate string
	Type      reflect.Type
}

func (e *EvidenceError) Error() string {
	return fmt.Sprintf("type %v does not satisfy %s", e.Type, e.Predicate)
}

func NewEvidenceError(p Predicate, t reflect.Type) *EvidenceError {
	return &EvidenceError{Predicate: p.Name(), Type: t}
}

// SubsetError indicates that no chain of weakenings leads from Sup to Sub.
type SubsetError struct {
	Sub string
	Sup string
}

func (e *SubsetError) Error() string {
	return fmt.Sprintf("cannot derive %s from %s", e.Sub, e.Sup)
}

func NewSubsetError(sub, sup Predicate) *SubsetError {
	return &SubsetError{Sub: sub.Name(), Sup: sup.Name()}
}

// DeclarationError indicates a wrapper whose stated inner predicate is not
// the one the wrapped domain declares.
type DeclarationError struct {
	Domain reflect.Type
	Want   string
	Got    string
}

func (e *DeclarationError) Error() string {
	return fmt.Sprintf("domain %v declares %s, not %s", e.Domain, e.Got, e.Want)
}

func NewDeclarationError(domain reflect.Type, want, got Predicate) *DeclarationError {
	return &DeclarationError{Domain: domain, Want: want.Name(), Got: got.Name()}
}
