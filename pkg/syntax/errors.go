package syntax

import (
	"fmt"
	"reflect"
)

// SignatureError indicates an application whose argument does not fit
// the signature of the function tree.
type SignatureError struct {
	Fn     SigRep
	Arg    SigRep
	Reason string
}

func (e *SignatureError) Error() string {
	return fmt.Sprintf("cannot apply %s to %s: %s", e.Fn, e.Arg, e.Reason)
}

func NewSignatureError(fn, arg SigRep, reason string) *SignatureError {
	return &SignatureError{Fn: fn, Arg: arg, Reason: reason}
}

// ArityError indicates a smart constructor called with the wrong number of arguments.
type ArityError struct {
	Sig  SigRep
	Want int
	Got  int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("arity mismatch for %s: expected %d arguments, got %d", e.Sig, e.Want, e.Got)
}

func NewArityError(sig SigRep, got int) *ArityError {
	return &ArityError{Sig: sig, Want: sig.Arity(), Got: got}
}

// CompositionError names a sub-domain and composed domain that do not fit together.
type CompositionError struct {
	Sub    reflect.Type
	Sup    reflect.Type
	Reason string
}

func (e *CompositionError) Error() string {
	return fmt.Sprintf("cannot compose %s into %s: %s", typeName(e.Sub), typeName(e.Sup), e.Reason)
}

func NewCompositionError(sub, sup reflect.Type, reason string) *CompositionError {
	return &CompositionError{Sub: sub, Sup: sup, Reason: reason}
}

// CapabilityError indicates a symbol that lacks the capability an interpreter needs.
type CapabilityError struct {
	Capability string
	Symbol     string
}

func (e *CapabilityError) Error() string {
	return fmt.Sprintf("symbol %s does not implement %s", e.Symbol, e.Capability)
}

func NewCapabilityError(capability, symbol string) *CapabilityError {
	return &CapabilityError{Capability: capability, Symbol: symbol}
}
