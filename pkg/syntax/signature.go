package syntax

import (
	"fmt"
	"reflect"
	"strings"
)

// Signature is the type-level arity of a symbol.
// Full[R] is a symbol that yields R without further arguments,
// Arrow[A, S] expects one argument of type A and continues with S.
type Signature interface {
	Witness() SigRep
	signature()
}

// Full is the signature of a fully applied symbol with result type R.
type Full[R any] struct{}

func (Full[R]) signature() {}

// Witness returns the runtime description of the signature.
func (Full[R]) Witness() SigRep { return FullRep{Type: TypeOf[R]()} }

// Arrow is the signature A :-> S.
type Arrow[A any, S Signature] struct{}

func (Arrow[A, S]) signature() {}

// Witness returns the runtime description of the signature.
func (Arrow[A, S]) Witness() SigRep {
	var rest S
	return ArrowRep{Arg: TypeOf[A](), Rest: rest.Witness()}
}

// SignatureOf returns the witness of S.
func SignatureOf[S Signature]() SigRep {
	var s S
	return s.Witness()
}

// Typed is implemented by symbols whose signature is fixed by their type.
type Typed[S Signature] interface {
	Signature() S
}

// TypeOf describes T. A nil interface type is described as well,
// so TypeOf works for domain interfaces.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}

// SigRep is the runtime witness of a signature.
// FullRep is the terminal, ArrowRep one argument layer.
type SigRep interface {
	String() string
	Equal(SigRep) bool
	Arity() int
	Result() reflect.Type
	sigRep()
}

// FullRep is the witness of Full[R].
type FullRep struct {
	Type reflect.Type
}

func (FullRep) sigRep()                {}
func (r FullRep) Arity() int           { return 0 }
func (r FullRep) Result() reflect.Type { return r.Type }
func (r FullRep) String() string       { return "Full " + typeName(r.Type) }

func (r FullRep) Equal(other SigRep) bool {
	o, ok := other.(FullRep)
	return ok && o.Type == r.Type
}

// ArrowRep is the witness of Arrow[A, S].
type ArrowRep struct {
	Arg  reflect.Type
	Rest SigRep
}

func (ArrowRep) sigRep() {}

func (r ArrowRep) Arity() int { return 1 + r.Rest.Arity() }

func (r ArrowRep) Result() reflect.Type { return r.Rest.Result() }

func (r ArrowRep) String() string {
	return fmt.Sprintf("%s :-> %s", typeName(r.Arg), r.Rest.String())
}

func (r ArrowRep) Equal(other SigRep) bool {
	o, ok := other.(ArrowRep)
	if !ok {
		return false
	}
	return o.Arg == r.Arg && r.Rest.Equal(o.Rest)
}

// MakeSig builds the witness args[0] :-> ... :-> Full result.
func MakeSig(result reflect.Type, args ...reflect.Type) SigRep {
	if len(args) == 0 {
		return FullRep{Type: result}
	}
	return ArrowRep{Arg: args[0], Rest: MakeSig(result, args[1:]...)}
}

// ArgTypes lists the argument types of a witness in application order.
func ArgTypes(sig SigRep) []reflect.Type {
	var args []reflect.Type
	for {
		a, ok := sig.(ArrowRep)
		if !ok {
			return args
		}
		args = append(args, a.Arg)
		sig = a.Rest
	}
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	name := t.String()
	if i := strings.LastIndexByte(name, '.'); i >= 0 && !strings.ContainsAny(name, "[]*") {
		return name[i+1:]
	}
	return name
}
