package reflectx

import (
	"reflect"
	"strings"

	"golang.org/x/exp/slices"
)

var errorType = TypeFor[error]()

// TypeFor returns the reflect.Type that represents the type argument T.
// Unlike reflect.TypeOf it works for interface types as well.
func TypeFor[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Signature describes the parameter and result types of a handle.
// A trailing error result of the underlying function is not part of the
// signature; a non-nil error is reported by Invoke as ErrInvocation.
type Signature struct {
	In  []reflect.Type
	Out []reflect.Type
}

// MethodType builds a signature with the given result type and parameter types.
// A nil out means the signature has no results.
func MethodType(out reflect.Type, in ...reflect.Type) Signature {
	sig := Signature{In: in}
	if out != nil {
		sig.Out = []reflect.Type{out}
	}
	return sig
}

// Equal reports whether both signatures have identical parameter and result types.
func (s Signature) Equal(other Signature) bool {
	return slices.Equal(s.In, other.In) && slices.Equal(s.Out, other.Out)
}

func (s Signature) String() string {
	var b strings.Builder
	b.WriteString("(")
	for i, t := range s.In {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(t.String())
	}
	b.WriteString(")")
	switch len(s.Out) {
	case 0:
	case 1:
		b.WriteString(" ")
		b.WriteString(s.Out[0].String())
	default:
		b.WriteString(" (")
		for i, t := range s.Out {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(t.String())
		}
		b.WriteString(")")
	}
	return b.String()
}

// signatureOf returns the signature of the function type ft, skipping the
// first skip parameters (the receiver of a method expression), and
// reports whether the function ends with an error result.
func signatureOf(ft reflect.Type, skip int) (Signature, bool) {
	var sig Signature
	for i := skip; i < ft.NumIn(); i++ {
		sig.In = append(sig.In, ft.In(i))
	}

	numOut := ft.NumOut()
	returnsError := numOut > 0 && ft.Out(numOut-1) == errorType
	if returnsError {
		numOut--
	}
	for i := 0; i < numOut; i++ {
		sig.Out = append(sig.Out, ft.Out(i))
	}

	return sig, returnsError
}
