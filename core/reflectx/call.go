package reflectx

import (
	"fmt"
	"reflect"
)

// Call invokes the exported method named method on v, decoding the string arguments
// into the method's parameter types as InvokeStrings does. The method is resolved by
// name alone, with whatever signature it has.
//
// Call returns the method's results, without a trailing error result; a non-nil
// error result is returned as ErrInvocation.
//
// Example:
//
//	type Counter struct {
//	    N int
//	}
//
//	func (c *Counter) Add(delta int) int {
//	    c.N += delta
//	    return c.N
//	}
//
//	out, err := reflectx.Call(&Counter{}, "Add", "5")
//	// out[0] == 5
func Call(v any, method string, args ...string) ([]any, error) {
	if v == nil {
		return nil, fmt.Errorf("%w: nil value: call %s", ErrTypeMismatch, method)
	}

	st, err := structType(reflect.TypeOf(v))
	if err != nil {
		return nil, fmt.Errorf("%w: call %s", err, method)
	}

	m, ok := reflect.PointerTo(st).MethodByName(method)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMethodNotFound, method)
	}

	sig, _ := signatureOf(m.Type, 1)
	h, err := Public().FindVirtual(st, method, sig)
	if err != nil {
		return nil, err
	}

	if h, err = h.Bind(v); err != nil {
		return nil, err
	}

	in, err := h.decode(args)
	if err != nil {
		return nil, err
	}

	return h.invoke(in)
}
