package reflectx

import (
	"fmt"
	"math"
	"reflect"
	"unsafe"
)

// Kind identifies the kind of symbol a Handle is bound to.
type Kind int

const (
	KindGetter Kind = iota + 1
	KindSetter
	KindVirtual
	KindStatic
	KindConstructor
)

func (k Kind) String() string {
	switch k {
	case KindGetter:
		return "getter"
	case KindSetter:
		return "setter"
	case KindVirtual:
		return "virtual"
	case KindStatic:
		return "static"
	case KindConstructor:
		return "constructor"
	default:
		return "unknown"
	}
}

// Access is the visibility level a symbol was resolved at.
type Access int

const (
	AccessPublic Access = iota
	AccessPrivate
)

func (a Access) String() string {
	if a == AccessPrivate {
		return "private"
	}
	return "public"
}

type receiverMode int

const (
	receiverNone  receiverMode = iota
	receiverRead               // T or *T
	receiverWrite              // *T only
)

// Handle is a resolved reference to a field accessor, method, static function or
// constructor of a type. Handles are immutable and may be shared between goroutines;
// the receiver, if any, is passed as the first argument of every invocation.
type Handle struct {
	kind   Kind
	owner  reflect.Type
	name   string
	access Access
	sig    Signature

	recv  receiverMode
	bound reflect.Value

	fn           reflect.Value
	returnsError bool

	field []int
}

// Kind returns the kind of symbol the handle is bound to.
func (h *Handle) Kind() Kind { return h.kind }

// Owner returns the type the symbol was resolved on.
func (h *Handle) Owner() reflect.Type { return h.owner }

// Name returns the symbol name.
func (h *Handle) Name() string { return h.name }

// Access returns the visibility level the symbol was resolved at.
func (h *Handle) Access() Access { return h.access }

// Type returns the invocation signature of the handle. For getters, setters and
// methods the first parameter is the receiver, unless the handle is bound.
func (h *Handle) Type() Signature {
	if h.recv == receiverNone || h.bound.IsValid() {
		return h.sig
	}
	in := make([]reflect.Type, 0, len(h.sig.In)+1)
	in = append(in, reflect.PointerTo(h.owner))
	in = append(in, h.sig.In...)
	return Signature{In: in, Out: h.sig.Out}
}

func (h *Handle) String() string {
	return fmt.Sprintf("%s %s.%s%s", h.kind, h.owner, h.name, h.sig)
}

// Bind returns a copy of the handle with its receiver fixed to v.
// The returned handle takes only the declared parameters.
func (h *Handle) Bind(v any) (*Handle, error) {
	if h.recv == receiverNone {
		return nil, fmt.Errorf("%w: %s has no receiver", ErrTypeMismatch, h)
	}
	if h.bound.IsValid() {
		return nil, fmt.Errorf("%w: %s is already bound", ErrTypeMismatch, h)
	}

	rv, err := h.receiver(v)
	if err != nil {
		return nil, err
	}

	bound := *h
	bound.bound = rv
	return &bound, nil
}

// Invoke executes the bound operation with the given arguments.
//
// Arguments must be assignable to the parameter types; numeric arguments are
// converted when the conversion is lossless and nil is accepted for nillable types.
// Invoke returns nil for operations without results, the value itself for
// a single result and a []any for several results. A panic raised by the called
// code, or a non-nil trailing error result, is returned as ErrInvocation.
func (h *Handle) Invoke(args ...any) (any, error) {
	return h.InvokeWithArguments(args)
}

// InvokeWithArguments is like Invoke but takes the arguments as a slice.
func (h *Handle) InvokeWithArguments(args []any) (any, error) {
	out, err := h.invoke(args)
	if err != nil {
		return nil, err
	}

	switch len(out) {
	case 0:
		return nil, nil
	case 1:
		return out[0], nil
	default:
		return out, nil
	}
}

// InvokeStrings decodes every argument into the corresponding parameter type
// and invokes the handle. Handles with a receiver must be bound first.
func (h *Handle) InvokeStrings(args ...string) (any, error) {
	in, err := h.decode(args)
	if err != nil {
		return nil, err
	}

	return h.InvokeWithArguments(in)
}

func (h *Handle) decode(args []string) ([]any, error) {
	if h.recv != receiverNone && !h.bound.IsValid() {
		return nil, fmt.Errorf("%w: %s: receiver is not bound", ErrIncorrectArgumentCount, h)
	}
	if len(args) != len(h.sig.In) {
		return nil, fmt.Errorf(
			"%w: found %d but expected %d: %s",
			ErrIncorrectArgumentCount,
			len(args),
			len(h.sig.In),
			h,
		)
	}

	in := make([]any, len(args))
	for i, arg := range args {
		v, err := valueOf(arg, h.sig.In[i])
		if err != nil {
			return nil, fmt.Errorf("%w: %s, argument %d", err, h, i)
		}
		in[i] = v.Interface()
	}

	return in, nil
}

func (h *Handle) invoke(args []any) (out []any, err error) {
	var recv reflect.Value
	if h.recv != receiverNone {
		if h.bound.IsValid() {
			recv = h.bound
		} else {
			if len(args) == 0 {
				return nil, fmt.Errorf("%w: %s: missing receiver", ErrIncorrectArgumentCount, h)
			}
			if recv, err = h.receiver(args[0]); err != nil {
				return nil, err
			}
			args = args[1:]
		}
	}

	if len(args) != len(h.sig.In) {
		return nil, fmt.Errorf(
			"%w: found %d but expected %d: %s",
			ErrIncorrectArgumentCount,
			len(args),
			len(h.sig.In),
			h,
		)
	}

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		if in[i], err = argument(arg, h.sig.In[i]); err != nil {
			return nil, fmt.Errorf("%w: %s, argument %d", err, h, i)
		}
	}

	defer func() {
		if r := recover(); r != nil {
			out = nil
			if perr, ok := r.(error); ok {
				err = fmt.Errorf("%w: %s: panic: %w", ErrInvocation, h, perr)
				return
			}
			err = fmt.Errorf("%w: %s: panic: %v", ErrInvocation, h, r)
		}
	}()

	switch h.kind {
	case KindGetter:
		return []any{h.fieldOf(recv).Interface()}, nil
	case KindSetter:
		h.fieldOf(recv).Set(in[0])
		return nil, nil
	case KindVirtual:
		in = append([]reflect.Value{recv}, in...)
	}

	return h.results(h.fn.Call(in))
}

func (h *Handle) results(res []reflect.Value) ([]any, error) {
	if h.returnsError {
		last := res[len(res)-1]
		if !last.IsNil() {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvocation, h, last.Interface().(error)) //nolint:forcetypeassert
		}
		res = res[:len(res)-1]
	}

	out := make([]any, len(res))
	for i, v := range res {
		out[i] = v.Interface()
	}
	return out, nil
}

// receiver converts v into a receiver value for the handle.
// Read access accepts both T and *T, write access requires *T.
func (h *Handle) receiver(v any) (reflect.Value, error) {
	if v == nil {
		return reflect.Value{}, fmt.Errorf("%w: %s: nil receiver", ErrTypeMismatch, h)
	}

	rv := reflect.ValueOf(v)
	switch {
	case rv.Type() == reflect.PointerTo(h.owner):
		if rv.IsNil() {
			return reflect.Value{}, fmt.Errorf("%w: %s: nil receiver", ErrTypeMismatch, h)
		}
		return rv, nil

	case rv.Type() == h.owner && h.recv == receiverRead:
		// copy into addressable memory so that unexported fields can be read
		cp := reflect.New(h.owner)
		cp.Elem().Set(rv)
		return cp, nil
	}

	return reflect.Value{}, fmt.Errorf("%w: %s: receiver of type %T", ErrTypeMismatch, h, v)
}

// fieldOf returns a settable view of the field of the pointer receiver recv.
func (h *Handle) fieldOf(recv reflect.Value) reflect.Value {
	fv := recv.Elem().FieldByIndex(h.field)
	if fv.CanSet() {
		return fv
	}
	return reflect.NewAt(fv.Type(), unsafe.Pointer(fv.UnsafeAddr())).Elem()
}

// argument converts arg into a value of type t.
func argument(arg any, t reflect.Type) (reflect.Value, error) {
	if arg == nil {
		switch t.Kind() {
		case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
			return reflect.Zero(t), nil
		}
		return reflect.Value{}, fmt.Errorf("%w: nil for type %s", ErrTypeMismatch, t)
	}

	v := reflect.ValueOf(arg)
	if v.Type().AssignableTo(t) {
		return v, nil
	}

	if isNumeric(v.Kind()) && isNumeric(t.Kind()) && v.CanConvert(t) {
		if changesSign(v, t) {
			return reflect.Value{}, fmt.Errorf("%w: %v changes sign as %s", ErrTypeMismatch, arg, t)
		}
		cv := v.Convert(t)
		if cv.Convert(v.Type()).Equal(v) {
			return cv, nil
		}
		return reflect.Value{}, fmt.Errorf("%w: %v overflows %s", ErrTypeMismatch, arg, t)
	}

	return reflect.Value{}, fmt.Errorf("%w: %T is not assignable to %s", ErrTypeMismatch, arg, t)
}

// changesSign reports whether converting the integer v to the integer type t
// would reinterpret its sign bit. A round trip through Convert cannot detect it.
func changesSign(v reflect.Value, t reflect.Type) bool {
	switch {
	case v.CanInt() && isUnsigned(t.Kind()):
		return v.Int() < 0
	case v.CanUint() && isSigned(t.Kind()):
		return v.Uint() > uint64(math.MaxInt64)>>(64-t.Bits())
	default:
		return false
	}
}

func isSigned(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Int64
}

func isUnsigned(k reflect.Kind) bool {
	return k >= reflect.Uint && k <= reflect.Uintptr
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
