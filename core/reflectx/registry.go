package reflectx

import (
	"fmt"
	"go/token"
	"path"
	"reflect"
	"runtime"
	"strings"
	"sync"
)

// Member describes a symbol attached to a type at registration.
// Members are created only by Constructor, Static and Opens.
type Member func(*typeInfo) error

type function struct {
	name         string
	fn           reflect.Value
	sig          Signature
	returnsError bool
	access       Access
}

type typeInfo struct {
	typ          reflect.Type
	constructors []function
	statics      []function
	opens        []string
}

var registry = struct {
	sync.RWMutex
	types map[reflect.Type]*typeInfo
}{
	types: make(map[reflect.Type]*typeInfo),
}

// Register records constructors, static functions and the trust boundary for the
// struct type of sample (a value or a pointer). Go types carry neither constructors
// nor type-level functions, so they have to be declared here to be found by
// FindConstructor and FindStatic.
func Register(sample any, members ...Member) error {
	t, err := structType(reflect.TypeOf(sample))
	if err != nil {
		return err
	}

	info := &typeInfo{typ: t}
	for _, m := range members {
		if err = m(info); err != nil {
			return fmt.Errorf("register %s: %w", t, err)
		}
	}

	registry.Lock()
	defer registry.Unlock()

	if _, ok := registry.types[t]; ok {
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, t)
	}
	registry.types[t] = info

	return nil
}

// MustRegister is like Register but panics on error.
// It is intended for use in package init functions.
func MustRegister(sample any, members ...Member) {
	if err := Register(sample, members...); err != nil {
		panic(err)
	}
}

// Constructor declares fn as a constructor of the type. fn must return the type
// or a pointer to it, optionally followed by an error. The constructor is public
// when the function's own name is exported.
func Constructor(fn any) Member {
	return func(info *typeInfo) error {
		f, err := newFunction(funcName(fn), fn)
		if err != nil {
			return err
		}
		if len(f.sig.Out) != 1 || (f.sig.Out[0] != info.typ && f.sig.Out[0] != reflect.PointerTo(info.typ)) {
			return fmt.Errorf("%w: constructor %s does not return %s", ErrInvalidMember, f.name, info.typ)
		}
		for _, c := range info.constructors {
			if c.sig.Equal(f.sig) {
				return fmt.Errorf("%w: duplicate constructor %s", ErrInvalidMember, f.sig)
			}
		}
		info.constructors = append(info.constructors, f)
		return nil
	}
}

// Static declares fn as a type-level function named name.
// The function is public when name is exported.
func Static(name string, fn any) Member {
	return func(info *typeInfo) error {
		if name == "" {
			return fmt.Errorf("%w: empty static name", ErrInvalidMember)
		}
		f, err := newFunction(name, fn)
		if err != nil {
			return err
		}
		for _, s := range info.statics {
			if s.name == name && s.sig.Equal(f.sig) {
				return fmt.Errorf("%w: duplicate static %s%s", ErrInvalidMember, name, f.sig)
			}
		}
		info.statics = append(info.statics, f)
		return nil
	}
}

// Opens allows callers from packages under the given import path prefixes to
// obtain private access to the type with PrivateLookupIn.
func Opens(prefixes ...string) Member {
	return func(info *typeInfo) error {
		for _, p := range prefixes {
			if p == "" {
				return fmt.Errorf("%w: empty package prefix", ErrInvalidMember)
			}
		}
		info.opens = append(info.opens, prefixes...)
		return nil
	}
}

func lookupType(t reflect.Type) (*typeInfo, error) {
	st, err := structType(t)
	if err != nil {
		return nil, err
	}

	registry.RLock()
	defer registry.RUnlock()

	info, ok := registry.types[st]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTypeNotRegistered, st)
	}
	return info, nil
}

func newFunction(name string, fn any) (function, error) {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return function{}, fmt.Errorf("%w: %s is %T, not a function", ErrInvalidMember, name, fn)
	}
	if v.Type().IsVariadic() {
		return function{}, fmt.Errorf("%w: %s is variadic", ErrInvalidMember, name)
	}

	sig, returnsError := signatureOf(v.Type(), 0)
	access := AccessPublic
	if !token.IsExported(name) {
		access = AccessPrivate
	}

	return function{
		name:         name,
		fn:           v,
		sig:          sig,
		returnsError: returnsError,
		access:       access,
	}, nil
}

// funcName returns the unqualified symbol name of fn, e.g. "NewCountry",
// or "func1" for closures.
func funcName(fn any) string {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return ""
	}
	f := runtime.FuncForPC(v.Pointer())
	if f == nil {
		return ""
	}
	name := path.Base(f.Name())
	return name[strings.LastIndex(name, ".")+1:]
}

// structType returns the named struct type t, dereferencing one pointer level.
func structType(t reflect.Type) (reflect.Type, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: nil type", ErrTypeMismatch)
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct || t.Name() == "" {
		return nil, fmt.Errorf("%w: %s is not a named struct type", ErrTypeMismatch, t)
	}
	return t, nil
}
