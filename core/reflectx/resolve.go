package reflectx

import (
	"fmt"
	"go/token"
	"reflect"
)

// resolver implements the lookup operations shared by all lookups.
// private reports whether unexported symbols of the given type may be resolved.
type resolver struct {
	private func(reflect.Type) bool
}

// FindGetter resolves a handle that reads the field name of type fieldType.
// The handle is invoked with a *T or T receiver and returns the field value.
func (r resolver) FindGetter(t reflect.Type, name string, fieldType reflect.Type) (*Handle, error) {
	return r.findField(KindGetter, t, name, fieldType)
}

// FindSetter resolves a handle that writes the field name of type fieldType.
// The handle is invoked with a *T receiver and the new value.
func (r resolver) FindSetter(t reflect.Type, name string, fieldType reflect.Type) (*Handle, error) {
	return r.findField(KindSetter, t, name, fieldType)
}

func (r resolver) findField(kind Kind, t reflect.Type, name string, fieldType reflect.Type) (*Handle, error) {
	st, err := structType(t)
	if err != nil {
		return nil, err
	}

	sf, ok := st.FieldByName(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s", ErrFieldNotFound, st, name)
	}

	access, err := r.access(st, sf.IsExported(), "field", name)
	if err != nil {
		return nil, err
	}

	if sf.Type != fieldType {
		return nil, fmt.Errorf("%w: field %s.%s is %s, not %s", ErrTypeMismatch, st, name, sf.Type, fieldType)
	}

	h := &Handle{
		kind:   kind,
		owner:  st,
		name:   name,
		access: access,
		field:  sf.Index,
	}
	if kind == KindGetter {
		h.sig = MethodType(sf.Type)
		h.recv = receiverRead
	} else {
		h.sig = MethodType(nil, sf.Type)
		h.recv = receiverWrite
	}

	return h, nil
}

// FindVirtual resolves a handle to the method name of the method set of *T
// with the given signature. The receiver is passed as the first argument.
// Methods declared on *T require a *T receiver.
//
// Unexported methods are never reachable: reflection does not expose them.
func (r resolver) FindVirtual(t reflect.Type, name string, sig Signature) (*Handle, error) {
	st, err := structType(t)
	if err != nil {
		return nil, err
	}

	if !token.IsExported(name) {
		if _, err = r.access(st, false, "method", name); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %s.%s is unexported", ErrMethodNotFound, st, name)
	}

	m, ok := reflect.PointerTo(st).MethodByName(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s", ErrMethodNotFound, st, name)
	}

	msig, returnsError := signatureOf(m.Type, 1)
	if !msig.Equal(sig) {
		return nil, fmt.Errorf("%w: %s.%s%s, found %s", ErrMethodNotFound, st, name, sig, msig)
	}

	recv := receiverWrite
	if _, ok = st.MethodByName(name); ok {
		recv = receiverRead
	}

	return &Handle{
		kind:         KindVirtual,
		owner:        st,
		name:         name,
		access:       AccessPublic,
		sig:          msig,
		recv:         recv,
		fn:           m.Func,
		returnsError: returnsError,
	}, nil
}

// FindStatic resolves a handle to a static function registered for the type.
func (r resolver) FindStatic(t reflect.Type, name string, sig Signature) (*Handle, error) {
	info, err := lookupType(t)
	if err != nil {
		return nil, err
	}

	var found bool
	for _, f := range info.statics {
		if f.name != name {
			continue
		}
		found = true

		if _, err = r.access(info.typ, f.access == AccessPublic, "static", name); err != nil {
			return nil, err
		}
		if f.sig.Equal(sig) {
			return r.function(KindStatic, info, f), nil
		}
	}

	if found {
		return nil, fmt.Errorf("%w: static %s.%s%s", ErrMethodNotFound, info.typ, name, sig)
	}
	return nil, fmt.Errorf("%w: static %s.%s", ErrMethodNotFound, info.typ, name)
}

// FindConstructor resolves a handle to the constructor registered for the type
// with exactly the given parameter types.
func (r resolver) FindConstructor(t reflect.Type, in ...reflect.Type) (*Handle, error) {
	info, err := lookupType(t)
	if err != nil {
		return nil, err
	}

	want := Signature{In: in}
	for _, f := range info.constructors {
		if !(Signature{In: f.sig.In}).Equal(want) {
			continue
		}
		if _, err = r.access(info.typ, f.access == AccessPublic, "constructor", f.name); err != nil {
			return nil, err
		}
		return r.function(KindConstructor, info, f), nil
	}

	return nil, fmt.Errorf("%w: %s%s", ErrConstructorNotFound, info.typ, want)
}

func (r resolver) function(kind Kind, info *typeInfo, f function) *Handle {
	return &Handle{
		kind:         kind,
		owner:        info.typ,
		name:         f.name,
		access:       f.access,
		sig:          f.sig,
		fn:           f.fn,
		returnsError: f.returnsError,
	}
}

func (r resolver) access(owner reflect.Type, exported bool, what, name string) (Access, error) {
	if exported {
		return AccessPublic, nil
	}
	if r.private == nil || !r.private(owner) {
		return 0, fmt.Errorf("%w: %s %s.%s is not accessible", ErrAccess, what, owner, name)
	}
	return AccessPrivate, nil
}
