package reflectx

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"

	"github.com/anoideaopen/methodhandles/core/stringsx"
	"github.com/anoideaopen/methodhandles/version"
)

// Resolver resolves handles for the symbols of a type. PublicLookup, Lookup and
// PrivateLookup implement it with the same method set and differ only in which
// unexported symbols they are allowed to reach.
type Resolver interface {
	FindGetter(t reflect.Type, name string, fieldType reflect.Type) (*Handle, error)
	FindSetter(t reflect.Type, name string, fieldType reflect.Type) (*Handle, error)
	FindVirtual(t reflect.Type, name string, sig Signature) (*Handle, error)
	FindStatic(t reflect.Type, name string, sig Signature) (*Handle, error)
	FindConstructor(t reflect.Type, in ...reflect.Type) (*Handle, error)
}

// PublicLookup resolves exported symbols only.
type PublicLookup struct {
	resolver
}

// Public returns a lookup that can only reach exported symbols.
func Public() *PublicLookup {
	return &PublicLookup{resolver{private: func(reflect.Type) bool { return false }}}
}

// Lookup resolves exported symbols of any type and unexported symbols of the types
// declared in the package that created it.
type Lookup struct {
	resolver
	pkg string
}

// MethodLookup returns a lookup bound to the package of its caller.
func MethodLookup() *Lookup {
	pkg := callerPackage(2)
	return &Lookup{
		resolver: resolver{private: func(t reflect.Type) bool { return t.PkgPath() == pkg }},
		pkg:      pkg,
	}
}

// Package returns the import path of the package the lookup was created in.
func (l *Lookup) Package() string { return l.pkg }

// PrivateLookup resolves every symbol of a single target type, exported or not.
// Other types are resolved as by PublicLookup.
type PrivateLookup struct {
	resolver
	target reflect.Type
	caller string
}

// PrivateLookupIn escalates caller to private access on the struct type t.
//
// The type must be registered, and the caller's package must either be the package
// that declares t or lie under one of the prefixes t was registered with via Opens.
// Any other request fails with ErrNotPrivileged.
func PrivateLookupIn(t reflect.Type, caller *Lookup) (*PrivateLookup, error) {
	if caller == nil {
		return nil, fmt.Errorf("%w: nil caller lookup", ErrNotPrivileged)
	}

	info, err := lookupType(t)
	if err != nil {
		return nil, err
	}

	if !trusts(info, caller.pkg) {
		return nil, fmt.Errorf("%w: %s is not open to %s", ErrNotPrivileged, info.typ, caller.pkg)
	}

	target := info.typ
	return &PrivateLookup{
		resolver: resolver{private: func(t reflect.Type) bool { return t == target }},
		target:   target,
		caller:   caller.pkg,
	}, nil
}

// Target returns the type the lookup has private access to.
func (p *PrivateLookup) Target() reflect.Type { return p.target }

// Caller returns the import path of the package that requested private access.
func (p *PrivateLookup) Caller() string { return p.caller }

func trusts(info *typeInfo, pkg string) bool {
	if pkg == "" {
		return false
	}
	if pkg == info.typ.PkgPath() {
		return true
	}
	for _, prefix := range info.opens {
		if stringsx.HasPathPrefix(pkg, prefix) {
			return true
		}
	}
	return false
}

// callerPackage returns the import path of the package of the function skip frames
// above it. The main package is reported by its real import path when build
// information is available.
func callerPackage(skip int) string {
	pc, _, _, ok := runtime.Caller(skip)
	if !ok {
		return ""
	}
	f := runtime.FuncForPC(pc)
	if f == nil {
		return ""
	}

	pkg := packageOf(f.Name())
	if pkg == "main" {
		if bi, err := version.BuildInfo(); err == nil && bi.Path != "" {
			return bi.Path
		}
	}
	return pkg
}

// packageOf extracts the import path from a fully qualified function name such as
// "github.com/a/b.(*T).M.func1". Dots in the last path element are escaped as %2e by
// the runtime.
func packageOf(funcName string) string {
	slash := strings.LastIndex(funcName, "/")
	dot := strings.Index(funcName[slash+1:], ".")
	if dot < 0 {
		return ""
	}
	return strings.ReplaceAll(funcName[:slash+1+dot], "%2e", ".")
}
