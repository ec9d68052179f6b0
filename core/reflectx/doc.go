// Package reflectx resolves and invokes handles to the fields, methods, static
// functions and constructors of struct types.
//
// Three lookups share the same operations and differ in what they may reach:
//
//   - Public resolves exported symbols only.
//   - MethodLookup resolves, in addition, the unexported symbols of the types declared
//     in the package that called it.
//   - PrivateLookupIn escalates a MethodLookup to every symbol of one registered type,
//     provided the caller is inside the type's trust boundary (see Opens).
//
// Go types have no constructors and no type-level functions, so both are declared
// with Register, usually from the init function of the package that owns the type:
//
//	func init() {
//	    reflectx.MustRegister(Country{},
//	        reflectx.Constructor(NewCountry),
//	        reflectx.Constructor(NewEmptyCountry),
//	        reflectx.Static("Details", Details),
//	        reflectx.Opens("github.com/anoideaopen/methodhandles"),
//	    )
//	}
//
// A handle is resolved once and invoked any number of times:
//
//	h, err := reflectx.Public().FindVirtual(reflectx.TypeFor[model.Country](), "GetName",
//	    reflectx.MethodType(reflectx.TypeFor[string]()))
//	name, err := h.Invoke(country)
//
// Errors from lookups and handles match one of ErrResolution, ErrAccess,
// ErrTypeMismatch or ErrInvocation.
package reflectx
