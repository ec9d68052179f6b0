package reflectx

import (
	"reflect"

	"golang.org/x/exp/slices"
)

// Methods returns the sorted names of the methods in the method set of the type of v.
// Only exported methods are listed; reflection does not expose the others.
func Methods(v any) []string {
	methodNames := make([]string, 0)

	t := reflect.TypeOf(v)
	if t == nil {
		return methodNames
	}
	for i := 0; i < t.NumMethod(); i++ {
		methodNames = append(methodNames, t.Method(i).Name)
	}

	slices.Sort(methodNames)

	return methodNames
}

// Fields returns the sorted names of the direct fields of the struct type t that
// can be resolved at the given access level: exported fields for AccessPublic,
// all fields for AccessPrivate. Non-struct types have no fields.
func Fields(t reflect.Type, access Access) []string {
	fieldNames := make([]string, 0)

	st, err := structType(t)
	if err != nil {
		return fieldNames
	}
	for i := 0; i < st.NumField(); i++ {
		f := st.Field(i)
		if f.IsExported() || access == AccessPrivate {
			fieldNames = append(fieldNames, f.Name)
		}
	}

	slices.Sort(fieldNames)

	return fieldNames
}

// Statics returns the sorted names of the static functions registered for t.
func Statics(t reflect.Type) []string {
	names := make([]string, 0)

	info, err := lookupType(t)
	if err != nil {
		return names
	}
	for _, f := range info.statics {
		if !slices.Contains(names, f.name) {
			names = append(names, f.name)
		}
	}

	slices.Sort(names)

	return names
}
