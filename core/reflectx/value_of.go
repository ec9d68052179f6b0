package reflectx

import (
	"encoding"
	"encoding/json"
	"fmt"
	"reflect"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

// Validator is implemented by argument types that can check themselves after decoding.
type Validator interface {
	Validate() error
}

// decoder tries to decode raw into the value pointed to by ptr.
// It reports false when it does not apply to the type.
type decoder func(raw []byte, ptr any) (bool, error)

// decoders are tried in order; the first one that applies and succeeds wins.
var decoders = []decoder{
	decodeJSON,
	decodeText,
	decodeProto,
	decodeBinary,
}

// valueOf converts the string s to a value of type t.
//
// String kinds are taken verbatim. Otherwise s is decoded as JSON (protojson for
// proto.Message), then with encoding.TextUnmarshaler, proto.Unmarshal and
// encoding.BinaryUnmarshaler. Pointer types are allocated. A decoded value
// implementing Validator must validate.
func valueOf(s string, t reflect.Type) (reflect.Value, error) {
	raw := []byte(s)
	isPointer := t.Kind() == reflect.Pointer

	var ptr, out reflect.Value
	if isPointer {
		ptr = reflect.New(t.Elem())
		out = ptr
	} else {
		ptr = reflect.New(t)
		out = ptr.Elem()
	}

	if ptr.Elem().Kind() == reflect.String {
		ptr.Elem().SetString(s)
		return out, nil
	}

	for _, decode := range decoders {
		ok, err := decode(raw, ptr.Interface())
		if !ok || err != nil {
			continue
		}
		if err = validate(out); err != nil {
			return out, fmt.Errorf("%w: '%s': validation failed: '%v'", ErrInvalidArgumentValue, s, err)
		}
		return out, nil
	}

	return out, fmt.Errorf("%w: '%s': for type '%s'", ErrInvalidArgumentValue, s, t.String())
}

func validate(v reflect.Value) error {
	if v.Kind() == reflect.Pointer && v.IsNil() {
		return nil
	}
	if validator, ok := v.Interface().(Validator); ok {
		return validator.Validate()
	}
	return nil
}

// decodeJSON also covers numbers, booleans and null, which are valid JSON on their own.
func decodeJSON(raw []byte, ptr any) (bool, error) {
	if !json.Valid(raw) {
		return false, nil
	}
	if msg, ok := ptr.(proto.Message); ok {
		return true, protojson.Unmarshal(raw, msg)
	}
	return true, json.Unmarshal(raw, ptr)
}

func decodeText(raw []byte, ptr any) (bool, error) {
	u, ok := ptr.(encoding.TextUnmarshaler)
	if !ok {
		return false, nil
	}
	return true, u.UnmarshalText(raw)
}

func decodeProto(raw []byte, ptr any) (bool, error) {
	msg, ok := ptr.(proto.Message)
	if !ok {
		return false, nil
	}
	return true, proto.Unmarshal(raw, msg)
}

func decodeBinary(raw []byte, ptr any) (bool, error) {
	u, ok := ptr.(encoding.BinaryUnmarshaler)
	if !ok {
		return false, nil
	}
	return true, u.UnmarshalBinary(raw)
}
