package reflectx

import (
	"errors"
	"fmt"
)

// Error categories. Every error returned by a lookup or a handle matches exactly one
// of them with errors.Is. Register reports ErrAlreadyRegistered and ErrInvalidMember,
// which belong to none.
var (
	ErrResolution   = errors.New("resolution failed")
	ErrAccess       = errors.New("access denied")
	ErrTypeMismatch = errors.New("type mismatch")
	ErrInvocation   = errors.New("invocation failed")
)

// Resolution errors.
var (
	ErrFieldNotFound       = fmt.Errorf("%w: field not found", ErrResolution)
	ErrMethodNotFound      = fmt.Errorf("%w: method not found", ErrResolution)
	ErrConstructorNotFound = fmt.Errorf("%w: constructor not found", ErrResolution)
	ErrTypeNotRegistered   = fmt.Errorf("%w: type not registered", ErrResolution)
)

// Access errors.
var (
	ErrNotPrivileged = fmt.Errorf("%w: no private access", ErrAccess)
)

// Argument errors.
var (
	ErrIncorrectArgumentCount = fmt.Errorf("%w: incorrect number of arguments", ErrTypeMismatch)
	ErrInvalidArgumentValue   = fmt.Errorf("%w: invalid argument value", ErrTypeMismatch)
)

// Registry errors.
var (
	ErrAlreadyRegistered = errors.New("type has already been registered")
	ErrInvalidMember     = errors.New("invalid member")
)
