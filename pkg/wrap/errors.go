package wrap

import (
	"errors"
	"fmt"
)

// ErrTooManyValues is returned by UnwrapMany when given more than MaxUnwrap values.
var ErrTooManyValues = errors.New("too many values to unwrap")

// ErrCyclic is returned by MarshalYAML for a collection nested in itself.
var ErrCyclic = errors.New("collection contains itself")

// ErrTrailingData is returned by UnmarshalJSON when input follows the document.
var ErrTrailingData = errors.New("unexpected data after top-level value")

// TypeMismatchError occurs when a variant is constructed from a payload
// whose runtime type does not match the variant.
type TypeMismatchError struct {
	Want Kind
	Got  string
}

// Error implements the error interface.
func (e TypeMismatchError) Error() string {
	return fmt.Sprintf("expecting %s payload, %s given", e.Want, e.Got)
}

// DispatchError occurs when a raw value matches none of the variants.
type DispatchError struct {
	Type string
}

// Error implements the error interface.
func (e DispatchError) Error() string {
	return fmt.Sprintf("no wrapper implemented for data of type: %s", e.Type)
}

// KeyError occurs when reading a key that is not present in a Collection.
type KeyError struct {
	Key Key
}

// Error implements the error interface.
func (e KeyError) Error() string {
	return fmt.Sprintf("key %s does not exist", e.Key.visualize())
}

// CallError occurs when a Callable can not be invoked with the given arguments,
// or when the invoked function returned a non-nil error.
type CallError struct {
	Func  string
	Cause error
}

// Error implements the error interface.
func (e CallError) Error() string {
	return fmt.Sprintf("calling %s: %s", e.Func, e.Cause)
}

// Unwrap implements the implicit interface for usage with errors.Is and errors.As.
func (e CallError) Unwrap() error {
	return e.Cause
}
