package wrap

import (
	"reflect"
	"strconv"
)

// Boolean wraps a bool.
type Boolean struct {
	Assertion[*Boolean]
	identity
	value bool
}

// NewBoolean wraps b.
func NewBoolean(b bool) *Boolean {
	w := &Boolean{identity: newIdentity(), value: b}
	w.bind(w)
	return w
}

// BooleanOf wraps v if its kind is bool.
func BooleanOf(v any) (*Boolean, error) {
	if v != nil {
		if rv := reflect.ValueOf(v); rv.Kind() == reflect.Bool {
			return NewBoolean(rv.Bool()), nil
		}
	}
	return nil, TypeMismatchError{Want: KindBoolean, Got: typeName(v)}
}

func (*Boolean) sealed() {}

// Kind implements the Wrapper interface.
func (*Boolean) Kind() Kind { return KindBoolean }

// Get returns the bool.
func (b *Boolean) Get() any { return b.value }

// Bool returns the bool.
func (b *Boolean) Bool() bool { return b.value }

// String implements the fmt.Stringer interface.
func (b *Boolean) String() string { return strconv.FormatBool(b.value) }

// ToString implements the Wrapper interface.
func (b *Boolean) ToString() *Text { return NewText(b.String()) }

// ToJSON implements the Wrapper interface.
func (b *Boolean) ToJSON() *Text { return b.Visualize() }

// Visualize implements the Wrapper interface.
func (b *Boolean) Visualize() *Text { return NewText(b.String()) }

// Copy implements the Wrapper interface.
func (b *Boolean) Copy() Wrapper { return b.Clone() }

// Clone returns an independent duplicate.
func (b *Boolean) Clone() *Boolean {
	c := NewBoolean(b.value)
	c.state = b.state
	return c
}

// IsTrue reports whether the payload is true.
func (b *Boolean) IsTrue() bool { return b.value }

// IsFalse reports whether the payload is false.
func (b *Boolean) IsFalse() bool { return !b.value }

// Alt returns the alternative when the payload is false.
func (b *Boolean) Alt(alternative Wrapper) Wrapper {
	if b.value || IsNil(alternative) {
		return b
	}
	return alternative
}

// Eq sets the state to whether the payload loosely equals v.
func (b *Boolean) Eq(v any) *Boolean {
	return b.Is(looseEqual(b.value, v))
}
