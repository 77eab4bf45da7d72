package wrap

import (
	"math"
	"math/bits"
	"reflect"
	"strconv"
)

// Real is the set of Go types a Number can be built from.
type Real interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Number wraps any integer or floating point value. Get returns the value
// with its original Go type.
type Number struct {
	Assertion[*Number]
	identity
	raw      any
	f        float64
	i        int64
	integral bool
	unsigned bool
}

// NewNumber wraps n.
func NewNumber[N Real](n N) *Number {
	return newNumber(n)
}

// NumberOf wraps v if its kind is an integer or float kind.
func NumberOf(v any) (*Number, error) {
	if v == nil || !isNumberKind(reflect.ValueOf(v).Kind()) {
		return nil, TypeMismatchError{Want: KindNumber, Got: typeName(v)}
	}
	return newNumber(v), nil
}

func newNumber(v any) *Number {
	w := &Number{identity: newIdentity(), raw: v}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		w.i = rv.Int()
		w.f = float64(w.i)
		w.integral = true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		w.i = int64(u)
		w.f = float64(u)
		w.integral = true
		w.unsigned = true
	default:
		w.f = rv.Float()
		w.i = int64(w.f)
	}
	w.bind(w)
	return w
}

func (*Number) sealed() {}

// Kind implements the Wrapper interface.
func (*Number) Kind() Kind { return KindNumber }

// Get returns the number with its original Go type.
func (n *Number) Get() any { return n.raw }

// Float returns the number as a float64.
func (n *Number) Float() float64 { return n.f }

// Int returns the number truncated to an int64.
func (n *Number) Int() int64 { return n.i }

// IsInt reports whether the payload has an integer type.
func (n *Number) IsInt() bool { return n.integral }

// String implements the fmt.Stringer interface.
func (n *Number) String() string {
	switch {
	case n.unsigned:
		return strconv.FormatUint(reflect.ValueOf(n.raw).Uint(), 10)
	case n.integral:
		return strconv.FormatInt(n.i, 10)
	default:
		return strconv.FormatFloat(n.f, 'g', -1, 64)
	}
}

// ToString implements the Wrapper interface.
func (n *Number) ToString() *Text { return NewText(n.String()) }

// ToJSON implements the Wrapper interface. NaN and infinities render as null.
func (n *Number) ToJSON() *Text {
	if !n.IsFinite() {
		return NewText("null")
	}
	return n.ToString()
}

// Visualize implements the Wrapper interface.
func (n *Number) Visualize() *Text { return n.ToString() }

// Copy implements the Wrapper interface.
func (n *Number) Copy() Wrapper { return n.Clone() }

// Clone returns an independent duplicate.
func (n *Number) Clone() *Number {
	c := newNumber(n.raw)
	c.state = n.state
	return c
}

// Alt returns the alternative when the number is zero or lower.
func (n *Number) Alt(alternative Wrapper) Wrapper {
	if n.f > 0 || IsNil(alternative) {
		return n
	}
	return alternative
}

// Gt sets the state to whether the number is greater than v.
func (n *Number) Gt(v any) *Number {
	cmp, ok := looseCompare(n.raw, v)
	return n.Is(ok && cmp > 0)
}

// Lt sets the state to whether the number is less than v.
func (n *Number) Lt(v any) *Number {
	cmp, ok := looseCompare(n.raw, v)
	return n.Is(ok && cmp < 0)
}

// Eq sets the state to whether the number loosely equals v.
func (n *Number) Eq(v any) *Number {
	return n.Is(looseEqual(n.raw, v))
}

func (n *Number) apply(fn func(float64) float64) *Number {
	return NewNumber(fn(n.f))
}

// Abs returns the absolute value, keeping integers integral.
func (n *Number) Abs() *Number {
	if n.integral && !n.unsigned {
		if n.i < 0 {
			return NewNumber(-n.i)
		}
		return NewNumber(n.i)
	}
	if n.unsigned {
		return n.Clone()
	}
	return n.apply(math.Abs)
}

func (n *Number) Ceil() *Number { return n.apply(math.Ceil) }
func (n *Number) Floor() *Number { return n.apply(math.Floor) }

// Round rounds half away from zero.
func (n *Number) Round() *Number { return n.apply(math.Round) }

func (n *Number) Sqrt() *Number { return n.apply(math.Sqrt) }
func (n *Number) Exp() *Number { return n.apply(math.Exp) }
func (n *Number) Expm1() *Number { return n.apply(math.Expm1) }
func (n *Number) Sin() *Number { return n.apply(math.Sin) }
func (n *Number) Cos() *Number { return n.apply(math.Cos) }
func (n *Number) Tan() *Number { return n.apply(math.Tan) }
func (n *Number) Asin() *Number { return n.apply(math.Asin) }
func (n *Number) Acos() *Number { return n.apply(math.Acos) }
func (n *Number) Atan() *Number { return n.apply(math.Atan) }
func (n *Number) Sinh() *Number { return n.apply(math.Sinh) }
func (n *Number) Cosh() *Number { return n.apply(math.Cosh) }
func (n *Number) Tanh() *Number { return n.apply(math.Tanh) }
func (n *Number) Asinh() *Number { return n.apply(math.Asinh) }
func (n *Number) Acosh() *Number { return n.apply(math.Acosh) }
func (n *Number) Atanh() *Number { return n.apply(math.Atanh) }

// Pow raises the number to the power of p.
func (n *Number) Pow(p float64) *Number {
	return NewNumber(math.Pow(n.f, p))
}

// Times multiplies by v, which may be raw or wrapped. Two integers stay integral.
func (n *Number) Times(v any) (*Number, error) {
	o, err := NumberOf(Unwrap(v))
	if err != nil {
		return nil, err
	}
	if n.integral && o.integral {
		return NewNumber(n.i * o.i), nil
	}
	return NewNumber(n.f * o.f), nil
}

// Divide divides by v, which may be raw or wrapped. The result is always a float64.
func (n *Number) Divide(v any) (*Number, error) {
	o, err := NumberOf(Unwrap(v))
	if err != nil {
		return nil, err
	}
	return NewNumber(n.f / o.f), nil
}

// Rebase reads the integer digits of the number in base from and writes them in base to.
func (n *Number) Rebase(from, to int) (*Text, error) {
	i, err := strconv.ParseInt(strconv.FormatInt(n.i, 10), from, 64)
	if err != nil {
		return nil, err
	}
	if to < 2 || to > 36 {
		return nil, strconv.ErrRange
	}
	return NewText(strconv.FormatInt(i, to)), nil
}

// HasBit reports whether every bit of needle is set.
func (n *Number) HasBit(needle int64) bool {
	return n.i&needle == needle
}

// CountBits returns the number of bits set to one.
func (n *Number) CountBits() *Number {
	return NewNumber(bits.OnesCount64(uint64(n.i)))
}

func (n *Number) IsFinite() bool { return !math.IsInf(n.f, 0) && !math.IsNaN(n.f) }
func (n *Number) IsInfinite() bool { return math.IsInf(n.f, 0) }
