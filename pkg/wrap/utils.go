package wrap

import (
	"math"
	"reflect"
	"strconv"
	"strings"
)

func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

// Truthy converts any value to a bool. Nil, false, zero numbers, "" and "0",
// and empty slices, maps and collections are false. Wrappers are judged by
// their payload.
func Truthy(v any) bool {
	if IsNil(v) {
		return false
	}
	switch x := v.(type) {
	case bool:
		return x
	case string:
		return x != "" && x != "0"
	case *Collection:
		return x.Size() > 0
	case Wrapper:
		return Truthy(x.Get())
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.String:
		s := rv.String()
		return s != "" && s != "0"
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() > 0
	}
	if f, ok := toFloat(v); ok {
		return f != 0
	}
	return true
}

func isNumberKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// toFloat converts numeric kinds (not bools, not strings) to float64.
func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case float64:
		return x, true
	case *Number:
		return x.f, true
	}
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

// parseNumeric parses a numeric string, allowing surrounding whitespace.
func parseNumeric(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// numericOf accepts numbers and numeric strings.
func numericOf(v any) (float64, bool) {
	if f, ok := toFloat(v); ok {
		return f, true
	}
	switch x := v.(type) {
	case string:
		return parseNumeric(x)
	case *Text:
		return parseNumeric(x.value)
	}
	return 0, false
}

// strictEqual requires the same dynamic type. Values that are comparable
// down to their interface fields use ==, everything else falls back to
// reflect.DeepEqual.
func strictEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	if reflect.ValueOf(a).Comparable() && reflect.ValueOf(b).Comparable() {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}

// looseEqual compares values after unwrapping. Numbers compare by value
// regardless of their Go type, numeric strings compare as numbers, bools
// compare against the truthiness of the other side and nil equals any
// falsy value except strings, which it only equals when empty.
func looseEqual(a, b any) bool {
	a, b = Unwrap(a), Unwrap(b)
	if IsNil(a) || IsNil(b) {
		if IsNil(a) && IsNil(b) {
			return true
		}
		other := b
		if IsNil(b) {
			other = a
		}
		if s, ok := other.(string); ok {
			return s == ""
		}
		return !Truthy(other)
	}
	if ab, ok := a.(bool); ok {
		return ab == Truthy(b)
	}
	if bb, ok := b.(bool); ok {
		return bb == Truthy(a)
	}

	af, aNum := toFloat(a)
	bf, bNum := toFloat(b)
	switch {
	case aNum && bNum:
		return af == bf
	case aNum:
		if f, ok := numericOf(b); ok {
			return f == af
		}
		return false
	case bNum:
		if f, ok := numericOf(a); ok {
			return f == bf
		}
		return false
	}

	as, aStr := a.(string)
	bs, bStr := b.(string)
	if aStr && bStr {
		if as == bs {
			return true
		}
		fa, okA := parseNumeric(as)
		fb, okB := parseNumeric(bs)
		return okA && okB && fa == fb
	}
	return strictEqual(a, b)
}

// looseCompare orders two values numerically when both are numeric and
// lexically when both are strings. ok is false when they can not be ordered.
func looseCompare(a, b any) (cmp int, ok bool) {
	a, b = Unwrap(a), Unwrap(b)
	if fa, okA := numericOf(a); okA {
		if fb, okB := numericOf(b); okB {
			switch {
			case math.IsNaN(fa) || math.IsNaN(fb):
				return 0, false
			case fa < fb:
				return -1, true
			case fa > fb:
				return 1, true
			default:
				return 0, true
			}
		}
	}
	as, okA := a.(string)
	bs, okB := b.(string)
	if okA && okB {
		return strings.Compare(as, bs), true
	}
	return 0, false
}

func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	return reflect.TypeOf(v).String()
}
