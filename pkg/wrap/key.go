package wrap

import (
	"math"
	"reflect"
	"strconv"
)

// Key addresses one entry of a Collection. It is either an int or a string.
// The zero value is IntKey(0).
type Key struct {
	str   string
	num   int
	isStr bool
}

// IntKey returns an integer key.
func IntKey(n int) Key {
	return Key{num: n}
}

// StrKey returns a string key.
func StrKey(s string) Key {
	return Key{str: s, isStr: true}
}

// KeyOf converts a raw map key to a Key. Integer kinds become int keys,
// strings become string keys, bools become 0 or 1 and floats are truncated.
func KeyOf(v any) (Key, error) {
	switch x := v.(type) {
	case Key:
		return x, nil
	case int:
		return IntKey(x), nil
	case string:
		return StrKey(x), nil
	}
	if v == nil {
		return Key{}, DispatchError{Type: "nil key"}
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return IntKey(int(rv.Int())), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return IntKey(int(rv.Uint())), nil
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return Key{}, DispatchError{Type: typeName(v) + " key " + strconv.FormatFloat(f, 'g', -1, 64)}
		}
		return IntKey(int(f)), nil
	case reflect.Bool:
		if rv.Bool() {
			return IntKey(1), nil
		}
		return IntKey(0), nil
	case reflect.String:
		return StrKey(rv.String()), nil
	}
	return Key{}, DispatchError{Type: typeName(v) + " key"}
}

// IsInt reports whether k is an integer key.
func (k Key) IsInt() bool {
	return !k.isStr
}

// Int returns the integer of an int key.
func (k Key) Int() (int, bool) {
	return k.num, !k.isStr
}

// String returns the key as it would appear in a JSON object.
func (k Key) String() string {
	if k.isStr {
		return k.str
	}
	return strconv.Itoa(k.num)
}

// Raw returns the key as an int or a string.
func (k Key) Raw() any {
	if k.isStr {
		return k.str
	}
	return k.num
}

func (k Key) visualize() string {
	if k.isStr {
		return strconv.Quote(k.str)
	}
	return strconv.Itoa(k.num)
}

// less orders int keys numerically before string keys lexically.
func (k Key) less(o Key) bool {
	if k.isStr != o.isStr {
		return !k.isStr
	}
	if k.isStr {
		return k.str < o.str
	}
	return k.num < o.num
}
