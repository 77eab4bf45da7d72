package wrap

import (
	"fmt"
	"reflect"
	"sort"
)

// MaxUnwrap is the largest number of values UnwrapMany accepts.
const MaxUnwrap = 10

// Wrap classifies v and returns the matching wrapper. The order of checks
// is absence, collection, boolean, text, number, callable, object.
//
// A value that already is a Wrapper is wrapped as an Object like any other
// pointer. Use WrapRaw to pass wrappers through.
func Wrap(v any) (Wrapper, error) {
	if IsNil(v) {
		return NewAbsent(), nil
	}

	switch x := v.(type) {
	case []any:
		c := FromSlice(x)
		if x == nil {
			c.empty = emptyNilList
		}
		return c, nil
	case map[string]any:
		return FromMap(x), nil
	case bool:
		return NewBoolean(x), nil
	case string:
		return NewText(x), nil
	case int:
		return NewNumber(x), nil
	case float64:
		return NewNumber(x), nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return wrapped(collectionOf(rv))
	case reflect.Bool:
		return wrapped(BooleanOf(v))
	case reflect.String:
		return wrapped(TextOf(v))
	case reflect.Func:
		if rv.IsNil() {
			return NewAbsent(), nil
		}
		return wrapped(CallableOf(v))
	case reflect.Complex64, reflect.Complex128, reflect.Chan, reflect.UnsafePointer:
		return nil, DispatchError{Type: typeName(v)}
	}
	if isNumberKind(rv.Kind()) {
		return wrapped(NumberOf(v))
	}
	return wrapped(ObjectOf(v))
}

// wrapped keeps a failed constructor from returning a typed nil Wrapper.
func wrapped[W Wrapper](w W, err error) (Wrapper, error) {
	if err != nil {
		return nil, err
	}
	return w, nil
}

// MustWrap is like Wrap but panics on error.
func MustWrap(v any) Wrapper {
	w, err := Wrap(v)
	if err != nil {
		panic(err)
	}
	return w
}

// collectionOf builds a Collection from any slice, array or map value. Map
// keys are sorted, int keys first.
func collectionOf(rv reflect.Value) (*Collection, error) {
	c := NewCollection()
	if rv.Kind() != reflect.Map {
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			c.empty = emptyNilList
			return c, nil
		}
		for i := 0; i < rv.Len(); i++ {
			c.Set(IntKey(i), rv.Index(i).Interface())
		}
		return c, nil
	}

	c.empty = emptyMap
	pairs := make(Pairs, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		k, err := KeyOf(iter.Key().Interface())
		if err != nil {
			return nil, DispatchError{Type: rv.Type().String()}
		}
		pairs = append(pairs, Pair{Key: k, Value: iter.Value().Interface()})
	}
	sort.SliceStable(pairs, func(i, j int) bool { return pairs[i].Key.less(pairs[j].Key) })
	for _, p := range pairs {
		c.Set(p.Key, p.Value)
	}
	return c, nil
}

// WrapRaw returns an independent copy of v if it is a Wrapper and wraps it
// with Wrap otherwise.
func WrapRaw(v any) (Wrapper, error) {
	if w, ok := v.(Wrapper); ok && !IsNil(w) {
		return w.Copy(), nil
	}
	return Wrap(v)
}

// IsWrapped reports whether v is a Wrapper.
func IsWrapped(v any) bool {
	w, ok := v.(Wrapper)
	return ok && !IsNil(w)
}

// Unwrap returns the payload of a Wrapper and any other value unchanged.
func Unwrap(v any) any {
	if w, ok := v.(Wrapper); ok && !IsNil(w) {
		return w.Get()
	}
	return v
}

// UnwrapMany unwraps every value. It fails with ErrTooManyValues when given
// more than MaxUnwrap values.
func UnwrapMany(vs ...any) ([]any, error) {
	if len(vs) > MaxUnwrap {
		return nil, fmt.Errorf("%w: %d given, at most %d allowed", ErrTooManyValues, len(vs), MaxUnwrap)
	}
	out := make([]any, len(vs))
	for i, v := range vs {
		out[i] = Unwrap(v)
	}
	return out, nil
}
