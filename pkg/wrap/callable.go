package wrap

import (
	"fmt"
	"reflect"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// Callable wraps a function value of any signature.
type Callable struct {
	Assertion[*Callable]
	identity
	fn  reflect.Value
	raw any
}

// CallableOf wraps v if it is a non-nil function.
func CallableOf(v any) (*Callable, error) {
	if v == nil {
		return nil, TypeMismatchError{Want: KindCallable, Got: typeName(v)}
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Func || rv.IsNil() {
		return nil, TypeMismatchError{Want: KindCallable, Got: typeName(v)}
	}
	return newCallable(rv), nil
}

func newCallable(rv reflect.Value) *Callable {
	c := &Callable{identity: newIdentity(), fn: rv, raw: rv.Interface()}
	c.bind(c)
	return c
}

func (*Callable) sealed() {}

// Kind implements the Wrapper interface.
func (*Callable) Kind() Kind { return KindCallable }

// Get returns the function.
func (c *Callable) Get() any { return c.raw }

func (*Callable) String() string { return "[wrap.Callable]" }

func (c *Callable) ToString() *Text { return NewText(c.String()) }

// ToJSON implements the Wrapper interface. Functions have no JSON form.
func (*Callable) ToJSON() *Text { return NewText("null") }

// Visualize renders the function signature.
func (c *Callable) Visualize() *Text {
	return NewText("{" + c.fn.Type().String() + "}")
}

// Copy implements the Wrapper interface.
func (c *Callable) Copy() Wrapper { return c.Clone() }

// Clone returns a new wrapper around the same function.
func (c *Callable) Clone() *Callable {
	n := newCallable(c.fn)
	n.state = c.state
	return n
}

// Arity returns the number of declared parameters. A variadic parameter counts as one.
func (c *Callable) Arity() int {
	return c.fn.Type().NumIn()
}

// IsVariadic reports whether the last parameter is variadic.
func (c *Callable) IsVariadic() bool {
	return c.fn.Type().IsVariadic()
}

// Call invokes the function with args. See Apply.
func (c *Callable) Call(args ...any) (Wrapper, error) {
	return c.Apply(args)
}

// Apply invokes the function with args and wraps the result.
//
// Nil arguments become zero values and numbers are converted to the
// parameter type. A trailing error result that is not nil is returned as a
// CallError. No results give Absent, one result is wrapped with Wrap and
// several are returned as a list Collection.
func (c *Callable) Apply(args []any) (Wrapper, error) {
	in, err := c.arguments(args)
	if err != nil {
		return nil, err
	}
	out := c.fn.Call(in)

	t := c.fn.Type()
	if n := t.NumOut(); n > 0 && t.Out(n-1) == errorType {
		if last := out[n-1]; !last.IsNil() {
			return nil, CallError{Func: t.String(), Cause: last.Interface().(error)}
		}
		out = out[:n-1]
	}

	switch len(out) {
	case 0:
		return NewAbsent(), nil
	case 1:
		return Wrap(out[0].Interface())
	}
	list := NewCollection()
	for _, o := range out {
		list.Push(o.Interface())
	}
	return list, nil
}

func (c *Callable) arguments(args []any) ([]reflect.Value, error) {
	t := c.fn.Type()
	n := t.NumIn()
	if t.IsVariadic() {
		if len(args) < n-1 {
			return nil, CallError{Func: t.String(), Cause: fmt.Errorf("want at least %d arguments, got %d", n-1, len(args))}
		}
	} else if len(args) != n {
		return nil, CallError{Func: t.String(), Cause: fmt.Errorf("want %d arguments, got %d", n, len(args))}
	}

	in := make([]reflect.Value, len(args))
	for i, a := range args {
		var pt reflect.Type
		if t.IsVariadic() && i >= n-1 {
			pt = t.In(n - 1).Elem()
		} else {
			pt = t.In(i)
		}
		v, err := argumentOf(a, pt)
		if err != nil {
			return nil, CallError{Func: t.String(), Cause: fmt.Errorf("argument %d: %w", i, err)}
		}
		in[i] = v
	}
	return in, nil
}

func argumentOf(a any, pt reflect.Type) (reflect.Value, error) {
	if a == nil {
		return reflect.Zero(pt), nil
	}
	v := reflect.ValueOf(a)
	if v.Type().AssignableTo(pt) {
		return v, nil
	}
	if isNumberKind(v.Kind()) && isNumberKind(pt.Kind()) {
		return v.Convert(pt), nil
	}
	if w, ok := a.(Wrapper); ok {
		return argumentOf(w.Get(), pt)
	}
	return reflect.Value{}, TypeMismatchError{Want: KindOfType(pt), Got: typeName(a)}
}

// Bind fixes the first parameter to receiver and returns a callable taking
// the remaining parameters.
func (c *Callable) Bind(receiver any) (*Callable, error) {
	t := c.fn.Type()
	if t.NumIn() == 0 || (t.IsVariadic() && t.NumIn() == 1) {
		return nil, CallError{Func: t.String(), Cause: fmt.Errorf("no leading parameter to bind")}
	}
	first, err := argumentOf(receiver, t.In(0))
	if err != nil {
		return nil, CallError{Func: t.String(), Cause: err}
	}

	in := make([]reflect.Type, 0, t.NumIn()-1)
	for i := 1; i < t.NumIn(); i++ {
		in = append(in, t.In(i))
	}
	out := make([]reflect.Type, t.NumOut())
	for i := range out {
		out[i] = t.Out(i)
	}

	fn := c.fn
	bound := reflect.MakeFunc(reflect.FuncOf(in, out, t.IsVariadic()), func(args []reflect.Value) []reflect.Value {
		all := append([]reflect.Value{first}, args...)
		if t.IsVariadic() {
			return fn.CallSlice(all)
		}
		return fn.Call(all)
	})
	return newCallable(bound), nil
}

// Decorate returns a callable that hands every call to fn together with the
// receiver, so fn decides if and how the wrapped function runs.
func (c *Callable) Decorate(fn func(inner *Callable, args []any) any) *Callable {
	return newCallable(reflect.ValueOf(func(args ...any) any {
		return fn(c, args)
	}))
}

// KindOfType returns the variant a value of type t dispatches to.
func KindOfType(t reflect.Type) Kind {
	switch t.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return KindCollection
	case reflect.Bool:
		return KindBoolean
	case reflect.String:
		return KindText
	case reflect.Func:
		return KindCallable
	}
	if isNumberKind(t.Kind()) {
		return KindNumber
	}
	return KindObject
}
