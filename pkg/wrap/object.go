package wrap

import (
	"reflect"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/mitchellh/mapstructure"
)

// objectNumbers hands out process-wide object numbers. Pointers keep their
// number for as long as the process runs.
var objectNumbers = struct {
	sync.Mutex
	next int
	ids  map[any]int
}{ids: make(map[any]int)}

func objectNumber(key any) int {
	objectNumbers.Lock()
	defer objectNumbers.Unlock()

	if n, ok := objectNumbers.ids[key]; ok {
		return n
	}
	objectNumbers.next++
	objectNumbers.ids[key] = objectNumbers.next
	return objectNumbers.next
}

// Object wraps a struct, a pointer or any other value without a more
// specific variant.
type Object struct {
	Assertion[*Object]
	identity
	value any
}

// ObjectOf wraps v if it is a struct or a non-nil pointer.
func ObjectOf(v any) (*Object, error) {
	if IsNil(v) {
		return nil, TypeMismatchError{Want: KindObject, Got: typeName(v)}
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Struct, reflect.Ptr:
		return newObject(v), nil
	}
	return nil, TypeMismatchError{Want: KindObject, Got: typeName(v)}
}

func newObject(v any) *Object {
	o := &Object{identity: newIdentity(), value: v}
	o.bind(o)
	return o
}

func (*Object) sealed() {}

// Kind implements the Wrapper interface.
func (*Object) Kind() Kind { return KindObject }

// Get returns the wrapped value.
func (o *Object) Get() any { return o.value }

func (*Object) String() string { return "[wrap.Object]" }

func (o *Object) ToString() *Text { return NewText(o.String()) }

// ToJSON renders the exported fields. Values that have none render as {}.
func (o *Object) ToJSON() *Text {
	vars, err := o.Vars()
	if err != nil || vars.IsEmpty() {
		return NewText("{}")
	}
	return vars.ToJSON()
}

// Visualize implements the Wrapper interface.
func (o *Object) Visualize() *Text {
	return NewText("object(" + o.Name() + ")")
}

// Copy implements the Wrapper interface.
func (o *Object) Copy() Wrapper { return o.Clone() }

// Clone returns a new wrapper around the same value.
func (o *Object) Clone() *Object {
	c := newObject(o.value)
	c.state = o.state
	return c
}

func (o *Object) baseType() reflect.Type {
	t := reflect.TypeOf(o.value)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}

// TypeName returns the package qualified type name, pointers dereferenced.
func (o *Object) TypeName() string {
	t := o.baseType()
	if t.PkgPath() == "" || t.Name() == "" {
		return t.String()
	}
	return t.PkgPath() + "." + t.Name()
}

// BaseName returns the type name without its package.
func (o *Object) BaseName() string {
	t := o.baseType()
	if t.Name() == "" {
		return t.String()
	}
	return t.Name()
}

// Name returns the type name and the object number, like "Point#3".
func (o *Object) Name() string {
	var key any = o.id
	if rv := reflect.ValueOf(o.value); rv.Kind() == reflect.Ptr {
		key = rv.Pointer()
	}
	return o.BaseName() + "#" + strconv.Itoa(objectNumber(key))
}

// HasMethod reports whether the value has an exported method called name.
func (o *Object) HasMethod(name string) bool {
	_, ok := reflect.TypeOf(o.value).MethodByName(name)
	return ok
}

// Vars returns the exported fields in declaration order.
func (o *Object) Vars() (*Collection, error) {
	fields := make(map[string]any)
	if err := mapstructure.Decode(o.value, &fields); err != nil {
		return nil, err
	}

	vars := NewCollection()
	if t := o.baseType(); t.Kind() == reflect.Struct {
		for i := 0; i < t.NumField(); i++ {
			name := fieldName(t.Field(i))
			if v, ok := fields[name]; ok {
				vars.Set(StrKey(name), v)
				delete(fields, name)
			}
		}
	}

	rest := make([]string, 0, len(fields))
	for k := range fields {
		rest = append(rest, k)
	}
	sort.Strings(rest)
	for _, k := range rest {
		vars.Set(StrKey(k), fields[k])
	}
	return vars, nil
}

func fieldName(f reflect.StructField) string {
	if tag, _, _ := strings.Cut(f.Tag.Get("mapstructure"), ","); tag != "" {
		return tag
	}
	return f.Name
}
