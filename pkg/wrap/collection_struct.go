package wrap

import (
	"fmt"
	"strings"
)

// Keys returns a new list of the keys as raw ints and strings.
func (c *Collection) Keys() *Collection {
	out := NewCollection()
	for _, e := range c.entries {
		out.Push(e.key.Raw())
	}
	return out
}

// Values returns a new list of the values.
func (c *Collection) Values() *Collection {
	out := NewCollection()
	for _, e := range c.entries {
		out.Push(e.value)
	}
	return out
}

// Slice returns a new collection of the entries from offset, optionally
// limited to length. A negative offset counts from the end and a negative
// length leaves that many entries off the end. Int keys are renumbered,
// string keys kept.
func (c *Collection) Slice(offset int, length ...int) *Collection {
	start, end := sliceBounds(len(c.entries), offset, length...)
	out := NewCollection()
	for _, e := range c.entries[start:end] {
		if e.key.IsInt() {
			out.Push(e.value)
		} else {
			out.Set(e.key, e.value)
		}
	}
	return out
}

// Flatten returns a new list of every leaf value, depth first.
func (c *Collection) Flatten() *Collection {
	out := NewCollection()
	walk(c, func(v any, _ Key, _ int) {
		out.Push(v)
	}, trail{})
	return out
}

// Without returns a new collection without the entries whose value loosely
// equals one of values.
func (c *Collection) Without(values ...any) *Collection {
	return c.Filter(func(v any, _ Key) bool {
		for _, x := range values {
			if looseEqual(v, x) {
				return false
			}
		}
		return true
	})
}

// Having returns a new collection of the given keys. Every key must exist.
func (c *Collection) Having(keys ...Key) (*Collection, error) {
	out := NewCollection()
	for _, k := range keys {
		v, err := c.Value(k)
		if err != nil {
			return nil, err
		}
		out.Set(k, v)
	}
	return out, nil
}

// Rename stores the value of From under As.
type Rename struct {
	As   Key
	From Key
}

// Project returns a new collection holding the value of each From under
// its As. Every From must exist.
func (c *Collection) Project(renames ...Rename) (*Collection, error) {
	out := NewCollection()
	for _, r := range renames {
		v, err := c.Value(r.From)
		if err != nil {
			return nil, err
		}
		out.Set(r.As, v)
	}
	return out, nil
}

// Pluck follows path into every value and returns what it finds under the
// original keys. Values the path does not resolve in are skipped.
func (c *Collection) Pluck(path ...Key) *Collection {
	out := NewCollection()
	for _, e := range c.entries {
		nested, ok := asCollection(e.value)
		if !ok {
			continue
		}
		if v, ok := nested.Extract(path...); ok {
			out.Set(e.key, v)
		}
	}
	return out
}

// Join concatenates the values as strings, separated by sep.
func (c *Collection) Join(sep string) string {
	parts := make([]string, len(c.entries))
	for i, e := range c.entries {
		parts[i] = stringOf(e.value)
	}
	return strings.Join(parts, sep)
}

// JoinWithKeys concatenates key, kv and value of every entry, separated by sep.
func (c *Collection) JoinWithKeys(kv, sep string) string {
	parts := make([]string, len(c.entries))
	for i, e := range c.entries {
		parts[i] = e.key.String() + kv + stringOf(e.value)
	}
	return strings.Join(parts, sep)
}

func stringOf(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case Wrapper:
		return x.ToString().String()
	}
	w, err := Wrap(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return w.ToString().String()
}

// Alt returns the alternative when the collection is empty.
func (c *Collection) Alt(alternative Wrapper) Wrapper {
	if !c.IsEmpty() || IsNil(alternative) {
		return c
	}
	return alternative
}

// IsAssociative reports whether any key is a string.
func (c *Collection) IsAssociative() bool {
	for _, e := range c.entries {
		if !e.key.IsInt() {
			return true
		}
	}
	return false
}

// IsList reports whether the keys are exactly 0..n-1 in order. An empty
// collection built from a map or a JSON or YAML object is not a list.
func (c *Collection) IsList() bool {
	if len(c.entries) == 0 {
		return c.empty != emptyMap
	}
	for i, e := range c.entries {
		if n, ok := e.key.Int(); !ok || n != i {
			return false
		}
	}
	return true
}
