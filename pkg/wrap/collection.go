package wrap

import (
	"reflect"
	"strings"

	"github.com/google/uuid"
)

type entry struct {
	key   Key
	value any
}

// Collection is an insertion ordered map from Key to any with a single
// cursor. Overwriting a key keeps its position. Unlike the scalar
// wrappers a Collection is mutable; methods that return a new instance
// say so.
//
// A Collection is not safe for concurrent use.
type Collection struct {
	Assertion[*Collection]
	identity
	entries []entry
	index   map[Key]int
	cur     cursor
	perms   Permission
	empty   emptyShape
}

// emptyShape is the native form of a collection without entries.
type emptyShape uint8

const (
	emptyList emptyShape = iota
	emptyNilList
	emptyMap
)

// NewCollection returns an empty collection.
func NewCollection() *Collection {
	c := &Collection{}
	c.ensure()
	return c
}

// FromSlice returns a collection keyed 0..len(vs)-1.
func FromSlice(vs []any) *Collection {
	c := NewCollection()
	c.entries = make([]entry, 0, len(vs))
	for i, v := range vs {
		c.Set(IntKey(i), v)
	}
	return c
}

// FromMap returns a collection of m with its keys sorted. An empty m
// stays a map in ToNative and ToJSON.
func FromMap(m map[string]any) *Collection {
	c := NewCollection().Merge(Map(m))
	c.empty = emptyMap
	return c
}

// FromPairs returns a collection of pairs in their order. A repeated key
// keeps its first position and its last value.
func FromPairs(pairs ...Pair) *Collection {
	return NewCollection().Merge(Pairs(pairs))
}

// ensure makes the zero value usable.
func (c *Collection) ensure() {
	if c.index == nil {
		c.index = make(map[Key]int, len(c.entries))
		for i, e := range c.entries {
			c.index[e.key] = i
		}
	}
	if c.id == uuid.Nil {
		c.identity = newIdentity()
		c.perms = PermAll
	}
	c.bind(c)
}

func (*Collection) sealed() {}

// Kind implements the Wrapper interface.
func (*Collection) Kind() Kind { return KindCollection }

// Get returns ToNative(true).
func (c *Collection) Get() any { return c.ToNative(true) }

func (*Collection) String() string { return "[wrap.Collection]" }

func (c *Collection) ToString() *Text { return NewText(c.String()) }

// Visualize renders every entry as key => value. A collection nested in
// itself renders as *RECURSION*.
func (c *Collection) Visualize() *Text {
	return NewText(c.visualize(trail{}))
}

func (c *Collection) visualize(t trail) string {
	if !t.enter(c) {
		return "*RECURSION*"
	}
	defer t.leave(c)

	parts := make([]string, len(c.entries))
	for i, e := range c.entries {
		var v string
		if nested, ok := e.value.(*Collection); ok && nested != nil {
			v = nested.visualize(t)
		} else {
			v = visualizeValue(e.value)
		}
		parts[i] = e.key.visualize() + " => " + v
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// trail holds the collections on the current descent so recursive
// operations stop at cycles.
type trail map[*Collection]bool

func (t trail) enter(c *Collection) bool {
	if t[c] {
		return false
	}
	t[c] = true
	return true
}

func (t trail) leave(c *Collection) { delete(t, c) }

// VisualizeShort renders the size only.
func (c *Collection) VisualizeShort() *Text {
	return NewText("collection(" + NewNumber(c.Size()).String() + ")")
}

func visualizeValue(v any) string {
	w, err := node(v)
	if err != nil {
		return "?" + typeName(v)
	}
	return w.Visualize().String()
}

// node wraps a stored value, passing stored wrappers through.
func node(v any) (Wrapper, error) {
	if w, ok := v.(Wrapper); ok && !IsNil(w) {
		return w, nil
	}
	return Wrap(v)
}

// Copy implements the Wrapper interface.
func (c *Collection) Copy() Wrapper { return c.Clone() }

// Clone returns a deep copy. Nested collections are cloned, other values
// are shared. The cursor, permissions and state are kept. A collection
// nested in itself is cloned once, so the copy has the same cycles.
func (c *Collection) Clone() *Collection {
	return c.clone(map[*Collection]*Collection{})
}

func (c *Collection) clone(done map[*Collection]*Collection) *Collection {
	n := NewCollection()
	done[c] = n
	n.entries = make([]entry, len(c.entries))
	for i, e := range c.entries {
		if nested, ok := e.value.(*Collection); ok && nested != nil {
			if copied, ok := done[nested]; ok {
				e.value = copied
			} else {
				e.value = nested.clone(done)
			}
		}
		n.entries[i] = e
		n.index[e.key] = i
	}
	n.cur = c.cur
	n.perms = c.perms
	n.state = c.state
	n.empty = c.empty
	return n
}

// Size returns the number of entries.
func (c *Collection) Size() int { return len(c.entries) }

// IsEmpty reports whether there are no entries.
func (c *Collection) IsEmpty() bool { return len(c.entries) == 0 }

func (c *Collection) lookup(key Key) (any, bool) {
	c.ensure()
	i, ok := c.index[key]
	if !ok {
		return nil, false
	}
	return c.entries[i].value, true
}

// Value returns the value stored under key or a KeyError.
func (c *Collection) Value(key Key) (any, error) {
	v, ok := c.lookup(key)
	if !ok {
		return nil, KeyError{Key: key}
	}
	return v, nil
}

// Set stores v under key. An existing key keeps its position.
func (c *Collection) Set(key Key, v any) *Collection {
	c.ensure()
	if i, ok := c.index[key]; ok {
		c.entries[i].value = v
		return c
	}
	c.index[key] = len(c.entries)
	c.entries = append(c.entries, entry{key: key, value: v})
	return c
}

// Exists reports whether key is present.
func (c *Collection) Exists(key Key) bool {
	_, ok := c.lookup(key)
	return ok
}

// Check reports whether key is present and its value is truthy.
func (c *Collection) Check(key Key) bool {
	v, ok := c.lookup(key)
	return ok && Truthy(v)
}

// Remove deletes keys. Missing keys are ignored. When the entry under the
// cursor is removed the cursor moves to the following entry.
func (c *Collection) Remove(keys ...Key) *Collection {
	c.ensure()
	for _, key := range keys {
		i, ok := c.index[key]
		if !ok {
			continue
		}
		c.entries = append(c.entries[:i], c.entries[i+1:]...)
		delete(c.index, key)
		for j := i; j < len(c.entries); j++ {
			c.index[c.entries[j].key] = j
		}
		c.cur.removed(i, len(c.entries))
	}
	return c
}

// Steal returns the value under key and removes it.
func (c *Collection) Steal(key Key) (any, error) {
	v, err := c.Value(key)
	if err != nil {
		return nil, err
	}
	c.Remove(key)
	return v, nil
}

// Extract follows path through nested collections, slices and maps.
func (c *Collection) Extract(path ...Key) (any, bool) {
	var cur any = c
	for _, key := range path {
		col, ok := asCollection(cur)
		if !ok {
			return nil, false
		}
		if cur, ok = col.lookup(key); !ok {
			return nil, false
		}
	}
	return cur, true
}

// Wrapped returns the value under key as a Wrapper. A missing key gives
// Absent and a stored Wrapper is returned as is.
func (c *Collection) Wrapped(key Key) (Wrapper, error) {
	v, ok := c.lookup(key)
	if !ok {
		return NewAbsent(), nil
	}
	return node(v)
}

// WrappedRaw is like Wrapped but returns a copy of a stored Wrapper.
func (c *Collection) WrappedRaw(key Key) (Wrapper, error) {
	v, ok := c.lookup(key)
	if !ok {
		return NewAbsent(), nil
	}
	return WrapRaw(v)
}

// At returns the value at position index without moving the cursor.
// Negative indexes count from the end; positions before the first entry
// resolve to the first entry.
func (c *Collection) At(index int) (any, bool) {
	n := len(c.entries)
	if index < 0 {
		index += n
	}
	index = max(index, 0)
	if index >= n {
		return nil, false
	}
	return c.entries[index].value, true
}

// asCollection views v as a Collection. Slices, arrays and maps are
// converted; other values, wrappers included, are not collections.
func asCollection(v any) (*Collection, bool) {
	switch x := v.(type) {
	case *Collection:
		return x, x != nil
	case Wrapper:
		return nil, false
	case []any:
		return FromSlice(x), true
	case map[string]any:
		return FromMap(x), true
	case nil:
		return nil, false
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		c, err := collectionOf(reflect.ValueOf(v))
		return c, err == nil
	}
	return nil, false
}
