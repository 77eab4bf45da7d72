package wrap

import "iter"

// snapshot copies the entries so callbacks may mutate the collection.
func (c *Collection) snapshot() []entry {
	return append([]entry(nil), c.entries...)
}

// Each calls fn for every entry in order until fn returns false.
func (c *Collection) Each(fn func(v any, k Key, i int) bool) *Collection {
	for i, e := range c.snapshot() {
		if !fn(e.value, e.key, i) {
			break
		}
	}
	return c
}

// Every reports whether fn holds for all entries. It stops at the first
// false and is true for an empty collection.
func (c *Collection) Every(fn func(v any, k Key, i int) bool) bool {
	for i, e := range c.snapshot() {
		if !fn(e.value, e.key, i) {
			return false
		}
	}
	return true
}

// Map returns a new collection of fn's results, pushed in order. Keys are
// not kept.
func (c *Collection) Map(fn func(v any, k Key, i int) any) *Collection {
	out := NewCollection()
	for i, e := range c.snapshot() {
		out.Push(fn(e.value, e.key, i))
	}
	return out
}

// Filter returns a new collection of the entries fn keeps, with their keys.
func (c *Collection) Filter(fn func(v any, k Key) bool) *Collection {
	out := NewCollection()
	for _, e := range c.snapshot() {
		if fn(e.value, e.key) {
			out.Set(e.key, e.value)
		}
	}
	return out
}

// Reduce folds the entries into one value starting from initial. A
// negative direction (Left) folds in order, anything else in reverse.
func (c *Collection) Reduce(dir Direction, fn func(acc, v any, k Key) any, initial any) any {
	entries := c.snapshot()
	if dir >= 0 {
		for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
			entries[i], entries[j] = entries[j], entries[i]
		}
	}
	acc := initial
	for _, e := range entries {
		acc = fn(acc, e.value, e.key)
	}
	return acc
}

// Walk calls fn for every leaf, descending into nested collections, slices
// and maps depth first. i is the position within the enclosing collection.
// A collection nested in itself is not descended into again.
func (c *Collection) Walk(fn func(v any, k Key, i int)) *Collection {
	walk(c, fn, trail{})
	return c
}

func walk(c *Collection, fn func(v any, k Key, i int), t trail) {
	if !t.enter(c) {
		return
	}
	defer t.leave(c)

	for i, e := range c.snapshot() {
		if nested, ok := asCollection(e.value); ok {
			walk(nested, fn, t)
			continue
		}
		fn(e.value, e.key, i)
	}
}

// All returns an iterator over the entries. It does not move the cursor.
func (c *Collection) All() iter.Seq2[Key, any] {
	return func(yield func(Key, any) bool) {
		for _, e := range c.snapshot() {
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}
