package wrap

import "sort"

// Pair is one entry of a Mapping.
type Pair struct {
	Key   Key
	Value any
}

// Pairs is an ordered list of entries.
type Pairs []Pair

// ToPairs implements the Mapping interface.
func (p Pairs) ToPairs() Pairs { return p }

// Map feeds a string keyed map into a Collection in sorted key order.
type Map map[string]any

// ToPairs implements the Mapping interface.
func (m Map) ToPairs() Pairs {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make(Pairs, len(keys))
	for i, k := range keys {
		pairs[i] = Pair{Key: StrKey(k), Value: m[k]}
	}
	return pairs
}

// List feeds values keyed by their index into a Collection.
type List []any

// ToPairs implements the Mapping interface.
func (l List) ToPairs() Pairs {
	pairs := make(Pairs, len(l))
	for i, v := range l {
		pairs[i] = Pair{Key: IntKey(i), Value: v}
	}
	return pairs
}

// ToPairs returns a copy of the entries in order.
func (c *Collection) ToPairs() Pairs {
	pairs := make(Pairs, len(c.entries))
	for i, e := range c.entries {
		pairs[i] = Pair{Key: e.key, Value: e.value}
	}
	return pairs
}

func pairsOf(sources []Mapping) []Pairs {
	out := make([]Pairs, 0, len(sources))
	for _, src := range sources {
		if IsNil(src) {
			continue
		}
		out = append(out, src.ToPairs())
	}
	return out
}

// nextIntKey returns the largest int key plus one, or 0 without int keys.
func (c *Collection) nextIntKey() int {
	next, found := 0, false
	for _, e := range c.entries {
		if n, ok := e.key.Int(); ok && (!found || n >= next) {
			next, found = n+1, true
		}
	}
	return next
}

// Merge copies every entry of sources in order. Existing keys are
// overwritten in place.
func (c *Collection) Merge(sources ...Mapping) *Collection {
	for _, pairs := range pairsOf(sources) {
		for _, p := range pairs {
			c.Set(p.Key, p.Value)
		}
	}
	return c
}

// Concat copies every entry of sources in order without overwriting
// anything. An incoming key that is already taken, also by an entry added
// earlier in the same call, is replaced with the next unused int key.
// Renumbering starts after the largest int key present before the call.
func (c *Collection) Concat(sources ...Mapping) *Collection {
	next := max(c.nextIntKey(), 0)
	for _, pairs := range pairsOf(sources) {
		for _, p := range pairs {
			key := p.Key
			if c.Exists(key) {
				for c.Exists(IntKey(next)) {
					next++
				}
				key = IntKey(next)
				next++
			}
			c.Set(key, p.Value)
		}
	}
	return c
}

// Defaults copies the entries of sources whose keys are missing.
func (c *Collection) Defaults(sources ...Mapping) *Collection {
	for _, pairs := range pairsOf(sources) {
		for _, p := range pairs {
			if !c.Exists(p.Key) {
				c.Set(p.Key, p.Value)
			}
		}
	}
	return c
}

// Push appends v under the largest int key plus one, or 0 without int keys.
func (c *Collection) Push(v any) *Collection {
	return c.Set(IntKey(c.nextIntKey()), v)
}

// PushKey stores v under key, like Set.
func (c *Collection) PushKey(key Key, v any) *Collection {
	return c.Set(key, v)
}
