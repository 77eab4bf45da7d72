package wrap

func matcher(needle any, strict bool) func(any) bool {
	needle = Unwrap(needle)
	if strict {
		return func(v any) bool { return strictEqual(v, needle) }
	}
	return func(v any) bool { return looseEqual(v, needle) }
}

// IndexOf returns the key of the first value equal to v. Strict equality
// requires the same Go type; loose equality compares numbers by value and
// understands numeric strings.
func (c *Collection) IndexOf(v any, strict bool) (Key, bool) {
	match := matcher(v, strict)
	for _, e := range c.entries {
		if match(e.value) {
			return e.key, true
		}
	}
	return Key{}, false
}

// Has reports whether any value equals v. See IndexOf.
func (c *Collection) Has(v any, strict bool) bool {
	_, ok := c.IndexOf(v, strict)
	return ok
}

// SearchRecursive returns the path of keys to the first leaf equal to
// needle, searching nested collections depth first. Leaves shallower than
// minDepth are not compared; entries of the receiver are at depth 0. The
// path is empty when nothing matches.
func (c *Collection) SearchRecursive(needle any, minDepth int, strict bool) []Key {
	if path := search(c, matcher(needle, strict), minDepth, 0, trail{}); path != nil {
		return path
	}
	return []Key{}
}

func search(c *Collection, match func(any) bool, minDepth, depth int, t trail) []Key {
	if !t.enter(c) {
		return nil
	}
	defer t.leave(c)

	for _, e := range c.entries {
		if nested, ok := asCollection(e.value); ok {
			if path := search(nested, match, minDepth, depth+1, t); path != nil {
				return append([]Key{e.key}, path...)
			}
			continue
		}
		if depth >= minDepth && match(e.value) {
			return []Key{e.key}
		}
	}
	return nil
}
