package wrap

// Cursor is the position class of a Collection's cursor.
type Cursor uint8

const (
	OnEntry Cursor = iota
	BeforeFirst
	PastLast
)

func (c Cursor) String() string {
	switch c {
	case OnEntry:
		return "on entry"
	case BeforeFirst:
		return "before first"
	default:
		return "past last"
	}
}

// cursor points at entries[pos] while at is OnEntry. An OnEntry position
// beyond the last entry reads as past last until entries are added, so a
// new collection's cursor lands on its first entry.
type cursor struct {
	at  Cursor
	pos int
}

func (cur *cursor) valid(n int) bool {
	return cur.at == OnEntry && cur.pos < n
}

func (cur *cursor) removed(i, n int) {
	if cur.at != OnEntry {
		return
	}
	switch {
	case cur.pos > i:
		cur.pos--
	case cur.pos == i && i >= n:
		cur.at = PastLast
	}
}

// CursorState returns where the cursor is.
func (c *Collection) CursorState() Cursor {
	if c.cur.at == OnEntry && !c.cur.valid(len(c.entries)) {
		return PastLast
	}
	return c.cur.at
}

// Current returns the value under the cursor.
func (c *Collection) Current() (any, bool) {
	if !c.cur.valid(len(c.entries)) {
		return nil, false
	}
	return c.entries[c.cur.pos].value, true
}

// Key returns the key under the cursor.
func (c *Collection) Key() (Key, bool) {
	if !c.cur.valid(len(c.entries)) {
		return Key{}, false
	}
	return c.entries[c.cur.pos].key, true
}

// Next advances the cursor and returns the value it lands on. Past the
// last entry the cursor stays past last until reset.
func (c *Collection) Next() (any, bool) {
	if !c.cur.valid(len(c.entries)) {
		return nil, false
	}
	c.cur.pos++
	if c.cur.pos >= len(c.entries) {
		c.cur.at = PastLast
		return nil, false
	}
	return c.Current()
}

// Prev moves the cursor back and returns the value it lands on. Before the
// first entry the cursor stays before first until reset.
func (c *Collection) Prev() (any, bool) {
	if !c.cur.valid(len(c.entries)) {
		return nil, false
	}
	if c.cur.pos == 0 {
		c.cur.at = BeforeFirst
		return nil, false
	}
	c.cur.pos--
	return c.Current()
}

// ResetToFirst moves the cursor to the first entry and returns its value.
func (c *Collection) ResetToFirst() (any, bool) {
	c.cur = cursor{at: OnEntry}
	return c.Current()
}

// ResetToLast moves the cursor to the last entry and returns its value.
func (c *Collection) ResetToLast() (any, bool) {
	c.cur = cursor{at: OnEntry, pos: max(len(c.entries)-1, 0)}
	return c.Current()
}

// Pair returns the entry under the cursor and then advances the cursor.
func (c *Collection) Pair() (Key, any, bool) {
	k, ok := c.Key()
	if !ok {
		return Key{}, nil, false
	}
	v, _ := c.Current()
	c.Next()
	return k, v, true
}
