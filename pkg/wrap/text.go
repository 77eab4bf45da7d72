package wrap

import (
	"bytes"
	"encoding/json"
	"html"
	"net/url"
	"reflect"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TrimDefaults are the characters Trim removes when given none.
const TrimDefaults = " \t\n\r\x00\x0B"

// Direction selects a side or a traversal order.
type Direction int

const (
	Left  Direction = -1
	Both  Direction = 0
	Right Direction = 1
)

// Text wraps an immutable string. Lengths and offsets count runes.
type Text struct {
	Assertion[*Text]
	identity
	value string
}

// NewText wraps s.
func NewText(s string) *Text {
	w := &Text{identity: newIdentity(), value: s}
	w.bind(w)
	return w
}

// TextOf wraps v if its kind is string.
func TextOf(v any) (*Text, error) {
	if v != nil {
		if rv := reflect.ValueOf(v); rv.Kind() == reflect.String {
			return NewText(rv.String()), nil
		}
	}
	return nil, TypeMismatchError{Want: KindText, Got: typeName(v)}
}

func (*Text) sealed() {}

// Kind implements the Wrapper interface.
func (*Text) Kind() Kind { return KindText }

// Get returns the string.
func (t *Text) Get() any { return t.value }

// String implements the fmt.Stringer interface.
func (t *Text) String() string { return t.value }

// ToString returns the receiver.
func (t *Text) ToString() *Text { return t }

// ToJSON returns the string as a JSON string literal.
func (t *Text) ToJSON() *Text { return NewText(jsonString(t.value)) }

// Visualize returns the string as a quoted Go literal.
func (t *Text) Visualize() *Text { return NewText(strconv.Quote(t.value)) }

// Copy implements the Wrapper interface.
func (t *Text) Copy() Wrapper { return t.Clone() }

// Clone returns an independent duplicate.
func (t *Text) Clone() *Text {
	c := NewText(t.value)
	c.state = t.state
	return c
}

func jsonString(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// encoding a string can not fail
	_ = enc.Encode(s)
	return strings.TrimSuffix(buf.String(), "\n")
}

// Length returns the number of runes.
func (t *Text) Length() int { return utf8.RuneCountInString(t.value) }

// IsEmpty reports whether the string has no characters.
func (t *Text) IsEmpty() bool { return t.value == "" }

// Alt returns the alternative when the string is empty.
func (t *Text) Alt(alternative Wrapper) Wrapper {
	if !t.IsEmpty() || IsNil(alternative) {
		return t
	}
	return alternative
}

// Gt sets the state to whether the text orders after v. Numeric strings
// compare as numbers.
func (t *Text) Gt(v any) *Text {
	cmp, ok := looseCompare(t.value, v)
	return t.Is(ok && cmp > 0)
}

// Lt sets the state to whether the text orders before v.
func (t *Text) Lt(v any) *Text {
	cmp, ok := looseCompare(t.value, v)
	return t.Is(ok && cmp < 0)
}

// Eq sets the state to whether the text loosely equals v.
func (t *Text) Eq(v any) *Text {
	return t.Is(looseEqual(t.value, v))
}

// CharAt returns the character at index i.
func (t *Text) CharAt(i int) (*Text, bool) {
	r := []rune(t.value)
	if i < 0 || i >= len(r) {
		return nil, false
	}
	return NewText(string(r[i])), true
}

// Trim removes chars from the given side. An empty chars uses TrimDefaults.
func (t *Text) Trim(side Direction, chars string) *Text {
	if chars == "" {
		chars = TrimDefaults
	}
	switch {
	case side < 0:
		return NewText(strings.TrimLeft(t.value, chars))
	case side > 0:
		return NewText(strings.TrimRight(t.value, chars))
	default:
		return NewText(strings.Trim(t.value, chars))
	}
}

// Chop trims chars from the right.
func (t *Text) Chop(chars string) *Text { return t.Trim(Right, chars) }

// Prepend returns s followed by the text.
func (t *Text) Prepend(s string) *Text { return NewText(s + t.value) }

// Append returns the text followed by s.
func (t *Text) Append(s string) *Text { return NewText(t.value + s) }

// Pad extends the text to length runes by repeating padding on the given
// side. Nothing happens when length does not exceed the current length.
func (t *Text) Pad(side Direction, length int, padding string) *Text {
	if padding == "" {
		padding = " "
	}
	missing := length - t.Length()
	if missing <= 0 {
		return NewText(t.value)
	}
	fill := func(n int) string {
		p := []rune(strings.Repeat(padding, n/utf8.RuneCountInString(padding)+1))
		return string(p[:n])
	}
	switch {
	case side < 0:
		return NewText(fill(missing) + t.value)
	case side > 0:
		return NewText(t.value + fill(missing))
	default:
		left := missing / 2
		return NewText(fill(left) + t.value + fill(missing-left))
	}
}

// Max cuts the text to max runes and appends suffix, but only when the text
// is longer than max plus the suffix.
func (t *Text) Max(max int, suffix string) *Text {
	r := []rune(t.value)
	if max >= 0 && len(r) > max+utf8.RuneCountInString(suffix) {
		return NewText(string(r[:max]) + suffix)
	}
	return NewText(t.value)
}

// Repeat returns the text repeated n times.
func (t *Text) Repeat(n int) *Text {
	if n <= 0 {
		return NewText("")
	}
	return NewText(strings.Repeat(t.value, n))
}

// Replace replaces every occurrence of search and reports how many there were.
func (t *Text) Replace(search, replacement string) (*Text, int) {
	if search == "" {
		return NewText(t.value), 0
	}
	count := strings.Count(t.value, search)
	return NewText(strings.ReplaceAll(t.value, search, replacement)), count
}

// Slice returns the runes from offset, optionally limited to length. A
// negative offset counts from the end and a negative length leaves that
// many runes off the end.
func (t *Text) Slice(offset int, length ...int) *Text {
	r := []rune(t.value)
	start, end := sliceBounds(len(r), offset, length...)
	return NewText(string(r[start:end]))
}

// sliceBounds resolves offset and optional length against n elements.
func sliceBounds(n, offset int, length ...int) (int, int) {
	if offset < 0 {
		offset = max(n+offset, 0)
	}
	if offset > n {
		return n, n
	}
	end := n
	if len(length) > 0 {
		l := length[0]
		if l < 0 {
			end = n + l
		} else {
			end = offset + l
		}
	}
	end = min(max(end, offset), n)
	return offset, end
}

// Parse matches pattern against the text and returns the full match followed
// by its groups. Named groups are also stored under their name.
func (t *Text) Parse(pattern string) (*Collection, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	out := NewCollection()
	matches := re.FindStringSubmatch(t.value)
	names := re.SubexpNames()
	for i, m := range matches {
		if names[i] != "" {
			out.Set(StrKey(names[i]), m)
		}
		out.Set(IntKey(i), m)
	}
	return out, nil
}

// IsMatch reports whether the text matches pattern.
func (t *Text) IsMatch(pattern string) (bool, error) {
	return regexp.MatchString(pattern, t.value)
}

// Lowercase returns the text in lower case.
func (t *Text) Lowercase() *Text {
	return NewText(cases.Lower(language.Und).String(t.value))
}

// Uppercase returns the text in upper case.
func (t *Text) Uppercase() *Text {
	return NewText(cases.Upper(language.Und).String(t.value))
}

// Title returns the text with the first letter of every word in upper case.
func (t *Text) Title() *Text {
	return NewText(cases.Title(language.Und, cases.NoLower).String(t.value))
}

// HTMLEscape escapes the characters <, >, &, ' and ".
func (t *Text) HTMLEscape() *Text {
	return NewText(html.EscapeString(t.value))
}

// Decode parses the text as a URL query. Keys are sorted; a key given once
// maps to its string, a repeated key to a list of strings.
func (t *Text) Decode() (*Collection, error) {
	values, err := url.ParseQuery(t.value)
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := NewCollection()
	for _, k := range keys {
		vs := values[k]
		if len(vs) == 1 {
			out.Set(StrKey(k), vs[0])
			continue
		}
		list := make([]any, len(vs))
		for i, v := range vs {
			list[i] = v
		}
		out.Set(StrKey(k), list)
	}
	return out, nil
}

// Split splits the text around every sep. An empty sep splits into characters.
func (t *Text) Split(sep string) *Collection {
	if t.IsEmpty() {
		return NewCollection()
	}
	if sep == "" {
		return t.Chars()
	}
	return fromStrings(strings.Split(t.value, sep))
}

// Chunk splits the text into pieces of size runes. A size below one splits
// into characters.
func (t *Text) Chunk(size int) *Collection {
	if size < 1 {
		return t.Chars()
	}
	r := []rune(t.value)
	out := NewCollection()
	for i := 0; i < len(r); i += size {
		out.Push(string(r[i:min(i+size, len(r))]))
	}
	return out
}

// Chars splits the text into characters.
func (t *Text) Chars() *Collection {
	out := NewCollection()
	for _, r := range t.value {
		out.Push(string(r))
	}
	return out
}

// ToInt returns the integer at the start of the text, or zero.
func (t *Text) ToInt() *Number {
	s := strings.TrimLeftFunc(t.value, unicode.IsSpace)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return NewNumber(0)
	}
	// out of range values saturate
	n, _ := strconv.ParseInt(s[:end], 10, 64)
	return NewNumber(n)
}

func fromStrings(ss []string) *Collection {
	out := NewCollection()
	for _, s := range ss {
		out.Push(s)
	}
	return out
}
