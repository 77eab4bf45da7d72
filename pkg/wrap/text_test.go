package wrap

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextOf(t *testing.T) {
	t.Parallel()

	w, err := TextOf(label("x"))
	require.NoError(t, err)
	assert.Equal(t, "x", w.Get())

	_, err = TextOf(1)
	var tm TypeMismatchError
	require.True(t, errors.As(err, &tm))
	assert.Equal(t, KindText, tm.Want)
	assert.Equal(t, "int", tm.Got)
}

func TestText_Rendering(t *testing.T) {
	t.Parallel()
	w := NewText(`a"b<`)

	assert.Equal(t, `a"b<`, w.String())
	assert.Equal(t, `"a\"b<"`, w.ToJSON().String())
	assert.Equal(t, `"a\"b<"`, w.Visualize().String())
	assert.Same(t, w, w.ToString())
}

func TestText_Trim(t *testing.T) {
	t.Parallel()
	w := NewText("--  hi \n--")

	assert.Equal(t, "hi", NewText("  hi\n\t").Trim(Both, "").String())
	assert.Equal(t, "  hi \n--", w.Trim(Left, "-").String())
	assert.Equal(t, "--  hi \n", w.Trim(Right, "-").String())
	assert.Equal(t, "--  hi \n", w.Chop("-").String())
}

func TestText_Pad(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "00007", NewText("7").Pad(Left, 5, "0").String())
	assert.Equal(t, "ab-=-", NewText("ab").Pad(Right, 5, "-=").String())
	assert.Equal(t, "*ab**", NewText("ab").Pad(Both, 5, "*").String())
	assert.Equal(t, "long", NewText("long").Pad(Both, 2, "*").String())
}

func TestText_MaxRepeatReplace(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Hello...", NewText("Hello world").Max(5, "...").String())
	assert.Equal(t, "Hello", NewText("Hello").Max(3, "...").String())
	assert.Equal(t, "abab", NewText("ab").Repeat(2).String())
	assert.Equal(t, "", NewText("ab").Repeat(-1).String())

	out, n := NewText("a-b-c").Replace("-", "+")
	assert.Equal(t, "a+b+c", out.String())
	assert.Equal(t, 2, n)
}

func TestText_Slice(t *testing.T) {
	t.Parallel()
	w := NewText("héllo")

	assert.Equal(t, 5, w.Length())
	assert.Equal(t, "éll", w.Slice(1, 3).String())
	assert.Equal(t, "llo", w.Slice(-3).String())
	assert.Equal(t, "héll", w.Slice(0, -1).String())
	assert.Equal(t, "", w.Slice(10).String())

	ch, ok := w.CharAt(1)
	require.True(t, ok)
	assert.Equal(t, "é", ch.String())
	_, ok = w.CharAt(5)
	assert.False(t, ok)
}

func TestText_Parse(t *testing.T) {
	t.Parallel()

	c, err := NewText("v2024-05").Parse(`(?P<year>\d+)-(\d+)`)
	require.NoError(t, err)
	assert.Equal(t, []any{0, "year", 1, 2}, c.Keys().Get())
	assert.Equal(t, []any{"2024-05", "2024", "2024", "05"}, c.Values().Get())

	c, err = NewText("none").Parse(`\d`)
	require.NoError(t, err)
	assert.True(t, c.IsEmpty())

	_, err = NewText("x").Parse(`(`)
	assert.Error(t, err)

	ok, err := NewText("abc").IsMatch(`^a.c$`)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestText_Case(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ABC", NewText("abc").Uppercase().String())
	assert.Equal(t, "abc", NewText("ABC").Lowercase().String())
	assert.Equal(t, "Hello World", NewText("hello world").Title().String())
	assert.Equal(t, "&lt;a href=&#39;x&#39;&gt;", NewText("<a href='x'>").HTMLEscape().String())
}

func TestText_Decode(t *testing.T) {
	t.Parallel()

	c, err := NewText("b=2&a=1&a=3").Decode()
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": []any{"1", "3"}, "b": "2"}, c.Get())
	assert.Equal(t, []any{"a", "b"}, c.Keys().Get())

	_, err = NewText("%zz").Decode()
	assert.Error(t, err)
}

func TestText_SplitChunkChars(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []any{"a", "b", "c"}, NewText("a,b,c").Split(",").Get())
	assert.Equal(t, []any{}, NewText("").Split(",").Get())
	assert.Equal(t, []any{"ab", "cd", "e"}, NewText("abcde").Chunk(2).Get())
	assert.Equal(t, []any{"h", "é"}, NewText("hé").Chars().Get())
}

func TestText_ToInt(t *testing.T) {
	t.Parallel()

	assert.Equal(t, int64(42), NewText(" 42abc").ToInt().Int())
	assert.Equal(t, int64(-7), NewText("-7").ToInt().Int())
	assert.Equal(t, int64(0), NewText("abc").ToInt().Int())
	assert.True(t, NewText("1.9").ToInt().IsInt())
}

func TestText_AltAndCompare(t *testing.T) {
	t.Parallel()
	alt := NewText("alt")

	assert.Same(t, alt, NewText("").Alt(alt))
	assert.Equal(t, "0", NewText("0").Alt(alt).Get())
	assert.True(t, NewText("10").Gt(9).Succeeded())
	assert.True(t, NewText("b").Gt("a").Succeeded())
	assert.True(t, NewText("1.0").Eq(1).Succeeded())
	assert.False(t, NewText("x").Lt(1).Succeeded())
}
