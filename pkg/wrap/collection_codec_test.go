package wrap

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestIndexOf(t *testing.T) {
	t.Parallel()
	c := FromSlice([]any{"1", 1, int64(1), 1.0})

	k, ok := c.IndexOf(1, false)
	require.True(t, ok)
	assert.Equal(t, IntKey(0), k, "loose equality matches the numeric string")

	k, ok = c.IndexOf(1, true)
	require.True(t, ok)
	assert.Equal(t, IntKey(1), k)

	k, ok = c.IndexOf(NewNumber(int64(1)), true)
	require.True(t, ok)
	assert.Equal(t, IntKey(2), k)

	_, ok = c.IndexOf("2", false)
	assert.False(t, ok)

	assert.True(t, c.Has(1.0, true))
	assert.False(t, c.Has(float32(1), true))
}

type holder struct {
	A any
}

func TestIndexOf_UncomparableFields(t *testing.T) {
	t.Parallel()
	c := FromSlice([]any{holder{A: []int{1}}, holder{A: 2}})

	k, ok := c.IndexOf(holder{A: []int{1}}, true)
	require.True(t, ok)
	assert.Equal(t, IntKey(0), k)

	k, ok = c.IndexOf(holder{A: 2}, true)
	require.True(t, ok)
	assert.Equal(t, IntKey(1), k)

	_, ok = c.IndexOf(holder{A: []int{3}}, false)
	assert.False(t, ok)

	assert.Equal(t, 2, c.Without(holder{A: []int{2}}).Size())
	assert.Equal(t, 1, c.Without(holder{A: []int{1}}).Size())
	assert.Equal(t, []Key{}, FromSlice([]any{[]any{holder{A: map[string]int{}}}}).SearchRecursive(holder{A: 1}, 0, true))
}

func TestIndexOf_LooseNil(t *testing.T) {
	t.Parallel()
	c := FromSlice([]any{"0", 0, ""})

	k, ok := c.IndexOf(nil, false)
	require.True(t, ok)
	assert.Equal(t, IntKey(1), k, "nil compares to strings as the empty string")

	assert.Equal(t, []any{"0"}, c.Without(nil).Get())
	assert.True(t, looseEqual(nil, false))
	assert.False(t, looseEqual("0", nil))
	assert.True(t, looseEqual("", nil))
}

func TestSearchRecursive(t *testing.T) {
	t.Parallel()
	c := FromPairs(
		Pair{Key: StrKey("a"), Value: []any{1, map[string]any{"b": 2}}},
		Pair{Key: StrKey("c"), Value: 3},
	)

	assert.Equal(t, []Key{StrKey("a"), IntKey(1), StrKey("b")}, c.SearchRecursive(2, 0, false))
	assert.Equal(t, []Key{StrKey("c")}, c.SearchRecursive(3, 0, false))
	assert.Equal(t, []Key{StrKey("a"), IntKey(0)}, c.SearchRecursive("1", 0, false))
	assert.Equal(t, []Key{}, c.SearchRecursive("1", 0, true))
	assert.Equal(t, []Key{}, c.SearchRecursive(9, 0, false))
}

func TestSearchRecursive_MinDepth(t *testing.T) {
	t.Parallel()
	c := FromSlice([]any{5, []any{5}})

	assert.Equal(t, []Key{IntKey(0)}, c.SearchRecursive(5, 0, true))
	assert.Equal(t, []Key{IntKey(1), IntKey(0)}, c.SearchRecursive(5, 1, true))
	assert.Equal(t, []Key{}, c.SearchRecursive(5, 2, true))
}

func TestEmptyCollection_KeepsShape(t *testing.T) {
	t.Parallel()

	m := FromMap(map[string]any{})
	assert.False(t, m.IsList())
	assert.Equal(t, "{}", m.ToJSON().String())
	assert.Equal(t, map[string]any{}, m.Get())
	assert.Equal(t, map[string]any{}, m.Clone().Get())

	var decoded Collection
	require.NoError(t, json.Unmarshal([]byte(`{}`), &decoded))
	assert.Equal(t, "{}", decoded.ToJSON().String())
	require.NoError(t, json.Unmarshal([]byte(`[]`), &decoded))
	assert.Equal(t, "[]", decoded.ToJSON().String())

	var y Collection
	require.NoError(t, yaml.Unmarshal([]byte("{}\n"), &y))
	assert.Equal(t, map[string]any{}, y.Get())

	assert.Equal(t, "[]", NewCollection().ToJSON().String())
	assert.Equal(t, "{}", MustWrap(map[int]string{}).ToJSON().String())
}

func TestToJSON_Shape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   *Collection
		want string
	}{
		{"empty", NewCollection(), `[]`},
		{"list", FromSlice([]any{1, "a", nil, true}), `[1, "a", null, true]`},
		{"object", abc(), `{"a": 1, "b": 2, "c": 3}`},
		{"gap", NewCollection().Set(IntKey(1), "x"), `{"1": "x"}`},
		{"out of order", NewCollection().Set(IntKey(1), "x").Set(IntKey(0), "y"), `{"1": "x", "0": "y"}`},
		{"nested", FromSlice([]any{map[string]any{"k": []any{1.5}}, FromSlice([]any{"<"})}), `[{"k": [1.5]}, ["<"]]`},
		{"func", FromSlice([]any{func() {}}), `[null]`},
		{"struct", FromSlice([]any{point{X: 1, Y: 2}}), `[{"X": 1, "Y": 2}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.in.ToJSON().String())
		})
	}
}

func TestJSON_RoundTripKeepsOrder(t *testing.T) {
	t.Parallel()
	doc := `{"z": 1, "a": [1, 2.5, {"y": null, "b": true}], "10": "ten"}`

	var c Collection
	require.NoError(t, json.Unmarshal([]byte(doc), &c))

	assert.Equal(t, []any{"z", "a", 10}, c.Keys().Get())
	assert.Equal(t, doc, c.ToJSON().String())

	out, err := json.Marshal(&c)
	require.NoError(t, err)
	assert.JSONEq(t, doc, string(out))

	nested, ok := c.Extract(StrKey("a"), IntKey(2))
	require.True(t, ok)
	assert.IsType(t, &Collection{}, nested)

	v, _ := c.Extract(StrKey("a"), IntKey(0))
	assert.Equal(t, 1, v)
}

func TestJSON_UnmarshalErrors(t *testing.T) {
	t.Parallel()
	c := NewCollection()

	err := json.Unmarshal([]byte(`"scalar"`), c)
	var tm TypeMismatchError
	require.True(t, errors.As(err, &tm))
	assert.Equal(t, KindCollection, tm.Want)

	assert.Error(t, json.Unmarshal([]byte(`[1,`), c))

	c.Push("kept")
	require.NoError(t, json.Unmarshal([]byte(`null`), c))
	assert.Equal(t, 1, c.Size())

	assert.ErrorIs(t, c.UnmarshalJSON([]byte(`[1] [2]`)), ErrTrailingData)
	assert.Error(t, c.UnmarshalJSON([]byte(`{"a": 1}}`)))
	assert.Equal(t, 1, c.Size(), "a rejected document leaves the collection unchanged")
	require.NoError(t, c.UnmarshalJSON([]byte(" [1, 2] \n")))
	assert.Equal(t, 2, c.Size())
}

func TestYAML_RoundTripKeepsOrder(t *testing.T) {
	t.Parallel()
	doc := "z: 1\na:\n    - x\n    - y: 2\n      b: false\n3: three\n"

	var c Collection
	require.NoError(t, yaml.Unmarshal([]byte(doc), &c))
	assert.Equal(t, []any{"z", "a", 3}, c.Keys().Get())

	out, err := yaml.Marshal(&c)
	require.NoError(t, err)
	assert.Equal(t, doc, string(out))
}

func TestYAML_ScalarDocument(t *testing.T) {
	t.Parallel()
	var c Collection

	err := yaml.Unmarshal([]byte("just text"), &c)
	var tm TypeMismatchError
	assert.True(t, errors.As(err, &tm))
}

func TestToNative(t *testing.T) {
	t.Parallel()
	nested := FromSlice([]any{1})

	assert.Equal(t, []any{}, NewCollection().ToNative(true))
	assert.Equal(t, map[int]any{2: "x"}, NewCollection().Set(IntKey(2), "x").ToNative(true))
	assert.Equal(t, map[string]any{"1": "x", "a": []any{1}},
		NewCollection().Set(IntKey(1), "x").Set(StrKey("a"), nested).ToNative(true))

	shallow := FromSlice([]any{nested}).ToNative(false).([]any)
	assert.Same(t, nested, shallow[0])
}

func TestDecode_IntoStruct(t *testing.T) {
	t.Parallel()
	type target struct {
		Name  string
		Port  int    `wrap:"port"`
		Debug bool   `wrap:"debug"`
		Tags  []string
	}

	c := FromMap(map[string]any{
		"Name":  "svc",
		"port":  "8080",
		"debug": 1,
		"Tags":  []any{"a", "b"},
	})

	var out target
	require.NoError(t, c.Decode(&out))
	assert.Equal(t, target{Name: "svc", Port: 8080, Debug: true, Tags: []string{"a", "b"}}, out)
}
