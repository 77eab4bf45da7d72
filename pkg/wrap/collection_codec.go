package wrap

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// ToJSON renders the collection as a JSON array when its keys are exactly
// 0..n-1 in order and as a JSON object otherwise. Values that have no JSON
// form, including a collection nested in itself, render as null.
func (c *Collection) ToJSON() *Text {
	var b strings.Builder
	c.writeJSON(&b, trail{})
	return NewText(b.String())
}

func (c *Collection) writeJSON(b *strings.Builder, t trail) {
	if !t.enter(c) {
		b.WriteString("null")
		return
	}
	defer t.leave(c)

	list := c.IsList()
	if list {
		b.WriteByte('[')
	} else {
		b.WriteByte('{')
	}
	for i, e := range c.entries {
		if i > 0 {
			b.WriteString(", ")
		}
		if !list {
			b.WriteString(jsonString(e.key.String()))
			b.WriteString(": ")
		}
		if nested, ok := e.value.(*Collection); ok && nested != nil {
			nested.writeJSON(b, t)
			continue
		}
		w, err := node(e.value)
		if err != nil {
			b.WriteString("null")
			continue
		}
		b.WriteString(w.ToJSON().String())
	}
	if list {
		b.WriteByte(']')
	} else {
		b.WriteByte('}')
	}
}

// MarshalJSON implements the json.Marshaler interface.
func (c *Collection) MarshalJSON() ([]byte, error) {
	return []byte(c.ToJSON().String()), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface. It replaces the
// entries with the document's in document order; null leaves the
// collection unchanged. Nested arrays and objects
// become collections, integral numbers ints and other numbers float64.
// Object keys that are canonical integers become int keys.
func (c *Collection) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		return nil
	}
	open, ok := tok.(json.Delim)
	if !ok {
		return TypeMismatchError{Want: KindCollection, Got: fmt.Sprintf("json %T", tok)}
	}
	decoded, err := decodeJSONCollection(dec, open)
	if err != nil {
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err == nil {
			err = ErrTrailingData
		}
		return err
	}
	c.replace(decoded)
	return nil
}

func decodeJSONCollection(dec *json.Decoder, open json.Delim) (*Collection, error) {
	c := NewCollection()
	if open == '{' {
		c.empty = emptyMap
	}
	for dec.More() {
		var key Key
		if open == '{' {
			tok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key = keyOfString(tok.(string))
		}
		v, err := decodeJSONValue(dec)
		if err != nil {
			return nil, err
		}
		if open == '{' {
			c.Set(key, v)
		} else {
			c.Push(v)
		}
	}
	// closing delimiter
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return c, nil
}

func decodeJSONValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		return decodeJSONCollection(dec, t)
	case json.Number:
		if i, err := strconv.ParseInt(t.String(), 10, 0); err == nil {
			return int(i), nil
		}
		return t.Float64()
	default:
		return t, nil
	}
}

// keyOfString turns canonical integer strings like "12" into int keys.
func keyOfString(s string) Key {
	if n, err := strconv.Atoi(s); err == nil && strconv.Itoa(n) == s {
		return IntKey(n)
	}
	return StrKey(s)
}

// replace takes over the entries of o and resets the cursor.
func (c *Collection) replace(o *Collection) {
	c.ensure()
	c.entries = o.entries
	c.index = o.index
	c.empty = o.empty
	c.cur = cursor{}
}

// MarshalYAML implements the yaml.Marshaler interface. The node keeps the
// entry order.
func (c *Collection) MarshalYAML() (any, error) {
	return c.yamlNode(trail{})
}

func (c *Collection) yamlNode(t trail) (*yaml.Node, error) {
	if !t.enter(c) {
		return nil, ErrCyclic
	}
	defer t.leave(c)

	n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	list := c.IsList()
	if list {
		n.Kind, n.Tag = yaml.SequenceNode, "!!seq"
	}
	for _, e := range c.entries {
		v, err := yamlValue(e.value, t)
		if err != nil {
			return nil, err
		}
		if list {
			n.Content = append(n.Content, v)
			continue
		}
		k := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.key.String()}
		if e.key.IsInt() {
			k.Tag = "!!int"
		}
		n.Content = append(n.Content, k, v)
	}
	return n, nil
}

func yamlValue(v any, t trail) (*yaml.Node, error) {
	if nested, ok := asCollection(v); ok {
		return nested.yamlNode(t)
	}
	n := &yaml.Node{}
	if err := n.Encode(Unwrap(v)); err != nil {
		return nil, err
	}
	return n, nil
}

// UnmarshalYAML implements the yaml.Unmarshaler interface. It replaces the
// entries with the document's in document order.
func (c *Collection) UnmarshalYAML(value *yaml.Node) error {
	v, err := decodeYAML(value)
	if err != nil {
		return err
	}
	decoded, ok := v.(*Collection)
	if !ok {
		return TypeMismatchError{Want: KindCollection, Got: "yaml " + typeName(v)}
	}
	c.replace(decoded)
	return nil
}

func decodeYAML(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return decodeYAML(n.Content[0])
	case yaml.AliasNode:
		return decodeYAML(n.Alias)
	case yaml.SequenceNode:
		c := NewCollection()
		for _, item := range n.Content {
			v, err := decodeYAML(item)
			if err != nil {
				return nil, err
			}
			c.Push(v)
		}
		return c, nil
	case yaml.MappingNode:
		c := NewCollection()
		c.empty = emptyMap
		for i := 0; i+1 < len(n.Content); i += 2 {
			if n.Content[i].Kind != yaml.ScalarNode {
				return nil, DispatchError{Type: "yaml " + n.Content[i].Tag + " key"}
			}
			v, err := decodeYAML(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			c.Set(keyOfString(n.Content[i].Value), v)
		}
		return c, nil
	default:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, err
		}
		return v, nil
	}
}

// ToNative converts the collection to a plain Go value: []any when the
// keys are 0..n-1 (nil for an empty collection wrapped from a nil slice), map[string]any when all keys are strings, map[int]any
// when all keys are ints and map[string]any with stringified keys for
// mixed keys. Nested collections are converted when recursive is true; a
// collection nested in itself becomes nil.
func (c *Collection) ToNative(recursive bool) any {
	return c.toNative(recursive, trail{})
}

func (c *Collection) toNative(recursive bool, t trail) any {
	if recursive {
		if !t.enter(c) {
			return nil
		}
		defer t.leave(c)
	}
	value := func(v any) any {
		if nested, ok := v.(*Collection); ok && recursive && nested != nil {
			return nested.toNative(true, t)
		}
		return v
	}

	if c.IsEmpty() && c.empty == emptyNilList {
		return []any(nil)
	}
	if c.IsList() {
		out := make([]any, len(c.entries))
		for i, e := range c.entries {
			out[i] = value(e.value)
		}
		return out
	}

	allInt := len(c.entries) > 0
	for _, e := range c.entries {
		allInt = allInt && e.key.IsInt()
	}
	if allInt {
		out := make(map[int]any, len(c.entries))
		for _, e := range c.entries {
			n, _ := e.key.Int()
			out[n] = value(e.value)
		}
		return out
	}
	out := make(map[string]any, len(c.entries))
	for _, e := range c.entries {
		out[e.key.String()] = value(e.value)
	}
	return out
}

// Decode copies the collection into out, usually a pointer to a struct.
// Fields are matched by their "wrap" tag or name and scalar types are
// converted where sensible.
func (c *Collection) Decode(out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		TagName:          "wrap",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(c.ToNative(true))
}
