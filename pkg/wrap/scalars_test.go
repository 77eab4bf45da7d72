package wrap

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAbsent(t *testing.T) {
	t.Parallel()
	a := NewAbsent()

	assert.Nil(t, a.Get())
	assert.Equal(t, "nil", a.Visualize().String())
	assert.Equal(t, "null", a.ToJSON().String())
	assert.True(t, a.IsEmpty())

	alt := NewNumber(1)
	assert.Same(t, alt, a.Alt(alt))
	assert.Same(t, a, a.Alt(nil))
}

func TestBoolean(t *testing.T) {
	t.Parallel()
	b := NewBoolean(false)

	assert.Equal(t, false, b.Get())
	assert.Equal(t, "false", b.ToJSON().String())
	assert.True(t, b.IsFalse())
	assert.Equal(t, "x", b.Alt(NewText("x")).Get())
	assert.True(t, b.Eq(0).Succeeded())

	_, err := BooleanOf("true")
	var tm TypeMismatchError
	require.True(t, errors.As(err, &tm))
	assert.Equal(t, KindBoolean, tm.Want)
}

func TestNumber_Rendering(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "200", NewNumber(uint8(200)).String())
	assert.Equal(t, "-3", NewNumber(-3).String())
	assert.Equal(t, "1.5", NewNumber(1.5).String())
	assert.Equal(t, "null", NewNumber(math.NaN()).ToJSON().String())
	assert.Equal(t, "null", NewNumber(math.Inf(1)).ToJSON().String())
	assert.Equal(t, uint8(200), NewNumber(uint8(200)).Get())
}

type celsius float64

func TestNumber_NamedTypesAndPredicate(t *testing.T) {
	t.Parallel()
	n := NewNumber(celsius(21.5))

	assert.Equal(t, celsius(21.5), n.Get())
	assert.Equal(t, 21.5, n.Float())
	assert.True(t, n.Is(Numeric).Succeeded())
	assert.True(t, NewText("7").Is(Numeric).Succeeded())
}

func TestNumber_Math(t *testing.T) {
	t.Parallel()

	abs := NewNumber(-3).Abs()
	assert.True(t, abs.IsInt())
	assert.Equal(t, int64(3), abs.Int())
	assert.Equal(t, 2.5, NewNumber(-2.5).Abs().Float())
	assert.Equal(t, 3.0, NewNumber(2.5).Round().Float())
	assert.Equal(t, 2.0, NewNumber(2.5).Floor().Float())
	assert.Equal(t, 3.0, NewNumber(2.1).Ceil().Float())
	assert.Equal(t, 1024.0, NewNumber(2).Pow(10).Float())
	assert.Equal(t, 3.0, NewNumber(9).Sqrt().Float())
	assert.InDelta(t, 1.0, NewNumber(math.Pi/2).Sin().Float(), 1e-9)

	p, err := NewNumber(6).Times(7)
	require.NoError(t, err)
	assert.True(t, p.IsInt())
	assert.Equal(t, int64(42), p.Int())

	p, err = NewNumber(6).Times(NewNumber(2.5))
	require.NoError(t, err)
	assert.Equal(t, 15.0, p.Float())

	q, err := NewNumber(10).Divide(4)
	require.NoError(t, err)
	assert.Equal(t, 2.5, q.Float())

	_, err = NewNumber(1).Times("x")
	assert.Error(t, err)
}

func TestNumber_Bits(t *testing.T) {
	t.Parallel()

	hex, err := NewNumber(255).Rebase(10, 16)
	require.NoError(t, err)
	assert.Equal(t, "ff", hex.String())

	dec, err := NewNumber(11).Rebase(2, 10)
	require.NoError(t, err)
	assert.Equal(t, "3", dec.String())

	_, err = NewNumber(19).Rebase(8, 10)
	assert.Error(t, err)

	assert.True(t, NewNumber(6).HasBit(2))
	assert.False(t, NewNumber(6).HasBit(1))
	assert.Equal(t, int64(3), NewNumber(7).CountBits().Int())
}

func TestNumber_AltAndCompare(t *testing.T) {
	t.Parallel()
	alt := NewText("none")

	assert.Same(t, alt, NewNumber(0).Alt(alt))
	assert.Same(t, alt, NewNumber(-1).Alt(alt))
	assert.Equal(t, 1, NewNumber(1).Alt(alt).Get())

	assert.True(t, NewNumber(3).Gt("2").Succeeded())
	assert.True(t, NewNumber(3).Lt(3.5).Succeeded())
	assert.True(t, NewNumber(int8(3)).Eq(3.0).Succeeded())
	assert.True(t, NewNumber(math.Inf(-1)).IsInfinite())
}

func TestCallable_Call(t *testing.T) {
	t.Parallel()
	add, err := CallableOf(func(a, b int) int { return a + b })
	require.NoError(t, err)

	assert.Equal(t, 2, add.Arity())
	assert.Equal(t, "{func(int, int) int}", add.Visualize().String())
	assert.Equal(t, "null", add.ToJSON().String())

	out, err := add.Call(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, out.Get())

	out, err = add.Call(int64(1), 2.0)
	require.NoError(t, err)
	assert.Equal(t, 3, out.Get())

	out, err = add.Call(NewNumber(4), nil)
	require.NoError(t, err)
	assert.Equal(t, 4, out.Get())

	_, err = add.Call(1)
	var ce CallError
	require.True(t, errors.As(err, &ce))

	_, err = add.Call("1", 2)
	assert.Error(t, err)
}

func TestCallable_Results(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")

	failing, _ := CallableOf(func(string) (int, error) { return 0, boom })
	_, err := failing.Call("x")
	assert.ErrorIs(t, err, boom)

	ok, _ := CallableOf(func(s string) (int, error) { return len(s), nil })
	out, err := ok.Call("abc")
	require.NoError(t, err)
	assert.Equal(t, 3, out.Get())

	none, _ := CallableOf(func() {})
	out, err = none.Call()
	require.NoError(t, err)
	assert.Equal(t, KindAbsent, out.Kind())

	pair, _ := CallableOf(func() (int, string) { return 1, "a" })
	out, err = pair.Call()
	require.NoError(t, err)
	assert.Equal(t, []any{1, "a"}, out.Get())

	nilIface, _ := CallableOf(func() any { return nil })
	out, err = nilIface.Call()
	require.NoError(t, err)
	assert.Equal(t, KindAbsent, out.Kind())
}

func TestCallable_Variadic(t *testing.T) {
	t.Parallel()
	sum, _ := CallableOf(func(xs ...int) int {
		total := 0
		for _, x := range xs {
			total += x
		}
		return total
	})

	assert.True(t, sum.IsVariadic())
	out, err := sum.Call()
	require.NoError(t, err)
	assert.Equal(t, 0, out.Get())

	out, err = sum.Apply([]any{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 6, out.Get())
}

func TestCallable_Bind(t *testing.T) {
	t.Parallel()
	greet, _ := CallableOf(func(greeting, name string) string { return greeting + " " + name })

	hi, err := greet.Bind("hi")
	require.NoError(t, err)
	assert.Equal(t, 1, hi.Arity())

	out, err := hi.Call("bob")
	require.NoError(t, err)
	assert.Equal(t, "hi bob", out.Get())

	join, _ := CallableOf(func(sep string, parts ...string) string { return strings.Join(parts, sep) })
	dash, err := join.Bind("-")
	require.NoError(t, err)
	out, err = dash.Call("a", "b")
	require.NoError(t, err)
	assert.Equal(t, "a-b", out.Get())

	niladic, _ := CallableOf(func() {})
	_, err = niladic.Bind(1)
	assert.Error(t, err)

	onlyVariadic, _ := CallableOf(func(...int) {})
	_, err = onlyVariadic.Bind(1)
	assert.Error(t, err)
}

func TestCallable_Decorate(t *testing.T) {
	t.Parallel()
	add, _ := CallableOf(func(a, b int) int { return a + b })

	times10 := add.Decorate(func(inner *Callable, args []any) any {
		out, err := inner.Apply(args)
		if err != nil {
			return err
		}
		return out.Get().(int) * 10
	})

	out, err := times10.Call(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 30, out.Get())
}

func TestCallableOf_Rejects(t *testing.T) {
	t.Parallel()
	var nilFn func()

	_, err := CallableOf(nilFn)
	assert.Error(t, err)
	_, err = CallableOf(1)
	assert.Error(t, err)
}

type account struct {
	Owner   string
	Balance float64 `mapstructure:"balance"`
	secret  string
}

func (account) Close() {}

func TestObject(t *testing.T) {
	t.Parallel()
	acc := &account{Owner: "ann", Balance: 2.5, secret: "x"}

	o, err := ObjectOf(acc)
	require.NoError(t, err)

	assert.Equal(t, "account", o.BaseName())
	assert.Equal(t, "github.com/ib-77/wrap3/pkg/wrap.account", o.TypeName())
	assert.True(t, o.HasMethod("Close"))
	assert.False(t, o.HasMethod("Open"))
	assert.Same(t, acc, o.Get())

	vars, err := o.Vars()
	require.NoError(t, err)
	assert.Equal(t, []any{"Owner", "balance"}, vars.Keys().Get())
	assert.Equal(t, `{"Owner": "ann", "balance": 2.5}`, o.ToJSON().String())
}

func TestObject_NameIsStablePerPointer(t *testing.T) {
	t.Parallel()
	acc := &account{}

	first, _ := ObjectOf(acc)
	second, _ := ObjectOf(acc)
	other, _ := ObjectOf(&account{})

	assert.Equal(t, first.Name(), second.Name())
	assert.NotEqual(t, first.Name(), other.Name())
	assert.True(t, strings.HasPrefix(first.Name(), "account#"))
	assert.Equal(t, "object("+first.Name()+")", first.Visualize().String())
}

func TestObjectOf_Rejects(t *testing.T) {
	t.Parallel()
	var nilAcc *account

	_, err := ObjectOf(nilAcc)
	assert.Error(t, err)
	_, err = ObjectOf("x")
	assert.Error(t, err)
}
