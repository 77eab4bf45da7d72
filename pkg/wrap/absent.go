package wrap

// Absent wraps the absence of a value.
type Absent struct {
	Assertion[*Absent]
	identity
}

// NewAbsent returns a wrapper around nothing.
func NewAbsent() *Absent {
	a := &Absent{identity: newIdentity()}
	a.bind(a)
	return a
}

func (*Absent) sealed() {}

// Kind implements the Wrapper interface.
func (*Absent) Kind() Kind { return KindAbsent }

// Get always returns nil.
func (*Absent) Get() any { return nil }

// String implements the fmt.Stringer interface.
func (*Absent) String() string { return "[wrap.Absent]" }

// ToString implements the Wrapper interface.
func (a *Absent) ToString() *Text { return NewText(a.String()) }

// ToJSON implements the Wrapper interface.
func (*Absent) ToJSON() *Text { return NewText("null") }

// Visualize implements the Wrapper interface.
func (*Absent) Visualize() *Text { return NewText("nil") }

// Copy implements the Wrapper interface.
func (a *Absent) Copy() Wrapper { return a.Clone() }

// Clone returns an independent duplicate.
func (a *Absent) Clone() *Absent {
	c := NewAbsent()
	c.state = a.state
	return c
}

// IsEmpty is always true.
func (*Absent) IsEmpty() bool { return true }

// Alt always returns the alternative.
func (a *Absent) Alt(alternative Wrapper) Wrapper {
	if IsNil(alternative) {
		return a
	}
	return alternative
}
