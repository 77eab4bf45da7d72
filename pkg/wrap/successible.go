package wrap

import "github.com/google/uuid"

// State is the tri-state of the assertion protocol.
type State int8

const (
	Unknown State = iota
	True
	False
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case True:
		return "true"
	case False:
		return "false"
	default:
		return "unknown"
	}
}

func stateOf(b bool) State {
	if b {
		return True
	}
	return False
}

// Assertion is embedded in every wrapper and carries its assertion state.
// Chain operations return the concrete wrapper W so a chain keeps its type.
//
// A check passed to Is, Not, AndIs or AndNot is coerced to a bool:
//   - func(W) bool, func(W) any, func(Wrapper) bool, func(Wrapper) any and
//     func() bool are called, with the wrapper as argument where they take one
//   - a Successible contributes its Succeeded state
//   - anything else is converted with Truthy
type Assertion[W any] struct {
	state State
	self  W
}

func (a *Assertion[W]) bind(self W) {
	a.self = self
}

func (a *Assertion[W]) wrapper() Wrapper {
	w, _ := any(a.self).(Wrapper)
	return w
}

// State returns the current tri-state.
func (a *Assertion[W]) State() State {
	return a.state
}

// Succeeded returns true only if the state is True.
func (a *Assertion[W]) Succeeded() bool {
	return a.state == True
}

// Failed returns true unless the state is True, so Unknown reads as a failure.
func (a *Assertion[W]) Failed() bool {
	return a.state != True
}

// Is sets the state to the coerced check.
func (a *Assertion[W]) Is(check any) W {
	a.state = stateOf(a.check(check))
	return a.self
}

// Not sets the state to the negated coerced check.
func (a *Assertion[W]) Not(check any) W {
	a.state = stateOf(!a.check(check))
	return a.self
}

// AndIs behaves like Is unless the state is already False.
func (a *Assertion[W]) AndIs(check any) W {
	if a.state == False {
		return a.self
	}
	return a.Is(check)
}

// AndNot behaves like Not unless the state is already False.
func (a *Assertion[W]) AndNot(check any) W {
	if a.state == False {
		return a.self
	}
	return a.Not(check)
}

// OnSuccess calls fn when the state is True. If fn returns a Wrapper, that
// wrapper continues the chain; otherwise the receiver does.
func (a *Assertion[W]) OnSuccess(fn func(W) any) Wrapper {
	if fn == nil || a.state != True {
		return a.wrapper()
	}
	return a.continueWith(fn)
}

// OnFailure calls fn when the state is False. Unknown does not trigger it.
func (a *Assertion[W]) OnFailure(fn func(W) any) Wrapper {
	if fn == nil || a.state != False {
		return a.wrapper()
	}
	return a.continueWith(fn)
}

func (a *Assertion[W]) continueWith(fn func(W) any) Wrapper {
	if next, ok := fn(a.self).(Wrapper); ok && !IsNil(next) {
		return next
	}
	return a.wrapper()
}

func (a *Assertion[W]) check(check any) bool {
	switch c := check.(type) {
	case func(W) bool:
		return c(a.self)
	case func(W) any:
		return Truthy(c(a.self))
	case func(Wrapper) bool:
		return c(a.wrapper())
	case func(Wrapper) any:
		return Truthy(c(a.wrapper()))
	case func() bool:
		return c()
	case Successible:
		if IsNil(c) {
			return false
		}
		return c.Succeeded()
	default:
		return Truthy(check)
	}
}

type identity struct {
	id uuid.UUID
}

func newIdentity() identity {
	return identity{id: uuid.New()}
}

// ID returns the identity of the wrapper instance.
func (i identity) ID() uuid.UUID {
	return i.id
}
