package wrap

import (
	"fmt"

	"github.com/google/uuid"
)

// Successible exposes the read side of the assertion protocol.
type Successible interface {
	// State returns the current tri-state
	State() State
	// Succeeded returns true only if the last assertion held; Unknown reads as false
	Succeeded() bool
	// Failed is the inverse of Succeeded; Unknown reads as true
	Failed() bool
}

// Wrapper is the contract shared by every variant.
type Wrapper interface {
	Successible
	fmt.Stringer
	// Kind returns the variant tag
	Kind() Kind
	// Get returns the native payload
	Get() any
	// ID returns the identity of this wrapper instance
	ID() uuid.UUID
	ToString() *Text
	ToJSON() *Text
	Visualize() *Text
	// Copy returns an independent duplicate with a new identity
	Copy() Wrapper

	sealed()
}

// Mapping is anything that can feed ordered entries into a Collection.
type Mapping interface {
	ToPairs() Pairs
}
