// Package nfa provides an NFA with epsilon transitions and the Thompson-style
// operators (base, union, concat, kleene) needed to compile a regular
// expression before it is determinised into a DFA.
package nfa

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the Builder API.
var (
	// ErrInvalidState indicates a StateID that does not belong to the NFA
	// being built or queried.
	ErrInvalidState = errors.New("nfa: invalid state id")

	// ErrInvalidSymbol indicates an edge label that could not be recorded,
	// for example an empty multi-symbol string passed to AddEdge.
	ErrInvalidSymbol = errors.New("nfa: invalid edge label")
)

// BuildError wraps a builder-time failure with the offending state.
type BuildError struct {
	Message string
	StateID StateID
	Err     error
}

func (e *BuildError) Error() string {
	if e.StateID != InvalidState {
		return fmt.Sprintf("nfa build error at state %d: %s", e.StateID, e.Message)
	}
	return fmt.Sprintf("nfa build error: %s", e.Message)
}

func (e *BuildError) Unwrap() error { return e.Err }
