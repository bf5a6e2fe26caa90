package dfa

import (
	"fmt"

	"github.com/corefsm/automata/alphabet"
	"github.com/corefsm/automata/internal/conv"
)

// StateID uniquely identifies a state within one DFA. It is only valid in
// the automaton that minted it.
type StateID uint32

// InvalidState is a sentinel for "no such state" and for an undefined
// transition table entry.
const InvalidState StateID = 0xFFFFFFFF

type dfaState struct {
	accepting bool
	trans     []StateID // indexed by alphabet position; InvalidState if unset
}

// DFA is a deterministic finite automaton over a fixed alphabet. States are
// dense ids in [0, NumStates); the start state is always 0. The transition
// table is a dense numStates x alphabet.Len() grid, mirroring the source
// algorithm's adjacency-dict-of-dicts but keyed by position instead of by
// symbol so a lookup never allocates.
type DFA struct {
	alphabet alphabet.Alphabet
	states   []dfaState
	start    StateID
	numEdges int

	analysesValid bool
	analyses      analysisResult
}

// Alphabet returns the alphabet this DFA is built over.
func (d *DFA) Alphabet() alphabet.Alphabet { return d.alphabet }

// NumStates returns the number of states.
func (d *DFA) NumStates() int { return len(d.states) }

// Start returns the start state, always 0.
func (d *DFA) Start() StateID { return d.start }

// IsAccepting reports whether id is an accepting state.
func (d *DFA) IsAccepting(id StateID) bool {
	return int(id) < len(d.states) && d.states[id].accepting
}

// Accepting returns all accepting state ids in ascending order.
func (d *DFA) Accepting() []StateID {
	var out []StateID
	for i, s := range d.states {
		if s.accepting {
			out = append(out, StateID(i))
		}
	}
	return out
}

// Transition returns the state reached from id on symbol, and whether that
// transition is defined.
func (d *DFA) Transition(id StateID, symbol alphabet.Symbol) (StateID, bool) {
	idx, ok := d.alphabet.IndexOf(symbol)
	if !ok || int(id) >= len(d.states) {
		return InvalidState, false
	}
	t := d.states[id].trans[idx]
	return t, t != InvalidState
}

// Step advances id by one symbol, reporting both the resulting state and
// whether it is accepting in one call. It supplements the source
// algorithm's find_state, which returns a (state, is-accepting) pair
// because the Python source's adjacency dicts raise KeyError on their own
// for a missing transition; Go callers need ErrUnknownSymbol spelled out
// instead. The returned state is InvalidState on error.
func (d *DFA) Step(id StateID, symbol alphabet.Symbol) (next StateID, accepting bool, err error) {
	idx, ok := d.alphabet.IndexOf(symbol)
	if !ok {
		return InvalidState, false, ErrUnknownSymbol
	}
	if int(id) >= len(d.states) {
		return InvalidState, false, ErrInvalidState
	}
	next = d.states[id].trans[idx]
	if next == InvalidState {
		return InvalidState, false, nil
	}
	return next, d.IsAccepting(next), nil
}

// Accepts reports whether word is in the language recognised by d. Symbols
// outside the alphabet, or transitions left undefined, cause a false result
// rather than an error: Accepts is a total predicate over all possible
// strings, not just well-formed ones.
func (d *DFA) Accepts(word string) bool {
	cur := d.start
	for _, r := range word {
		next, ok := d.Transition(cur, r)
		if !ok {
			return false
		}
		cur = next
	}
	return d.IsAccepting(cur)
}

// IsComplete reports whether every state has a defined transition for every
// symbol in the alphabet.
func (d *DFA) IsComplete() bool {
	return d.numEdges == len(d.states)*d.alphabet.Len()
}

// NumEdges returns the number of defined transitions.
func (d *DFA) NumEdges() int { return d.numEdges }

func (d *DFA) String() string {
	return fmt.Sprintf("DFA{states: %d, start: %d, accepting: %v, complete: %v}",
		len(d.states), d.start, d.Accepting(), d.IsComplete())
}

// Builder constructs a DFA incrementally, following the same builder idiom
// used for nfa.Builder: the operator functions in this package describe only
// the wiring, and Builder does the bookkeeping.
type Builder struct {
	alphabet alphabet.Alphabet
	states   []dfaState
	numEdges int
}

// NewBuilder returns a Builder with no states, over the given alphabet.
func NewBuilder(alpha alphabet.Alphabet) *Builder {
	return &Builder{alphabet: alpha}
}

// AddState adds a fresh, non-accepting state with every transition
// undefined, and returns its id.
func (b *Builder) AddState() StateID {
	id := conv.IntToUint32(len(b.states))
	trans := make([]StateID, b.alphabet.Len())
	for i := range trans {
		trans[i] = InvalidState
	}
	b.states = append(b.states, dfaState{trans: trans})
	return StateID(id)
}

// NumStates returns the number of states added so far.
func (b *Builder) NumStates() int { return len(b.states) }

// SetAccepting marks state id as accepting or not.
func (b *Builder) SetAccepting(id StateID, accepting bool) error {
	if int(id) >= len(b.states) {
		return &OperationError{Message: "set accepting on unknown state", StateID: id}
	}
	b.states[id].accepting = accepting
	return nil
}

// AddEdge sets the transition from -> to on symbol. symbol must be in the
// builder's alphabet. Overwriting an already-defined edge is allowed and
// does not change numEdges.
func (b *Builder) AddEdge(from StateID, symbol alphabet.Symbol, to StateID) error {
	if int(from) >= len(b.states) {
		return &OperationError{Message: "edge source is not a known state", StateID: from}
	}
	if int(to) >= len(b.states) {
		return &OperationError{Message: "edge target is not a known state", StateID: to}
	}
	idx, ok := b.alphabet.IndexOf(symbol)
	if !ok {
		return &OperationError{Message: "symbol is not in the builder's alphabet", StateID: from, Err: ErrUnknownSymbol}
	}
	if b.states[from].trans[idx] == InvalidState {
		b.numEdges++
	}
	b.states[from].trans[idx] = to
	return nil
}

// Build finalizes the DFA. State 0 is always the start state.
func (b *Builder) Build() (*DFA, error) {
	if len(b.states) == 0 {
		return nil, &OperationError{Message: "cannot build a dfa with no states", StateID: InvalidState}
	}
	return &DFA{alphabet: b.alphabet, states: b.states, start: 0, numEdges: b.numEdges}, nil
}
