package nfa

import "github.com/corefsm/automata/internal/conv"

// Builder constructs an NFA incrementally, state by state and edge by edge.
// The operators in ops.go (Base, Union, Concat, Kleene) are implemented on
// top of this low-level API, following the teacher's pattern of a builder
// doing the bookkeeping while operator functions describe only the wiring.
type Builder struct {
	states []state
}

// NewBuilder returns a Builder with no states. The first state added by
// AddState becomes state 0, the NFA's start state per the data model's
// invariant that start is always 0.
func NewBuilder() *Builder {
	return &Builder{}
}

// NewBuilderWithCapacity pre-allocates room for capacity states.
func NewBuilderWithCapacity(capacity int) *Builder {
	return &Builder{states: make([]state, 0, capacity)}
}

// AddState adds a fresh, non-accepting state with no outgoing edges and
// returns its id.
func (b *Builder) AddState() StateID {
	id := conv.IntToUint32(len(b.states))
	b.states = append(b.states, state{})
	return StateID(id)
}

// NumStates returns the number of states added so far.
func (b *Builder) NumStates() int { return len(b.states) }

// SetAccepting marks state id as accepting or not.
func (b *Builder) SetAccepting(id StateID, accepting bool) error {
	if int(id) >= len(b.states) {
		return &BuildError{Message: "set accepting on unknown state", StateID: id}
	}
	b.states[id].accepting = accepting
	return nil
}

// AddEdge adds an outgoing edge from -> to carrying label. Edges are kept in
// the order they are added.
func (b *Builder) AddEdge(from StateID, label Label, to StateID) error {
	if int(from) >= len(b.states) {
		return &BuildError{Message: "edge source is not a known state", StateID: from}
	}
	if int(to) >= len(b.states) {
		return &BuildError{Message: "edge target is not a known state", StateID: to}
	}
	if label.Kind == LabelString && label.Str == "" {
		return &BuildError{Message: "empty string label; use Epsilon instead", StateID: from, Err: ErrInvalidSymbol}
	}
	b.states[from].edges = append(b.states[from].edges, Edge{Target: to, Label: label})
	return nil
}

// AppendOffset copies every state and edge of src into b, shifting every
// state id (source, target, and the returned start id) by the number of
// states already present in b. This is the renumbering step every binary
// NFA operator (Union, Concat) needs to place two automata into a single
// contiguous id space, following the teacher's offset-append construction
// idea, adapted from a map-based offset table to direct slice append.
func (b *Builder) AppendOffset(src *NFA) (newStart StateID) {
	offset := conv.IntToUint32(len(b.states))
	for _, s := range src.states {
		edges := make([]Edge, len(s.edges))
		for i, e := range s.edges {
			edges[i] = Edge{Target: e.Target + StateID(offset), Label: e.Label}
		}
		b.states = append(b.states, state{accepting: s.accepting, edges: edges})
	}
	return src.start + StateID(offset)
}

// Build finalizes the NFA. The first state added (id 0) is always the start
// state.
func (b *Builder) Build() (*NFA, error) {
	if len(b.states) == 0 {
		return nil, &BuildError{Message: "cannot build an NFA with no states", StateID: InvalidState}
	}
	return &NFA{states: b.states, start: 0}, nil
}
