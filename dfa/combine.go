package dfa

import "github.com/corefsm/automata/alphabet"

// MakeComplete returns a DFA equivalent to d but with every transition
// defined: a single fresh non-accepting sink state is added (if needed) and
// every previously-undefined transition, including every transition out of
// the sink itself, is routed to it. If d is already complete, MakeComplete
// still returns a fresh equivalent copy.
func MakeComplete(d *DFA) *DFA {
	if d.IsComplete() {
		b := NewBuilder(d.alphabet)
		for i := 0; i < d.NumStates(); i++ {
			b.AddState()
		}
		for i := 0; i < d.NumStates(); i++ {
			_ = b.SetAccepting(StateID(i), d.IsAccepting(StateID(i)))
			for _, sym := range d.alphabet.Symbols() {
				to, _ := d.Transition(StateID(i), sym)
				_ = b.AddEdge(StateID(i), sym, to)
			}
		}
		out, _ := b.Build()
		return out
	}

	b := NewBuilder(d.alphabet)
	for i := 0; i < d.NumStates(); i++ {
		b.AddState()
	}
	sink := b.AddState()
	for _, sym := range d.alphabet.Symbols() {
		_ = b.AddEdge(sink, sym, sink)
	}

	for i := 0; i < d.NumStates(); i++ {
		id := StateID(i)
		_ = b.SetAccepting(id, d.IsAccepting(id))
		for _, sym := range d.alphabet.Symbols() {
			to, ok := d.Transition(id, sym)
			if !ok {
				to = sink
			}
			_ = b.AddEdge(id, sym, to)
		}
	}

	out, _ := b.Build()
	return out
}

// Negate returns the DFA recognising the complement of L(d): every defined
// transition is kept and every accepting state becomes non-accepting and
// vice versa. Negate requires a complete automaton, since flipping the
// accepting bit on an incomplete one would silently change the meaning of an
// undefined transition. If d is incomplete, Negate completes it first when
// cfg.AutoComplete is set, and otherwise returns ErrIncompleteAutomaton.
func Negate(d *DFA, cfg Config) (*DFA, error) {
	if !d.IsComplete() {
		if !cfg.AutoComplete {
			return nil, &CombineError{Op: "negate", Err: ErrIncompleteAutomaton}
		}
		d = MakeComplete(d)
	}

	b := NewBuilder(d.alphabet)
	for i := 0; i < d.NumStates(); i++ {
		b.AddState()
	}
	for i := 0; i < d.NumStates(); i++ {
		id := StateID(i)
		_ = b.SetAccepting(id, !d.IsAccepting(id))
		for _, sym := range d.alphabet.Symbols() {
			to, _ := d.Transition(id, sym)
			_ = b.AddEdge(id, sym, to)
		}
	}
	return b.Build()
}

// CombineMode selects the boolean operation Combine computes over the two
// input languages.
type CombineMode uint8

const (
	// CombineUnion computes L(a) ∪ L(b).
	CombineUnion CombineMode = iota
	// CombineIntersect computes L(a) ∩ L(b).
	CombineIntersect
	// CombineDifference computes L(a) - L(b).
	CombineDifference
)

func (m CombineMode) accepts(aAcc, bAcc bool) bool {
	switch m {
	case CombineUnion:
		return aAcc || bAcc
	case CombineIntersect:
		return aAcc && bAcc
	case CombineDifference:
		return aAcc && !bAcc
	default:
		return false
	}
}

type pairKey struct {
	a, b StateID
}

// Combine computes the product automaton of a and b under mode: a BFS over
// state pairs (a_state, b_state), with a transition on symbol defined
// whenever both sides define one, and accepting determined by mode's boolean
// predicate over (a.IsAccepting, b.IsAccepting). a and b must share an
// alphabet. Both operands are completed first when cfg.AutoComplete is set,
// since a product over incomplete automata would leave transitions
// undefined wherever either side does, even when the missing side is
// irrelevant to mode (e.g. difference only needs b to be complete).
func Combine(a, b *DFA, mode CombineMode, cfg Config) (*DFA, error) {
	if !alphabet.Equal(a.alphabet, b.alphabet) {
		return nil, &CombineError{Op: "combine", Err: ErrAlphabetMismatch}
	}

	if !a.IsComplete() {
		if !cfg.AutoComplete {
			return nil, &CombineError{Op: "combine", Err: ErrIncompleteAutomaton}
		}
		a = MakeComplete(a)
	}
	if !b.IsComplete() {
		if !cfg.AutoComplete {
			return nil, &CombineError{Op: "combine", Err: ErrIncompleteAutomaton}
		}
		b = MakeComplete(b)
	}

	bld := NewBuilder(a.alphabet)
	ids := make(map[pairKey]StateID)
	order := []pairKey{{a.start, b.start}}

	start := bld.AddState()
	ids[order[0]] = start
	_ = bld.SetAccepting(start, mode.accepts(a.IsAccepting(order[0].a), b.IsAccepting(order[0].b)))

	for i := 0; i < len(order); i++ {
		pk := order[i]
		from := ids[pk]

		for _, sym := range a.alphabet.Symbols() {
			aTo, aOK := a.Transition(pk.a, sym)
			bTo, bOK := b.Transition(pk.b, sym)
			if !aOK || !bOK {
				continue
			}
			nk := pairKey{aTo, bTo}
			to, known := ids[nk]
			if !known {
				to = bld.AddState()
				ids[nk] = to
				order = append(order, nk)
				_ = bld.SetAccepting(to, mode.accepts(a.IsAccepting(aTo), b.IsAccepting(bTo)))
			}
			_ = bld.AddEdge(from, sym, to)
		}
	}

	return bld.Build()
}
