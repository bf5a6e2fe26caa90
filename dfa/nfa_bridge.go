package dfa

import (
	"github.com/corefsm/automata/alphabet"
	"github.com/corefsm/automata/nfa"
)

// ToNFA returns an NFA equivalent to d, one state per DFA state and one
// single-symbol edge per defined transition. This is the bridge that lets
// Concat and Kleene reuse the NFA-level Thompson operators instead of
// reimplementing concatenation and closure directly on DFA transition
// tables, following the source algorithm's concat_DFA/kleene_DFA which build
// on the same NFA-level operators via extract_dfa.
func (d *DFA) ToNFA() *nfa.NFA {
	b := nfa.NewBuilderWithCapacity(d.NumStates())
	for i := 0; i < d.NumStates(); i++ {
		id := b.AddState()
		_ = b.SetAccepting(id, d.IsAccepting(StateID(i)))
	}
	for i := 0; i < d.NumStates(); i++ {
		from := StateID(i)
		for _, sym := range d.alphabet.Symbols() {
			to, ok := d.Transition(from, sym)
			if !ok {
				continue
			}
			_ = b.AddEdge(nfa.StateID(from), nfa.OnSymbol(sym), nfa.StateID(to))
		}
	}
	out, _ := b.Build()
	return out
}

// Concat returns the DFA recognising L(a) . L(b), computed as
// FromNFA(nfa.Concat(a.ToNFA(), b.ToNFA())). a and b must share an alphabet.
func Concat(a, b *DFA) (*DFA, error) {
	if !alphabet.Equal(a.alphabet, b.alphabet) {
		return nil, &CombineError{Op: "concat", Err: ErrAlphabetMismatch}
	}
	n := nfa.Concat(a.ToNFA(), b.ToNFA())
	return FromNFA(n, a.alphabet)
}

// Kleene returns the DFA recognising L(a)*, computed as
// FromNFA(nfa.Kleene(a.ToNFA())).
func Kleene(a *DFA) (*DFA, error) {
	n := nfa.Kleene(a.ToNFA())
	return FromNFA(n, a.alphabet)
}
