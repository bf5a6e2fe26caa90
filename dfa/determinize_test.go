package dfa

import (
	"testing"

	"github.com/corefsm/automata/alphabet"
	"github.com/corefsm/automata/nfa"
)

func mustFromNFA(t *testing.T, n *nfa.NFA, alpha alphabet.Alphabet) *DFA {
	t.Helper()
	d, err := FromNFA(nfa.Simplify(n), alpha)
	if err != nil {
		t.Fatalf("FromNFA: %v", err)
	}
	return d
}

func TestFromNFA_Base(t *testing.T) {
	alpha := alphabet.New([]alphabet.Symbol{'a', 'b'})
	d := mustFromNFA(t, nfa.Base("ab"), alpha)

	if !d.Accepts("ab") {
		t.Error("expected \"ab\" to be accepted")
	}
	for _, w := range []string{"", "a", "b", "ba", "abb"} {
		if d.Accepts(w) {
			t.Errorf("expected %q to be rejected", w)
		}
	}
}

func TestFromNFA_Union(t *testing.T) {
	alpha := alphabet.New([]alphabet.Symbol{'a', 'b'})
	n := nfa.Union(nfa.Base("a"), nfa.Base("b"))
	d := mustFromNFA(t, n, alpha)

	for _, w := range []string{"a", "b"} {
		if !d.Accepts(w) {
			t.Errorf("expected %q to be accepted", w)
		}
	}
	if d.Accepts("ab") || d.Accepts("") {
		t.Error("union of a, b should reject \"\" and \"ab\"")
	}
}

func TestFromNFA_Kleene(t *testing.T) {
	alpha := alphabet.New([]alphabet.Symbol{'a'})
	d := mustFromNFA(t, nfa.Kleene(nfa.Base("a")), alpha)

	for _, w := range []string{"", "a", "aa", "aaaaa"} {
		if !d.Accepts(w) {
			t.Errorf("expected %q to be accepted", w)
		}
	}
}

func TestFromNFA_DeterminismMergesStates(t *testing.T) {
	// (a|a)b: the two branches of the union share the symbol 'a', so the
	// subset construction should merge them into one DFA state rather than
	// keeping the NFA's redundant branching.
	alpha := alphabet.New([]alphabet.Symbol{'a', 'b'})
	n := nfa.Concat(nfa.Union(nfa.Base("a"), nfa.Base("a")), nfa.Base("b"))
	d := mustFromNFA(t, n, alpha)

	if !d.Accepts("ab") {
		t.Error("expected \"ab\" to be accepted")
	}
	if d.Accepts("a") || d.Accepts("aab") {
		t.Error("expected only \"ab\" to be accepted")
	}
}

func TestFromNFA_RejectsUnsimplifiedNFA(t *testing.T) {
	alpha := alphabet.New([]alphabet.Symbol{'a', 'b'})
	_, err := FromNFA(nfa.Base("ab"), alpha)
	if err == nil {
		t.Fatal("expected an error for a multi-symbol NFA passed without Simplify")
	}
}
