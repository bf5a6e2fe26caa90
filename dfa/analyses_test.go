package dfa

import (
	"testing"

	"github.com/corefsm/automata/alphabet"
	"github.com/corefsm/automata/nfa"
)

func TestAnalyses_DeadStates(t *testing.T) {
	alpha := alphabet.New([]alphabet.Symbol{'a', 'b'})
	d := buildFor(t, "a", alpha)
	complete := MakeComplete(d)

	// In the completed automaton, the sink state is the only dead state: it
	// cannot reach an accepting state under any input.
	dead := complete.DeadStates()
	if len(dead) != 1 {
		t.Fatalf("expected exactly 1 dead state, got %d", len(dead))
	}
	if complete.IsDead(complete.Start()) {
		t.Error("start state should not be dead: \"a\" is accepted from it")
	}
}

func TestAnalyses_DistanceToAccept(t *testing.T) {
	alpha := alphabet.New([]alphabet.Symbol{'a', 'b'})
	d := buildFor(t, "ab", alpha)

	if got := d.DistanceToAccept(d.Start()); got != 2 {
		t.Errorf("DistanceToAccept(start) = %d, want 2", got)
	}
}

func TestAnalyses_NoCycleFiniteLanguage(t *testing.T) {
	alpha := alphabet.New([]alphabet.Symbol{'a', 'b'})
	d := buildFor(t, "ab", alpha)

	if d.HasCycle() {
		t.Error("Base(\"ab\") should not have a cycle")
	}
	if got := d.MaxAcceptDistance(); got != 2 {
		t.Errorf("MaxAcceptDistance() = %d, want 2", got)
	}
}

func TestAnalyses_CycleMeansUnbounded(t *testing.T) {
	alpha := alphabet.New([]alphabet.Symbol{'a'})
	d := mustFromNFA(t, nfa.Kleene(nfa.Base("a")), alpha)

	if !d.HasCycle() {
		t.Error("a* should have a cycle on an accepting path")
	}
	if got := d.MaxAcceptDistance(); got != UnboundedLength {
		t.Errorf("MaxAcceptDistance() = %d, want UnboundedLength", got)
	}
}

func TestAnalyses_EmptyLanguage(t *testing.T) {
	alpha := alphabet.New([]alphabet.Symbol{'a', 'b'})
	a := buildFor(t, "a", alpha)
	b := buildFor(t, "b", alpha)

	empty, err := Combine(a, b, CombineIntersect, DefaultConfig())
	if err != nil {
		t.Fatalf("Combine: %v", err)
	}
	if got := empty.MaxAcceptDistance(); got != NoAcceptReachable {
		t.Errorf("MaxAcceptDistance() = %d, want NoAcceptReachable", got)
	}
}
