package dfa

import (
	"testing"

	"github.com/corefsm/automata/alphabet"
	"github.com/corefsm/automata/nfa"
)

func buildFor(t *testing.T, pattern string, alpha alphabet.Alphabet) *DFA {
	t.Helper()
	return mustFromNFA(t, nfa.Base(pattern), alpha)
}

func TestMakeComplete(t *testing.T) {
	alpha := alphabet.New([]alphabet.Symbol{'a', 'b'})
	d := buildFor(t, "a", alpha)
	if d.IsComplete() {
		t.Fatal("Base(\"a\") over {a,b} should not already be complete")
	}

	c := MakeComplete(d)
	if !c.IsComplete() {
		t.Fatal("MakeComplete should produce a complete automaton")
	}
	if !c.Accepts("a") || c.Accepts("b") || c.Accepts("") {
		t.Error("MakeComplete should not change the recognised language")
	}
}

func TestNegate(t *testing.T) {
	alpha := alphabet.New([]alphabet.Symbol{'a', 'b'})
	d := buildFor(t, "a", alpha)

	neg, err := Negate(d, DefaultConfig())
	if err != nil {
		t.Fatalf("Negate: %v", err)
	}
	if neg.Accepts("a") {
		t.Error("negation should reject \"a\"")
	}
	for _, w := range []string{"", "b", "aa", "ab", "ba"} {
		if !neg.Accepts(w) {
			t.Errorf("negation should accept %q", w)
		}
	}
}

func TestNegate_RejectsIncompleteWithoutAutoComplete(t *testing.T) {
	alpha := alphabet.New([]alphabet.Symbol{'a', 'b'})
	d := buildFor(t, "a", alpha)

	_, err := Negate(d, Config{AutoComplete: false})
	if err == nil {
		t.Fatal("expected an error negating an incomplete automaton with AutoComplete disabled")
	}
}

func TestCombine_Union(t *testing.T) {
	alpha := alphabet.New([]alphabet.Symbol{'a', 'b'})
	a := buildFor(t, "a", alpha)
	b := buildFor(t, "b", alpha)

	u, err := Combine(a, b, CombineUnion, DefaultConfig())
	if err != nil {
		t.Fatalf("Combine: %v", err)
	}
	if !u.Accepts("a") || !u.Accepts("b") {
		t.Error("union should accept both operands' languages")
	}
	if u.Accepts("ab") || u.Accepts("") {
		t.Error("union should reject words outside both languages")
	}
}

func TestCombine_Intersect(t *testing.T) {
	alpha := alphabet.New([]alphabet.Symbol{'a', 'b'})
	ab := mustFromNFA(t, nfa.Base("ab"), alpha)
	anyA := mustFromNFA(t, nfa.Kleene(nfa.Union(nfa.Base("a"), nfa.Base("b"))), alpha)

	inter, err := Combine(ab, anyA, CombineIntersect, DefaultConfig())
	if err != nil {
		t.Fatalf("Combine: %v", err)
	}
	if !inter.Accepts("ab") {
		t.Error("intersection should accept \"ab\"")
	}
	if inter.Accepts("a") || inter.Accepts("abab") {
		t.Error("intersection should reject words outside the narrower language")
	}
}

func TestCombine_Difference(t *testing.T) {
	alpha := alphabet.New([]alphabet.Symbol{'a', 'b'})
	anyStar := mustFromNFA(t, nfa.Kleene(nfa.Union(nfa.Base("a"), nfa.Base("b"))), alpha)
	a := buildFor(t, "a", alpha)

	diff, err := Combine(anyStar, a, CombineDifference, DefaultConfig())
	if err != nil {
		t.Fatalf("Combine: %v", err)
	}
	if diff.Accepts("a") {
		t.Error("difference should exclude \"a\"")
	}
	if !diff.Accepts("") || !diff.Accepts("b") || !diff.Accepts("aa") {
		t.Error("difference should keep every other word of {a,b}*")
	}
}

func TestCombine_AlphabetMismatch(t *testing.T) {
	a := buildFor(t, "a", alphabet.New([]alphabet.Symbol{'a'}))
	b := buildFor(t, "b", alphabet.New([]alphabet.Symbol{'a', 'b'}))

	if _, err := Combine(a, b, CombineUnion, DefaultConfig()); err == nil {
		t.Fatal("expected an alphabet mismatch error")
	}
}

func TestConcatAndKleeneBridge(t *testing.T) {
	alpha := alphabet.New([]alphabet.Symbol{'a', 'b'})
	a := buildFor(t, "a", alpha)
	b := buildFor(t, "b", alpha)

	cat, err := Concat(a, b)
	if err != nil {
		t.Fatalf("Concat: %v", err)
	}
	if !cat.Accepts("ab") || cat.Accepts("a") || cat.Accepts("ba") {
		t.Error("Concat(a, b) should accept exactly \"ab\"")
	}

	k, err := Kleene(a)
	if err != nil {
		t.Fatalf("Kleene: %v", err)
	}
	for _, w := range []string{"", "a", "aaa"} {
		if !k.Accepts(w) {
			t.Errorf("Kleene(a) should accept %q", w)
		}
	}
	if k.Accepts("b") {
		t.Error("Kleene(a) should reject \"b\"")
	}
}
