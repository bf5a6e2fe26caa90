// Package alphabet provides the finite, ordered symbol set an automaton is
// built over.
//
// An Alphabet is computed once per compiled pattern and never mutated
// afterwards, mirroring the teacher's ByteClasses: a dense lookup table
// derived from the pattern and frozen for the lifetime of the automaton.
package alphabet

import "sort"

// Symbol is a single element of an Alphabet.
type Symbol = rune

// Alphabet is an ordered, duplicate-free sequence of symbols with a
// precomputed successor map used by the enumerator to advance a candidate
// symbol to the next one in order.
type Alphabet struct {
	symbols []Symbol
	index   map[Symbol]int
}

// New builds an Alphabet from the given symbols. Duplicates are removed and
// the result is ordered by natural rune value, which gives a total, stable
// order regardless of input order.
func New(symbols []Symbol) Alphabet {
	seen := make(map[Symbol]bool, len(symbols))
	uniq := make([]Symbol, 0, len(symbols))
	for _, s := range symbols {
		if !seen[s] {
			seen[s] = true
			uniq = append(uniq, s)
		}
	}
	sort.Slice(uniq, func(i, j int) bool { return uniq[i] < uniq[j] })

	index := make(map[Symbol]int, len(uniq))
	for i, s := range uniq {
		index[s] = i
	}

	return Alphabet{symbols: uniq, index: index}
}

// Len returns the number of symbols in the alphabet.
func (a Alphabet) Len() int {
	return len(a.symbols)
}

// Symbols returns a copy of the ordered symbol sequence.
func (a Alphabet) Symbols() []Symbol {
	out := make([]Symbol, len(a.symbols))
	copy(out, a.symbols)
	return out
}

// At returns the symbol at position i in alphabet order.
func (a Alphabet) At(i int) Symbol {
	return a.symbols[i]
}

// IndexOf returns the position of s in alphabet order, or (0, false) if s is
// not a member of the alphabet.
func (a Alphabet) IndexOf(s Symbol) (int, bool) {
	i, ok := a.index[s]
	return i, ok
}

// Contains reports whether s is a member of the alphabet.
func (a Alphabet) Contains(s Symbol) bool {
	_, ok := a.index[s]
	return ok
}

// First returns the smallest symbol in the alphabet. Returns (0, false) if
// the alphabet is empty.
func (a Alphabet) First() (Symbol, bool) {
	if len(a.symbols) == 0 {
		return 0, false
	}
	return a.symbols[0], true
}

// NextSymbol returns the symbol immediately following s in alphabet order.
// The map is partial: it is undefined on the last symbol, matching the
// "precomputed next_symbol(s) partial map" of the data model.
func (a Alphabet) NextSymbol(s Symbol) (Symbol, bool) {
	i, ok := a.index[s]
	if !ok || i+1 >= len(a.symbols) {
		return 0, false
	}
	return a.symbols[i+1], true
}

// Equal reports whether two alphabets contain the same symbols in the same
// order. DFA product construction requires this before combining automata.
func Equal(a, b Alphabet) bool {
	if len(a.symbols) != len(b.symbols) {
		return false
	}
	for i := range a.symbols {
		if a.symbols[i] != b.symbols[i] {
			return false
		}
	}
	return true
}

// String renders the alphabet as its ordered symbol list, useful for error
// messages and debugging.
func (a Alphabet) String() string {
	return string(a.symbols)
}
