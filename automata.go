// Package automata compiles extended regular expressions into deterministic
// finite automata and uses those automata to recognise and enumerate
// strings.
//
// Basic usage:
//
//	re, err := automata.Compile(`(a|b)*abb`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ok, err := re.Accepts("aabb")
//
//	enum := re.Enumerator()
//	for {
//	    word, ok := enum.Next()
//	    if !ok {
//	        break
//	    }
//	    fmt.Println(word)
//	}
//
// Non-goals: Unicode-aware matching (the alphabet is the finite set of code
// points appearing in the regex), DFA minimisation, streaming input
// matching, and backreferences/lookaround/anchors.
package automata

import (
	"github.com/corefsm/automata/alphabet"
	"github.com/corefsm/automata/dfa"
	"github.com/corefsm/automata/internal/prefilter"
	"github.com/corefsm/automata/regex"
)

// Regexp is a compiled pattern: a complete DFA over its inferred alphabet,
// plus a literal prefilter built from the parts of the pattern guaranteed to
// appear in every accepted string.
//
// A Regexp is safe to use concurrently from multiple goroutines: compilation
// has already happened, and Accepts only reads the DFA's transition table
// and the prefilter's automaton, neither of which is mutated afterwards.
// Enumerator is the exception — each Enumerator returned by a Regexp carries
// its own cursor and must not be advanced from two goroutines at once.
type Regexp struct {
	source string
	d      *dfa.DFA
	pf     *prefilter.Prefilter
}

// Compile parses source under the extended grammar (negation `~`, set
// operators `|` `&` `-`, repetition `^n`/`^[a-b]`, Kleene `*`, grouping, and
// the `\A \a \0 \1` character classes) and builds a complete DFA over its
// inferred alphabet.
func Compile(source string) (*Regexp, error) {
	d, ast, err := regex.CompileAST(source)
	if err != nil {
		return nil, err
	}
	// Fill the DFA's lazily cached analyses now, so enumerators created
	// later only ever read them.
	d.MaxAcceptDistance()

	seq := regex.ExtractLiterals(ast)
	var pf *prefilter.Prefilter
	if !seq.IsEmpty() {
		pf, err = prefilter.Build(seq)
		if err != nil {
			return nil, err
		}
	}

	return &Regexp{source: source, d: d, pf: pf}, nil
}

// MustCompile is like Compile but panics if source fails to compile. It is
// intended for tests and for patterns known at init time.
func MustCompile(source string) *Regexp {
	re, err := Compile(source)
	if err != nil {
		panic("automata: Compile(" + source + "): " + err.Error())
	}
	return re
}

// Accepts reports whether word is in the language r recognises. word is
// walked rune by rune; a rune outside r's alphabet is reported as
// dfa.ErrUnknownSymbol rather than silently rejected, so callers can tell
// "no" from "malformed input".
//
// When r has a literal prefilter, a word missing a required literal is
// rejected after only an alphabet check, without walking the DFA.
func (r *Regexp) Accepts(word string) (bool, error) {
	if r.pf != nil && !r.pf.MayMatch(word) {
		alpha := r.d.Alphabet()
		for _, ru := range word {
			if !alpha.Contains(ru) {
				return false, dfa.ErrUnknownSymbol
			}
		}
		return false, nil
	}

	state := r.d.Start()
	accepting := r.d.IsAccepting(state)
	for _, ru := range word {
		next, acc, err := r.d.Step(state, ru)
		if err != nil {
			return false, err
		}
		if next == dfa.InvalidState {
			return false, nil
		}
		state, accepting = next, acc
	}
	return accepting, nil
}

// Enumerator returns a fresh, independent length-ordered enumerator over r's
// language. Each call starts a new walk from the beginning.
func (r *Regexp) Enumerator() *dfa.Enumerator {
	return dfa.NewEnumerator(r.d)
}

// Alphabet returns the alphabet r was compiled over.
func (r *Regexp) Alphabet() alphabet.Alphabet {
	return r.d.Alphabet()
}

// DFA returns the underlying automaton, an escape hatch onto the DFA
// algebra (Combine, Negate, and the structural analyses) for callers that
// need to compose compiled patterns directly.
func (r *Regexp) DFA() *dfa.DFA {
	return r.d
}

// String returns the source pattern r was compiled from.
func (r *Regexp) String() string {
	return r.source
}
