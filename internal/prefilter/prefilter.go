// Package prefilter provides a cheap necessary-but-not-sufficient check
// ahead of a full automaton walk, backed by github.com/coregx/ahocorasick.
//
// A candidate string that is missing any of the required literals cannot be
// accepted, so callers can reject it without ever touching the DFA. A
// candidate that does carry every required literal must still be run
// through the automaton: the prefilter narrows, it never decides.
package prefilter

import (
	"github.com/coregx/ahocorasick"

	"github.com/corefsm/automata/internal/literal"
)

// Prefilter wraps one Aho-Corasick automaton per required literal. Every
// automaton must report a match for MayMatch to return true, mirroring the
// teacher's single shared automaton used as an IsMatch-only fast path ahead
// of the real engine (meta/ismatch.go), adapted here to one automaton per
// literal since each literal must independently be present.
type Prefilter struct {
	required []*ahocorasick.Automaton
}

// Build constructs a Prefilter from seq. If seq has no required literals,
// Build returns a Prefilter whose MayMatch always reports true: with
// nothing required, the prefilter cannot rule anything out.
func Build(seq literal.Seq) (*Prefilter, error) {
	pf := &Prefilter{}
	for _, lit := range seq.Literals() {
		b := ahocorasick.NewBuilder()
		b.AddPattern([]byte(lit.String()))
		auto, err := b.Build()
		if err != nil {
			return nil, err
		}
		pf.required = append(pf.required, auto)
	}
	return pf, nil
}

// MayMatch reports whether word could possibly be accepted: every required
// literal must occur somewhere in word's UTF-8 encoding. A false result is
// conclusive; a true result only means the automaton must still be
// consulted.
func (p *Prefilter) MayMatch(word string) bool {
	if p == nil || len(p.required) == 0 {
		return true
	}
	haystack := []byte(word)
	for _, auto := range p.required {
		if !auto.IsMatch(haystack) {
			return false
		}
	}
	return true
}
