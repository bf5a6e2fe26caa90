// Package literal represents literal symbol runs extracted from a compiled
// expression, for use as a prefilter ahead of the full automaton walk.
//
// This is a rune-keyed counterpart to the teacher's byte-oriented literal
// package: a Literal here is a required run of alphabet symbols rather than
// a run of bytes, since this engine's alphabet is an abstract finite symbol
// set rather than raw input bytes.
package literal

// Literal is one literal run of symbols that must appear, verbatim, in
// every string a compiled expression accepts.
type Literal struct {
	Symbols []rune
}

// NewLiteral wraps symbols as a Literal.
func NewLiteral(symbols []rune) Literal {
	return Literal{Symbols: append([]rune(nil), symbols...)}
}

// Len returns the number of symbols in the literal.
func (l Literal) Len() int { return len(l.Symbols) }

// String renders the literal as a plain string, for use as an
// Aho-Corasick pattern key.
func (l Literal) String() string { return string(l.Symbols) }

// Seq is a set of required literals: every accepted string must contain
// every literal in the set somewhere (not necessarily contiguous with one
// another). An empty Seq means no literal could be required.
type Seq struct {
	literals []Literal
}

// NewSeq wraps lits as a Seq, dropping any empty literal: an empty literal
// is trivially contained in every string and adds nothing as a filter.
func NewSeq(lits ...Literal) Seq {
	var out []Literal
	for _, l := range lits {
		if l.Len() > 0 {
			out = append(out, l)
		}
	}
	return Seq{literals: out}
}

// Literals returns the required literals.
func (s Seq) Literals() []Literal { return s.literals }

// IsEmpty reports whether the sequence has no required literals, meaning no
// prefilter can be built from it.
func (s Seq) IsEmpty() bool { return len(s.literals) == 0 }
