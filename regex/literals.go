package regex

import "github.com/corefsm/automata/internal/literal"

// asLiteral reports whether n unconditionally produces exactly one fixed
// run of symbols — i.e. it is built only from single-symbol SymbolSet nodes
// and Concat of such, with no Star, Repeat, Neg, BinOp, or multi-symbol
// charclass anywhere inside. Those constructs all introduce a choice (zero
// repetitions, an alternative branch, a larger symbol class) that makes the
// run not truly mandatory, so asLiteral reports false as soon as it meets
// one.
func asLiteral(n Node) ([]rune, bool) {
	switch v := n.(type) {
	case *SymbolSet:
		if len(v.Symbols) == 1 {
			return v.Symbols, true
		}
		return nil, false
	case *Concat:
		var out []rune
		for _, c := range v.Children {
			sub, ok := asLiteral(c)
			if !ok {
				return nil, false
			}
			out = append(out, sub...)
		}
		return out, true
	default:
		return nil, false
	}
}

// ExtractLiterals walks root's top-level concatenation and collects every
// maximal run of symbols guaranteed to appear verbatim in any string root
// accepts. Runs are only ever taken from unconditional literal stretches
// within a concatenation — never reached through a Star, Repeat, Neg, or
// BinOp branch, since none of those guarantee the run actually occurs. This
// is deliberately conservative: it never extracts a literal that could be
// absent, at the cost of missing literals nested under such constructs.
func ExtractLiterals(root Node) literal.Seq {
	var out []literal.Literal

	concat, isConcat := root.(*Concat)
	if !isConcat {
		if sub, ok := asLiteral(root); ok {
			out = append(out, literal.NewLiteral(sub))
		}
		return literal.NewSeq(out...)
	}

	var run []rune
	flush := func() {
		if len(run) > 0 {
			out = append(out, literal.NewLiteral(run))
			run = nil
		}
	}
	for _, c := range concat.Children {
		if sub, ok := asLiteral(c); ok {
			run = append(run, sub...)
			continue
		}
		flush()
	}
	flush()

	return literal.NewSeq(out...)
}
