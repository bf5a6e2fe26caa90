package regex

import (
	"github.com/corefsm/automata/alphabet"
	"github.com/corefsm/automata/dfa"
	"github.com/corefsm/automata/nfa"
)

// Compile parses source and builds a complete DFA over its inferred
// alphabet. Concatenation, Kleene star, and repetition are batched at the
// NFA level and determinised once per maximal run; '|' '&' '-' and '~'
// require a complete DFA on each side, so those nodes bridge through
// dfa.FromNFA / DFA.ToNFA as they are reached.
func Compile(source string) (*dfa.DFA, error) {
	d, _, err := CompileAST(source)
	return d, err
}

// CompileAST is Compile plus the parsed tree, for callers (the automata
// façade) that need the AST afterwards too, e.g. to extract required
// literals for a prefilter, without parsing source a second time.
func CompileAST(source string) (*dfa.DFA, Node, error) {
	alpha, err := InferAlphabet(source)
	if err != nil {
		return nil, nil, err
	}
	ast, err := Parse(source)
	if err != nil {
		return nil, nil, err
	}
	c := &compiler{alphabet: alpha, cfg: dfa.DefaultConfig()}
	d, err := c.compileDFA(ast)
	if err != nil {
		return nil, nil, err
	}
	return dfa.MakeComplete(d), ast, nil
}

type compiler struct {
	alphabet alphabet.Alphabet
	cfg      dfa.Config
}

// compileDFA builds the DFA for node. Nodes that are pure NFA-level
// constructions (SymbolSet, Concat, Star, Repeat) are batched through
// compileNFA and determinised once; BinOp and Neg delegate to the DFA
// algebra directly, since product construction and complementation only
// make sense on completed DFAs.
func (c *compiler) compileDFA(node Node) (*dfa.DFA, error) {
	switch n := node.(type) {
	case *BinOp:
		left, err := c.compileDFA(n.Left)
		if err != nil {
			return nil, err
		}
		right, err := c.compileDFA(n.Right)
		if err != nil {
			return nil, err
		}
		mode := map[Op]dfa.CombineMode{
			OpUnion:      dfa.CombineUnion,
			OpIntersect:  dfa.CombineIntersect,
			OpDifference: dfa.CombineDifference,
		}[n.Op]
		out, err := dfa.Combine(left, right, mode, c.cfg)
		if err != nil {
			return nil, &AlphabetMismatchDuringCombine{Err: err}
		}
		return out, nil

	case *Neg:
		inner, err := c.compileDFA(n.Child)
		if err != nil {
			return nil, err
		}
		return dfa.Negate(inner, c.cfg)

	default:
		raw, err := c.compileNFA(node)
		if err != nil {
			return nil, err
		}
		return dfa.FromNFA(nfa.Simplify(raw), c.alphabet)
	}
}

// compileNFA builds the NFA for node. Group contents and subexpressions
// under '~' or '|'/'&'/'-' are opaque to this function: it bridges back
// through compileDFA and DFA.ToNFA so the rest of this function only has to
// implement base/concat/union/kleene wiring.
func (c *compiler) compileNFA(node Node) (*nfa.NFA, error) {
	switch n := node.(type) {
	case *SymbolSet:
		return symbolSetNFA(n), nil

	case *Concat:
		var out *nfa.NFA
		for _, child := range n.Children {
			sub, err := c.compileNFA(child)
			if err != nil {
				return nil, err
			}
			if out == nil {
				out = sub
			} else {
				out = nfa.Concat(out, sub)
			}
		}
		return out, nil

	case *Star:
		child, err := c.compileNFA(n.Child)
		if err != nil {
			return nil, err
		}
		return nfa.Kleene(child), nil

	case *Repeat:
		child, err := c.compileNFA(n.Child)
		if err != nil {
			return nil, err
		}
		return repeatNFA(child, n.Lo, n.Hi), nil

	case *Neg, *BinOp:
		d, err := c.compileDFA(node)
		if err != nil {
			return nil, err
		}
		return d.ToNFA(), nil

	default:
		return nil, &ParseError{Expected: "a known node type", Found: "unknown"}
	}
}

func symbolSetNFA(s *SymbolSet) *nfa.NFA {
	if len(s.Symbols) == 1 {
		return nfa.BaseSymbol(s.Symbols[0])
	}
	var out *nfa.NFA
	for _, r := range s.Symbols {
		base := nfa.BaseSymbol(r)
		if out == nil {
			out = base
		} else {
			out = nfa.Union(out, base)
		}
	}
	return out
}

// repeatNFA builds the language { child^k : lo <= k <= hi }, a union of
// exact-count concatenations of child. child is reused by value across every
// concatenation: nfa.Concat copies states via Builder.AppendOffset rather
// than mutating its arguments, so one compiled child NFA safely backs every
// repetition.
func repeatNFA(child *nfa.NFA, lo, hi int) *nfa.NFA {
	var out *nfa.NFA
	for k := lo; k <= hi; k++ {
		var rep *nfa.NFA
		if k == 0 {
			rep = nfa.Empty()
		} else {
			rep = child
			for i := 1; i < k; i++ {
				rep = nfa.Concat(rep, child)
			}
		}
		if out == nil {
			out = rep
		} else {
			out = nfa.Union(out, rep)
		}
	}
	return out
}
