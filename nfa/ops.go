package nfa

// Empty returns the NFA recognising only the empty word: a single state that
// is both start and accepting, with no outgoing edges. This is the identity
// element used to build T^0 in the regex compiler's repetition operator.
func Empty() *NFA {
	b := NewBuilder()
	s := b.AddState()
	_ = b.SetAccepting(s, true)
	n, _ := b.Build()
	return n
}

// Base returns the two-state NFA 0 --s--> 1 with start 0 and accepting {1}.
// If s has more than one symbol the edge is a transient multi-symbol label;
// call Simplify before determinisation to expand it into a chain of
// single-symbol edges.
func Base(s string) *NFA {
	b := NewBuilder()
	src := b.AddState()
	dst := b.AddState()
	_ = b.SetAccepting(dst, true)
	if len(s) == 0 {
		_ = b.AddEdge(src, Epsilon(), dst)
	} else if r := []rune(s); len(r) == 1 {
		_ = b.AddEdge(src, OnSymbol(r[0]), dst)
	} else {
		_ = b.AddEdge(src, OnString(s), dst)
	}
	n, _ := b.Build()
	return n
}

// BaseSymbol returns the two-state NFA accepting exactly the single symbol s.
func BaseSymbol(s rune) *NFA {
	b := NewBuilder()
	src := b.AddState()
	dst := b.AddState()
	_ = b.SetAccepting(dst, true)
	_ = b.AddEdge(src, OnSymbol(s), dst)
	n, _ := b.Build()
	return n
}

// Union returns the NFA recognising L(a) ∪ L(b): a fresh start state with
// epsilon edges to both sub-automata's starts, and a fresh sole accepting
// state reached by epsilon edges from every accepting state of a and b.
func Union(a, b *NFA) *NFA {
	bld := NewBuilder()
	start := bld.AddState()
	aStart := bld.AppendOffset(a)
	bStart := bld.AppendOffset(b)
	final := bld.AddState()

	_ = bld.AddEdge(start, Epsilon(), aStart)
	_ = bld.AddEdge(start, Epsilon(), bStart)

	aOffset := aStart - a.start
	for _, acc := range a.Accepting() {
		_ = bld.AddEdge(acc+aOffset, Epsilon(), final)
	}
	bOffset := bStart - b.start
	for _, acc := range b.Accepting() {
		_ = bld.AddEdge(acc+bOffset, Epsilon(), final)
	}
	_ = bld.SetAccepting(final, true)

	n, _ := bld.Build()
	return n
}

// Concat returns the NFA recognising L(a) · L(b): a's start is the new
// start, every accepting state of a gets an epsilon edge to b's start, and
// b's (renumbered) accepting states become the result's accepting set.
func Concat(a, b *NFA) *NFA {
	bld := NewBuilder()
	aStart := bld.AppendOffset(a)
	bStart := bld.AppendOffset(b)

	aOffset := aStart - a.start
	for _, acc := range a.Accepting() {
		_ = bld.AddEdge(acc+aOffset, Epsilon(), bStart)
		_ = bld.SetAccepting(acc+aOffset, false)
		// a's accepting states are no longer accepting in the concatenation,
		// unless b also accepts the empty word through them transitively —
		// that is handled by the epsilon edge above, not by marking acc itself.
	}

	n, _ := bld.Build()
	// The new start is always renumbered to 0 by AppendOffset on an empty
	// builder, so aStart == 0 here; Build already fixes n.start = 0.
	_ = aStart
	return n
}

// Kleene returns the NFA recognising L(a)*: a fresh start/accept state with
// an epsilon edge into a's start, and epsilon edges from every accepting
// state of a back to the fresh state.
func Kleene(a *NFA) *NFA {
	bld := NewBuilder()
	start := bld.AddState()
	aStart := bld.AppendOffset(a)
	_ = bld.AddEdge(start, Epsilon(), aStart)

	aOffset := aStart - a.start
	for _, acc := range a.Accepting() {
		_ = bld.AddEdge(acc+aOffset, Epsilon(), start)
	}
	_ = bld.SetAccepting(start, true)

	n, _ := bld.Build()
	return n
}

// Simplify returns an NFA equivalent to n with every multi-symbol LabelString
// edge replaced by a chain of fresh intermediate states connected by
// single-symbol edges. Epsilon edges are left untouched. If n has no
// multi-symbol edges, Simplify still returns a fresh equivalent copy.
func Simplify(n *NFA) *NFA {
	bld := NewBuilderWithCapacity(n.NumStates())
	// Copy all original states first so ids line up 1:1 with n's.
	for i := 0; i < n.NumStates(); i++ {
		id := bld.AddState()
		_ = bld.SetAccepting(id, n.IsAccepting(StateID(i)))
	}

	for i := 0; i < n.NumStates(); i++ {
		from := StateID(i)
		for _, e := range n.Edges(from) {
			switch e.Label.Kind {
			case LabelEpsilon, LabelSymbol:
				_ = bld.AddEdge(from, e.Label, e.Target)
			case LabelString:
				runes := []rune(e.Label.Str)
				cur := from
				for _, r := range runes[:len(runes)-1] {
					next := bld.AddState()
					_ = bld.AddEdge(cur, OnSymbol(r), next)
					cur = next
				}
				_ = bld.AddEdge(cur, OnSymbol(runes[len(runes)-1]), e.Target)
			}
		}
	}

	out, _ := bld.Build()
	return out
}
