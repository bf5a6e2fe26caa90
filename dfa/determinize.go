package dfa

import (
	"sort"
	"strconv"
	"strings"

	"github.com/corefsm/automata/alphabet"
	"github.com/corefsm/automata/internal/sparse"
	"github.com/corefsm/automata/nfa"
)

// epsilonClosure returns the set of nfa states reachable from every state in
// seeds by following zero or more epsilon edges, as a sorted slice. A
// sparse.SparseSet tracks visited states so a state already on the worklist
// is never re-queued, following the teacher's use of SparseSet for NFA
// simulation visited-sets.
func epsilonClosure(n *nfa.NFA, seeds []nfa.StateID) []nfa.StateID {
	visited := sparse.NewSparseSet(uint32(n.NumStates()))
	stack := make([]nfa.StateID, 0, len(seeds))
	for _, s := range seeds {
		if !visited.Contains(uint32(s)) {
			visited.Insert(uint32(s))
			stack = append(stack, s)
		}
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, e := range n.Edges(s) {
			if e.Label.Kind == nfa.LabelEpsilon && !visited.Contains(uint32(e.Target)) {
				visited.Insert(uint32(e.Target))
				stack = append(stack, e.Target)
			}
		}
	}
	out := make([]nfa.StateID, len(visited.Values()))
	for i, v := range visited.Values() {
		out[i] = nfa.StateID(v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// move returns, for every state in set, the targets of edges labeled with
// exactly symbol.
func move(n *nfa.NFA, set []nfa.StateID, symbol rune) []nfa.StateID {
	var out []nfa.StateID
	for _, s := range set {
		for _, e := range n.Edges(s) {
			if e.Label.Kind == nfa.LabelSymbol && e.Label.Symbol == symbol {
				out = append(out, e.Target)
			}
		}
	}
	return out
}

func setKey(set []nfa.StateID) string {
	var b strings.Builder
	for i, s := range set {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatUint(uint64(s), 10))
	}
	return b.String()
}

func containsAccepting(n *nfa.NFA, set []nfa.StateID) bool {
	for _, s := range set {
		if n.IsAccepting(s) {
			return true
		}
	}
	return false
}

// FromNFA determinises n into a DFA over alpha by subset construction: the
// start set is the epsilon-closure of n's start state, and each worklist
// entry is explored by computing move() followed by epsilon-closure for
// every alphabet symbol in order, assigning new dense ids as new state sets
// are discovered. n must have no LabelString edges; call nfa.Simplify first.
//
// The result is not necessarily complete; callers that need totality should
// follow with MakeComplete (or hand the result to Combine or Negate with
// cfg.AutoComplete set, which complete their operands first).
func FromNFA(n *nfa.NFA, alpha alphabet.Alphabet) (*DFA, error) {
	if n.HasMultiSymbolEdges() {
		return nil, &OperationError{Message: "nfa has un-simplified multi-symbol edges; call nfa.Simplify first", StateID: InvalidState}
	}

	b := NewBuilder(alpha)

	startSet := epsilonClosure(n, []nfa.StateID{n.Start()})
	ids := make(map[string]StateID)
	order := []string{setKey(startSet)}
	sets := map[string][]nfa.StateID{order[0]: startSet}

	startID := b.AddState()
	ids[order[0]] = startID
	_ = b.SetAccepting(startID, containsAccepting(n, startSet))

	for i := 0; i < len(order); i++ {
		key := order[i]
		set := sets[key]
		from := ids[key]

		for _, sym := range alpha.Symbols() {
			target := epsilonClosure(n, move(n, set, sym))
			if len(target) == 0 {
				continue
			}
			tKey := setKey(target)
			to, known := ids[tKey]
			if !known {
				to = b.AddState()
				ids[tKey] = to
				sets[tKey] = target
				order = append(order, tKey)
				_ = b.SetAccepting(to, containsAccepting(n, target))
			}
			_ = b.AddEdge(from, sym, to)
		}
	}

	return b.Build()
}
