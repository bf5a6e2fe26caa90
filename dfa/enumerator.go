package dfa

import "strings"

// EmptyWord is the sentinel Next returns in place of the literal empty
// string when the empty word is in the language, so callers can distinguish
// it from "no more words" or from any other result.
const EmptyWord = "<empty>"

type enumFrame struct {
	state     StateID
	symIdx    int  // next alphabet index to try extending from this state
	arrivedOn rune // symbol consumed to reach this frame; unused at depth 0
}

// Enumerator produces every word in the language of a DFA exactly once, in
// order of increasing length and, within a length, alphabet order. It is a
// single-owner stateful iterator: the stack records the path currently under
// exploration and a symIdx cursor per frame lets Next resume a backtracking
// depth-first search instead of restarting it, following the source
// algorithm's get_next_string, which keeps the same kind of state across
// calls rather than recomputing the whole language up front.
//
// distanceToAccept prunes the search: a transition into a state that cannot
// reach an accepting state within the symbols remaining at the target length
// is never taken.
type Enumerator struct {
	d             *DFA
	currentLength int
	stack         []enumFrame
	done          bool
}

// NewEnumerator returns an Enumerator over d, starting with the shortest
// words.
func NewEnumerator(d *DFA) *Enumerator {
	return &Enumerator{d: d}
}

// Next returns the next word in length order, or ok=false once every word in
// the language (finite) has been produced. Next never terminates on its own
// for an infinite language; callers must stop pulling.
func (e *Enumerator) Next() (string, bool) {
	if e.done {
		return "", false
	}

	maxDist := e.d.MaxAcceptDistance()
	if maxDist == NoAcceptReachable {
		e.done = true
		return "", false
	}

	for {
		if maxDist != UnboundedLength && e.currentLength > maxDist {
			e.done = true
			return "", false
		}
		if len(e.stack) == 0 {
			e.stack = []enumFrame{{state: e.d.Start()}}
		}
		if word, ok := e.advance(); ok {
			// A root-level accept (currentLength == 0, the empty word) pops
			// the only frame on the stack and leaves nothing behind to
			// resume from, unlike every other accept, which always leaves
			// the root frame in place. Advance the length here so the next
			// call doesn't reinitialize at the same currentLength and
			// re-emit the same word forever.
			if len(e.stack) == 0 {
				e.currentLength++
			}
			return word, true
		}
		e.currentLength++
		e.stack = nil
	}
}

// advance runs one round of the backtracking search at the current length,
// returning the next accepted word found (leaving the stack positioned to
// resume the search on the next call) or ok=false once every path at this
// length has been exhausted.
func (e *Enumerator) advance() (string, bool) {
	alpha := e.d.Alphabet().Symbols()

	for len(e.stack) > 0 {
		top := len(e.stack) - 1
		depth := top
		frame := &e.stack[top]

		if depth == e.currentLength {
			accepting := e.d.IsAccepting(frame.state)
			var word string
			if accepting {
				if e.currentLength == 0 {
					word = EmptyWord
				} else {
					word = reconstructWord(e.stack)
				}
			}
			e.stack = e.stack[:top]
			if accepting {
				return word, true
			}
			continue
		}

		if frame.symIdx >= len(alpha) {
			e.stack = e.stack[:top]
			continue
		}

		sym := alpha[frame.symIdx]
		frame.symIdx++

		to, ok := e.d.Transition(frame.state, sym)
		if !ok {
			continue
		}
		remaining := e.currentLength - (depth + 1)
		dist := e.d.DistanceToAccept(to)
		if dist == unreachableDistance || dist > remaining {
			continue
		}
		e.stack = append(e.stack, enumFrame{state: to, arrivedOn: sym})
	}

	return "", false
}

func reconstructWord(stack []enumFrame) string {
	var b strings.Builder
	for _, f := range stack[1:] {
		b.WriteRune(f.arrivedOn)
	}
	return b.String()
}
