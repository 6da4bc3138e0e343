package dfa

import (
	"sort"
	"strconv"
	"strings"

	"github.com/automatalab/regexfsm/nfa"
)

// Determinize performs the subset construction described in §4.5: starting
// from the ε-closure of the NFA's start state, repeatedly move over every
// alphabet symbol and ε-close the result, memoizing each distinct ε-closed
// NFA-state set as a single canonical DFA state.
//
// The sorted StateID slice returned by nfa.EpsilonClosure doubles as the
// memo key (via canonicalKey), per the Open Question resolution recorded
// in DESIGN.md: one canonicalization discipline serves both the worklist's
// visited-set and the DFA state lookup, rather than maintaining two.
func Determinize(n *nfa.NFA) (*DFA, error) {
	if n == nil || n.NumStates() == 0 {
		return nil, &DeterminizeError{Err: ErrInvalidNFA}
	}

	symbols := make([]rune, 0, len(n.Alphabet()))
	for r := range n.Alphabet() {
		symbols = append(symbols, r)
	}
	sort.Slice(symbols, func(i, j int) bool { return symbols[i] < symbols[j] })

	b := NewBuilder()
	memo := make(map[string]StateID)

	startSet := n.EpsilonClosure([]nfa.StateID{n.Start})
	startID := internState(b, memo, n, startSet)

	worklist := []StateID{startID}
	for len(worklist) > 0 {
		id := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		set := b.states[id].NFAStates
		for _, r := range symbols {
			moved := n.Move(set, r)
			if len(moved) == 0 {
				continue
			}
			closed := n.EpsilonClosure(moved)
			key := canonicalKey(closed)
			target, seen := memo[key]
			if !seen {
				target = internState(b, memo, n, closed)
				worklist = append(worklist, target)
			}
			b.AddTransition(id, r, target)
		}
	}

	return b.Finalize(startID), nil
}

// internState allocates (or would allocate, if the caller already checked
// memo) a DFA state for the given canonical NFA-state set, recording it in
// memo under its canonical key.
func internState(b *Builder, memo map[string]StateID, n *nfa.NFA, set []nfa.StateID) StateID {
	id := b.NewState(set)
	if n.HasAccept(set) {
		b.SetFinal(id, true)
	}
	memo[canonicalKey(set)] = id
	return id
}

// canonicalKey renders a sorted NFA-state-id slice as a string suitable
// for use as a map key, per §4.5's "sorted tuple of NFA state IDs"
// canonicalization rule.
func canonicalKey(ids []nfa.StateID) string {
	var sb strings.Builder
	for i, id := range ids {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatUint(uint64(id), 10))
	}
	return sb.String()
}
