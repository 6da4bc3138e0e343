package nfa

import (
	"sort"

	"github.com/automatalab/regexfsm/internal/conv"
	"github.com/automatalab/regexfsm/internal/sparse"
)

// EpsilonClosure computes the least fixed point of S <- S U {δ(s,ε): s in
// S} via worklist, per §4.4. The result is returned as a sorted slice so
// it can double as a canonical key for subset construction (§4.5, §9
// "Canonicalization of DFA states").
//
// internal/sparse backs the worklist's membership test: O(1)
// insert/contains over the bounded universe of state ids, instead of a
// map[StateID]bool.
func (n *NFA) EpsilonClosure(seeds []StateID) []StateID {
	capacity := conv.IntToUint32(len(n.states))
	set := sparse.New(capacity)

	worklist := make([]StateID, 0, len(seeds))
	for _, s := range seeds {
		if !set.Contains(uint32(s)) {
			set.Insert(uint32(s))
			worklist = append(worklist, s)
		}
	}

	for len(worklist) > 0 {
		id := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		for _, t := range n.states[id].epsilon {
			if !set.Contains(uint32(t)) {
				set.Insert(uint32(t))
				worklist = append(worklist, t)
			}
		}
	}

	values := set.Values()
	out := make([]StateID, len(values))
	for i, v := range values {
		out[i] = StateID(v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Move computes ⋃ {δ(s, r) : s in ids}, deduplicated but unordered; callers
// that need a canonical form should run the result through
// EpsilonClosure, which also sorts.
func (n *NFA) Move(ids []StateID, r rune) []StateID {
	seen := make(map[StateID]bool)
	var out []StateID
	for _, id := range ids {
		for _, t := range n.states[id].transitions[r] {
			if !seen[t] {
				seen[t] = true
				out = append(out, t)
			}
		}
	}
	return out
}

// HasAccept reports whether ids contains the NFA's accept state.
func (n *NFA) HasAccept(ids []StateID) bool {
	for _, id := range ids {
		if id == n.Accept {
			return true
		}
	}
	return false
}
