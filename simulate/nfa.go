// Package simulate implements the NFA and DFA simulators (§4.4, §4.7): the
// only two execution strategies this module needs, since each automaton
// kind has exactly one. Kept as its own package, distinct from
// construction (nfa/, dfa/), because the pipeline facade and the CLI both
// consume it without needing the builders.
package simulate

import "github.com/automatalab/regexfsm/nfa"

// NFA runs the epsilon-closure simulation described in §4.4: start from
// the epsilon-closure of {start}, and for each input symbol, move to the
// union of targets and re-close over epsilon. Rejects as soon as a symbol
// has no transition out of the current set; accepts iff the final set
// contains the accept state.
func NFA(n *nfa.NFA, input string) bool {
	current := n.EpsilonClosure([]nfa.StateID{n.Start})

	for _, r := range input {
		moved := n.Move(current, r)
		if len(moved) == 0 {
			return false
		}
		current = n.EpsilonClosure(moved)
	}

	return n.HasAccept(current)
}
