package simulate

import "github.com/automatalab/regexfsm/dfa"

// DFA runs the deterministic walk described in §4.7: follow exactly one
// transition per input symbol, rejecting immediately if none exists, and
// accepting iff the final state reached is accepting.
func DFA(d *dfa.DFA, input string) bool {
	current := d.Start

	for _, r := range input {
		next, ok := d.State(current).Transition(r)
		if !ok {
			return false
		}
		current = next
	}

	return d.IsAccept(current)
}
