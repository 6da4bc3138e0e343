// Package dfa implements the subset construction (§4.5): building a
// deterministic finite automaton whose states are canonical, ε-closed sets
// of NFA states.
package dfa

import (
	"sort"

	"github.com/automatalab/regexfsm/nfa"
)

// StateID indexes into a DFA's state arena.
type StateID uint32

// InvalidState marks an uninitialized StateID.
const InvalidState StateID = 0xFFFFFFFF

// State is one DFA state: the set of NFA state ids it represents (for
// traceability; empty for minimized states, each of which aggregates one
// class of equivalent DFA states, per §3), a finality flag, and a deterministic symbol->state
// transition map (at most one target per symbol).
type State struct {
	ID        StateID
	NFAStates []nfa.StateID
	Final     bool

	transitions map[rune]StateID
}

// Transitions returns the live symbol->target map. Callers must not
// mutate it.
func (s *State) Transitions() map[rune]StateID { return s.transitions }

// Transition returns the target state for symbol r and whether one
// exists; per §3, an absent entry means an implicit trap (reject on this
// path), not an error.
func (s *State) Transition(r rune) (StateID, bool) {
	id, ok := s.transitions[r]
	return id, ok
}

// DFA is an arena of States plus the derived reachable-set and alphabet.
type DFA struct {
	Start StateID

	states  []*State
	reached []StateID
	alpha   map[rune]bool
}

// State looks up a state by id.
func (d *DFA) State(id StateID) *State { return d.states[id] }

// States returns every state reachable from Start.
func (d *DFA) States() []StateID { return d.reached }

// NumStates returns the number of reachable states.
func (d *DFA) NumStates() int { return len(d.reached) }

// Alphabet returns the automaton's input alphabet.
func (d *DFA) Alphabet() map[rune]bool { return d.alpha }

// IsAccept reports whether id is an accepting state.
func (d *DFA) IsAccept(id StateID) bool {
	if int(id) >= len(d.states) {
		return false
	}
	return d.states[id].Final
}

// AcceptStates returns every accepting state id, in ascending order.
func (d *DFA) AcceptStates() []StateID {
	var out []StateID
	for _, id := range d.reached {
		if d.states[id].Final {
			out = append(out, id)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
