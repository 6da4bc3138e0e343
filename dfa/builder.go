package dfa

import "github.com/automatalab/regexfsm/nfa"

// Builder accumulates States under a monotonically increasing id counter,
// mirroring nfa.Builder's instance-local-counter convention (§5: no shared
// mutable state across concurrent compiles).
type Builder struct {
	states []*State
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// NewState allocates a fresh, non-final state with no outgoing
// transitions and returns its id.
func (b *Builder) NewState(nfaStates []nfa.StateID) StateID {
	id := StateID(len(b.states))
	b.states = append(b.states, &State{
		ID:          id,
		NFAStates:   nfaStates,
		transitions: make(map[rune]StateID),
	})
	return id
}

// SetFinal marks state id as accepting or not.
func (b *Builder) SetFinal(id StateID, final bool) {
	b.states[id].Final = final
}

// AddTransition records δ(from, r) = to. Subset construction never adds a
// second target for the same (from, r) pair, so no merge logic is needed
// here; a later write simply overwrites, which would indicate a bug in the
// caller rather than legitimate nondeterminism.
func (b *Builder) AddTransition(from StateID, r rune, to StateID) {
	b.states[from].transitions[r] = to
}

// Finalize computes the alphabet and reachable-state order by DFS from
// start, and returns the assembled DFA.
func (b *Builder) Finalize(start StateID) *DFA {
	alpha := make(map[rune]bool)
	for _, s := range b.states {
		for r := range s.transitions {
			alpha[r] = true
		}
	}

	visited := make([]bool, len(b.states))
	var reached []StateID
	var stack []StateID
	if len(b.states) > 0 {
		stack = append(stack, start)
		visited[start] = true
	}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		reached = append(reached, id)
		for _, to := range b.states[id].transitions {
			if !visited[to] {
				visited[to] = true
				stack = append(stack, to)
			}
		}
	}

	return &DFA{
		Start:   start,
		states:  b.states,
		reached: reached,
		alpha:   alpha,
	}
}
