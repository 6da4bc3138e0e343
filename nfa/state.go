// Package nfa implements Thompson's construction (§4.3): synthesizing a
// nondeterministic finite automaton from an AST, with exactly one start
// and one accept state per subexpression, composed into a single overall
// accept state.
package nfa

import "github.com/automatalab/regexfsm/internal/conv"

// StateID indexes into an NFA's state arena. Mirrors the teacher's
// StateID convention (coregx-coregex/nfa/nfa.go): a narrow integer type
// for compact, stable, printable identity instead of pointer identity.
type StateID uint32

// InvalidState marks an uninitialized StateID.
const InvalidState StateID = 0xFFFFFFFF

// State is one NFA state: a finality flag, a symbol-keyed transition map
// (nondeterministic: a symbol may lead to several targets), and a set of
// epsilon targets. Equality is by ID, per §3.
type State struct {
	ID    StateID
	Final bool

	transitions map[rune][]StateID
	epsilon     []StateID
}

// Transitions returns the symbol->targets map for s. The returned map must
// not be mutated; it is the live map owned by the NFA's arena.
func (s *State) Transitions() map[rune][]StateID { return s.transitions }

// Epsilon returns the epsilon-target list for s.
func (s *State) Epsilon() []StateID { return s.epsilon }

// NFA is an arena of States plus the derived reachable-set and alphabet
// described in §3. It is immutable once returned by Construct.
type NFA struct {
	Start  StateID
	Accept StateID

	states  []*State        // indexed by StateID
	reached []StateID        // all states reachable from Start, computed once
	alpha   map[rune]bool    // derived alphabet, excludes epsilon
}

// State looks up a state by id.
func (n *NFA) State(id StateID) *State { return n.states[id] }

// States returns every state reachable from Start, per §3's invariant that
// "every state in states is reachable from start".
func (n *NFA) States() []StateID { return n.reached }

// NumStates returns the number of reachable states.
func (n *NFA) NumStates() int { return len(n.reached) }

// Alphabet returns the set of non-epsilon symbols occurring on any
// transition.
func (n *NFA) Alphabet() map[rune]bool { return n.alpha }

// IsAccept reports whether id is the NFA's (sole) accept state.
func (n *NFA) IsAccept(id StateID) bool { return id == n.Accept }

// idOf is a conv.IntToUint32 wrapper kept local to this package for
// consistent overflow handling with the rest of the automaton arenas.
func idOf(i int) StateID { return StateID(conv.IntToUint32(i)) }
