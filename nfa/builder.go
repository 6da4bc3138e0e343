package nfa

// Builder constructs an NFA incrementally, handing out fresh StateIDs from
// an instance-local counter. Per §5, counters are never shared across
// compiles; a fresh Builder is created for every Construct call, so
// expressions can be compiled concurrently without coordination.
//
// Grounded on coregx-coregex/nfa/builder.go's accumulate-into-a-slice
// convention.
type Builder struct {
	states []*State
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{states: make([]*State, 0, 16)}
}

// NewState allocates a fresh state and returns its id.
func (b *Builder) NewState() StateID {
	id := idOf(len(b.states))
	b.states = append(b.states, &State{
		ID:          id,
		transitions: make(map[rune][]StateID),
	})
	return id
}

// SetFinal sets or clears the finality flag on a state. Thompson
// construction sets it when a fragment's accept state is created and
// clears it again when that state is wired into a larger fragment (§4.3).
func (b *Builder) SetFinal(id StateID, final bool) {
	b.states[id].Final = final
}

// AddTransition adds a non-epsilon transition on symbol r from `from` to
// `to`. Multiple calls with the same (from, r) accumulate targets, since
// NFA transitions are nondeterministic.
func (b *Builder) AddTransition(from StateID, r rune, to StateID) {
	s := b.states[from]
	s.transitions[r] = append(s.transitions[r], to)
}

// AddEpsilon adds an epsilon transition from `from` to `to`.
func (b *Builder) AddEpsilon(from, to StateID) {
	s := b.states[from]
	s.epsilon = append(s.epsilon, to)
}

// Finalize freezes the builder into an NFA rooted at start/accept,
// computing the reachable-state set and derived alphabet per §3.
func (b *Builder) Finalize(start, accept StateID) *NFA {
	n := &NFA{
		Start:  start,
		Accept: accept,
		states: b.states,
		alpha:  make(map[rune]bool),
	}

	visited := make(map[StateID]bool)
	var order []StateID
	var walk func(StateID)
	walk = func(id StateID) {
		if visited[id] {
			return
		}
		visited[id] = true
		order = append(order, id)
		s := b.states[id]
		for r, targets := range s.transitions {
			n.alpha[r] = true
			for _, t := range targets {
				walk(t)
			}
		}
		for _, t := range s.epsilon {
			walk(t)
		}
	}
	walk(start)

	n.reached = order
	return n
}
