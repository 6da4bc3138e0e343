// Package minimize implements Hopcroft-style partition refinement (§4.6):
// collapsing a DFA's states into the coarsest partition that still
// respects acceptance and transition behavior, then emitting one DFA
// state per surviving class.
package minimize

import (
	"sort"
	"strconv"
	"strings"

	"github.com/automatalab/regexfsm/dfa"
)

// trapClass is the signature value used for "no transition on this
// symbol", so a missing edge counts as its own distinguishable target
// class instead of silently matching some other class's presence (§4.6,
// trap-state handling).
const trapClass = -1

// Minimize partitions d's reachable states into equivalence classes under
// the standard refinement rule — two states start in the same class iff
// both accepting or both non-accepting, and are split apart the moment
// their per-symbol target classes diverge — then builds one DFA state per
// class that survives to the fixed point.
func Minimize(d *dfa.DFA) *dfa.DFA {
	symbols := sortedAlphabet(d)
	classOf := initialPartition(d)

	for {
		next, changed := refine(d, symbols, classOf)
		classOf = next
		if !changed {
			return build(d, symbols, classOf)
		}
	}
}

func sortedAlphabet(d *dfa.DFA) []rune {
	symbols := make([]rune, 0, len(d.Alphabet()))
	for r := range d.Alphabet() {
		symbols = append(symbols, r)
	}
	sort.Slice(symbols, func(i, j int) bool { return symbols[i] < symbols[j] })
	return symbols
}

// initialPartition assigns class 0 to non-accepting states and class 1 to
// accepting states (§4.6 step 1).
func initialPartition(d *dfa.DFA) map[dfa.StateID]int {
	classOf := make(map[dfa.StateID]int, d.NumStates())
	for _, id := range d.States() {
		if d.IsAccept(id) {
			classOf[id] = 1
		} else {
			classOf[id] = 0
		}
	}
	return classOf
}

// refine computes, for every state, a signature of (current class,
// per-symbol target class) and assigns a fresh class number per distinct
// signature. It returns the new partition and whether it differs from the
// input (i.e. whether any class was split).
func refine(d *dfa.DFA, symbols []rune, classOf map[dfa.StateID]int) (map[dfa.StateID]int, bool) {
	sigToClass := make(map[string]int)
	next := make(map[dfa.StateID]int, len(classOf))

	for _, id := range d.States() {
		sig := signature(d, symbols, classOf, id)
		class, ok := sigToClass[sig]
		if !ok {
			class = len(sigToClass)
			sigToClass[sig] = class
		}
		next[id] = class
	}

	return next, !sameClasses(classOf, next, d.States())
}

func signature(d *dfa.DFA, symbols []rune, classOf map[dfa.StateID]int, id dfa.StateID) string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(classOf[id]))
	for _, r := range symbols {
		sb.WriteByte(';')
		if target, ok := d.State(id).Transition(r); ok {
			sb.WriteString(strconv.Itoa(classOf[target]))
		} else {
			sb.WriteString(strconv.Itoa(trapClass))
		}
	}
	return sb.String()
}

// sameClasses reports whether old and new induce the same partition of
// states, independent of how the class numbers themselves are labeled.
func sameClasses(old, updated map[dfa.StateID]int, states []dfa.StateID) bool {
	oldToNew := make(map[int]int)
	for _, id := range states {
		o, n := old[id], updated[id]
		if mapped, ok := oldToNew[o]; ok {
			if mapped != n {
				return false
			}
			continue
		}
		oldToNew[o] = n
	}
	// Also ensure the mapping is injective the other way: two states
	// that were previously in different classes must not have merged.
	newToOld := make(map[int]int)
	for _, id := range states {
		o, n := old[id], updated[id]
		if mapped, ok := newToOld[n]; ok {
			if mapped != o {
				return false
			}
			continue
		}
		newToOld[n] = o
	}
	return true
}

// build emits one dfa.State per surviving class, wiring transitions from
// any representative member (all members of a class agree, by
// construction of the fixed point).
func build(d *dfa.DFA, symbols []rune, classOf map[dfa.StateID]int) *dfa.DFA {
	b := dfa.NewBuilder()

	classToNew := make(map[int]dfa.StateID)
	representative := make(map[int]dfa.StateID)
	for _, id := range d.States() {
		c := classOf[id]
		if _, ok := representative[c]; !ok {
			representative[c] = id
		}
	}

	classes := make([]int, 0, len(representative))
	for c := range representative {
		classes = append(classes, c)
	}
	sort.Ints(classes)

	for _, c := range classes {
		rep := representative[c]
		classToNew[c] = b.NewState(nil)
		b.SetFinal(classToNew[c], d.IsAccept(rep))
	}

	for _, c := range classes {
		rep := representative[c]
		for _, r := range symbols {
			if target, ok := d.State(rep).Transition(r); ok {
				b.AddTransition(classToNew[c], r, classToNew[classOf[target]])
			}
		}
	}

	return b.Finalize(classToNew[classOf[d.Start]])
}
