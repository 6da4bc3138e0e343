package nfa_test

import (
	"testing"

	"github.com/automatalab/regexfsm/ast"
	"github.com/automatalab/regexfsm/nfa"
	"github.com/automatalab/regexfsm/parser"
)

func mustConstruct(t *testing.T, pattern string) *nfa.NFA {
	t.Helper()
	postfix, err := parser.ToPostfix(pattern)
	if err != nil {
		t.Fatalf("ToPostfix(%q): %v", pattern, err)
	}
	root, err := ast.Build(postfix)
	if err != nil {
		t.Fatalf("ast.Build(%q): %v", pattern, err)
	}
	n, err := nfa.Construct(root)
	if err != nil {
		t.Fatalf("Construct(%q): %v", pattern, err)
	}
	return n
}

func TestConstructSingleAcceptState(t *testing.T) {
	for _, pattern := range []string{"a", "a|b", "ab", "a*", "(a|b)*abb", "ε"} {
		n := mustConstruct(t, pattern)
		accepts := 0
		for _, id := range n.States() {
			if n.State(id).Final {
				accepts++
			}
		}
		if accepts != 1 {
			t.Errorf("pattern %q: expected exactly one Final state, got %d", pattern, accepts)
		}
		if !n.IsAccept(n.Accept) {
			t.Errorf("pattern %q: n.Accept is not reported as accepting", pattern)
		}
	}
}

func TestConstructAllStatesReachable(t *testing.T) {
	n := mustConstruct(t, "(a|b)*abb")
	if n.NumStates() == 0 {
		t.Fatal("expected at least one reachable state")
	}
	for _, id := range n.States() {
		if id >= nfa.StateID(len(n.States())) && n.State(id) == nil {
			t.Errorf("state %d in States() has no backing State", id)
		}
	}

	seen := map[nfa.StateID]bool{n.Start: true}
	stack := []nfa.StateID{n.Start}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		s := n.State(id)
		next := append([]nfa.StateID(nil), s.Epsilon()...)
		for _, targets := range s.Transitions() {
			next = append(next, targets...)
		}
		for _, to := range next {
			if !seen[to] {
				seen[to] = true
				stack = append(stack, to)
			}
		}
	}
	for _, id := range n.States() {
		if !seen[id] {
			t.Errorf("state %d in States() is not reachable from Start", id)
		}
	}
}

func TestConstructAlphabetExcludesEpsilon(t *testing.T) {
	n := mustConstruct(t, "a|b")
	if len(n.Alphabet()) != 2 {
		t.Fatalf("expected alphabet {a,b}, got %v", n.Alphabet())
	}
	if n.Alphabet()['a'] != true || n.Alphabet()['b'] != true {
		t.Errorf("alphabet missing expected symbols: %v", n.Alphabet())
	}
}

func TestConstructEpsilonLeaf(t *testing.T) {
	n := mustConstruct(t, "ε")
	start := n.State(n.Start)
	if len(start.Epsilon()) == 0 {
		t.Error("expected start state to have an epsilon transition for the ε leaf")
	}
}
