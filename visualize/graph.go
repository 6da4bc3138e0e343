// Package visualize renders compiled automata as Graphviz DOT source
// (§4.10). It is an outer collaborator consumed only by cmd/regexfsm —
// never imported by the core parser/ast/nfa/dfa/minimize/simulate chain.
package visualize

import (
	"fmt"
	"sort"

	"github.com/automatalab/regexfsm/dfa"
	"github.com/automatalab/regexfsm/nfa"
)

// Node is one rendered automaton state.
type Node struct {
	ID     string
	Start  bool
	Accept bool
}

// Edge is one rendered transition, with Label "ε" for epsilon edges.
type Edge struct {
	From, To, Label string
}

// GraphView is a renderable snapshot of an automaton's shape, independent
// of whether it came from an NFA or a DFA.
type GraphView struct {
	Nodes []Node
	Edges []Edge
}

// Graph builds a GraphView from either an *nfa.NFA or a *dfa.DFA. Any
// other argument panics, since this is an internal collaborator driven
// entirely by the CLI's own compiled pipeline values, not user input.
func Graph(automaton any) GraphView {
	switch a := automaton.(type) {
	case *nfa.NFA:
		return graphNFA(a)
	case *dfa.DFA:
		return graphDFA(a)
	default:
		panic(fmt.Sprintf("visualize: Graph called with unsupported type %T", automaton))
	}
}

func graphNFA(n *nfa.NFA) GraphView {
	var v GraphView
	for _, id := range n.States() {
		s := n.State(id)
		v.Nodes = append(v.Nodes, Node{
			ID:     nodeID(uint32(id)),
			Start:  id == n.Start,
			Accept: s.Final,
		})

		symbols := make([]rune, 0, len(s.Transitions()))
		for r := range s.Transitions() {
			symbols = append(symbols, r)
		}
		sort.Slice(symbols, func(i, j int) bool { return symbols[i] < symbols[j] })
		for _, r := range symbols {
			for _, target := range s.Transitions()[r] {
				v.Edges = append(v.Edges, Edge{
					From:  nodeID(uint32(id)),
					To:    nodeID(uint32(target)),
					Label: string(r),
				})
			}
		}
		for _, target := range s.Epsilon() {
			v.Edges = append(v.Edges, Edge{
				From:  nodeID(uint32(id)),
				To:    nodeID(uint32(target)),
				Label: "ε",
			})
		}
	}
	sortGraph(&v)
	return v
}

func graphDFA(d *dfa.DFA) GraphView {
	var v GraphView
	for _, id := range d.States() {
		s := d.State(id)
		v.Nodes = append(v.Nodes, Node{
			ID:     nodeID(uint32(id)),
			Start:  id == d.Start,
			Accept: s.Final,
		})

		symbols := make([]rune, 0, len(s.Transitions()))
		for r := range s.Transitions() {
			symbols = append(symbols, r)
		}
		sort.Slice(symbols, func(i, j int) bool { return symbols[i] < symbols[j] })
		for _, r := range symbols {
			target, _ := s.Transition(r)
			v.Edges = append(v.Edges, Edge{
				From:  nodeID(uint32(id)),
				To:    nodeID(uint32(target)),
				Label: string(r),
			})
		}
	}
	sortGraph(&v)
	return v
}

func nodeID(id uint32) string { return fmt.Sprintf("s%d", id) }

func sortGraph(v *GraphView) {
	sort.Slice(v.Nodes, func(i, j int) bool { return v.Nodes[i].ID < v.Nodes[j].ID })
	sort.Slice(v.Edges, func(i, j int) bool {
		if v.Edges[i].From != v.Edges[j].From {
			return v.Edges[i].From < v.Edges[j].From
		}
		if v.Edges[i].To != v.Edges[j].To {
			return v.Edges[i].To < v.Edges[j].To
		}
		return v.Edges[i].Label < v.Edges[j].Label
	})
}
