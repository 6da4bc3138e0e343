package nfa

import (
	"github.com/automatalab/regexfsm/ast"
	"github.com/automatalab/regexfsm/token"
)

// fragment is a partially-wired NFA piece: a start state and an accept
// state, per §4.3 ("each construction returns an NFA with exactly one
// start and one accept state").
type fragment struct {
	start  StateID
	accept StateID
}

// Construct recursively synthesizes an NFA from an AST root via Thompson's
// construction (§4.3). A fresh Builder supplies monotonically increasing
// state ids; the returned NFA's sole accept state is Final, and every
// intermediate accept state created along the way has had its Final flag
// cleared by the time construction completes.
func Construct(root *ast.Node) (*NFA, error) {
	b := NewBuilder()
	f, err := build(b, root)
	if err != nil {
		return nil, err
	}
	return b.Finalize(f.start, f.accept), nil
}

func build(b *Builder, n *ast.Node) (fragment, error) {
	switch n.Kind {
	case ast.Leaf:
		return buildLeaf(b, n)
	case ast.Unary:
		return buildStar(b, n)
	case ast.Binary:
		switch n.Op {
		case token.Concat:
			return buildConcat(b, n)
		case token.Union:
			return buildUnion(b, n)
		}
	}
	return fragment{}, &ConstructError{NodeID: n.ID, Err: ErrInvalidAST}
}

// buildLeaf handles Leaf(ε): start -ε-> accept, and Leaf(a): start -a->
// accept, including literal `Lc` leaves which denote the character c.
func buildLeaf(b *Builder, n *ast.Node) (fragment, error) {
	start := b.NewState()
	accept := b.NewState()
	b.SetFinal(accept, true)

	if n.Symbol.IsEpsilon() {
		b.AddEpsilon(start, accept)
	} else {
		b.AddTransition(start, n.Symbol.Rune(), accept)
	}

	return fragment{start, accept}, nil
}

// buildConcat wires L's accept to R's start via epsilon, clears L's accept
// flag, and yields L's start paired with R's accept (§4.3, Binary('.')).
func buildConcat(b *Builder, n *ast.Node) (fragment, error) {
	l, err := build(b, n.Left)
	if err != nil {
		return fragment{}, err
	}
	r, err := build(b, n.Right)
	if err != nil {
		return fragment{}, err
	}

	b.AddEpsilon(l.accept, r.start)
	b.SetFinal(l.accept, false)

	return fragment{l.start, r.accept}, nil
}

// buildUnion allocates a new start/accept pair, epsilon-branches into both
// alternatives, and epsilon-joins both accepts into the new accept,
// clearing the alternatives' own accept flags (§4.3, Binary('|')).
func buildUnion(b *Builder, n *ast.Node) (fragment, error) {
	l, err := build(b, n.Left)
	if err != nil {
		return fragment{}, err
	}
	r, err := build(b, n.Right)
	if err != nil {
		return fragment{}, err
	}

	start := b.NewState()
	accept := b.NewState()
	b.SetFinal(accept, true)

	b.AddEpsilon(start, l.start)
	b.AddEpsilon(start, r.start)
	b.AddEpsilon(l.accept, accept)
	b.AddEpsilon(r.accept, accept)
	b.SetFinal(l.accept, false)
	b.SetFinal(r.accept, false)

	return fragment{start, accept}, nil
}

// buildStar allocates a new start/accept pair wired for zero matches
// (directly to accept), one pass through the child, and repetition back to
// the child's start, clearing the child's own accept flag (§4.3, Unary('*')).
func buildStar(b *Builder, n *ast.Node) (fragment, error) {
	c, err := build(b, n.Left)
	if err != nil {
		return fragment{}, err
	}

	start := b.NewState()
	accept := b.NewState()
	b.SetFinal(accept, true)

	b.AddEpsilon(start, accept)  // zero matches
	b.AddEpsilon(start, c.start) // one or more
	b.AddEpsilon(c.accept, c.start)
	b.AddEpsilon(c.accept, accept)
	b.SetFinal(c.accept, false)

	return fragment{start, accept}, nil
}
