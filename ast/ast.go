// Package ast builds and represents the abstract syntax tree produced by
// evaluating a postfix token stream (§4.2 of the spec).
package ast

import "github.com/automatalab/regexfsm/token"

// Kind tags the three node shapes described in §3: Leaf, Unary, Binary.
// Following the teacher's tagged-variant convention (DESIGN NOTES §9)
// rather than an interface hierarchy per node type.
type Kind uint8

const (
	Leaf Kind = iota
	Unary
	Binary
)

// Node is a single AST node. Leaves carry Symbol and no children; Unary
// nodes carry exactly one child in Left; Binary nodes carry both Left and
// Right. Op is meaningful only for Unary ('*') and Binary ('.', '|') nodes.
type Node struct {
	ID    int
	Kind  Kind
	Op    token.Kind
	Symbol token.Token
	Left  *Node
	Right *Node
}

// nextID hands out unique ids for visualization, scoped to one Builder so
// that concurrent compiles (§5) never share a counter.
type Builder struct {
	nextID int
}

// NewBuilder returns a Builder with a fresh id counter.
func NewBuilder() *Builder { return &Builder{} }

func (b *Builder) id() int {
	id := b.nextID
	b.nextID++
	return id
}

func (b *Builder) leaf(sym token.Token) *Node {
	return &Node{ID: b.id(), Kind: Leaf, Symbol: sym}
}

func (b *Builder) unary(op token.Kind, child *Node) *Node {
	return &Node{ID: b.id(), Kind: Unary, Op: op, Left: child}
}

func (b *Builder) binary(op token.Kind, left, right *Node) *Node {
	return &Node{ID: b.id(), Kind: Binary, Op: op, Left: left, Right: right}
}

// Build evaluates a postfix token stream into a single AST, per §4.2: push
// leaves for operands, pop two for a binary operator (right first, then
// left), pop one for a unary operator. The final stack must hold exactly
// one node.
func Build(postfix []token.Token) (*Node, error) {
	b := NewBuilder()
	var stack []*Node

	for i, t := range postfix {
		switch t.Kind {
		case token.Operand:
			stack = append(stack, b.leaf(t))
		case token.Union, token.Concat:
			if len(stack) < 2 {
				return nil, &MalformedError{Position: i, Reason: "binary operator found fewer than two operands on the stack"}
			}
			right := stack[len(stack)-1]
			left := stack[len(stack)-2]
			stack = stack[:len(stack)-2]
			stack = append(stack, b.binary(t.Kind, left, right))
		case token.Star:
			if len(stack) < 1 {
				return nil, &MalformedError{Position: i, Reason: "unary operator found no operand on the stack"}
			}
			child := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			stack = append(stack, b.unary(t.Kind, child))
		default:
			return nil, &MalformedError{Position: i, Reason: "token is not valid in postfix position"}
		}
	}

	if len(stack) != 1 {
		return nil, &MalformedError{Position: len(postfix), Reason: "postfix evaluation did not leave exactly one node on the stack"}
	}

	return stack[0], nil
}
