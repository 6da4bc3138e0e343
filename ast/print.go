package ast

import (
	"fmt"
	"strings"
)

// Dump renders the tree as an indented, human-readable listing, in the
// style of a compiler's -ast-dump flag. Used by the CLI's compile
// subcommand.
func Dump(n *Node) string {
	var b strings.Builder
	dump(&b, n, 0)
	return b.String()
}

func dump(b *strings.Builder, n *Node, depth int) {
	indent := strings.Repeat("  ", depth)
	switch n.Kind {
	case Leaf:
		fmt.Fprintf(b, "%sLeaf(%s)\n", indent, n.Symbol)
	case Unary:
		fmt.Fprintf(b, "%sUnary(%s)\n", indent, n.Op)
		dump(b, n.Left, depth+1)
	case Binary:
		fmt.Fprintf(b, "%sBinary(%s)\n", indent, n.Op)
		dump(b, n.Left, depth+1)
		dump(b, n.Right, depth+1)
	}
}
