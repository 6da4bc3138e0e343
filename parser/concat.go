package parser

import "github.com/automatalab/regexfsm/token"

// concatLeft and concatRight are, post-desugaring, the token kinds that can
// sit to the left and right (respectively) of an implicit concatenation
// boundary, per §4.1 step 5. '?' and '+' never appear here since they are
// desugared away in earlier passes; escaped literals are plain Operand
// tokens so they fall out of the Operand case on both sides.
func concatLeft(k token.Kind) bool {
	switch k {
	case token.Operand, token.RParen, token.Star:
		return true
	default:
		return false
	}
}

func concatRight(k token.Kind) bool {
	switch k {
	case token.Operand, token.LParen:
		return true
	default:
		return false
	}
}

// insertConcat walks the token stream and inserts an explicit Concat token
// between adjacent tokens t1, t2 whenever concatLeft(t1) && concatRight(t2).
func insertConcat(toks []token.Token) []token.Token {
	if len(toks) < 2 {
		return toks
	}

	out := make([]token.Token, 0, len(toks)*2)
	out = append(out, toks[0])
	for i := 1; i < len(toks); i++ {
		prev, cur := toks[i-1], toks[i]
		if concatLeft(prev.Kind) && concatRight(cur.Kind) {
			out = append(out, token.Token{Kind: token.Concat, Literal: "."})
		}
		out = append(out, cur)
	}
	return out
}
