package parser

import "github.com/automatalab/regexfsm/token"

// operandSpan returns the half-open range [start, end) of tokens forming
// the left operand of the operator at index opIdx: either a single operand
// token, or a parenthesized group scanned backward for its balanced match.
// end is always opIdx.
func operandSpan(toks []token.Token, opIdx int) (start, end int, err error) {
	if opIdx == 0 {
		return 0, 0, &MalformedError{Stage: "desugar", Position: opIdx, Reason: "operator has no preceding operand"}
	}
	end = opIdx
	if toks[opIdx-1].Kind == token.RParen {
		depth := 1
		i := opIdx - 2
		for ; i >= 0; i-- {
			switch toks[i].Kind {
			case token.RParen:
				depth++
			case token.LParen:
				depth--
			}
			if depth == 0 {
				break
			}
		}
		if depth != 0 {
			return 0, 0, &MalformedError{Stage: "desugar", Position: opIdx, Reason: "unbalanced parenthesis before operator"}
		}
		return i, end, nil
	}
	return opIdx - 1, end, nil
}

// desugarPlus expands every X+ into X(X)*, leftmost occurrence first, per
// §4.1 step 2. Because the expansion never introduces a new '+', a single
// left-to-right rescan after each rewrite is sufficient to reach a fixed
// point; nested '+' (as in "(a+)+") are resolved inside-out since the
// inner '+' is always encountered first by a leftmost scan.
func desugarPlus(toks []token.Token) ([]token.Token, error) {
	for {
		idx := indexOfKind(toks, token.Plus)
		if idx < 0 {
			return toks, nil
		}

		start, end, err := operandSpan(toks, idx)
		if err != nil {
			return nil, err
		}
		operand := toks[start:end]

		expansion := make([]token.Token, 0, len(operand)*2+3)
		expansion = append(expansion, operand...)
		expansion = append(expansion, token.Token{Kind: token.LParen, Literal: "("})
		expansion = append(expansion, operand...)
		expansion = append(expansion, token.Token{Kind: token.RParen, Literal: ")"})
		expansion = append(expansion, token.Token{Kind: token.Star, Literal: "*"})

		toks = spliceTokens(toks, start, idx+1, expansion)
	}
}

// desugarQuestion expands every X? into (X|ε), rightmost occurrence first,
// per §4.1 step 3, so that already-rewritten forms, which lie to the right
// of the current '?', are left untouched by this pass.
func desugarQuestion(toks []token.Token) ([]token.Token, error) {
	for {
		idx := lastIndexOfKind(toks, token.Question)
		if idx < 0 {
			return toks, nil
		}

		start, end, err := operandSpan(toks, idx)
		if err != nil {
			return nil, err
		}
		operand := toks[start:end]

		expansion := make([]token.Token, 0, len(operand)+4)
		expansion = append(expansion, token.Token{Kind: token.LParen, Literal: "("})
		expansion = append(expansion, operand...)
		expansion = append(expansion, token.Token{Kind: token.Union, Literal: "|"})
		expansion = append(expansion, token.Epsilon)
		expansion = append(expansion, token.Token{Kind: token.RParen, Literal: ")"})

		toks = spliceTokens(toks, start, idx+1, expansion)
	}
}

func indexOfKind(toks []token.Token, k token.Kind) int {
	for i, t := range toks {
		if t.Kind == k {
			return i
		}
	}
	return -1
}

func lastIndexOfKind(toks []token.Token, k token.Kind) int {
	for i := len(toks) - 1; i >= 0; i-- {
		if toks[i].Kind == k {
			return i
		}
	}
	return -1
}

// spliceTokens returns a new slice with toks[from:to] replaced by with.
func spliceTokens(toks []token.Token, from, to int, with []token.Token) []token.Token {
	out := make([]token.Token, 0, len(toks)-(to-from)+len(with))
	out = append(out, toks[:from]...)
	out = append(out, with...)
	out = append(out, toks[to:]...)
	return out
}
