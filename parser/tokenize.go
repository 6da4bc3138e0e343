package parser

import (
	"unicode"

	"github.com/automatalab/regexfsm/token"
)

// metacharacters is the set of characters that, when escaped, are encoded
// as the two-symbol "L<c>" literal token per §3. Any other escaped
// character reduces to the bare character per §4.1 step 4.
var metacharacters = map[rune]bool{
	'|': true, '*': true, '?': true, '+': true,
	'(': true, ')': true, '\\': true,
}

// tokenize converts an already-normalized expression into a stream of raw
// tokens: operators, parentheses, and operand leaves (plain characters,
// epsilon, and escaped literals). Whitespace is skipped. Unrecognized
// characters surface as UnsupportedTokenError.
func tokenize(normalized string) ([]token.Token, error) {
	runes := []rune(normalized)
	var out []token.Token

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			continue
		case r == '(':
			out = append(out, token.Token{Kind: token.LParen, Literal: "("})
		case r == ')':
			out = append(out, token.Token{Kind: token.RParen, Literal: ")"})
		case r == '|':
			out = append(out, token.Token{Kind: token.Union, Literal: "|"})
		case r == '*':
			out = append(out, token.Token{Kind: token.Star, Literal: "*"})
		case r == '?':
			out = append(out, token.Token{Kind: token.Question, Literal: "?"})
		case r == '+':
			out = append(out, token.Token{Kind: token.Plus, Literal: "+"})
		case r == '\\':
			i++
			if i >= len(runes) {
				return nil, &MalformedError{Stage: "tokenize", Position: i - 1, Reason: "dangling escape at end of expression"}
			}
			escaped := runes[i]
			if escaped == 'n' || metacharacters[escaped] {
				out = append(out, token.Token{Kind: token.Operand, Literal: "L" + string(escaped)})
			} else {
				out = append(out, token.Token{Kind: token.Operand, Literal: string(escaped)})
			}
		case r == 'ε':
			out = append(out, token.Epsilon)
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			out = append(out, token.Token{Kind: token.Operand, Literal: string(r)})
		default:
			return nil, &UnsupportedTokenError{Position: i, Rune: r}
		}
	}

	return out, nil
}
