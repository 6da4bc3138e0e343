// Package parser converts a regex surface expression in infix notation
// into a postfix token stream, via Unicode normalization, operator
// desugaring, explicit-concatenation insertion, and the shunting-yard
// algorithm (§4.1 of the spec).
package parser

import "github.com/automatalab/regexfsm/token"

// ToPostfix runs the full infix-to-postfix pipeline over raw expression
// text: normalize, tokenize (including escape handling), desugar '+',
// desugar '?', insert explicit concatenation, and finally shunting-yard.
//
// The returned slice never contains Question or Plus tokens; both are
// fully desugared into Star/Union/LParen/RParen/Operand before postfix
// emission, per §3.
func ToPostfix(pattern string) ([]token.Token, error) {
	normalized := normalize(pattern)

	toks, err := tokenize(normalized)
	if err != nil {
		return nil, err
	}

	toks, err = desugarPlus(toks)
	if err != nil {
		return nil, err
	}

	toks, err = desugarQuestion(toks)
	if err != nil {
		return nil, err
	}

	toks = insertConcat(toks)

	return shuntingYard(toks)
}

// Normalize exposes the Unicode normalization pass on its own, used by
// tests asserting the idempotence property from §8.
func Normalize(pattern string) string { return normalize(pattern) }

// IsNormalized reports whether pattern is already a fixed point of
// Normalize.
func IsNormalized(pattern string) bool { return isNormalized(pattern) }
