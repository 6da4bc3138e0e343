package parser

import "github.com/automatalab/regexfsm/token"

// precedence gives each operator's binding strength, highest first, per
// §4.1 step 6: '*' at 4, '.' at 3, '|' at 2. Parentheses are handled
// structurally rather than through a numeric guard level.
func precedence(k token.Kind) int {
	switch k {
	case token.Star:
		return 4
	case token.Concat:
		return 3
	case token.Union:
		return 2
	default:
		return 0
	}
}

// shuntingYard converts a fully desugared, concatenation-explicit token
// stream into postfix order. All operators are left-associative; '*'
// binding tighter than '.' falls out of the precedence table alone, since
// '*' is unary and only ever has one operand on the stack when it is
// pushed.
func shuntingYard(toks []token.Token) ([]token.Token, error) {
	var output []token.Token
	var ops []token.Token

	for i, t := range toks {
		switch t.Kind {
		case token.Operand:
			output = append(output, t)
		case token.LParen:
			ops = append(ops, t)
		case token.RParen:
			found := false
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				ops = ops[:len(ops)-1]
				if top.Kind == token.LParen {
					found = true
					break
				}
				output = append(output, top)
			}
			if !found {
				return nil, &MalformedError{Stage: "shunting-yard", Position: i, Reason: "unmatched closing parenthesis"}
			}
		default: // Union, Concat, Star
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				if top.Kind == token.LParen || precedence(top.Kind) < precedence(t.Kind) {
					break
				}
				output = append(output, top)
				ops = ops[:len(ops)-1]
			}
			ops = append(ops, t)
		}
	}

	for len(ops) > 0 {
		top := ops[len(ops)-1]
		ops = ops[:len(ops)-1]
		if top.Kind == token.LParen {
			return nil, &MalformedError{Stage: "shunting-yard", Position: -1, Reason: "unmatched opening parenthesis"}
		}
		output = append(output, top)
	}

	return output, nil
}
