package parser

import (
	"strings"
	"testing"

	"github.com/automatalab/regexfsm/token"
)

// render joins a token slice back into its textual form, for comparing
// against expected surface strings in table-driven tests.
func render(toks []token.Token) string {
	var b strings.Builder
	for _, t := range toks {
		b.WriteString(t.String())
	}
	return b.String()
}

func TestNormalizeMathItalics(t *testing.T) {
	tests := []struct {
		name, in, want string
	}{
		{"plain ascii untouched", "a|b", "a|b"},
		{"unicode star", "a∗", "a*"},
		{"italic a", "\U0001D44E", "a"},
		{"italic epsilon", "\U0001D700", "ε"},
		{"italic capital N", "\U0001D441", "N"},
		{"italic h uses planck constant codepoint", "ℎ", "h"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestIsNormalizedIdempotent(t *testing.T) {
	exprs := []string{"a|b", "(a|b)*abb", "a*", "0?(1?)?0*"}
	for _, e := range exprs {
		if !IsNormalized(e) {
			t.Errorf("expected already-ASCII expression %q to be normalized", e)
		}
		if Normalize(Normalize(e)) != Normalize(e) {
			t.Errorf("Normalize is not idempotent on %q", e)
		}
	}
}

func TestInsertConcatenation(t *testing.T) {
	tests := []struct{ in, want string }{
		{"ab", "a.b"},
		{"a(b|c)", "a.(b|c)"},
		{"a*b", "a*.b"},
		{"(a|b)(c|d)", "(a|b).(c|d)"},
		{"a|b", "a|b"},
	}
	for _, tt := range tests {
		toks, err := tokenize(normalize(tt.in))
		if err != nil {
			t.Fatalf("tokenize(%q): %v", tt.in, err)
		}
		got := render(insertConcat(toks))
		if got != tt.want {
			t.Errorf("insertConcat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDesugarPlus(t *testing.T) {
	tests := []struct{ in, want string }{
		{"a+", "a(a)*"},
		{"(a|b)+", "(a|b)((a|b))*"},
		{"ab+", "ab(b)*"},
	}
	for _, tt := range tests {
		toks, err := tokenize(normalize(tt.in))
		if err != nil {
			t.Fatalf("tokenize(%q): %v", tt.in, err)
		}
		out, err := desugarPlus(toks)
		if err != nil {
			t.Fatalf("desugarPlus(%q): %v", tt.in, err)
		}
		if got := render(out); got != tt.want {
			t.Errorf("desugarPlus(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDesugarQuestion(t *testing.T) {
	tests := []struct{ in, want string }{
		{"a?", "(a|ε)"},
		{"(a|b)?", "((a|b)|ε)"},
		{"0?(1?)?0*", "(0|ε)(((1|ε))|ε)0*"},
	}
	for _, tt := range tests {
		toks, err := tokenize(normalize(tt.in))
		if err != nil {
			t.Fatalf("tokenize(%q): %v", tt.in, err)
		}
		out, err := desugarQuestion(toks)
		if err != nil {
			t.Fatalf("desugarQuestion(%q): %v", tt.in, err)
		}
		if got := render(out); got != tt.want {
			t.Errorf("desugarQuestion(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEscapeHandling(t *testing.T) {
	toks, err := tokenize(normalize(`\(a\)`))
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	if len(toks) != 3 {
		t.Fatalf("expected 3 tokens, got %d: %v", len(toks), toks)
	}
	if toks[0].Literal != "L(" || toks[2].Literal != "L)" {
		t.Errorf("expected escaped literals L( and L), got %q and %q", toks[0].Literal, toks[2].Literal)
	}
	if r := toks[0].Rune(); r != '(' {
		t.Errorf("Rune() = %q, want '('", r)
	}

	// escaping a non-metacharacter reduces to the bare character.
	toks, err = tokenize(normalize(`\a`))
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	if len(toks) != 1 || toks[0].Literal != "a" {
		t.Errorf("expected escape of ordinary char to reduce to bare char, got %v", toks)
	}
}

func TestToPostfixScenarios(t *testing.T) {
	tests := []struct{ in, want string }{
		{"a|b", "ab|"},
		{"ab", "ab."},
		{"a*", "a*"},
	}
	for _, tt := range tests {
		got, err := ToPostfix(tt.in)
		if err != nil {
			t.Fatalf("ToPostfix(%q): %v", tt.in, err)
		}
		if render(got) != tt.want {
			t.Errorf("ToPostfix(%q) = %q, want %q", tt.in, render(got), tt.want)
		}
	}
}

func TestToPostfixNoQuestionOrPlus(t *testing.T) {
	for _, in := range []string{"a+", "a?", "(a|b)+", "0?(1?)?0*"} {
		toks, err := ToPostfix(in)
		if err != nil {
			t.Fatalf("ToPostfix(%q): %v", in, err)
		}
		for _, tok := range toks {
			if tok.Kind == token.Question || tok.Kind == token.Plus {
				t.Errorf("ToPostfix(%q) leaked a %v token, want fully desugared", in, tok)
			}
		}
	}
}

func TestUnbalancedParenthesesIsMalformed(t *testing.T) {
	_, err := ToPostfix("(a|b")
	if err == nil {
		t.Fatal("expected MalformedError for unbalanced parenthesis")
	}
	var me *MalformedError
	if !asMalformed(err, &me) {
		t.Fatalf("expected *MalformedError, got %T: %v", err, err)
	}
}

func TestUnsupportedTokenError(t *testing.T) {
	_, err := ToPostfix("a#b")
	if err == nil {
		t.Fatal("expected UnsupportedTokenError")
	}
	var ue *UnsupportedTokenError
	if !asUnsupported(err, &ue) {
		t.Fatalf("expected *UnsupportedTokenError, got %T: %v", err, err)
	}
}

func asMalformed(err error, target **MalformedError) bool {
	if me, ok := err.(*MalformedError); ok {
		*target = me
		return true
	}
	return false
}

func asUnsupported(err error, target **UnsupportedTokenError) bool {
	if ue, ok := err.(*UnsupportedTokenError); ok {
		*target = ue
		return true
	}
	return false
}
