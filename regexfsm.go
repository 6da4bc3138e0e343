// Package regexfsm is the pipeline facade (§4.9): it chains the parser,
// AST builder, Thompson construction, subset construction, and
// minimization packages into a single Compile call, and fans Match out
// across all three simulators.
package regexfsm

import (
	"fmt"

	"github.com/automatalab/regexfsm/ast"
	"github.com/automatalab/regexfsm/dfa"
	"github.com/automatalab/regexfsm/minimize"
	"github.com/automatalab/regexfsm/nfa"
	"github.com/automatalab/regexfsm/parser"
	"github.com/automatalab/regexfsm/simulate"
	"github.com/automatalab/regexfsm/token"
)

// Pipeline holds every intermediate artifact produced by Compile, so
// callers (the CLI's `compile` subcommand in particular) can inspect each
// stage without recompiling.
type Pipeline struct {
	Pattern string
	Postfix []token.Token
	AST     *ast.Node
	NFA     *nfa.NFA
	DFA     *dfa.DFA
	MinDFA  *dfa.DFA
}

// MatchResult reports the verdict from each of the three simulators plus
// whether they agree, per §4.9.
type MatchResult struct {
	Input  string
	NFA    bool
	DFA    bool
	MinDFA bool
	Agree  bool
}

// VerdictMismatch is returned by Match in the should-never-happen case
// where the three simulators disagree on a well-formed pipeline,
// indicating a bug in one of the construction or simulation stages rather
// than anything about the input pattern or string.
type VerdictMismatch struct {
	Pattern string
	Result  MatchResult
}

func (e *VerdictMismatch) Error() string {
	return fmt.Sprintf("regexfsm: simulators disagree on pattern %q, input %q: nfa=%v dfa=%v minDFA=%v",
		e.Pattern, e.Result.Input, e.Result.NFA, e.Result.DFA, e.Result.MinDFA)
}

// Compile runs the full chain described in §4: normalize/tokenize/desugar
// to postfix, build the AST, synthesize a Thompson NFA, determinize it,
// and minimize the result.
func Compile(pattern string) (*Pipeline, error) {
	postfix, err := parser.ToPostfix(pattern)
	if err != nil {
		return nil, err
	}

	root, err := ast.Build(postfix)
	if err != nil {
		return nil, err
	}

	n, err := nfa.Construct(root)
	if err != nil {
		return nil, err
	}

	d, err := dfa.Determinize(n)
	if err != nil {
		return nil, err
	}

	min := minimize.Minimize(d)

	return &Pipeline{
		Pattern: pattern,
		Postfix: postfix,
		AST:     root,
		NFA:     n,
		DFA:     d,
		MinDFA:  min,
	}, nil
}

// MustCompile is like Compile but panics on error, for callers (tests,
// CLI wiring) that already know the pattern is well-formed.
func MustCompile(pattern string) *Pipeline {
	p, err := Compile(pattern)
	if err != nil {
		panic("regexfsm: Compile(" + pattern + "): " + err.Error())
	}
	return p
}

// Match runs input through all three simulators and reports their
// individual verdicts. It returns a *VerdictMismatch error (alongside the
// full result, with Agree false) if they do not all agree.
func (p *Pipeline) Match(input string) (MatchResult, error) {
	result := MatchResult{
		Input:  input,
		NFA:    simulate.NFA(p.NFA, input),
		DFA:    simulate.DFA(p.DFA, input),
		MinDFA: simulate.DFA(p.MinDFA, input),
	}
	result.Agree = result.NFA == result.DFA && result.DFA == result.MinDFA

	if !result.Agree {
		return result, &VerdictMismatch{Pattern: p.Pattern, Result: result}
	}
	return result, nil
}
