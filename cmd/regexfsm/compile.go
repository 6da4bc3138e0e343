package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/automatalab/regexfsm"
	"github.com/automatalab/regexfsm/ast"
	"github.com/automatalab/regexfsm/visualize"
)

var dotTarget string

var compileCmd = &cobra.Command{
	Use:   "compile <regex>",
	Short: "Compile a pattern and print its postfix form, AST, and automaton summaries",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := regexfsm.Compile(args[0])
		if err != nil {
			return err
		}

		if dotTarget != "" {
			dot, err := renderDOT(p, dotTarget)
			if err != nil {
				return err
			}
			fmt.Println(dot)
			return nil
		}

		printSummary(p)
		return nil
	},
}

func init() {
	compileCmd.Flags().StringVar(&dotTarget, "dot", "", "emit Graphviz DOT for one of: nfa, dfa, mindfa")
}

func renderDOT(p *regexfsm.Pipeline, target string) (string, error) {
	switch target {
	case "nfa":
		return visualize.Graph(p.NFA).DOT(), nil
	case "dfa":
		return visualize.Graph(p.DFA).DOT(), nil
	case "mindfa":
		return visualize.Graph(p.MinDFA).DOT(), nil
	default:
		return "", fmt.Errorf("regexfsm: unknown --dot target %q (want nfa, dfa, or mindfa)", target)
	}
}

func printSummary(p *regexfsm.Pipeline) {
	fmt.Printf("pattern: %s\n", p.Pattern)

	fmt.Print("postfix: ")
	for i, tok := range p.Postfix {
		if i > 0 {
			fmt.Print(" ")
		}
		fmt.Print(tok.String())
	}
	fmt.Println()

	fmt.Println("ast:")
	fmt.Println(ast.Dump(p.AST))

	fmt.Printf("nfa:    %d states, alphabet=%d symbols\n", p.NFA.NumStates(), len(p.NFA.Alphabet()))
	fmt.Printf("dfa:    %d states, alphabet=%d symbols\n", p.DFA.NumStates(), len(p.DFA.Alphabet()))
	fmt.Printf("minDFA: %d states, alphabet=%d symbols\n", p.MinDFA.NumStates(), len(p.MinDFA.Alphabet()))
}
