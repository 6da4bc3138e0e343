package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/automatalab/regexfsm"
	"github.com/automatalab/regexfsm/internal/config"
)

var matchCmd = &cobra.Command{
	Use:   "match <regex> <string>",
	Short: "Compile a pattern and report the NFA/DFA/minimized-DFA verdicts for a string",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := regexfsm.Compile(args[0])
		if err != nil {
			return err
		}

		result, matchErr := p.Match(args[1])
		printVerdicts(result)

		if matchErr != nil {
			fmt.Fprintln(os.Stderr, matchErr)
			if shouldFailOnMismatch(cfg) {
				os.Exit(1)
			}
		}
		return nil
	},
}

// shouldFailOnMismatch reports whether a verdict disagreement should be a
// hard failure. Unless strict_equivalence is set in the config file, a
// mismatch is surfaced as a warning only, per SPEC_FULL.md §4.12.
func shouldFailOnMismatch(cfg *config.Config) bool {
	return cfg != nil && cfg.StrictEquivalence
}

func printVerdicts(r regexfsm.MatchResult) {
	fmt.Printf("nfa:    %s\n", verdict(r.NFA))
	fmt.Printf("dfa:    %s\n", verdict(r.DFA))
	fmt.Printf("minDFA: %s\n", verdict(r.MinDFA))
}

func verdict(accept bool) string {
	if accept {
		return color.GreenString("accept")
	}
	return color.RedString("reject")
}
