// Command regexfsm is a CLI front end for the regexfsm pipeline: compiling
// patterns, matching strings against them, and batch-testing a pattern set
// against an input set (§4.11).
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/automatalab/regexfsm/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "regexfsm",
	Short: "Compile and simulate regular expressions via NFA/DFA/minimized DFA",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		loaded, err := config.Load(config.FileName)
		if err != nil {
			loaded = config.Default()
		}
		cfg = loaded
		color.NoColor = !cfg.ColorOutput
	},
}

func main() {
	rootCmd.AddCommand(compileCmd, matchCmd, batchCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
