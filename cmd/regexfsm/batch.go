package main

import (
	"bufio"
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/spf13/cobra"

	"github.com/automatalab/regexfsm"
)

var (
	patternsFile string
	inputsFile   string
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Match every pattern against every input and print a verdict table",
	RunE: func(cmd *cobra.Command, args []string) error {
		patterns, err := readLines(patternsFile)
		if err != nil {
			return fmt.Errorf("reading --patterns: %w", err)
		}
		inputs, err := readLines(inputsFile)
		if err != nil {
			return fmt.Errorf("reading --inputs: %w", err)
		}

		for _, row := range runBatch(patterns, inputs) {
			fmt.Println(row)
		}
		return nil
	},
}

func init() {
	batchCmd.Flags().StringVar(&patternsFile, "patterns", "", "file of patterns, one per line")
	batchCmd.Flags().StringVar(&inputsFile, "inputs", "", "file of input strings, one per line")
	_ = batchCmd.MarkFlagRequired("patterns")
	_ = batchCmd.MarkFlagRequired("inputs")
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, scanner.Err()
}

type batchJob struct {
	index   int
	pattern string
	input   string
}

// runBatch fans the pattern x input cross product out across a worker pool
// sized to GOMAXPROCS, per §5: each job calls regexfsm.Compile itself, so
// every worker owns its own fresh id counters and no state is shared.
func runBatch(patterns, inputs []string) []string {
	var jobs []batchJob
	for _, pattern := range patterns {
		for _, input := range inputs {
			jobs = append(jobs, batchJob{index: len(jobs), pattern: pattern, input: input})
		}
	}

	results := make([]string, len(jobs))
	queue := make(chan batchJob)

	var wg sync.WaitGroup
	workers := runtime.GOMAXPROCS(0)
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for job := range queue {
				results[job.index] = formatRow(job)
			}
		}()
	}

	for _, job := range jobs {
		queue <- job
	}
	close(queue)
	wg.Wait()

	return results
}

func formatRow(job batchJob) string {
	p, err := regexfsm.Compile(job.pattern)
	if err != nil {
		return fmt.Sprintf("%q\t%q\tERROR: %v", job.pattern, job.input, err)
	}
	result, matchErr := p.Match(job.input)
	if matchErr != nil {
		return fmt.Sprintf("%q\t%q\tmismatch (nfa=%v dfa=%v minDFA=%v)",
			job.pattern, job.input, result.NFA, result.DFA, result.MinDFA)
	}
	return fmt.Sprintf("%q\t%q\t%s", job.pattern, job.input, verdict(result.NFA))
}
