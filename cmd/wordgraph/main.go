// Command wordgraph builds a word-adjacency graph from a text corpus and
// answers bridge-word, shortest-path, PageRank and random-walk queries on it.
//
// Usage:
//
//	wordgraph -f corpus.txt show
//	wordgraph -f corpus.txt bridge explore new
//	wordgraph -f corpus.txt generate "Seek to explore new and exciting synergies"
//	wordgraph -f corpus.txt path the report
//	wordgraph -f corpus.txt reach new --depth 2
//	wordgraph -f corpus.txt pagerank --top 10
//	wordgraph -f corpus.txt --seed 42 walk
//	wordgraph -f corpus.txt export --render
//
// Every flag has a WORDGRAPH_* environment counterpart; see `wordgraph config`.
package main

import (
	"fmt"
	"io"
	"os"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one command line and always releases the tracer provider,
// including when the command fails.
func run(args []string, stdout, stderr io.Writer) int {
	a := newApp()
	defer a.close()

	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		a.logger.Error("command failed", "error", err)
		fmt.Fprintln(stderr, errorStyle.Render("Error:"), err)
		return exitError
	}

	return exitOK
}
