package main

import (
	"flag"
	"fmt"
	"io"
	"strconv"
)

const (
	defaultAlphabet    = "abcdefghijklmnopqrstuvwxyz"
	defaultTerminators = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// wordList collects repeated -w flags into a slice of words.
type wordList [][]byte

func (w *wordList) String() string {
	return ""
}

func (w *wordList) Set(s string) error {
	*w = append(*w, []byte(s))
	return nil
}

type config struct {
	alphabet    string
	terminators string
	preset      string
	stdin       bool
	file        string
	words       wordList
	output      string
	walkthrough bool
	display     bool
	help        bool
}

func parseFlags(args []string, stderr io.Writer) (*config, error) {
	fs := flag.NewFlagSet("gst", flag.ContinueOnError)
	fs.SetOutput(stderr)

	cfg := &config{}
	fs.StringVar(&cfg.alphabet, "a", defaultAlphabet, "alphabet symbols words may be drawn from")
	fs.StringVar(&cfg.terminators, "t", defaultTerminators, "terminator symbols to draw from, or a count of how many of the default set to use")
	fs.StringVar(&cfg.preset, "p", "", "input preset: abac or abab")
	fs.BoolVar(&cfg.stdin, "i", false, "read one word per line from stdin")
	fs.StringVar(&cfg.file, "f", "", "read one word per line from the named file")
	fs.Var(&cfg.words, "w", "a word to build the tree from (repeatable)")
	fs.StringVar(&cfg.output, "o", "tree", "what to print: tree, sa, sfx, or lcp")
	fs.BoolVar(&cfg.walkthrough, "walkthrough", false, "print a phase-by-phase trace of the construction instead of a single output")
	fs.BoolVar(&cfg.display, "d", false, "colorize output with ANSI escapes")
	fs.BoolVar(&cfg.help, "h", false, "print usage and exit")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	var outputWasSet bool
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "o" {
			outputWasSet = true
		}
	})
	if cfg.walkthrough && outputWasSet {
		return nil, fmt.Errorf("-o and --walkthrough are mutually exclusive")
	}
	switch cfg.output {
	case "tree", "sa", "sfx", "lcp":
	default:
		return nil, fmt.Errorf("unknown -o value %q: want tree, sa, sfx, or lcp", cfg.output)
	}
	return cfg, nil
}

// resolveTerminators turns the -t flag's value into the literal terminator
// bytes to use: either the string itself, or, if it parses as a positive
// integer, that many symbols taken from the front of the default set.
func resolveTerminators(s string) ([]byte, error) {
	if n, err := strconv.Atoi(s); err == nil {
		if n <= 0 || n > len(defaultTerminators) {
			return nil, fmt.Errorf("terminator count %d out of range [1,%d]", n, len(defaultTerminators))
		}
		return []byte(defaultTerminators[:n]), nil
	}
	return []byte(s), nil
}
