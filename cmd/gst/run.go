package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/suffixtreego/gst"
	"github.com/suffixtreego/gst/gsterrors"
	"github.com/suffixtreego/gst/internal/symbols"
)

const usage = `usage: gst [-a ALPHABET] [-t TERMINATORS|COUNT] INPUT [-o OUTPUT | -walkthrough] [-d]

input (choose exactly one):
  -p {abac,abab}   built-in preset
  -i               read one word per line from stdin
  -f PATH          read one word per line from the named file
  -w WORD          a word (repeatable)

output:
  -o {tree,sa,sfx,lcp}  what to print (default tree)
  -walkthrough          print a phase-by-phase trace instead

  -d  colorize output with ANSI escapes
  -h  print this message
`

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	if cfg.help {
		fmt.Fprint(stdout, usage)
		return 0
	}

	words, terminators, err := resolveInput(cfg, stdin)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	alphabet := []byte(cfg.alphabet)
	if err := symbols.ValidateAlphabetAndTerminators(alphabet, terminators); err != nil {
		printErrors(stderr, err)
		return 1
	}
	if err := symbols.ValidateWords(words, alphabet); err != nil {
		printErrors(stderr, err)
		return 1
	}

	if cfg.walkthrough {
		if err := walkthrough(stdout, words, terminators); err != nil {
			var invariant *gsterrors.InvariantViolationError
			if errors.As(err, &invariant) {
				fmt.Fprintln(stderr, err)
				return 2
			}
			printErrors(stderr, err)
			return 1
		}
		return 0
	}

	tree, err := gst.Build(words, terminators)
	if err != nil {
		var invariant *gsterrors.InvariantViolationError
		if errors.As(err, &invariant) {
			fmt.Fprintln(stderr, err)
			return 2
		}
		printErrors(stderr, err)
		return 1
	}

	if err := printOutput(stdout, tree, cfg.output, cfg.display); err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	return 0
}

func printErrors(stderr io.Writer, err error) {
	for e := range gsterrors.All(err) {
		fmt.Fprintln(stderr, e)
	}
}

// resolveInput selects and reads exactly one of the four input sources and
// resolves the terminator set to use alongside it.
func resolveInput(cfg *config, stdin io.Reader) (words [][]byte, terminators []byte, err error) {
	sources := 0
	if cfg.preset != "" {
		sources++
	}
	if cfg.stdin {
		sources++
	}
	if cfg.file != "" {
		sources++
	}
	if len(cfg.words) != 0 {
		sources++
	}
	if sources != 1 {
		return nil, nil, fmt.Errorf("exactly one of -p, -i, -f, -w must be given")
	}

	if cfg.preset != "" {
		p, err := lookupPreset(cfg.preset)
		if err != nil {
			return nil, nil, err
		}
		return p.words, p.terminators, nil
	}

	terminators, err = resolveTerminators(cfg.terminators)
	if err != nil {
		return nil, nil, err
	}

	switch {
	case cfg.stdin:
		words, err = readWords(stdin)
	case cfg.file != "":
		f, ferr := os.Open(cfg.file)
		if ferr != nil {
			return nil, nil, ferr
		}
		defer f.Close()
		words, err = readWords(f)
	default:
		words = cfg.words
	}
	if err != nil {
		return nil, nil, err
	}
	return words, terminators, nil
}

func readWords(r io.Reader) ([][]byte, error) {
	var words [][]byte
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		word := make([]byte, len(line))
		copy(word, line)
		words = append(words, word)
	}
	return words, scanner.Err()
}
