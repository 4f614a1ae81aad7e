package gst

import (
	"errors"

	"github.com/suffixtreego/gst/gsterrors"
	"github.com/suffixtreego/gst/internal/nodes"
	"github.com/suffixtreego/gst/internal/symbols"
	"github.com/suffixtreego/gst/internal/tidy"
	"github.com/suffixtreego/gst/internal/ukkonen"
)

// Build constructs a generalized suffix tree over words, appending
// terminators[i] as words[i]'s sentinel. Only the first len(words)
// terminators are used; any beyond that are ignored.
//
// len(words) must not exceed len(terminators); terminators must contain no
// duplicates; and no symbol of any word may coincide with a terminator.
// Build has no notion of alphabet beyond that — validating that words are
// drawn from some narrower alphabet is the caller's responsibility (the
// command-line front end in [cmd/gst] performs such a check before ever
// calling Build).
//
// Build fails with an error from [package gsterrors] if any precondition is
// violated; no nodes are allocated in that case.
func Build(words [][]byte, terminators []byte) (*Tree, error) {
	var errs []error

	if len(words) == 0 {
		errs = append(errs, &gsterrors.EmptyInputError{})
	}
	if len(words) > len(terminators) {
		errs = append(errs, &gsterrors.TooFewTerminatorsError{
			NumWords:       len(words),
			NumTerminators: len(terminators),
		})
	}
	if err := checkDuplicateTerminators(terminators); err != nil {
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		if err := checkWordsAgainstTerminators(words, terminators[:len(words)]); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) != 0 {
		return nil, errors.Join(errs...)
	}

	used := terminators[:len(words)]
	text, bounds := concatenate(words, used)

	store := nodes.NewStore(text)
	if err := ukkonen.Build(store); err != nil {
		return nil, err
	}
	res := tidy.Run(store, used)

	return &Tree{
		store:       store,
		text:        text,
		sa:          res.SA,
		lcp:         res.LCP,
		terminators: used,
		bounds:      bounds,
	}, nil
}

func checkDuplicateTerminators(terminators []byte) error {
	seen := make(map[byte]bool, len(terminators))
	var errs []error
	for _, t := range terminators {
		if seen[t] {
			errs = append(errs, &gsterrors.DuplicateTerminatorError{Value: t})
			continue
		}
		seen[t] = true
	}
	if len(errs) != 0 {
		return errors.Join(errs...)
	}
	return nil
}

func checkWordsAgainstTerminators(words [][]byte, used []byte) error {
	termSet := symbols.Make(used)
	var errs []error
	for i, word := range words {
		for _, b := range word {
			if termSet.Contains(b) {
				errs = append(errs, &gsterrors.OutOfAlphabetSymbolError{Word: i, Value: b})
			}
		}
	}
	if len(errs) != 0 {
		return errors.Join(errs...)
	}
	return nil
}

// wordBounds records where one input word lives within the concatenated
// text, excluding its terminator.
type wordBounds struct {
	start, end int
}

func concatenate(words [][]byte, terminators []byte) ([]byte, []wordBounds) {
	n := 0
	for _, w := range words {
		n += len(w) + 1
	}
	text := make([]byte, 0, n)
	bounds := make([]wordBounds, len(words))
	for i, w := range words {
		start := len(text)
		text = append(text, w...)
		bounds[i] = wordBounds{start: start, end: len(text)}
		text = append(text, terminators[i])
	}
	return text, bounds
}
