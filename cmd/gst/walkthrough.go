package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/suffixtreego/gst/gsterrors"
	"github.com/suffixtreego/gst/internal/nodes"
	"github.com/suffixtreego/gst/internal/tidy"
	"github.com/suffixtreego/gst/internal/ukkonen"
)

// walkthrough renders a didactic phase-by-phase trace of construction: the
// implicit tree's shape after every symbol is consumed, followed by the
// final tidy pass's suffix and LCP arrays. It works one level below
// [github.com/suffixtreego/gst.Build], driving [ukkonen.BuildTraced]
// directly, because the public Tree type has no notion of "construction in
// progress".
func walkthrough(w io.Writer, words [][]byte, terminators []byte) error {
	if len(words) == 0 {
		return &gsterrors.EmptyInputError{}
	}
	if len(words) > len(terminators) {
		return &gsterrors.TooFewTerminatorsError{NumWords: len(words), NumTerminators: len(terminators)}
	}
	used := terminators[:len(words)]
	if err := checkDistinctTerminators(used); err != nil {
		return err
	}

	text := concatenateForTrace(words, used)
	store := nodes.NewStore(text)

	phase := 0
	err := ukkonen.BuildTraced(store, func(i int) {
		fmt.Fprintf(w, "=== phase %d: consumed %q ===\n", phase, text[:i+1])
		printRawTree(w, store)
		fmt.Fprintln(w)
		phase++
	})
	var invariant *gsterrors.InvariantViolationError
	if errors.As(err, &invariant) {
		return err
	}

	fmt.Fprintln(w, "=== tidy ===")
	res := tidy.Run(store, used)
	printRawTree(w, store)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "suffix array:")
	for i, pos := range res.SA {
		fmt.Fprintf(w, "  %d\t%d\n", i, pos)
	}
	fmt.Fprintln(w, "LCP array:")
	for i, l := range res.LCP {
		fmt.Fprintf(w, "  %d\t%d\n", i, l)
	}
	return nil
}

func checkDistinctTerminators(terminators []byte) error {
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

func concatenateForTrace(words [][]byte, terminators []byte) []byte {
	n := 0
	for _, word := range words {
		n += len(word) + 1
	}
	text := make([]byte, 0, n)
	for i, word := range words {
		text = append(text, word...)
		text = append(text, terminators[i])
	}
	return text
}

// printRawTree renders a store mid-construction, where untidied leaves still
// track the shared leaf end and carry no suffix-array rank.
func printRawTree(w io.Writer, store *nodes.Store) {
	var walk func(id, depth int)
	walk = func(id, depth int) {
		indent := make([]byte, depth*2)
		for i := range indent {
			indent[i] = ' '
		}
		if depth > 0 {
			label := store.Text()[store.Start(id):store.End(id)]
			if store.IsLeaf(id) {
				fmt.Fprintf(w, "%s%q (leaf)\n", indent, label)
			} else {
				fmt.Fprintf(w, "%s%q\n", indent, label)
			}
		} else {
			fmt.Fprintln(w, "(root)")
		}
		for _, c := range store.SortedChildren(id) {
			walk(c.ID, depth+1)
		}
	}
	walk(nodes.Root, 0)
}
