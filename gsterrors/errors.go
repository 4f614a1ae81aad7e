/*
Package gsterrors provides functionalities for programmatically handling
errors produced by package [github.com/suffixtreego/gst].

Most users of package [github.com/suffixtreego/gst] have no use for this
package. However, callers that build words and terminators from some
untrusted source (e.g. a Web form or a config file) may find this package
useful: it allows them to inform their users about construction mistakes via
custom, human-friendly error messages.
*/
package gsterrors

import (
	"fmt"
	"iter"
)

// An EmptyInputError indicates that no words were supplied to
// [github.com/suffixtreego/gst.Build].
type EmptyInputError struct{}

func (*EmptyInputError) Error() string {
	return "gst: at least one word must be supplied"
}

// A TooFewTerminatorsError indicates that fewer terminators were supplied
// than words, so some word could not be assigned a sentinel of its own.
type TooFewTerminatorsError struct {
	NumWords       int
	NumTerminators int
}

func (err *TooFewTerminatorsError) Error() string {
	const tmpl = "gst: %d word(s) supplied but only %d terminator(s) available"
	return fmt.Sprintf(tmpl, err.NumWords, err.NumTerminators)
}

// A DuplicateTerminatorError indicates that some terminator symbol was
// supplied more than once.
type DuplicateTerminatorError struct {
	Value byte // the terminator symbol that was repeated
}

func (err *DuplicateTerminatorError) Error() string {
	const tmpl = "gst: duplicate terminator %q"
	return fmt.Sprintf(tmpl, err.Value)
}

// An AlphabetTerminatorOverlapError indicates that some symbol was supplied
// as both a member of a configured alphabet and a terminator; the two must
// be disjoint. This error is produced by the command-line front end's flag
// validation (which, unlike [github.com/suffixtreego/gst.Build], works with
// an explicit alphabet), not by Build itself.
type AlphabetTerminatorOverlapError struct {
	Value byte // the symbol present in both sets
}

func (err *AlphabetTerminatorOverlapError) Error() string {
	const tmpl = "gst: symbol %q belongs to both the alphabet and the terminator set"
	return fmt.Sprintf(tmpl, err.Value)
}

// An OutOfAlphabetSymbolError indicates that some word contains a symbol
// that coincides with one of the supplied terminators. Because
// [github.com/suffixtreego/gst.Build] has no notion of alphabet beyond "not
// a terminator", this is the only kind of symbol rejection it can perform
// itself; the command-line front end performs a stricter, explicit-alphabet
// check before ever calling Build.
type OutOfAlphabetSymbolError struct {
	Word  int  // index of the offending word
	Value byte // the offending symbol
}

func (err *OutOfAlphabetSymbolError) Error() string {
	const tmpl = "gst: word %d contains out-of-alphabet symbol %q"
	return fmt.Sprintf(tmpl, err.Word, err.Value)
}

// An InvariantViolationError indicates that a structural guard in the node
// store rejected an operation. Unlike the errors above, this indicates an
// implementation bug in the builder, not a mistake by the caller of
// [github.com/suffixtreego/gst.Build]; the construction that produced it is
// abandoned.
//
// Op identifies the rejected operation: "set_suffix_link" or "set_child".
type InvariantViolationError struct {
	NodeID int
	Op     string
}

func (err *InvariantViolationError) Error() string {
	const tmpl = "gst: invariant violation on node %d during %s"
	return fmt.Sprintf(tmpl, err.NodeID, err.Op)
}

// All returns an iterator over the construction errors contained in err's
// error tree. The order is unspecified. All only supports error values
// returned by [github.com/suffixtreego/gst.Build]; it should not be called
// on any other error value.
func All(err error) iter.Seq[error] {
	return func(yield func(error) bool) {
		every(err, yield)
	}
}

func every(err error, f func(error) bool) bool {
	switch err := err.(type) {
	case interface{ Unwrap() []error }:
		for _, err := range err.Unwrap() {
			if !every(err, f) {
				return false
			}
		}
		return true
	default:
		return f(err)
	}
}
