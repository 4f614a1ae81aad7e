package symbols

import (
	"errors"

	"github.com/suffixtreego/gst/gsterrors"
)

// ValidateAlphabetAndTerminators checks that alphabet and terminators are
// themselves well-formed and mutually disjoint. It is the explicit-alphabet
// check that the command-line front end performs before ever handing words
// to [github.com/suffixtreego/gst.Build], which has no notion of alphabet
// beyond "not a terminator".
func ValidateAlphabetAndTerminators(alphabet, terminators []byte) error {
	var errs []error
	alphabetSet := Make(alphabet)
	seen := make(map[byte]bool, len(terminators))
	for _, t := range terminators {
		if seen[t] {
			errs = append(errs, &gsterrors.DuplicateTerminatorError{Value: t})
			continue
		}
		seen[t] = true
		if alphabetSet.Contains(t) {
			errs = append(errs, &gsterrors.AlphabetTerminatorOverlapError{Value: t})
		}
	}
	if len(errs) != 0 {
		return errors.Join(errs...)
	}
	return nil
}

// ValidateWords checks that every symbol of every word belongs to alphabet.
func ValidateWords(words [][]byte, alphabet []byte) error {
	alphabetSet := Make(alphabet)
	var errs []error
	for i, word := range words {
		for _, b := range word {
			if !alphabetSet.Contains(b) {
				errs = append(errs, &gsterrors.OutOfAlphabetSymbolError{Word: i, Value: b})
			}
		}
	}
	if len(errs) != 0 {
		return errors.Join(errs...)
	}
	return nil
}
