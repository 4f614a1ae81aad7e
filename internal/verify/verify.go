// Package verify checks the structural invariants a completed generalized
// suffix tree must satisfy, working entirely through the public API of
// [github.com/suffixtreego/gst.Tree]. It backs the stress test and is
// reusable by any caller that wants to sanity-check a tree built from
// untrusted or randomly generated input.
package verify

import (
	"errors"
	"fmt"

	"github.com/suffixtreego/gst"
)

// Tree checks every universal invariant: the suffix array is a permutation
// of the text's positions, every root-to-leaf path spells out exactly the
// suffix its rank designates, every non-root internal node branches at
// least twice, the LCP array matches direct prefix comparison of suffixes
// in SA order, and the node count stays within the 2*|T| bound.
func Tree(tree *gst.Tree) error {
	var errs []error
	for _, check := range []func(*gst.Tree) error{
		checkSAIsPermutation,
		checkLeafPathsAreSuffixes,
		checkInternalBranching,
		checkLCP,
		checkNodeBound,
	} {
		if err := check(tree); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) != 0 {
		return errors.Join(errs...)
	}
	return nil
}

func checkSAIsPermutation(tree *gst.Tree) error {
	sa := tree.SuffixArray()
	if len(sa) != tree.Length() {
		return fmt.Errorf("verify: len(SuffixArray()) = %d; want %d", len(sa), tree.Length())
	}
	seen := make([]bool, tree.Length())
	for _, pos := range sa {
		if pos < 0 || pos >= len(seen) {
			return fmt.Errorf("verify: suffix array position %d out of range [0,%d)", pos, len(seen))
		}
		if seen[pos] {
			return fmt.Errorf("verify: suffix array position %d appears more than once", pos)
		}
		seen[pos] = true
	}
	return nil
}

func checkLeafPathsAreSuffixes(tree *gst.Tree) error {
	suffixes := tree.StringSuffixes()
	var errs []error
	var walk func(n gst.NodeHandle, label []byte)
	walk = func(n gst.NodeHandle, label []byte) {
		label = append(append([]byte{}, label...), n.Label()...)
		if n.IsLeaf() {
			r := n.SARank()
			if r < 0 || r >= len(suffixes) {
				errs = append(errs, fmt.Errorf("verify: leaf has out-of-range SARank %d", r))
				return
			}
			if string(label) != string(suffixes[r]) {
				errs = append(errs, fmt.Errorf("verify: leaf at rank %d has path label %q; want %q", r, label, suffixes[r]))
			}
			return
		}
		for _, c := range n.Children() {
			walk(c, label)
		}
	}
	walk(tree.Root(), nil)
	if len(errs) != 0 {
		return errors.Join(errs...)
	}
	return nil
}

func checkInternalBranching(tree *gst.Tree) error {
	var errs []error
	var walk func(n gst.NodeHandle, isRoot bool)
	walk = func(n gst.NodeHandle, isRoot bool) {
		if n.IsLeaf() {
			return
		}
		children := n.Children()
		if !isRoot && len(children) < 2 {
			errs = append(errs, fmt.Errorf("verify: internal node has %d child(ren); want >= 2", len(children)))
		}
		for _, c := range children {
			walk(c, false)
		}
	}
	walk(tree.Root(), true)
	if len(errs) != 0 {
		return errors.Join(errs...)
	}
	return nil
}

func checkLCP(tree *gst.Tree) error {
	lcp := tree.LCPArray()
	suffixes := tree.StringSuffixes()
	if len(lcp) != len(suffixes) {
		return fmt.Errorf("verify: len(LCPArray()) = %d; want %d", len(lcp), len(suffixes))
	}
	if len(lcp) > 0 && lcp[0] != 0 {
		return fmt.Errorf("verify: LCPArray()[0] = %d; want 0", lcp[0])
	}
	var errs []error
	for r := 1; r < len(lcp); r++ {
		want := commonPrefixLen(suffixes[r-1], suffixes[r])
		if lcp[r] != want {
			errs = append(errs, fmt.Errorf("verify: LCPArray()[%d] = %d; want %d", r, lcp[r], want))
		}
	}
	if len(errs) != 0 {
		return errors.Join(errs...)
	}
	return nil
}

func commonPrefixLen(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}

func checkNodeBound(tree *gst.Tree) error {
	count := 0
	var walk func(n gst.NodeHandle)
	walk = func(n gst.NodeHandle) {
		count++
		for _, c := range n.Children() {
			walk(c)
		}
	}
	walk(tree.Root())
	if max := 2 * tree.Length(); count > max {
		return fmt.Errorf("verify: node count %d exceeds bound %d", count, max)
	}
	return nil
}
