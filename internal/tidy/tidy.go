// Package tidy converts a freshly built implicit generalized suffix tree
// into an explicit one: it freezes every leaf's end at its word's
// terminator, numbers leaves in suffix-array order, and derives the suffix
// array and LCP array in the same traversal.
package tidy

import (
	"github.com/suffixtreego/gst/internal/nodes"
	"github.com/suffixtreego/gst/internal/symbols"
)

// Result is the product of one tidy traversal.
type Result struct {
	// SA holds, for each rank in suffix-array order, the position in T of
	// the suffix's first symbol.
	SA []int
	// LCP holds, for each rank, the length of the longest common prefix
	// with the previous rank's suffix. LCP[0] is always 0.
	LCP []int
	// Leaves holds the node id of the leaf at each rank, in the same
	// order as SA and LCP.
	Leaves []int
}

// Run performs the post-construction depth-first traversal: children are
// visited in ascending first-symbol order, so leaves are visited in
// suffix-array order. At each leaf it scans forward from the leaf's
// (possibly split-shifted) start to the first terminator and freezes the
// leaf's end just past it, then overwrites the leaf's start with the
// position of the suffix it represents — the split that most recently
// touched this leaf's incoming edge may have pushed its start forward, but
// the path from root to leaf still spells out a suffix beginning earlier.
// The LCP entry for each rank after the first is the depth of the lowest
// common ancestor with the previous rank's leaf, recorded the moment the
// traversal steps from one child of that ancestor to the next.
func Run(store *nodes.Store, terminators []byte) Result {
	term := symbols.Make(terminators)
	text := store.Text()

	var res Result
	var pendingLCP int

	var walk func(id, depth int)
	walk = func(id, depth int) {
		if store.IsLeaf(id) {
			p := store.Start(id)
			for !term.Contains(text[p]) {
				p++
			}
			store.FreezeLeafEnd(id, p+1)

			suffixStart := len(text) - depth
			store.SetStart(id, suffixStart)
			store.SetSARank(id, len(res.SA))

			if len(res.SA) == 0 {
				res.LCP = append(res.LCP, 0)
			} else {
				res.LCP = append(res.LCP, pendingLCP)
			}
			res.SA = append(res.SA, suffixStart)
			res.Leaves = append(res.Leaves, id)
			return
		}
		for i, c := range store.SortedChildren(id) {
			if i > 0 {
				pendingLCP = depth
			}
			walk(c.ID, depth+store.EdgeLen(c.ID))
		}
	}
	walk(nodes.Root, 0)
	return res
}
