package gst

import (
	"github.com/suffixtreego/gst/internal/arrays"
	"github.com/suffixtreego/gst/internal/nodes"
)

// A Tree is a completed, tidied generalized suffix tree over a concatenated
// text. Values are produced exclusively by [Build] and are immutable: every
// method is safe for concurrent use by multiple goroutines.
type Tree struct {
	store       *nodes.Store
	text        []byte
	sa          []int
	lcp         []int
	terminators []byte
	bounds      []wordBounds
}

// SuffixArray returns the positions into the concatenated text, in sorted
// suffix order. The returned slice aliases the tree's internal state and
// must not be modified.
func (t *Tree) SuffixArray() []int {
	return t.sa
}

// LCPArray returns, for each rank in suffix-array order, the length of the
// longest common prefix with the suffix at the previous rank. LCPArray()[0]
// is always 0. The returned slice aliases the tree's internal state and
// must not be modified.
func (t *Tree) LCPArray() []int {
	return t.lcp
}

// StringSuffixes returns the suffixes of the concatenated text in
// suffix-array order, each truncated just past its first terminator.
func (t *Tree) StringSuffixes() [][]byte {
	return arrays.StringSuffixes(t.text, t.sa, t.terminators)
}

// Root returns a handle to the tree's root node.
func (t *Tree) Root() NodeHandle {
	return NodeHandle{tree: t, id: nodes.Root}
}

// Word returns the i-th word supplied to [Build], excluding its terminator.
func (t *Tree) Word(i int) []byte {
	b := t.bounds[i]
	return t.text[b.start:b.end]
}

// Words returns every word supplied to [Build], excluding terminators, in
// the order they were supplied.
func (t *Tree) Words() [][]byte {
	out := make([][]byte, len(t.bounds))
	for i := range t.bounds {
		out[i] = t.Word(i)
	}
	return out
}

// Length returns the length of the concatenated text, terminators included.
func (t *Tree) Length() int {
	return len(t.text)
}

// A NodeHandle is a read-only view of one node of a [Tree]. The zero value
// is not meaningful; handles are obtained via [Tree.Root] or
// [NodeHandle.Children].
type NodeHandle struct {
	tree *Tree
	id   int
}

// IsLeaf reports whether the node is a leaf.
func (n NodeHandle) IsLeaf() bool {
	return n.tree.store.IsLeaf(n.id)
}

// Label returns the symbols on the edge entering the node. It is empty for
// the root, which has no entering edge.
func (n NodeHandle) Label() []byte {
	return n.tree.text[n.tree.store.Start(n.id):n.tree.store.End(n.id)]
}

// SARank returns the node's rank in suffix-array order. It is meaningful
// only when [NodeHandle.IsLeaf] is true; it is -1 on internal nodes.
func (n NodeHandle) SARank() int {
	return n.tree.store.SARank(n.id)
}

// Children returns the node's children, ordered by ascending first symbol
// of their entering edge — the same order [Tree.SuffixArray] is built in.
func (n NodeHandle) Children() []NodeHandle {
	kids := n.tree.store.SortedChildren(n.id)
	out := make([]NodeHandle, len(kids))
	for i, c := range kids {
		out[i] = NodeHandle{tree: n.tree, id: c.ID}
	}
	return out
}
