package nodes

import "github.com/suffixtreego/gst/gsterrors"

// A Store owns every node of a single tree construction, vends stable node
// ids, and tracks the shared leaf end that implicitly extends every leaf's
// edge as the builder advances. The zero value is not usable; construct one
// with [NewStore].
//
// A Store must not be shared between two concurrent constructions: its leaf
// end is scoped to exactly one Store value, so two independent Stores never
// alias each other's construction state.
type Store struct {
	text    []byte
	nodes   []node
	leafEnd int
}

// NewStore returns a Store pre-populated with a root node (id [Root]) ready
// to receive children, scoped to text.
func NewStore(text []byte) *Store {
	s := &Store{
		text:    text,
		leafEnd: -1,
	}
	s.nodes = append(s.nodes, node{
		start:      0,
		end:        0,
		suffixLink: unsetLink,
		saRank:     -1,
	})
	return s
}

// NewInternal allocates a new internal node whose entering edge spans
// [start, end) and returns its id.
func (s *Store) NewInternal(start, end int) int {
	s.nodes = append(s.nodes, node{
		start:      start,
		end:        end,
		suffixLink: unsetLink,
		saRank:     -1,
	})
	return len(s.nodes) - 1
}

// NewLeaf allocates a new leaf node whose entering edge starts at start and
// whose end tracks the store's leaf end until tidied, and returns its id.
func (s *Store) NewLeaf(start int) int {
	s.nodes = append(s.nodes, node{
		start:      start,
		end:        unresolvedEnd,
		isLeaf:     true,
		suffixLink: unsetLink,
		saRank:     -1,
	})
	return len(s.nodes) - 1
}

// AdvanceLeafEnd sets the store's shared leaf end to i, implicitly extending
// every untidied leaf's edge by one symbol. The builder calls this once per
// outer-loop phase.
func (s *Store) AdvanceLeafEnd(i int) {
	s.leafEnd = i
}

// Start returns the index in the text of the first symbol on id's entering
// edge.
func (s *Store) Start(id int) int {
	return s.nodes[id].start
}

// End returns the exclusive end index of id's entering edge, resolving an
// untidied leaf's end against the store's current leaf end.
func (s *Store) End(id int) int {
	n := &s.nodes[id]
	if n.isLeaf && n.end == unresolvedEnd {
		return s.leafEnd + 1
	}
	return n.end
}

// EdgeLen returns the length of id's entering edge. It is undefined for the
// root.
func (s *Store) EdgeLen(id int) int {
	return s.End(id) - s.Start(id)
}

// SetStart overwrites id's entering-edge start. The builder calls this when
// splitting an edge, to push the split-off node's start forward by the
// offset consumed by the newly inserted internal node. The tidy pass calls
// it a second time on each leaf, to replace the edge-local start left by any
// such split with the position of the suffix the leaf actually represents.
func (s *Store) SetStart(id, start int) {
	s.nodes[id].start = start
}

// IsLeaf reports whether id has never acquired children.
func (s *Store) IsLeaf(id int) bool {
	return s.nodes[id].isLeaf
}

// EdgeSymbolAt returns the symbol at offset positions into id's entering
// edge, i.e. text[id.start+offset].
func (s *Store) EdgeSymbolAt(id, offset int) byte {
	return s.text[s.nodes[id].start+offset]
}

// GetChild returns the child of parent reached via the edge whose first
// symbol is sym, if any.
func (s *Store) GetChild(parent int, sym byte) (int, bool) {
	child, ok := s.nodes[parent].children[sym]
	return child, ok
}

// Child is a (first-symbol, id) pair, returned by [*Store.SortedChildren].
type Child struct {
	Symbol byte
	ID     int
}

// SortedChildren returns parent's children ordered by ascending first
// symbol, the order the tidy pass traverses the tree in.
func (s *Store) SortedChildren(parent int) []Child {
	children := s.nodes[parent].children
	out := make([]Child, 0, len(children))
	for sym, id := range children {
		out = append(out, Child{Symbol: sym, ID: id})
	}
	// insertion sort: the alphabets this engine targets are small, and
	// children fan-out rarely exceeds a few dozen symbols per node.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1].Symbol > out[j].Symbol; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}

// SetChild attaches child under parent keyed by sym, replacing any existing
// entry under that symbol (the builder relies on this to repoint
// active_node's child to a freshly split node).
//
// Precondition: parent is not a leaf. I1 guarantees a leaf never receives
// children by construction; this guard catches an implementation bug that
// would otherwise silently violate it. Fails with an
// [*gsterrors.InvariantViolationError] otherwise.
func (s *Store) SetChild(parent int, sym byte, child int) error {
	p := &s.nodes[parent]
	if p.isLeaf {
		return &gsterrors.InvariantViolationError{NodeID: parent, Op: "set_child"}
	}
	if p.children == nil {
		p.children = make(map[byte]int, 2)
	}
	p.children[sym] = child
	return nil
}

// SetSuffixLink installs a suffix link from from to to.
//
// Precondition: from is internal and its suffix link is currently unset;
// to is internal. Violating this precondition fails with an
// [*gsterrors.InvariantViolationError].
func (s *Store) SetSuffixLink(from, to int) error {
	f := &s.nodes[from]
	if f.isLeaf || f.suffixLink != unsetLink {
		return &gsterrors.InvariantViolationError{NodeID: from, Op: "set_suffix_link"}
	}
	if s.nodes[to].isLeaf {
		return &gsterrors.InvariantViolationError{NodeID: to, Op: "set_suffix_link"}
	}
	f.suffixLink = to
	return nil
}

// SuffixLink returns from's suffix-link target, if set.
func (s *Store) SuffixLink(from int) (int, bool) {
	link := s.nodes[from].suffixLink
	return link, link != unsetLink
}

// NumNodes returns the number of nodes allocated so far, including the
// root.
func (s *Store) NumNodes() int {
	return len(s.nodes)
}

// FreezeLeafEnd overwrites leaf id's end with a literal value, detaching it
// from the store's shared leaf end. Called exactly once per leaf, by the
// tidy pass.
func (s *Store) FreezeLeafEnd(id, end int) {
	n := &s.nodes[id]
	n.end = end
}

// SetSARank assigns leaf id's rank in suffix-array order.
func (s *Store) SetSARank(id, rank int) {
	s.nodes[id].saRank = rank
}

// SARank returns leaf id's rank, or -1 if unassigned.
func (s *Store) SARank(id int) int {
	return s.nodes[id].saRank
}

// Text returns the store's underlying text. The returned slice must not be
// mutated.
func (s *Store) Text() []byte {
	return s.text
}
