// Package ukkonen builds a generalized suffix tree over a concatenated text
// in one left-to-right pass, following Ukkonen's on-line algorithm.
package ukkonen

import "github.com/suffixtreego/gst/internal/nodes"

// Build streams store's text through the Ukkonen phases, leaving store
// holding a complete implicit generalized suffix tree. store must have been
// freshly created by [nodes.NewStore] over the text to build and must not be
// reused for a second call.
//
// Build returns the first error reported by the node store's guarded
// mutations (always an *gsterrors.InvariantViolationError), abandoning
// construction immediately. Correct callers never observe one; its presence
// indicates a bug in this package.
func Build(store *nodes.Store) error {
	return BuildTraced(store, nil)
}

// BuildTraced behaves exactly like [Build], except that after each phase it
// invokes onPhase (if non-nil) with the index just processed, so a caller
// can render the tree's evolution one symbol at a time. cmd/gst's
// walkthrough mode is the intended, and so far only, user of onPhase.
func BuildTraced(store *nodes.Store, onPhase func(i int)) error {
	b := &builder{store: store, text: store.Text(), activeNode: nodes.Root}
	for i := range b.text {
		if err := b.phase(i); err != nil {
			return err
		}
		if onPhase != nil {
			onPhase(i)
		}
	}
	return nil
}

type builder struct {
	store *nodes.Store
	text  []byte

	activeNode   int
	activeEdge   byte
	activeLength int
	remaining    int
}

// phase runs one outer-loop step of Ukkonen's algorithm: it extends every
// leaf implicitly via the shared leaf end, then inserts every suffix still
// pending from earlier phases, ending at text[i].
func (b *builder) phase(i int) error {
	b.store.AdvanceLeafEnd(i)
	b.remaining++
	lastNewInternal := -1

	for b.remaining > 0 {
		if b.activeLength == 0 {
			b.activeEdge = b.text[i]
		}

		child, ok := b.store.GetChild(b.activeNode, b.activeEdge)
		if !ok {
			leaf := b.store.NewLeaf(i)
			if err := b.store.SetChild(b.activeNode, b.activeEdge, leaf); err != nil {
				return err
			}
			if lastNewInternal != -1 {
				if err := b.store.SetSuffixLink(lastNewInternal, b.activeNode); err != nil {
					return err
				}
				lastNewInternal = -1
			}
			b.advance(i)
			continue
		}

		edgeLen := b.store.EdgeLen(child)
		if b.activeLength >= edgeLen {
			b.activeNode = child
			b.activeLength -= edgeLen
			b.activeEdge = b.text[i-b.activeLength]
			continue
		}

		c := b.store.EdgeSymbolAt(child, b.activeLength)
		if c == b.text[i] {
			b.activeLength++
			if lastNewInternal != -1 {
				if err := b.store.SetSuffixLink(lastNewInternal, b.activeNode); err != nil {
					return err
				}
			}
			break
		}

		splitStart := b.store.Start(child)
		split := b.store.NewInternal(splitStart, splitStart+b.activeLength)
		b.store.SetStart(child, splitStart+b.activeLength)
		if err := b.store.SetChild(b.activeNode, b.activeEdge, split); err != nil {
			return err
		}
		if err := b.store.SetChild(split, c, child); err != nil {
			return err
		}
		leaf := b.store.NewLeaf(i)
		if err := b.store.SetChild(split, b.text[i], leaf); err != nil {
			return err
		}
		if lastNewInternal != -1 {
			if err := b.store.SetSuffixLink(lastNewInternal, split); err != nil {
				return err
			}
		}
		lastNewInternal = split
		b.advance(i)
	}
	return nil
}

// advance runs the bookkeeping shared by both extension outcomes that
// consume a pending suffix (node-at-node insertion and edge-split): decrement
// remaining, then move the active point towards the next suffix to insert.
func (b *builder) advance(i int) {
	b.remaining--
	switch {
	case b.activeNode == nodes.Root && b.activeLength > 0:
		b.activeLength--
		b.activeEdge = b.text[i-b.remaining+1]
	case b.activeNode != nodes.Root:
		if link, ok := b.store.SuffixLink(b.activeNode); ok {
			b.activeNode = link
		} else {
			b.activeNode = nodes.Root
		}
	}
}
