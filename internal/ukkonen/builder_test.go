package ukkonen_test

import (
	"testing"

	"github.com/suffixtreego/gst/internal/nodes"
	"github.com/suffixtreego/gst/internal/ukkonen"
)

func build(t *testing.T, text string) *nodes.Store {
	t.Helper()
	store := nodes.NewStore([]byte(text))
	if err := ukkonen.Build(store); err != nil {
		t.Fatalf("Build(%q): %v", text, err)
	}
	return store
}

// countLeaves walks the tree and returns the number of leaves reached, along
// with the total node count.
func countLeaves(store *nodes.Store) (leaves, total int) {
	var walk func(id int)
	walk = func(id int) {
		total++
		if store.IsLeaf(id) {
			leaves++
			return
		}
		for _, c := range store.SortedChildren(id) {
			walk(c.ID)
		}
	}
	walk(nodes.Root)
	return leaves, total
}

func TestBuildSingleSentinelWord(t *testing.T) {
	text := "abcabxabcdA"
	store := build(t, text)

	leaves, total := countLeaves(store)
	if leaves != len(text) {
		t.Errorf("leaves = %d; want %d", leaves, len(text))
	}
	if max := 2 * len(text); total > max {
		t.Errorf("total nodes = %d; want <= %d", total, max)
	}
}

func TestBuildEveryLeafPathIsASuffix(t *testing.T) {
	text := "abcabxabcdA"
	store := build(t, text)

	var starts []int
	var walk func(id int, label string)
	walk = func(id int, label string) {
		if id != nodes.Root {
			label += string(store.Text()[store.Start(id):store.End(id)])
		}
		if store.IsLeaf(id) {
			suffixStart := len(text) - len(label)
			starts = append(starts, suffixStart)
			if label != text[suffixStart:] {
				t.Errorf("leaf path label = %q; want %q", label, text[suffixStart:])
			}
			return
		}
		for _, c := range store.SortedChildren(id) {
			walk(c.ID, label)
		}
	}
	walk(nodes.Root, "")

	seen := make(map[int]bool, len(starts))
	for _, s := range starts {
		seen[s] = true
	}
	if len(seen) != len(text) {
		t.Fatalf("distinct suffix starts = %d; want %d", len(seen), len(text))
	}
	for i := range text {
		if !seen[i] {
			t.Errorf("no leaf represents the suffix starting at %d", i)
		}
	}
}

func TestBuildEachInternalNodeHasAtLeastTwoChildren(t *testing.T) {
	store := build(t, "abcabxabcdA")
	var walk func(id int)
	walk = func(id int) {
		if store.IsLeaf(id) {
			return
		}
		children := store.SortedChildren(id)
		if id != nodes.Root && len(children) < 2 {
			t.Errorf("internal node %d has %d children; want >= 2", id, len(children))
		}
		for _, c := range children {
			walk(c.ID)
		}
	}
	walk(nodes.Root)
}

func TestBuildRepetitiveText(t *testing.T) {
	// a^n with one sentinel: n+1 leaves, n-1 internal splits (plus root).
	n := 6
	text := ""
	for i := 0; i < n; i++ {
		text += "a"
	}
	text += "A"
	store := build(t, text)

	leaves, total := countLeaves(store)
	if want := n + 1; leaves != want {
		t.Errorf("leaves = %d; want %d", leaves, want)
	}
	internals := total - leaves
	want := n // root + (n-1) splits
	if internals != want {
		t.Errorf("internal nodes = %d; want %d", internals, want)
	}
}
