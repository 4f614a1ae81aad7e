package gst_test

import (
	"testing"

	"github.com/suffixtreego/gst"
)

func TestTreeRootChildrenAreInAscendingOrder(t *testing.T) {
	tree, err := gst.Build([][]byte{[]byte("banana")}, []byte("A"))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	root := tree.Root()
	if root.IsLeaf() {
		t.Fatal("root reports itself as a leaf")
	}
	children := root.Children()
	if len(children) == 0 {
		t.Fatal("root has no children")
	}
	for i := 1; i < len(children); i++ {
		if children[i-1].Label()[0] >= children[i].Label()[0] {
			t.Errorf("children not in ascending order: %q then %q", children[i-1].Label(), children[i].Label())
		}
	}
}

func TestNodeHandleSARankOnlyMeaningfulOnLeaves(t *testing.T) {
	tree, err := gst.Build([][]byte{[]byte("banana")}, []byte("A"))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	var walk func(n gst.NodeHandle)
	leaves := 0
	walk = func(n gst.NodeHandle) {
		if n.IsLeaf() {
			leaves++
			if n.SARank() < 0 || n.SARank() >= len(tree.SuffixArray()) {
				t.Errorf("leaf SARank() = %d out of range", n.SARank())
			}
			return
		}
		for _, c := range n.Children() {
			walk(c)
		}
	}
	walk(tree.Root())
	if leaves != tree.Length() {
		t.Errorf("visited %d leaves; want %d", leaves, tree.Length())
	}
}
