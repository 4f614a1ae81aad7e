package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/suffixtreego/gst"
)

// ANSI codes for -d display mode, trimmed from a larger color table down to
// what this CLI's output actually needs: one color for edge labels and one
// for leaf ranks.
const (
	ansiReset  = "\033[0m"
	ansiBold   = "\033[1m"
	ansiCyan   = "\033[36m"
	ansiYellow = "\033[33m"
)

func colorize(on bool, code, s string) string {
	if !on {
		return s
	}
	return code + s + ansiReset
}

// printTree renders the tree as an indented outline, root at the top.
func printTree(w io.Writer, tree *gst.Tree, color bool) {
	var walk func(n gst.NodeHandle, depth int)
	walk = func(n gst.NodeHandle, depth int) {
		indent := strings.Repeat("  ", depth)
		if depth > 0 {
			label := colorize(color, ansiCyan, fmt.Sprintf("%q", n.Label()))
			if n.IsLeaf() {
				rank := colorize(color, ansiYellow, fmt.Sprintf("sa_rank=%d", n.SARank()))
				fmt.Fprintf(w, "%s%s (leaf, %s)\n", indent, label, rank)
			} else {
				fmt.Fprintf(w, "%s%s\n", indent, label)
			}
		} else {
			fmt.Fprintln(w, colorize(color, ansiBold, "(root)"))
		}
		for _, c := range n.Children() {
			walk(c, depth+1)
		}
	}
	walk(tree.Root(), 0)
}

func printSA(w io.Writer, tree *gst.Tree, color bool) {
	for i, pos := range tree.SuffixArray() {
		fmt.Fprintf(w, "%d\t%s\n", i, colorize(color, ansiCyan, fmt.Sprintf("%d", pos)))
	}
}

func printLCP(w io.Writer, tree *gst.Tree, color bool) {
	for i, l := range tree.LCPArray() {
		fmt.Fprintf(w, "%d\t%s\n", i, colorize(color, ansiYellow, fmt.Sprintf("%d", l)))
	}
}

func printSFX(w io.Writer, tree *gst.Tree, color bool) {
	for i, s := range tree.StringSuffixes() {
		fmt.Fprintf(w, "%d\t%s\n", i, colorize(color, ansiCyan, fmt.Sprintf("%q", s)))
	}
}

func printOutput(w io.Writer, tree *gst.Tree, output string, color bool) error {
	switch output {
	case "tree":
		printTree(w, tree, color)
	case "sa":
		printSA(w, tree, color)
	case "lcp":
		printLCP(w, tree, color)
	case "sfx":
		printSFX(w, tree, color)
	default:
		return fmt.Errorf("unknown output kind %q", output)
	}
	return nil
}
