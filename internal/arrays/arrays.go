// Package arrays turns a tidy traversal's numeric SA/LCP positions into the
// symbol sequences they designate.
package arrays

import "github.com/suffixtreego/gst/internal/symbols"

// StringSuffixes returns, for each position in sa, the suffix of text
// starting there and truncated just past its first terminator — the same
// span tidy freezes each leaf's end to. Each returned slice aliases text and
// must not be mutated.
func StringSuffixes(text []byte, sa []int, terminators []byte) [][]byte {
	term := symbols.Make(terminators)
	out := make([][]byte, len(sa))
	for i, start := range sa {
		p := start
		for !term.Contains(text[p]) {
			p++
		}
		out[i] = text[start : p+1]
	}
	return out
}
