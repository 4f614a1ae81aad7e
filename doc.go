/*
Package gst builds a generalized suffix tree over a set of input words using
Ukkonen's on-line construction algorithm, and derives the concatenated
text's suffix array and LCP array from it.

Each word is given its own terminator symbol (a "sentinel"), so that no
suffix of one word is ever a prefix of a suffix of another; every suffix of
every word then terminates at a distinct leaf of the tree.

	tree, err := gst.Build(
		[][]byte{[]byte("banana"), []byte("ananas")},
		[]byte("AB"),
	)
	if err != nil {
		// err is, or wraps, one or more errors from package gsterrors.
	}
	sa := tree.SuffixArray()

Build validates its arguments and fails fast, before allocating any tree
nodes, if they are ill-formed; see [package gsterrors] for the errors it can
return. Build does not itself enforce a caller-chosen alphabet beyond
rejecting words that collide with a terminator — the command-line front end
under cmd/gst performs a stricter, explicit-alphabet check ahead of Build,
as a worked example of such a caller.
*/
package gst
