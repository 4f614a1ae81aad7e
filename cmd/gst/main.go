// Command gst builds a generalized suffix tree over one or more words and
// prints it, its suffix array, its LCP array, or its string suffixes — or,
// with -walkthrough, a phase-by-phase trace of how Ukkonen's algorithm
// arrived at it.
package main

import "os"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
