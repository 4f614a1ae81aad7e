package main

import "fmt"

// preset is a canned input, named for test seeding by -p.
type preset struct {
	words       [][]byte
	terminators []byte
}

var presets = map[string]preset{
	"abac": {
		words:       [][]byte{[]byte("abacababacabacaba")},
		terminators: []byte("A"),
	},
	"abab": {
		words:       [][]byte{[]byte("abaabaab"), []byte("abbaabbab")},
		terminators: []byte("AB"),
	},
}

func lookupPreset(name string) (preset, error) {
	p, ok := presets[name]
	if !ok {
		return preset{}, fmt.Errorf("unknown preset %q: want abac or abab", name)
	}
	return p, nil
}
