package symbols_test

import (
	"testing"

	"github.com/suffixtreego/gst/internal/symbols"
)

func TestASCIISet(t *testing.T) {
	set := symbols.Make([]byte("abcXYZ"))
	for _, c := range []byte("abcXYZ") {
		if !set.Contains(c) {
			t.Errorf("Contains(%q) = false; want true", c)
		}
	}
	for _, c := range []byte("defGHI0123 ") {
		if set.Contains(c) {
			t.Errorf("Contains(%q) = true; want false", c)
		}
	}
}

func TestASCIISetEmpty(t *testing.T) {
	var set symbols.ASCIISet
	for c := 0; c < 256; c++ {
		if set.Contains(byte(c)) {
			t.Fatalf("Contains(%d) = true on zero-value set", c)
		}
	}
}
