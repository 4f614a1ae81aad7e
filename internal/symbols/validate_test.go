package symbols_test

import (
	"testing"

	"github.com/suffixtreego/gst/gsterrors"
	"github.com/suffixtreego/gst/internal/symbols"
)

func TestValidateAlphabetAndTerminators(t *testing.T) {
	cases := []struct {
		desc        string
		alphabet    string
		terminators string
		wantErr     bool
	}{
		{"disjoint", "abc", "XYZ", false},
		{"overlap", "abc", "aXY", true},
		{"duplicate terminator", "abc", "XYX", true},
		{"empty terminators", "abc", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			err := symbols.ValidateAlphabetAndTerminators([]byte(tc.alphabet), []byte(tc.terminators))
			if (err != nil) != tc.wantErr {
				t.Errorf("err = %v; wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestValidateWords(t *testing.T) {
	words := [][]byte{[]byte("cat"), []byte("dZg")}
	err := symbols.ValidateWords(words, []byte("abcdefghijklmnopqrstuvwxyz"))
	if err == nil {
		t.Fatal("expected an error")
	}
	var found bool
	for e := range gsterrors.All(err) {
		oe, ok := e.(*gsterrors.OutOfAlphabetSymbolError)
		if ok && oe.Word == 1 && oe.Value == 'Z' {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an OutOfAlphabetSymbolError for word 1, symbol 'Z'")
	}
}
