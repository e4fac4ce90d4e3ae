package maskid

import (
	"strings"
	"testing"
	"time"
)

func FuzzParse(f *testing.F) {
	plain, err := Compile("X9-9X")
	if err != nil {
		f.Fatal(err)
	}
	stamped, err := Compile("X9-9X", WithTimestamp(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)))
	if err != nil {
		f.Fatal(err)
	}

	for _, seed := range []string{
		"",
		"A5-2D",
		"a52d",
		" A5-2D ",
		"AAA1017757-A4-8W",
		"AAA1017757A48W",
		"B991017757-A4-8W",
		"1234",
		"💥💥",
		"\x00\xff",
		strings.Repeat("A", 100),
	} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		for _, spec := range []*Spec{plain, stamped} {
			canonical, ok := spec.Parse(input)
			if !ok {
				continue
			}
			again, ok := spec.Parse(canonical)
			if !ok {
				t.Errorf("canonical form %q of %q does not parse", canonical, input)
				continue
			}
			if again != canonical {
				t.Errorf("parse of canonical form %q changed it to %q", canonical, again)
			}
		}
	})
}

func FuzzDecodeTimestamp(f *testing.F) {
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	spec, err := Compile("X9", WithTimestamp(start))
	if err != nil {
		f.Fatal(err)
	}

	for _, seed := range []string{
		"",
		"AAA1017757-A4-8W",
		"AAAAAAAAA0",
		"9999999999",
		"B991017757",
		"AAAAAAAAAA",
	} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		when, ok := spec.DecodeTimestamp(input)
		if ok && when.Before(start) {
			t.Errorf("decoded timestamp %s lies before the start date", when)
		}
	})
}
