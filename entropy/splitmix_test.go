// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package entropy

import (
	"bytes"
	"testing"
)

// TestSplitMixFill ensures the byte stream produced by the splitmix64
// expander matches the reference serialization, including fills that are
// not a multiple of the word size.
func TestSplitMixFill(t *testing.T) {
	src := NewSplitMix(42)
	got := make([]byte, 12)
	src.Fill(got)
	want := []byte{189, 215, 50, 38, 47, 235, 110, 149, 40, 239, 227, 51}
	if !bytes.Equal(got, want) {
		t.Fatalf("unexpected fill: got %x, want %x", got, want)
	}
}

// TestSplitMixWords ensures successive word reads match the reference
// splitmix64 outputs.
func TestSplitMixWords(t *testing.T) {
	src := NewSplitMix(1234567)
	want := []uint64{
		6457827717110365317, 3203168211198807973, 9817491932198370423,
		4593380528125082431, 16408922859458223821,
	}
	for i, w := range want {
		if got := Uint64(src); got != w {
			t.Fatalf("word %d: got %d, want %d", i, got, w)
		}
	}
}

// TestSplitMixDeterminism ensures two expanders with the same seed produce
// the same stream regardless of the fill sizes used to consume it.
func TestSplitMixDeterminism(t *testing.T) {
	a := NewSplitMix(0xdecafbad)
	b := NewSplitMix(0xdecafbad)

	bufA := make([]byte, 64)
	a.Fill(bufA)

	bufB := make([]byte, 64)
	for i := 0; i < len(bufB); i += 8 {
		b.Fill(bufB[i : i+8])
	}

	if !bytes.Equal(bufA, bufB) {
		t.Fatalf("streams diverge: %x vs %x", bufA, bufB)
	}
}
