// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package xoshiro

import "testing"

// TestOutputVectors ensures the generator matches the output of the
// reference implementation for a directly specified state.
func TestOutputVectors(t *testing.T) {
	want := []uint64{
		41943041,
		58720359,
		3588806011781223,
		3591011842654386,
		9228616714210784205,
		9973669472204895162,
		14011001112246962877,
		12406186145184390807,
		15849039046786891736,
		10450023813501588000,
	}
	x := New(1, 2, 3, 4)
	for i, w := range want {
		if got := x.Uint64(); got != w {
			t.Fatalf("output #%d: got %d, want %d", i, got, w)
		}
	}
}

// TestSeedExpansion ensures splitmix64 seed expansion reproduces the
// reference output sequence for a fixed seed.
func TestSeedExpansion(t *testing.T) {
	want := []uint64{
		5987356902031041503,
		7051070477665621255,
		6633766593972829180,
		211316841551650330,
		9136120204379184874,
		379361710973160858,
		15813423377499357806,
		15596884590815070553,
		5439680534584881407,
		1369371744833522710,
	}
	x := NewFromSeed(0)
	for i, w := range want {
		if got := x.Uint64(); got != w {
			t.Fatalf("output #%d: got %d, want %d", i, got, w)
		}
	}
}

// TestDeterminism ensures two generators built from the same seed produce
// identical sequences.
func TestDeterminism(t *testing.T) {
	a := NewFromSeed(0xdecafbad)
	b := NewFromSeed(0xdecafbad)
	for i := 0; i < 1000; i++ {
		if va, vb := a.Uint64(), b.Uint64(); va != vb {
			t.Fatalf("output #%d: %d != %d", i, va, vb)
		}
	}
}

// TestUint32Truncates ensures Uint32 returns the low half of the next
// 64-bit output.
func TestUint32Truncates(t *testing.T) {
	a := New(1, 2, 3, 4)
	b := New(1, 2, 3, 4)
	for i := 0; i < 100; i++ {
		if got, want := a.Uint32(), uint32(b.Uint64()); got != want {
			t.Fatalf("output #%d: got %d, want %d", i, got, want)
		}
	}
}

// TestAllZeroStatePanics ensures the degenerate all-zero state is rejected.
func TestAllZeroStatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for all-zero state")
		}
	}()
	New(0, 0, 0, 0)
}
