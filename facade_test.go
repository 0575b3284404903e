// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package prng

import (
	"github.com/decred/prng/chacha"
	"github.com/decred/prng/entropy"

	"testing"
)

// TestStdRngKeystream pins StdRng to the 12-round ChaCha keystream: with an
// all-zero key and nonce the first keystream bytes are fixed by the
// published test vectors.
func TestStdRngKeystream(t *testing.T) {
	var key [chacha.KeySize]byte
	var nonce [8]byte
	r := NewStdRngFromSeed(&key, nonce)

	got := make([]byte, 2)
	r.Read(got)
	if got[0] != 0x9b || got[1] != 0xf4 {
		t.Fatalf("keystream start: got %x, want 9bf4", got)
	}
}

// TestStdRngDeterminism ensures two StdRng instances built from the same
// seed material emit identical sequences across all derivation paths.
func TestStdRngDeterminism(t *testing.T) {
	key := [chacha.KeySize]byte{1, 2, 3, 4, 5}
	nonce := [8]byte{9, 8, 7}
	a := NewStdRngFromSeed(&key, nonce)
	b := NewStdRngFromSeed(&key, nonce)

	for i := 0; i < 100; i++ {
		if av, bv := a.Uint64(), b.Uint64(); av != bv {
			t.Fatalf("draw %d: %d != %d", i, av, bv)
		}
	}
	for i := 0; i < 100; i++ {
		if av, bv := a.Uint8Range(10, 200), b.Uint8Range(10, 200); av != bv {
			t.Fatalf("range draw %d: %d != %d", i, av, bv)
		}
	}
}

// TestSmallRngSeedPaths ensures the single-word seeding path agrees with
// seeding from a splitmix expander, which pins the facade to the documented
// seed expansion.
func TestSmallRngSeedPaths(t *testing.T) {
	const seed = 0xfeedface
	a := NewSmallRngFromSeed(seed)
	b := NewSmallRngFromSource(entropy.NewSplitMix(seed))

	for i := 0; i < 100; i++ {
		if av, bv := a.Uint64(), b.Uint64(); av != bv {
			t.Fatalf("draw %d: %d != %d", i, av, bv)
		}
	}
}

// TestSmallRngFromSystemEntropy sanity checks construction against the real
// guarded entropy source.
func TestSmallRngFromSystemEntropy(t *testing.T) {
	a := NewSmallRng()
	b := NewSmallRng()

	// Two independently seeded generators agreeing on 4 words in a row
	// would mean the seeding path is broken.
	same := 0
	for i := 0; i < 4; i++ {
		if a.Uint64() == b.Uint64() {
			same++
		}
	}
	if same == 4 {
		t.Fatal("independently seeded generators emitted identical words")
	}
}

// TestNonceUniqueness ensures nonces never repeat within a process.
func TestNonceUniqueness(t *testing.T) {
	seen := make(map[[8]byte]struct{})
	for i := 0; i < 10000; i++ {
		n := Nonce()
		if _, ok := seen[n]; ok {
			t.Fatalf("nonce %x repeated at iteration %d", n, i)
		}
		seen[n] = struct{}{}
	}
}
