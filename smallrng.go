// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package prng

import (
	"github.com/decred/prng/entropy"
	"github.com/decred/prng/xoshiro"
)

// SmallRng is a statistically strong generator for callers that need
// something small and fast but not cryptographically secure.  It is backed
// by xoshiro256++ and its entire state can be recovered from a handful of
// observed outputs, so it must never be used for key material.
//
// SmallRng methods are not safe for concurrent access.
type SmallRng struct {
	*Rand
}

// NewSmallRng returns a SmallRng seeded from the process-wide
// health-checked entropy source.
func NewSmallRng() *SmallRng {
	return NewSmallRngFromSource(entropy.Default())
}

// NewSmallRngFromSource returns a SmallRng seeded from the provided entropy
// source.
func NewSmallRngFromSource(src entropy.Source) *SmallRng {
	s0 := entropy.Uint64(src)
	s1 := entropy.Uint64(src)
	s2 := entropy.Uint64(src)
	s3 := entropy.Uint64(src)
	return &SmallRng{Rand: NewRand(xoshiro.New(s0, s1, s2, s3))}
}

// NewSmallRngFromSeed returns a SmallRng with its state expanded from a
// single 64-bit seed.
//
// A single word is less entropy than the generator state really needs; this
// is intended for testing where reproducible output is wanted.
func NewSmallRngFromSeed(seed uint64) *SmallRng {
	return &SmallRng{Rand: NewRand(xoshiro.NewFromSeed(seed))}
}
