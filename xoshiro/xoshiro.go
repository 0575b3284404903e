// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package xoshiro implements the xoshiro256++ 1.0 pseudorandom number
// generator described at https://prng.di.unimi.it.
//
// The generator is fast and has good statistical properties, but it is not
// cryptographically secure.  An observer can recover the internal state from
// a modest number of outputs and predict everything that follows.
package xoshiro

import "math/bits"

// Xoshiro256pp is a xoshiro256++ generator.  The methods are not safe for
// concurrent access.
type Xoshiro256pp struct {
	s [4]uint64
}

// New returns a generator initialized with the four given state words.
//
// The all-zero state is a fixed point of the state transition and is
// rejected with a panic.
func New(s0, s1, s2, s3 uint64) *Xoshiro256pp {
	if s0|s1|s2|s3 == 0 {
		panic("xoshiro: all-zero state")
	}
	return &Xoshiro256pp{s: [4]uint64{s0, s1, s2, s3}}
}

// NewFromSeed returns a generator whose state is expanded from a single
// 64-bit seed with splitmix64.  The expansion never produces the degenerate
// all-zero state.
func NewFromSeed(seed uint64) *Xoshiro256pp {
	state := seed
	var x Xoshiro256pp
	for i := range x.s {
		x.s[i] = splitMix64(&state)
	}
	return &x
}

// splitMix64 advances the splitmix64 state and returns the next output word.
// This is the seed expansion from https://prng.di.unimi.it/splitmix64.c.
func splitMix64(state *uint64) uint64 {
	*state += 0x9e3779b97f4a7c15
	z := *state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// Uint64 returns the next output word.
//
// The output is formed from the pre-transition state, and the shift into s2
// uses the pre-transition value of s1.
func (x *Xoshiro256pp) Uint64() uint64 {
	result := bits.RotateLeft64(x.s[0]+x.s[3], 23) + x.s[0]

	t := x.s[1] << 17

	x.s[2] ^= x.s[0]
	x.s[3] ^= x.s[1]
	x.s[1] ^= x.s[2]
	x.s[0] ^= x.s[3]

	x.s[2] ^= t

	x.s[3] = bits.RotateLeft64(x.s[3], 45)

	return result
}

// Uint32 returns the low 32 bits of the next output word.
func (x *Xoshiro256pp) Uint32() uint32 {
	return uint32(x.Uint64())
}
