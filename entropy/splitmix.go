// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package entropy

import "encoding/binary"

// SplitMix is a deterministic Source that expands a single 64-bit seed into
// an arbitrarily long byte stream using the splitmix64 mixing function from
// https://prng.di.unimi.it/splitmix64.c.
//
// It is a low-quality entropy expander intended for tests and reproducible
// seeding, never for production key material.
type SplitMix struct {
	state uint64
}

// NewSplitMix returns a SplitMix source for the given seed.
func NewSplitMix(seed uint64) *SplitMix {
	return &SplitMix{state: seed}
}

// next advances the state and returns the next output word.
func (s *SplitMix) next() uint64 {
	s.state += 0x9e3779b97f4a7c15
	z := s.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// Fill fills p with the big-endian serialization of successive output
// words.  The endianness matches the seed word helpers of this package so
// that Uint64(NewSplitMix(s)) equals the first raw splitmix64 output for s.
func (s *SplitMix) Fill(p []byte) {
	for len(p) >= 8 {
		binary.BigEndian.PutUint64(p, s.next())
		p = p[8:]
	}
	if len(p) > 0 {
		var tail [8]byte
		binary.BigEndian.PutUint64(tail[:], s.next())
		copy(p, tail[:])
	}
}
