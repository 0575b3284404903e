// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package pcg implements the PCG XSL RR 128/64 pseudorandom number generator
// (the "pcg64" / pcg_state_setseq_128 member of the PCG family described at
// https://www.pcg-random.org).
//
// The generator is fast and has good statistical properties, but it is not
// cryptographically secure.  An observer can recover the internal state from
// a modest number of outputs and predict everything that follows.
package pcg

import "math/bits"

// The fixed 128-bit multiplier and the default 128-bit increment from the
// PCG reference implementation, split into 64-bit halves.
const (
	mulHi = 0x2360ed051fc65da4
	mulLo = 0x4385df649fccf645

	defaultIncHi = 0x5851f42d4c957f2d
	defaultIncLo = 0x14057b7ef767814f
)

// PCG is a PCG XSL RR 128/64 generator.  The 128-bit state and increment are
// held as high/low 64-bit halves.  The methods are not safe for concurrent
// access.
type PCG struct {
	hi    uint64
	lo    uint64
	incHi uint64
	incLo uint64
}

// New returns a generator seeded with the given 128-bit seed and the default
// increment.
func New(seedHi, seedLo uint64) *PCG {
	return NewWithIncrement(seedHi, seedLo, defaultIncHi, defaultIncLo)
}

// NewWithIncrement returns a generator seeded with the given 128-bit seed
// and stream-selection increment.  The increment's low bit is forced on so
// the underlying LCG always has a full period.
//
// Construction follows the reference pcg_setseq_128_srandom_r sequence
// exactly: zero the state, step, add the seed, step again.  Repeated
// construction with the same arguments is bit-identical.
func NewWithIncrement(seedHi, seedLo, incHi, incLo uint64) *PCG {
	p := &PCG{
		incHi: incHi<<1 | incLo>>63,
		incLo: incLo<<1 | 1,
	}
	p.step()
	var c uint64
	p.lo, c = bits.Add64(p.lo, seedLo, 0)
	p.hi, _ = bits.Add64(p.hi, seedHi, c)
	p.step()
	return p
}

// step advances the 128-bit LCG: state = state*mul + inc.
func (p *PCG) step() {
	hi, lo := bits.Mul64(p.lo, mulLo)
	hi += p.hi*mulLo + p.lo*mulHi
	var c uint64
	lo, c = bits.Add64(lo, p.incLo, 0)
	hi, _ = bits.Add64(hi, p.incHi, c)
	p.hi = hi
	p.lo = lo
}

// Uint64 advances the generator and returns the next output word: the xor of
// the state halves rotated right by the top 6 bits of the state.
func (p *PCG) Uint64() uint64 {
	p.step()
	return bits.RotateLeft64(p.hi^p.lo, -int(p.hi>>58))
}

// Uint32 returns the low 32 bits of the next output word.
func (p *PCG) Uint32() uint32 {
	return uint32(p.Uint64())
}
