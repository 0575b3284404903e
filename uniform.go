// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.
//
// Uniform random algorithms modified from the Go math/rand/v2 package with
// the following license:
//
// Copyright (c) 2009 The Go Authors. All rights reserved.
//
// Redistribution and use in source and binary forms, with or without
// modification, are permitted provided that the following conditions are
// met:
//
//    * Redistributions of source code must retain the above copyright
// notice, this list of conditions and the following disclaimer.
//    * Redistributions in binary form must reproduce the above
// copyright notice, this list of conditions and the following disclaimer
// in the documentation and/or other materials provided with the
// distribution.
//    * Neither the name of Google Inc. nor the names of its
// contributors may be used to endorse or promote products derived from
// this software without specific prior written permission.
//
// THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
// "AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
// LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
// A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
// OWNER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
// SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
// LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
// DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
// THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
// (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
// OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

package prng

import (
	"math"
	"math/bits"
	"time"
)

// The bounded samplers below use Lemire's multiplication-based rejection
// method for all output widths up to 64 bits:
//
//	https://lemire.me/blog/2016/06/27/a-fast-alternative-to-the-modulo-reduction
//	https://lemire.me/blog/2016/06/30/fast-random-shuffling
//
// Each width draws from the next larger unsigned type so the rejection
// threshold ((-span) mod span) only needs to be computed on the rare draws
// whose product low half falls below the span.  128-bit outputs fall back
// to plain rejection sampling with an explicit modulo since no 256-bit
// widening type exists; the cost of the extra division is irrelevant at
// that width and the simpler method is far easier to validate.

// lemire16 returns a uniform value in [0,span) drawn from 16-bit words
// widened through 32-bit products.
func (r *Rand) lemire16(span uint16) uint16 {
	m := uint32(r.Uint16()) * uint32(span)
	high := uint16(m >> 16)
	low := uint16(m)
	if low < span {
		thresh := -span % span
		for low < thresh {
			m = uint32(r.Uint16()) * uint32(span)
			high = uint16(m >> 16)
			low = uint16(m)
		}
	}
	return high
}

// lemire32 returns a uniform value in [0,span) drawn from 32-bit words
// widened through 64-bit products.
func (r *Rand) lemire32(span uint32) uint32 {
	m := uint64(r.Uint32()) * uint64(span)
	high := uint32(m >> 32)
	low := uint32(m)
	if low < span {
		thresh := -span % span
		for low < thresh {
			m = uint64(r.Uint32()) * uint64(span)
			high = uint32(m >> 32)
			low = uint32(m)
		}
	}
	return high
}

// lemire64 returns a uniform value in [0,span) drawn from 64-bit words
// widened through 128-bit products.
func (r *Rand) lemire64(span uint64) uint64 {
	high, low := bits.Mul64(r.Uint64(), span)
	if low < span {
		thresh := -span % span
		for low < thresh {
			high, low = bits.Mul64(r.Uint64(), span)
		}
	}
	return high
}

// reject128 returns a uniform value in [0,span) by redrawing full-width
// 128-bit values until one falls below the largest multiple of span and
// reducing it modulo span.
func (r *Rand) reject128(span Uint128) Uint128 {
	reducedMax := span.Neg() // 2^128 - span
	maxValid := MaxUint128.Sub(reducedMax.Mod(span))
	v := r.Uint128()
	for v.Cmp(maxValid) > 0 {
		v = r.Uint128()
	}
	return v.Mod(span)
}

// Uint8Range returns a uniform random uint8 in [start,end].
// Panics if start > end.
func (r *Rand) Uint8Range(start, end uint8) uint8 {
	if start == 0 && end == math.MaxUint8 {
		return r.Uint8()
	}
	if start > end {
		panic("prng: inverted range")
	}
	if start == end {
		return start
	}
	span := uint16(end-start) + 1
	return start + uint8(r.lemire16(span))
}

// Uint16Range returns a uniform random uint16 in [start,end].
// Panics if start > end.
func (r *Rand) Uint16Range(start, end uint16) uint16 {
	if start == 0 && end == math.MaxUint16 {
		return r.Uint16()
	}
	if start > end {
		panic("prng: inverted range")
	}
	if start == end {
		return start
	}
	span := uint32(end-start) + 1
	return start + uint16(r.lemire32(span))
}

// Uint32Range returns a uniform random uint32 in [start,end].
// Panics if start > end.
func (r *Rand) Uint32Range(start, end uint32) uint32 {
	if start == 0 && end == math.MaxUint32 {
		return r.Uint32()
	}
	if start > end {
		panic("prng: inverted range")
	}
	if start == end {
		return start
	}
	return start + r.lemire32(end-start+1)
}

// Uint64Range returns a uniform random uint64 in [start,end].
// Panics if start > end.
func (r *Rand) Uint64Range(start, end uint64) uint64 {
	if start == 0 && end == math.MaxUint64 {
		return r.Uint64()
	}
	if start > end {
		panic("prng: inverted range")
	}
	if start == end {
		return start
	}
	return start + r.lemire64(end-start+1)
}

// Uint128Range returns a uniform random Uint128 in [start,end].
// Panics if start > end.
func (r *Rand) Uint128Range(start, end Uint128) Uint128 {
	if start.IsZero() && end == MaxUint128 {
		return r.Uint128()
	}
	if start.Cmp(end) > 0 {
		panic("prng: inverted range")
	}
	if start == end {
		return start
	}
	span := end.Sub(start).Add(Uint128{Lo: 1})
	return start.Add(r.reject128(span))
}

// Int8Range returns a uniform random int8 in [start,end].
// Panics if start > end.
func (r *Rand) Int8Range(start, end int8) int8 {
	if start == math.MinInt8 && end == math.MaxInt8 {
		return r.Int8()
	}
	if start > end {
		panic("prng: inverted range")
	}
	if start == end {
		return start
	}
	span := uint16(uint8(end)-uint8(start)) + 1
	return int8(uint8(start) + uint8(r.lemire16(span)))
}

// Int16Range returns a uniform random int16 in [start,end].
// Panics if start > end.
func (r *Rand) Int16Range(start, end int16) int16 {
	if start == math.MinInt16 && end == math.MaxInt16 {
		return r.Int16()
	}
	if start > end {
		panic("prng: inverted range")
	}
	if start == end {
		return start
	}
	span := uint32(uint16(end)-uint16(start)) + 1
	return int16(uint16(start) + uint16(r.lemire32(span)))
}

// Int32Range returns a uniform random int32 in [start,end].
// Panics if start > end.
func (r *Rand) Int32Range(start, end int32) int32 {
	if start == math.MinInt32 && end == math.MaxInt32 {
		return r.Int32()
	}
	if start > end {
		panic("prng: inverted range")
	}
	if start == end {
		return start
	}
	span := uint32(end) - uint32(start) + 1
	return int32(uint32(start) + r.lemire32(span))
}

// Int64Range returns a uniform random int64 in [start,end].
// Panics if start > end.
func (r *Rand) Int64Range(start, end int64) int64 {
	if start == math.MinInt64 && end == math.MaxInt64 {
		return r.Int64()
	}
	if start > end {
		panic("prng: inverted range")
	}
	if start == end {
		return start
	}
	span := uint64(end) - uint64(start) + 1
	return int64(uint64(start) + r.lemire64(span))
}

// IntRange returns a uniform random int in [start,end].
// Panics if start > end.
func (r *Rand) IntRange(start, end int) int {
	return int(r.Int64Range(int64(start), int64(end)))
}

// UintRange returns a uniform random uint in [start,end].
// Panics if start > end.
func (r *Rand) UintRange(start, end uint) uint {
	return uint(r.Uint64Range(uint64(start), uint64(end)))
}

// Uint32N returns a random uint32 in range [0,n) without modulo bias.
func (r *Rand) Uint32N(n uint32) uint32 {
	if n&(n-1) == 0 { // n is power of two, can mask
		return r.Uint32() & (n - 1)
	}
	return r.lemire32(n)
}

// Uint64N returns a random uint64 in range [0,n) without modulo bias.
func (r *Rand) Uint64N(n uint64) uint64 {
	if n&(n-1) == 0 { // n is power of two, can mask
		return r.Uint64() & (n - 1)
	}
	return r.lemire64(n)
}

// Int32N returns, as an int32, a random 31-bit non-negative integer in [0,n)
// without modulo bias.
// Panics if n <= 0.
func (r *Rand) Int32N(n int32) int32 {
	if n <= 0 {
		panic("prng: invalid argument to Int32N")
	}
	return int32(r.Uint32N(uint32(n)))
}

// Int64N returns, as an int64, a random 63-bit non-negative integer in [0,n)
// without modulo bias.
// Panics if n <= 0.
func (r *Rand) Int64N(n int64) int64 {
	if n <= 0 {
		panic("prng: invalid argument to Int64N")
	}
	return int64(r.Uint64N(uint64(n)))
}

// IntN returns, as an int, a random non-negative integer in [0,n) without
// modulo bias.
// Panics if n <= 0.
func (r *Rand) IntN(n int) int {
	if n <= 0 {
		panic("prng: invalid argument to IntN")
	}
	return int(r.Uint64N(uint64(n)))
}

// UintN returns, as a uint, a random integer in [0,n) without modulo bias.
func (r *Rand) UintN(n uint) uint {
	return uint(r.Uint64N(uint64(n)))
}

// Duration returns a random duration in [0,n) without modulo bias.
// Panics if n <= 0.
func (r *Rand) Duration(n time.Duration) time.Duration {
	if n <= 0 {
		panic("prng: invalid argument to Duration")
	}
	return time.Duration(r.Uint64N(uint64(n)))
}

// Shuffle randomizes the order of n elements by swapping the elements at
// indexes i and j.
// Panics if n < 0.
func (r *Rand) Shuffle(n int, swap func(i, j int)) {
	if n < 0 {
		panic("prng: invalid argument to Shuffle")
	}

	// Fisher-Yates shuffle: https://en.wikipedia.org/wiki/Fisher%E2%80%93Yates_shuffle
	for i := n - 1; i > 0; i-- {
		j := int(r.Uint64N(uint64(i + 1)))
		swap(i, j)
	}
}
