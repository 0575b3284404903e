// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package prng

// The float samplers construct a uniform value in [0,1) that uses the
// entire mantissa rather than the usual low-resolution cast of a same-width
// integer.  A single 64-bit draw suffices unless it has so many leading
// zero bits that fewer significant bits remain than the mantissa holds
// (52 for float64, 23 for float32), in which case a second draw extends the
// value to 128 bits before normalizing.  A 128-bit draw with that many
// leading zeros is improbable enough to ignore.

// Float64Range returns a uniform random float64 in the half-open interval
// [start,end).
// Panics if start >= end.
func (r *Rand) Float64Range(start, end float64) float64 {
	if start >= end {
		panic("prng: invalid float range")
	}
	span := end - start

	v := r.Uint64()
	var normalized float64
	if v>>52 != 0 {
		normalized = float64(v) * 0x1p-64
	} else {
		lo := r.Uint64()
		normalized = float64(v)*0x1p-64 + float64(lo)*0x1p-128
	}
	return normalized*span + start
}

// Float32Range returns a uniform random float32 in the half-open interval
// [start,end).
// Panics if start >= end.
func (r *Rand) Float32Range(start, end float32) float32 {
	if start >= end {
		panic("prng: invalid float range")
	}
	span := end - start

	v := r.Uint64()
	var normalized float32
	if v>>23 != 0 {
		normalized = float32(v) * 0x1p-64
	} else {
		lo := r.Uint64()
		normalized = float32(v)*0x1p-64 + float32(lo)*0x1p-128
	}
	return normalized*span + start
}
