// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package prng implements deterministic pseudo-random number generators
// along with unbiased derivation of typed values and bounded ranges from
// their output.
//
// Three bit generators are provided: a reduced-round ChaCha keystream
// (package chacha), xoshiro256++ (package xoshiro), and PCG XSL-RR 128/64
// (package pcg).  Any of them can back a Rand, which derives booleans,
// integers of 8 through 128 bits, floats with full mantissa resolution, and
// uniformly distributed values in arbitrary sub-ranges without modulo bias.
//
// The StdRng and SmallRng types pair a generator with a seeding policy:
// StdRng keys a ChaCha12 stream from the health-checked system entropy
// source (package entropy), while SmallRng seeds the faster but predictable
// xoshiro256++.  The package-level functions forward to a shared StdRng
// that is lazily created and safe for concurrent access.
package prng
