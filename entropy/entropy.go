// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package entropy

import "encoding/binary"

// Source is the interface implemented by producers of seed material.
//
// Fill fills p with entropy bytes.  There is no recoverable failure mode: an
// unavailable or evidently broken source panics, since continuing to issue
// "random" values from a suspect source would silently void the guarantees
// of everything seeded from it.
type Source interface {
	Fill(p []byte)
}

// looksZeroed reports whether a fill is long enough for an all-zero result
// to be evidence of a broken device rather than chance.  A fill shorter than
// 8 bytes can legitimately come back all zero.
func looksZeroed(p []byte) bool {
	if len(p) < 8 {
		return false
	}
	for _, b := range p {
		if b != 0 {
			return false
		}
	}
	return true
}

// Uint64 draws an 8-byte big-endian seed word from src.
func Uint64(src Source) uint64 {
	var raw [8]byte
	src.Fill(raw[:])
	return binary.BigEndian.Uint64(raw[:])
}

// Uint128 draws a 16-byte big-endian seed from src and returns it as
// high/low 64-bit halves.
func Uint128(src Source) (hi, lo uint64) {
	var raw [16]byte
	src.Fill(raw[:])
	return binary.BigEndian.Uint64(raw[0:8]), binary.BigEndian.Uint64(raw[8:16])
}
