// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package prng

import (
	"encoding/binary"
	"io"
)

// Source is the minimal interface implemented by every bit generator.  The
// two methods must each return uniformly distributed words and are the only
// primitives all higher-level derivation is built from.
//
// Implementations are not required to be safe for concurrent access.
type Source interface {
	// Uint32 returns the next uniform random uint32.
	Uint32() uint32

	// Uint64 returns the next uniform random uint64.
	Uint64() uint64
}

// Rand derives typed values, bounded ranges, and bulk fills from the raw
// words of an underlying Source.  Rand methods are not safe for concurrent
// access.
type Rand struct {
	src Source
}

// NewRand returns a Rand that draws from the given source.
func NewRand(src Source) *Rand {
	return &Rand{src: src}
}

// Uint32 returns a uniform random uint32.
func (r *Rand) Uint32() uint32 {
	return r.src.Uint32()
}

// Uint64 returns a uniform random uint64.
func (r *Rand) Uint64() uint64 {
	return r.src.Uint64()
}

// Bool returns a random boolean taken from the low bit of a 32-bit word.
func (r *Rand) Bool() bool {
	return r.src.Uint32()&1 == 1
}

// Uint8 returns a uniform random uint8 by truncating a 32-bit word.
func (r *Rand) Uint8() uint8 {
	return uint8(r.src.Uint32())
}

// Uint16 returns a uniform random uint16 by truncating a 32-bit word.
func (r *Rand) Uint16() uint16 {
	return uint16(r.src.Uint32())
}

// Uint128 returns a uniform random 128-bit value.  The high 64 bits are
// drawn first.
func (r *Rand) Uint128() Uint128 {
	hi := r.src.Uint64()
	lo := r.src.Uint64()
	return Uint128{Hi: hi, Lo: lo}
}

const is32bit = ^uint(0)>>32 == 0

// Uint returns a uniform random uint, consuming a 32-bit or 64-bit word
// depending on the platform word size.
func (r *Rand) Uint() uint {
	if is32bit {
		return uint(r.src.Uint32())
	}
	return uint(r.src.Uint64())
}

// Int8 returns a uniform random int8 over the full range of the type,
// including negative values.
func (r *Rand) Int8() int8 {
	return int8(r.Uint8())
}

// Int16 returns a uniform random int16 over the full range of the type,
// including negative values.
func (r *Rand) Int16() int16 {
	return int16(r.Uint16())
}

// Int32 returns a uniform random int32 over the full range of the type,
// including negative values.
func (r *Rand) Int32() int32 {
	return int32(r.src.Uint32())
}

// Int64 returns a uniform random int64 over the full range of the type,
// including negative values.
func (r *Rand) Int64() int64 {
	return int64(r.src.Uint64())
}

// Int returns a uniform random int over the full range of the type,
// including negative values.
func (r *Rand) Int() int {
	return int(r.Uint())
}

// Read fills p with random bytes and never errors.  Sources that implement
// io.Reader, such as the ChaCha keystream, are read from directly to avoid
// the overhead of per-word extraction; all other sources are consumed in
// little endian 64-bit words.
func (r *Rand) Read(p []byte) (n int, err error) {
	if rd, ok := r.src.(io.Reader); ok {
		return rd.Read(p)
	}

	n = len(p)
	for len(p) >= 8 {
		binary.LittleEndian.PutUint64(p, r.src.Uint64())
		p = p[8:]
	}
	if len(p) > 0 {
		var tail [8]byte
		binary.LittleEndian.PutUint64(tail[:], r.src.Uint64())
		copy(p, tail[:])
	}
	return n, nil
}

// FillUint32s fills p with uniform random uint32 values.
func (r *Rand) FillUint32s(p []uint32) {
	for i := range p {
		p[i] = r.src.Uint32()
	}
}

// FillUint64s fills p with uniform random uint64 values.
func (r *Rand) FillUint64s(p []uint64) {
	for i := range p {
		p[i] = r.src.Uint64()
	}
}
