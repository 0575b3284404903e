// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package prng

import "math/bits"

// Uint128 is an unsigned 128-bit integer represented as two 64-bit halves.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

// MaxUint128 is the largest representable Uint128.
var MaxUint128 = Uint128{Hi: ^uint64(0), Lo: ^uint64(0)}

// Add returns x+y with wraparound.
func (x Uint128) Add(y Uint128) Uint128 {
	lo, carry := bits.Add64(x.Lo, y.Lo, 0)
	hi, _ := bits.Add64(x.Hi, y.Hi, carry)
	return Uint128{Hi: hi, Lo: lo}
}

// Sub returns x-y with wraparound.
func (x Uint128) Sub(y Uint128) Uint128 {
	lo, borrow := bits.Sub64(x.Lo, y.Lo, 0)
	hi, _ := bits.Sub64(x.Hi, y.Hi, borrow)
	return Uint128{Hi: hi, Lo: lo}
}

// Neg returns the two's complement negation of x, which for an unsigned
// type is 2^128 - x.
func (x Uint128) Neg() Uint128 {
	return Uint128{}.Sub(x)
}

// Cmp returns -1 when x < y, 0 when x == y, and 1 when x > y.
func (x Uint128) Cmp(y Uint128) int {
	switch {
	case x.Hi < y.Hi:
		return -1
	case x.Hi > y.Hi:
		return 1
	case x.Lo < y.Lo:
		return -1
	case x.Lo > y.Lo:
		return 1
	}
	return 0
}

// IsZero returns whether x is zero.
func (x Uint128) IsZero() bool {
	return x.Hi == 0 && x.Lo == 0
}

// leadingZeros returns the number of leading zero bits in x.
func (x Uint128) leadingZeros() int {
	if x.Hi != 0 {
		return bits.LeadingZeros64(x.Hi)
	}
	return 64 + bits.LeadingZeros64(x.Lo)
}

// lsh returns x shifted left by n bits.
func (x Uint128) lsh(n uint) Uint128 {
	if n >= 64 {
		return Uint128{Hi: x.Lo << (n - 64)}
	}
	return Uint128{Hi: x.Hi<<n | x.Lo>>(64-n), Lo: x.Lo << n}
}

// rsh returns x shifted right by n bits.
func (x Uint128) rsh(n uint) Uint128 {
	if n >= 64 {
		return Uint128{Lo: x.Hi >> (n - 64)}
	}
	return Uint128{Hi: x.Hi >> n, Lo: x.Lo>>n | x.Hi<<(64-n)}
}

// Mod returns x mod m.  Panics if m is zero.
func (x Uint128) Mod(m Uint128) Uint128 {
	if m.IsZero() {
		panic("prng: division by zero")
	}

	// A 64-bit modulus reduces to two chained 64-bit divisions.
	if m.Hi == 0 {
		hiRem := x.Hi % m.Lo
		_, rem := bits.Div64(hiRem, x.Lo, m.Lo)
		return Uint128{Lo: rem}
	}

	if x.Cmp(m) < 0 {
		return x
	}

	// Shift-subtract division.  The modulus has its high half set, so at
	// most 64 iterations are needed.
	shift := uint(m.leadingZeros() - x.leadingZeros())
	d := m.lsh(shift)
	rem := x
	for {
		if rem.Cmp(d) >= 0 {
			rem = rem.Sub(d)
		}
		if shift == 0 {
			break
		}
		d = d.rsh(1)
		shift--
	}
	return rem
}
