// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chacha

import (
	"encoding/binary"
	"math/bits"
)

const (
	// KeySize is the size of the key in bytes.
	KeySize = 32

	// NonceSize is the size of the nonce in bytes.
	NonceSize = 8

	// blockSize is the size of a single keystream block in bytes.
	blockSize = 64
)

// The four constant words of the initial state, the little-endian
// interpretation of "expand 32-byte k".
const (
	sigma0 = 0x61707865
	sigma1 = 0x3320646e
	sigma2 = 0x79622d32
	sigma3 = 0x6b206574
)

// Stream is a ChaCha keystream generator with a configurable round count.
// The keystream is consumed directly as pseudorandom data rather than being
// combined with a plaintext.
//
// A Stream is limited to 2^64 blocks (2^70 bytes) of output.  Exceeding that
// limit panics.  Stream methods are not safe for concurrent access.
type Stream struct {
	rounds int
	state  [16]uint32
	buf    [blockSize]byte
	inx    int
}

// New returns a keystream generator for the given round count keyed with the
// provided 256-bit key and 64-bit nonce.  The first block is generated
// immediately.
//
// The round count must be a positive even number.  8, 12, and 20 are the
// round counts with published test vectors; 12 is the usual choice for
// random number generation.
func New(rounds int, key *[KeySize]byte, nonce [NonceSize]byte) *Stream {
	if rounds <= 0 || rounds%2 != 0 {
		panic("chacha: round count must be a positive even number")
	}

	s := &Stream{rounds: rounds}
	s.state[0] = sigma0
	s.state[1] = sigma1
	s.state[2] = sigma2
	s.state[3] = sigma3
	for i := 0; i < 8; i++ {
		s.state[4+i] = binary.LittleEndian.Uint32(key[4*i:])
	}
	// state[12] and state[13] form the 64-bit little-endian block counter
	// and start at zero.
	s.state[14] = binary.LittleEndian.Uint32(nonce[0:4])
	s.state[15] = binary.LittleEndian.Uint32(nonce[4:8])
	s.generateBlock()
	return s
}

// quarterRound performs the ChaCha add-rotate-xor sequence on four lanes of
// the working state.
func quarterRound(x *[16]uint32, a, b, c, d int) {
	x[a] += x[b]
	x[d] = bits.RotateLeft32(x[d]^x[a], 16)
	x[c] += x[d]
	x[b] = bits.RotateLeft32(x[b]^x[c], 12)
	x[a] += x[b]
	x[d] = bits.RotateLeft32(x[d]^x[a], 8)
	x[c] += x[d]
	x[b] = bits.RotateLeft32(x[b]^x[c], 7)
}

// generateBlock produces the next 64-byte keystream block into the internal
// buffer and advances the block counter.
func (s *Stream) generateBlock() {
	x := s.state
	for round := 0; round < s.rounds; round += 2 {
		// Column round.
		quarterRound(&x, 0, 4, 8, 12)
		quarterRound(&x, 1, 5, 9, 13)
		quarterRound(&x, 2, 6, 10, 14)
		quarterRound(&x, 3, 7, 11, 15)

		// Diagonal round.
		quarterRound(&x, 0, 5, 10, 15)
		quarterRound(&x, 1, 6, 11, 12)
		quarterRound(&x, 2, 7, 8, 13)
		quarterRound(&x, 3, 4, 9, 14)
	}
	for i, v := range s.state {
		binary.LittleEndian.PutUint32(s.buf[4*i:], x[i]+v)
	}

	s.state[12]++
	if s.state[12] == 0 {
		s.state[13]++
		if s.state[13] == 0 {
			panic("chacha: keystream exhausted")
		}
	}
}

// Uint32 returns the next 4 keystream bytes as a little-endian uint32.
func (s *Stream) Uint32() uint32 {
	if s.inx+4 > blockSize {
		s.generateBlock()
		s.inx = 0
	}
	v := binary.LittleEndian.Uint32(s.buf[s.inx:])
	s.inx += 4
	return v
}

// Uint64 returns the next 8 keystream bytes as a little-endian uint64.
func (s *Stream) Uint64() uint64 {
	if s.inx+8 > blockSize {
		s.generateBlock()
		s.inx = 0
	}
	v := binary.LittleEndian.Uint64(s.buf[s.inx:])
	s.inx += 8
	return v
}

// Read fills p with keystream bytes.  It implements io.Reader and never
// errors.
func (s *Stream) Read(p []byte) (int, error) {
	for out := 0; out < len(p); {
		if s.inx == blockSize {
			s.generateBlock()
			s.inx = 0
		}
		n := copy(p[out:], s.buf[s.inx:])
		out += n
		s.inx += n
	}
	return len(p), nil
}
