// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package prng

import (
	"encoding/binary"
	"hash/maphash"
	"sync/atomic"
	"time"
)

// nonceCounter is a process-global counter that keeps nonces distinct even
// when the clock does not advance between calls.
var nonceCounter uint64

// Nonce returns an 8-byte stream nonce that is unique with high
// probability, both within a process and across processes.  The wall
// clock, a global counter, and a randomized hash are mixed so that no
// single weak input can produce colliding nonces.
func Nonce() [8]byte {
	now := time.Now()
	fromTime := uint64(now.UnixNano()) ^ uint64(now.Unix())
	fromCounter := atomic.AddUint64(&nonceCounter, 1)

	// maphash seeds are randomized per process, so the hash itself
	// contributes entropy beyond the two mixed inputs.
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], fromTime)
	binary.LittleEndian.PutUint64(buf[8:], fromCounter)
	var h maphash.Hash
	h.Write(buf[:])

	// XOR the inputs back in so a broken hash cannot reduce uniqueness
	// below that of the counter.
	mixed := h.Sum64() ^ fromTime ^ fromCounter

	var nonce [8]byte
	binary.LittleEndian.PutUint64(nonce[:], mixed)
	return nonce
}
