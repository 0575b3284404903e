// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package prng

import (
	"io"
	"sync"
	"time"
)

// lockingRng serializes access to a StdRng so the package-level convenience
// functions are safe for concurrent use.
type lockingRng struct {
	*StdRng
	mu sync.Mutex
}

var (
	globalRand *lockingRng
	globalOnce sync.Once
)

// global returns the shared locked StdRng, creating it on first use.  Lazy
// construction keeps programs that never touch the package-level functions
// from paying for entropy health checks at startup.
func global() *lockingRng {
	globalOnce.Do(func() {
		globalRand = &lockingRng{StdRng: NewStdRng()}
		log.Debugf("Initialized shared ChaCha%d generator", stdRounds)
	})
	return globalRand
}

func (r *lockingRng) Read(p []byte) (n int, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.StdRng.Read(p)
}

// Reader returns the shared ChaCha-backed generator as an io.Reader that is
// safe for concurrent access and never errors.
func Reader() io.Reader {
	return global()
}

// Read fills b with random bytes obtained from the shared generator.
func Read(b []byte) {
	// Mutex is acquired by (*lockingRng).Read.
	global().Read(b)
}

// Uint32 returns a uniform random uint32.
func Uint32() uint32 {
	r := global()
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.StdRng.Uint32()
}

// Uint64 returns a uniform random uint64.
func Uint64() uint64 {
	r := global()
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.StdRng.Uint64()
}

// Uint32N returns a random uint32 in range [0,n) without modulo bias.
func Uint32N(n uint32) uint32 {
	r := global()
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.StdRng.Uint32N(n)
}

// Uint64N returns a random uint64 in range [0,n) without modulo bias.
func Uint64N(n uint64) uint64 {
	r := global()
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.StdRng.Uint64N(n)
}

// Int32N returns, as an int32, a random 31-bit non-negative integer in [0,n)
// without modulo bias.
// Panics if n <= 0.
func Int32N(n int32) int32 {
	r := global()
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.StdRng.Int32N(n)
}

// Int64N returns, as an int64, a random 63-bit non-negative integer in [0,n)
// without modulo bias.
// Panics if n <= 0.
func Int64N(n int64) int64 {
	r := global()
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.StdRng.Int64N(n)
}

// IntN returns, as an int, a random non-negative integer in [0,n) without
// modulo bias.
// Panics if n <= 0.
func IntN(n int) int {
	r := global()
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.StdRng.IntN(n)
}

// UintN returns, as a uint, a random integer in [0,n) without modulo bias.
func UintN(n uint) uint {
	r := global()
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.StdRng.UintN(n)
}

// Uint64Range returns a uniform random uint64 in [start,end].
// Panics if start > end.
func Uint64Range(start, end uint64) uint64 {
	r := global()
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.StdRng.Uint64Range(start, end)
}

// Int64Range returns a uniform random int64 in [start,end].
// Panics if start > end.
func Int64Range(start, end int64) int64 {
	r := global()
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.StdRng.Int64Range(start, end)
}

// Float64Range returns a uniform random float64 in [start,end).
// Panics if start >= end.
func Float64Range(start, end float64) float64 {
	r := global()
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.StdRng.Float64Range(start, end)
}

// Duration returns a random duration in [0,n) without modulo bias.
// Panics if n <= 0.
func Duration(n time.Duration) time.Duration {
	r := global()
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.StdRng.Duration(n)
}

// Shuffle randomizes the order of n elements by swapping the elements at
// indexes i and j.
// Panics if n < 0.
func Shuffle(n int, swap func(i, j int)) {
	r := global()
	r.mu.Lock()
	defer r.mu.Unlock()

	r.StdRng.Shuffle(n, swap)
}

// ShuffleSlice randomizes the order of all elements in the provided slice.
func ShuffleSlice[T any](s []T) {
	r := global()
	r.mu.Lock()
	defer r.mu.Unlock()

	r.StdRng.Shuffle(len(s), func(i, j int) {
		s[i], s[j] = s[j], s[i]
	})
}
