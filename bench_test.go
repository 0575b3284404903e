// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package prng

import (
	"testing"
	"time"

	"github.com/decred/prng/pcg"
	"github.com/decred/prng/xoshiro"
)

// readBenchTest describes tests that are used for the read benchmarks.
type readBenchTest struct {
	name string // benchmark description
	n    int    // number of bytes to read
}

// makeReadBenches returns a slice of tests that consist of a specific number
// of bytes to read for use in the read benchmarks.
func makeReadBenches() []readBenchTest {
	return []readBenchTest{
		{name: "4b", n: 4},
		{name: "8b", n: 8},
		{name: "32b", n: 32},
		{name: "512b", n: 512},
		{name: "1KiB", n: 1024},
		{name: "4KiB", n: 4096},
	}
}

// BenchmarkGlobalRead benchmarks reading random bytes via the package-level
// Read function with various size reads.
func BenchmarkGlobalRead(b *testing.B) {
	benches := makeReadBenches()
	for benchIdx := range benches {
		bench := benches[benchIdx]
		b.Run(bench.name, func(b *testing.B) {
			buf := make([]byte, bench.n)

			b.ResetTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				Read(buf)
			}
		})
	}
}

// BenchmarkStdRngRead benchmarks reading random bytes via a local StdRng
// instance with various size reads.
func BenchmarkStdRngRead(b *testing.B) {
	benches := makeReadBenches()
	for benchIdx := range benches {
		bench := benches[benchIdx]
		b.Run(bench.name, func(b *testing.B) {
			rng := NewStdRng()
			buf := make([]byte, bench.n)

			b.ResetTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				rng.Read(buf)
			}
		})
	}
}

// BenchmarkSmallRngUint64 benchmarks raw word generation from the
// xoshiro256++ backed facade.
func BenchmarkSmallRngUint64(b *testing.B) {
	rng := NewSmallRngFromSeed(1)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		rng.Uint64()
	}
}

// BenchmarkXoshiroUint64 benchmarks the bare xoshiro256++ generator.
func BenchmarkXoshiroUint64(b *testing.B) {
	rng := xoshiro.NewFromSeed(1)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		rng.Uint64()
	}
}

// BenchmarkPCGUint64 benchmarks the bare PCG generator.
func BenchmarkPCGUint64(b *testing.B) {
	rng := pcg.New(0, 42)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		rng.Uint64()
	}
}

// BenchmarkUint64N benchmarks obtaining a uniformly random uint64 up to a
// random limit via the global function.
func BenchmarkUint64N(b *testing.B) {
	// Choose a random value for the upper limit, but don't exceed a uint32
	// since such large values for random selection are exceedingly rare in
	// practice.
	n := uint64(Uint32())

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		Uint64N(n)
	}
}

// BenchmarkUint64Range benchmarks bounded sampling with both bounds set.
func BenchmarkUint64Range(b *testing.B) {
	rng := NewSmallRngFromSeed(2)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		rng.Uint64Range(1<<20, 1<<40)
	}
}

// BenchmarkUint128Range benchmarks the 128-bit rejection sampler.
func BenchmarkUint128Range(b *testing.B) {
	rng := NewSmallRngFromSeed(3)
	start := Uint128{Lo: 1}
	end := Uint128{Hi: 1 << 20}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		rng.Uint128Range(start, end)
	}
}

// BenchmarkFloat64Range benchmarks full-mantissa float sampling.
func BenchmarkFloat64Range(b *testing.B) {
	rng := NewSmallRngFromSeed(4)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		rng.Float64Range(0, 1)
	}
}

// BenchmarkDuration benchmarks obtaining a uniformly random time.Duration up
// to a random number of seconds via the global function.
func BenchmarkDuration(b *testing.B) {
	// Choose a random number of seconds for the upper limit.
	durationSecs := time.Second * time.Duration(Uint32())

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		Duration(durationSecs)
	}
}

// BenchmarkShuffleSlice benchmarks randomizing the order of all elements in
// a slice via the global function.
func BenchmarkShuffleSlice(b *testing.B) {
	const numItems = 100
	s := make([]uint64, numItems)
	for i := 0; i < numItems; i++ {
		s[i] = Uint64()
	}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i += numItems {
		ShuffleSlice(s)
	}
}
