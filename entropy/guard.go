// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package entropy

import (
	"bytes"
	"fmt"
	"sync"
)

const (
	// probeSize is the number of bytes drawn ahead of every fill to detect
	// a frozen or repeating source.
	probeSize = 8

	// rctCutoff is the Repetition Count Test cutoff from NIST SP 800-90B
	// section 4.4.1.  With the 1:2^20 false positive probability the
	// standard proposes for a full-entropy byte source, a run of four
	// identical samples fails the test.
	rctCutoff = 4

	// aptWindow and aptCutoff are the Adaptive Proportion Test parameters
	// from NIST SP 800-90B section 4.4.2 for the same false positive
	// probability: thirteen repeats of the window's first sample within a
	// 512-sample window fail the test.
	aptWindow = 512
	aptCutoff = 13
)

// fatal logs a critical entropy failure and aborts.  A source that fails a
// health test must not be consulted again, so there is no error return.
func fatal(format string, args ...interface{}) {
	str := fmt.Sprintf(format, args...)
	log.Critical(str)
	panic("entropy: " + str)
}

// repetitionCount implements the NIST SP 800-90B section 4.4.1 Repetition
// Count Test over a continuous byte stream.
type repetitionCount struct {
	value byte
	run   int
}

// test feeds data through the tester and aborts if any byte value repeats
// rctCutoff times consecutively, including runs that span calls.
func (c *repetitionCount) test(data []byte) {
	for _, b := range data {
		if c.run == 0 || b != c.value {
			c.value = b
			c.run = 1
			continue
		}
		c.run++
		if c.run >= rctCutoff {
			fatal("repetition count test failed: %#02x repeated %d times",
				b, c.run)
		}
	}
}

// adaptiveProportion implements the NIST SP 800-90B section 4.4.2 Adaptive
// Proportion Test over a continuous byte stream.
type adaptiveProportion struct {
	value     byte
	matches   int
	processed int
}

// test feeds data through the tester and aborts if the first sample of the
// current window recurs aptCutoff times within the window.
func (c *adaptiveProportion) test(data []byte) {
	for _, b := range data {
		switch c.processed {
		case 0:
			c.value = b
			c.matches = 0
			c.processed = 1
		case aptWindow:
			// The byte on the window boundary is discarded so that
			// windows do not align to exact 512-byte strides of the
			// stream.
			c.processed = 0
			c.matches = 0
		default:
			if b == c.value {
				c.matches++
				if c.matches >= aptCutoff {
					fatal("adaptive proportion test failed: %#02x seen "+
						"%d times in one window", b, c.matches)
				}
			}
			c.processed++
		}
	}
}

// Guard wraps a raw entropy source and certifies its output with the NIST
// SP 800-90B continuous health tests before handing it to callers.
//
// Every fill draws a dedicated 8-byte probe that is compared against the
// previous probe and searched for inside the returned payload; the probe
// bytes are retained between calls but never returned to callers, so the
// guard holds no data that could later be used as key material.  The
// statistical testers run over the full probe+payload stream and their
// position is never reset for the life of the guard.
//
// All methods are safe for concurrent access.
type Guard struct {
	mu   sync.Mutex
	src  Source
	prev [probeSize]byte
	rct  repetitionCount
	apt  adaptiveProportion
}

// NewGuard returns a Guard wrapping src.  An initial probe is drawn
// immediately so the first Fill already has a previous sample to compare
// against.
func NewGuard(src Source) *Guard {
	g := &Guard{src: src}
	src.Fill(g.prev[:])
	return g
}

// Fill fills p with entropy from the wrapped source, aborting the process
// if any health test gives evidence the source is broken.
func (g *Guard) Fill(p []byte) {
	g.mu.Lock()
	defer g.mu.Unlock()

	var probe [probeSize]byte
	g.src.Fill(probe[:])
	if probe == g.prev {
		fatal("source repeated an %d-byte sample: %x", probeSize, probe)
	}

	g.src.Fill(p)
	if bytes.Contains(p, probe[:]) {
		fatal("probe bytes %x recur inside freshly drawn data", probe)
	}

	g.rct.test(probe[:])
	g.rct.test(p)
	g.apt.test(probe[:])
	g.apt.test(p)

	g.prev = probe
}

var (
	defaultGuard *Guard
	defaultOnce  sync.Once
)

// Default returns the process-wide health-checked entropy source, creating
// it around the platform device on first use.  All callers share one guard
// so the continuous tests observe a single ordered stream regardless of how
// many generators are being seeded.
func Default() *Guard {
	defaultOnce.Do(func() {
		defaultGuard = NewGuard(System())
	})
	return defaultGuard
}
