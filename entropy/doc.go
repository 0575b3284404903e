// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package entropy provides seed material for the generators in the parent
// module.
//
// System returns the platform entropy device (getrandom(2) on Linux,
// /dev/urandom on other unixes, crypto/rand elsewhere).  Guard wraps any
// source with the NIST SP 800-90B continuous health tests so that a frozen
// or repeating device is detected before its output is used as key
// material; Default returns the process-wide health-checked instance.
// SplitMix is a deterministic source for tests and reproducible seeding.
//
// Nothing in this package has a recoverable failure mode.  A source that
// cannot be read, or that fails a health test, panics.
package entropy
