// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chacha implements the ChaCha stream cipher core as a deterministic
// keystream generator with a configurable round count.
//
// The 8, 12, and 20 round variants produce output that is bit-for-bit
// identical to the published ChaCha test vectors.  The 12 round variant
// backs the default secure generator of the parent module; the cipher
// itself is unbroken, but no claim is made that this particular
// implementation is suitable for encryption.
package chacha
