// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:build !unix

package entropy

import cryptorand "crypto/rand"

// systemSource reads entropy from crypto/rand on platforms without a
// directly usable kernel interface.
type systemSource struct{}

// Fill fills p from crypto/rand.
func (systemSource) Fill(p []byte) {
	if _, err := cryptorand.Read(p); err != nil {
		log.Criticalf("crypto/rand read failed: %v", err)
		panic("entropy: crypto/rand read failed: " + err.Error())
	}
}

// System returns the platform entropy device.
func System() Source {
	return systemSource{}
}
