// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:build unix && !linux

package entropy

import (
	"io"
	"os"
)

// systemSource reads entropy from the /dev/urandom character device.  The
// device is opened on first use and kept open for the life of the process.
type systemSource struct {
	f *os.File
}

// Fill fills p from /dev/urandom.  An all-zero read of 8 or more bytes is
// treated as a broken device; shorter reads can be all zero by chance.
func (s *systemSource) Fill(p []byte) {
	if _, err := io.ReadFull(s.f, p); err != nil {
		log.Criticalf("read from %s failed: %v", s.f.Name(), err)
		panic("entropy: read from /dev/urandom failed: " + err.Error())
	}
	if looksZeroed(p) {
		log.Critical("/dev/urandom produced all zeros")
		panic("entropy: /dev/urandom produced all zeros")
	}
}

// System returns the platform entropy device.
func System() Source {
	f, err := os.Open("/dev/urandom")
	if err != nil {
		panic("entropy: failed to open /dev/urandom: " + err.Error())
	}
	return &systemSource{f: f}
}
