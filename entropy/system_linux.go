// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:build linux

package entropy

import "golang.org/x/sys/unix"

// systemSource reads entropy with the getrandom(2) syscall, which avoids
// needing a file descriptor and blocks only until the kernel pool has been
// initialized once.
type systemSource struct{}

// Fill fills p from getrandom(2).  Reads larger than 256 bytes may be
// served partially and are simply resumed.
func (systemSource) Fill(p []byte) {
	for len(p) > 0 {
		n, err := unix.Getrandom(p, 0)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			log.Criticalf("getrandom failed: %v", err)
			panic("entropy: getrandom failed: " + err.Error())
		}
		p = p[n:]
	}
}

// System returns the platform entropy device.
func System() Source {
	return systemSource{}
}
