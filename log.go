// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package prng

import (
	"github.com/decred/prng/entropy"
	"github.com/decred/slog"
)

// log is a logger that is initialized with no output filters.  This means
// the package will not perform any logging by default until the caller
// requests it.
var log = slog.Disabled

// UseLogger uses a specified Logger to output package logging info.  The
// entropy subpackage logger is updated along with it since entropy failures
// are the only events this package considers worth reporting.
func UseLogger(logger slog.Logger) {
	log = logger
	entropy.UseLogger(logger)
}
