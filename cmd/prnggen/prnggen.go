// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// prnggen generates random bytes or bounded integers from any of the
// generators provided by the prng module.  It is primarily a debugging and
// demonstration tool; deterministic output for a fixed seed makes it usable
// for reproducing generator sequences outside of tests.
package main

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"os"

	"github.com/decred/prng"
	"github.com/decred/prng/chacha"
	"github.com/decred/prng/entropy"
	"github.com/decred/prng/pcg"
	"github.com/decred/prng/xoshiro"
	"github.com/decred/slog"
	flags "github.com/jessevdk/go-flags"
)

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(1)
}

func usage(parser *flags.Parser) {
	parser.WriteHelp(os.Stderr)
	os.Exit(2)
}

type config struct {
	Algo  string `short:"a" description:"generator (one of: chacha8, chacha12, chacha20, xoshiro, pcg)"`
	Bytes uint   `short:"b" description:"number of random bytes to emit"`
	Raw   bool   `short:"r" description:"write raw bytes to stdout instead of hex"`
	Seed  string `short:"s" description:"hex seed for deterministic output; up to 32 bytes for chacha variants, 8 bytes otherwise"`
	Ints  uint   `short:"n" description:"emit this many integers in [min,max] instead of bytes"`
	Min   int64  `long:"min" description:"inclusive lower bound used with -n"`
	Max   int64  `long:"max" description:"inclusive upper bound used with -n"`
	Debug bool   `short:"d" description:"log entropy health events to stderr"`
}

// parseSeed decodes the hex seed and left-justifies it into a 32-byte key.
// The first 8 bytes double as the 64-bit seed for the non-chacha
// generators.
func parseSeed(s string) ([32]byte, uint64, error) {
	var key [32]byte
	b, err := hex.DecodeString(s)
	if err != nil {
		return key, 0, err
	}
	if len(b) == 0 || len(b) > len(key) {
		return key, 0, errors.New("seed must be between 1 and 32 bytes")
	}
	copy(key[:], b)
	return key, binary.BigEndian.Uint64(key[:8]), nil
}

// newSource constructs the requested generator, seeding it either from the
// parsed seed material or the health-checked system entropy source.
func newSource(cfg *config) (prng.Source, error) {
	seeded := cfg.Seed != ""
	var key [32]byte
	var seed64 uint64
	if seeded {
		var err error
		key, seed64, err = parseSeed(cfg.Seed)
		if err != nil {
			return nil, err
		}
	}

	rounds := 0
	switch cfg.Algo {
	case "chacha8":
		rounds = 8
	case "chacha12":
		rounds = 12
	case "chacha20":
		rounds = 20
	case "xoshiro":
		if seeded {
			return xoshiro.NewFromSeed(seed64), nil
		}
		src := entropy.Default()
		return xoshiro.New(entropy.Uint64(src), entropy.Uint64(src),
			entropy.Uint64(src), entropy.Uint64(src)), nil
	case "pcg":
		if seeded {
			return pcg.New(0, seed64), nil
		}
		hi, lo := entropy.Uint128(entropy.Default())
		return pcg.New(hi, lo), nil
	default:
		return nil, fmt.Errorf("unknown generator %q", cfg.Algo)
	}

	// A seeded chacha stream uses a zero nonce so the output depends only
	// on the provided seed.
	var nonce [chacha.NonceSize]byte
	if !seeded {
		entropy.Default().Fill(key[:])
		nonce = prng.Nonce()
	}
	return chacha.New(rounds, &key, nonce), nil
}

func main() {
	cfg := config{
		Algo:  "chacha12",
		Bytes: 32,
		Max:   100,
	}
	parser := flags.NewParser(&cfg, flags.Default)
	args, err := parser.Parse()
	if err != nil {
		var e *flags.Error
		if errors.As(err, &e) {
			if e.Type != flags.ErrHelp {
				os.Exit(1)
			}
			os.Exit(0)
		}
		os.Exit(1)
	}
	if len(args) != 0 {
		usage(parser)
	}

	if cfg.Debug {
		backend := slog.NewBackend(os.Stderr)
		logger := backend.Logger("PRNG")
		logger.SetLevel(slog.LevelDebug)
		prng.UseLogger(logger)
	}

	src, err := newSource(&cfg)
	if err != nil {
		fatalf("%s\n", err)
	}
	r := prng.NewRand(src)

	if cfg.Ints > 0 {
		if cfg.Min > cfg.Max {
			fatalf("min %d exceeds max %d\n", cfg.Min, cfg.Max)
		}
		for i := uint(0); i < cfg.Ints; i++ {
			fmt.Println(r.Int64Range(cfg.Min, cfg.Max))
		}
		return
	}

	buf := make([]byte, cfg.Bytes)
	r.Read(buf)
	if cfg.Raw {
		os.Stdout.Write(buf)
		return
	}
	fmt.Printf("%x\n", buf)
}
