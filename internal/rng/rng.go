// Package rng creates the independent random sources used by sampling runs.
//
// Every sequential run and every tile of a parallel run owns its own
// *rand.Rand. Sources are never shared between goroutines. Tile sources are
// derived from one base seed with a SplitMix64 mix, so two tiles started in
// the same instant never share a stream and a fixed base seed reproduces a
// whole parallel run.
package rng

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"time"
)

// golden is the SplitMix64 increment (2^64 / phi).
const golden = 0x9e3779b97f4a7c15

// Entropy returns a seed read from the operating system's secure random
// source. If that source is unavailable it falls back to the wall clock
// mixed through SplitMix64.
func Entropy() uint64 {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		return Mix(uint64(time.Now().UnixNano()))
	}
	return binary.LittleEndian.Uint64(buf[:])
}

// Mix applies the SplitMix64 finalizer to x.
func Mix(x uint64) uint64 {
	x += golden
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

// Derive returns the seed of substream stream of parent.
// Distinct streams of the same parent yield decorrelated seeds.
func Derive(parent, stream uint64) uint64 {
	return Mix(parent ^ (stream+1)*golden)
}

// New returns a PCG-backed generator for seed.
func New(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, Mix(seed)))
}
