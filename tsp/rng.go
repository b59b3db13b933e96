// Package tsp - RNG utilities shared by the strategies.
//
// Goals:
//   - Determinism: same seed ⇒ identical results across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Each run builds its own streams.
package tsp

import "math/rand"

// defaultRNGSeed is the fixed seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// Stream identifiers for deriveRNG; one per independent random decision.
const (
	streamBaseline uint64 = iota + 1
	streamRoot
	streamGreedy
	streamInsertion
)

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed (SplitMix64 finalizer).
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// deriveRNG creates an independent stream from a run seed without consuming
// state from any other stream, so adding a random decision in one strategy
// never shifts the choices of another.
func deriveRNG(seed int64, stream uint64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(deriveSeed(seed, stream)))
}

// shuffleIntsInPlace performs an in-place Fisher–Yates shuffle of a using rng.
func shuffleIntsInPlace(a []int, rng *rand.Rand) {
	var i, j int
	for i = len(a) - 1; i > 0; i-- {
		j = rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// fillRange writes 0..len(a)-1 into a.
func fillRange(a []int) {
	for i := range a {
		a[i] = i
	}
}
