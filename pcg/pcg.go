// Package pcg provides a small, seedable PCG32 generator used to drive
// randomized tests and synthetic batches.
//
// Goals:
//   - Determinism: the same (state, sequence) pair yields the same stream on
//     every platform, so failing samples can be replayed.
//   - Independence: distinct sequence numbers select distinct streams, which
//     lets callers give each worker or test case its own generator.
//
// Concurrency:
//   - A *Source is NOT goroutine-safe. Do not share one across goroutines;
//     derive one per worker with Split.
package pcg

import "github.com/katalvlaran/polar3/smallmat"

// Default seed pair used by NewDefault.
const (
	DefaultState uint64 = 0x1234
	DefaultSeq   uint64 = 0x5678
)

const (
	multiplier uint64 = 6364136223846793005
	mantissa          = 1 << 23 // uniform resolution: 23 random bits
)

// Source is a PCG-XSH-RR 64/32 generator.
type Source struct {
	state uint64
	inc   uint64 // stream selector, always odd
}

// New returns a Source seeded with initState on stream initSeq.
func New(initState, initSeq uint64) *Source {
	s := &Source{}
	s.Seed(initState, initSeq)
	return s
}

// NewDefault returns a Source seeded with DefaultState and DefaultSeq.
func NewDefault() *Source { return New(DefaultState, DefaultSeq) }

// Seed resets s to the stream identified by (initState, initSeq).
func (s *Source) Seed(initState, initSeq uint64) {
	s.state = 0
	s.inc = initSeq<<1 | 1
	s.Uint32()
	s.state += initState
	s.Uint32()
}

// Uint32 returns the next 32 random bits.
func (s *Source) Uint32() uint32 {
	old := s.state
	s.state = old*multiplier + s.inc
	xorshifted := uint32(((old >> 18) ^ old) >> 27)
	rot := uint32(old >> 59)
	return xorshifted>>rot | xorshifted<<((-rot)&31)
}

// Uniform returns a float32 in [0, 1) with 23 bits of resolution.
func (s *Source) Uniform() float32 {
	return float32(s.Uint32()>>9) / mantissa
}

// Range returns a float32 in [lo, hi).
func (s *Source) Range(lo, hi float32) float32 {
	return lo + (hi-lo)*s.Uniform()
}

// Mat3 fills a matrix with Uniform values in column-major order.
func (s *Source) Mat3() smallmat.Mat3 {
	var m smallmat.Mat3
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			m[c][r] = s.Uniform()
		}
	}
	return m
}

// Split derives an independent Source for stream id. It consumes one value of
// s so repeated calls with the same id still give different children.
func (s *Source) Split(id uint64) *Source {
	return New(uint64(s.Uint32())<<32|uint64(s.Uint32()), mix(id))
}

// mix is the SplitMix64 finalizer, used to spread small stream ids.
func mix(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}
