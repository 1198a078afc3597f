// Package rand implements the Mersenne Twister (MT19937) generator with
// exactly reversible state updates. Forward output is bit-compatible with
// the reference Mersenne Twister and with numpy.random.RandomState; after
// any sequence of draws the generator can be switched into reverse and
// will reproduce that sequence backwards, bit for bit, given only the
// current internal state.
package rand

import "math"

const (
	mtN        = 624
	mtM        = 397
	matrixA    = 0x9908b0df
	upperMask  = 0x80000000
	lowerMask  = 0x7fffffff
	temperingB = 0x9d2c5680
	temperingC = 0xefc60000

	initMult = 1812433253

	randDblShiftA = 5
	randDblShiftB = 6
	randDblMul    = 67108864.0         // 2^26
	randDblDiv    = 9007199254740992.0 // 2^53
)

// State is the internal state of a reversible MT19937 generator.
// The zero value is not usable; call Seed (or New) first.
type State struct {
	seed     uint32
	key      [mtN]uint32
	pos      int
	reversed bool
	twists   int
}

// New creates a reversible Mersenne Twister seeded with seed.
func New(seed uint32) *State {
	s := &State{}
	s.Seed(seed)
	return s
}

// Seed initializes the generator state from an integer seed.
// This matches numpy.random.RandomState(seed) initialization. The seed is
// retained for the lifetime of the state: the inverse twist cannot recover
// the very first key word when rolling back the first twist, and the
// retained seed is what restores it.
func (s *State) Seed(seed uint32) {
	s.seed = seed
	s.key[0] = seed
	for i := 1; i < mtN; i++ {
		s.key[i] = initMult*(s.key[i-1]^(s.key[i-1]>>30)) + uint32(i)
	}
	s.pos = mtN
	s.reversed = false
	s.twists = 0
}

// twist advances the whole 624-word key by one application of the MT19937
// recurrence, in place, left to right.
func (s *State) twist() {
	var y uint32
	mag01 := [2]uint32{0, matrixA}

	var kk int
	for kk = 0; kk < mtN-mtM; kk++ {
		y = (s.key[kk] & upperMask) | (s.key[kk+1] & lowerMask)
		s.key[kk] = s.key[kk+mtM] ^ (y >> 1) ^ mag01[y&1]
	}
	for ; kk < mtN-1; kk++ {
		y = (s.key[kk] & upperMask) | (s.key[kk+1] & lowerMask)
		s.key[kk] = s.key[kk+(mtM-mtN)] ^ (y >> 1) ^ mag01[y&1]
	}
	y = (s.key[mtN-1] & upperMask) | (s.key[0] & lowerMask)
	s.key[mtN-1] = s.key[mtM-1] ^ (y >> 1) ^ mag01[y&1]

	s.twists++
}

// Uint32 returns the next tempered 32-bit word, advancing the cursor in
// the current direction and twisting (or reverse-twisting) at the key
// boundary. Tempering is a fixed bijection applied identically in both
// directions; reversibility lives entirely in the cursor and twist.
func (s *State) Uint32() uint32 {
	var y uint32
	if !s.reversed {
		if s.pos == mtN {
			s.twist()
			s.pos = 0
		}
		y = s.key[s.pos]
		s.pos++
	} else {
		if s.pos == -1 {
			s.reverseTwist()
			s.pos = mtN - 1
		}
		y = s.key[s.pos]
		s.pos--
	}

	y ^= y >> 11
	y ^= (y << 7) & temperingB
	y ^= (y << 15) & temperingC
	y ^= y >> 18

	return y
}

// Float64 generates a random float64 in [0, 1) with full 53-bit
// precision, matching numpy's random_sample(). It consumes two words; in
// reverse the draw order is swapped so the same (a, b) pair is recovered.
func (s *State) Float64() float64 {
	var a, b uint32
	if !s.reversed {
		a = s.Uint32() >> randDblShiftA
		b = s.Uint32() >> randDblShiftB
	} else {
		b = s.Uint32() >> randDblShiftB
		a = s.Uint32() >> randDblShiftA
	}
	return (float64(a)*randDblMul + float64(b)) / randDblDiv
}

// Uniform generates a random float64 in [low, high).
func (s *State) Uniform(low, high float64) float64 {
	return low + (high-low)*s.Float64()
}

// NormalPair generates a pair of independent standard normal float64s via
// the non-polar Box-Muller transform. Every call consumes exactly two
// uniforms and emits exactly two normals; there is no rejection step and
// no cross-call caching, which is what keeps pair draws atomic with
// respect to the twist state and hence reversible. In reverse the two
// uniforms are drawn in swapped order so the pair comes back unchanged.
func (s *State) NormalPair() (float64, float64) {
	var r, theta float64
	if !s.reversed {
		r = math.Sqrt(-2 * math.Log(s.Float64()))
		theta = 2 * math.Pi * s.Float64()
	} else {
		theta = 2 * math.Pi * s.Float64()
		r = math.Sqrt(-2 * math.Log(s.Float64()))
	}
	return r * math.Cos(theta), r * math.Sin(theta)
}
