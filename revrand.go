// Package revrand implements a reversible Mersenne-Twister pseudo-random
// number generator.
//
// A RandomState produces the exact same forward output stream as the
// reference MT19937 (and numpy.random.RandomState) for a given seed, but
// its state transition is invertible: calling Reverse switches the
// generator into reverse, after which it replays every value it has
// produced, in reverse order, bit for bit. Reversing again resumes
// forward generation from the same point.
//
// Basic usage:
//
//	rs, err := revrand.NewRandomState(12345)
//	if err != nil {
//		// seed out of range
//	}
//	forward, _ := rs.StandardUniforms(10)
//	rs.Reverse()
//	replayed, _ := rs.StandardUniforms(10) // equals forward, element for element
//
// A RandomState is safe for concurrent use: every seeding, direction
// toggle and draw holds the instance lock for its full duration, so draws
// observed from multiple goroutines are linearizable, and an array draw
// is a single atomic batch.
package revrand

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/nozzle/revrand/internal/rand"
)

var (
	// ErrSeedOutOfRange is returned for seeds outside [0, 2^32 - 1].
	ErrSeedOutOfRange = errors.New("revrand: seed out of range [0, 2^32 - 1]")

	// ErrNegativeLength is returned for array draws with a negative length.
	ErrNegativeLength = errors.New("revrand: negative sample count")
)

// RandomState is a reversible pseudo-random number generator. It owns its
// internal state exclusively; use NewRandomState to create one and do not
// copy it after first use.
type RandomState struct {
	mu    sync.Mutex
	state rand.State
}

// NewRandomState creates a generator seeded with seed. The seed must lie
// in [0, 2^32 - 1]; anything else fails with ErrSeedOutOfRange.
func NewRandomState(seed int64) (*RandomState, error) {
	rs := &RandomState{}
	if err := rs.Seed(seed); err != nil {
		return nil, err
	}
	return rs, nil
}

// Seed re-initializes the generator from seed, resetting the cursor,
// direction and twist count. On a range error the existing state is left
// untouched and the generator remains usable.
func (rs *RandomState) Seed(seed int64) error {
	if seed < 0 || seed > math.MaxUint32 {
		return fmt.Errorf("%w: %d", ErrSeedOutOfRange, seed)
	}
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.state.Seed(uint32(seed))
	return nil
}

// Reverse toggles the direction of generation. After a toggle the next
// draw reproduces the last value drawn, the one after it the penultimate,
// and so on; array draws reproduce whole previously drawn arrays (see the
// batch draw methods). Two consecutive toggles restore the generator
// exactly, cursor included.
func (rs *RandomState) Reverse() {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.state.Reverse()
}

// Snapshot is a read-only copy of the generator internals, taken under
// the instance lock.
type Snapshot struct {
	// Seed is the integer the state was initialized from. It is retained
	// because the inverse twist cannot reconstruct the first key word
	// when unwinding past the genesis state.
	Seed uint32

	// Key is the 624-word working state of the recurrence.
	Key []uint32

	// Pos is the cursor into Key. 624 and -1 are boundary markers that
	// force a twist (or inverse twist) before the next word is read.
	Pos int

	// Reversed reports the current direction of generation.
	Reversed bool

	// Twists is the net number of twists applied since seeding; negative
	// once the generator has been unwound past its initial state.
	Twists int
}

// State returns a consistent snapshot of the generator internals.
func (rs *RandomState) State() Snapshot {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return Snapshot{
		Seed:     rs.state.InitialSeed(),
		Key:      rs.state.Key(),
		Pos:      rs.state.Pos(),
		Reversed: rs.state.Reversed(),
		Twists:   rs.state.Twists(),
	}
}
