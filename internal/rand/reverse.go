package rand

// reverseTwist is the exact algebraic inverse of twist:
// reverseTwist(twist(state)) is the identity on the key.
//
// The forward recurrence writes key[i] = key[i+397] ^ (y >> 1) ^ (y&1 ?
// matrixA : 0) where y packs the upper bit of the old key[i] with the
// lower 31 bits of the old key[i+1]. XORing the post-twist key[i] with
// key[i+397] therefore exposes (y >> 1) ^ (y&1 ? matrixA : 0); whether
// the low bit of y was set is read off the recovered upper bit (matrixA
// has its top bit set), after which y itself is rebuilt and its bits are
// redistributed: the upper bit back into key[i], the lower 31 bits back
// into key[i+1]. Walking i from the end of the key backwards keeps every
// key[i+397] (resp. key[i+397-624]) read at its post-twist value, exactly
// mirroring the in-place left-to-right forward pass.
func (s *State) reverseTwist() {
	mag01 := [2]uint32{0, matrixA}

	// Recover the upper bit of the last key word.
	y := s.key[mtN-1] ^ s.key[mtM-1]
	s.key[mtN-1] = (y << 1) & upperMask

	// Partitioned like the forward twist to avoid mod in the indexing.
	var i int
	for i = mtN - 2; i > mtN-mtM-1; i-- {
		y = s.key[i] ^ s.key[i+(mtM-mtN)]
		odd := (y & upperMask) >> 31
		y ^= mag01[odd]
		y = (y << 1) | odd
		s.key[i] = y & upperMask
		s.key[i+1] |= y & lowerMask
	}
	for ; i >= 0; i-- {
		y = s.key[i] ^ s.key[i+mtM]
		odd := (y & upperMask) >> 31
		y ^= mag01[odd]
		y = (y << 1) | odd
		s.key[i] = y & upperMask
		s.key[i+1] |= y & lowerMask
	}

	// Recover the lower bits of the first key word.
	y = s.key[mtN-1] ^ s.key[mtM-1]
	odd := (y & upperMask) >> 31
	y ^= mag01[odd]
	y = (y << 1) | odd
	s.key[0] |= y & lowerMask

	s.twists--
	if s.twists == 0 {
		// Rolling back the very first twist cannot recover the upper bit
		// of the original key[0]: that bit was generated by seeding, not
		// by the recurrence. Restore the whole word from the seed.
		s.key[0] = s.seed
	}
}

// Reverse flips the direction of generation. After the call the next word
// generated is exactly the last word generated before it, the second the
// penultimate, and so on. The cursor moves by one to compensate for the
// post-increment (forward) versus pre-decrement (reverse) read semantics;
// no twist happens here, boundary twists are deferred to the next read.
// Two consecutive calls restore direction and cursor exactly.
func (s *State) Reverse() {
	if !s.reversed {
		s.reversed = true
		s.pos--
	} else {
		s.reversed = false
		s.pos++
	}
}

// Reversed reports whether the generator is currently unwinding its draw
// history rather than advancing it.
func (s *State) Reversed() bool {
	return s.reversed
}

// InitialSeed returns the seed the state was initialized from.
func (s *State) InitialSeed() uint32 {
	return s.seed
}

// Key returns a copy of the 624-word state key.
func (s *State) Key() []uint32 {
	key := make([]uint32, mtN)
	copy(key, s.key[:])
	return key
}

// Pos returns the current cursor position in the key.
func (s *State) Pos() int {
	return s.pos
}

// Twists returns the net number of twists applied since seeding. It is
// zero at the genesis state and goes negative once the generator has been
// unwound past its initial state.
func (s *State) Twists() int {
	return s.twists
}
