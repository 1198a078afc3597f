package revrand

import "fmt"

// RandomInt32 draws one tempered 32-bit integer, uniform on [0, 2^32 - 1].
func (rs *RandomState) RandomInt32() uint32 {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return rs.state.Uint32()
}

// StandardUniform draws one float64 uniform on [0, 1) with 53-bit
// precision.
func (rs *RandomState) StandardUniform() float64 {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return rs.state.Float64()
}

// Uniform draws one float64 uniform on [low, high).
func (rs *RandomState) Uniform(low, high float64) float64 {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return rs.state.Uniform(low, high)
}

// StandardNormal draws one standard normal float64. A full Box-Muller
// pair is consumed and the second component discarded, in both
// directions, so scalar normal draws stay reversible against array ones.
func (rs *RandomState) StandardNormal() float64 {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	v, _ := rs.state.NormalPair()
	return v
}

// RandomInt32s draws n tempered 32-bit integers as a single batch under
// one lock acquisition. In reverse the destination is filled from the
// last index down, so a reversed batch equals the original batch
// element for element, not merely as a reversed sequence.
func (rs *RandomState) RandomInt32s(n int) ([]uint32, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeLength, n)
	}
	out := make([]uint32, n)
	rs.mu.Lock()
	defer rs.mu.Unlock()
	if !rs.state.Reversed() {
		for i := range out {
			out[i] = rs.state.Uint32()
		}
	} else {
		for i := n - 1; i >= 0; i-- {
			out[i] = rs.state.Uint32()
		}
	}
	return out, nil
}

// StandardUniforms draws n uniforms on [0, 1) as a single batch, with the
// same direction-dependent fill order as RandomInt32s.
func (rs *RandomState) StandardUniforms(n int) ([]float64, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeLength, n)
	}
	out := make([]float64, n)
	rs.mu.Lock()
	defer rs.mu.Unlock()
	if !rs.state.Reversed() {
		for i := range out {
			out[i] = rs.state.Float64()
		}
	} else {
		for i := n - 1; i >= 0; i-- {
			out[i] = rs.state.Float64()
		}
	}
	return out, nil
}

// StandardNormals draws n standard normals as a single batch. Values are
// produced in whole Box-Muller pairs; for odd n the final pair's second
// component is discarded. In reverse the odd singleton is replayed first,
// discarding the same component the forward pass discarded, then the
// remaining pairs are written back from the top down — pair draws are
// atomic with respect to the twist state, so a pair is never split
// across the direction boundary.
func (rs *RandomState) StandardNormals(n int) ([]float64, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeLength, n)
	}
	out := make([]float64, n)
	rs.mu.Lock()
	defer rs.mu.Unlock()
	if !rs.state.Reversed() {
		i := 0
		for ; i+1 < n; i += 2 {
			out[i], out[i+1] = rs.state.NormalPair()
		}
		if i < n {
			v, _ := rs.state.NormalPair()
			out[i] = v
		}
	} else {
		i := n
		if n%2 == 1 {
			v, _ := rs.state.NormalPair()
			out[n-1] = v
			i = n - 1
		}
		for ; i >= 2; i -= 2 {
			out[i-2], out[i-1] = rs.state.NormalPair()
		}
	}
	return out, nil
}
