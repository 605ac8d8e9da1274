package core

import "math"

// Sequence produces a stream of quasi-random values in [0, 1).
// Low-discrepancy sequences reduce variance compared to plain uniform
// sampling for stratified dimensions (subpixel position, wavelength).
type Sequence interface {
	Next() float64
}

// VanDerCorput is the base-b van der Corput sequence, optionally shifted by
// a per-pixel offset (Cranley-Patterson rotation) so pixels decorrelate.
type VanDerCorput struct {
	base   uint64
	offset float64
	n, d   uint64
}

// NewVanDerCorput creates a van der Corput sequence in the given base
func NewVanDerCorput(base uint64) *VanDerCorput {
	return &VanDerCorput{base: base, n: 0, d: 1}
}

// WithOffset sets the offset applied modulo 1 to every element
func (s *VanDerCorput) WithOffset(offset float64) *VanDerCorput {
	s.offset = offset
	return s
}

// Next returns the next element of the sequence
func (s *VanDerCorput) Next() float64 {
	x := s.d - s.n
	if x == 1 {
		s.n = 1
		s.d *= s.base
	} else {
		y := s.d / s.base
		for x <= y {
			y /= s.base
		}
		s.n = (s.base+1)*y - x
	}
	return math.Mod(float64(s.n)/float64(s.d)+s.offset, 1.0)
}

// Halton2 is a 2D Halton sequence built from two van der Corput sequences
// with coprime bases
type Halton2 struct {
	first  *VanDerCorput
	second *VanDerCorput
}

// NewHalton2 creates a 2D Halton sequence; the bases must differ
func NewHalton2(base1, base2 uint64) *Halton2 {
	if base1 == base2 {
		panic("halton: different bases are expected")
	}
	return &Halton2{
		first:  NewVanDerCorput(base1),
		second: NewVanDerCorput(base2),
	}
}

// WithOffset shifts both component sequences
func (s *Halton2) WithOffset(offset Vec2) *Halton2 {
	s.first.WithOffset(offset.X)
	s.second.WithOffset(offset.Y)
	return s
}

// Next returns the next 2D element of the sequence
func (s *Halton2) Next() Vec2 {
	return Vec2{X: s.first.Next(), Y: s.second.Next()}
}
