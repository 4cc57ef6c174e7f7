package ocio

import (
	"math"

	"github.com/jmertic/OpenColorIO/internal/half"
)

// addressing is the texture addressing strategy of one emitted LUT,
// chosen once per LUT rather than per pixel.
type addressing int

const (
	// addressDirect1D samples a single-row texture with an inline
	// coordinate mapping; no helper function is emitted.
	addressDirect1D addressing = iota

	// addressRegular2D addresses a row-folded table through a helper that
	// decomposes the normalized position into row and column.
	addressRegular2D

	// addressHalfDomain2D addresses the 65536-slot half-domain table by
	// the reconstructed bit pattern of the input.
	addressHalfDomain2D
)

// String returns a human-readable name for the addressing mode.
func (a addressing) String() string {
	switch a {
	case addressDirect1D:
		return "direct1D"
	case addressRegular2D:
		return "regular2D"
	case addressHalfDomain2D:
		return "halfDomain2D"
	default:
		return "unknown"
	}
}

// chooseAddressing picks the addressing strategy from the LUT shape.
func chooseAddressing(lut *LUT1D, height int) addressing {
	switch {
	case lut.HalfDomain():
		return addressHalfDomain2D
	case height > 1:
		return addressRegular2D
	default:
		return addressDirect1D
	}
}

// The functions below are CPU mirrors of the emitted coordinate formulas.
// They exist so tests can check boundary behavior and monotonicity of the
// generated code without a GPU.

// halfDomainIndex reconstructs the bit pattern the input would have as a
// half-precision float, using only the floating-point operations available
// to the emitted shader code. The result lies in [0, 65535]; within one
// exponent band it is a non-decreasing function of the input.
//
// NaN inputs are not representable this way; the shader inherits whatever
// the GPU's log2 returns for them.
func halfDomainIndex(f float32) float32 {
	absF := float32(math.Abs(float64(f)))
	var dep float32
	if absF > half.NormMin {
		if absF > half.Max {
			absF = half.Max
		}
		e := float32(math.Floor(math.Log2(float64(absF))))
		lower := float32(math.Pow(2, float64(e)))
		dep = (e + (absF-lower)/lower + half.ExpBias) * half.ExpScale
	} else {
		dep = absF * 1023.0 / half.DenormMax
	}
	if f <= 0 { // mirrors step(f, 0.0)
		dep += half.SignOffset
	}
	return dep
}

// direct1DCoord maps an input to the sampling coordinate of a single-row
// table. Only the upper bound is clamped.
func direct1DCoord(f float32, length int) float32 {
	if f > 1 {
		f = 1
	}
	dim := float32(length)
	return (f*(dim-1) + 0.5) / dim
}

// regular2DCoords decomposes a normalized position into the row/column
// coordinates of a row-folded table. Values below 0 pass through
// unclamped, mirroring the emitted formula.
func regular2DCoords(f float32, length, width, height int) (u, v float32) {
	if f > 1 {
		f = 1
	}
	dep := f * float32(length-1)
	row := float32(int(dep / float32(width-1)))
	col := dep - row*float32(width-1)
	return (col + 0.5) / float32(width), (row + 0.5) / float32(height)
}

// halfDomain2DCoords decomposes a reconstructed half bit pattern into
// row/column coordinates.
func halfDomain2DCoords(f float32, width, height int) (u, v float32) {
	dep := halfDomainIndex(f)
	row := float32(math.Floor(float64(dep / float32(width-1))))
	col := dep - row*float32(width-1)
	return (col + 0.5) / float32(width), (row + 0.5) / float32(height)
}
