// Package half provides a reference IEEE-754 binary16 codec.
//
// The shader emitter reconstructs half bit patterns with floating-point
// arithmetic only, because shading languages of interest expose no integer
// bit operations. This package is the bit-exact reference that arithmetic
// approximation is verified against. It is also used by the CPU-side
// position encoder tests.
package half

import "math"

// Boundary constants of the binary16 format. The emitted shader code and
// the CPU reference encoder share these values; keeping them here is the
// single source of truth for the half-precision encoding.
const (
	// NormMin is the smallest normalized half magnitude, 2^-14.
	NormMin = 6.103515625e-05

	// DenormMax is the largest denormal half magnitude, 2^-14 - 2^-24.
	DenormMax = 6.09755515e-05

	// Max is the largest finite half value, (2 - 2^-10) * 2^15.
	Max = 65504.0

	// ExpBias shifts the unbiased exponent [-15,16] into [0,31].
	ExpBias = 15.0

	// ExpScale is the place value of the exponent field, 2^10.
	ExpScale = 1024.0

	// SignOffset is the place value of the sign bit, 2^15.
	SignOffset = 32768.0
)

// Bits is the raw 16-bit pattern of a half-precision float.
type Bits uint16

// FromFloat32 converts a float32 to the nearest half-precision bit pattern
// using round-to-nearest-even. Values exceeding Max become infinity.
func FromFloat32(f float32) Bits {
	u := math.Float32bits(f)
	sign := uint16(u>>16) & 0x8000
	exp := int32((u>>23)&0xff) - 127
	mant := u & 0x7fffff

	switch {
	case exp == 128: // Inf or NaN
		if mant != 0 {
			return Bits(sign | 0x7e00)
		}
		return Bits(sign | 0x7c00)

	case exp > 15: // overflow to infinity
		return Bits(sign | 0x7c00)

	case exp >= -14: // normalized range
		// Round the 23-bit mantissa to 10 bits, ties to even.
		h := uint32(exp+15)<<10 | mant>>13
		if mant&0x1fff > 0x1000 || (mant&0x1fff == 0x1000 && h&1 == 1) {
			h++ // may carry into the exponent, which is the correct result
		}
		return Bits(sign | uint16(h))

	case exp >= -25: // denormal range
		mant |= 0x800000
		shift := uint32(-exp - 1) // 14 for exp == -15, up to 24 for exp == -25
		h := mant >> shift
		rem := mant & (1<<shift - 1)
		if rem > 1<<(shift-1) || (rem == 1<<(shift-1) && h&1 == 1) {
			h++
		}
		return Bits(sign | uint16(h))

	default: // underflow to signed zero
		return Bits(sign)
	}
}

// Float32 expands the bit pattern back to float32. The expansion is exact:
// every half value is representable as a float32.
func (b Bits) Float32() float32 {
	sign := uint32(b&0x8000) << 16
	exp := uint32(b>>10) & 0x1f
	mant := uint32(b & 0x3ff)

	switch {
	case exp == 0x1f: // Inf or NaN
		return math.Float32frombits(sign | 0x7f800000 | mant<<13)
	case exp != 0: // normalized
		return math.Float32frombits(sign | (exp+112)<<23 | mant<<13)
	case mant != 0: // denormal: mant * 2^-24
		v := float32(mant) * (1.0 / (1 << 24))
		if sign != 0 {
			return -v
		}
		return v
	default: // signed zero
		return math.Float32frombits(sign)
	}
}

// IsFinite reports whether the bit pattern encodes a finite value.
func (b Bits) IsFinite() bool {
	return b>>10&0x1f != 0x1f
}
