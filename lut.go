package ocio

import (
	"crypto/md5"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// ErrNilLUT is returned when a nil LUT is passed to an emitter.
var ErrNilLUT = errors.New("ocio: nil LUT")

// Interpolation selects how the GPU sampler interpolates between table
// entries.
type Interpolation int

const (
	// InterpolationLinear interpolates linearly between adjacent entries.
	InterpolationLinear Interpolation = iota
	// InterpolationNearest snaps to the nearest entry.
	InterpolationNearest
	// InterpolationBest lets the implementation choose; it resolves to
	// linear on the GPU.
	InterpolationBest
)

// String returns a human-readable name for the interpolation mode.
func (i Interpolation) String() string {
	switch i {
	case InterpolationLinear:
		return "linear"
	case InterpolationNearest:
		return "nearest"
	case InterpolationBest:
		return "best"
	default:
		return fmt.Sprintf("Unknown(%d)", int(i))
	}
}

// concrete resolves Best to the mode actually used by the sampler.
func (i Interpolation) concrete() Interpolation {
	if i == InterpolationBest {
		return InterpolationLinear
	}
	return i
}

// HueAdjust selects the hue-preservation wrapper applied around the
// per-channel lookups.
type HueAdjust int

const (
	// HueAdjustNone applies the three channel lookups independently.
	HueAdjustNone HueAdjust = iota
	// HueAdjustDW3 rescales the color delta from the channel minimum by the
	// post- to pre-lookup chroma ratio, counteracting the hue shift that
	// independent per-channel lookups introduce.
	HueAdjustDW3
)

// String returns a human-readable name for the hue adjustment mode.
func (h HueAdjust) String() string {
	switch h {
	case HueAdjustNone:
		return "none"
	case HueAdjustDW3:
		return "dw3"
	default:
		return fmt.Sprintf("Unknown(%d)", int(h))
	}
}

// LUT1D describes a one-dimensional color lookup table: the same transfer
// curve applied to the red, green and blue channels, stored pre-expanded
// to RGB triples for texture upload.
//
// A LUT1D is an immutable value handle. Emitters never modify one; create
// a new LUT to change the curve.
type LUT1D struct {
	values     []float32 // 3 floats per entry
	interp     Interpolation
	halfDomain bool
	hueAdjust  HueAdjust
	cacheID    string
}

// LUTOption configures a LUT1D during creation.
type LUTOption func(*LUT1D)

// WithInterpolation sets the sampler interpolation mode.
func WithInterpolation(i Interpolation) LUTOption {
	return func(l *LUT1D) { l.interp = i }
}

// WithHalfDomain marks the table as indexed by the bit pattern of the
// input rounded to a half-precision float rather than by a normalized
// [0,1] position. Half-domain tables have one entry per representable
// half value: 65536 entries.
func WithHalfDomain() LUTOption {
	return func(l *LUT1D) { l.halfDomain = true }
}

// WithHueAdjust sets the hue-preservation mode.
func WithHueAdjust(h HueAdjust) LUTOption {
	return func(l *LUT1D) { l.hueAdjust = h }
}

// WithCacheID overrides the content-derived cache ID. Textures registered
// from LUTs with equal cache IDs are shared.
func WithCacheID(id string) LUTOption {
	return func(l *LUT1D) { l.cacheID = id }
}

// NewLUT1D creates a LUT from pre-expanded RGB samples, 3 floats per table
// entry. The samples are copied. Returns an error for an empty table or
// data that is not a whole number of triples.
func NewLUT1D(values []float32, opts ...LUTOption) (*LUT1D, error) {
	if len(values) == 0 {
		return nil, ErrEmptyLUT
	}
	if len(values)%3 != 0 {
		return nil, fmt.Errorf("%w: got %d floats", ErrBadLUTValues, len(values))
	}

	l := &LUT1D{
		values: append([]float32(nil), values...),
		interp: InterpolationLinear,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.cacheID == "" {
		l.cacheID = contentCacheID(l)
	}
	return l, nil
}

// NewLUT1DFromCurve builds a LUT by sampling fn at length normalized
// positions in [0,1] and expanding each result to an RGB triple.
func NewLUT1DFromCurve(length int, fn func(float32) float32, opts ...LUTOption) (*LUT1D, error) {
	if length <= 0 {
		return nil, ErrEmptyLUT
	}
	values := make([]float32, 0, length*3)
	for i := 0; i < length; i++ {
		x := float32(0)
		if length > 1 {
			x = float32(i) / float32(length-1)
		}
		v := fn(x)
		values = append(values, v, v, v)
	}
	return NewLUT1D(values, opts...)
}

// Length returns the number of table entries.
func (l *LUT1D) Length() int {
	return len(l.values) / 3
}

// Values returns the raw sample data, 3 floats per entry. The slice is
// shared with the LUT and must not be modified.
func (l *LUT1D) Values() []float32 {
	return l.values
}

// Interpolation returns the sampler interpolation mode.
func (l *LUT1D) Interpolation() Interpolation {
	return l.interp
}

// HalfDomain reports whether the table is indexed by half-float bit
// patterns.
func (l *LUT1D) HalfDomain() bool {
	return l.halfDomain
}

// HueAdjust returns the hue-preservation mode.
func (l *LUT1D) HueAdjust() HueAdjust {
	return l.hueAdjust
}

// CacheID returns the identifier used for texture deduplication. Two LUTs
// with the same samples and flags share an ID unless one was overridden.
func (l *LUT1D) CacheID() string {
	return l.cacheID
}

// contentCacheID digests the sample data and flags into a stable ID.
func contentCacheID(l *LUT1D) string {
	h := md5.New()
	buf := make([]byte, 4)
	for _, v := range l.values {
		binary.LittleEndian.PutUint32(buf, math.Float32bits(v))
		h.Write(buf)
	}
	flags := byte(l.interp.concrete())
	if l.halfDomain {
		flags |= 0x10
	}
	flags |= byte(l.hueAdjust) << 5
	h.Write([]byte{flags})
	return fmt.Sprintf("lut1d:%x", h.Sum(nil))
}
