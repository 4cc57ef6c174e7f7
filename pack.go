package ocio

import (
	"errors"
	"fmt"
	"math"
)

// Packing errors.
var (
	// ErrEmptyLUT is returned when a LUT has no entries.
	ErrEmptyLUT = errors.New("ocio: LUT has no entries")

	// ErrBadLUTValues is returned when LUT data is not a sequence of RGB triples.
	ErrBadLUTValues = errors.New("ocio: LUT values must be RGB triples")

	// ErrInvalidTextureSize is returned for a degenerate texture grid.
	ErrInvalidTextureSize = errors.New("ocio: invalid texture size")
)

// sanitizeFloat maps non-finite values to finite fallbacks: NaN becomes 0,
// infinities become the largest finite float32 of matching sign. GPU
// samplers have undefined behavior on non-finite texels, so every value
// headed for texture memory passes through here.
func sanitizeFloat(v float32) float32 {
	f := float64(v)
	switch {
	case math.IsNaN(f):
		return 0
	case math.IsInf(f, 1):
		return math.MaxFloat32
	case math.IsInf(f, -1):
		return -math.MaxFloat32
	}
	return v
}

// lutGrid derives the texture dimensions for a table of the given length.
// Tables longer than maxWidth fold into multiple rows; the extra row holds
// the boundary texels introduced by row-overlap padding.
func lutGrid(length, maxWidth int) (width, height int) {
	width = length
	if width > maxWidth {
		width = maxWidth
	}
	height = length/maxWidth + 1
	return width, height
}

// PadLUTChannels packs LUT sample triples into a texture-ready buffer of
// exactly width*height RGB triples.
//
// For a single-row texture the samples are copied in order and the last
// triple is replicated to fill the row. For multi-row textures the last
// texel of each row repeats the first texel of the next row, so a sampler
// addressing with a pitch of width-1 sees a continuous curve across row
// breaks. Every component is sanitized to a finite value.
//
// values holds 3 floats per table entry. The returned buffer is newly
// allocated; the input is never modified.
func PadLUTChannels(width, height int, values []float32) ([]float32, error) {
	if len(values) == 0 {
		return nil, ErrEmptyLUT
	}
	if len(values)%3 != 0 {
		return nil, fmt.Errorf("%w: got %d floats", ErrBadLUTValues, len(values))
	}
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidTextureSize, width, height)
	}
	if height > 1 && width < 2 {
		// A zero overlap pitch cannot preserve continuity across rows.
		return nil, fmt.Errorf("%w: width %d with height %d", ErrInvalidTextureSize, width, height)
	}

	length := len(values) / 3
	if length > width*height {
		return nil, fmt.Errorf("%w: %d entries exceed %dx%d texels", ErrInvalidTextureSize, length, width, height)
	}
	if height > 1 && height*(width-1)+1 < length {
		// With one texel of overlap per row, height rows cover at most
		// height*(width-1)+1 source entries.
		return nil, fmt.Errorf("%w: %dx%d cannot cover %d entries with row overlap", ErrInvalidTextureSize, width, height, length)
	}
	out := make([]float32, 0, width*height*3)

	appendEntry := func(i int) {
		out = append(out,
			sanitizeFloat(values[3*i]),
			sanitizeFloat(values[3*i+1]),
			sanitizeFloat(values[3*i+2]))
	}

	if height > 1 {
		step := width - 1

		// Full rows: step fresh entries plus one boundary texel equal to
		// the next unconsumed entry. The boundary entry starts the next row.
		i := 0
		for ; i+step < length; i += step {
			for j := i; j <= i+step; j++ {
				appendEntry(j)
			}
		}

		// Final partial row from the leftover entries, closed with a repeat
		// of the last entry. A single leftover entry is already in place as
		// the previous row's boundary texel, so only the trailing pad below
		// is needed for it.
		if leftover := length - i; leftover > 1 {
			for j := i; j < length-1; j++ {
				appendEntry(j)
			}
			appendEntry(length - 1)
		}
	} else {
		for i := 0; i < length; i++ {
			appendEntry(i)
		}
	}

	// Pad the rest of the texture with the last LUT entry. The grid always
	// reserves more texels than the table holds.
	for len(out) < width*height*3 {
		appendEntry(length - 1)
	}

	return out, nil
}
