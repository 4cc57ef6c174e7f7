package gpu

import (
	"errors"
	"strings"
	"testing"

	"github.com/gogpu/gputypes"

	ocio "github.com/jmertic/OpenColorIO"
)

func testResource() *ocio.TextureResource {
	return &ocio.TextureResource{
		Name:          "ocio_lut1d_0",
		Width:         2,
		Height:        1,
		Dimensions:    1,
		Channels:      ocio.ChannelLayoutRGB,
		Interpolation: ocio.InterpolationLinear,
		Data:          []float32{0.1, 0.2, 0.3, 0.4, 0.5, 0.6},
	}
}

func TestCreateFromResource(t *testing.T) {
	tex, err := CreateFromResource(testResource())
	if err != nil {
		t.Fatalf("CreateFromResource failed: %v", err)
	}
	defer tex.Close()

	if tex.Width() != 2 || tex.Height() != 1 {
		t.Errorf("size = %dx%d, want 2x1", tex.Width(), tex.Height())
	}
	if tex.Format() != gputypes.TextureFormatRGBA32Float {
		t.Errorf("format = %v, want RGBA32Float", tex.Format())
	}
	if tex.Label() != "ocio_lut1d_0" {
		t.Errorf("label = %q", tex.Label())
	}

	// RGB texels gain an opaque alpha component.
	want := []float32{0.1, 0.2, 0.3, 1, 0.4, 0.5, 0.6, 1}
	data := tex.Data()
	if len(data) != len(want) {
		t.Fatalf("data length = %d, want %d", len(data), len(want))
	}
	for i, w := range want {
		if data[i] != w {
			t.Errorf("data[%d] = %g, want %g", i, data[i], w)
		}
	}
	if tex.SizeBytes() != uint64(len(want))*4 {
		t.Errorf("SizeBytes = %d, want %d", tex.SizeBytes(), len(want)*4)
	}
}

func TestCreateFromResourceErrors(t *testing.T) {
	if _, err := CreateFromResource(nil); !errors.Is(err, ErrNilResource) {
		t.Errorf("nil resource: error = %v, want %v", err, ErrNilResource)
	}

	res := testResource()
	res.Width = 0
	if _, err := CreateFromResource(res); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("zero width: error = %v, want %v", err, ErrInvalidDimensions)
	}
}

func TestSamplerDescriptor(t *testing.T) {
	res := testResource()
	desc := SamplerDescriptor(res)
	if desc.Label != "ocio_lut1d_0_sampler" {
		t.Errorf("label = %q", desc.Label)
	}
	if desc.AddressModeU != gputypes.AddressModeClampToEdge ||
		desc.AddressModeV != gputypes.AddressModeClampToEdge {
		t.Error("sampler does not clamp to edge")
	}
	if desc.MagFilter != gputypes.FilterModeLinear {
		t.Errorf("linear LUT got filter %v", desc.MagFilter)
	}

	res.Interpolation = ocio.InterpolationNearest
	if desc := SamplerDescriptor(res); desc.MagFilter != gputypes.FilterModeNearest {
		t.Errorf("nearest LUT got filter %v", desc.MagFilter)
	}
}

func TestTextureClose(t *testing.T) {
	tex, err := CreateFromResource(testResource())
	if err != nil {
		t.Fatalf("CreateFromResource failed: %v", err)
	}

	if tex.IsReleased() {
		t.Error("fresh texture reports released")
	}
	tex.Close()
	if !tex.IsReleased() {
		t.Error("closed texture reports active")
	}
	if tex.Data() != nil {
		t.Error("closed texture kept staged data")
	}
	// Double close is a no-op.
	tex.Close()

	if !strings.Contains(tex.String(), "released") {
		t.Errorf("String = %q, want released status", tex.String())
	}
}
