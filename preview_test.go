package ocio

import "testing"

func TestPreview(t *testing.T) {
	tex := &TextureResource{
		Name:     "lut",
		Width:    2,
		Height:   1,
		Channels: ChannelLayoutRGB,
		Data:     []float32{0, 0.5, 1, 2, -1, 0.25},
	}

	img := tex.Preview(1)
	if img.Rect.Dx() != 2 || img.Rect.Dy() != 1 {
		t.Fatalf("preview size = %dx%d, want 2x1", img.Rect.Dx(), img.Rect.Dy())
	}

	r, g, b, a := img.At(0, 0).RGBA()
	if r>>8 != 0 || g>>8 != 128 || b>>8 != 255 || a>>8 != 255 {
		t.Errorf("texel 0 = (%d, %d, %d, %d), want (0, 128, 255, 255)", r>>8, g>>8, b>>8, a>>8)
	}
	// Out-of-range components clamp before quantization.
	r, g, _, _ = img.At(1, 0).RGBA()
	if r>>8 != 255 || g>>8 != 0 {
		t.Errorf("texel 1 = (%d, %d), want clamped (255, 0)", r>>8, g>>8)
	}
}

func TestPreviewScaled(t *testing.T) {
	tex := &TextureResource{
		Name:     "lut",
		Width:    2,
		Height:   2,
		Channels: ChannelLayoutRGB,
		Data: []float32{
			1, 0, 0, 0, 1, 0,
			0, 0, 1, 1, 1, 1,
		},
	}

	img := tex.Preview(3)
	if img.Rect.Dx() != 6 || img.Rect.Dy() != 6 {
		t.Fatalf("preview size = %dx%d, want 6x6", img.Rect.Dx(), img.Rect.Dy())
	}
	// Nearest-neighbor scaling replicates each texel into a block.
	for _, at := range [][2]int{{0, 0}, {2, 2}} {
		r, g, b, _ := img.At(at[0], at[1]).RGBA()
		if r>>8 != 255 || g>>8 != 0 || b>>8 != 0 {
			t.Errorf("pixel (%d,%d) = (%d, %d, %d), want red block", at[0], at[1], r>>8, g>>8, b>>8)
		}
	}
	r, g, b, _ := img.At(5, 5).RGBA()
	if r>>8 != 255 || g>>8 != 255 || b>>8 != 255 {
		t.Errorf("pixel (5,5) = (%d, %d, %d), want white block", r>>8, g>>8, b>>8)
	}

	// A degenerate scale falls back to 1:1.
	if img := tex.Preview(0); img.Rect.Dx() != 2 {
		t.Errorf("scale 0 size = %d, want 2", img.Rect.Dx())
	}
}
