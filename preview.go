package ocio

import (
	"image"

	"golang.org/x/image/draw"
)

// Preview renders the packed texel data as an 8-bit image for visual
// inspection of the row-overlap layout. Components are clamped to [0,1]
// and quantized; scale enlarges the image with nearest-neighbor filtering
// so individual texels stay visible. A scale below 1 is treated as 1.
//
// The preview is a debugging aid; it is not the upload path.
func (t *TextureResource) Preview(scale int) *image.NRGBA {
	if scale < 1 {
		scale = 1
	}
	comps := t.Channels.Components()

	img := image.NewNRGBA(image.Rect(0, 0, t.Width, t.Height))
	for y := 0; y < t.Height; y++ {
		for x := 0; x < t.Width; x++ {
			base := (y*t.Width + x) * comps
			o := img.PixOffset(x, y)
			img.Pix[o+0] = quantize(t.Data[base+0])
			img.Pix[o+1] = quantize(t.Data[base+1])
			img.Pix[o+2] = quantize(t.Data[base+2])
			if comps == 4 {
				img.Pix[o+3] = quantize(t.Data[base+3])
			} else {
				img.Pix[o+3] = 0xff
			}
		}
	}
	if scale == 1 {
		return img
	}

	dst := image.NewNRGBA(image.Rect(0, 0, t.Width*scale, t.Height*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// quantize maps a [0,1] component to an 8-bit value with rounding.
func quantize(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 0xff
	}
	return uint8(v*255 + 0.5)
}
