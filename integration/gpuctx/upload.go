// Package gpuctx uploads packed LUT textures through the gogpu context
// integration surface.
//
// It covers display-referred pipelines driven by gogpu applications: the
// float texel data is quantized to 8-bit RGBA and handed to the
// gpucontext texture creator obtained from the running app. HDR and
// half-domain tables need the float upload path in the gpu package
// instead; quantizing them here would crush the dynamic range the table
// exists to cover.
package gpuctx

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"

	ocio "github.com/jmertic/OpenColorIO"
)

// Upload errors.
var (
	// ErrNilCreator is returned when a nil texture creator is passed.
	ErrNilCreator = errors.New("gpuctx: nil texture creator")

	// ErrNilResource is returned when the texture resource is nil.
	ErrNilResource = errors.New("gpuctx: nil texture resource")

	// ErrInvalidTexture is returned when the created texture does not
	// implement gpucontext.Texture.
	ErrInvalidTexture = errors.New("gpuctx: creator must return a gpucontext.Texture")
)

// TextureCreator matches the creation surface of
// gpucontext.TextureCreator; obtain one from a texture drawer with
// TextureCreator(). Declared locally so tests can substitute a fake.
type TextureCreator interface {
	NewTextureFromRGBA(width, height int, data []byte) (any, error)
}

// UploadTexture quantizes one registered LUT texture to 8-bit RGBA and
// creates a GPU texture for it.
func UploadTexture(creator TextureCreator, res *ocio.TextureResource) (gpucontext.Texture, error) {
	if creator == nil {
		return nil, ErrNilCreator
	}
	if res == nil {
		return nil, ErrNilResource
	}

	tex, err := creator.NewTextureFromRGBA(res.Width, res.Height, quantizeRGBA(res))
	if err != nil {
		return nil, fmt.Errorf("gpuctx: NewTextureFromRGBA failed for %q: %w", res.Name, err)
	}
	gpuTex, ok := tex.(gpucontext.Texture)
	if !ok {
		return nil, fmt.Errorf("%w: got %T for %q", ErrInvalidTexture, tex, res.Name)
	}

	ocio.Logger().Debug("gpuctx: uploaded LUT texture",
		"name", res.Name, "width", res.Width, "height", res.Height)
	return gpuTex, nil
}

// UploadProgram uploads every texture registered with the program.
// The result maps shader resource names to GPU textures.
func UploadProgram(creator TextureCreator, prog *ocio.Program) (map[string]gpucontext.Texture, error) {
	if creator == nil {
		return nil, ErrNilCreator
	}

	out := make(map[string]gpucontext.Texture, prog.NumTextures())
	for _, res := range prog.Textures() {
		tex, err := UploadTexture(creator, res)
		if err != nil {
			return nil, err
		}
		out[res.Name] = tex
	}
	return out, nil
}

// quantizeRGBA clamps and quantizes float texels to 8-bit RGBA bytes.
func quantizeRGBA(res *ocio.TextureResource) []byte {
	comps := res.Channels.Components()
	texels := res.Width * res.Height
	data := make([]byte, texels*4)
	for i := 0; i < texels; i++ {
		base := i * comps
		data[i*4+0] = quantize(res.Data[base+0])
		data[i*4+1] = quantize(res.Data[base+1])
		data[i*4+2] = quantize(res.Data[base+2])
		if comps == 4 {
			data[i*4+3] = quantize(res.Data[base+3])
		} else {
			data[i*4+3] = 0xff
		}
	}
	return data
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
