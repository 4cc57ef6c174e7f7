// Package gpu creates GPU texture resources for packed LUT data.
//
// It maps registered ocio texture resources onto WebGPU texture and
// sampler descriptors via gogpu/gputypes and gogpu/wgpu. Texture creation
// currently tracks logical resources with stub handles; the actual upload
// is wired in as the gogpu/wgpu texture surface completes.
package gpu

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/core"
	"github.com/gogpu/wgpu/hal"

	ocio "github.com/jmertic/OpenColorIO"
)

// Texture-related errors.
var (
	// ErrTextureReleased is returned when operating on a released texture.
	ErrTextureReleased = errors.New("gpu: texture has been released")

	// ErrNilResource is returned when the texture resource is nil.
	ErrNilResource = errors.New("gpu: nil texture resource")

	// ErrInvalidDimensions is returned for non-positive texture dimensions.
	ErrInvalidDimensions = errors.New("gpu: invalid texture dimensions")
)

// DefaultTextureUsage is the usage for LUT textures: sampled in shaders,
// written once at upload.
const DefaultTextureUsage = gputypes.TextureUsageCopyDst | gputypes.TextureUsageTextureBinding

// Texture is a GPU texture holding packed LUT data.
//
// Texture is safe for concurrent read access. Close should be
// synchronized externally.
type Texture struct {
	mu sync.RWMutex

	// GPU resource IDs (stub until wgpu texture creation is complete)
	textureID core.TextureID
	viewID    core.TextureViewID

	width  int
	height int
	format gputypes.TextureFormat

	// RGBA-expanded texel data staged for upload.
	data []float32

	sizeBytes uint64
	released  atomic.Bool
	label     string
}

// CreateFromResource creates a GPU texture for a registered LUT texture.
// Three-channel data is expanded to RGBA (alpha 1): WebGPU has no
// three-channel float format.
func CreateFromResource(res *ocio.TextureResource) (*Texture, error) {
	if res == nil {
		return nil, ErrNilResource
	}
	if res.Width <= 0 || res.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, res.Width, res.Height)
	}

	data := res.Data
	if res.Channels == ocio.ChannelLayoutRGB {
		data = expandRGBToRGBA(data)
	}

	t := &Texture{
		width:  res.Width,
		height: res.Height,
		format: gputypes.TextureFormatRGBA32Float,
		data:   data,
		label:  res.Name,
		// textureID and viewID are zero until the upload is implemented:
		//
		// desc := &gputypes.TextureDescriptor{
		//     Label: res.Name,
		//     Size: gputypes.Extent3D{
		//         Width:              uint32(res.Width),
		//         Height:             uint32(res.Height),
		//         DepthOrArrayLayers: 1,
		//     },
		//     MipLevelCount: 1,
		//     SampleCount:   1,
		//     Dimension:     gputypes.TextureDimension2D,
		//     Format:        gputypes.TextureFormatRGBA32Float,
		//     Usage:         DefaultTextureUsage,
		// }
		// textureID, err := core.CreateTexture(device, desc)
	}
	t.sizeBytes = uint64(len(t.data)) * 4

	ocio.Logger().Debug("gpu: staged LUT texture",
		"label", t.label, "width", t.width, "height", t.height, "bytes", t.sizeBytes)
	return t, nil
}

// expandRGBToRGBA pads every RGB texel with an opaque alpha component.
func expandRGBToRGBA(rgb []float32) []float32 {
	out := make([]float32, 0, len(rgb)/3*4)
	for i := 0; i+2 < len(rgb); i += 3 {
		out = append(out, rgb[i], rgb[i+1], rgb[i+2], 1)
	}
	return out
}

// SamplerDescriptor returns the sampler configuration matching a LUT
// texture: clamp-to-edge addressing (the packed layout relies on edge
// clamping outside the table) and the interpolation mode the LUT asked
// for.
func SamplerDescriptor(res *ocio.TextureResource) *hal.SamplerDescriptor {
	filter := gputypes.FilterModeLinear
	if res.Interpolation == ocio.InterpolationNearest {
		filter = gputypes.FilterModeNearest
	}
	return &hal.SamplerDescriptor{
		Label:        res.Name + "_sampler",
		AddressModeU: gputypes.AddressModeClampToEdge,
		AddressModeV: gputypes.AddressModeClampToEdge,
		AddressModeW: gputypes.AddressModeClampToEdge,
		MagFilter:    filter,
		MinFilter:    filter,
		MipmapFilter: filter,
	}
}

// Width returns the texture width in texels.
func (t *Texture) Width() int { return t.width }

// Height returns the texture height in texels.
func (t *Texture) Height() int { return t.height }

// Format returns the WebGPU texture format.
func (t *Texture) Format() gputypes.TextureFormat { return t.format }

// SizeBytes returns the staged data size in bytes.
func (t *Texture) SizeBytes() uint64 { return t.sizeBytes }

// Label returns the debug label (the shader resource name).
func (t *Texture) Label() string { return t.label }

// Data returns the RGBA-expanded texel data staged for upload.
// The slice is shared with the texture and must not be modified.
func (t *Texture) Data() []float32 { return t.data }

// IsReleased returns true if the texture has been released.
func (t *Texture) IsReleased() bool { return t.released.Load() }

// TextureID returns the underlying wgpu texture ID.
// Returns a zero ID while the upload path is stubbed.
func (t *Texture) TextureID() core.TextureID {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.textureID
}

// ViewID returns the texture view ID.
// Returns a zero ID while the upload path is stubbed.
func (t *Texture) ViewID() core.TextureViewID {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.viewID
}

// Close releases the GPU texture resources and drops the staged data.
// The texture should not be used after Close is called.
func (t *Texture) Close() {
	if t.released.Swap(true) {
		return // already released
	}

	t.mu.Lock()
	t.textureID = core.TextureID{}
	t.viewID = core.TextureViewID{}
	t.data = nil
	t.mu.Unlock()
}

// String returns a string representation of the texture.
func (t *Texture) String() string {
	status := "active"
	if t.released.Load() {
		status = "released"
	}
	return fmt.Sprintf("Texture[%s %dx%d %d bytes %s]", t.label, t.width, t.height, t.sizeBytes, status)
}
