package ocio

import (
	"errors"
	"fmt"
	"strings"
)

// Program construction and registration errors.
var (
	// ErrNilDialect is returned when a program is created without a dialect.
	ErrNilDialect = errors.New("ocio: nil shading dialect")

	// ErrMaxWidthTooSmall is returned when the configured maximum texture
	// width cannot support row-overlap addressing.
	ErrMaxWidthTooSmall = errors.New("ocio: max texture width must be at least 2")

	// ErrDuplicateTexture is returned when a texture name is registered twice.
	ErrDuplicateTexture = errors.New("ocio: texture name already registered")

	// ErrTextureDataSize is returned when registered data does not match the
	// declared dimensions.
	ErrTextureDataSize = errors.New("ocio: texture data size mismatch")
)

// ChannelLayout describes the component layout of registered texture data.
type ChannelLayout int

const (
	// ChannelLayoutRGB is three floats per texel.
	ChannelLayoutRGB ChannelLayout = iota
	// ChannelLayoutRGBA is four floats per texel.
	ChannelLayoutRGBA
)

// Components returns the number of floats per texel.
func (c ChannelLayout) Components() int {
	if c == ChannelLayoutRGBA {
		return 4
	}
	return 3
}

// String returns a human-readable name for the layout.
func (c ChannelLayout) String() string {
	if c == ChannelLayoutRGBA {
		return "RGBA"
	}
	return "RGB"
}

// TextureResource is a texture registered with a Program: packed sample
// data plus everything the GPU layer needs to create and sample it.
type TextureResource struct {
	// Name is the resource identifier referenced by emitted shader code.
	Name string

	// CacheID identifies the source LUT content for deduplication.
	CacheID string

	// Width and Height are the texture dimensions in texels.
	Width  int
	Height int

	// Dimensions is 1 for a plain 1D texture, 2 for a row-folded table.
	Dimensions int

	// Channels is the component layout of Data.
	Channels ChannelLayout

	// Interpolation is the sampler filter the texture expects.
	Interpolation Interpolation

	// Data is the packed texel data, Channels.Components() floats per texel.
	Data []float32

	// Slot is the first binding slot reserved for the resource. Each
	// texture reserves two consecutive slots (texture, sampler) for
	// dialects with explicit binding models.
	Slot int
}

// Program accumulates the shader fragments and texture resources produced
// by LUT emission: ordered declaration, helper and per-pixel sections plus
// a texture registry keyed by name.
//
// A Program is an explicit mutable builder owned by the caller. It is not
// safe for concurrent use; sequence emissions into one program.
type Program struct {
	dialect         Dialect
	maxTextureWidth int
	resourcePrefix  string
	pixelName       string

	declarations []string
	helpers      []string
	body         []string

	textures  []*TextureResource
	byName    map[string]*TextureResource
	byCacheID map[string]*TextureResource

	helperDone map[string]bool
}

// ProgramOption configures a Program during creation.
type ProgramOption func(*Program)

// WithMaxTextureWidth caps the width of registered LUT textures. Tables
// longer than the cap fold into multiple rows. The default is 4096.
func WithMaxTextureWidth(w int) ProgramOption {
	return func(p *Program) { p.maxTextureWidth = w }
}

// WithResourcePrefix sets the prefix of generated resource names.
// The default is "ocio_".
func WithResourcePrefix(prefix string) ProgramOption {
	return func(p *Program) { p.resourcePrefix = prefix }
}

// WithPixelName sets the name of the pixel variable the emitted per-pixel
// code reads and writes. The default is "outColor".
func WithPixelName(name string) ProgramOption {
	return func(p *Program) { p.pixelName = name }
}

// NewProgram creates an empty shader program sink for the given dialect.
func NewProgram(dialect Dialect, opts ...ProgramOption) (*Program, error) {
	if dialect == nil {
		return nil, ErrNilDialect
	}
	p := &Program{
		dialect:         dialect,
		maxTextureWidth: 4096,
		resourcePrefix:  "ocio_",
		pixelName:       "outColor",
		byName:          make(map[string]*TextureResource),
		byCacheID:       make(map[string]*TextureResource),
		helperDone:      make(map[string]bool),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.maxTextureWidth < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrMaxWidthTooSmall, p.maxTextureWidth)
	}
	return p, nil
}

// Dialect returns the shading dialect the program emits.
func (p *Program) Dialect() Dialect { return p.dialect }

// MaxTextureWidth returns the configured texture width cap.
func (p *Program) MaxTextureWidth() int { return p.maxTextureWidth }

// ResourcePrefix returns the prefix of generated resource names.
func (p *Program) ResourcePrefix() string { return p.resourcePrefix }

// PixelName returns the name of the pixel variable in emitted code.
func (p *Program) PixelName() string { return p.pixelName }

// NumTextures returns the number of registered textures.
func (p *Program) NumTextures() int { return len(p.textures) }

// Textures returns the registered textures in registration order.
// The slice is shared with the program and must not be modified.
func (p *Program) Textures() []*TextureResource { return p.textures }

// TextureByCacheID returns the texture registered for the given cache ID.
func (p *Program) TextureByCacheID(id string) (*TextureResource, bool) {
	t, ok := p.byCacheID[id]
	return t, ok
}

// RegisterTexture adds a texture resource to the program. The data is
// copied: the registry owns its texel buffer from here on. Registering a
// name twice is an error; deduplication of identical content happens at
// emission time through TextureByCacheID.
func (p *Program) RegisterTexture(name, cacheID string, width, height, dimensions int,
	layout ChannelLayout, interp Interpolation, data []float32) error {
	if width < 1 || height < 1 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidTextureSize, width, height)
	}
	if _, ok := p.byName[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateTexture, name)
	}
	if want := width * height * layout.Components(); len(data) != want {
		return fmt.Errorf("%w: %q has %d floats, want %d", ErrTextureDataSize, name, len(data), want)
	}

	t := &TextureResource{
		Name:          name,
		CacheID:       cacheID,
		Width:         width,
		Height:        height,
		Dimensions:    dimensions,
		Channels:      layout,
		Interpolation: interp.concrete(),
		Data:          append([]float32(nil), data...),
		Slot:          2 * len(p.textures),
	}
	p.textures = append(p.textures, t)
	p.byName[name] = t
	if cacheID != "" {
		p.byCacheID[cacheID] = t
	}

	Logger().Info("ocio: registered LUT texture",
		"name", name, "width", width, "height", height, "interp", t.Interpolation.String())
	return nil
}

// AppendDeclaration appends text to the declaration section.
func (p *Program) AppendDeclaration(text string) {
	p.declarations = append(p.declarations, text)
}

// AppendHelper appends text to the helper-function section.
func (p *Program) AppendHelper(text string) {
	p.helpers = append(p.helpers, text)
}

// AppendFunctionBody appends text to the per-pixel function body.
func (p *Program) AppendFunctionBody(text string) {
	p.body = append(p.body, text)
}

// ShaderText assembles the complete fragment shader: dialect header,
// declarations, helper functions, and the entry point wrapping the
// accumulated per-pixel code.
func (p *Program) ShaderText() string {
	var sb strings.Builder
	writeSection := func(lines []string) {
		for _, l := range lines {
			sb.WriteString(l)
			if !strings.HasSuffix(l, "\n") {
				sb.WriteByte('\n')
			}
		}
	}

	if header := p.dialect.Header(); len(header) > 0 {
		writeSection(header)
		sb.WriteByte('\n')
	}
	if len(p.declarations) > 0 {
		writeSection(p.declarations)
		sb.WriteByte('\n')
	}
	writeSection(p.helpers)
	writeSection(p.dialect.EntryBegin(p.pixelName))
	writeSection(p.body)
	writeSection(p.dialect.EntryEnd(p.pixelName))
	return sb.String()
}
