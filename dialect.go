package ocio

import (
	"strconv"
	"strings"
)

// Dialect supplies the target-language syntax primitives the shader
// emitter is parameterized over. Emission logic is written once against
// this interface; swapping dialects never changes it.
type Dialect interface {
	// Name identifies the dialect, e.g. "glsl330" or "wgsl".
	Name() string

	// Header returns lines prepended to the program: version directives
	// and the pixel input/output declarations of the entry point.
	Header() []string

	// DeclareTex1D and DeclareTex2D return the declaration for a texture
	// resource. slot is the first binding slot reserved for the resource;
	// dialects with explicit binding models may consume two slots (texture
	// and sampler), others ignore it.
	DeclareTex1D(name string, slot int) string
	DeclareTex2D(name string, slot int) string

	// SampleTex1D and SampleTex2D return a 4-component sampling expression.
	SampleTex1D(name, coordExpr string) string
	SampleTex2D(name, coordExpr string) string

	// DeclareFloat declares a mutable scalar, optionally initialized.
	// expr may be empty for a bare declaration.
	DeclareFloat(name, expr string) string

	// DeclareVec2 declares an uninitialized mutable 2-vector.
	DeclareVec2(name string) string

	// DeclareVec3 declares a mutable 3-vector initialized to expr.
	DeclareVec3(name, expr string) string

	// Vec3Literal builds a 3-vector literal.
	Vec3Literal(x, y, z float64) string

	// IntTrunc wraps expr in a float-to-int-to-float truncation toward zero.
	IntTrunc(expr string) string

	// HelperHeader returns the signature line of a float-to-vec2 helper
	// function. The caller emits the braces and body.
	HelperHeader(name string) string

	// StoreRGB assigns a 3-component expression to the rgb channels of
	// pixel. A dedicated primitive because WGSL forbids assigning to a
	// multi-component swizzle.
	StoreRGB(pixel, expr string) []string

	// EntryBegin and EntryEnd open and close the fragment entry point.
	// The pixel variable named pixel is in scope between them.
	EntryBegin(pixel string) []string
	EntryEnd(pixel string) []string
}

// floatLiteral formats v as a float32 source literal valid in every
// supported dialect: a decimal point or exponent is always present.
func floatLiteral(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 32)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// shaderText accumulates indented source lines for one shader fragment.
type shaderText struct {
	sb    strings.Builder
	depth int
}

func (s *shaderText) indent() { s.depth++ }
func (s *shaderText) dedent() { s.depth-- }

// line writes one indented source line. Multi-line fragments (some
// dialects declare a texture and its sampler together) are indented
// line by line.
func (s *shaderText) line(text string) {
	for _, part := range strings.Split(text, "\n") {
		if part != "" {
			s.sb.WriteString(strings.Repeat("    ", s.depth))
			s.sb.WriteString(part)
		}
		s.sb.WriteByte('\n')
	}
}

// lines writes consecutive source lines at the current depth.
func (s *shaderText) lines(texts []string) {
	for _, t := range texts {
		s.line(t)
	}
}

func (s *shaderText) String() string { return s.sb.String() }
