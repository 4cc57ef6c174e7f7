package ocio

import "fmt"

// GLSLVersion selects the GLSL flavor emitted by the GLSL dialect.
type GLSLVersion int

const (
	// GLSL330 targets OpenGL 3.3 core profile.
	GLSL330 GLSLVersion = iota
	// GLSL120 targets legacy OpenGL 2.1 with its typed sampling builtins.
	GLSL120
)

// String returns the GLSL version directive value.
func (v GLSLVersion) String() string {
	switch v {
	case GLSL330:
		return "330 core"
	case GLSL120:
		return "120"
	default:
		return fmt.Sprintf("Unknown(%d)", int(v))
	}
}

// glslDialect emits OpenGL Shading Language. The two supported versions
// differ only in the version directive, the entry-point IO declarations
// and the sampling builtins (texture vs texture1D/texture2D).
type glslDialect struct {
	version GLSLVersion
}

// NewGLSLDialect returns a Dialect emitting GLSL of the given version.
func NewGLSLDialect(version GLSLVersion) Dialect {
	return glslDialect{version: version}
}

func (d glslDialect) Name() string {
	if d.version == GLSL120 {
		return "glsl120"
	}
	return "glsl330"
}

func (d glslDialect) Header() []string {
	if d.version == GLSL120 {
		return []string{
			"#version 120",
			"",
			"varying vec4 inColor;",
		}
	}
	return []string{
		"#version 330 core",
		"",
		"in vec4 inColor;",
		"out vec4 fragColor;",
	}
}

func (d glslDialect) DeclareTex1D(name string, _ int) string {
	return "uniform sampler1D " + name + ";"
}

func (d glslDialect) DeclareTex2D(name string, _ int) string {
	return "uniform sampler2D " + name + ";"
}

func (d glslDialect) SampleTex1D(name, coordExpr string) string {
	if d.version == GLSL120 {
		return "texture1D(" + name + ", " + coordExpr + ")"
	}
	return "texture(" + name + ", " + coordExpr + ")"
}

func (d glslDialect) SampleTex2D(name, coordExpr string) string {
	if d.version == GLSL120 {
		return "texture2D(" + name + ", " + coordExpr + ")"
	}
	return "texture(" + name + ", " + coordExpr + ")"
}

func (d glslDialect) DeclareFloat(name, expr string) string {
	if expr == "" {
		return "float " + name + ";"
	}
	return "float " + name + " = " + expr + ";"
}

func (d glslDialect) DeclareVec2(name string) string {
	return "vec2 " + name + ";"
}

func (d glslDialect) DeclareVec3(name, expr string) string {
	return "vec3 " + name + " = " + expr + ";"
}

func (d glslDialect) Vec3Literal(x, y, z float64) string {
	return fmt.Sprintf("vec3(%s, %s, %s)", floatLiteral(x), floatLiteral(y), floatLiteral(z))
}

func (d glslDialect) IntTrunc(expr string) string {
	return "float(int(" + expr + "))"
}

func (d glslDialect) HelperHeader(name string) string {
	return "vec2 " + name + "(float f)"
}

func (d glslDialect) StoreRGB(pixel, expr string) []string {
	return []string{pixel + ".rgb = " + expr + ";"}
}

func (d glslDialect) EntryBegin(pixel string) []string {
	return []string{
		"void main()",
		"{",
		"    vec4 " + pixel + " = inColor;",
	}
}

func (d glslDialect) EntryEnd(pixel string) []string {
	out := "fragColor"
	if d.version == GLSL120 {
		out = "gl_FragColor"
	}
	return []string{
		"    " + out + " = " + pixel + ";",
		"}",
	}
}
