package ocio

import "fmt"

// wgslDialect emits WebGPU Shading Language. WGSL separates textures from
// samplers, so every texture declaration consumes two binding slots and
// sampling calls name both resources.
type wgslDialect struct{}

// NewWGSLDialect returns a Dialect emitting WGSL. Programs built with it
// can be compiled to SPIR-V with Program.CompileSPIRV.
func NewWGSLDialect() Dialect {
	return wgslDialect{}
}

func (wgslDialect) Name() string { return "wgsl" }

func (wgslDialect) Header() []string { return nil }

func (wgslDialect) DeclareTex1D(name string, slot int) string {
	return fmt.Sprintf("@group(0) @binding(%d) var %s: texture_1d<f32>;\n@group(0) @binding(%d) var %s_sampler: sampler;",
		slot, name, slot+1, name)
}

func (wgslDialect) DeclareTex2D(name string, slot int) string {
	return fmt.Sprintf("@group(0) @binding(%d) var %s: texture_2d<f32>;\n@group(0) @binding(%d) var %s_sampler: sampler;",
		slot, name, slot+1, name)
}

func (wgslDialect) SampleTex1D(name, coordExpr string) string {
	return "textureSample(" + name + ", " + name + "_sampler, " + coordExpr + ")"
}

func (wgslDialect) SampleTex2D(name, coordExpr string) string {
	return "textureSample(" + name + ", " + name + "_sampler, " + coordExpr + ")"
}

func (wgslDialect) DeclareFloat(name, expr string) string {
	if expr == "" {
		return "var " + name + ": f32;"
	}
	return "var " + name + ": f32 = " + expr + ";"
}

func (wgslDialect) DeclareVec2(name string) string {
	return "var " + name + ": vec2<f32>;"
}

func (wgslDialect) DeclareVec3(name, expr string) string {
	return "var " + name + ": vec3<f32> = " + expr + ";"
}

func (wgslDialect) Vec3Literal(x, y, z float64) string {
	return fmt.Sprintf("vec3<f32>(%s, %s, %s)", floatLiteral(x), floatLiteral(y), floatLiteral(z))
}

func (wgslDialect) IntTrunc(expr string) string {
	return "f32(i32(" + expr + "))"
}

func (wgslDialect) HelperHeader(name string) string {
	return "fn " + name + "(f: f32) -> vec2<f32>"
}

// StoreRGB goes through a temporary: WGSL rejects assignment to a
// multi-component swizzle. The temporary is block-scoped, so the fixed
// name cannot collide across emitted blocks.
func (wgslDialect) StoreRGB(pixel, expr string) []string {
	return []string{
		"let newRGB = " + expr + ";",
		pixel + ".r = newRGB.r;",
		pixel + ".g = newRGB.g;",
		pixel + ".b = newRGB.b;",
	}
}

func (wgslDialect) EntryBegin(pixel string) []string {
	return []string{
		"@fragment",
		"fn fs_main(@location(0) inColor: vec4<f32>) -> @location(0) vec4<f32> {",
		"    var " + pixel + ": vec4<f32> = inColor;",
	}
}

func (wgslDialect) EntryEnd(pixel string) []string {
	return []string{
		"    return " + pixel + ";",
		"}",
	}
}
