package ocio

import (
	"strings"
	"testing"
)

func TestFloatLiteral(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.0"},
		{1, "1.0"},
		{0.5, "0.5"},
		{-3, "-3.0"},
		{65504, "65504.0"},
		{1e-8, "1e-08"},
		{4095, "4095.0"},
	}
	for _, tt := range tests {
		if got := floatLiteral(tt.in); got != tt.want {
			t.Errorf("floatLiteral(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestShaderTextIndentation(t *testing.T) {
	st := &shaderText{}
	st.line("void f()")
	st.line("{")
	st.indent()
	st.line("first;")
	st.line("a\nb")
	st.line("")
	st.dedent()
	st.line("}")

	want := "void f()\n{\n    first;\n    a\n    b\n\n}\n"
	if got := st.String(); got != want {
		t.Errorf("shaderText output:\n%q\nwant:\n%q", got, want)
	}
}

func TestGLSLDialect330(t *testing.T) {
	d := NewGLSLDialect(GLSL330)
	if d.Name() != "glsl330" {
		t.Errorf("Name = %q", d.Name())
	}
	if h := d.Header(); h[0] != "#version 330 core" {
		t.Errorf("header starts with %q", h[0])
	}
	if got := d.DeclareTex2D("lut", 0); got != "uniform sampler2D lut;" {
		t.Errorf("DeclareTex2D = %q", got)
	}
	if got := d.SampleTex2D("lut", "pos"); got != "texture(lut, pos)" {
		t.Errorf("SampleTex2D = %q", got)
	}
	if got := d.SampleTex1D("lut", "c"); got != "texture(lut, c)" {
		t.Errorf("SampleTex1D = %q", got)
	}
	if got := d.IntTrunc("x / y"); got != "float(int(x / y))" {
		t.Errorf("IntTrunc = %q", got)
	}
	if got := d.HelperHeader("lut_computePos"); got != "vec2 lut_computePos(float f)" {
		t.Errorf("HelperHeader = %q", got)
	}
	if got := d.StoreRGB("px", "v"); len(got) != 1 || got[0] != "px.rgb = v;" {
		t.Errorf("StoreRGB = %q", got)
	}
	if got := d.DeclareFloat("x", ""); got != "float x;" {
		t.Errorf("bare DeclareFloat = %q", got)
	}
	if got := d.Vec3Literal(1, 0.5, 0); got != "vec3(1.0, 0.5, 0.0)" {
		t.Errorf("Vec3Literal = %q", got)
	}

	end := d.EntryEnd("px")
	if !strings.Contains(strings.Join(end, "\n"), "fragColor = px;") {
		t.Errorf("EntryEnd = %q", end)
	}
}

func TestGLSLDialect120(t *testing.T) {
	d := NewGLSLDialect(GLSL120)
	if d.Name() != "glsl120" {
		t.Errorf("Name = %q", d.Name())
	}
	if h := d.Header(); h[0] != "#version 120" {
		t.Errorf("header starts with %q", h[0])
	}
	if got := d.SampleTex2D("lut", "pos"); got != "texture2D(lut, pos)" {
		t.Errorf("SampleTex2D = %q", got)
	}
	if got := d.SampleTex1D("lut", "c"); got != "texture1D(lut, c)" {
		t.Errorf("SampleTex1D = %q", got)
	}
	end := strings.Join(d.EntryEnd("px"), "\n")
	if !strings.Contains(end, "gl_FragColor = px;") {
		t.Errorf("EntryEnd = %q", end)
	}
}

func TestWGSLDialect(t *testing.T) {
	d := NewWGSLDialect()
	if d.Name() != "wgsl" {
		t.Errorf("Name = %q", d.Name())
	}
	if d.Header() != nil {
		t.Errorf("Header = %q, want none", d.Header())
	}

	decl := d.DeclareTex2D("lut", 4)
	if !strings.Contains(decl, "@group(0) @binding(4) var lut: texture_2d<f32>;") {
		t.Errorf("DeclareTex2D texture line missing: %q", decl)
	}
	if !strings.Contains(decl, "@group(0) @binding(5) var lut_sampler: sampler;") {
		t.Errorf("DeclareTex2D sampler line missing: %q", decl)
	}

	if got := d.SampleTex2D("lut", "pos"); got != "textureSample(lut, lut_sampler, pos)" {
		t.Errorf("SampleTex2D = %q", got)
	}
	if got := d.DeclareFloat("x", "1.0"); got != "var x: f32 = 1.0;" {
		t.Errorf("DeclareFloat = %q", got)
	}
	if got := d.IntTrunc("x"); got != "f32(i32(x))" {
		t.Errorf("IntTrunc = %q", got)
	}
	if got := d.HelperHeader("p"); got != "fn p(f: f32) -> vec2<f32>" {
		t.Errorf("HelperHeader = %q", got)
	}
	if got := d.Vec3Literal(15, 15, 15); got != "vec3<f32>(15.0, 15.0, 15.0)" {
		t.Errorf("Vec3Literal = %q", got)
	}

	// Multi-component swizzle stores go through a temporary.
	store := d.StoreRGB("px", "minv + delta")
	if len(store) != 4 || store[0] != "let newRGB = minv + delta;" {
		t.Errorf("StoreRGB = %q", store)
	}
	if store[1] != "px.r = newRGB.r;" {
		t.Errorf("StoreRGB component line = %q", store[1])
	}
}
