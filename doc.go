// Package ocio generates GPU shader code for 1D color lookup tables.
//
// # Overview
//
// A 1D LUT applies the same transfer curve to the red, green and blue
// channels of a pixel. To evaluate the curve on the GPU, the table is
// uploaded as a texture and a small shader fragment computes texture
// coordinates and samples it once per channel. This package produces both
// artifacts: the texture-ready data buffer and the shader source fragments.
//
// # Quick Start
//
//	import ocio "github.com/jmertic/OpenColorIO"
//
//	// Build a gamma 2.2 LUT with 1024 entries.
//	lut, _ := ocio.NewLUT1DFromCurve(1024, func(x float32) float32 {
//	    return float32(math.Pow(float64(x), 2.2))
//	})
//
//	// Emit the lookup code into a shader program.
//	prog, _ := ocio.NewProgram(ocio.NewGLSLDialect(ocio.GLSL330))
//	if err := prog.AddLUT1D(lut); err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(prog.ShaderText())
//
// # Architecture
//
// The library is organized into:
//   - Public API: LUT1D, Program, Dialect, TextureResource
//   - Texture packing: row-overlap padding for (width-1)-pitch addressing
//   - Shader emission: per-LUT addressing mode selection and code generation
//   - internal/half: reference IEEE-754 binary16 codec used for verification
//   - gpu/: GPU texture resources via gogpu/wgpu and gogpu/gputypes
//   - integration/gpuctx/: texture upload through gogpu/gpucontext
//
// # Shading Dialects
//
// Emission logic is written once against the Dialect interface. Supported
// targets are GLSL (3.30 core and legacy 1.20) and WGSL. WGSL programs can
// additionally be compiled to SPIR-V through gogpu/naga for validation.
//
// # Large and Half-Domain Tables
//
// Tables longer than the maximum texture width are folded into a 2D texture
// whose rows overlap by one texel, preserving interpolation continuity
// across row breaks. Half-domain tables are indexed by the bit pattern of
// the input rounded to a half-precision float; the pattern is reconstructed
// with ordinary floating-point arithmetic because the target shading
// languages expose no integer bit operations.
package ocio

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
