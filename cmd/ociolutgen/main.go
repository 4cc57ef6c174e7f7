// Command ociolutgen generates fragment shader text for a 1D LUT.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"math"
	"os"

	ocio "github.com/jmertic/OpenColorIO"
)

func main() {
	var (
		dialect   = flag.String("dialect", "glsl330", "shading dialect: glsl330, glsl120 or wgsl")
		length    = flag.Int("length", 1024, "number of LUT entries")
		gamma     = flag.Float64("gamma", 2.2, "gamma exponent for the generated curve")
		maxWidth  = flag.Int("max-width", 4096, "maximum texture width")
		halfDom   = flag.Bool("half-domain", false, "index the LUT by half-float bit patterns (forces 65536 entries)")
		hueAdjust = flag.Bool("hue-adjust", false, "apply hue-preserving chroma restoration")
		spirv     = flag.Bool("spirv", false, "cross-compile WGSL output to SPIR-V and report its size")
		preview   = flag.String("preview", "", "write a PNG preview of the packed texture to this file")
		output    = flag.String("output", "", "output file (default stdout)")
	)
	flag.Parse()

	d, err := newDialect(*dialect)
	if err != nil {
		log.Fatalf("Bad dialect: %v", err)
	}

	n := *length
	if *halfDom {
		n = 65536
	}
	curve := func(t float32) float32 {
		return float32(math.Pow(float64(t), *gamma))
	}
	lut, err := ocio.NewLUT1DFromCurve(n, curve, lutOptions(*halfDom, *hueAdjust)...)
	if err != nil {
		log.Fatalf("Failed to build LUT: %v", err)
	}

	prog, err := ocio.NewProgram(d, ocio.WithMaxTextureWidth(*maxWidth))
	if err != nil {
		log.Fatalf("Failed to create program: %v", err)
	}
	if err := prog.AddLUT1D(lut); err != nil {
		log.Fatalf("Failed to add LUT: %v", err)
	}

	text := prog.ShaderText()
	if *output == "" {
		fmt.Print(text)
	} else {
		if err := os.WriteFile(*output, []byte(text), 0o644); err != nil {
			log.Fatalf("Failed to write %s: %v", *output, err)
		}
		log.Printf("Shader saved to %s (%d bytes)\n", *output, len(text))
	}

	if *spirv {
		module, err := prog.CompileSPIRV()
		if err != nil {
			log.Fatalf("SPIR-V compilation failed: %v", err)
		}
		log.Printf("SPIR-V module: %d bytes\n", len(module))
	}

	if *preview != "" {
		savePreview(prog, *preview)
	}
}

func newDialect(name string) (ocio.Dialect, error) {
	switch name {
	case "glsl330":
		return ocio.NewGLSLDialect(ocio.GLSL330), nil
	case "glsl120":
		return ocio.NewGLSLDialect(ocio.GLSL120), nil
	case "wgsl":
		return ocio.NewWGSLDialect(), nil
	}
	return nil, fmt.Errorf("unknown dialect %q", name)
}

func lutOptions(halfDomain, hueAdjust bool) []ocio.LUTOption {
	var opts []ocio.LUTOption
	if halfDomain {
		opts = append(opts, ocio.WithHalfDomain())
	}
	if hueAdjust {
		opts = append(opts, ocio.WithHueAdjust(ocio.HueAdjustDW3))
	}
	return opts
}

func savePreview(prog *ocio.Program, path string) {
	textures := prog.Textures()
	if len(textures) == 0 {
		log.Fatalf("No textures to preview")
	}
	img := textures[0].Preview(4)

	f, err := os.Create(path)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		log.Fatalf("Failed to encode preview: %v", err)
	}
	log.Printf("Preview saved to %s (%dx%d)\n", path, img.Rect.Dx(), img.Rect.Dy())
}
