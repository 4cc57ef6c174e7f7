package ocio

import (
	"errors"
	"fmt"

	"github.com/jmertic/OpenColorIO/internal/half"
)

// ErrHalfDomainLength is returned for a half-domain LUT whose length is
// not one entry per representable half value.
var ErrHalfDomainLength = errors.New("ocio: half-domain LUT must have 65536 entries")

// halfDomainEntries is one table slot per 16-bit pattern.
const halfDomainEntries = 1 << 16

// AddLUT1D emits the processing for one 1D LUT into the program: it packs
// the table into a texture buffer, registers it, and appends the shader
// fragments that sample it once per channel.
//
// Registration is deduplicated by the LUT's cache ID: adding a LUT whose
// content was already registered reuses the existing texture and emits no
// second declaration or helper, only a new per-pixel block. Precondition
// violations abort before the program is touched.
func (p *Program) AddLUT1D(lut *LUT1D) error {
	if lut == nil {
		return ErrNilLUT
	}
	length := lut.Length()
	if lut.HalfDomain() && length != halfDomainEntries {
		return fmt.Errorf("%w: got %d", ErrHalfDomainLength, length)
	}

	width, height := lutGrid(length, p.maxTextureWidth)
	mode := chooseAddressing(lut, height)

	tex, ok := p.TextureByCacheID(lut.CacheID())
	if ok {
		// Same content already uploaded; share the texture.
		width, height = tex.Width, tex.Height
	} else {
		packed, err := PadLUTChannels(width, height, lut.Values())
		if err != nil {
			return err
		}
		name := fmt.Sprintf("%slut1d_%d", p.resourcePrefix, len(p.textures))
		dims := 2
		if mode == addressDirect1D {
			dims = 1
		}
		if err := p.RegisterTexture(name, lut.CacheID(), width, height, dims,
			ChannelLayoutRGB, lut.Interpolation(), packed); err != nil {
			return err
		}
		tex = p.byName[name]
	}

	if !p.helperDone[tex.Name] {
		st := &shaderText{}
		if mode == addressDirect1D {
			st.line(p.dialect.DeclareTex1D(tex.Name, tex.Slot))
		} else {
			st.line(p.dialect.DeclareTex2D(tex.Name, tex.Slot))
		}
		p.AppendDeclaration(st.String())

		if mode != addressDirect1D {
			p.AppendHelper(buildLUT1DHelper(p.dialect, tex.Name, mode, length, width, height))
		}
		p.helperDone[tex.Name] = true
	}

	p.AppendFunctionBody(buildLUT1DPixelBlock(p.dialect, p.pixelName, tex.Name, mode, length, lut.HueAdjust()))

	Logger().Debug("ocio: emitted 1D LUT",
		"name", tex.Name, "mode", mode.String(), "length", length,
		"width", width, "height", height, "hueAdjust", lut.HueAdjust().String())
	return nil
}

// buildLUT1DHelper emits the coordinate-computation helper shared by the
// three per-channel lookups of one row-folded LUT.
func buildLUT1DHelper(d Dialect, name string, mode addressing, length, width, height int) string {
	pitch := floatLiteral(float64(width - 1))

	st := &shaderText{}
	st.line(d.HelperHeader(name + "_computePos"))
	st.line("{")
	st.indent()

	if mode == addressHalfDomain2D {
		// Reconstruct the half bit pattern of f from exponent and mantissa.
		// Raw patterns of NaN inputs cannot be produced with floating-point
		// operations; finite inputs cover [0, 65535].
		st.line(d.DeclareFloat("dep", ""))
		st.line(d.DeclareFloat("abs_f", "abs(f)"))
		st.line("if (abs_f > " + floatLiteral(half.NormMin) + ")")
		st.line("{")
		st.indent()
		st.line(d.DeclareVec3("fComp", d.Vec3Literal(half.ExpBias, half.ExpBias, half.ExpBias)))
		st.line(d.DeclareFloat("absarr", "min(abs_f, "+floatLiteral(half.Max)+")"))
		st.line("fComp.x = floor(log2(absarr));")
		st.line(d.DeclareFloat("lower", "pow(2.0, fComp.x)"))
		st.line("fComp.y = (absarr - lower) / lower;")
		st.line(d.DeclareVec3("scale", d.Vec3Literal(half.ExpScale, half.ExpScale, half.ExpScale)))
		// dep = (exponent + mantissa + bias) * scale, via one dot product.
		st.line("dep = dot(fComp, scale);")
		st.dedent()
		st.line("}")
		st.line("else")
		st.line("{")
		st.indent()
		st.line("dep = abs_f * 1023.0 / " + floatLiteral(half.DenormMax) + ";")
		st.dedent()
		st.line("}")
		st.line("dep += step(f, 0.0) * " + floatLiteral(half.SignOffset) + ";")
		st.line(d.DeclareVec2("retVal"))
		st.line("retVal.y = floor(dep / " + pitch + ");")
		st.line("retVal.x = dep - retVal.y * " + pitch + ";")
	} else {
		// min() protects against f > 1 producing a bogus column.
		st.line(d.DeclareFloat("dep", "min(f, 1.0) * "+floatLiteral(float64(length-1))))
		st.line(d.DeclareVec2("retVal"))
		st.line("retVal.y = " + d.IntTrunc("dep / "+pitch) + ";")
		st.line("retVal.x = dep - retVal.y * " + pitch + ";")
	}

	st.line("retVal.x = (retVal.x + 0.5) / " + floatLiteral(float64(width)) + ";")
	st.line("retVal.y = (retVal.y + 0.5) / " + floatLiteral(float64(height)) + ";")
	st.line("return retVal;")
	st.dedent()
	st.line("}")
	return st.String()
}

// buildLUT1DPixelBlock emits the per-pixel code applying one LUT to the
// three channels of pix, optionally wrapped in the DW3 hue adjustment.
func buildLUT1DPixelBlock(d Dialect, pix, name string, mode addressing, length int, hue HueAdjust) string {
	st := &shaderText{}
	st.indent() // body sits one level inside the entry point

	st.line("")
	st.line("// 1D LUT processing for " + name)
	st.line("")
	st.line("{")
	st.indent()

	if hue == HueAdjustDW3 {
		// Record chroma before the lookups distort it. The cyclic swizzles
		// extract the channel-order-independent max and min.
		st.line(d.DeclareVec3("maxval", "max("+pix+".rgb, max("+pix+".gbr, "+pix+".brg))"))
		st.line(d.DeclareVec3("minval", "min("+pix+".rgb, min("+pix+".gbr, "+pix+".brg))"))
		st.line(d.DeclareFloat("oldChroma", "max("+floatLiteral(1e-8)+", maxval.r - minval.r)"))
		st.line(d.DeclareVec3("delta", pix+".rgb - minval"))
		st.line("")
	}

	channels := [3]string{"r", "g", "b"}
	if mode == addressDirect1D {
		dim := float64(length)
		coords := name + "_coords"
		st.line(d.DeclareVec3(coords,
			"(min("+pix+".rgb, "+d.Vec3Literal(1, 1, 1)+") * "+d.Vec3Literal(dim-1, dim-1, dim-1)+
				" + "+d.Vec3Literal(0.5, 0.5, 0.5)+") / "+d.Vec3Literal(dim, dim, dim)))
		for _, ch := range channels {
			st.line(pix + "." + ch + " = " + d.SampleTex1D(name, coords+"."+ch) + "." + ch + ";")
		}
	} else {
		for _, ch := range channels {
			pos := name + "_computePos(" + pix + "." + ch + ")"
			st.line(pix + "." + ch + " = " + d.SampleTex2D(name, pos) + "." + ch + ";")
		}
	}

	if hue == HueAdjustDW3 {
		st.line("")
		// Rescale the delta from the channel minimum by the chroma ratio.
		st.line(d.DeclareVec3("maxval2", "max("+pix+".rgb, max("+pix+".gbr, "+pix+".brg))"))
		st.line(d.DeclareVec3("minval2", "min("+pix+".rgb, min("+pix+".gbr, "+pix+".brg))"))
		st.line(d.DeclareFloat("newChroma", "maxval2.r - minval2.r"))
		st.lines(d.StoreRGB(pix, "minval2.r + delta * newChroma / oldChroma"))
	}

	st.dedent()
	st.line("}")
	return st.String()
}
