package ocio

import (
	"errors"
	"fmt"

	"github.com/gogpu/naga"
)

// ErrSPIRVUnsupported is returned when SPIR-V output is requested from a
// program whose dialect naga cannot consume.
var ErrSPIRVUnsupported = errors.New("ocio: SPIR-V output requires the WGSL dialect")

// CompileSPIRV compiles the assembled shader to SPIR-V through gogpu/naga.
// Only WGSL programs can be compiled; for other dialects use an external
// toolchain. Compiling is also the strictest validation available for
// emitted code, so tests run every WGSL variant through it.
func (p *Program) CompileSPIRV() ([]byte, error) {
	if _, ok := p.dialect.(wgslDialect); !ok {
		return nil, fmt.Errorf("%w: dialect is %s", ErrSPIRVUnsupported, p.dialect.Name())
	}
	spirv, err := naga.Compile(p.ShaderText())
	if err != nil {
		return nil, fmt.Errorf("ocio: shader compilation failed: %w", err)
	}
	return spirv, nil
}
