package renderer

import (
	_ "embed"
	"fmt"

	"github.com/gogpu/naga"
)

// kernelSource is the WGSL compute kernel used by the GPU backend
//
//go:embed shaders/raytrace.wgsl
var kernelSource string

// KernelSource returns the WGSL source of the ray tracing kernel
func KernelSource() string {
	return kernelSource
}

// CompileKernel translates the WGSL kernel to SPIR-V. Backends hand WGSL to
// the driver directly; this is used to validate the kernel ahead of time.
func CompileKernel() ([]byte, error) {
	spirv, err := naga.Compile(kernelSource)
	if err != nil {
		return nil, fmt.Errorf("compile raytrace kernel: %w", err)
	}
	return spirv, nil
}
