package gpu

import (
	_ "embed"
	"fmt"

	"github.com/gogpu/naga"
)

// Embedded glyph shader source.
//
//go:embed shaders/glyph.wgsl
var glyphShaderSource string

// Shader entry points.
const (
	VertexEntryPoint   = "vs_main"
	FragmentEntryPoint = "fs_main"
)

// ShaderSource returns the WGSL source of the glyph shader.
func ShaderSource() string { return glyphShaderSource }

// CompileShader compiles the glyph shader to SPIR-V.
func CompileShader() ([]byte, error) {
	spirv, err := naga.Compile(glyphShaderSource)
	if err != nil {
		return nil, fmt.Errorf("gpu: compile glyph shader: %w", err)
	}
	return spirv, nil
}
