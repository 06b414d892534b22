// Package gpu implements backend.TextureBackend on top of a host-provided
// gpucontext.TextureCreator.
//
// The engine does not own a GPU device. The host application (for example a
// gogpu window) hands the backend a TextureCreator; atlases are expanded to
// RGBA and uploaded through it. Each texture keeps a CPU shadow copy, so
// Readback never stalls on the GPU.
//
// DrawTexturedRect does not render immediately. Glyph rectangles are
// converted to GlyphQuads and collected into per-texture Batches, which the
// host retrieves with Flush and renders with its own pipeline. VertexLayout
// and the embedded WGSL shader (see CompileShader) describe the vertex
// format that pipeline must use:
//
//	position  (vec2<f32>)  location 0
//	tex_coord (vec2<f32>)  location 1
//	color     (unorm8x4)   location 2
package gpu
