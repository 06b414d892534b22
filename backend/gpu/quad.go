package gpu

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// VertexStride is the byte stride per glyph vertex.
//
//	position  (vec2<f32>) = 8 bytes
//	tex_coord (vec2<f32>) = 8 bytes
//	color     (unorm8x4)  = 4 bytes
const VertexStride = 20

// MaxQuadsPerBatch bounds a batch so its vertices stay addressable with
// uint16 indices.
const MaxQuadsPerBatch = math.MaxUint16 / 4

// AtlasFormat is the texture format atlases are uploaded in.
const AtlasFormat = gputypes.TextureFormatRGBA8Unorm

// GlyphQuad is one tinted, textured glyph rectangle.
type GlyphQuad struct {
	// Destination corners in pixels, y down.
	X0, Y0, X1, Y1 float32

	// Atlas coordinates in [0, 1]. V0 > V1 for a flipped source.
	U0, V0, U1, V1 float32

	// Non-premultiplied RGBA tint.
	Color [4]uint8
}

// Batch is a run of quads sampling the same texture, in draw order.
type Batch struct {
	Texture gpucontext.Texture
	Quads   []GlyphQuad
}

// VertexLayout returns the vertex buffer layout of the glyph pipeline.
func VertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: VertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},  // position
				{Format: gputypes.VertexFormatFloat32x2, Offset: 8, ShaderLocation: 1},  // tex_coord
				{Format: gputypes.VertexFormatUnorm8x4, Offset: 16, ShaderLocation: 2}, // color
			},
		},
	}
}

// Vertices serializes the batch into raw vertex bytes, four vertices per
// quad: top-left, top-right, bottom-right, bottom-left.
func (b *Batch) Vertices() []byte {
	if len(b.Quads) == 0 {
		return nil
	}
	data := make([]byte, len(b.Quads)*4*VertexStride)
	off := 0
	for _, q := range b.Quads {
		writeVertex(data[off:], q.X0, q.Y0, q.U0, q.V0, q.Color)
		off += VertexStride
		writeVertex(data[off:], q.X1, q.Y0, q.U1, q.V0, q.Color)
		off += VertexStride
		writeVertex(data[off:], q.X1, q.Y1, q.U1, q.V1, q.Color)
		off += VertexStride
		writeVertex(data[off:], q.X0, q.Y1, q.U0, q.V1, q.Color)
		off += VertexStride
	}
	return data
}

// Indices returns the triangle list indices for the batch (0,1,2, 2,3,0
// per quad).
func (b *Batch) Indices() []uint16 {
	indices := make([]uint16, len(b.Quads)*6)
	for i := range b.Quads {
		base := i * 6
		v := uint16(i * 4) //nolint:gosec // bounded by MaxQuadsPerBatch
		indices[base+0] = v + 0
		indices[base+1] = v + 1
		indices[base+2] = v + 2
		indices[base+3] = v + 2
		indices[base+4] = v + 3
		indices[base+5] = v + 0
	}
	return indices
}

func writeVertex(buf []byte, x, y, u, v float32, c [4]uint8) {
	binary.LittleEndian.PutUint32(buf[0:], math.Float32bits(x))
	binary.LittleEndian.PutUint32(buf[4:], math.Float32bits(y))
	binary.LittleEndian.PutUint32(buf[8:], math.Float32bits(u))
	binary.LittleEndian.PutUint32(buf[12:], math.Float32bits(v))
	copy(buf[16:20], c[:])
}

// OrthoProjection returns a column-major 4×4 matrix mapping pixel
// coordinates (origin top-left, y down) of a width × height target to clip
// space. It fills the transform field of the shader uniforms.
func OrthoProjection(width, height float32) [16]float32 {
	if width <= 0 || height <= 0 {
		return [16]float32{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}
	}
	return [16]float32{
		2 / width, 0, 0, 0,
		0, -2 / height, 0, 0,
		0, 0, 1, 0,
		-1, 1, 0, 1,
	}
}
