// Package backend defines the texture backend that glyph atlases are
// uploaded to and drawn from.
//
// The engine never talks to a GPU or a window directly. A TextureBackend
// owns texture handles and knows how to upload a Bitmap, read one back,
// replace its contents, and draw a tinted sub-rectangle of it. Two
// implementations ship with the module:
//
//   - backend/software: textures stay in memory, draws composite onto an
//     *image.RGBA. Useful for tests, headless rendering and tooling.
//   - backend/gpu: textures are created through a host-provided
//     gpucontext.TextureCreator, draws are batched into glyph quads.
//
// # Bitmap format
//
// Atlases are stored as two channels per pixel: a color channel and an
// alpha channel. Glyph coverage goes to alpha; the color channel is set to
// full intensity wherever coverage is non-zero, so tinted blending never
// pulls dark fringes from the texture.
package backend
