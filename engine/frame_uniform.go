package engine

import (
	_ "embed"
	"encoding/binary"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// FrameUniformSize is the byte size of the frame uniform block (36 × f32).
	FrameUniformSize = 144

	frameProjectionOffset = 0
	frameViewOffset       = 64
	frameEyeOffset        = 128
	frameTimeOffset       = 140
)

// GPUFrameUniformType is the WGSL type name declared by GPUFrameUniformSource.
const GPUFrameUniformType = "FrameUniforms"

// GPUFrameUniformSource is the canonical WGSL definition of the FrameUniforms struct.
// Matches GPUFrameUniform layout exactly (144 bytes). Bind it at group 0, binding 0.
//
//go:embed assets/frame_uniform.wgsl
var GPUFrameUniformSource string

// GPUFrameUniform is the per-frame uniform block shared by every pipeline.
// Matches the WGSL FrameUniforms struct layout exactly (see GPUFrameUniformSource).
// Size: 144 bytes.
type GPUFrameUniform struct {
	Projection mgl32.Mat4 // offset   0: projection matrix, column-major (64 bytes)
	View       mgl32.Mat4 // offset  64: view matrix, column-major (64 bytes)
	Eye        mgl32.Vec3 // offset 128: camera position in world space (12 bytes)
	Time       float32    // offset 140: frame timestamp in milliseconds (4 bytes)
}

// Size returns the size of the GPUFrameUniform block in bytes.
//
// Returns:
//   - int: the size of the block in bytes.
func (g *GPUFrameUniform) Size() int {
	return FrameUniformSize
}

// Marshal serializes the GPUFrameUniform into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 144-byte buffer ready for GPU upload.
func (g *GPUFrameUniform) Marshal() []byte {
	buf := make([]byte, FrameUniformSize)
	for i, v := range g.Projection {
		binary.LittleEndian.PutUint32(buf[frameProjectionOffset+i*4:], math.Float32bits(v))
	}
	for i, v := range g.View {
		binary.LittleEndian.PutUint32(buf[frameViewOffset+i*4:], math.Float32bits(v))
	}
	binary.LittleEndian.PutUint32(buf[frameEyeOffset+0:frameEyeOffset+4], math.Float32bits(g.Eye[0]))
	binary.LittleEndian.PutUint32(buf[frameEyeOffset+4:frameEyeOffset+8], math.Float32bits(g.Eye[1]))
	binary.LittleEndian.PutUint32(buf[frameEyeOffset+8:frameEyeOffset+12], math.Float32bits(g.Eye[2]))
	binary.LittleEndian.PutUint32(buf[frameTimeOffset:frameTimeOffset+4], math.Float32bits(g.Time))
	return buf
}
