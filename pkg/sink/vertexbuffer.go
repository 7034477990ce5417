package sink

import (
	"encoding/binary"
	"math"

	"github.com/solidgen/polysplit/pkg/model"
	"github.com/solidgen/polysplit/pkg/vec"
)

// bytesPerVertex is the size of one interleaved GPU vertex record:
// position (3 float32) + normal (3 float32) + packed RGBA color (4 uint8).
const bytesPerVertex = 28

// VertexBuffer holds a flat, interleaved GPU-ready vertex stream: three
// vertices per triangle, each record laid out as
// (position[3]float32, normal[3]float32, color[4]uint8), flattened to raw
// bytes for upload instead of Go structs.
type VertexBuffer struct {
	Data []byte
}

// VertexCount returns the number of vertex records in the buffer.
func (b *VertexBuffer) VertexCount() int {
	return len(b.Data) / bytesPerVertex
}

// BuildVertexBuffer flattens every triangle in tri into an interleaved GPU
// vertex buffer, three vertices per triangle, each inheriting its
// triangle's FaceData color and normal verbatim (no per-vertex averaging:
// every triangle is flat-shaded, since FaceData carries one normal and one
// color per face).
func BuildVertexBuffer(tri *model.Triangulation) *VertexBuffer {
	buf := &VertexBuffer{Data: make([]byte, 0, tri.Len()*3*bytesPerVertex)}
	for i := 0; i < tri.Len(); i++ {
		t := tri.At(i)
		r, g, bl, a := t.Data.RGBA()
		buf.appendVertex(t.V0, t.Data.Normal, r, g, bl, a)
		buf.appendVertex(t.V1, t.Data.Normal, r, g, bl, a)
		buf.appendVertex(t.V2, t.Data.Normal, r, g, bl, a)
	}
	return buf
}

func (b *VertexBuffer) appendVertex(pos, normal vec.Vec3, r, g, bl, a uint8) {
	var rec [bytesPerVertex]byte
	binary.LittleEndian.PutUint32(rec[0:4], math.Float32bits(pos.X))
	binary.LittleEndian.PutUint32(rec[4:8], math.Float32bits(pos.Y))
	binary.LittleEndian.PutUint32(rec[8:12], math.Float32bits(pos.Z))
	binary.LittleEndian.PutUint32(rec[12:16], math.Float32bits(normal.X))
	binary.LittleEndian.PutUint32(rec[16:20], math.Float32bits(normal.Y))
	binary.LittleEndian.PutUint32(rec[20:24], math.Float32bits(normal.Z))
	rec[24], rec[25], rec[26], rec[27] = r, g, bl, a
	b.Data = append(b.Data, rec[:]...)
}
