// Package sink implements the triangle sink boundary: consumers that take
// the TriangleRaw stream the core produces and turn it into an on-disk or
// on-GPU representation. The two sinks are a binary STL writer/reader and
// an interleaved GPU vertex buffer.
package sink

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/solidgen/polysplit/pkg/model"
	"github.com/solidgen/polysplit/pkg/status"
	"github.com/solidgen/polysplit/pkg/vec"
)

const (
	stlHeaderSize   = 80
	stlTriangleSize = 50 // 12 (normal) + 12*3 (vertices) + 2 (attribute byte count)
)

// WriteSTL writes tri as binary STL: an 80-byte zero header, a
// little-endian uint32 triangle count, then for each triangle four
// little-endian float32 triples (normal, v0, v1, v2) followed by a 16-bit
// zero attribute word. The normal written is FaceData.Normal, not a
// recomputed one, matching the core's "never trust triangle winding"
// stance.
func WriteSTL(w io.Writer, tri *model.Triangulation) error {
	var header [stlHeaderSize]byte
	if _, err := w.Write(header[:]); err != nil {
		return status.New(status.Fatal, status.SiteSinkWrite, fmt.Errorf("stl: header: %w", err))
	}

	count := uint32(tri.Len())
	if err := binary.Write(w, binary.LittleEndian, count); err != nil {
		return status.New(status.Fatal, status.SiteSinkWrite, fmt.Errorf("stl: triangle count: %w", err))
	}

	buf := make([]byte, stlTriangleSize)
	for i := 0; i < tri.Len(); i++ {
		t := tri.At(i)
		putVec3(buf[0:12], t.Data.Normal)
		putVec3(buf[12:24], t.V0)
		putVec3(buf[24:36], t.V1)
		putVec3(buf[36:48], t.V2)
		buf[48], buf[49] = 0, 0
		if _, err := w.Write(buf); err != nil {
			return status.New(status.Fatal, status.SiteSinkWrite, fmt.Errorf("stl: triangle %d: %w", i, err))
		}
	}
	return nil
}

func putVec3(b []byte, v vec.Vec3) {
	binary.LittleEndian.PutUint32(b[0:4], math.Float32bits(v.X))
	binary.LittleEndian.PutUint32(b[4:8], math.Float32bits(v.Y))
	binary.LittleEndian.PutUint32(b[8:12], math.Float32bits(v.Z))
}

// ReadSTL parses a binary STL stream into a Triangulation. Every triangle's
// FaceData carries the file's own normal and an opaque white color, since
// binary STL has no per-triangle color field in the common convention this
// sink targets.
func ReadSTL(r io.Reader) (*model.Triangulation, error) {
	var header [stlHeaderSize]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, fmt.Errorf("stl: header: %w", err)
	}

	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("stl: triangle count: %w", err)
	}

	out := model.NewTriangulation()
	buf := make([]byte, stlTriangleSize)
	for i := uint32(0); i < count; i++ {
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, fmt.Errorf("stl: triangle %d: %w", i, err)
		}
		normal := getVec3(buf[0:12])
		v0 := getVec3(buf[12:24])
		v1 := getVec3(buf[24:36])
		v2 := getVec3(buf[36:48])
		out.Append(model.TriangleRaw{
			V0:   v0,
			V1:   v1,
			V2:   v2,
			Data: model.NewFaceData(255, 255, 255, 255, normal),
		})
	}
	return out, nil
}

func getVec3(b []byte) vec.Vec3 {
	x := math.Float32frombits(binary.LittleEndian.Uint32(b[0:4]))
	y := math.Float32frombits(binary.LittleEndian.Uint32(b[4:8]))
	z := math.Float32frombits(binary.LittleEndian.Uint32(b[8:12]))
	return vec.New(x, y, z)
}
