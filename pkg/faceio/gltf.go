package faceio

import (
	"fmt"
	"io"
	"math"

	qgltf "github.com/qmuntal/gltf"

	"github.com/solidgen/polysplit/pkg/model"
	"github.com/solidgen/polysplit/pkg/vec"
)

// GLTF reads a glTF/GLB document's triangle meshes into a Polyhedron.
// Every primitive is assumed pre-triangulated, as glTF primitives always
// are; each triangle becomes its own trivial 3-index face, opaque white,
// with a normal computed from the triangle's own geometry, since glTF's
// per-vertex normals don't map onto this engine's one-normal-per-face
// model.
type GLTF struct{}

func (GLTF) Read(r io.Reader) (model.Polyhedron, error) {
	doc := new(qgltf.Document)
	if err := qgltf.NewDecoder(r).Decode(doc); err != nil {
		return model.Polyhedron{}, fmt.Errorf("gltf: decode: %w", err)
	}

	var poly model.Polyhedron

	for _, m := range doc.Meshes {
		for _, prim := range m.Primitives {
			if prim.Mode != qgltf.PrimitiveTriangles && prim.Mode != 0 {
				continue
			}

			posIdx, ok := prim.Attributes[qgltf.POSITION]
			if !ok {
				continue
			}
			positions, err := readVec3Accessor(doc, posIdx)
			if err != nil {
				return model.Polyhedron{}, fmt.Errorf("gltf: positions: %w", err)
			}

			base := len(poly.Vertices)
			poly.Vertices = append(poly.Vertices, positions...)

			var indices []int
			if prim.Indices != nil {
				indices, err = readIndices(doc, *prim.Indices)
				if err != nil {
					return model.Polyhedron{}, fmt.Errorf("gltf: indices: %w", err)
				}
			} else {
				indices = make([]int, len(positions))
				for i := range indices {
					indices[i] = i
				}
			}

			for i := 0; i+2 < len(indices); i += 3 {
				a, b, c := base+indices[i], base+indices[i+1], base+indices[i+2]
				normal := vec.Normal(poly.Vertices[a], poly.Vertices[b], poly.Vertices[c], vec.Epsilon)
				poly.Faces = append(poly.Faces, model.PolygonIndexed{
					Indices: []int{a, b, c},
					Data:    model.FaceData{Color: 0xFFFFFFFF, Normal: normal},
				})
			}
		}
	}

	return poly, nil
}

// readVec3Accessor reads Vec3 data from a GLTF accessor.
func readVec3Accessor(doc *qgltf.Document, accessorIdx int) ([]vec.Vec3, error) {
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != qgltf.AccessorVec3 {
		return nil, fmt.Errorf("expected VEC3, got %v", accessor.Type)
	}

	data, err := readAccessorData(doc, accessor)
	if err != nil {
		return nil, err
	}

	floats, ok := data.([][3]float32)
	if !ok {
		return nil, fmt.Errorf("unexpected data type for VEC3")
	}

	result := make([]vec.Vec3, len(floats))
	for i, f := range floats {
		result[i] = vec.New(f[0], f[1], f[2])
	}
	return result, nil
}

// readIndices reads index data from a GLTF accessor of any component width.
func readIndices(doc *qgltf.Document, accessorIdx int) ([]int, error) {
	accessor := doc.Accessors[accessorIdx]

	data, err := readAccessorData(doc, accessor)
	if err != nil {
		return nil, err
	}

	switch v := data.(type) {
	case []uint8:
		result := make([]int, len(v))
		for i, x := range v {
			result[i] = int(x)
		}
		return result, nil
	case []uint16:
		result := make([]int, len(v))
		for i, x := range v {
			result[i] = int(x)
		}
		return result, nil
	case []uint32:
		result := make([]int, len(v))
		for i, x := range v {
			result[i] = int(x)
		}
		return result, nil
	default:
		return nil, fmt.Errorf("unexpected index type: %T", data)
	}
}

// readAccessorData reads raw data from a GLTF accessor, embedded-buffer
// only (external-URI buffers are not supported).
func readAccessorData(doc *qgltf.Document, accessor *qgltf.Accessor) (any, error) {
	if accessor.BufferView == nil {
		return nil, fmt.Errorf("accessor has no buffer view")
	}

	bufferView := doc.BufferViews[*accessor.BufferView]
	buffer := doc.Buffers[bufferView.Buffer]

	if buffer.URI != "" {
		return nil, fmt.Errorf("external buffers not supported")
	}
	bufData := buffer.Data
	if bufData == nil {
		return nil, fmt.Errorf("buffer has no data")
	}

	start := bufferView.ByteOffset + accessor.ByteOffset
	stride := bufferView.ByteStride
	count := accessor.Count

	switch accessor.Type {
	case qgltf.AccessorVec3:
		if stride == 0 {
			stride = 12
		}
		result := make([][3]float32, count)
		for i := 0; i < count; i++ {
			offset := start + i*stride
			for j := 0; j < 3; j++ {
				result[i][j] = readFloat32(bufData[offset+j*4:])
			}
		}
		return result, nil

	case qgltf.AccessorScalar:
		if stride == 0 {
			switch accessor.ComponentType {
			case qgltf.ComponentUbyte:
				stride = 1
			case qgltf.ComponentUshort:
				stride = 2
			case qgltf.ComponentUint:
				stride = 4
			}
		}
		switch accessor.ComponentType {
		case qgltf.ComponentUbyte:
			result := make([]uint8, count)
			for i := 0; i < count; i++ {
				result[i] = bufData[start+i*stride]
			}
			return result, nil
		case qgltf.ComponentUshort:
			result := make([]uint16, count)
			for i := 0; i < count; i++ {
				offset := start + i*stride
				result[i] = uint16(bufData[offset]) | uint16(bufData[offset+1])<<8
			}
			return result, nil
		case qgltf.ComponentUint:
			result := make([]uint32, count)
			for i := 0; i < count; i++ {
				offset := start + i*stride
				result[i] = uint32(bufData[offset]) |
					uint32(bufData[offset+1])<<8 |
					uint32(bufData[offset+2])<<16 |
					uint32(bufData[offset+3])<<24
			}
			return result, nil
		}
	}

	return nil, fmt.Errorf("unsupported accessor type: %v / %v", accessor.Type, accessor.ComponentType)
}

// readFloat32 reads a little-endian float32.
func readFloat32(b []byte) float32 {
	bits := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
	return math.Float32frombits(bits)
}
