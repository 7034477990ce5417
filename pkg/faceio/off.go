package faceio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/solidgen/polysplit/pkg/model"
	"github.com/solidgen/polysplit/pkg/vec"
)

// OFF reads the Geomview OFF polyhedron format: a header line "OFF",
// a counts line "n_vertices n_faces n_edges", n_vertices lines of three
// floats, then n_faces lines of "k i0 i1 ... i(k-1)" giving each face's
// vertex count and index list. Comment lines beginning with '#' and blank
// lines are skipped anywhere. Faces carry no color information in plain
// OFF, so every face's FaceData gets a normal computed from its first
// three vertices and a default opaque-white color.
type OFF struct{}

func (OFF) Read(r io.Reader) (model.Polyhedron, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	next := func() (string, bool) {
		for sc.Scan() {
			line := strings.TrimSpace(sc.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			return line, true
		}
		return "", false
	}

	header, ok := next()
	if !ok {
		return model.Polyhedron{}, fmt.Errorf("off: empty input")
	}
	if header != "OFF" && !strings.HasPrefix(header, "OFF ") {
		return model.Polyhedron{}, fmt.Errorf("off: missing OFF header, got %q", header)
	}

	countsLine := header
	if header == "OFF" {
		var ok2 bool
		countsLine, ok2 = next()
		if !ok2 {
			return model.Polyhedron{}, fmt.Errorf("off: missing counts line")
		}
	} else {
		countsLine = strings.TrimPrefix(header, "OFF")
	}

	fields := strings.Fields(countsLine)
	if len(fields) < 2 {
		return model.Polyhedron{}, fmt.Errorf("off: malformed counts line %q", countsLine)
	}
	nVerts, err := strconv.Atoi(fields[0])
	if err != nil {
		return model.Polyhedron{}, fmt.Errorf("off: vertex count: %w", err)
	}
	nFaces, err := strconv.Atoi(fields[1])
	if err != nil {
		return model.Polyhedron{}, fmt.Errorf("off: face count: %w", err)
	}

	poly := model.Polyhedron{
		Vertices: make([]vec.Vec3, 0, nVerts),
		Faces:    make([]model.PolygonIndexed, 0, nFaces),
	}

	for i := 0; i < nVerts; i++ {
		line, ok := next()
		if !ok {
			return model.Polyhedron{}, fmt.Errorf("off: expected %d vertices, found %d", nVerts, i)
		}
		f := strings.Fields(line)
		if len(f) < 3 {
			return model.Polyhedron{}, fmt.Errorf("off: vertex %d: malformed line %q", i, line)
		}
		x, err := strconv.ParseFloat(f[0], 32)
		if err != nil {
			return model.Polyhedron{}, fmt.Errorf("off: vertex %d: %w", i, err)
		}
		y, err := strconv.ParseFloat(f[1], 32)
		if err != nil {
			return model.Polyhedron{}, fmt.Errorf("off: vertex %d: %w", i, err)
		}
		z, err := strconv.ParseFloat(f[2], 32)
		if err != nil {
			return model.Polyhedron{}, fmt.Errorf("off: vertex %d: %w", i, err)
		}
		poly.Vertices = append(poly.Vertices, vec.New(float32(x), float32(y), float32(z)))
	}

	for i := 0; i < nFaces; i++ {
		line, ok := next()
		if !ok {
			return model.Polyhedron{}, fmt.Errorf("off: expected %d faces, found %d", nFaces, i)
		}
		f := strings.Fields(line)
		if len(f) < 1 {
			return model.Polyhedron{}, fmt.Errorf("off: face %d: empty line", i)
		}
		k, err := strconv.Atoi(f[0])
		if err != nil {
			return model.Polyhedron{}, fmt.Errorf("off: face %d: vertex count: %w", i, err)
		}
		if len(f) < 1+k {
			return model.Polyhedron{}, fmt.Errorf("off: face %d: expected %d indices, got %d", i, k, len(f)-1)
		}
		indices := make([]int, k)
		for j := 0; j < k; j++ {
			idx, err := strconv.Atoi(f[1+j])
			if err != nil {
				return model.Polyhedron{}, fmt.Errorf("off: face %d: index %d: %w", i, j, err)
			}
			if idx < 0 || idx >= len(poly.Vertices) {
				return model.Polyhedron{}, fmt.Errorf("off: face %d: index %d out of range [0,%d)", i, idx, len(poly.Vertices))
			}
			indices[j] = idx
		}

		var normal vec.Vec3
		if k >= 3 {
			normal = vec.Normal(poly.Vertices[indices[0]], poly.Vertices[indices[1]], poly.Vertices[indices[2]], vec.Epsilon)
		}
		poly.Faces = append(poly.Faces, model.PolygonIndexed{
			Indices: indices,
			Data:    model.NewFaceData(255, 255, 255, 255, normal),
		})
	}

	if err := sc.Err(); err != nil {
		return model.Polyhedron{}, fmt.Errorf("off: scan: %w", err)
	}

	return poly, nil
}
