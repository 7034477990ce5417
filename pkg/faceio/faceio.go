// Package faceio supplies the polyhedron driver's "face reader" boundary:
// adapters that turn a textual or binary model format into a
// model.Polyhedron, the shared-vertex-table-plus-indexed-faces shape the
// core consumes opaquely (coordinates are never validated beyond bounds).
package faceio

import (
	"io"

	"github.com/solidgen/polysplit/pkg/model"
)

// Reader reads a complete polyhedron from r.
type Reader interface {
	Read(r io.Reader) (model.Polyhedron, error)
}
