// Package pslg owns the mutable vertex set and edge list of one
// in-progress face: a planar straight-line graph, built from a raw
// polygon boundary and rewritten in place by split and dedup until no
// two edges cross in their interiors.
package pslg

import (
	"github.com/solidgen/polysplit/pkg/model"
	"github.com/solidgen/polysplit/pkg/segint"
	"github.com/solidgen/polysplit/pkg/status"
	"github.com/solidgen/polysplit/pkg/vec"
)

// BucketBits is the aligned-capacity bucket size (2^BucketBits) used when
// growing a PSLG's V/E backing arrays. Overridable at startup to tune
// allocation granularity; kept equal to model.BucketBits by convention,
// not enforced.
var BucketBits = 4

// Edge is an unordered pair of positions into a PSLG's V.
type Edge struct {
	U, V int
}

func (e Edge) has(pos int) bool { return e.U == pos || e.V == pos }

// Other returns the endpoint of e that is not pos.
func (e Edge) Other(pos int) int {
	if e.U == pos {
		return e.V
	}
	return e.U
}

// sameUnordered reports whether e and o connect the same unordered pair.
func (e Edge) sameUnordered(o Edge) bool {
	return (e.U == o.U && e.V == o.V) || (e.U == o.V && e.V == o.U)
}

// PSLG is a planar straight-line graph: a vertex set V, an edge list E over
// positions in V, and the originating polygon kept for FaceData and
// provenance. V and E are each backed by an array held at an aligned
// capacity (model.AlignedCapacity); capacity changes only when the aligned
// capacity of the new count differs from the current one.
type PSLG struct {
	V    []vec.Vec3
	E    []Edge
	Poly model.PolygonRaw
	Eps  float32
}

// FromPolygon copies the polygon's boundary into a PSLG and assigns edges in
// cyclic order: edge i connects vertex i to vertex (i+1) mod n.
func FromPolygon(poly model.PolygonRaw, eps float32) PSLG {
	n := len(poly.Vertices)
	p := PSLG{
		V:    make([]vec.Vec3, n, model.AlignedCapacity(n, BucketBits)),
		E:    make([]Edge, n, model.AlignedCapacity(n, BucketBits)),
		Poly: poly,
		Eps:  eps,
	}
	copy(p.V, poly.Vertices)
	for i := 0; i < n; i++ {
		p.E[i] = Edge{U: i, V: (i + 1) % n}
	}
	return p
}

func (p *PSLG) appendVertex(v vec.Vec3) int {
	n := len(p.V) + 1
	if cap(p.V) < n && model.AlignedCapacity(n, BucketBits) != model.AlignedCapacity(len(p.V), BucketBits) {
		grown := make([]vec.Vec3, len(p.V), model.AlignedCapacity(n, BucketBits))
		copy(grown, p.V)
		p.V = grown
	}
	p.V = append(p.V, v)
	return len(p.V) - 1
}

func (p *PSLG) appendEdge(e Edge) {
	n := len(p.E) + 1
	if cap(p.E) < n && model.AlignedCapacity(n, BucketBits) != model.AlignedCapacity(len(p.E), BucketBits) {
		grown := make([]Edge, len(p.E), model.AlignedCapacity(n, BucketBits))
		copy(grown, p.E)
		p.E = grown
	}
	p.E = append(p.E, e)
}

// Split attempts to split e1 and e2 at their intersection. If the two edges
// share a vertex position, or the intersector finds no crossing, Split is a
// no-op. On success it appends the intersection point as a new vertex w,
// rewrites e1 and e2 to end at w, and appends two edges closing each
// original endpoint to w: |V| grows by exactly 1, |E| by exactly 2.
func Split(p *PSLG, e1, e2 int) status.Class {
	a, b := p.E[e1], p.E[e2]
	if a.U == b.U || a.U == b.V || a.V == b.U || a.V == b.V {
		return status.NoOp
	}

	pt, ok := segint.Intersect(p.V[a.U], p.V[a.V], p.V[b.U], p.V[b.V], p.Eps)
	if !ok {
		return status.NoOp
	}

	w := p.appendVertex(pt)

	u1, v1 := a.U, a.V
	u2, v2 := b.U, b.V

	p.E[e1] = Edge{U: u1, V: w}
	p.E[e2] = Edge{U: u2, V: w}
	p.appendEdge(Edge{U: v1, V: w})
	p.appendEdge(Edge{U: v2, V: w})

	return status.Success
}

// DedupVertex finds the first pair of positions i < j with V[i] ≈ V[j],
// removes position j by shifting V down, and rewrites every edge endpoint
// equal to j as i and every endpoint greater than j as one less. It is
// idempotent and reports NoOp once no duplicate pair remains; callers
// iterate it to fixpoint.
func DedupVertex(p *PSLG) status.Class {
	n := len(p.V)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if !p.V[i].Equal(p.V[j], p.Eps) {
				continue
			}
			p.V = append(p.V[:j], p.V[j+1:]...)
			for k := range p.E {
				if p.E[k].U == j {
					p.E[k].U = i
				} else if p.E[k].U > j {
					p.E[k].U--
				}
				if p.E[k].V == j {
					p.E[k].V = i
				} else if p.E[k].V > j {
					p.E[k].V--
				}
			}
			p.shrinkVertices()
			return status.Success
		}
	}
	return status.NoOp
}

// DedupEdge finds the first pair of edge positions encoding the same
// unordered vertex pair and removes the later one. It is idempotent and
// reports NoOp once no duplicate remains; callers iterate it to fixpoint.
func DedupEdge(p *PSLG) status.Class {
	n := len(p.E)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if !p.E[i].sameUnordered(p.E[j]) {
				continue
			}
			p.E = append(p.E[:j], p.E[j+1:]...)
			p.shrinkEdges()
			return status.Success
		}
	}
	return status.NoOp
}

// Dedup runs DedupVertex to fixpoint, then DedupEdge to fixpoint.
func Dedup(p *PSLG) status.Class {
	changed := false
	for DedupVertex(p) == status.Success {
		changed = true
	}
	for DedupEdge(p) == status.Success {
		changed = true
	}
	if changed {
		return status.Success
	}
	return status.NoOp
}

// shrinkVertices requests the aligned-capacity backing array be shrunk to
// fit the current count, per the storage policy's explicit shrink-on-dedup
// behavior.
func (p *PSLG) shrinkVertices() {
	want := model.AlignedCapacity(len(p.V), BucketBits)
	if cap(p.V) == want {
		return
	}
	shrunk := make([]vec.Vec3, len(p.V), want)
	copy(shrunk, p.V)
	p.V = shrunk
}

func (p *PSLG) shrinkEdges() {
	want := model.AlignedCapacity(len(p.E), BucketBits)
	if cap(p.E) == want {
		return
	}
	shrunk := make([]Edge, len(p.E), want)
	copy(shrunk, p.E)
	p.E = shrunk
}

// Degree returns how many edges in p.E are incident to vertex position pos.
func (p *PSLG) Degree(pos int) int {
	n := 0
	for _, e := range p.E {
		if e.has(pos) {
			n++
		}
	}
	return n
}

// EdgesAt returns the positions within p.E of the edges incident to pos.
func (p *PSLG) EdgesAt(pos int) []int {
	var out []int
	for i, e := range p.E {
		if e.has(pos) {
			out = append(out, i)
		}
	}
	return out
}
