// Package triangulate drives a PSLG from a raw polygon boundary to a
// crossing-free graph (the splitter/fixpoint driver), then repeatedly
// removes degree-2 vertices to emit triangles (the ear-attack
// triangulator), and orchestrates both across every face of a polyhedron.
package triangulate

import (
	"github.com/solidgen/polysplit/pkg/model"
	"github.com/solidgen/polysplit/pkg/pslg"
	"github.com/solidgen/polysplit/pkg/status"
)

// SplitEntirely mutates p until no two edges cross in their interiors.
//
// Outer fixpoint: record (|V|,|E|); scan all ordered pairs of edges for the
// first one that splits successfully and restart from the top; once a full
// scan finds no splittable pair, run Dedup; if both |V| and |E| are
// unchanged since the start of the iteration, stop (this guards against the
// rare split-then-immediately-dedup-away oscillation).
func SplitEntirely(p *pslg.PSLG) status.Class {
	for {
		startV, startE := len(p.V), len(p.E)

		for {
			splitAny := false
			for i := 0; i < len(p.E); i++ {
				for j := 0; j < len(p.E); j++ {
					if i == j {
						continue
					}
					if pslg.Split(p, i, j) == status.Success {
						splitAny = true
						break
					}
				}
				if splitAny {
					break
				}
			}
			if !splitAny {
				break
			}
		}

		pslg.Dedup(p)

		if len(p.V) == startV && len(p.E) == startE {
			return status.Success
		}
	}
}

// Attack inspects vertex position i. If it is not currently incident to
// exactly two edges, Attack is a no-op. Otherwise it emits the triangle
// formed by the two edges' other endpoints and i (carrying the PSLG's
// FaceData) into tri, then collapses the two incident edges into one (or
// removes them outright if that edge already exists). The vertex itself is
// never physically removed from p.V.
func Attack(p *pslg.PSLG, tri *model.Triangulation, i int) status.Class {
	at := p.EdgesAt(i)
	if len(at) != 2 {
		return status.NoOp
	}

	e1, e2 := p.E[at[0]], p.E[at[1]]
	a := e1.Other(i)
	b := e2.Other(i)

	tri.Append(model.TriangleRaw{
		V0:   p.V[a],
		V1:   p.V[i],
		V2:   p.V[b],
		Data: p.Poly.Data,
	})

	closes := pslg.Edge{U: a, V: b}
	mergedExists := false
	for k, e := range p.E {
		if k == at[0] || k == at[1] {
			continue
		}
		if (e.U == closes.U && e.V == closes.V) || (e.U == closes.V && e.V == closes.U) {
			mergedExists = true
			break
		}
	}

	hi, lo := at[0], at[1]
	if hi < lo {
		hi, lo = lo, hi
	}
	p.E = append(p.E[:hi], p.E[hi+1:]...)
	p.E = append(p.E[:lo], p.E[lo+1:]...)

	if !mergedExists {
		p.E = append(p.E, closes)
	}

	return status.Success
}

// AttackAll scans vertex positions in order; on the first index whose
// Attack succeeds, it restarts the scan from the top. When a full scan
// finds no ear, it returns.
func AttackAll(p *pslg.PSLG, tri *model.Triangulation) status.Class {
	for {
		attacked := false
		for i := 0; i < len(p.V); i++ {
			if Attack(p, tri, i) == status.Success {
				attacked = true
				break
			}
		}
		if !attacked {
			return status.Success
		}
	}
}

// Polyhedron runs the split/dedup/ear-attack pipeline over every face of
// poly and returns the concatenation of their per-face triangulations, in
// face-iteration order. A malformed face index propagates as a fatal error
// and the function returns immediately with whatever has been accumulated
// so far.
func Polyhedron(poly model.Polyhedron, eps float32) (*model.Triangulation, error) {
	out := model.NewTriangulation()

	for i := 0; i < poly.FaceCount(); i++ {
		face, err := poly.Face(i)
		if err != nil {
			return out, status.Fatalf(status.SiteFaceReaderParse, "face %d: %w", i, err)
		}

		p := pslg.FromPolygon(face, eps)
		SplitEntirely(&p)

		faceTri := model.NewTriangulation()
		AttackAll(&p, faceTri)

		out.AppendAll(faceTri)
	}

	return out, nil
}
