package render

import (
	"math"

	"github.com/soypat/isomesh"
	"gonum.org/v1/gonum/spatial/kdtree"
	"gonum.org/v1/gonum/spatial/r3"
)

// SurfaceDistance returns the Hausdorff distance between the vertices of m
// and the edge points of f at threshold surface. Edge points are the
// midpoints of cell edges whose end samples lie on opposite sides of the
// threshold, placed in space as MarchingCubes places them with cfg.
// A mesh extracted from f with the same surface and cfg is at distance 0.
// If exactly one of the two point sets is empty the distance is +Inf.
func SurfaceDistance(m *Mesh, f isomesh.Field, surface float64, cfg *Config) (float64, error) {
	if err := isomesh.CheckField(f); err != nil {
		return 0, err
	}
	if err := cfg.validate(); err != nil {
		return 0, err
	}
	w := newGridWalker(f, surface, cfg.cellSize())
	points := w.edgePoints()
	switch {
	case len(points) == 0 && len(m.Vertices) == 0:
		return 0, nil
	case len(points) == 0 || len(m.Vertices) == 0:
		return math.Inf(1), nil
	}
	d := math.Max(farthest(points, m.Vertices), farthest(m.Vertices, points))
	return d, nil
}

// edgePoints returns the distinct sign-change edge points of the field in
// walk order.
func (w *gridWalker) edgePoints() []r3.Vec {
	var points []r3.Vec
	seen := make(map[r3.Vec]struct{})
	for y := 0; y < w.cells[1]; y++ {
		for z := 0; z < w.cells[2]; z++ {
			for x := 0; x < w.cells[0]; x++ {
				cell := isomesh.V3i{x, y, z}
				code := CellCode(w.f, cell, w.surface)
				if code == 0 || code == 255 {
					continue
				}
				edges := EdgePoints(cell, w.offset, w.cellSize)
				for e, c := range mcEdgeCorners {
					if (code>>c[0])&1 == (code>>c[1])&1 {
						continue
					}
					if _, ok := seen[edges[e]]; !ok {
						seen[edges[e]] = struct{}{}
						points = append(points, edges[e])
					}
				}
			}
		}
	}
	return points
}

// farthest returns the largest distance from a point in from to its
// nearest point in to. to must not be empty.
func farthest(from, to []r3.Vec) float64 {
	tree := kdtree.New(kdPoints(to), false)
	var max2 float64
	for _, v := range from {
		_, d2 := tree.Nearest(kdPoint(v))
		max2 = math.Max(max2, d2)
	}
	return math.Sqrt(max2)
}

func kdPoints(vs []r3.Vec) kdtree.Points {
	pts := make(kdtree.Points, len(vs))
	for i, v := range vs {
		pts[i] = kdPoint(v)
	}
	return pts
}

func kdPoint(v r3.Vec) kdtree.Point { return kdtree.Point{v.X, v.Y, v.Z} }
