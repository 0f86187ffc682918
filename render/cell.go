package render

import (
	"github.com/soypat/isomesh"
	"gonum.org/v1/gonum/spatial/r3"
)

// cellMesh is the surface crossing a single cell. Vertices are the edge
// points referenced by the cell's triangles in ascending edge order.
type cellMesh struct {
	vertices  [12]r3.Vec
	triangles [marchingCubesMaxTriangles][3]int
	nv, nt    int
}

func (c *cellMesh) Vertices() []r3.Vec { return c.vertices[:c.nv] }
func (c *cellMesh) Triangles() [][3]int { return c.triangles[:c.nt] }
func (c *cellMesh) reset() { c.nv, c.nt = 0, 0 }
func (c *cellMesh) empty() bool { return c.nt == 0 }
func (c *cellMesh) triangle(i int) Triangle3 {
	t := c.triangles[i]
	return Triangle3{V: [3]r3.Vec{c.vertices[t[0]], c.vertices[t[1]], c.vertices[t[2]]}}
}

// CellCode returns the occupancy code of the cell whose minimum corner is
// the sample at cell. Bit k is set when the sample at corner k is greater
// than or equal to surface.
func CellCode(f isomesh.Field, cell isomesh.V3i, surface float64) uint8 {
	var code uint8
	for k, off := range mcCornerOffsets {
		c := cell.Add(off)
		if f.At(c[0], c[1], c[2]) >= surface {
			code |= 1 << k
		}
	}
	return code
}

// EdgePoints returns the 12 edge midpoints of a cell in output space. Each
// point is (edge offset + cell - offset) * cellSize where offset is the
// centering offset of the extraction.
func EdgePoints(cell isomesh.V3i, offset r3.Vec, cellSize float64) (points [12]r3.Vec) {
	origin := r3.Sub(cell.ToV3(), offset)
	for i, e := range mcEdgeOffsets {
		points[i] = r3.Scale(cellSize, r3.Add(origin, e))
	}
	return points
}

// CellSurface runs marching cubes on a single cell and returns the cell's
// local vertices and triangles indexing into them. Cells with codes 0
// and 255 return nil slices.
func CellSurface(f isomesh.Field, cell isomesh.V3i, surface float64, offset r3.Vec, cellSize float64) ([]r3.Vec, [][3]int) {
	var cm cellMesh
	code := CellCode(f, cell, surface)
	points := EdgePoints(cell, offset, cellSize)
	processCell(&cm, code, &points)
	if cm.empty() {
		return nil, nil
	}
	vertices := append([]r3.Vec(nil), cm.Vertices()...)
	triangles := append([][3]int(nil), cm.Triangles()...)
	return vertices, triangles
}

// processCell writes the surface for occupancy code into dst given the
// cell's edge points.
func processCell(dst *cellMesh, code uint8, points *[12]r3.Vec) {
	dst.reset()
	if code == 0 || code == 255 {
		return
	}
	tri := caseTriangles(code)
	var used uint16
	for _, e := range tri {
		used |= 1 << e
	}
	var local [12]int
	for e := range mcEdgeOffsets {
		if used&(1<<e) != 0 {
			local[e] = dst.nv
			dst.vertices[dst.nv] = points[e]
			dst.nv++
		}
	}
	for i := 0; i < len(tri); i += 3 {
		dst.triangles[dst.nt] = [3]int{local[tri[i]], local[tri[i+1]], local[tri[i+2]]}
		dst.nt++
	}
}
