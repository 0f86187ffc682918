package render

import (
	"errors"
	"fmt"

	"github.com/soypat/isomesh/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Mesh is an indexed triangle mesh. Vertices are unique by exact coordinate
// equality and appear in the order they were first produced. Each triangle
// holds three indices into Vertices.
type Mesh struct {
	Vertices  []r3.Vec
	Triangles [][3]int
}

// Triangle returns the ith triangle of the mesh with its vertex positions.
func (m *Mesh) Triangle(i int) Triangle3 {
	t := m.Triangles[i]
	return Triangle3{V: [3]r3.Vec{m.Vertices[t[0]], m.Vertices[t[1]], m.Vertices[t[2]]}}
}

// Triangle3s returns every triangle of the mesh un-indexed.
func (m *Mesh) Triangle3s() []Triangle3 {
	out := make([]Triangle3, len(m.Triangles))
	for i := range m.Triangles {
		out[i] = m.Triangle(i)
	}
	return out
}

// FlatNormals returns the unit normal of each triangle from its winding.
// Normals point away from samples at or above the surface threshold.
func (m *Mesh) FlatNormals() []r3.Vec {
	normals := make([]r3.Vec, len(m.Triangles))
	for i := range m.Triangles {
		normals[i] = m.Triangle(i).Normal()
	}
	return normals
}

// Bounds returns the bounding box of the mesh vertices. An empty mesh
// returns the zero box.
func (m *Mesh) Bounds() r3.Box {
	if len(m.Vertices) == 0 {
		return r3.Box{}
	}
	return r3.Box(d3.BoxOf(m.Vertices))
}

// Validate checks the mesh invariants: every index references an existing
// vertex, no triangle repeats a vertex position, no two vertices are equal
// and every vertex is referenced by a triangle.
func (m *Mesh) Validate() error {
	referenced := make([]bool, len(m.Vertices))
	for i, t := range m.Triangles {
		for _, idx := range t {
			if idx < 0 || idx >= len(m.Vertices) {
				return fmt.Errorf("triangle %d index %d out of range [0,%d)", i, idx, len(m.Vertices))
			}
			referenced[idx] = true
		}
		if m.Triangle(i).Degenerate(0) {
			return fmt.Errorf("triangle %d is degenerate: %v", i, t)
		}
	}
	seen := make(map[r3.Vec]int, len(m.Vertices))
	for i, v := range m.Vertices {
		if j, ok := seen[v]; ok {
			return fmt.Errorf("vertices %d and %d are equal: %v", j, i, v)
		}
		seen[v] = i
		if !referenced[i] {
			return fmt.Errorf("vertex %d not referenced by any triangle", i)
		}
		if !d3.Finite(v) {
			return errors.New("non-finite vertex")
		}
	}
	return nil
}

// MeshBuilder accumulates cell surfaces into a Mesh, merging vertices with
// equal coordinates. The zero value is not ready for use, call NewMeshBuilder.
// A MeshBuilder is not safe for concurrent use.
type MeshBuilder struct {
	mesh   Mesh
	lookup map[r3.Vec]int
	remap  []int
}

// NewMeshBuilder returns an empty MeshBuilder.
func NewMeshBuilder() *MeshBuilder {
	return &MeshBuilder{
		lookup: make(map[r3.Vec]int),
		remap:  make([]int, 0, 12),
	}
}

// Merge appends a local surface to the mesh. Local vertices equal to an
// existing vertex reuse its index, others are appended in order. Local
// triangles are remapped to mesh indices and appended in order.
// A local triangle index outside vertices panics.
func (b *MeshBuilder) Merge(vertices []r3.Vec, triangles [][3]int) {
	remap := b.remap[:0]
	for _, v := range vertices {
		idx, ok := b.lookup[v]
		if !ok {
			idx = len(b.mesh.Vertices)
			b.lookup[v] = idx
			b.mesh.Vertices = append(b.mesh.Vertices, v)
		}
		remap = append(remap, idx)
	}
	for _, t := range triangles {
		b.mesh.Triangles = append(b.mesh.Triangles, [3]int{remap[t[0]], remap[t[1]], remap[t[2]]})
	}
	b.remap = remap
}

// MergeMesh merges all of m into the builder.
func (b *MeshBuilder) MergeMesh(m *Mesh) {
	b.Merge(m.Vertices, m.Triangles)
}

// Len returns the number of vertices and triangles accumulated so far.
func (b *MeshBuilder) Len() (vertices, triangles int) {
	return len(b.mesh.Vertices), len(b.mesh.Triangles)
}

// Mesh returns the accumulated mesh. Merges after this call do not change
// the lengths of the returned mesh's slices.
func (b *MeshBuilder) Mesh() *Mesh {
	m := b.mesh
	return &m
}
