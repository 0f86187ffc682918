package render

import (
	"errors"
	"math"

	"github.com/soypat/isomesh"
	"gonum.org/v1/gonum/spatial/r3"
)

// Config configures surface extraction. A nil *Config is valid and uses
// the defaults of the zero value.
type Config struct {
	// CellSize is the output edge length of a grid cell. Zero means 1.
	CellSize float64
	// Workers is the number of goroutines extracting cells. Values of
	// 0 and 1 extract on the calling goroutine. Output does not depend
	// on the number of workers.
	Workers int
}

func (cfg *Config) validate() error {
	if cfg == nil {
		return nil
	}
	if cfg.CellSize < 0 || math.IsNaN(cfg.CellSize) || math.IsInf(cfg.CellSize, 0) {
		return errors.New("cell size must be zero or positive and finite")
	}
	if cfg.Workers < 0 {
		return errors.New("negative worker count")
	}
	return nil
}

func (cfg *Config) cellSize() float64 {
	if cfg == nil || cfg.CellSize == 0 {
		return 1
	}
	return cfg.CellSize
}

func (cfg *Config) workers() int {
	if cfg == nil || cfg.Workers < 1 {
		return 1
	}
	return cfg.Workers
}

// MarchingCubes extracts the surface of f at threshold surface as an
// indexed mesh. A sample is inside the surface when its value is greater
// than or equal to surface. The mesh is centered on the origin of the
// sample grid and scaled by the configured cell size. Fields with fewer
// than 2 samples along any axis yield an empty mesh.
//
// Cells are visited with Y as the outermost axis, then Z, then X. This
// order defines the order of vertices and triangles in the mesh.
func MarchingCubes(f isomesh.Field, surface float64, cfg *Config) (*Mesh, error) {
	if err := isomesh.CheckField(f); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	w := newGridWalker(f, surface, cfg.cellSize())
	if w.empty() {
		return &Mesh{}, nil
	}
	if workers := cfg.workers(); workers > 1 {
		return w.parallel(workers), nil
	}
	b := NewMeshBuilder()
	w.walk(b, 0, w.cells[1])
	return b.Mesh(), nil
}

// gridWalker visits the cells of a field. It holds no mutable state and
// may walk disjoint cell ranges concurrently.
type gridWalker struct {
	f        isomesh.Field
	surface  float64
	cellSize float64
	// offset centers the grid on the origin.
	offset r3.Vec
	// cells is the number of cells along each axis.
	cells isomesh.V3i
}

func newGridWalker(f isomesh.Field, surface, cellSize float64) gridWalker {
	cells := f.Size().SubScalar(1)
	if cells.Min() < 1 {
		cells = isomesh.V3i{}
	}
	return gridWalker{
		f:        f,
		surface:  surface,
		cellSize: cellSize,
		offset:   r3.Scale(0.5, cells.ToV3()),
		cells:    cells,
	}
}

func (w *gridWalker) empty() bool { return w.cells.Min() < 1 }

// walk merges the surface of all cells with y0 <= y < y1 into b.
func (w *gridWalker) walk(b *MeshBuilder, y0, y1 int) {
	var cm cellMesh
	for y := y0; y < y1; y++ {
		for z := 0; z < w.cells[2]; z++ {
			for x := 0; x < w.cells[0]; x++ {
				if w.cell(&cm, isomesh.V3i{x, y, z}) {
					b.Merge(cm.Vertices(), cm.Triangles())
				}
			}
		}
	}
}

// cell writes the surface of a cell to dst and reports whether the cell
// produced any triangles.
func (w *gridWalker) cell(dst *cellMesh, cell isomesh.V3i) bool {
	code := CellCode(w.f, cell, w.surface)
	if code == 0 || code == 255 {
		dst.reset()
		return false
	}
	points := EdgePoints(cell, w.offset, w.cellSize)
	processCell(dst, code, &points)
	return !dst.empty()
}
