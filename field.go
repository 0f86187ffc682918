// Package isomesh defines the scalar fields consumed by the marching cubes
// surface extractor in package render.
package isomesh

import (
	"errors"
	"fmt"
)

// Field is a read-only scalar field sampled on a regular 3D grid.
// Implementations must be safe for concurrent calls to At and must return
// the same value for the same coordinate for the lifetime of an extraction.
type Field interface {
	// Size returns the number of samples along X, Y and Z.
	Size() V3i
	// At returns the sample at integer coordinates (x, y, z) with
	// 0 <= x < Size()[0] and so on.
	At(x, y, z int) float64
}

var (
	_ Field = (*Grid)(nil)
	_ Field = FieldFunc{}
)

// Grid is a dense scalar field. Samples are stored with X varying fastest,
// then Z, then Y, which is the order cells are walked in during extraction.
type Grid struct {
	size V3i
	data []float64
}

// NewGrid returns a zero valued grid with the given extents.
// Negative extents are a programmer error and panic.
func NewGrid(size V3i) *Grid {
	if size.Min() < 0 {
		panic("negative grid extent")
	}
	return &Grid{size: size, data: make([]float64, size.Volume())}
}

// GridFromNested builds a grid from a nested slice indexed as
// noise[y][z][x]. The slice must not be ragged.
func GridFromNested(noise [][][]float64) (*Grid, error) {
	var size V3i
	size[1] = len(noise)
	if size[1] > 0 {
		size[2] = len(noise[0])
		if size[2] > 0 {
			size[0] = len(noise[0][0])
		}
	}
	g := NewGrid(size)
	for y, plane := range noise {
		if len(plane) != size[2] {
			return nil, fmt.Errorf("ragged grid: plane y=%d has %d rows, want %d", y, len(plane), size[2])
		}
		for z, row := range plane {
			if len(row) != size[0] {
				return nil, fmt.Errorf("ragged grid: row y=%d z=%d has %d samples, want %d", y, z, len(row), size[0])
			}
			copy(g.data[g.rowStart(y, z):], row)
		}
	}
	return g, nil
}

// SampleField copies any field into a dense Grid.
func SampleField(f Field) *Grid {
	size := f.Size()
	g := NewGrid(size)
	i := 0
	for y := 0; y < size[1]; y++ {
		for z := 0; z < size[2]; z++ {
			for x := 0; x < size[0]; x++ {
				g.data[i] = f.At(x, y, z)
				i++
			}
		}
	}
	return g
}

// Size returns the grid extents.
func (g *Grid) Size() V3i { return g.size }

// At returns the sample at (x,y,z). Out of range coordinates panic.
func (g *Grid) At(x, y, z int) float64 {
	return g.data[g.index(x, y, z)]
}

// Set sets the sample at (x,y,z).
func (g *Grid) Set(x, y, z int, v float64) {
	g.data[g.index(x, y, z)] = v
}

// Fill sets every sample to v.
func (g *Grid) Fill(v float64) {
	for i := range g.data {
		g.data[i] = v
	}
}

func (g *Grid) index(x, y, z int) int {
	if uint(x) >= uint(g.size[0]) || uint(y) >= uint(g.size[1]) || uint(z) >= uint(g.size[2]) {
		panic(fmt.Sprintf("grid index (%d,%d,%d) out of range %v", x, y, z, g.size))
	}
	return x + g.rowStart(y, z)
}

// rowStart returns the index of sample (0,y,z) without bounds checks.
func (g *Grid) rowStart(y, z int) int {
	return g.size[0] * (z + g.size[2]*y)
}

// FieldFunc adapts a sampling function with explicit extents to a Field.
type FieldFunc struct {
	Fn     func(x, y, z int) float64
	Extent V3i
}

// Size returns the extents of the field.
func (f FieldFunc) Size() V3i { return f.Extent }

// At calls the underlying sampling function.
func (f FieldFunc) At(x, y, z int) float64 { return f.Fn(x, y, z) }

var errNilField = errors.New("nil field")

// CheckField returns an error if f cannot be sampled. Any extent is valid,
// extents below 2 (negative ones included) describe a field with no cells.
func CheckField(f Field) error {
	if f == nil {
		return errNilField
	}
	if ff, ok := f.(FieldFunc); ok && ff.Fn == nil {
		return errNilField
	}
	return nil
}
