package isomesh

import (
	"errors"
	"math"

	"github.com/soypat/isomesh/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// SDF3 is the interface to a 3d signed distance function object.
type SDF3 interface {
	// Evaluate takes a point in 3D space as input and returns
	// the minimum distance of the SDF3 to the point. The distance
	// is negative if the point is contained within the SDF3.
	Evaluate(p r3.Vec) float64
	// Bounds returns the bounding box that completely contains
	// the SDF3.
	Bounds() r3.Box
}

// SampleSDF3 samples s on a regular grid of spacing resolution covering its
// bounds. Sample values are negated distances so the solid maps to values
// >= 0 and the surface is extracted with a threshold of 0.
func SampleSDF3(s SDF3, resolution float64) (*Grid, error) {
	if s == nil {
		return nil, errors.New("nil SDF3")
	}
	if !(resolution > 0) || math.IsInf(resolution, 1) {
		return nil, errors.New("SDF3 sampling resolution must be positive and finite")
	}
	// Scale the bounding box about the center to make sure the boundaries
	// aren't on the object surface.
	bb := d3.Box(s.Bounds()).ScaleAboutCenter(1.01)
	cells := d3.CeilElem(r3.Scale(1/resolution, bb.Size()))
	size := V3i{int(cells.X) + 1, int(cells.Y) + 1, int(cells.Z) + 1}
	g := NewGrid(size)
	i := 0
	for y := 0; y < size[1]; y++ {
		for z := 0; z < size[2]; z++ {
			for x := 0; x < size[0]; x++ {
				p := r3.Add(bb.Min, r3.Scale(resolution, V3i{x, y, z}.ToV3()))
				g.data[i] = -s.Evaluate(p)
				i++
			}
		}
	}
	return g, nil
}
