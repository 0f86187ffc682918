// Package noise provides OpenSimplex scalar fields for surface extraction.
package noise

import (
	"errors"
	"math"

	"github.com/ojrac/opensimplex-go"
	"github.com/soypat/isomesh"
)

// DefaultScale is the sampling step in noise space between neighbouring
// grid samples. Values well below 1 give smooth, blobby surfaces.
const DefaultScale = 0.5

// shift keeps samples off the integer lattice where OpenSimplex noise is
// always zero.
const shift = 0.2

// Field is a grid sampled from 3D OpenSimplex noise with values in [-1, 1].
// Equal seeds and scales produce equal fields.
type Field struct {
	noise  opensimplex.Noise
	scale  float64
	extent isomesh.V3i
}

var _ isomesh.Field = (*Field)(nil)

// Config configures a noise Field.
type Config struct {
	Seed int64
	// Scale is the noise space step between samples. Zero means DefaultScale.
	Scale float64
	// Extent is the number of samples along X, Y and Z.
	Extent isomesh.V3i
}

// New returns a noise field.
func New(cfg Config) (*Field, error) {
	if cfg.Extent.Min() < 0 {
		return nil, errors.New("negative noise field extent")
	}
	if cfg.Scale < 0 || math.IsNaN(cfg.Scale) || math.IsInf(cfg.Scale, 0) {
		return nil, errors.New("noise scale must be zero or positive and finite")
	}
	scale := cfg.Scale
	if scale == 0 {
		scale = DefaultScale
	}
	return &Field{
		noise:  opensimplex.New(cfg.Seed),
		scale:  scale,
		extent: cfg.Extent,
	}, nil
}

// Size returns the number of samples along each axis.
func (f *Field) Size() isomesh.V3i { return f.extent }

// At evaluates the noise at grid coordinate (x,y,z). Noise space axes are
// taken in y, z, x order, matching grids generated as nested [y][z][x]
// arrays with the noise evaluated at their indices.
func (f *Field) At(x, y, z int) float64 {
	return f.noise.Eval3(f.coord(y), f.coord(z), f.coord(x))
}

func (f *Field) coord(i int) float64 { return float64(i)*f.scale + shift }

// Grid samples the whole field into a dense grid.
func (f *Field) Grid() *isomesh.Grid {
	return isomesh.SampleField(f)
}
