package render

import (
	"math"
	"math/rand"
	"testing"

	"github.com/soypat/isomesh"
	"gonum.org/v1/gonum/spatial/r3"
)

type sphere struct{ r float64 }

func (s sphere) Evaluate(p r3.Vec) float64 { return r3.Norm(p) - s.r }

func (s sphere) Bounds() r3.Box {
	return r3.Box{Min: r3.Vec{X: -s.r, Y: -s.r, Z: -s.r}, Max: r3.Vec{X: s.r, Y: s.r, Z: s.r}}
}

func TestSurfaceDistanceSphere(t *testing.T) {
	const resolution = 0.1
	g, err := isomesh.SampleSDF3(sphere{r: 1}, resolution)
	if err != nil {
		t.Fatal(err)
	}
	cfg := &Config{CellSize: resolution}
	m := mustMarch(t, g, 0, cfg)
	if err := m.Validate(); err != nil {
		t.Fatal(err)
	}
	// Grid is not exactly centered on the sphere so allow for the offset.
	const tol = 2 * resolution
	for i, v := range m.Vertices {
		if d := math.Abs(r3.Norm(v) - 1); d > tol {
			t.Fatalf("vertex %d at %v is %g off the sphere surface", i, v, d)
		}
	}
	for i := range m.Triangles {
		tri := m.Triangle(i)
		if r3.Dot(tri.Normal(), tri.Centroid()) <= 0 {
			t.Fatalf("triangle %d normal points inward", i)
		}
	}
	d, err := SurfaceDistance(m, g, 0, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if d != 0 {
		t.Errorf("extracted sphere is %g away from its field", d)
	}
}

func TestSurfaceDistance(t *testing.T) {
	f := modField(isomesh.V3i{5, 4, 6})
	m := mustMarch(t, f, 0.5, nil)
	for _, test := range []struct {
		name    string
		surface float64
		cfg     *Config
		zero    bool
	}{
		{name: "same extraction", surface: 0.5, zero: true},
		{name: "parallel config", surface: 0.5, cfg: &Config{Workers: 3}, zero: true},
		{name: "other threshold", surface: 0.35},
		{name: "other cell size", surface: 0.5, cfg: &Config{CellSize: 2}},
	} {
		d, err := SurfaceDistance(m, f, test.surface, test.cfg)
		if err != nil {
			t.Fatalf("%s: %v", test.name, err)
		}
		if test.zero != (d == 0) {
			t.Errorf("%s: got distance %g", test.name, d)
		}
	}

	// Every edge point of a random field is a mesh vertex and vice versa.
	rng := rand.New(rand.NewSource(4))
	for i := 0; i < 10; i++ {
		size := isomesh.V3i{2 + rng.Intn(5), 2 + rng.Intn(5), 2 + rng.Intn(5)}
		g := randomGrid(rng, size)
		surface := rng.Float64()
		m := mustMarch(t, g, surface, nil)
		w := newGridWalker(g, surface, 1)
		if got := len(w.edgePoints()); got != len(m.Vertices) {
			t.Errorf("grid %v: %d edge points, %d vertices", size, got, len(m.Vertices))
		}
		if d, err := SurfaceDistance(m, g, surface, nil); err != nil || d != 0 {
			t.Errorf("grid %v: distance %g, %v", size, d, err)
		}
	}
}

func TestSurfaceDistanceEmpty(t *testing.T) {
	f := modField(isomesh.V3i{4, 4, 4})
	empty := &Mesh{}
	if d, err := SurfaceDistance(empty, f, 2, nil); err != nil || d != 0 {
		t.Errorf("empty mesh of empty surface: got %g, %v", d, err)
	}
	if d, err := SurfaceDistance(empty, f, 0.5, nil); err != nil || !math.IsInf(d, 1) {
		t.Errorf("empty mesh of non-empty surface: got %g, %v", d, err)
	}
	if _, err := SurfaceDistance(empty, nil, 0.5, nil); err == nil {
		t.Error("expected error for nil field")
	}
	if _, err := SurfaceDistance(empty, f, 0.5, &Config{CellSize: -1}); err == nil {
		t.Error("expected error for negative cell size")
	}
}
