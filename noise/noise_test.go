package noise

import (
	"testing"

	"github.com/ojrac/opensimplex-go"
	"github.com/soypat/isomesh"
)

func TestFieldDeterministic(t *testing.T) {
	cfg := Config{Seed: 11, Extent: isomesh.V3i{6, 5, 4}}
	a, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := New(cfg)
	cfg.Seed = 12
	c, _ := New(cfg)
	ga, gb, gc := a.Grid(), b.Grid(), c.Grid()
	differ := false
	for y := 0; y < 5; y++ {
		for z := 0; z < 4; z++ {
			for x := 0; x < 6; x++ {
				va := ga.At(x, y, z)
				if va != gb.At(x, y, z) {
					t.Fatalf("same seed differs at (%d,%d,%d)", x, y, z)
				}
				if va < -1 || va > 1 {
					t.Errorf("sample %g out of [-1,1]", va)
				}
				differ = differ || va != gc.At(x, y, z)
			}
		}
	}
	if !differ {
		t.Error("different seeds produced identical fields")
	}
}

func TestFieldConfig(t *testing.T) {
	f, err := New(Config{Extent: isomesh.V3i{2, 2, 2}})
	if err != nil {
		t.Fatal(err)
	}
	if f.scale != DefaultScale {
		t.Errorf("got scale %g, want default %g", f.scale, DefaultScale)
	}
	if f.Size() != (isomesh.V3i{2, 2, 2}) {
		t.Errorf("got size %v", f.Size())
	}
	for _, cfg := range []Config{
		{Extent: isomesh.V3i{-1, 2, 2}},
		{Scale: -0.5, Extent: isomesh.V3i{2, 2, 2}},
	} {
		if _, err := New(cfg); err == nil {
			t.Errorf("expected error for %+v", cfg)
		}
	}
}

func TestFieldAxisOrder(t *testing.T) {
	const seed, scale = 5, 0.3
	f, err := New(Config{Seed: seed, Scale: scale, Extent: isomesh.V3i{4, 3, 2}})
	if err != nil {
		t.Fatal(err)
	}
	ref := opensimplex.New(seed)
	nested := make([][][]float64, 3)
	for y := range nested {
		nested[y] = make([][]float64, 2)
		for z := range nested[y] {
			nested[y][z] = make([]float64, 4)
			for x := range nested[y][z] {
				nested[y][z][x] = ref.Eval3(float64(y)*scale+0.2, float64(z)*scale+0.2, float64(x)*scale+0.2)
			}
		}
	}
	want, err := isomesh.GridFromNested(nested)
	if err != nil {
		t.Fatal(err)
	}
	got := f.Grid()
	for y := 0; y < 3; y++ {
		for z := 0; z < 2; z++ {
			for x := 0; x < 4; x++ {
				if got.At(x, y, z) != want.At(x, y, z) {
					t.Errorf("(%d,%d,%d): got %g, want %g", x, y, z, got.At(x, y, z), want.At(x, y, z))
				}
			}
		}
	}
}
