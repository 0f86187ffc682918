package isomesh

import (
	"bytes"
	"math"
	"reflect"
	"strings"
	"sync"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestGridLayout(t *testing.T) {
	g, err := GridFromNested([][][]float64{
		{{0, 1, 2}, {3, 4, 5}},
		{{6, 7, 8}, {9, 10, 11}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if g.Size() != (V3i{3, 2, 2}) {
		t.Fatalf("got size %v, want [3 2 2]", g.Size())
	}
	// noise[y][z][x]
	for _, test := range []struct {
		x, y, z int
		want    float64
	}{
		{0, 0, 0, 0}, {2, 0, 0, 2}, {0, 0, 1, 3}, {1, 1, 0, 7}, {2, 1, 1, 11},
	} {
		if got := g.At(test.x, test.y, test.z); got != test.want {
			t.Errorf("At(%d,%d,%d) got %g, want %g", test.x, test.y, test.z, got, test.want)
		}
	}
	g.Set(1, 1, 1, -1)
	if g.At(1, 1, 1) != -1 {
		t.Error("Set did not change sample")
	}
	g.Fill(3)
	if g.At(0, 1, 0) != 3 {
		t.Error("Fill did not change sample")
	}
}

func TestGridOutOfRange(t *testing.T) {
	g := NewGrid(V3i{2, 2, 2})
	defer func() {
		if recover() == nil {
			t.Error("expected panic for out of range sample")
		}
	}()
	g.At(0, 2, 0)
}

func TestGridFromNestedRagged(t *testing.T) {
	for _, noise := range [][][][]float64{
		{{{0, 1}, {2, 3}}, {{4, 5}}},
		{{{0, 1}, {2, 3}}, {{4, 5}, {6}}},
	} {
		if _, err := GridFromNested(noise); err == nil {
			t.Errorf("expected error for ragged grid %v", noise)
		}
	}
	g, err := GridFromNested(nil)
	if err != nil || g.Size() != (V3i{}) {
		t.Errorf("empty grid: got %v, %v", g, err)
	}
	g, err = GridFromNested([][][]float64{{{}, {}}})
	if err != nil || g.Size() != (V3i{0, 1, 2}) {
		t.Errorf("grid with no x samples: got %v, %v", g, err)
	}
}

func TestGridJSON(t *testing.T) {
	g := SampleField(FieldFunc{
		Extent: V3i{3, 4, 2},
		Fn: func(x, y, z int) float64 {
			return float64(x) - 0.25*float64(y) + 10*float64(z)
		},
	})
	var buf bytes.Buffer
	if err := WriteGridJSON(&buf, g); err != nil {
		t.Fatal(err)
	}
	got, err := ReadGridJSON(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, g) {
		t.Errorf("round trip mismatch: got %v, want %v", got, g)
	}
	for _, bad := range []string{"", "{}", "[[[1,2],[3]]]", "[[[1,\"a\"]]]"} {
		if _, err := ReadGridJSON(strings.NewReader(bad)); err == nil {
			t.Errorf("expected error reading %q", bad)
		}
	}
}

func TestCheckField(t *testing.T) {
	if CheckField(nil) == nil {
		t.Error("nil field accepted")
	}
	if CheckField(FieldFunc{Extent: V3i{2, 2, 2}}) == nil {
		t.Error("nil field function accepted")
	}
	if err := CheckField(FieldFunc{Extent: V3i{2, -1, 2}, Fn: func(x, y, z int) float64 { return 0 }}); err != nil {
		t.Errorf("negative extent describes an empty field: %v", err)
	}
	if err := CheckField(NewGrid(V3i{1, 0, 5})); err != nil {
		t.Error(err)
	}
}

func TestCachedField(t *testing.T) {
	var mu sync.Mutex
	calls := 0
	f := FieldFunc{
		Extent: V3i{4, 4, 4},
		Fn: func(x, y, z int) float64 {
			mu.Lock()
			calls++
			mu.Unlock()
			return float64(x * y * z)
		},
	}
	c := NewCachedField(f)
	if c.Size() != f.Size() {
		t.Fatal("size mismatch")
	}
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := 0; y < 4; y++ {
				if got := c.At(1, y, 3); got != float64(3*y) {
					t.Errorf("got %g, want %g", got, float64(3*y))
				}
			}
		}()
	}
	wg.Wait()
	hits, misses := c.Stats()
	if hits+misses != 16 {
		t.Errorf("got %d lookups, want 16", hits+misses)
	}
	if calls != misses || misses < 4 {
		t.Errorf("field evaluated %d times with %d misses", calls, misses)
	}
}

type sphere struct{ r float64 }

func (s sphere) Evaluate(p r3.Vec) float64 { return r3.Norm(p) - s.r }

func (s sphere) Bounds() r3.Box {
	return r3.Box{Min: r3.Vec{X: -s.r, Y: -s.r, Z: -s.r}, Max: r3.Vec{X: s.r, Y: s.r, Z: s.r}}
}

func TestSampleSDF3(t *testing.T) {
	g, err := SampleSDF3(sphere{r: 1}, 0.1)
	if err != nil {
		t.Fatal(err)
	}
	if g.Size() != (V3i{22, 22, 22}) {
		t.Errorf("got size %v, want 22 samples per axis", g.Size())
	}
	// Corners are outside the sphere, samples near the center inside.
	if g.At(0, 0, 0) >= 0 {
		t.Errorf("corner sample %g should be negative", g.At(0, 0, 0))
	}
	if g.At(10, 10, 10) <= 0 {
		t.Errorf("center sample %g should be positive", g.At(10, 10, 10))
	}
	for _, res := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if _, err := SampleSDF3(sphere{r: 1}, res); err == nil {
			t.Errorf("expected error for resolution %g", res)
		}
	}
	if _, err := SampleSDF3(nil, 1); err == nil {
		t.Error("expected error for nil SDF3")
	}
}

func TestV3i(t *testing.T) {
	a := V3i{1, -2, 3}
	if a.Add(V3i{1, 1, 1}) != a.AddScalar(1) {
		t.Error("Add and AddScalar disagree")
	}
	if a.SubScalar(1) != (V3i{0, -3, 2}) {
		t.Error("SubScalar")
	}
	if a.Min() != -2 || (V3i{2, 3, 4}).Volume() != 24 {
		t.Error("Min or Volume")
	}
	if a.ToV3() != (r3.Vec{X: 1, Y: -2, Z: 3}) {
		t.Error("ToV3")
	}
}
