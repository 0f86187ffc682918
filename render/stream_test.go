package render

import (
	"io"
	"math/rand"
	"reflect"
	"testing"

	"github.com/soypat/isomesh"
)

func TestGridRendererMatchesMesh(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	g := randomGrid(rng, isomesh.V3i{6, 5, 7})
	m := mustMarch(t, g, 0.5, &Config{CellSize: 0.5})
	want := m.Triangle3s()
	for _, bufSize := range []int{1, 2, 3, 5, 7, 1024} {
		gr, err := NewGridRenderer(g, 0.5, &Config{CellSize: 0.5})
		if err != nil {
			t.Fatal(err)
		}
		buf := make([]Triangle3, bufSize)
		var got []Triangle3
		for {
			nt, err := gr.ReadTriangles(buf)
			got = append(got, buf[:nt]...)
			if err == io.EOF {
				break
			} else if err != nil {
				t.Fatal(err)
			}
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("buffer size %d: streamed %d triangles differ from mesh %d triangles", bufSize, len(got), len(want))
		}
		if gr.triangles != len(want) {
			t.Errorf("buffer size %d: renderer counted %d triangles, want %d", bufSize, gr.triangles, len(want))
		}
	}
}

func TestRenderAll(t *testing.T) {
	m := mustMarch(t, octahedronField(), 0.5, nil)
	gr, err := NewGridRenderer(octahedronField(), 0.5, nil)
	if err != nil {
		t.Fatal(err)
	}
	fromGrid, err := RenderAll(gr)
	if err != nil {
		t.Fatal(err)
	}
	fromMesh, err := RenderAll(NewMeshRenderer(m))
	if err != nil {
		t.Fatal(err)
	}
	if len(fromGrid) != 8 || !reflect.DeepEqual(fromGrid, fromMesh) {
		t.Errorf("grid renderer and mesh renderer disagree: %v != %v", fromGrid, fromMesh)
	}
}

func TestGridRendererEmpty(t *testing.T) {
	for _, f := range []isomesh.Field{
		isomesh.NewGrid(isomesh.V3i{1, 4, 4}),
		isomesh.FieldFunc{Extent: isomesh.V3i{-1, 3, 3}, Fn: func(x, y, z int) float64 { return 1 }},
	} {
		gr, err := NewGridRenderer(f, 0, nil)
		if err != nil {
			t.Fatal(err)
		}
		n, err := gr.ReadTriangles(make([]Triangle3, 4))
		if n != 0 || err != io.EOF {
			t.Errorf("size %v: got %d, %v, want 0, EOF", f.Size(), n, err)
		}
	}
}
