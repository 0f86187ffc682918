package d3

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestBoxOf(t *testing.T) {
	got := BoxOf(Set{{X: 1, Y: -2, Z: 3}, {X: -1, Y: 4, Z: 0}, {X: 0, Y: 0, Z: 5}})
	want := Box{Min: r3.Vec{X: -1, Y: -2, Z: 0}, Max: r3.Vec{X: 1, Y: 4, Z: 5}}
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestScaleAboutCenter(t *testing.T) {
	b := Box{Min: r3.Vec{X: 0, Y: 2, Z: -4}, Max: r3.Vec{X: 2, Y: 6, Z: 4}}
	got := b.ScaleAboutCenter(2)
	want := Box{Min: r3.Vec{X: -1, Y: 0, Z: -8}, Max: r3.Vec{X: 3, Y: 8, Z: 8}}
	if !EqualWithin(got.Min, want.Min, 1e-12) || !EqualWithin(got.Max, want.Max, 1e-12) {
		t.Errorf("got %v, want %v", got, want)
	}
	if c := got.Center(); c != b.Center() {
		t.Errorf("center moved from %v to %v", b.Center(), c)
	}
}
